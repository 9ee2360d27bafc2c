package models

// InsightType categorizes a coach insight.
type InsightType string

const (
	InsightBalanced InsightType = "balanced"
	InsightHealth   InsightType = "health"
	InsightPlanet   InsightType = "planet"
)

// Correlations holds the two rationale strings attached to every insight.
type Correlations struct {
	Health string `json:"health"`
	Planet string `json:"planet"`
}

// CoachInsight is the narrative selected by the coach rule chain. It is
// derived from the entry history on demand and never persisted.
type CoachInsight struct {
	Text         string       `json:"text"`
	Type         InsightType  `json:"type"`
	Correlations Correlations `json:"correlations"`
}
