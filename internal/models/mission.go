package models

// MissionState tracks the singleton weekly behavior mission. CurrentCount and
// Completed reset on week rollover; the lifetime totals never do.
type MissionState struct {
	ID                 string  `json:"id"`
	Title              string  `json:"title"`
	TargetCount        int     `json:"target_count"`
	CurrentCount       int     `json:"current_count"`
	Completed          bool    `json:"completed"`
	WeekStartTimestamp int64   `json:"week_start_timestamp"` // epoch milliseconds
	TotalEnergyGained  float64 `json:"total_energy_gained"`
	TotalCO2Saved      float64 `json:"total_co2_saved"` // kilograms
}
