// Package coach selects a single narrative insight from the full entry
// history. The rules form a strict priority chain: they are evaluated in
// order and the first match wins, so rule order is part of the contract.
package coach

import (
	"fmt"
	"math"
	"strconv"

	"github.com/lifelens/lifelens/internal/models"
)

// history is the evaluation context shared by all rules: the full ordered
// entry list plus the derived values more than one rule looks at.
type history struct {
	entries  []models.DailyEntry
	latest   models.DailyEntry
	previous *models.DailyEntry
}

type rule struct {
	name  string
	match func(h history) bool
	build func(h history) models.CoachInsight
}

// rules is the priority chain. Order matters; do not reorder without
// updating the precedence tests.
var rules = []rule{
	{name: "active-switch", match: matchActiveSwitch, build: buildActiveSwitch},
	{name: "car-regression", match: matchCarRegression, build: buildCarRegression},
	{name: "active-streak", match: matchActiveStreak, build: buildActiveStreak},
	{name: "sleep-mood-dip", match: matchSleepMoodDip, build: buildSleepMoodDip},
	{name: "peak-wellness", match: matchPeakWellness, build: buildPeakWellness},
}

// Generate returns exactly one insight for the given entry history, which
// must be ordered oldest to newest.
func Generate(entries []models.DailyEntry) models.CoachInsight {
	if len(entries) == 0 {
		return onboardingInsight()
	}

	h := history{
		entries: entries,
		latest:  entries[len(entries)-1],
	}
	if len(entries) > 1 {
		h.previous = &entries[len(entries)-2]
	}

	for _, r := range rules {
		if r.match(h) {
			return r.build(h)
		}
	}

	return defaultInsight(h)
}

// pctChange is the rounded percentage change from previous to current, or 0
// when the previous value was 0.
func pctChange(current, previous float64) int {
	if previous == 0 {
		return 0
	}
	return int(math.Round((current - previous) / previous * 100))
}

// formatKg renders a kilogram figure the way the entry stores it, without
// trailing zeros (2.5 -> "2.5", 0 -> "0").
func formatKg(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func onboardingInsight() models.CoachInsight {
	return models.CoachInsight{
		Text: "Begin your journey by logging your first day. Collective data will reveal hidden connections between your health and the planet.",
		Type: models.InsightBalanced,
		Correlations: models.Correlations{
			Health: "Consistent tracking is the first step to unlocking metabolic awareness.",
			Planet: "Your digital footprint starts here. Small logs enable large-scale climate awareness.",
		},
	}
}

func matchActiveSwitch(h history) bool {
	return h.previous != nil && h.latest.Transport.Active() &&
		(h.previous.Transport == models.TransportCar || h.previous.Transport == models.TransportPublic)
}

func buildActiveSwitch(h history) models.CoachInsight {
	energyDiff := pctChange(h.latest.Energy, h.previous.Energy)
	wellnessDiff := pctChange(float64(h.latest.WellnessScore), float64(h.previous.WellnessScore))

	mode := "walking"
	if h.latest.Transport == models.TransportCycle {
		mode = "cycling"
	}

	var improvement string
	if energyDiff > 0 {
		improvement = fmt.Sprintf("Your energy rose %d%% compared to yesterday after %s.", energyDiff, mode)
	} else {
		improvement = fmt.Sprintf("Your wellness score improved by %d%% following your active commute.", wellnessDiff)
	}

	// The 15 below is the original design's stand-in figure for when the
	// energy delta is non-positive, kept verbatim.
	healthPct := energyDiff
	if healthPct <= 0 {
		healthPct = 15
	}

	return models.CoachInsight{
		Text: improvement + " If this continues, your weekly stability will recover.",
		Type: models.InsightBalanced,
		Correlations: models.Correlations{
			Health: fmt.Sprintf("Data shows a %d%% immediate boost in vitality after switching modes.", healthPct),
			Planet: "You prevented 2.5kg of CO2 today -- that's equal to charging 300 smartphones.",
		},
	}
}

func matchCarRegression(h history) bool {
	return h.previous != nil && h.latest.Transport == models.TransportCar && h.previous.Transport.Active()
}

func buildCarRegression(h history) models.CoachInsight {
	return models.CoachInsight{
		Text: fmt.Sprintf("Driving today spiked your CO2 by %skg compared to yesterday. A cycle commute tomorrow would neutralize this rise.", formatKg(h.latest.CO2Emitted)),
		Type: models.InsightPlanet,
		Correlations: models.Correlations{
			Health: "Sedentary travel is linked to a 12% drop in afternoon focus levels.",
			Planet: "This single trip emitted more carbon than your last 3 days combined.",
		},
	}
}

func matchActiveStreak(h history) bool {
	if len(h.entries) < 3 {
		return false
	}
	for _, e := range h.entries[len(h.entries)-3:] {
		if !e.Transport.Active() {
			return false
		}
	}
	return true
}

func buildActiveStreak(h history) models.CoachInsight {
	totalSaved := 0.0
	for _, e := range h.entries[len(h.entries)-3:] {
		totalSaved += 2.5 - e.CO2Emitted
	}

	return models.CoachInsight{
		Text: "You've maintained a 3-day active streak. Your carbon footprint is down 60% this week, while your energy stability is peaking.",
		Type: models.InsightBalanced,
		Correlations: models.Correlations{
			Health: "Consistent low-intensity cardio builds 20% more daily endurance.",
			Planet: fmt.Sprintf("You have saved approx %.1fkg of CO2 in just 72 hours.", totalSaved),
		},
	}
}

func matchSleepMoodDip(h history) bool {
	return h.previous != nil && h.latest.Sleep < 6 && h.latest.Mood < h.previous.Mood
}

func buildSleepMoodDip(h history) models.CoachInsight {
	moodDrop := pctChange(h.latest.Mood, h.previous.Mood)

	return models.CoachInsight{
		Text: fmt.Sprintf("Your sleep dropped to %.1fh, correlating with a %d%% dip in your mood score. Recovery tonight is key.", h.latest.Sleep, abs(moodDrop)),
		Type: models.InsightHealth,
		Correlations: models.Correlations{
			Health: "Sleep debt under 6h is the top predictor of mood volatility in your data.",
			Planet: "Fatigue correlates with a 30% higher likelihood of choosing high-carbon transport.",
		},
	}
}

func matchPeakWellness(h history) bool {
	return h.latest.WellnessScore > 80
}

func buildPeakWellness(h history) models.CoachInsight {
	weekly := h.entries
	if len(weekly) > 7 {
		weekly = weekly[len(weekly)-7:]
	}
	sum := 0.0
	for _, e := range weekly {
		sum += float64(e.WellnessScore)
	}
	avg := int(math.Round(sum / float64(len(weekly))))

	return models.CoachInsight{
		Text: fmt.Sprintf("You are operating at peak efficiency. Your current weekly average is %d/100, placing you in the top tier of balanced living.", avg),
		Type: models.InsightBalanced,
		Correlations: models.Correlations{
			Health: "Sustained scores above 80 indicate optimal metabolic and mental synchrony.",
			Planet: "Your lifestyle this week is aligned with a 1.5 degrees C climate target.",
		},
	}
}

func defaultInsight(h history) models.CoachInsight {
	return models.CoachInsight{
		Text: fmt.Sprintf("Based on your last %d logs, your energy fluctuates with your commute choices. Try cycling tomorrow to test the correlation.", len(h.entries)),
		Type: models.InsightBalanced,
		Correlations: models.Correlations{
			Health: "Active days consistently show 15-20% higher energy reports.",
			Planet: "Small daily choices compound to create measurable climatic impact.",
		},
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
