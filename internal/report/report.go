// Package report computes the display aggregates consumed by the CLI and TUI
// from the raw entry list. The store never aggregates; everything here is
// derived on read.
package report

import (
	"math"
	"time"

	"github.com/lifelens/lifelens/internal/models"
	"github.com/lifelens/lifelens/internal/wellness"
)

// TrendPoint is one day in the recent-trend chart series.
type TrendPoint struct {
	Day      string // short weekday label
	Wellness int
	CO2      float64 // kilograms
}

// Projection is the forward-looking pattern note shown on the dashboard.
type Projection struct {
	Positive bool
	Text     string
}

// Summary is the full dashboard view of an entry history.
type Summary struct {
	LatestScore         int
	SustainabilityScore int
	EntryCount          int
	JourneyDay          int
	CheckedInToday      bool
	Projection          Projection
	Trend               []TrendPoint
}

// Baseline holds the weekly averages used by the what-if comparisons.
type Baseline struct {
	AvgWellness int
	AvgEnergy   int
	CO2Sum      float64 // kilograms over the trailing seven days
}

// Summarize derives the dashboard aggregates from an ordered entry history.
// An empty history yields a zero Summary.
func Summarize(entries []models.DailyEntry, now time.Time) Summary {
	if len(entries) == 0 {
		return Summary{}
	}

	latest := entries[len(entries)-1]

	sumCO2 := 0.0
	for _, e := range entries {
		sumCO2 += e.CO2Emitted
	}

	first := entries[0]
	journeyDay := int(math.Ceil(math.Abs(float64(now.UnixMilli()-first.Timestamp)) / 864e5))
	if journeyDay == 0 {
		journeyDay = 1
	}

	s := Summary{
		LatestScore:         latest.WellnessScore,
		SustainabilityScore: wellness.SustainabilityScore(sumCO2),
		EntryCount:          len(entries),
		JourneyDay:          journeyDay,
		CheckedInToday:      sameDay(time.UnixMilli(latest.Timestamp), now),
		Projection:          project(entries),
		Trend:               trend(entries),
	}
	return s
}

// project scores the recent pattern: active days count 1, public transit 0.5.
// The outlook is positive with at least one active day in the last three and
// a weekly score of two or better.
func project(entries []models.DailyEntry) Projection {
	last3 := entries
	if len(last3) > 3 {
		last3 = last3[len(last3)-3:]
	}
	recentActive := 0
	for _, e := range last3 {
		if e.Transport.Active() {
			recentActive++
		}
	}

	weeklyScore := 0.0
	for _, e := range entries {
		switch {
		case e.Transport.Active():
			weeklyScore++
		case e.Transport == models.TransportPublic:
			weeklyScore += 0.5
		}
	}

	if recentActive >= 1 && weeklyScore >= 2 {
		return Projection{
			Positive: true,
			Text:     "Continue this pattern: +12% avg energy, -9 kg CO2 this month",
		}
	}
	return Projection{
		Text: "Without change: energy plateau, +15 kg CO2 this month",
	}
}

func trend(entries []models.DailyEntry) []TrendPoint {
	recent := entries
	if len(recent) > 7 {
		recent = recent[len(recent)-7:]
	}

	points := make([]TrendPoint, 0, len(recent))
	for _, e := range recent {
		day := e.Date
		if d, err := time.Parse("2006-01-02", e.Date); err == nil {
			day = d.Format("Mon")
		}
		points = append(points, TrendPoint{
			Day:      day,
			Wellness: e.WellnessScore,
			CO2:      e.CO2Emitted,
		})
	}
	return points
}

// WeeklyBaseline derives the trailing-week averages for what-if comparisons.
// With no recent data the self-report averages fall back to mid-scale
// defaults rather than zero.
func WeeklyBaseline(entries []models.DailyEntry, now time.Time) Baseline {
	recent := entries
	if len(recent) > 7 {
		recent = recent[len(recent)-7:]
	}

	b := Baseline{AvgWellness: 65, AvgEnergy: 6}
	if len(recent) > 0 {
		wellnessSum, energySum := 0.0, 0.0
		for _, e := range recent {
			wellnessSum += float64(e.WellnessScore)
			energySum += e.Energy
		}
		b.AvgWellness = int(math.Round(wellnessSum / float64(len(recent))))
		if avg := int(math.Round(energySum / float64(len(recent)))); avg > 0 {
			b.AvgEnergy = avg
		}
	}

	weekAgo := now.Add(-7 * 24 * time.Hour).UnixMilli()
	for _, e := range entries {
		if e.Timestamp > weekAgo {
			b.CO2Sum += e.CO2Emitted
		}
	}
	return b
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
