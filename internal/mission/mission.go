// Package mission implements the weekly mission state machine as pure
// transforms over a MissionState value. The current time is always an
// explicit parameter so the week-boundary behavior is testable without clock
// control; callers persist the returned state themselves.
package mission

import (
	"time"

	"github.com/lifelens/lifelens/internal/constants"
	"github.com/lifelens/lifelens/internal/models"
	"github.com/lifelens/lifelens/internal/wellness"
)

const weekMillis = 7 * 24 * time.Hour / time.Millisecond

// Initial returns the default mission with its tracking week starting now.
func Initial(now time.Time) models.MissionState {
	return models.MissionState{
		ID:                 "cycle-commute-1",
		Title:              "Cycle to work 3x this week",
		TargetCount:        3,
		WeekStartTimestamp: now.UnixMilli(),
	}
}

// CheckAndResetWeek rolls the mission into a fresh tracking week when seven
// days have elapsed since the week start. Weekly progress resets; lifetime
// totals are untouched. Idempotent within a week.
func CheckAndResetWeek(m models.MissionState, now time.Time) models.MissionState {
	if now.UnixMilli()-m.WeekStartTimestamp >= int64(weekMillis) {
		m.WeekStartTimestamp = now.UnixMilli()
		m.CurrentCount = 0
		m.Completed = false
	}
	return m
}

// UpdateProgress applies one day's transport choice to the mission. The week
// check always runs first. Only cycling advances the mission: every cycle day
// credits the lifetime totals, and until the mission is completed it also
// increments the weekly count. The count is not clamped once the target is
// reached; Completed simply stops further increments for the week.
func UpdateProgress(m models.MissionState, transport models.Transport, now time.Time) models.MissionState {
	next := CheckAndResetWeek(m, now)

	if transport == models.TransportCycle {
		next.TotalCO2Saved += wellness.CO2Savings(models.TransportCycle)
		next.TotalEnergyGained += constants.EnergyCreditPerCycleDay

		if !next.Completed {
			next.CurrentCount++
			if next.CurrentCount >= next.TargetCount {
				next.Completed = true
			}
		}
	}

	return next
}
