package storage

import (
	"fmt"
	"math/rand"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/lifelens/lifelens/internal/constants"
	"github.com/lifelens/lifelens/internal/mission"
	"github.com/lifelens/lifelens/internal/models"
	"github.com/lifelens/lifelens/internal/wellness"
)

// defaultProfile is what a fresh store and a missing profile record both
// resolve to.
func defaultProfile() models.UserProfile {
	return models.UserProfile{Name: constants.DefaultUserName}
}

// seedEntries builds the demo history written on reseed: six days ending
// yesterday, alternating car and public transit, with a synthetic rising
// wellness series. Self-reports carry a small jitter; the wellness scores
// are deliberately the fixed series, not recomputed from the jittered
// inputs.
func seedEntries(now time.Time) []models.DailyEntry {
	entries := make([]models.DailyEntry, 0, constants.SeedEntryCount)
	for i := 0; i < constants.SeedEntryCount; i++ {
		day := now.AddDate(0, 0, -(constants.SeedEntryCount - i))
		transport := models.TransportCar
		if i%2 != 0 {
			transport = models.TransportPublic
		}
		entries = append(entries, models.DailyEntry{
			ID:            fmt.Sprintf("seed-%s", uuid.NewString()),
			Date:          day.Format(constants.DateFormat),
			Timestamp:     day.UnixMilli(),
			Sleep:         6 + rand.Float64(),
			Energy:        5 + rand.Float64()*2,
			Mood:          5 + rand.Float64()*2,
			Transport:     transport,
			WellnessScore: 65 + i*2,
			CO2Emitted:    wellness.DailyCO2(transport),
		})
	}
	return entries
}

// seedMission is the mission record written on reseed.
func seedMission(now time.Time) models.MissionState {
	return mission.Initial(now)
}

// upsertEntry replaces any entry sharing the new entry's date, appends, and
// re-sorts ascending by timestamp. At most one entry per calendar date.
func upsertEntry(entries []models.DailyEntry, entry models.DailyEntry) []models.DailyEntry {
	next := make([]models.DailyEntry, 0, len(entries)+1)
	for _, e := range entries {
		if e.Date != entry.Date {
			next = append(next, e)
		}
	}
	next = append(next, entry)
	sort.SliceStable(next, func(i, j int) bool {
		return next[i].Timestamp < next[j].Timestamp
	})
	return next
}
