package storage

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/lifelens/lifelens/internal/constants"
	"github.com/lifelens/lifelens/internal/models"
)

func testEntry(date string, ts time.Time) models.DailyEntry {
	return models.DailyEntry{
		ID:            "test-" + date,
		Date:          date,
		Timestamp:     ts.UnixMilli(),
		Sleep:         7,
		Energy:        6,
		Mood:          6,
		Transport:     models.TransportCycle,
		WellnessScore: 64,
		CO2Emitted:    0,
	}
}

func TestJSONStoreLoadSeedsFreshStore(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lifelens.json")
	store := NewJSONStore(path)

	if err := store.Load(); err != nil {
		t.Fatalf("Load() on missing file: %v", err)
	}

	entries, err := store.GetEntries()
	if err != nil {
		t.Fatalf("GetEntries(): %v", err)
	}
	if len(entries) != constants.SeedEntryCount {
		t.Errorf("seeded %d entries, want %d", len(entries), constants.SeedEntryCount)
	}

	yesterday := time.Now().AddDate(0, 0, -1).Format(constants.DateFormat)
	if last := entries[len(entries)-1]; last.Date != yesterday {
		t.Errorf("last seed entry dated %s, want %s", last.Date, yesterday)
	}
	for i := 1; i < len(entries); i++ {
		if entries[i].Timestamp < entries[i-1].Timestamp {
			t.Fatal("seed entries are not sorted ascending by timestamp")
		}
	}

	profile, err := store.GetUserProfile()
	if err != nil {
		t.Fatalf("GetUserProfile(): %v", err)
	}
	if profile.Name != constants.DefaultUserName || profile.OnboardingCompleted {
		t.Errorf("unexpected default profile: %+v", profile)
	}

	m, err := store.GetMissionState()
	if err != nil {
		t.Fatalf("GetMissionState(): %v", err)
	}
	if m.TargetCount != 3 || m.CurrentCount != 0 {
		t.Errorf("unexpected initial mission: %+v", m)
	}
}

func TestJSONStoreReseedIdempotence(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lifelens.json")

	store := NewJSONStore(path)
	if err := store.Load(); err != nil {
		t.Fatalf("first Load(): %v", err)
	}

	today := time.Now()
	if err := store.SaveEntry(testEntry(today.Format(constants.DateFormat), today)); err != nil {
		t.Fatalf("SaveEntry(): %v", err)
	}

	// A second load against a current-version store must not reseed.
	reopened := NewJSONStore(path)
	if err := reopened.Load(); err != nil {
		t.Fatalf("second Load(): %v", err)
	}

	entries, err := reopened.GetEntries()
	if err != nil {
		t.Fatalf("GetEntries(): %v", err)
	}
	if len(entries) != constants.SeedEntryCount+1 {
		t.Errorf("entry written between loads did not survive: %d entries", len(entries))
	}
}

func TestJSONStoreVersionMismatchReseeds(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lifelens.json")

	store := NewJSONStore(path)
	if err := store.Load(); err != nil {
		t.Fatalf("Load(): %v", err)
	}
	today := time.Now()
	if err := store.SaveEntry(testEntry(today.Format(constants.DateFormat), today)); err != nil {
		t.Fatalf("SaveEntry(): %v", err)
	}

	// Rewrite the document with a stale version tag.
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read store file: %v", err)
	}
	var doc map[string]json.RawMessage
	if err := json.Unmarshal(data, &doc); err != nil {
		t.Fatalf("parse store file: %v", err)
	}
	doc["version"] = json.RawMessage("2")
	stale, _ := json.Marshal(doc)
	if err := os.WriteFile(path, stale, 0600); err != nil {
		t.Fatalf("write stale store file: %v", err)
	}

	reopened := NewJSONStore(path)
	if err := reopened.Load(); err != nil {
		t.Fatalf("Load() after version change: %v", err)
	}

	entries, err := reopened.GetEntries()
	if err != nil {
		t.Fatalf("GetEntries(): %v", err)
	}
	if len(entries) != constants.SeedEntryCount {
		t.Errorf("version mismatch should wipe and reseed, got %d entries", len(entries))
	}
}

func TestJSONStoreCorruptFileReseeds(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lifelens.json")
	if err := os.WriteFile(path, []byte("{not json"), 0600); err != nil {
		t.Fatalf("write corrupt file: %v", err)
	}

	store := NewJSONStore(path)
	if err := store.Load(); err != nil {
		t.Fatalf("Load() on corrupt file: %v", err)
	}

	entries, err := store.GetEntries()
	if err != nil {
		t.Fatalf("GetEntries(): %v", err)
	}
	if len(entries) != constants.SeedEntryCount {
		t.Errorf("corrupt file should reseed, got %d entries", len(entries))
	}
}

func TestJSONStoreSaveEntryUpsertsByDate(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lifelens.json")
	store := NewJSONStore(path)
	if err := store.Load(); err != nil {
		t.Fatalf("Load(): %v", err)
	}
	if err := store.ResetData(); err != nil {
		t.Fatalf("ResetData(): %v", err)
	}

	today := time.Now()
	date := today.Format(constants.DateFormat)

	first := testEntry(date, today)
	first.WellnessScore = 50
	if err := store.SaveEntry(first); err != nil {
		t.Fatalf("SaveEntry(first): %v", err)
	}

	second := testEntry(date, today.Add(time.Hour))
	second.ID = "test-second"
	second.WellnessScore = 70
	if err := store.SaveEntry(second); err != nil {
		t.Fatalf("SaveEntry(second): %v", err)
	}

	entries, err := store.GetEntries()
	if err != nil {
		t.Fatalf("GetEntries(): %v", err)
	}

	var matches []models.DailyEntry
	for _, e := range entries {
		if e.Date == date {
			matches = append(matches, e)
		}
	}
	if len(matches) != 1 {
		t.Fatalf("found %d entries for %s, want exactly 1", len(matches), date)
	}
	if matches[0].ID != "test-second" || matches[0].WellnessScore != 70 {
		t.Errorf("later write should win: %+v", matches[0])
	}

	for i := 1; i < len(entries); i++ {
		if entries[i].Timestamp < entries[i-1].Timestamp {
			t.Fatal("entries are not sorted ascending by timestamp after upsert")
		}
	}
}

func TestJSONStoreNotLoadedGuards(t *testing.T) {
	store := NewJSONStore(filepath.Join(t.TempDir(), "lifelens.json"))

	if _, err := store.GetEntries(); err == nil {
		t.Error("GetEntries() before Load() should error")
	}
	if err := store.SaveEntry(models.DailyEntry{}); err == nil {
		t.Error("SaveEntry() before Load() should error")
	}
	if _, err := store.GetMissionState(); err == nil {
		t.Error("GetMissionState() before Load() should error")
	}
	if _, err := store.GetUserProfile(); err == nil {
		t.Error("GetUserProfile() before Load() should error")
	}
}

func TestJSONStoreProfileRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lifelens.json")
	store := NewJSONStore(path)
	if err := store.Load(); err != nil {
		t.Fatalf("Load(): %v", err)
	}

	if err := store.SaveUserProfile(models.UserProfile{Name: "Ada", OnboardingCompleted: true}); err != nil {
		t.Fatalf("SaveUserProfile(): %v", err)
	}

	reopened := NewJSONStore(path)
	if err := reopened.Load(); err != nil {
		t.Fatalf("Load(): %v", err)
	}
	profile, err := reopened.GetUserProfile()
	if err != nil {
		t.Fatalf("GetUserProfile(): %v", err)
	}
	if profile.Name != "Ada" || !profile.OnboardingCompleted {
		t.Errorf("profile did not round-trip: %+v", profile)
	}
}
