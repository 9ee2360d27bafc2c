package storage

import (
	"database/sql"
	"path/filepath"
	"testing"
	"time"

	"github.com/lifelens/lifelens/internal/constants"
	"github.com/lifelens/lifelens/internal/models"
)

func setupSQLiteStore(t *testing.T) *SQLiteStore {
	t.Helper()
	store := NewSQLiteStore(filepath.Join(t.TempDir(), "lifelens.db"))
	if err := store.Load(); err != nil {
		t.Fatalf("Load(): %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestSQLiteStoreLoadSeedsFreshStore(t *testing.T) {
	store := setupSQLiteStore(t)

	entries, err := store.GetEntries()
	if err != nil {
		t.Fatalf("GetEntries(): %v", err)
	}
	if len(entries) != constants.SeedEntryCount {
		t.Errorf("seeded %d entries, want %d", len(entries), constants.SeedEntryCount)
	}

	profile, err := store.GetUserProfile()
	if err != nil {
		t.Fatalf("GetUserProfile(): %v", err)
	}
	if profile.Name != constants.DefaultUserName {
		t.Errorf("profile name = %q, want %q", profile.Name, constants.DefaultUserName)
	}

	m, err := store.GetMissionState()
	if err != nil {
		t.Fatalf("GetMissionState(): %v", err)
	}
	if m.ID == "" || m.TargetCount != 3 {
		t.Errorf("unexpected initial mission: %+v", m)
	}
}

func TestSQLiteStoreReseedIdempotence(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lifelens.db")

	store := NewSQLiteStore(path)
	if err := store.Load(); err != nil {
		t.Fatalf("first Load(): %v", err)
	}
	today := time.Now()
	if err := store.SaveEntry(testEntry(today.Format(constants.DateFormat), today)); err != nil {
		t.Fatalf("SaveEntry(): %v", err)
	}
	if err := store.Close(); err != nil {
		t.Fatalf("Close(): %v", err)
	}

	reopened := NewSQLiteStore(path)
	if err := reopened.Load(); err != nil {
		t.Fatalf("second Load(): %v", err)
	}
	defer reopened.Close()

	entries, err := reopened.GetEntries()
	if err != nil {
		t.Fatalf("GetEntries(): %v", err)
	}
	if len(entries) != constants.SeedEntryCount+1 {
		t.Errorf("entry written between loads did not survive: %d entries", len(entries))
	}
}

func TestSQLiteStoreVersionMismatchReseeds(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lifelens.db")

	store := NewSQLiteStore(path)
	if err := store.Load(); err != nil {
		t.Fatalf("Load(): %v", err)
	}
	today := time.Now()
	if err := store.SaveEntry(testEntry(today.Format(constants.DateFormat), today)); err != nil {
		t.Fatalf("SaveEntry(): %v", err)
	}
	if err := store.Close(); err != nil {
		t.Fatalf("Close(): %v", err)
	}

	// Downgrade the stored version tag out of band.
	db, err := sql.Open("sqlite", path)
	if err != nil {
		t.Fatalf("open database: %v", err)
	}
	if _, err := db.Exec("UPDATE records SET value = '2' WHERE key = 'version'"); err != nil {
		t.Fatalf("downgrade version: %v", err)
	}
	db.Close()

	reopened := NewSQLiteStore(path)
	if err := reopened.Load(); err != nil {
		t.Fatalf("Load() after downgrade: %v", err)
	}
	defer reopened.Close()

	entries, err := reopened.GetEntries()
	if err != nil {
		t.Fatalf("GetEntries(): %v", err)
	}
	if len(entries) != constants.SeedEntryCount {
		t.Errorf("version mismatch should wipe and reseed, got %d entries", len(entries))
	}
}

func TestSQLiteStoreSaveEntryUpsertsByDate(t *testing.T) {
	store := setupSQLiteStore(t)

	today := time.Now()
	date := today.Format(constants.DateFormat)

	first := testEntry(date, today)
	if err := store.SaveEntry(first); err != nil {
		t.Fatalf("SaveEntry(first): %v", err)
	}

	second := testEntry(date, today.Add(time.Hour))
	second.ID = "test-second"
	if err := store.SaveEntry(second); err != nil {
		t.Fatalf("SaveEntry(second): %v", err)
	}

	entries, err := store.GetEntries()
	if err != nil {
		t.Fatalf("GetEntries(): %v", err)
	}

	count := 0
	for _, e := range entries {
		if e.Date == date {
			count++
			if e.ID != "test-second" {
				t.Errorf("later write should win, got %q", e.ID)
			}
		}
	}
	if count != 1 {
		t.Errorf("found %d entries for %s, want exactly 1", count, date)
	}
}

func TestSQLiteStoreMissionRoundTrip(t *testing.T) {
	store := setupSQLiteStore(t)

	m, err := store.GetMissionState()
	if err != nil {
		t.Fatalf("GetMissionState(): %v", err)
	}
	m.CurrentCount = 2
	m.TotalCO2Saved = 5
	if err := store.SaveMissionState(m); err != nil {
		t.Fatalf("SaveMissionState(): %v", err)
	}

	got, err := store.GetMissionState()
	if err != nil {
		t.Fatalf("GetMissionState(): %v", err)
	}
	if got.CurrentCount != 2 || got.TotalCO2Saved != 5 {
		t.Errorf("mission did not round-trip: %+v", got)
	}
}

func TestSQLiteStoreNotLoadedGuards(t *testing.T) {
	store := NewSQLiteStore(filepath.Join(t.TempDir(), "lifelens.db"))

	if _, err := store.GetEntries(); err == nil {
		t.Error("GetEntries() before Load() should error")
	}
	if err := store.SaveMissionState(models.MissionState{}); err == nil {
		t.Error("SaveMissionState() before Load() should error")
	}
}
