package storage

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	_ "modernc.org/sqlite"

	"github.com/lifelens/lifelens/internal/constants"
	"github.com/lifelens/lifelens/internal/logger"
	"github.com/lifelens/lifelens/internal/mission"
	"github.com/lifelens/lifelens/internal/models"
)

// Record keys within the flat key-value namespace.
const (
	recordVersion = "version"
	recordUser    = "user"
	recordEntries = "entries"
	recordMission = "mission"
)

// SQLiteStore keeps the four records as JSON blobs in a single key-value
// table. Same versioning contract as the JSON store; SQLite only changes the
// durability mechanism, not the record model.
type SQLiteStore struct {
	path string
	db   *sql.DB
}

func NewSQLiteStore(path string) *SQLiteStore {
	return &SQLiteStore{
		path: path,
	}
}

func (s *SQLiteStore) Init() error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	if _, err := os.Stat(s.path); err == nil {
		return fmt.Errorf("storage already initialized at %s", s.path)
	}

	if err := s.open(); err != nil {
		return err
	}
	return s.seed()
}

func (s *SQLiteStore) Load() error {
	if _, err := os.Stat(s.path); os.IsNotExist(err) {
		return s.Init()
	}

	if err := s.open(); err != nil {
		return err
	}

	stored, ok, err := s.getRecord(recordVersion)
	if err != nil {
		return fmt.Errorf("failed to read schema version: %w", err)
	}
	version, parseErr := strconv.Atoi(stored)
	if !ok || parseErr != nil || version != constants.SchemaVersion {
		logger.Warn("Schema version mismatch, reseeding", "stored", stored, "current", constants.SchemaVersion)
		return s.seed()
	}

	return nil
}

func (s *SQLiteStore) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

func (s *SQLiteStore) open() error {
	if s.db != nil {
		return nil
	}

	db, err := sql.Open("sqlite", s.path)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	s.db = db

	_, err = s.db.Exec(`CREATE TABLE IF NOT EXISTS records (
		key TEXT PRIMARY KEY,
		value TEXT NOT NULL
	)`)
	if err != nil {
		return fmt.Errorf("failed to create records table: %w", err)
	}
	return nil
}

func (s *SQLiteStore) ResetData() error {
	if s.db == nil {
		return fmt.Errorf("storage not loaded")
	}
	return s.seed()
}

// seed clears every record and writes the version tag, default profile, demo
// entries, and initial mission.
func (s *SQLiteStore) seed() error {
	now := time.Now()

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin reseed: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM records"); err != nil {
		return fmt.Errorf("failed to clear records: %w", err)
	}

	records := map[string]any{
		recordUser:    defaultProfile(),
		recordEntries: seedEntries(now),
		recordMission: seedMission(now),
	}
	if _, err := tx.Exec("INSERT INTO records (key, value) VALUES (?, ?)", recordVersion, strconv.Itoa(constants.SchemaVersion)); err != nil {
		return fmt.Errorf("failed to write version: %w", err)
	}
	for key, record := range records {
		value, err := json.Marshal(record)
		if err != nil {
			return fmt.Errorf("failed to serialize %s record: %w", key, err)
		}
		if _, err := tx.Exec("INSERT INTO records (key, value) VALUES (?, ?)", key, string(value)); err != nil {
			return fmt.Errorf("failed to write %s record: %w", key, err)
		}
	}

	return tx.Commit()
}

func (s *SQLiteStore) getRecord(key string) (string, bool, error) {
	var value string
	err := s.db.QueryRow("SELECT value FROM records WHERE key = ?", key).Scan(&value)
	if err == sql.ErrNoRows {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return value, true, nil
}

func (s *SQLiteStore) setRecord(key string, record any) error {
	value, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("failed to serialize %s record: %w", key, err)
	}
	_, err = s.db.Exec(`INSERT INTO records (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value`, key, string(value))
	if err != nil {
		return fmt.Errorf("failed to write %s record: %w", key, err)
	}
	return nil
}

func (s *SQLiteStore) SaveEntry(entry models.DailyEntry) error {
	if s.db == nil {
		return fmt.Errorf("storage not loaded")
	}

	entries, err := s.GetEntries()
	if err != nil {
		return err
	}
	return s.setRecord(recordEntries, upsertEntry(entries, entry))
}

func (s *SQLiteStore) GetEntries() ([]models.DailyEntry, error) {
	if s.db == nil {
		return nil, fmt.Errorf("storage not loaded")
	}

	value, ok, err := s.getRecord(recordEntries)
	if err != nil {
		return nil, fmt.Errorf("failed to read entries: %w", err)
	}
	if !ok {
		return []models.DailyEntry{}, nil
	}

	var entries []models.DailyEntry
	if err := json.Unmarshal([]byte(value), &entries); err != nil {
		logger.Warn("Entries record unreadable, returning empty list", "error", err)
		return []models.DailyEntry{}, nil
	}
	return entries, nil
}

func (s *SQLiteStore) GetMissionState() (models.MissionState, error) {
	if s.db == nil {
		return models.MissionState{}, fmt.Errorf("storage not loaded")
	}

	value, ok, err := s.getRecord(recordMission)
	if err != nil {
		return models.MissionState{}, fmt.Errorf("failed to read mission: %w", err)
	}
	if !ok {
		return mission.Initial(time.Now()), nil
	}

	var state models.MissionState
	if err := json.Unmarshal([]byte(value), &state); err != nil {
		logger.Warn("Mission record unreadable, returning initial mission", "error", err)
		return mission.Initial(time.Now()), nil
	}
	return state, nil
}

func (s *SQLiteStore) SaveMissionState(state models.MissionState) error {
	if s.db == nil {
		return fmt.Errorf("storage not loaded")
	}
	return s.setRecord(recordMission, state)
}

func (s *SQLiteStore) GetUserProfile() (models.UserProfile, error) {
	if s.db == nil {
		return models.UserProfile{}, fmt.Errorf("storage not loaded")
	}

	value, ok, err := s.getRecord(recordUser)
	if err != nil {
		return models.UserProfile{}, fmt.Errorf("failed to read profile: %w", err)
	}
	if !ok {
		return defaultProfile(), nil
	}

	var profile models.UserProfile
	if err := json.Unmarshal([]byte(value), &profile); err != nil {
		logger.Warn("Profile record unreadable, returning default profile", "error", err)
		return defaultProfile(), nil
	}
	return profile, nil
}

func (s *SQLiteStore) SaveUserProfile(profile models.UserProfile) error {
	if s.db == nil {
		return fmt.Errorf("storage not loaded")
	}
	return s.setRecord(recordUser, profile)
}

func (s *SQLiteStore) GetConfigPath() string {
	return s.path
}
