package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/lifelens/lifelens/internal/constants"
	"github.com/lifelens/lifelens/internal/logger"
	"github.com/lifelens/lifelens/internal/mission"
	"github.com/lifelens/lifelens/internal/models"
)

// document is the single versioned JSON blob holding all four records.
type document struct {
	Version int                 `json:"version"`
	User    models.UserProfile  `json:"user"`
	Entries []models.DailyEntry `json:"entries"`
	Mission models.MissionState `json:"mission"`
}

type JSONStore struct {
	path string
	doc  *document
}

func NewJSONStore(configPath string) *JSONStore {
	return &JSONStore{
		path: configPath,
	}
}

func (s *JSONStore) Init() error {
	// Create config directory if it doesn't exist
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	// Check if file already exists
	if _, err := os.Stat(s.path); err == nil {
		return fmt.Errorf("storage already initialized at %s", s.path)
	}

	return s.seed()
}

// Load reads the stored document. An absent file, an unreadable document, or
// a schema version other than the current one all trigger a destructive
// reseed; this is the versioning policy, not an error path. A document at
// the current version loads as-is.
func (s *JSONStore) Load() error {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return s.Init()
		}
		return fmt.Errorf("failed to read storage: %w", err)
	}

	doc := &document{}
	if err := json.Unmarshal(data, doc); err != nil {
		logger.Warn("Stored data unreadable, reseeding", "error", err)
		return s.seed()
	}
	if doc.Version != constants.SchemaVersion {
		logger.Warn("Schema version mismatch, reseeding", "stored", doc.Version, "current", constants.SchemaVersion)
		return s.seed()
	}

	if doc.Entries == nil {
		doc.Entries = []models.DailyEntry{}
	}
	s.doc = doc
	return nil
}

func (s *JSONStore) Close() error {
	return nil
}

func (s *JSONStore) ResetData() error {
	return s.seed()
}

// seed wipes the document and writes the current version tag, the default
// profile, the demo entry history, and the initial mission.
func (s *JSONStore) seed() error {
	now := time.Now()
	s.doc = &document{
		Version: constants.SchemaVersion,
		User:    defaultProfile(),
		Entries: seedEntries(now),
		Mission: seedMission(now),
	}
	return s.save()
}

func (s *JSONStore) save() error {
	data, err := json.MarshalIndent(s.doc, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize storage: %w", err)
	}

	if err := os.WriteFile(s.path, data, 0600); err != nil {
		return fmt.Errorf("failed to write storage: %w", err)
	}

	return nil
}

func (s *JSONStore) SaveEntry(entry models.DailyEntry) error {
	if s.doc == nil {
		return fmt.Errorf("storage not loaded")
	}

	s.doc.Entries = upsertEntry(s.doc.Entries, entry)
	return s.save()
}

func (s *JSONStore) GetEntries() ([]models.DailyEntry, error) {
	if s.doc == nil {
		return nil, fmt.Errorf("storage not loaded")
	}

	entries := make([]models.DailyEntry, len(s.doc.Entries))
	copy(entries, s.doc.Entries)
	return entries, nil
}

func (s *JSONStore) GetMissionState() (models.MissionState, error) {
	if s.doc == nil {
		return models.MissionState{}, fmt.Errorf("storage not loaded")
	}

	// Absent mission record falls back to the initial mission.
	if s.doc.Mission.ID == "" {
		return mission.Initial(time.Now()), nil
	}
	return s.doc.Mission, nil
}

func (s *JSONStore) SaveMissionState(state models.MissionState) error {
	if s.doc == nil {
		return fmt.Errorf("storage not loaded")
	}

	s.doc.Mission = state
	return s.save()
}

func (s *JSONStore) GetUserProfile() (models.UserProfile, error) {
	if s.doc == nil {
		return models.UserProfile{}, fmt.Errorf("storage not loaded")
	}

	if s.doc.User.Name == "" {
		return defaultProfile(), nil
	}
	return s.doc.User, nil
}

func (s *JSONStore) SaveUserProfile(profile models.UserProfile) error {
	if s.doc == nil {
		return fmt.Errorf("storage not loaded")
	}

	s.doc.User = profile
	return s.save()
}

func (s *JSONStore) GetConfigPath() string {
	return s.path
}
