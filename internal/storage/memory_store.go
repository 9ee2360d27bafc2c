package storage

import (
	"fmt"
	"time"

	"github.com/lifelens/lifelens/internal/constants"
	"github.com/lifelens/lifelens/internal/mission"
	"github.com/lifelens/lifelens/internal/models"
)

// MemoryStore is a map-backed Provider with the same versioning and fallback
// behavior as the durable stores. It exists so domain logic and commands can
// be exercised without a storage backend.
type MemoryStore struct {
	doc *document
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) Init() error {
	if s.doc != nil {
		return fmt.Errorf("storage already initialized")
	}
	return s.seed()
}

func (s *MemoryStore) Load() error {
	if s.doc == nil || s.doc.Version != constants.SchemaVersion {
		return s.seed()
	}
	return nil
}

func (s *MemoryStore) Close() error {
	return nil
}

func (s *MemoryStore) ResetData() error {
	return s.seed()
}

func (s *MemoryStore) seed() error {
	now := time.Now()
	s.doc = &document{
		Version: constants.SchemaVersion,
		User:    defaultProfile(),
		Entries: seedEntries(now),
		Mission: seedMission(now),
	}
	return nil
}

// SetEntries replaces the entry list wholesale. Test seam; the Provider
// surface only upserts one entry at a time.
func (s *MemoryStore) SetEntries(entries []models.DailyEntry) {
	if s.doc == nil {
		s.doc = &document{Version: constants.SchemaVersion, User: defaultProfile()}
	}
	s.doc.Entries = append([]models.DailyEntry(nil), entries...)
}

func (s *MemoryStore) SaveEntry(entry models.DailyEntry) error {
	if s.doc == nil {
		return fmt.Errorf("storage not loaded")
	}
	s.doc.Entries = upsertEntry(s.doc.Entries, entry)
	return nil
}

func (s *MemoryStore) GetEntries() ([]models.DailyEntry, error) {
	if s.doc == nil {
		return nil, fmt.Errorf("storage not loaded")
	}
	entries := make([]models.DailyEntry, len(s.doc.Entries))
	copy(entries, s.doc.Entries)
	return entries, nil
}

func (s *MemoryStore) GetMissionState() (models.MissionState, error) {
	if s.doc == nil {
		return models.MissionState{}, fmt.Errorf("storage not loaded")
	}
	if s.doc.Mission.ID == "" {
		return mission.Initial(time.Now()), nil
	}
	return s.doc.Mission, nil
}

func (s *MemoryStore) SaveMissionState(state models.MissionState) error {
	if s.doc == nil {
		return fmt.Errorf("storage not loaded")
	}
	s.doc.Mission = state
	return nil
}

func (s *MemoryStore) GetUserProfile() (models.UserProfile, error) {
	if s.doc == nil {
		return models.UserProfile{}, fmt.Errorf("storage not loaded")
	}
	if s.doc.User.Name == "" {
		return defaultProfile(), nil
	}
	return s.doc.User, nil
}

func (s *MemoryStore) SaveUserProfile(profile models.UserProfile) error {
	if s.doc == nil {
		return fmt.Errorf("storage not loaded")
	}
	s.doc.User = profile
	return nil
}

func (s *MemoryStore) GetConfigPath() string {
	return ":memory:"
}
