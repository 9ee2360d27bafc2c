package storage

import "github.com/lifelens/lifelens/internal/models"

// Provider is the persistence contract behind every consumer of stored
// state. Implementations keep four records (schema version, user profile,
// entry list, mission state) versioned as a whole: loading a store whose
// version does not match the current schema version destroys all records and
// writes the seed dataset. There is no migration path by design.
//
// Reads never fail on absent records; they fall back to documented defaults
// (empty entry list, initial mission, default profile). Writes are each a
// single underlying store write; no cross-record transaction is provided.
type Provider interface {
	// Lifecycle
	Init() error
	Load() error
	Close() error

	// ResetData wipes every record and writes the seed dataset.
	ResetData() error

	// Entries
	SaveEntry(models.DailyEntry) error
	GetEntries() ([]models.DailyEntry, error)

	// Mission
	GetMissionState() (models.MissionState, error)
	SaveMissionState(models.MissionState) error

	// Profile
	GetUserProfile() (models.UserProfile, error)
	SaveUserProfile(models.UserProfile) error

	// Utils
	GetConfigPath() string
}
