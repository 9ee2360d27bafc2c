package constants

const (
	AppName           = "lifelens"
	DefaultConfigPath = "~/.config/lifelens/lifelens.json"
	Version           = "v0.3.0"

	// DateFormat is the standard date format used throughout the application (YYYY-MM-DD)
	DateFormat = "2006-01-02"

	// SchemaVersion is the version of the persisted record set. A stored
	// version that does not match triggers a destructive reseed.
	SchemaVersion = 3

	// Backup constants
	MaxBackups       = 14
	BackupDirName    = "backups"
	BackupFilePrefix = "lifelens-"

	// DefaultUserName is the profile name written on first run.
	DefaultUserName = "User"

	// SeedEntryCount is the number of demo entries written on reseed.
	SeedEntryCount = 6
)

const (
	// CO2 factors in kilograms per day by transport mode.
	CO2FactorWalk   = 0.0
	CO2FactorCycle  = 0.0
	CO2FactorPublic = 0.5
	CO2FactorCar    = 2.5

	// WeeklyCO2Reference is the weekly emission sum (kg) that maps to a
	// sustainability score of zero.
	WeeklyCO2Reference = 20.0

	// EnergyCreditPerCycleDay is the flat energy credit added to mission
	// lifetime totals for every qualifying cycle day.
	EnergyCreditPerCycleDay = 6
)
