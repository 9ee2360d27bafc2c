package models

// Transport is a daily commute mode choice.
type Transport string

const (
	TransportWalk   Transport = "walk"
	TransportCycle  Transport = "cycle"
	TransportPublic Transport = "public"
	TransportCar    Transport = "car"
)

// Transports lists all recognized modes in display order.
var Transports = []Transport{TransportWalk, TransportCycle, TransportPublic, TransportCar}

// Active reports whether the mode counts as active transport.
func (t Transport) Active() bool {
	return t == TransportCycle || t == TransportWalk
}

// DailyEntry is one calendar day's self-report. Sleep, energy, and mood are
// 0-10 self-ratings validated at the input boundary, not here. WellnessScore
// and CO2Emitted are derived at creation and stored, never recomputed on read.
type DailyEntry struct {
	ID            string    `json:"id"`
	Date          string    `json:"date"`      // YYYY-MM-DD, unique upsert key
	Timestamp     int64     `json:"timestamp"` // creation instant, epoch milliseconds
	Sleep         float64   `json:"sleep"`
	Energy        float64   `json:"energy"`
	Mood          float64   `json:"mood"`
	Transport     Transport `json:"transport"`
	WellnessScore int       `json:"wellness_score"`
	CO2Emitted    float64   `json:"co2_emitted"` // kilograms
}
