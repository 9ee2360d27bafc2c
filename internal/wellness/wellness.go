// Package wellness holds the pure scoring and carbon accounting formulas.
// All functions are stateless and deterministic; callers are responsible for
// range-validating self-report inputs before calling.
package wellness

import (
	"math"

	"github.com/lifelens/lifelens/internal/constants"
	"github.com/lifelens/lifelens/internal/models"
)

// co2Factors maps each recognized transport mode to its daily emission in
// kilograms. Unrecognized modes are handled explicitly by the lookup helpers,
// not by a zero-value map miss.
var co2Factors = map[models.Transport]float64{
	models.TransportWalk:   constants.CO2FactorWalk,
	models.TransportCycle:  constants.CO2FactorCycle,
	models.TransportPublic: constants.CO2FactorPublic,
	models.TransportCar:    constants.CO2FactorCar,
}

// Score computes the 0-100 composite wellness score from 0-10 self-reports.
// Sleep is weighted heaviest; the weights are fixed design constants.
func Score(sleep, energy, mood float64) int {
	raw := sleep*0.4 + energy*0.3 + mood*0.3
	return clamp(int(math.Round(raw*10)), 0, 100)
}

// DailyCO2 returns the emission figure in kilograms for a transport mode.
// An unrecognized mode resolves to the worst-case car figure. That fallback
// is a deliberate fail-safe: bad data must inflate the footprint, never
// erase it.
func DailyCO2(t models.Transport) float64 {
	if factor, ok := co2Factors[t]; ok {
		return factor
	}
	return constants.CO2FactorCar
}

// CO2Savings returns the avoided emission in kilograms relative to driving.
// Unrecognized modes count as zero-emission here, so their savings equal the
// full car factor; this mirrors the emission fallback from the opposite side
// and keeps savings non-negative.
func CO2Savings(t models.Transport) float64 {
	factor := 0.0
	if f, ok := co2Factors[t]; ok {
		factor = f
	}
	return math.Max(0, constants.CO2FactorCar-factor)
}

// SustainabilityScore maps a week's summed emissions to a 0-100 score, where
// WeeklyCO2Reference kilograms or more scores zero.
func SustainabilityScore(weeklyCO2Sum float64) int {
	score := 100 - (weeklyCO2Sum/constants.WeeklyCO2Reference)*100
	return clamp(int(math.Round(score)), 0, 100)
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
