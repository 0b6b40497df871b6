package analysis

import (
	"math"
	"math/rand/v2"

	"github.com/kilianp07/fleetmock/core/model"
)

// SafetyThresholds returns the thresholds from min to max (inclusive) in
// steps, rounded to one decimal.
func SafetyThresholds(min, max, step float64) []float64 {
	if step <= 0 || max < min {
		return nil
	}
	n := int(math.Floor((max-min)/step+1e-9)) + 1
	out := make([]float64, n)
	for i := range out {
		out[i] = math.Round((min+float64(i)*step)*10) / 10
	}
	return out
}

// Pareto mocks the cost/safety frontier: raising the minimum safety threshold
// increases cost quadratically and lowers emissions symmetrically. Thresholds
// at or above bindingBelow carry no shadow price.
func Pareto(stats model.FleetStats, fleet []model.Vessel, fleetSize int, thresholds []float64, bindingBelow float64, rng *rand.Rand) []model.ParetoPoint {
	ids := model.IDs(fleet)
	base := float64(model.MinFleetSafety)
	out := make([]model.ParetoPoint, 0, len(thresholds))
	for _, t := range thresholds {
		d := t - base
		factor := 1 + d*d*0.05
		p := model.ParetoPoint{
			SafetyThreshold: t,
			TotalCost:       model.Round2(stats.TotalCost * factor),
			TotalCO2eq:      model.Round2(stats.TotalCO2eq * (2 - factor)),
			FleetSize:       fleetSize + int(d*2),
			FleetVesselIDs:  ids,
		}
		if t < bindingBelow {
			sp := model.Round2(uniform(rng, 100000, 5000000))
			p.ShadowPrice = &sp
		}
		out = append(out, p)
	}
	return out
}
