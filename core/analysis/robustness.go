package analysis

import (
	"math/rand/v2"

	"github.com/kilianp07/fleetmock/core/model"
)

// Share of the fleet, in selection order, classified essential and useful;
// the remainder is marginal.
const (
	essentialShare = 0.5
	usefulShare    = 0.8
)

// Robustness mocks an MCMC robustness study: vessels early in the selection
// order appear in every sampled fleet, later ones less often.
func Robustness(fleet []model.Vessel, rng *rand.Rand) model.Robustness {
	var out model.Robustness
	n := float64(len(fleet))
	out.Vessels = make([]model.RobustnessEntry, 0, len(fleet))
	for i, v := range fleet {
		var (
			cat  string
			freq float64
		)
		switch {
		case float64(i) < n*essentialShare:
			cat, freq = model.CategoryEssential, 1.0
		case float64(i) < n*usefulShare:
			cat, freq = model.CategoryUseful, uniform(rng, 0.7, 0.95)
		default:
			cat, freq = model.CategoryMarginal, uniform(rng, 0.4, 0.6)
		}
		out.Vessels = append(out.Vessels, model.RobustnessEntry{
			VesselID:            v.ID,
			AppearanceFrequency: model.Round2(freq),
			Category:            cat,
		})
		switch cat {
		case model.CategoryEssential:
			out.Summary.EssentialCount++
		case model.CategoryUseful:
			out.Summary.StableCount++
		default:
			out.Summary.VariableCount++
		}
	}
	out.Summary.VesselCount = len(fleet)
	return out
}
