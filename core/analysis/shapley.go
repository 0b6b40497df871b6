package analysis

import (
	"math/rand/v2"
	"sort"

	"github.com/kilianp07/fleetmock/core/model"
)

const (
	shapleyTop   = 10000000.0
	shapleyDecay = 300000.0
	shapleyNoise = 50000.0
	// DefaultShapleyEssential is the number of top ranked vessels flagged essential.
	DefaultShapleyEssential = 10
)

// Shapley ranks the fleet by emissions, cleanest first, and assigns each
// vessel a linearly decaying value with uniform noise.
func Shapley(fleet []model.Vessel, essential int, rng *rand.Rand) model.Shapley {
	ranked := append([]model.Vessel(nil), fleet...)
	sort.SliceStable(ranked, func(a, b int) bool {
		return ranked[a].TotalCO2eq < ranked[b].TotalCO2eq
	})

	var out model.Shapley
	out.Vessels = make([]model.ShapleyEntry, 0, len(ranked))
	total := 0.0
	for i, v := range ranked {
		val := shapleyTop - float64(i)*shapleyDecay + uniform(rng, -shapleyNoise, shapleyNoise)
		total += val
		cat := model.CategoryUseful
		if i < essential {
			cat = model.CategoryEssential
		}
		out.Vessels = append(out.Vessels, model.ShapleyEntry{
			VesselID:     v.ID,
			ShapleyValue: model.Round2(val),
			Rank:         i + 1,
			Category:     cat,
		})
	}
	ess := min(essential, len(ranked))
	out.Summary.TotalShapleyValue = model.Round2(total)
	out.Summary.VesselCount = len(ranked)
	out.Summary.EssentialCount = ess
	out.Summary.UsefulCount = len(ranked) - ess
	return out
}
