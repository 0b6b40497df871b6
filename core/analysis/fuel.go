package analysis

import (
	"sort"

	"github.com/kilianp07/fleetmock/core/model"
)

// FuelSummary groups every vessel, selected or not, by main engine fuel.
// Groups are ordered by vessel count, largest first; equal counts keep the
// order in which the fuel first appears.
func FuelSummary(vessels []model.Vessel) model.FuelSummary {
	idx := make(map[model.FuelType]int)
	var groups []model.FuelTypeSummary
	safety := make([]int, 0, len(model.FuelTypes))
	for _, v := range vessels {
		i, ok := idx[v.FuelType]
		if !ok {
			i = len(groups)
			idx[v.FuelType] = i
			groups = append(groups, model.FuelTypeSummary{FuelType: v.FuelType})
			safety = append(safety, 0)
		}
		g := &groups[i]
		g.VesselCount++
		g.TotalDWT += v.DWT
		g.TotalFuel += v.TotalFuel
		g.TotalCO2eq += v.TotalCO2eq
		g.TotalCost += v.CostUSD
		safety[i] += v.SafetyScore
	}
	for i := range groups {
		g := &groups[i]
		g.AvgSafetyScore = model.Round2(float64(safety[i]) / float64(g.VesselCount))
		g.TotalFuel = model.Round2(g.TotalFuel)
		g.TotalCO2eq = model.Round2(g.TotalCO2eq)
		g.TotalCost = model.Round2(g.TotalCost)
	}
	sort.SliceStable(groups, func(a, b int) bool {
		return groups[a].VesselCount > groups[b].VesselCount
	})
	if groups == nil {
		groups = []model.FuelTypeSummary{}
	}
	return model.FuelSummary{FuelTypes: groups}
}
