package analysis

import "github.com/kilianp07/fleetmock/core/model"

// Heatmap defaults.
var (
	DefaultHeatmapThresholds = []float64{3.0, 3.5, 4.0, 4.5}
)

const (
	DefaultHeatmapBaseCost  = 20000000.0
	DefaultHeatmapFleetSize = 22
)

// Heatmap crosses carbon prices with safety thresholds. Cost grows with both
// axes; every cell is reported feasible.
func Heatmap(prices, thresholds []float64, baseCost float64, baseFleetSize int) model.Heatmap {
	var out model.Heatmap
	out.Cells = make([]model.HeatmapCell, 0, len(prices)*len(thresholds))
	base := float64(model.MinFleetSafety)
	for _, p := range prices {
		for _, s := range thresholds {
			cost := baseCost * (1 + p/400) * (1 + (s-base)/2)
			out.Cells = append(out.Cells, model.HeatmapCell{
				CarbonPrice:     p,
				SafetyThreshold: s,
				TotalCost:       model.Round2(cost),
				FleetSize:       baseFleetSize + int(s-base),
				Feasible:        true,
			})
		}
	}
	out.Summary.TotalCells = len(out.Cells)
	out.Summary.CarbonPrices = append([]float64{}, prices...)
	out.Summary.SafetyThresholds = append([]float64{}, thresholds...)
	return out
}
