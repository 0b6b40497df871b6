package analysis

import "github.com/kilianp07/fleetmock/core/model"

// Comparison contrasts the baseline fleet (safety threshold 3.0) with a mocked
// stricter scenario (threshold 4.0).
func Comparison(stats model.FleetStats, fleetSize int) []model.ComparisonRow {
	return []model.ComparisonRow{
		{Metric: "total_cost", Baseline: stats.TotalCost, Sensitivity: stats.TotalCost * 1.05, DeltaPct: 5.0},
		{Metric: "fleet_size", Baseline: float64(fleetSize), Sensitivity: float64(fleetSize), DeltaPct: 0.0},
		{Metric: "total_co2eq", Baseline: stats.TotalCO2eq, Sensitivity: stats.TotalCO2eq * 0.95, DeltaPct: -5.0},
		{Metric: "avg_safety_score", Baseline: stats.AvgSafetyScore, Sensitivity: 4.0, DeltaPct: 15.0},
		{Metric: "total_dwt", Baseline: float64(stats.TotalDWT), Sensitivity: float64(stats.TotalDWT), DeltaPct: 0.0},
		{Metric: "total_fuel", Baseline: stats.TotalFuel, Sensitivity: stats.TotalFuel * 1.02, DeltaPct: 2.0},
	}
}
