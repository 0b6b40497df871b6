package analysis

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kilianp07/fleetmock/core/model"
)

func testFleet() []model.Vessel {
	return []model.Vessel{
		{ID: 1, DWT: 100000, SafetyScore: 3, FuelType: model.FuelLNG, TotalFuel: 150, TotalCO2eq: 300, CostUSD: 1000, Selected: true},
		{ID: 2, DWT: 50000, SafetyScore: 4, FuelType: model.FuelMethanol, TotalFuel: 75, TotalCO2eq: 100, CostUSD: 2000, Selected: true},
		{ID: 3, DWT: 200000, SafetyScore: 5, FuelType: model.FuelLNG, TotalFuel: 300, TotalCO2eq: 200, CostUSD: 3000.25, Selected: true},
	}
}

func seeded() *rand.Rand { return rand.New(rand.NewPCG(1, 2)) }

func TestFleetStats(t *testing.T) {
	s, err := FleetStats(testFleet())
	require.NoError(t, err)
	assert.Equal(t, 3, s.FleetSize)
	assert.Equal(t, 6000.25, s.TotalCost)
	assert.Equal(t, 350000, s.TotalDWT)
	assert.Equal(t, 4.0, s.AvgSafetyScore)
	assert.Equal(t, 600.0, s.TotalCO2eq)
	assert.Equal(t, 525.0, s.TotalFuel)
	assert.Equal(t, 2, s.FuelTypesCount)
	assert.Equal(t, model.SolverOptimal, s.SolverStatus)

	_, err = FleetStats(nil)
	assert.ErrorIs(t, err, ErrEmptyFleet)
}

func TestFuelMix(t *testing.T) {
	mix := FuelMix(testFleet())
	assert.Equal(t, map[model.FuelType]int{model.FuelLNG: 2, model.FuelMethanol: 1}, mix)
}

func TestFuelSummary(t *testing.T) {
	vs := append(testFleet(), model.Vessel{ID: 4, DWT: 1000, SafetyScore: 1, FuelType: model.FuelAmmonia, TotalFuel: 1, TotalCO2eq: 1, CostUSD: 1})
	sum := FuelSummary(vs)
	require.Len(t, sum.FuelTypes, 3)

	lng := sum.FuelTypes[0]
	assert.Equal(t, model.FuelLNG, lng.FuelType)
	assert.Equal(t, 2, lng.VesselCount)
	assert.Equal(t, 300000, lng.TotalDWT)
	assert.Equal(t, 450.0, lng.TotalFuel)
	assert.Equal(t, 4000.25, lng.TotalCost)
	assert.Equal(t, 4.0, lng.AvgSafetyScore)

	// ties keep first-seen order
	assert.Equal(t, model.FuelMethanol, sum.FuelTypes[1].FuelType)
	assert.Equal(t, model.FuelAmmonia, sum.FuelTypes[2].FuelType)

	empty := FuelSummary(nil)
	assert.NotNil(t, empty.FuelTypes)
	assert.Empty(t, empty.FuelTypes)
}

func TestCarbonSensitivity(t *testing.T) {
	cs := CarbonSensitivity(testFleet(), DefaultCarbonPrices)
	assert.Equal(t, 4, cs.Summary.NumPoints)
	assert.Equal(t, DefaultCarbonPrices, cs.Summary.CarbonPrices)
	require.Len(t, cs.Points, 4)

	first := cs.Points[0]
	assert.Equal(t, 40.0, first.CarbonPrice)
	assert.Equal(t, 600.0, first.TotalCO2eq)
	assert.Equal(t, model.Round2(6000.25+600*40), first.TotalCost)
	assert.Equal(t, []int{1, 2, 3}, first.FleetVesselIDs)
	assert.Equal(t, 3, first.FleetSize)

	last := cs.Points[3]
	assert.Equal(t, 420.0, last.TotalCO2eq)
	assert.Equal(t, model.Round2(6000.25+420*160), last.TotalCost)

	for i := 1; i < len(cs.Points); i++ {
		assert.Less(t, cs.Points[i].TotalCO2eq, cs.Points[i-1].TotalCO2eq)
	}
}

func TestRobustness(t *testing.T) {
	fleet := make([]model.Vessel, 10)
	for i := range fleet {
		fleet[i].ID = i + 1
	}
	r := Robustness(fleet, seeded())
	require.Len(t, r.Vessels, 10)
	assert.Equal(t, 10, r.Summary.VesselCount)
	assert.Equal(t, 5, r.Summary.EssentialCount)
	assert.Equal(t, 3, r.Summary.StableCount)
	assert.Equal(t, 2, r.Summary.VariableCount)

	for i, e := range r.Vessels {
		assert.Equal(t, fleet[i].ID, e.VesselID)
		switch {
		case i < 5:
			assert.Equal(t, model.CategoryEssential, e.Category)
			assert.Equal(t, 1.0, e.AppearanceFrequency)
		case i < 8:
			assert.Equal(t, model.CategoryUseful, e.Category)
			assert.GreaterOrEqual(t, e.AppearanceFrequency, 0.7)
			assert.LessOrEqual(t, e.AppearanceFrequency, 0.95)
		default:
			assert.Equal(t, model.CategoryMarginal, e.Category)
			assert.GreaterOrEqual(t, e.AppearanceFrequency, 0.4)
			assert.LessOrEqual(t, e.AppearanceFrequency, 0.6)
		}
	}
}

func TestSafetyThresholds(t *testing.T) {
	th := SafetyThresholds(3.0, 5.0, 0.1)
	require.Len(t, th, 21)
	assert.Equal(t, 3.0, th[0])
	assert.Equal(t, 3.3, th[3])
	assert.Equal(t, 5.0, th[20])

	// a step that does not divide the range stops below max
	assert.Equal(t, []float64{3.0, 3.1, 3.2}, SafetyThresholds(3.0, 3.25, 0.1))
	assert.Equal(t, []float64{3.0, 3.5, 4.0}, SafetyThresholds(3.0, 4.0, 0.5))

	assert.Nil(t, SafetyThresholds(5, 3, 0.1))
	assert.Nil(t, SafetyThresholds(3, 5, 0))
}

func TestPareto(t *testing.T) {
	stats := model.FleetStats{TotalCost: 1000, TotalCO2eq: 500}
	fleet := testFleet()
	pts := Pareto(stats, fleet, 24, SafetyThresholds(3.0, 5.0, 0.1), 4.8, seeded())
	require.Len(t, pts, 21)

	assert.Equal(t, 1000.0, pts[0].TotalCost)
	assert.Equal(t, 500.0, pts[0].TotalCO2eq)
	assert.Equal(t, 24, pts[0].FleetSize)

	top := pts[20]
	assert.Equal(t, 5.0, top.SafetyThreshold)
	assert.Equal(t, 1200.0, top.TotalCost)
	assert.Equal(t, 400.0, top.TotalCO2eq)
	assert.Equal(t, 28, top.FleetSize)
	assert.Equal(t, []int{1, 2, 3}, top.FleetVesselIDs)

	for _, p := range pts {
		if p.SafetyThreshold < 4.8 {
			require.NotNil(t, p.ShadowPrice, "threshold %v", p.SafetyThreshold)
			assert.GreaterOrEqual(t, *p.ShadowPrice, 100000.0)
			assert.LessOrEqual(t, *p.ShadowPrice, 5000000.0)
		} else {
			assert.Nil(t, p.ShadowPrice, "threshold %v", p.SafetyThreshold)
		}
	}
}

func TestHeatmap(t *testing.T) {
	h := Heatmap(DefaultCarbonPrices, DefaultHeatmapThresholds, DefaultHeatmapBaseCost, DefaultHeatmapFleetSize)
	require.Len(t, h.Cells, 16)
	assert.Equal(t, 16, h.Summary.TotalCells)
	assert.Equal(t, DefaultHeatmapThresholds, h.Summary.SafetyThresholds)

	c := h.Cells[0]
	assert.Equal(t, 40.0, c.CarbonPrice)
	assert.Equal(t, 3.0, c.SafetyThreshold)
	assert.Equal(t, 22000000.0, c.TotalCost)
	assert.Equal(t, 22, c.FleetSize)
	assert.True(t, c.Feasible)

	last := h.Cells[15]
	assert.Equal(t, 160.0, last.CarbonPrice)
	assert.Equal(t, 4.5, last.SafetyThreshold)
	assert.InDelta(t, 49000000.0, last.TotalCost, 0.01)
	assert.Equal(t, 23, last.FleetSize)
}

func TestShapley(t *testing.T) {
	fleet := make([]model.Vessel, 12)
	for i := range fleet {
		fleet[i] = model.Vessel{ID: i + 1, TotalCO2eq: float64(100 - i)}
	}
	s := Shapley(fleet, DefaultShapleyEssential, seeded())
	require.Len(t, s.Vessels, 12)
	assert.Equal(t, 12, s.Summary.VesselCount)
	assert.Equal(t, 10, s.Summary.EssentialCount)
	assert.Equal(t, 2, s.Summary.UsefulCount)
	assert.Zero(t, s.Summary.MarginalCount)

	// cleanest vessel ranks first
	assert.Equal(t, 12, s.Vessels[0].VesselID)
	total := 0.0
	for i, e := range s.Vessels {
		assert.Equal(t, i+1, e.Rank)
		want := 10000000 - float64(i)*300000
		assert.InDelta(t, want, e.ShapleyValue, 50000.01)
		if i < 10 {
			assert.Equal(t, model.CategoryEssential, e.Category)
		} else {
			assert.Equal(t, model.CategoryUseful, e.Category)
		}
		total += e.ShapleyValue
	}
	assert.InDelta(t, total, s.Summary.TotalShapleyValue, 0.1)

	small := Shapley(fleet[:3], DefaultShapleyEssential, seeded())
	assert.Equal(t, 3, small.Summary.EssentialCount)
	assert.Zero(t, small.Summary.UsefulCount)
}

func TestComparison(t *testing.T) {
	stats := model.FleetStats{TotalCost: 100, TotalCO2eq: 200, AvgSafetyScore: 3.5, TotalDWT: 1000, TotalFuel: 50}
	rows := Comparison(stats, 24)
	require.Len(t, rows, 6)

	metrics := make([]string, len(rows))
	for i, r := range rows {
		metrics[i] = r.Metric
	}
	assert.Equal(t, []string{"total_cost", "fleet_size", "total_co2eq", "avg_safety_score", "total_dwt", "total_fuel"}, metrics)
	assert.InDelta(t, 105.0, rows[0].Sensitivity, 1e-9)
	assert.Equal(t, 24.0, rows[1].Baseline)
	assert.InDelta(t, 190.0, rows[2].Sensitivity, 1e-9)
	assert.Equal(t, -5.0, rows[2].DeltaPct)
	assert.Equal(t, 4.0, rows[3].Sensitivity)
	assert.Equal(t, 15.0, rows[3].DeltaPct)
	assert.Equal(t, 1000.0, rows[4].Sensitivity)
	assert.InDelta(t, 51.0, rows[5].Sensitivity, 1e-9)
}
