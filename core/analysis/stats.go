package analysis

import (
	"errors"
	"math/rand/v2"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/kilianp07/fleetmock/core/model"
)

// ErrEmptyFleet is returned when statistics are requested for no vessels.
var ErrEmptyFleet = errors.New("empty fleet")

// FleetStats aggregates the selected fleet.
func FleetStats(fleet []model.Vessel) (model.FleetStats, error) {
	if len(fleet) == 0 {
		return model.FleetStats{}, ErrEmptyFleet
	}
	cost := make([]float64, len(fleet))
	co2 := make([]float64, len(fleet))
	fuel := make([]float64, len(fleet))
	safety := make([]float64, len(fleet))
	fuels := make(map[model.FuelType]struct{})
	dwt := 0
	for i, v := range fleet {
		cost[i] = v.CostUSD
		co2[i] = v.TotalCO2eq
		fuel[i] = v.TotalFuel
		safety[i] = float64(v.SafetyScore)
		fuels[v.FuelType] = struct{}{}
		dwt += v.DWT
	}
	return model.FleetStats{
		FleetSize:      len(fleet),
		TotalCost:      model.Round2(floats.Sum(cost)),
		TotalDWT:       dwt,
		AvgSafetyScore: model.Round2(stat.Mean(safety, nil)),
		TotalCO2eq:     model.Round2(floats.Sum(co2)),
		TotalFuel:      model.Round2(floats.Sum(fuel)),
		FuelTypesCount: len(fuels),
		SolverStatus:   model.SolverOptimal,
	}, nil
}

// FuelMix counts vessels per fuel type.
func FuelMix(vessels []model.Vessel) map[model.FuelType]int {
	out := make(map[model.FuelType]int)
	for _, v := range vessels {
		out[v.FuelType]++
	}
	return out
}

func totals(fleet []model.Vessel) (cost, co2 float64) {
	c := make([]float64, len(fleet))
	e := make([]float64, len(fleet))
	for i, v := range fleet {
		c[i] = v.CostUSD
		e[i] = v.TotalCO2eq
	}
	return floats.Sum(c), floats.Sum(e)
}

func uniform(rng *rand.Rand, min, max float64) float64 {
	return distuv.Uniform{Min: min, Max: max, Src: rng}.Rand()
}
