package model

import (
	"errors"
	"fmt"
)

// Vessel is one synthetic ship record. Fuel and emissions are in tonnes,
// cost in USD. Field tags follow the dashboard fixture schema.
type Vessel struct {
	ID          int      `json:"vessel_id" yaml:"vessel_id"`
	Type        string   `json:"vessel_type" yaml:"vessel_type"`
	DWT         int      `json:"dwt" yaml:"dwt"`
	SafetyScore int      `json:"safety_score" yaml:"safety_score"`
	FuelType    FuelType `json:"main_engine_fuel_type" yaml:"main_engine_fuel_type"`
	TotalFuel   float64  `json:"total_fuel" yaml:"total_fuel"`
	TotalCO2eq  float64  `json:"total_co2eq" yaml:"total_co2eq"`
	CostUSD     float64  `json:"adjusted_cost_usd" yaml:"adjusted_cost_usd"`
	Selected    bool     `json:"selected" yaml:"selected"`
}

// Validate checks that the vessel record is sound.
func (v Vessel) Validate() error {
	var errs []error
	if v.DWT <= 0 {
		errs = append(errs, fmt.Errorf("vessel %d: dwt must be positive", v.ID))
	}
	if v.SafetyScore < 1 || v.SafetyScore > 5 {
		errs = append(errs, fmt.Errorf("vessel %d: safety score %d outside 1..5", v.ID, v.SafetyScore))
	}
	if !v.FuelType.Valid() {
		errs = append(errs, fmt.Errorf("vessel %d: unknown fuel type %q", v.ID, string(v.FuelType)))
	}
	return errors.Join(errs...)
}

// CostPerDWT is the selection key: adjusted cost per tonne of capacity.
// The +1 keeps the ratio finite for degenerate records.
func (v Vessel) CostPerDWT() float64 {
	return v.CostUSD / float64(v.DWT+1)
}

// IDs returns the vessel ids in slice order.
func IDs(vs []Vessel) []int {
	ids := make([]int, len(vs))
	for i, v := range vs {
		ids[i] = v.ID
	}
	return ids
}
