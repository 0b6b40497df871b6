package model

import "fmt"

// FuelType names a main-engine fuel.
type FuelType string

const (
	FuelMethanol   FuelType = "Methanol"
	FuelLNG        FuelType = "LNG"
	FuelPropane    FuelType = "LPG (Propane)"
	FuelButane     FuelType = "LPG (Butane)"
	FuelDistillate FuelType = "DISTILLATE FUEL"
	FuelAmmonia    FuelType = "Ammonia"
	FuelHydrogen   FuelType = "Hydrogen"
)

// FuelTypes lists every supported fuel in sampling order.
var FuelTypes = []FuelType{
	FuelMethanol,
	FuelLNG,
	FuelPropane,
	FuelButane,
	FuelDistillate,
	FuelAmmonia,
	FuelHydrogen,
}

// FuelFactors scales cost and emissions relative to distillate fuel.
type FuelFactors struct {
	Cost float64
	CO2  float64
}

var fuelFactors = map[FuelType]FuelFactors{
	FuelDistillate: {Cost: 1.0, CO2: 1.0},
	FuelLNG:        {Cost: 1.2, CO2: 0.75},
	FuelPropane:    {Cost: 1.15, CO2: 0.8},
	FuelButane:     {Cost: 1.15, CO2: 0.8},
	FuelMethanol:   {Cost: 1.5, CO2: 0.4}, // green methanol
	FuelAmmonia:    {Cost: 1.8, CO2: 0.1},
	FuelHydrogen:   {Cost: 2.5, CO2: 0.0},
}

// Factors returns the cost and CO2 factors of the fuel.
func (f FuelType) Factors() (FuelFactors, error) {
	ff, ok := fuelFactors[f]
	if !ok {
		return FuelFactors{}, fmt.Errorf("unknown fuel type %q", string(f))
	}
	return ff, nil
}

// Valid reports whether f is a known fuel type.
func (f FuelType) Valid() bool {
	_, ok := fuelFactors[f]
	return ok
}

// VesselTypes lists the hull types a generated vessel may have.
var VesselTypes = []string{
	"Chemical/Products Tanker",
	"LPG Tanker",
	"LNG Carrier",
	"Oil Tanker",
}

// SafetyScores are the possible safety ratings, 5 being the best.
var SafetyScores = []int{1, 2, 3, 4, 5}

// MinFleetSafety is the lowest safety score a selected vessel may keep.
const MinFleetSafety = 3
