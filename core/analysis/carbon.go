package analysis

import "github.com/kilianp07/fleetmock/core/model"

// DefaultCarbonPrices are the carbon prices (USD per tonne CO2eq) used by the
// sensitivity and heatmap views.
var DefaultCarbonPrices = []float64{40, 80, 120, 160}

// carbonReferencePrice is the price at which emissions are unchanged.
const carbonReferencePrice = 40.0

// CarbonSensitivity simulates rising carbon prices. Higher prices are assumed
// to shift the fleet to cleaner fuels, lowering emissions by 1% per 4 USD
// above the reference price, while the carbon tax raises the total cost.
func CarbonSensitivity(fleet []model.Vessel, prices []float64) model.CarbonSensitivity {
	baseCost, baseCO2 := totals(fleet)
	ids := model.IDs(fleet)

	var out model.CarbonSensitivity
	out.Summary.NumPoints = len(prices)
	out.Summary.CarbonPrices = append([]float64{}, prices...)
	out.Points = make([]model.SensitivityPoint, 0, len(prices))
	for _, p := range prices {
		co2 := baseCO2 * (1 - (p-carbonReferencePrice)/400)
		out.Points = append(out.Points, model.SensitivityPoint{
			CarbonPrice:    p,
			TotalCost:      model.Round2(baseCost + co2*p),
			TotalCO2eq:     model.Round2(co2),
			FleetSize:      len(fleet),
			FleetVesselIDs: ids,
		})
	}
	return out
}
