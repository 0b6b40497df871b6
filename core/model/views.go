package model

// FleetStats aggregates the selected fleet.
type FleetStats struct {
	FleetSize      int     `json:"fleet_size"`
	TotalCost      float64 `json:"total_cost"`
	TotalDWT       int     `json:"total_dwt"`
	AvgSafetyScore float64 `json:"avg_safety_score"`
	TotalCO2eq     float64 `json:"total_co2eq"`
	TotalFuel      float64 `json:"total_fuel"`
	FuelTypesCount int     `json:"fuel_types_count"`
	SolverStatus   string  `json:"solver_status"`
}

// SolverOptimal is the only solver status the mock ever reports.
const SolverOptimal = "Optimal"

// FleetResult is the content of fleet_result.json.
type FleetResult struct {
	OptimalFleet FleetStats `json:"optimal_fleet"`
	Vessels      []Vessel   `json:"vessels"`
}

// FuelTypeSummary aggregates all vessels sharing a fuel type.
type FuelTypeSummary struct {
	FuelType       FuelType `json:"fuel_type"`
	VesselCount    int      `json:"vessel_count"`
	TotalDWT       int      `json:"total_dwt"`
	TotalFuel      float64  `json:"total_fuel"`
	TotalCO2eq     float64  `json:"total_co2eq"`
	TotalCost      float64  `json:"total_cost"`
	AvgSafetyScore float64  `json:"avg_safety_score"`
}

// FuelSummary is the content of fuel_type_summary.json.
type FuelSummary struct {
	FuelTypes []FuelTypeSummary `json:"fuel_types"`
}

// SensitivityPoint is one carbon price scenario.
type SensitivityPoint struct {
	CarbonPrice    float64 `json:"carbon_price"`
	TotalCost      float64 `json:"total_cost"`
	TotalCO2eq     float64 `json:"total_co2eq"`
	FleetSize      int     `json:"fleet_size"`
	FleetVesselIDs []int   `json:"fleet_vessel_ids"`
}

// CarbonSensitivity is the content of carbon_sensitivity.json.
type CarbonSensitivity struct {
	Summary struct {
		NumPoints    int       `json:"num_points"`
		CarbonPrices []float64 `json:"carbon_prices"`
	} `json:"summary"`
	Points []SensitivityPoint `json:"points"`
}

// Vessel categories shared by the robustness and Shapley views.
const (
	CategoryEssential = "essential"
	CategoryUseful    = "useful"
	CategoryMarginal  = "marginal"
)

// RobustnessEntry reports how often a vessel appears in sampled fleets.
type RobustnessEntry struct {
	VesselID            int     `json:"vessel_id"`
	AppearanceFrequency float64 `json:"appearance_frequency"`
	Category            string  `json:"category"`
}

// Robustness is the content of mcmc_robustness.json.
type Robustness struct {
	Summary struct {
		VesselCount    int `json:"vessel_count"`
		EssentialCount int `json:"essential_count"`
		StableCount    int `json:"stable_count"`
		VariableCount  int `json:"variable_count"`
	} `json:"summary"`
	Vessels []RobustnessEntry `json:"vessels"`
}

// ParetoPoint is one safety threshold on the cost/safety frontier. A nil
// ShadowPrice means the constraint is not binding.
type ParetoPoint struct {
	SafetyThreshold float64  `json:"safety_threshold"`
	TotalCost       float64  `json:"total_cost"`
	TotalCO2eq      float64  `json:"total_co2eq"`
	FleetSize       int      `json:"fleet_size"`
	FleetVesselIDs  []int    `json:"fleet_vessel_ids"`
	ShadowPrice     *float64 `json:"shadow_price"`
}

// HeatmapCell is one (carbon price, safety threshold) scenario.
type HeatmapCell struct {
	CarbonPrice     float64 `json:"carbon_price"`
	SafetyThreshold float64 `json:"safety_threshold"`
	TotalCost       float64 `json:"total_cost"`
	FleetSize       int     `json:"fleet_size"`
	Feasible        bool    `json:"feasible"`
}

// Heatmap is the content of sensitivity_heatmap.json.
type Heatmap struct {
	Summary struct {
		TotalCells       int       `json:"total_cells"`
		CarbonPrices     []float64 `json:"carbon_prices"`
		SafetyThresholds []float64 `json:"safety_thresholds"`
	} `json:"summary"`
	Cells []HeatmapCell `json:"cells"`
}

// ShapleyEntry ranks a vessel by its marginal contribution.
type ShapleyEntry struct {
	VesselID     int     `json:"vessel_id"`
	ShapleyValue float64 `json:"shapley_value"`
	Rank         int     `json:"rank"`
	Category     string  `json:"category"`
}

// Shapley is the content of shapley_values.json.
type Shapley struct {
	Summary struct {
		TotalShapleyValue float64 `json:"total_shapley_value"`
		VesselCount       int     `json:"vessel_count"`
		EssentialCount    int     `json:"essential_count"`
		UsefulCount       int     `json:"useful_count"`
		MarginalCount     int     `json:"marginal_count"`
	} `json:"summary"`
	Vessels []ShapleyEntry `json:"vessels"`
}

// ComparisonRow compares a metric between the baseline (safety 3.0) and the
// stricter (safety 4.0) scenario.
type ComparisonRow struct {
	Metric      string  `json:"metric"`
	Baseline    float64 `json:"baseline_3_0"`
	Sensitivity float64 `json:"sensitivity_4_0"`
	DeltaPct    float64 `json:"delta_pct"`
}

// RouteInfo is the content of route_info.json.
type RouteInfo struct {
	Route              string `json:"route"`
	AnnualDemandTonnes int64  `json:"annual_demand_tonnes"`
}
