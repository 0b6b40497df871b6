package views

import (
	"fmt"

	"github.com/kilianp07/fleetmock/core/analysis"
	"github.com/kilianp07/fleetmock/core/factory"
	"github.com/kilianp07/fleetmock/core/model"
)

// Built-in view type names. Each writes <name>.json.
const (
	FleetResultView       = "fleet_result"
	FuelSummaryView       = "fuel_type_summary"
	CarbonSensitivityView = "carbon_sensitivity"
	RobustnessView        = "mcmc_robustness"
	ParetoView            = "pareto_frontier"
	RouteView             = "route_info"
	HeatmapView           = "sensitivity_heatmap"
	ShapleyView           = "shapley_values"
	ComparisonView        = "sensitivity_comparison"
)

// Route defaults.
const (
	DefaultRoute              = "Port Hedland -> Singapore"
	DefaultAnnualDemandTonnes = 55000000
)

type viewFunc struct {
	name  string
	build func(ds *Dataset) (any, error)
}

func (v viewFunc) Name() string                   { return v.name }
func (v viewFunc) File() string                   { return v.name + ".json" }
func (v viewFunc) Build(ds *Dataset) (any, error) { return v.build(ds) }

// static registers a view that accepts no options.
func static(name string, build func(ds *Dataset) (any, error)) {
	registry.MustRegister(name, func(conf map[string]any) (View, error) {
		if err := factory.Decode(conf, &struct{}{}); err != nil {
			return nil, fmt.Errorf("%s: %w", name, err)
		}
		return viewFunc{name: name, build: build}, nil
	})
}

type carbonConf struct {
	CarbonPrices []float64 `json:"carbon_prices"`
}

// paretoConf takes either an explicit thresholds list or a min..max range.
type paretoConf struct {
	Thresholds   []float64 `json:"thresholds"`
	MinThreshold float64   `json:"min_threshold"`
	MaxThreshold float64   `json:"max_threshold"`
	Step         float64   `json:"step"`
	BindingBelow float64   `json:"binding_below"`
}

type heatmapConf struct {
	CarbonPrices  []float64 `json:"carbon_prices"`
	Thresholds    []float64 `json:"thresholds"`
	BaseCost      float64   `json:"base_cost"`
	BaseFleetSize int       `json:"base_fleet_size"`
}

type shapleyConf struct {
	Essential int `json:"essential"`
}

type routeConf struct {
	Route              string `json:"route"`
	AnnualDemandTonnes int64  `json:"annual_demand_tonnes"`
}

func init() {
	static(FleetResultView, func(ds *Dataset) (any, error) {
		return model.FleetResult{OptimalFleet: ds.Stats, Vessels: ds.Vessels}, nil
	})
	static(FuelSummaryView, func(ds *Dataset) (any, error) {
		return analysis.FuelSummary(ds.Vessels), nil
	})
	static(RobustnessView, func(ds *Dataset) (any, error) {
		return analysis.Robustness(ds.Fleet, ds.Rand), nil
	})
	static(ComparisonView, func(ds *Dataset) (any, error) {
		return analysis.Comparison(ds.Stats, ds.FleetSize), nil
	})

	registry.MustRegister(CarbonSensitivityView, func(raw map[string]any) (View, error) {
		var c carbonConf
		if err := factory.Decode(raw, &c); err != nil {
			return nil, fmt.Errorf("%s: %w", CarbonSensitivityView, err)
		}
		if len(c.CarbonPrices) == 0 {
			c.CarbonPrices = analysis.DefaultCarbonPrices
		}
		return viewFunc{name: CarbonSensitivityView, build: func(ds *Dataset) (any, error) {
			return analysis.CarbonSensitivity(ds.Fleet, c.CarbonPrices), nil
		}}, nil
	})

	registry.MustRegister(ParetoView, func(raw map[string]any) (View, error) {
		c := paretoConf{MinThreshold: 3.0, MaxThreshold: 5.0, Step: 0.1, BindingBelow: 4.8}
		if err := factory.Decode(raw, &c); err != nil {
			return nil, fmt.Errorf("%s: %w", ParetoView, err)
		}
		thresholds := c.Thresholds
		if len(thresholds) == 0 {
			thresholds = analysis.SafetyThresholds(c.MinThreshold, c.MaxThreshold, c.Step)
		}
		if len(thresholds) == 0 {
			return nil, fmt.Errorf("%s: empty threshold range %v..%v step %v", ParetoView, c.MinThreshold, c.MaxThreshold, c.Step)
		}
		return viewFunc{name: ParetoView, build: func(ds *Dataset) (any, error) {
			return analysis.Pareto(ds.Stats, ds.Fleet, ds.FleetSize, thresholds, c.BindingBelow, ds.Rand), nil
		}}, nil
	})

	registry.MustRegister(RouteView, func(raw map[string]any) (View, error) {
		c := routeConf{Route: DefaultRoute, AnnualDemandTonnes: DefaultAnnualDemandTonnes}
		if err := factory.Decode(raw, &c); err != nil {
			return nil, fmt.Errorf("%s: %w", RouteView, err)
		}
		if c.AnnualDemandTonnes < 0 {
			return nil, fmt.Errorf("%s: negative annual demand", RouteView)
		}
		info := model.RouteInfo{Route: c.Route, AnnualDemandTonnes: c.AnnualDemandTonnes}
		return viewFunc{name: RouteView, build: func(*Dataset) (any, error) {
			return info, nil
		}}, nil
	})

	registry.MustRegister(HeatmapView, func(raw map[string]any) (View, error) {
		c := heatmapConf{BaseCost: analysis.DefaultHeatmapBaseCost, BaseFleetSize: analysis.DefaultHeatmapFleetSize}
		if err := factory.Decode(raw, &c); err != nil {
			return nil, fmt.Errorf("%s: %w", HeatmapView, err)
		}
		if len(c.CarbonPrices) == 0 {
			c.CarbonPrices = analysis.DefaultCarbonPrices
		}
		if len(c.Thresholds) == 0 {
			c.Thresholds = analysis.DefaultHeatmapThresholds
		}
		return viewFunc{name: HeatmapView, build: func(*Dataset) (any, error) {
			return analysis.Heatmap(c.CarbonPrices, c.Thresholds, c.BaseCost, c.BaseFleetSize), nil
		}}, nil
	})

	registry.MustRegister(ShapleyView, func(raw map[string]any) (View, error) {
		c := shapleyConf{Essential: analysis.DefaultShapleyEssential}
		if err := factory.Decode(raw, &c); err != nil {
			return nil, fmt.Errorf("%s: %w", ShapleyView, err)
		}
		if c.Essential < 0 {
			return nil, fmt.Errorf("%s: negative essential count", ShapleyView)
		}
		return viewFunc{name: ShapleyView, build: func(ds *Dataset) (any, error) {
			return analysis.Shapley(ds.Fleet, c.Essential, ds.Rand), nil
		}}, nil
	})
}
