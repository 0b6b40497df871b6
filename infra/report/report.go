// Package report renders an HTML page of charts summarising a run.
package report

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/kilianp07/fleetmock/core/model"
)

// Bundle holds the documents charted in the report. Nil or empty parts are
// skipped.
type Bundle struct {
	RunID  string
	Stats  model.FleetStats
	Fuel   model.FuelSummary
	Carbon *model.CarbonSensitivity
	Pareto []model.ParetoPoint
	Shap   *model.Shapley
}

// Render writes the report page to w.
func Render(w io.Writer, b Bundle) error {
	page := components.NewPage()
	page.PageTitle = "fleetmock " + b.RunID

	page.AddCharts(fuelMix(b))
	if b.Carbon != nil && len(b.Carbon.Points) > 0 {
		page.AddCharts(carbon(b.Carbon))
	}
	if len(b.Pareto) > 0 {
		page.AddCharts(pareto(b.Pareto))
	}
	if b.Shap != nil && len(b.Shap.Vessels) > 0 {
		page.AddCharts(shapley(b.Shap))
	}
	if err := page.Render(w); err != nil {
		return fmt.Errorf("failed to render report: %w", err)
	}
	return nil
}

// RenderFile writes the report to path, creating parent directories.
func RenderFile(path string, b Bundle) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := Render(f, b); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

func fuelMix(b Bundle) *charts.Bar {
	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title:    "Fuel mix",
			Subtitle: fmt.Sprintf("fleet of %d, total cost %.2f USD", b.Stats.FleetSize, b.Stats.TotalCost),
		}),
		charts.WithYAxisOpts(opts.YAxis{Name: "Vessels"}),
	)
	var xAxis []string
	var counts []opts.BarData
	for _, f := range b.Fuel.FuelTypes {
		xAxis = append(xAxis, string(f.FuelType))
		counts = append(counts, opts.BarData{Value: f.VesselCount})
	}
	bar.SetXAxis(xAxis).AddSeries("Vessels", counts)
	return bar
}

func carbon(cs *model.CarbonSensitivity) *charts.Line {
	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: "Carbon price sensitivity"}),
		charts.WithXAxisOpts(opts.XAxis{Name: "USD/t CO2eq"}),
	)
	var xAxis []string
	var cost, co2 []opts.LineData
	for _, p := range cs.Points {
		xAxis = append(xAxis, strconv.FormatFloat(p.CarbonPrice, 'f', -1, 64))
		cost = append(cost, opts.LineData{Value: p.TotalCost})
		co2 = append(co2, opts.LineData{Value: p.TotalCO2eq})
	}
	line.SetXAxis(xAxis).
		AddSeries("Total cost", cost).
		AddSeries("Total CO2eq", co2)
	return line
}

func pareto(points []model.ParetoPoint) *charts.Line {
	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: "Cost / safety frontier"}),
		charts.WithXAxisOpts(opts.XAxis{Name: "Safety threshold"}),
	)
	var xAxis []string
	var cost, co2 []opts.LineData
	for _, p := range points {
		xAxis = append(xAxis, strconv.FormatFloat(p.SafetyThreshold, 'f', 1, 64))
		cost = append(cost, opts.LineData{Value: p.TotalCost})
		co2 = append(co2, opts.LineData{Value: p.TotalCO2eq})
	}
	line.SetXAxis(xAxis).
		AddSeries("Total cost", cost).
		AddSeries("Total CO2eq", co2)
	return line
}

func shapley(s *model.Shapley) *charts.Bar {
	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: "Shapley values"}),
		charts.WithXAxisOpts(opts.XAxis{Name: "Vessel"}),
	)
	var xAxis []string
	var vals []opts.BarData
	for _, v := range s.Vessels {
		xAxis = append(xAxis, strconv.Itoa(v.VesselID))
		vals = append(vals, opts.BarData{Value: v.ShapleyValue})
	}
	bar.SetXAxis(xAxis).AddSeries("Shapley value", vals)
	return bar
}
