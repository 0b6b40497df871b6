package metrics

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/prometheus/client_golang/prometheus"

	coremetrics "github.com/kilianp07/fleetmock/core/metrics"
)

// PromSink records run outcomes in Prometheus metrics. When a textfile path is
// set, Flush writes the registry in the node-exporter textfile format so the
// one-shot CLI can be scraped without serving HTTP.
type PromSink struct {
	reg      *prometheus.Registry
	textfile string

	runs       prometheus.Counter
	duration   prometheus.Histogram
	lastRun    prometheus.Gauge
	fleetSize  prometheus.Gauge
	fleetCost  prometheus.Gauge
	fleetCO2   prometheus.Gauge
	fleetDWT   prometheus.Gauge
	fleetSafe  prometheus.Gauge
	fuelMix    *prometheus.GaugeVec
	views      *prometheus.CounterVec
	viewBytes  *prometheus.GaugeVec
	seed       prometheus.Gauge
	numVessels prometheus.Gauge
}

// NewPromSink creates a sink backed by a fresh registry.
func NewPromSink(textfile string) (*PromSink, error) {
	return NewPromSinkWithRegistry(prometheus.NewRegistry(), textfile)
}

// NewPromSinkWithRegistry registers the fleet metrics on reg.
func NewPromSinkWithRegistry(reg *prometheus.Registry, textfile string) (*PromSink, error) {
	if reg == nil {
		reg = prometheus.NewRegistry()
	}
	s := &PromSink{
		reg:      reg,
		textfile: textfile,
		runs: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "fleetmock_runs_total",
			Help: "Total number of generation runs",
		}),
		duration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "fleetmock_run_duration_seconds",
			Help:    "Wall time of a generation run",
			Buckets: prometheus.DefBuckets,
		}),
		lastRun: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "fleetmock_last_run_timestamp_seconds",
			Help: "Completion time of the last run",
		}),
		fleetSize: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "fleetmock_fleet_size",
			Help: "Number of selected vessels",
		}),
		fleetCost: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "fleetmock_fleet_total_cost_usd",
			Help: "Adjusted cost of the selected fleet",
		}),
		fleetCO2: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "fleetmock_fleet_total_co2eq_tonnes",
			Help: "CO2 equivalent emitted by the selected fleet",
		}),
		fleetDWT: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "fleetmock_fleet_total_dwt_tonnes",
			Help: "Deadweight tonnage of the selected fleet",
		}),
		fleetSafe: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "fleetmock_fleet_avg_safety_score",
			Help: "Mean safety score of the selected fleet",
		}),
		fuelMix: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "fleetmock_vessels_by_fuel",
			Help: "Generated vessels per main engine fuel",
		}, []string{"fuel_type"}),
		views: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "fleetmock_views_written_total",
			Help: "Fixture files written",
		}, []string{"view"}),
		viewBytes: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "fleetmock_view_bytes",
			Help: "Size of the last written fixture file",
		}, []string{"view"}),
		seed: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "fleetmock_last_seed",
			Help: "Seed of the last run",
		}),
		numVessels: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "fleetmock_vessels_generated",
			Help: "Vessels generated in the last run",
		}),
	}
	cs := []prometheus.Collector{
		s.runs, s.duration, s.lastRun, s.fleetSize, s.fleetCost, s.fleetCO2,
		s.fleetDWT, s.fleetSafe, s.fuelMix, s.views, s.viewBytes, s.seed, s.numVessels,
	}
	for _, c := range cs {
		if err := reg.Register(c); err != nil {
			return nil, fmt.Errorf("register collector: %w", err)
		}
	}
	return s, nil
}

// Registry exposes the underlying registry.
func (s *PromSink) Registry() *prometheus.Registry { return s.reg }

// RecordRun updates the fleet gauges and run counters.
func (s *PromSink) RecordRun(ev coremetrics.RunEvent) error {
	s.runs.Inc()
	s.duration.Observe(ev.Duration.Seconds())
	s.lastRun.Set(float64(ev.Time.Unix()))
	s.seed.Set(float64(ev.Seed))
	s.numVessels.Set(float64(ev.NumVessels))
	s.fleetSize.Set(float64(ev.Stats.FleetSize))
	s.fleetCost.Set(ev.Stats.TotalCost)
	s.fleetCO2.Set(ev.Stats.TotalCO2eq)
	s.fleetDWT.Set(float64(ev.Stats.TotalDWT))
	s.fleetSafe.Set(ev.Stats.AvgSafetyScore)
	s.fuelMix.Reset()
	for fuel, n := range ev.FuelMix {
		s.fuelMix.WithLabelValues(string(fuel)).Set(float64(n))
	}
	return nil
}

// RecordView counts a written fixture file.
func (s *PromSink) RecordView(ev coremetrics.ViewEvent) error {
	s.views.WithLabelValues(ev.View).Inc()
	s.viewBytes.WithLabelValues(ev.View).Set(float64(ev.Bytes))
	return nil
}

// Flush writes the textfile when configured.
func (s *PromSink) Flush() error {
	if s.textfile == "" {
		return nil
	}
	if dir := filepath.Dir(s.textfile); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	return prometheus.WriteToTextfile(s.textfile, s.reg)
}
