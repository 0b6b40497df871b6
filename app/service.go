// Package app wires configuration, generation, views and the ambient
// outputs of a run together.
package app

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/kilianp07/fleetmock/config"
	"github.com/kilianp07/fleetmock/core/analysis"
	"github.com/kilianp07/fleetmock/core/generator"
	coremetrics "github.com/kilianp07/fleetmock/core/metrics"
	"github.com/kilianp07/fleetmock/core/model"
	"github.com/kilianp07/fleetmock/core/runlog"
	"github.com/kilianp07/fleetmock/core/views"
	"github.com/kilianp07/fleetmock/infra/logger"
	_ "github.com/kilianp07/fleetmock/infra/metrics"
	"github.com/kilianp07/fleetmock/infra/report"
	"github.com/kilianp07/fleetmock/pkg/export"
)

// RunResult summarises a completed run.
type RunResult struct {
	RunID     string
	Seed      uint64
	OutputDir string
	// Files lists the written fixture paths in build order.
	Files      []string
	Stats      model.FleetStats
	Duration   time.Duration
	ReportPath string
}

// Service runs the generation pipeline described by a Config.
type Service struct {
	cfg   *config.Config
	views []views.View
	sink  coremetrics.MetricsSink
	store runlog.Store
	log   logger.Logger
	now   func() time.Time
}

// New validates the configured views and opens the metrics sinks and the run
// ledger. Nothing is written until Run.
func New(cfg *config.Config) (*Service, error) {
	if err := logger.SetLevel(cfg.LogLevel); err != nil {
		return nil, fmt.Errorf("log level: %w", err)
	}
	vs, err := views.New(cfg.Views)
	if err != nil {
		return nil, fmt.Errorf("views: %w", err)
	}
	sink, err := coremetrics.NewMetricsSink(cfg.Metrics.Sinks)
	if err != nil {
		return nil, fmt.Errorf("metrics sink: %w", err)
	}
	svc := &Service{
		cfg:   cfg,
		views: vs,
		sink:  sink,
		log:   logger.New("service"),
		now:   time.Now,
	}
	if cfg.RunLog.Enabled {
		store, err := runlog.Open(cfg.RunLog)
		if err != nil {
			return nil, fmt.Errorf("runlog: %w", err)
		}
		svc.store = store
	}
	return svc, nil
}

// Generate samples the vessels, selects the fleet and computes its
// statistics. The returned seed reproduces the dataset.
func (s *Service) Generate() (*views.Dataset, uint64, error) {
	return Generate(s.cfg.Generator)
}

// Generate builds a dataset from gc without writing anything.
func Generate(gc config.GeneratorConfig) (*views.Dataset, uint64, error) {
	rng, seed := generator.NewRand(gc.Seed)
	overrides, err := generator.LoadOverrides(gc.OverridesFile)
	if err != nil {
		return nil, 0, fmt.Errorf("overrides: %w", err)
	}
	gen := generator.New(gc, rng, logger.New("generator")).WithOverrides(overrides)

	vessels, err := gen.Vessels(gc.NumVessels)
	if err != nil {
		return nil, 0, err
	}
	fleet, err := gen.SelectFleet(vessels, gc.FleetSize)
	if err != nil {
		return nil, 0, err
	}
	stats, err := analysis.FleetStats(fleet)
	if err != nil {
		return nil, 0, err
	}
	return &views.Dataset{
		Vessels:   vessels,
		Fleet:     fleet,
		Stats:     stats,
		FleetSize: len(fleet),
		Rand:      rng,
	}, seed, nil
}

// Run generates a dataset and writes every configured view to the output
// directory, then records the run. The context is checked between views.
func (s *Service) Run(ctx context.Context) (*RunResult, error) {
	start := s.now()
	res := &RunResult{RunID: uuid.NewString(), OutputDir: s.cfg.Generator.OutputDir}

	ds, seed, err := s.Generate()
	if err != nil {
		return nil, err
	}
	res.Seed = seed
	res.Stats = ds.Stats
	s.log.Infow("dataset generated", map[string]any{
		"run_id":  res.RunID,
		"seed":    seed,
		"vessels": len(ds.Vessels),
		"fleet":   len(ds.Fleet),
	})

	if err := os.MkdirAll(res.OutputDir, 0o755); err != nil {
		return nil, fmt.Errorf("output dir: %w", err)
	}
	recorder, _ := s.sink.(coremetrics.ViewRecorder)
	bundle := report.Bundle{RunID: res.RunID, Stats: ds.Stats}
	for _, v := range s.views {
		if err := ctx.Err(); err != nil {
			return res, err
		}
		doc, err := v.Build(ds)
		if err != nil {
			return res, fmt.Errorf("build %s: %w", v.Name(), err)
		}
		path := filepath.Join(res.OutputDir, v.File())
		n, err := export.WriteJSONFile(path, doc)
		if err != nil {
			return res, fmt.Errorf("write %s: %w", v.Name(), err)
		}
		res.Files = append(res.Files, path)
		s.log.Debugw("view written", map[string]any{"view": v.Name(), "path": path, "bytes": n})
		if recorder != nil {
			if err := recorder.RecordView(coremetrics.ViewEvent{View: v.Name(), Path: path, Bytes: n, Time: s.now()}); err != nil {
				s.log.Warnf("record view %s: %v", v.Name(), err)
			}
		}
		collect(&bundle, doc)
	}
	res.Duration = s.now().Sub(start)

	s.recordMetrics(res, ds)
	if err := s.appendRun(ctx, res, ds); err != nil {
		return res, err
	}
	if s.cfg.Report.Enabled {
		if len(bundle.Fuel.FuelTypes) == 0 {
			bundle.Fuel = analysis.FuelSummary(ds.Vessels)
		}
		res.ReportPath = s.cfg.Report.Resolve(res.OutputDir)
		if err := report.RenderFile(res.ReportPath, bundle); err != nil {
			return res, fmt.Errorf("report: %w", err)
		}
	}
	s.log.Infof("run %s wrote %d files to %s in %s", res.RunID, len(res.Files), res.OutputDir, res.Duration)
	return res, nil
}

// Close releases the run ledger.
func (s *Service) Close() error {
	if s.store == nil {
		return nil
	}
	return s.store.Close()
}

// Store returns the run ledger, or nil when it is disabled.
func (s *Service) Store() runlog.Store { return s.store }

// recordMetrics reports the run to the sinks. Failures are logged only.
func (s *Service) recordMetrics(res *RunResult, ds *views.Dataset) {
	ev := coremetrics.RunEvent{
		RunID:      res.RunID,
		Seed:       res.Seed,
		NumVessels: len(ds.Vessels),
		Stats:      ds.Stats,
		FuelMix:    analysis.FuelMix(ds.Vessels),
		Files:      len(res.Files),
		Duration:   res.Duration,
		Time:       s.now(),
	}
	if err := s.sink.RecordRun(ev); err != nil {
		s.log.Warnf("record run: %v", err)
	}
	if f, ok := s.sink.(coremetrics.Flusher); ok {
		if err := f.Flush(); err != nil {
			s.log.Warnf("flush metrics: %v", err)
		}
	}
}

func (s *Service) appendRun(ctx context.Context, res *RunResult, ds *views.Dataset) error {
	if s.store == nil {
		return nil
	}
	files := make([]string, len(res.Files))
	for i, f := range res.Files {
		files[i] = filepath.Base(f)
	}
	rec := runlog.RunRecord{
		RunID:      res.RunID,
		Timestamp:  s.now().UTC(),
		Seed:       res.Seed,
		NumVessels: len(ds.Vessels),
		FleetSize:  ds.FleetSize,
		OutputDir:  res.OutputDir,
		Files:      files,
		Stats:      ds.Stats,
		DurationMS: res.Duration.Milliseconds(),
	}
	if err := s.store.Append(ctx, rec); err != nil {
		return fmt.Errorf("runlog append: %w", err)
	}
	return nil
}

// collect keeps the documents charted by the report.
func collect(b *report.Bundle, doc any) {
	switch d := doc.(type) {
	case model.FuelSummary:
		b.Fuel = d
	case model.CarbonSensitivity:
		b.Carbon = &d
	case []model.ParetoPoint:
		b.Pareto = d
	case model.Shapley:
		b.Shap = &d
	}
}
