// Package views turns a generated dataset into the fixture documents written
// to the output directory. Each document is produced by a View created from a
// {type, conf} entry through the package registry.
package views

import (
	"errors"
	"fmt"
	"math/rand/v2"

	"github.com/kilianp07/fleetmock/core/factory"
	"github.com/kilianp07/fleetmock/core/model"
)

// Dataset is the input shared by every view of a run.
type Dataset struct {
	// Vessels holds every generated vessel, selected or not.
	Vessels []model.Vessel
	// Fleet holds the selected vessels in selection order.
	Fleet     []model.Vessel
	Stats     model.FleetStats
	FleetSize int
	// Rand is the run's random stream. Views drawing from it must be built
	// in a fixed order to keep runs reproducible.
	Rand *rand.Rand
}

// View renders one fixture document.
type View interface {
	// Name is the view type name.
	Name() string
	// File is the file name relative to the output directory.
	File() string
	// Build returns the document to serialize.
	Build(ds *Dataset) (any, error)
}

// ErrDuplicateFile is returned when two views would write the same file.
var ErrDuplicateFile = errors.New("duplicate view file")

var registry = factory.NewRegistry[View]()

// Register adds a view factory under name.
func Register(name string, f factory.Factory[View]) error {
	return registry.Register(name, f)
}

// Registered lists the known view types.
func Registered() []string { return registry.Names() }

// DefaultConfigs returns the standard nine views in build order.
func DefaultConfigs() []factory.ModuleConfig {
	names := []string{
		FleetResultView,
		FuelSummaryView,
		CarbonSensitivityView,
		RobustnessView,
		ParetoView,
		RouteView,
		HeatmapView,
		ShapleyView,
		ComparisonView,
	}
	out := make([]factory.ModuleConfig, len(names))
	for i, n := range names {
		out[i] = factory.ModuleConfig{Type: n}
	}
	return out
}

// New creates the views described by cfgs, preserving order. An empty cfgs
// yields the default set.
func New(cfgs []factory.ModuleConfig) ([]View, error) {
	if len(cfgs) == 0 {
		cfgs = DefaultConfigs()
	}
	out := make([]View, 0, len(cfgs))
	files := make(map[string]string, len(cfgs))
	for i, c := range cfgs {
		v, err := registry.Create(c)
		if err != nil {
			return nil, fmt.Errorf("view %d (%s): %w", i, c.Type, err)
		}
		if prev, ok := files[v.File()]; ok {
			return nil, fmt.Errorf("%w: %s written by %s and %s", ErrDuplicateFile, v.File(), prev, v.Name())
		}
		files[v.File()] = v.Name()
		out = append(out, v)
	}
	return out, nil
}
