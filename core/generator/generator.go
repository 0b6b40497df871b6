// Package generator samples synthetic vessels and selects the fleet.
package generator

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"sort"
	"time"

	"gonum.org/v1/gonum/stat/distuv"

	"github.com/kilianp07/fleetmock/config"
	"github.com/kilianp07/fleetmock/core/logger"
	"github.com/kilianp07/fleetmock/core/model"
)

const (
	// FirstVesselID is the id of the first generated vessel.
	FirstVesselID = 10000000
	// VesselIDStride separates consecutive vessel ids.
	VesselIDStride = 1234

	fuelPerDWT      = 15.0 / 10000 // tonnes of fuel per tonne of DWT
	fuelPriceUSD    = 600.0        // per tonne of distillate
	co2PerFuelTonne = 3.1
)

// ErrInvalidFleetSize is returned when the fleet cannot be drawn from the
// generated vessels.
var ErrInvalidFleetSize = errors.New("invalid fleet size")

// Generator draws vessels from a seeded random stream. All draws share the
// same stream so a seed reproduces a whole run.
type Generator struct {
	cfg       config.GeneratorConfig
	rng       *rand.Rand
	dwt       func() float64
	overrides Overrides
	log       logger.Logger
}

// NewRand returns a PCG backed random stream. A zero seed is replaced by a
// time based one; the effective seed is returned.
func NewRand(seed uint64) (*rand.Rand, uint64) {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)), seed
}

// New creates a Generator drawing from rng.
func New(cfg config.GeneratorConfig, rng *rand.Rand, log logger.Logger) *Generator {
	if log == nil {
		log = logger.NopLogger{}
	}
	return &Generator{
		cfg: cfg,
		rng: rng,
		dwt: distuv.NewTriangle(cfg.DWTMin, cfg.DWTMax, cfg.DWTMode, rng).Rand,
		log: log,
	}
}

// WithOverrides pins fields of selected vessels. It returns g for chaining.
func (g *Generator) WithOverrides(o Overrides) *Generator {
	g.overrides = o
	return g
}

// Rand exposes the shared stream to downstream views.
func (g *Generator) Rand() *rand.Rand { return g.rng }

// Vessels generates n vessels with ids FirstVesselID + i*VesselIDStride.
func (g *Generator) Vessels(n int) ([]model.Vessel, error) {
	if n <= 0 {
		return nil, fmt.Errorf("vessel count must be positive, got %d", n)
	}
	vs := make([]model.Vessel, n)
	for i := range vs {
		v, err := g.vessel(FirstVesselID + i*VesselIDStride)
		if err != nil {
			return nil, err
		}
		vs[i] = v
	}
	g.log.Debugf("generated %d vessels", n)
	return vs, nil
}

func (g *Generator) vessel(id int) (model.Vessel, error) {
	fuel := model.FuelTypes[g.rng.IntN(len(model.FuelTypes))]
	dwt := int(g.dwt())
	fuelJitter := g.uniform(0.9, 1.1)
	costJitter := g.uniform(0.9, 1.1)
	co2Jitter := g.uniform(0.95, 1.05)
	vesselType := model.VesselTypes[g.rng.IntN(len(model.VesselTypes))]
	safety := model.SafetyScores[g.rng.IntN(len(model.SafetyScores))]

	tmpl, pinned := g.overrides.Vessels[id]
	if pinned {
		if tmpl.FuelType != "" {
			fuel = model.FuelType(tmpl.FuelType)
		}
		if tmpl.DWT > 0 {
			dwt = tmpl.DWT
		}
		if tmpl.VesselType != "" {
			vesselType = tmpl.VesselType
		}
		if tmpl.SafetyScore > 0 {
			safety = tmpl.SafetyScore
		}
	}

	factors, err := fuel.Factors()
	if err != nil {
		return model.Vessel{}, fmt.Errorf("vessel %d: %w", id, err)
	}
	totalFuel := float64(dwt) * fuelPerDWT * fuelJitter
	cost := totalFuel * fuelPriceUSD * factors.Cost * costJitter
	co2 := totalFuel * co2PerFuelTonne * factors.CO2 * co2Jitter

	return model.Vessel{
		ID:          id,
		Type:        vesselType,
		DWT:         dwt,
		SafetyScore: safety,
		FuelType:    fuel,
		TotalFuel:   model.Round2(totalFuel),
		TotalCO2eq:  model.Round2(co2),
		CostUSD:     model.Round2(cost),
	}, nil
}

// SelectFleet marks the size vessels with the lowest cost per DWT as
// selected. Selected vessels rated below model.MinFleetSafety are re-rated
// with a random passing score. The changes are applied to vs in place and the
// fleet is returned in ascending ratio order.
func (g *Generator) SelectFleet(vs []model.Vessel, size int) ([]model.Vessel, error) {
	if size <= 0 || size > len(vs) {
		return nil, fmt.Errorf("%w: %d of %d vessels", ErrInvalidFleetSize, size, len(vs))
	}
	order := make([]int, len(vs))
	for i := range vs {
		vs[i].Selected = false
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return vs[order[a]].CostPerDWT() < vs[order[b]].CostPerDWT()
	})

	passing := model.SafetyScores[model.MinFleetSafety-1:]
	fleet := make([]model.Vessel, 0, size)
	boosted := 0
	for _, idx := range order[:size] {
		v := &vs[idx]
		v.Selected = true
		if v.SafetyScore < model.MinFleetSafety {
			v.SafetyScore = passing[g.rng.IntN(len(passing))]
			boosted++
		}
		fleet = append(fleet, *v)
	}
	g.log.Debugw("fleet selected", map[string]any{"size": size, "safety_boosted": boosted})
	return fleet, nil
}

func (g *Generator) uniform(min, max float64) float64 {
	return distuv.Uniform{Min: min, Max: max, Src: g.rng}.Rand()
}
