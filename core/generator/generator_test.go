package generator

import (
	"errors"
	"os"
	"path/filepath"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kilianp07/fleetmock/config"
	"github.com/kilianp07/fleetmock/core/model"
)

func testConfig() config.GeneratorConfig {
	var c config.GeneratorConfig
	c.SetDefaults()
	return c
}

func newTestGenerator(seed uint64) *Generator {
	rng, _ := NewRand(seed)
	return New(testConfig(), rng, nil)
}

func TestVessels(t *testing.T) {
	g := newTestGenerator(42)
	vs, err := g.Vessels(60)
	require.NoError(t, err)
	require.Len(t, vs, 60)

	for i, v := range vs {
		assert.Equal(t, FirstVesselID+i*VesselIDStride, v.ID)
		require.NoError(t, v.Validate())
		assert.GreaterOrEqual(t, v.DWT, 30000)
		assert.Less(t, v.DWT, 300000)
		assert.Contains(t, model.VesselTypes, v.Type)
		assert.False(t, v.Selected)

		f, err := v.FuelType.Factors()
		require.NoError(t, err)
		base := float64(v.DWT) / 10000 * 15
		assert.InDelta(t, base, v.TotalFuel, base*0.1+0.01)
		if f.CO2 == 0 {
			assert.Zero(t, v.TotalCO2eq)
		}
	}
}

func TestVessels_InvalidCount(t *testing.T) {
	_, err := newTestGenerator(1).Vessels(0)
	assert.Error(t, err)
}

func TestVessels_SameSeedSameOutput(t *testing.T) {
	a, err := newTestGenerator(7).Vessels(20)
	require.NoError(t, err)
	b, err := newTestGenerator(7).Vessels(20)
	require.NoError(t, err)
	assert.Equal(t, a, b)

	c, err := newTestGenerator(8).Vessels(20)
	require.NoError(t, err)
	assert.NotEqual(t, a, c)
}

func TestNewRand_ZeroSeed(t *testing.T) {
	_, seed := NewRand(0)
	assert.NotZero(t, seed)
	_, seed = NewRand(99)
	assert.Equal(t, uint64(99), seed)
}

func TestSelectFleet(t *testing.T) {
	g := newTestGenerator(42)
	vs, err := g.Vessels(60)
	require.NoError(t, err)

	fleet, err := g.SelectFleet(vs, 24)
	require.NoError(t, err)
	require.Len(t, fleet, 24)

	assert.True(t, sort.SliceIsSorted(fleet, func(a, b int) bool {
		return fleet[a].CostPerDWT() < fleet[b].CostPerDWT()
	}))

	selected := make(map[int]model.Vessel)
	for _, v := range vs {
		if v.Selected {
			selected[v.ID] = v
		}
	}
	assert.Len(t, selected, 24)

	worst := fleet[len(fleet)-1].CostPerDWT()
	for _, v := range fleet {
		assert.True(t, v.Selected)
		assert.GreaterOrEqual(t, v.SafetyScore, model.MinFleetSafety)
		// the boosted score is visible in the full list too
		assert.Equal(t, v, selected[v.ID])
	}
	for _, v := range vs {
		if !v.Selected {
			assert.GreaterOrEqual(t, v.CostPerDWT(), worst)
		}
	}
}

func TestSelectFleet_TiesKeepGenerationOrder(t *testing.T) {
	vs := []model.Vessel{
		{ID: 1, DWT: 99, CostUSD: 100, SafetyScore: 5},
		{ID: 2, DWT: 99, CostUSD: 100, SafetyScore: 5},
		{ID: 3, DWT: 99, CostUSD: 50, SafetyScore: 5},
	}
	fleet, err := newTestGenerator(1).SelectFleet(vs, 2)
	require.NoError(t, err)
	assert.Equal(t, []int{3, 1}, model.IDs(fleet))
	assert.False(t, vs[1].Selected)
}

func TestSelectFleet_InvalidSize(t *testing.T) {
	g := newTestGenerator(1)
	vs, err := g.Vessels(5)
	require.NoError(t, err)

	for _, size := range []int{0, -1, 6} {
		_, err := g.SelectFleet(vs, size)
		assert.True(t, errors.Is(err, ErrInvalidFleetSize), "size %d", size)
	}
}

func TestSelectFleet_ReselectClearsFlags(t *testing.T) {
	g := newTestGenerator(3)
	vs, err := g.Vessels(10)
	require.NoError(t, err)
	_, err = g.SelectFleet(vs, 8)
	require.NoError(t, err)
	_, err = g.SelectFleet(vs, 2)
	require.NoError(t, err)

	n := 0
	for _, v := range vs {
		if v.Selected {
			n++
		}
	}
	assert.Equal(t, 2, n)
}

func TestOverrides(t *testing.T) {
	doc := []byte(`
vessels:
  10000000:
    vessel_type: LNG Carrier
    main_engine_fuel_type: Hydrogen
    safety_score: 5
    dwt: 120000
`)
	o, err := ParseOverrides(doc)
	require.NoError(t, err)

	g := newTestGenerator(11).WithOverrides(o)
	vs, err := g.Vessels(2)
	require.NoError(t, err)

	v := vs[0]
	assert.Equal(t, "LNG Carrier", v.Type)
	assert.Equal(t, model.FuelHydrogen, v.FuelType)
	assert.Equal(t, 5, v.SafetyScore)
	assert.Equal(t, 120000, v.DWT)
	assert.Zero(t, v.TotalCO2eq)
	assert.InDelta(t, 180.0, v.TotalFuel, 18.01)
}

func TestOverrides_DoNotShiftStream(t *testing.T) {
	plain, err := newTestGenerator(5).Vessels(3)
	require.NoError(t, err)

	o := Overrides{Vessels: map[int]VesselTemplate{FirstVesselID: {SafetyScore: 1}}}
	pinned, err := newTestGenerator(5).WithOverrides(o).Vessels(3)
	require.NoError(t, err)

	assert.Equal(t, 1, pinned[0].SafetyScore)
	assert.Equal(t, plain[1:], pinned[1:])
}

func TestParseOverrides_Invalid(t *testing.T) {
	_, err := ParseOverrides([]byte("vessels:\n  1:\n    main_engine_fuel_type: Coal\n"))
	assert.ErrorContains(t, err, "unknown fuel type")

	_, err = ParseOverrides([]byte("vessels:\n  1:\n    safety_score: 9\n"))
	assert.Error(t, err)

	_, err = ParseOverrides([]byte("vessels: ["))
	assert.Error(t, err)
}

func TestLoadOverrides(t *testing.T) {
	o, err := LoadOverrides("")
	require.NoError(t, err)
	assert.Empty(t, o.Vessels)

	path := filepath.Join(t.TempDir(), "overrides.yaml")
	require.NoError(t, os.WriteFile(path, []byte("vessels:\n  10001234:\n    dwt: 50000\n"), 0o600))
	o, err = LoadOverrides(path)
	require.NoError(t, err)
	assert.Equal(t, 50000, o.Vessels[10001234].DWT)

	_, err = LoadOverrides(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
