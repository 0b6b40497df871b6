package metrics

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kilianp07/fleetmock/core/factory"
	coremetrics "github.com/kilianp07/fleetmock/core/metrics"
	"github.com/kilianp07/fleetmock/core/model"
)

func sampleRun() coremetrics.RunEvent {
	return coremetrics.RunEvent{
		RunID:      "r1",
		Seed:       42,
		NumVessels: 60,
		Stats: model.FleetStats{
			FleetSize:      24,
			TotalCost:      20000000.5,
			TotalDWT:       2400000,
			AvgSafetyScore: 4.1,
			TotalCO2eq:     9000.25,
		},
		FuelMix:  map[model.FuelType]int{model.FuelLNG: 10, model.FuelAmmonia: 3},
		Files:    9,
		Duration: 150 * time.Millisecond,
		Time:     time.Unix(1700000000, 0),
	}
}

func TestPromSinkRecordRun(t *testing.T) {
	reg := prometheus.NewRegistry()
	sink, err := NewPromSinkWithRegistry(reg, "")
	require.NoError(t, err)

	require.NoError(t, sink.RecordRun(sampleRun()))
	assert.Equal(t, 1.0, testutil.ToFloat64(sink.runs))
	assert.Equal(t, 24.0, testutil.ToFloat64(sink.fleetSize))
	assert.Equal(t, 20000000.5, testutil.ToFloat64(sink.fleetCost))
	assert.Equal(t, 10.0, testutil.ToFloat64(sink.fuelMix.WithLabelValues("LNG")))
	assert.Equal(t, 1700000000.0, testutil.ToFloat64(sink.lastRun))
	assert.Equal(t, 1, testutil.CollectAndCount(sink.duration))
}

func TestPromSinkRecordView(t *testing.T) {
	sink, err := NewPromSink("")
	require.NoError(t, err)
	for i := 0; i < 2; i++ {
		require.NoError(t, sink.RecordView(coremetrics.ViewEvent{View: "route_info", Bytes: 80}))
	}
	assert.Equal(t, 2.0, testutil.ToFloat64(sink.views.WithLabelValues("route_info")))
	assert.Equal(t, 80.0, testutil.ToFloat64(sink.viewBytes.WithLabelValues("route_info")))
}

func TestPromSinkDuplicateRegistry(t *testing.T) {
	reg := prometheus.NewRegistry()
	_, err := NewPromSinkWithRegistry(reg, "")
	require.NoError(t, err)
	_, err = NewPromSinkWithRegistry(reg, "")
	assert.Error(t, err)
}

func TestPromSinkFlushTextfile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "textfile", "fleetmock.prom")
	sink, err := NewPromSink(path)
	require.NoError(t, err)
	require.NoError(t, sink.RecordRun(sampleRun()))
	require.NoError(t, sink.Flush())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	out := string(data)
	assert.True(t, strings.Contains(out, "fleetmock_fleet_size 24"), out)
	assert.Contains(t, out, `fleetmock_vessels_by_fuel{fuel_type="Ammonia"} 3`)
}

func TestPromSinkFlushWithoutTextfile(t *testing.T) {
	sink, err := NewPromSink("")
	require.NoError(t, err)
	assert.NoError(t, sink.Flush())
}

func TestPrometheusFactory(t *testing.T) {
	s, err := coremetrics.NewMetricsSink([]factory.ModuleConfig{{
		Type: "prometheus",
		Conf: map[string]any{"textfile": filepath.Join(t.TempDir(), "m.prom")},
	}})
	require.NoError(t, err)
	_, ok := s.(*PromSink)
	assert.True(t, ok, "got %T", s)

	_, err = coremetrics.NewMetricsSink([]factory.ModuleConfig{{
		Type: "prometheus",
		Conf: map[string]any{"port": 9100},
	}})
	assert.Error(t, err, "unknown keys are rejected")
}
