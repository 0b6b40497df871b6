package metrics

import (
	"time"

	"github.com/kilianp07/fleetmock/core/model"
)

// RunEvent summarises one generation run.
type RunEvent struct {
	RunID      string
	Seed       uint64
	NumVessels int
	Stats      model.FleetStats
	// FuelMix counts all generated vessels per fuel type.
	FuelMix  map[model.FuelType]int
	Files    int
	Duration time.Duration
	Time     time.Time
}

// MetricsSink records run outcomes for observability purposes.
type MetricsSink interface {
	RecordRun(ev RunEvent) error
}

// ViewEvent captures one fixture file being written.
type ViewEvent struct {
	View  string
	Path  string
	Bytes int
	Time  time.Time
}

// ViewRecorder is implemented by sinks able to record written views.
type ViewRecorder interface {
	RecordView(ev ViewEvent) error
}

// Flusher is implemented by sinks that buffer and must persist on shutdown.
type Flusher interface {
	Flush() error
}

// NopSink implements every recorder with no-op methods.
type NopSink struct{}

func (NopSink) RecordRun(RunEvent) error   { return nil }
func (NopSink) RecordView(ViewEvent) error { return nil }
