package metrics

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

type recordSink struct {
	runs    int
	views   int
	flushes int
	err     error
}

func (r *recordSink) RecordRun(RunEvent) error   { r.runs++; return r.err }
func (r *recordSink) RecordView(ViewEvent) error { r.views++; return nil }
func (r *recordSink) Flush() error               { r.flushes++; return r.err }

type runOnlySink struct{ runs int }

func (r *runOnlySink) RecordRun(RunEvent) error { r.runs++; return nil }

func TestMultiSink(t *testing.T) {
	s1 := &recordSink{}
	s2 := &runOnlySink{}
	m := NewMultiSink(s1, s2)
	if err := m.RecordRun(RunEvent{}); err != nil {
		t.Fatalf("record run: %v", err)
	}
	if err := m.RecordView(ViewEvent{View: "route_info"}); err != nil {
		t.Fatalf("record view: %v", err)
	}
	if err := m.Flush(); err != nil {
		t.Fatalf("flush: %v", err)
	}
	assert.Equal(t, 1, s1.runs)
	assert.Equal(t, 1, s2.runs)
	assert.Equal(t, 1, s1.views)
	assert.Equal(t, 1, s1.flushes)
}

func TestMultiSinkStopsOnError(t *testing.T) {
	boom := errors.New("boom")
	s1 := &recordSink{err: boom}
	s2 := &recordSink{}
	m := NewMultiSink(s1, s2)
	assert.ErrorIs(t, m.RecordRun(RunEvent{}), boom)
	assert.Equal(t, 0, s2.runs)
	assert.ErrorIs(t, m.Flush(), boom)
	assert.Equal(t, 1, s2.flushes)
}
