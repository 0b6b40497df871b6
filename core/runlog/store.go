// Package runlog keeps an append-only ledger of generation runs.
package runlog

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/kilianp07/fleetmock/config"
	"github.com/kilianp07/fleetmock/core/model"
)

// ErrUnknownBackend is returned by Open for unsupported store types.
var ErrUnknownBackend = errors.New("unknown runlog backend")

// RunRecord captures one generation run.
type RunRecord struct {
	RunID      string           `json:"run_id"`
	Timestamp  time.Time        `json:"timestamp"`
	Seed       uint64           `json:"seed"`
	NumVessels int              `json:"num_vessels"`
	FleetSize  int              `json:"fleet_size"`
	OutputDir  string           `json:"output_dir"`
	Files      []string         `json:"files"`
	Stats      model.FleetStats `json:"stats"`
	DurationMS int64            `json:"duration_ms"`
}

// RunQuery filters records. Zero values disable a filter; Limit keeps the
// most recent records.
type RunQuery struct {
	Start time.Time
	End   time.Time
	Limit int
}

func (q RunQuery) match(r RunRecord) bool {
	if !q.Start.IsZero() && r.Timestamp.Before(q.Start) {
		return false
	}
	if !q.End.IsZero() && r.Timestamp.After(q.End) {
		return false
	}
	return true
}

// apply sorts records by time and trims them to the limit.
func (q RunQuery) apply(recs []RunRecord) []RunRecord {
	sort.SliceStable(recs, func(a, b int) bool {
		return recs[a].Timestamp.Before(recs[b].Timestamp)
	})
	if q.Limit > 0 && len(recs) > q.Limit {
		recs = recs[len(recs)-q.Limit:]
	}
	return recs
}

// Store persists RunRecords and supports querying.
type Store interface {
	Append(ctx context.Context, rec RunRecord) error
	Query(ctx context.Context, q RunQuery) ([]RunRecord, error)
	Close() error
}

// Open creates the store selected by cfg.
func Open(cfg config.RunLogConfig) (Store, error) {
	switch cfg.Backend {
	case "", "jsonl":
		if cfg.MaxSizeMB > 0 {
			return NewRotatingJSONLStore(cfg.Path, cfg.MaxSizeMB, cfg.MaxBackups, cfg.MaxAgeDays)
		}
		return NewJSONLStore(cfg.Path)
	case "sqlite":
		return NewSQLiteStore(cfg.Path)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownBackend, cfg.Backend)
	}
}
