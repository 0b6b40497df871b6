package cmd

import (
	"errors"
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/kilianp07/fleetmock/core/runlog"
	"github.com/kilianp07/fleetmock/pkg/export"
)

var errLedgerDisabled = errors.New("run ledger disabled: set runlog.enabled to record runs")

type historyOptions struct {
	since  time.Duration
	limit  int
	format string
}

func newHistoryCmd(opts *rootOptions) *cobra.Command {
	h := &historyOptions{}
	cmd := &cobra.Command{
		Use:   "history",
		Short: "List recorded generation runs",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runHistory(cmd, opts, h)
		},
	}
	cmd.Flags().DurationVar(&h.since, "since", 0, "only show runs newer than this duration, e.g. 24h")
	cmd.Flags().IntVar(&h.limit, "limit", 20, "maximum number of runs to show; 0 shows all")
	cmd.Flags().StringVarP(&h.format, "format", "o", "table", "output format: table or json")
	return cmd
}

func runHistory(cmd *cobra.Command, opts *rootOptions, h *historyOptions) error {
	cfg, err := opts.load(cmd)
	if err != nil {
		return err
	}
	if !cfg.RunLog.Enabled {
		return errLedgerDisabled
	}
	store, err := runlog.Open(cfg.RunLog)
	if err != nil {
		return err
	}
	defer func() { _ = store.Close() }()

	q := runlog.RunQuery{Limit: h.limit}
	if h.since > 0 {
		q.Start = time.Now().Add(-h.since)
	}
	recs, err := store.Query(cmd.Context(), q)
	if err != nil {
		return fmt.Errorf("query runs: %w", err)
	}
	return writeRuns(cmd.OutOrStdout(), h.format, recs)
}

func writeRuns(w io.Writer, format string, recs []runlog.RunRecord) error {
	switch format {
	case "table", "":
		tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
		fmt.Fprintln(tw, "RUN_ID\tTIME\tSEED\tVESSELS\tFLEET\tTOTAL_COST\tTOTAL_CO2EQ\tFILES\tDURATION")
		for _, r := range recs {
			fmt.Fprintf(tw, "%s\t%s\t%d\t%d\t%d\t%.2f\t%.2f\t%d\t%dms\n",
				r.RunID, r.Timestamp.Format(time.RFC3339), r.Seed, r.NumVessels, r.FleetSize,
				r.Stats.TotalCost, r.Stats.TotalCO2eq, len(r.Files), r.DurationMS)
		}
		return tw.Flush()
	case "json":
		if recs == nil {
			recs = []runlog.RunRecord{}
		}
		return export.WriteJSON(w, recs)
	default:
		return fmt.Errorf("unknown format %q", format)
	}
}
