package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/kilianp07/fleetmock/app"
	"github.com/kilianp07/fleetmock/config"
	"github.com/kilianp07/fleetmock/infra/logger"
)

type generateOptions struct {
	out       string
	seed      uint64
	vessels   int
	fleetSize int
	report    bool
}

func (o *generateOptions) bind(cmd *cobra.Command) {
	f := cmd.Flags()
	f.StringVar(&o.out, "out", "", "output directory (overrides generator.output_dir)")
	f.Uint64Var(&o.seed, "seed", 0, "random seed; 0 draws a time based seed")
	f.IntVar(&o.vessels, "vessels", 0, "number of vessels to generate")
	f.IntVar(&o.fleetSize, "fleet-size", 0, "number of vessels to select")
	f.BoolVar(&o.report, "report", false, "render the HTML chart report")
}

// apply copies explicitly set flags over the configuration.
func (o *generateOptions) apply(cmd *cobra.Command, cfg *config.Config) error {
	f := cmd.Flags()
	if f.Changed("out") {
		cfg.Generator.OutputDir = o.out
	}
	if f.Changed("seed") {
		cfg.Generator.Seed = o.seed
	}
	if f.Changed("vessels") {
		cfg.Generator.NumVessels = o.vessels
	}
	if f.Changed("fleet-size") {
		cfg.Generator.FleetSize = o.fleetSize
	} else if cfg.Generator.FleetSize > cfg.Generator.NumVessels {
		// --vessels shrank the pool below the configured fleet
		cfg.Generator.FleetSize = cfg.Generator.NumVessels
	}
	if f.Changed("report") {
		cfg.Report.Enabled = o.report
	}
	return cfg.Validate()
}

func newGenerateCmd(opts *rootOptions) *cobra.Command {
	gen := &generateOptions{}
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate the fleet fixture files",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(cmd, opts, gen)
		},
	}
	gen.bind(cmd)
	return cmd
}

func runGenerate(cmd *cobra.Command, opts *rootOptions, gen *generateOptions) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := opts.load(cmd)
	if err != nil {
		return err
	}
	if err := gen.apply(cmd, cfg); err != nil {
		return err
	}
	svc, err := app.New(cfg)
	if err != nil {
		return err
	}
	defer func() {
		if err := svc.Close(); err != nil {
			logger.New("main").Errorf("service close: %v", err)
		}
	}()
	res, err := svc.Run(ctx)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "run %s: wrote %d files to %s (seed %d)\n", res.RunID, len(res.Files), res.OutputDir, res.Seed)
	if res.ReportPath != "" {
		fmt.Fprintf(out, "report: %s\n", res.ReportPath)
	}
	return nil
}
