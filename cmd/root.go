package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/kilianp07/fleetmock/config"
)

const defaultConfigPath = "fleetmock.yaml"

type rootOptions struct {
	cfgPath string
}

// NewRootCmd builds the fleetmock command tree. Running the root command
// without a subcommand generates the fixtures.
func NewRootCmd() *cobra.Command {
	opts := &rootOptions{}
	gen := &generateOptions{}
	rootCmd := &cobra.Command{
		Use:           "fleetmock",
		Short:         "Generate synthetic vessel fleet fixtures",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(cmd, opts, gen)
		},
	}
	rootCmd.PersistentFlags().StringVarP(&opts.cfgPath, "config", "c", defaultConfigPath, "configuration file (YAML or JSON)")
	gen.bind(rootCmd)
	rootCmd.AddCommand(
		newGenerateCmd(opts),
		newFleetCmd(opts),
		newHistoryCmd(opts),
	)
	return rootCmd
}

// Execute runs the CLI.
func Execute() error {
	rootCmd := NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(rootCmd.ErrOrStderr(), "Error:", err)
		return err
	}
	return nil
}

// load reads the configuration. A missing default file falls back to the
// built-in defaults; an explicitly named file must exist.
func (o *rootOptions) load(cmd *cobra.Command) (*config.Config, error) {
	path := o.cfgPath
	if !cmd.Flags().Changed("config") {
		if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
			path = ""
		}
	}
	cfg, err := config.Load(path)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	return cfg, nil
}
