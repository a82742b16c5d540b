package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/compgen/catalog"
	"github.com/katalvlaran/compgen/export"
)

// newGenerateCmd builds the `generate` subcommand: export the full CSV
// bundle into an output directory.
func newGenerateCmd() *cobra.Command {
	var (
		output      string
		minDepth    int
		maxDepth    int
		noPipelines bool
		require     bool
		configPath  string
	)

	cfg := export.DefaultConfig()

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Export components, variations, pipelines and classics as CSV",
		RunE: func(cmd *cobra.Command, args []string) error {
			// Config file first, explicit flags override.
			if configPath != "" {
				fc, err := loadConfig(configPath)
				if err != nil {
					return err
				}
				fc.apply(&output, &cfg)
			}
			if cmd.Flags().Changed("min-depth") {
				cfg.MinDepth = minDepth
			}
			if cmd.Flags().Changed("max-depth") {
				cfg.MaxDepth = maxDepth
			}
			if cmd.Flags().Changed("require-coder") {
				cfg.RequireEntropyCoder = require
			}
			if noPipelines {
				cfg.IncludePipelines = false
			}

			slog.Info("generating catalog exports",
				"output", output,
				"min_depth", cfg.MinDepth,
				"max_depth", cfg.MaxDepth,
				"pipelines", cfg.IncludePipelines,
			)

			outputs, err := export.Dir(output, catalog.Default(), cfg)
			if err != nil {
				return err
			}

			for kind, path := range outputs {
				slog.Debug("wrote export file", "kind", kind, "path", path)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Generated %d files in %s\n", len(outputs), output)

			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "out", "output directory for CSV files")
	cmd.Flags().IntVar(&minDepth, "min-depth", cfg.MinDepth, "minimum pipeline depth")
	cmd.Flags().IntVar(&maxDepth, "max-depth", cfg.MaxDepth, "maximum pipeline depth")
	cmd.Flags().BoolVar(&noPipelines, "no-pipelines", false, "skip generating pipeline combinations")
	cmd.Flags().BoolVar(&require, "require-coder", cfg.RequireEntropyCoder, "only keep pipelines ending in an entropy coder")
	cmd.Flags().StringVar(&configPath, "config", "", "YAML config file (flags override)")

	return cmd
}
