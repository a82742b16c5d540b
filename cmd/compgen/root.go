package main

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

// newRootCmd builds the compgen command tree. Logging goes to stderr so
// stdout stays clean for data, following Unix CLI conventions.
func newRootCmd() *cobra.Command {
	var verbose bool

	root := &cobra.Command{
		Use:   "compgen",
		Short: "Enumerate the design space of compression algorithms",
		Long: `compgen enumerates compression-algorithm building blocks, their
parametric variations, and the valid multi-stage pipelines that can be
assembled from them, exporting the results as CSV for documentation,
analysis, and test-fixture generation.

compgen never executes or benchmarks an algorithm: complexity columns are
descriptive annotations, not measurements.`,
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := slog.LevelInfo
			if verbose {
				level = slog.LevelDebug
			}
			slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
				Level: level,
			})))
		},
	}

	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	root.AddCommand(newGenerateCmd())
	root.AddCommand(newStatsCmd())

	return root
}
