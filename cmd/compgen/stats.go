package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/compgen/catalog"
	"github.com/katalvlaran/compgen/classic"
)

// newStatsCmd builds the `stats` subcommand: a quick overview of the
// built-in catalog without writing any files.
func newStatsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Print catalog statistics",
		RunE: func(cmd *cobra.Command, args []string) error {
			cat := catalog.Default()

			variations := 0
			for _, c := range cat.Components() {
				variations += c.NumVariations()
			}
			resolved := classic.Resolve(cat, classic.Known())

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintf(tw, "components\t%d\n", cat.Len())
			fmt.Fprintf(tw, "variations\t%d\n", variations)
			fmt.Fprintf(tw, "classic algorithms\t%d\n", len(resolved))
			for _, c := range catalog.Categories() {
				fmt.Fprintf(tw, "  %s\t%d\n", c, len(cat.ByCategory(c)))
			}

			return tw.Flush()
		},
	}
}
