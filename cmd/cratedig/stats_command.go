package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"cratedig/internal/catalog"
)

func newStatsCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Summarize catalog state",
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withStore(func(store *catalog.Store) error {
				stats, err := store.Stats(cmd.Context())
				if err != nil {
					return err
				}

				out := cmd.OutOrStdout()
				fmt.Fprintln(out, renderTable(
					[]string{"Set", "Count"},
					[][]string{
						{"discovered", fmt.Sprintf("%d", stats.Discovered)},
						{"curated", fmt.Sprintf("%d", stats.Curated)},
						{"discarded", fmt.Sprintf("%d", stats.Discarded)},
						{"awaiting review", fmt.Sprintf("%d", stats.Unprocessed)},
					},
					[]columnAlignment{alignLeft, alignRight},
				))

				if len(stats.CuratedByFormat) > 0 {
					rows := make([][]string, 0, len(stats.CuratedByFormat))
					for _, fc := range stats.CuratedByFormat {
						rows = append(rows, []string{fc.Format, fmt.Sprintf("%d", fc.Count)})
					}
					fmt.Fprintln(out)
					fmt.Fprintln(out, renderTable(
						[]string{"Curated by DAW", "Count"},
						rows,
						[]columnAlignment{alignLeft, alignRight},
					))
				}

				fmt.Fprintf(out, "\nCurated library size: %s\n", formatSizeMB(stats.CuratedSizeMB))
				return nil
			})
		},
	}
}
