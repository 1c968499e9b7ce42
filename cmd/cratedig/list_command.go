package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"cratedig/internal/catalog"
)

func newListCommand(ctx *commandContext) *cobra.Command {
	var (
		limit     int
		offset    int
		format    string
		curated   bool
		discarded bool
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List cataloged projects",
		Long: `Without flags, lists discovered projects that still await review.
--curated and --discarded switch to the other record sets.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if curated && discarded {
				return fmt.Errorf("--curated and --discarded are mutually exclusive")
			}

			opts := catalog.ListOptions{Limit: limit, Offset: offset, Format: format}
			return ctx.withStore(func(store *catalog.Store) error {
				out := cmd.OutOrStdout()
				switch {
				case curated:
					projects, err := store.ListCurated(cmd.Context(), opts)
					if err != nil {
						return err
					}
					if len(projects) == 0 {
						fmt.Fprintln(out, "No curated projects.")
						return nil
					}
					rows := make([][]string, 0, len(projects))
					for _, p := range projects {
						rows = append(rows, []string{
							fmt.Sprintf("%d", p.ID),
							truncate(p.Title, 40),
							orDash(p.Genre),
							string(p.Format),
							orDash(p.Status),
							formatRating(p.Rating),
							formatDate(p.CuratedAt),
						})
					}
					fmt.Fprintln(out, renderTable(
						[]string{"ID", "Title", "Genre", "DAW", "Status", "Rating", "Curated"},
						rows,
						[]columnAlignment{alignRight, alignLeft, alignLeft, alignLeft, alignLeft, alignRight, alignLeft},
					))
				case discarded:
					projects, err := store.ListDiscarded(cmd.Context(), opts)
					if err != nil {
						return err
					}
					if len(projects) == 0 {
						fmt.Fprintln(out, "No discarded projects.")
						return nil
					}
					rows := make([][]string, 0, len(projects))
					for _, p := range projects {
						rows = append(rows, []string{
							fmt.Sprintf("%d", p.ID),
							truncate(p.DetectedTitle, 40),
							string(p.Format),
							truncate(p.Reason, 40),
							formatDate(p.DiscardedAt),
						})
					}
					fmt.Fprintln(out, renderTable(
						[]string{"ID", "Title", "DAW", "Reason", "Discarded"},
						rows,
						[]columnAlignment{alignRight, alignLeft, alignLeft, alignLeft, alignLeft},
					))
				default:
					projects, err := store.ListDiscovered(cmd.Context(), opts)
					if err != nil {
						return err
					}
					if len(projects) == 0 {
						fmt.Fprintln(out, "No projects awaiting review. Run `cratedig add <directory>` to scan.")
						return nil
					}
					rows := make([][]string, 0, len(projects))
					for _, p := range projects {
						rows = append(rows, []string{
							fmt.Sprintf("%d", p.ID),
							truncate(p.DetectedTitle, 40),
							string(p.Format),
							formatSizeMB(p.SizeMB),
							formatDate(p.ModifiedAt),
							formatDate(p.DiscoveredAt),
						})
					}
					fmt.Fprintln(out, renderTable(
						[]string{"ID", "Title", "DAW", "Size", "Modified", "Discovered"},
						rows,
						[]columnAlignment{alignRight, alignLeft, alignLeft, alignRight, alignLeft, alignLeft},
					))
				}
				return nil
			})
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 20, "Maximum number of rows")
	cmd.Flags().IntVar(&offset, "offset", 0, "Number of rows to skip")
	cmd.Flags().StringVarP(&format, "daw", "f", "", "Filter by DAW type substring")
	cmd.Flags().BoolVar(&curated, "curated", false, "List curated projects")
	cmd.Flags().BoolVar(&discarded, "discarded", false, "List discarded projects")
	return cmd
}
