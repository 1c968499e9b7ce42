package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"cratedig/internal/catalog"
	"cratedig/internal/report"
)

func newAnalyticsCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "analytics",
		Short: "Report on the curated collection",
		Long: `Reads the full catalog and breaks the curated collection down by
status, genre, workstation, year, and rating.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withStore(func(store *catalog.Store) error {
				export, err := store.Export(cmd.Context())
				if err != nil {
					return err
				}
				fmt.Fprint(cmd.OutOrStdout(), report.Build(export).Render())
				return nil
			})
		},
	}
}
