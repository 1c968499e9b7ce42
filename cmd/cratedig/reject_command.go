package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"cratedig/internal/catalog"
)

func newRejectCommand(ctx *commandContext) *cobra.Command {
	var reason string

	cmd := &cobra.Command{
		Use:   "reject <id>",
		Short: "Discard a discovered project",
		Long: `Moves the discovered record with the given id into the discarded set.
Rejection is final: the project will not reappear in listings or reviews,
though rescanning never re-adds it either.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid project id %q", args[0])
			}

			return ctx.withStore(func(store *catalog.Store) error {
				discarded, err := store.Discard(cmd.Context(), id, reason)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Discarded %q (%s)\n", discarded.DetectedTitle, discarded.Reason)
				return nil
			})
		},
	}

	cmd.Flags().StringVarP(&reason, "reason", "r", "", `Why the project is being discarded (defaults to "Not useful")`)
	return cmd
}
