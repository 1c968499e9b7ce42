package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

const version = "1.1.0"

func newVersionCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:         "version",
		Short:       "Print version and catalog location",
		Annotations: map[string]string{"skipConfigLoad": "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "cratedig %s\n", version)
			if cfg, err := ctx.ensureConfig(); err == nil {
				fmt.Fprintf(out, "catalog: %s\n", cfg.DatabasePath())
			}
			return nil
		},
	}
}
