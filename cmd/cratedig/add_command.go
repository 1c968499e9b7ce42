package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"cratedig/internal/catalog"
	"cratedig/internal/scanner"
)

func newAddCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "add <directory>",
		Short: "Scan a directory tree for DAW project files",
		Long: `Walks the directory recursively, resolves every supported project file
into a project unit, and records new ones in the discovered set. Paths seen
on a previous scan are skipped, so re-running add on the same tree is safe.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			root, err := filepath.Abs(args[0])
			if err != nil {
				return fmt.Errorf("resolve path: %w", err)
			}
			if info, err := os.Stat(root); err != nil {
				return fmt.Errorf("inspect directory: %w", err)
			} else if !info.IsDir() {
				return fmt.Errorf("%s is not a directory", root)
			}

			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			logger, err := ctx.ensureLogger()
			if err != nil {
				return err
			}

			classifier := scanner.NewClassifier(cfg.Scan.ExtraNoiseMarkers...)
			walker := scanner.NewWalker(classifier, logger)
			projects, err := walker.Scan(cmd.Context(), root)
			if err != nil {
				return fmt.Errorf("scan %s: %w", root, err)
			}

			out := cmd.OutOrStdout()
			var added, known int
			err = ctx.withStore(func(store *catalog.Store) error {
				for _, project := range projects {
					insertErr := store.InsertDiscovered(cmd.Context(), project)
					switch {
					case insertErr == nil:
						added++
						fmt.Fprintf(out, "Added #%d %s (%s)\n", project.ID, project.DetectedTitle, project.Format)
					case errors.Is(insertErr, catalog.ErrAlreadyExists):
						known++
						fmt.Fprintf(out, "Already cataloged: %s\n", project.FilePath)
					default:
						return insertErr
					}
				}
				return nil
			})
			if err != nil {
				return err
			}

			fmt.Fprintf(out, "Scanned %s: %d project(s) found, %d new, %d already cataloged\n",
				root, len(projects), added, known)
			if added > 0 {
				fmt.Fprintln(out, "Run `cratedig review` to triage the new discoveries.")
			}
			return nil
		},
	}
}
