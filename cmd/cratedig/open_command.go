package main

import (
	"fmt"
	"os/exec"
	"runtime"

	"github.com/spf13/cobra"

	"cratedig/internal/catalog"
)

func newOpenCommand(ctx *commandContext) *cobra.Command {
	var folder bool

	cmd := &cobra.Command{
		Use:   "open <id-or-title>",
		Short: "Open a project in its workstation",
		Long: `Resolves the project like show does, then hands the project file to the
operating system's default opener. --folder opens the containing directory
instead, which is handy for folder-based formats.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withStore(func(store *catalog.Store) error {
				details, err := store.FindProject(cmd.Context(), args[0])
				if err != nil {
					return err
				}

				target := details.FilePath()
				if folder {
					switch {
					case details.Discovered != nil && details.Discovered.FolderPath != "":
						target = details.Discovered.FolderPath
					case details.Curated != nil && details.Curated.FolderPath != "":
						target = details.Curated.FolderPath
					default:
						return fmt.Errorf("project %q has no folder; it is a standalone file", details.Title())
					}
				}

				if err := openWithSystem(target); err != nil {
					return fmt.Errorf("open %s: %w", target, err)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Opened %s\n", target)
				return nil
			})
		},
	}

	cmd.Flags().BoolVarP(&folder, "folder", "F", false, "Open the project folder instead of the project file")
	return cmd
}

func openWithSystem(target string) error {
	var command *exec.Cmd
	switch runtime.GOOS {
	case "darwin":
		command = exec.Command("open", target)
	case "windows":
		command = exec.Command("cmd", "/c", "start", "", target)
	default:
		command = exec.Command("xdg-open", target)
	}
	return command.Start()
}
