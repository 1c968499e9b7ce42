package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"cratedig/internal/catalog"
)

func newShowCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "show <id-or-title>",
		Short: "Show details for a single project",
		Long: `Resolves the argument as a numeric record id first, then as a
case-insensitive title fragment. Discovered records are searched before
curated ones.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withStore(func(store *catalog.Store) error {
				details, err := store.FindProject(cmd.Context(), args[0])
				if err != nil {
					return err
				}
				printProjectDetails(cmd.OutOrStdout(), details)
				return nil
			})
		},
	}
}

func printProjectDetails(out io.Writer, details *catalog.ProjectDetails) {
	if details.Curated != nil {
		p := details.Curated
		fmt.Fprintf(out, "Curated project #%d\n", p.ID)
		printFields(out, [][2]string{
			{"Title", p.Title},
			{"Description", orDash(p.Description)},
			{"Genre", orDash(p.Genre)},
			{"BPM", zeroDash(p.BPM)},
			{"Key", orDash(p.KeySignature)},
			{"Year", zeroDash(p.Year)},
			{"Status", orDash(p.Status)},
			{"Rating", formatRating(p.Rating)},
			{"Tags", orDash(strings.Join(p.Tags, ", "))},
			{"Collaboration", orDash(p.Collaboration)},
			{"DAW", string(p.Format)},
			{"File", p.FilePath},
			{"Folder", orDash(p.FolderPath)},
			{"Size", formatSizeMB(p.SizeMB)},
			{"Created", formatDate(p.CreatedAt)},
			{"Curated", formatDate(p.CuratedAt)},
		})
		return
	}

	p := details.Discovered
	fmt.Fprintf(out, "Discovered project #%d\n", p.ID)
	fields := [][2]string{
		{"Title", p.DetectedTitle},
		{"DAW", string(p.Format)},
		{"File", p.FilePath},
		{"Folder", orDash(p.FolderPath)},
		{"Size", formatSizeMB(p.SizeMB)},
		{"Created", formatDate(p.CreatedAt)},
		{"Modified", formatDate(p.ModifiedAt)},
		{"Discovered", formatDate(p.DiscoveredAt)},
	}
	if len(p.ExtraFiles) > 0 {
		shown := p.ExtraFiles
		suffix := ""
		if len(shown) > 3 {
			suffix = fmt.Sprintf(" (+%d more)", len(shown)-3)
			shown = shown[:3]
		}
		fields = append(fields, [2]string{"Extra files", strings.Join(shown, ", ") + suffix})
	}
	if p.Notes != "" {
		fields = append(fields, [2]string{"Notes", p.Notes})
	}
	printFields(out, fields)
}

func printFields(out io.Writer, fields [][2]string) {
	for _, field := range fields {
		fmt.Fprintf(out, "  %-14s %s\n", field[0]+":", field[1])
	}
}

func zeroDash(value int) string {
	if value == 0 {
		return "-"
	}
	return fmt.Sprintf("%d", value)
}
