package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"cratedig/internal/catalog"
)

func newRefineCommand(ctx *commandContext) *cobra.Command {
	var (
		title         string
		description   string
		genre         string
		bpm           int
		key           string
		year          int
		status        string
		rating        int
		tags          []string
		collaboration string
	)

	cmd := &cobra.Command{
		Use:   "refine <id>",
		Short: "Promote a discovered project into the curated collection",
		Long: `Moves the discovered record with the given id into the curated set,
attaching the supplied metadata. Unset fields fall back to defaults: the
detected title, status "complete", and the file's creation year. A project
that was already promoted or rejected cannot be refined again.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid project id %q", args[0])
			}

			opts := catalog.PromoteOptions{
				Title:         title,
				Description:   description,
				Genre:         genre,
				BPM:           bpm,
				KeySignature:  key,
				Year:          year,
				Status:        status,
				Tags:          tags,
				Collaboration: collaboration,
			}
			if cmd.Flags().Changed("rating") {
				opts.Rating = &rating
			}

			return ctx.withStore(func(store *catalog.Store) error {
				curated, err := store.Promote(cmd.Context(), id, opts)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Promoted %q as curated project #%d\n", curated.Title, curated.ID)
				return nil
			})
		},
	}

	cmd.Flags().StringVarP(&title, "title", "t", "", "Curated title (defaults to the detected title)")
	cmd.Flags().StringVarP(&description, "description", "d", "", "Free-form description")
	cmd.Flags().StringVarP(&genre, "genre", "g", "", "Genre")
	cmd.Flags().IntVar(&bpm, "bpm", 0, "Tempo in beats per minute")
	cmd.Flags().StringVarP(&key, "key", "k", "", "Key signature")
	cmd.Flags().IntVarP(&year, "year", "y", 0, "Production year (defaults to the file's creation year)")
	cmd.Flags().StringVarP(&status, "status", "s", "", `Status (defaults to "complete")`)
	cmd.Flags().IntVarP(&rating, "rating", "r", 0, "Rating from 1 to 10")
	cmd.Flags().StringSliceVar(&tags, "tags", nil, "Comma-separated tags")
	cmd.Flags().StringVar(&collaboration, "collab", "", "Collaborators")
	return cmd
}
