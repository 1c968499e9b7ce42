package main

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"cratedig/internal/catalog"
	"cratedig/internal/scanner"
)

func newReviewCommand(ctx *commandContext) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "review",
		Short: "Triage discovered projects interactively",
		Long: `Steps through unreviewed discoveries one at a time. For each project:
  r  refine it into the curated collection, prompting for title, genre, rating
  o  open the project file and decide afterwards
  x  reject it, prompting for a reason
  s  skip it for now
  q  stop reviewing`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withStore(func(store *catalog.Store) error {
				return runReview(cmd, store, limit)
			})
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 10, "Stop after this many projects (0 reviews everything)")
	return cmd
}

func runReview(cmd *cobra.Command, store *catalog.Store, limit int) error {
	out := cmd.OutOrStdout()
	reader := bufio.NewReader(cmd.InOrStdin())

	var reviewed, skipped int
	for {
		if limit > 0 && reviewed >= limit {
			fmt.Fprintf(out, "Reviewed %d project(s).\n", reviewed)
			return nil
		}

		// Skipped projects stay in the unprocessed list, so the offset
		// advances past them. Curated and rejected ones drop out on their
		// own.
		batch, err := store.ListDiscovered(cmd.Context(), catalog.ListOptions{Limit: 1, Offset: skipped})
		if err != nil {
			return err
		}
		if len(batch) == 0 {
			if reviewed == 0 {
				fmt.Fprintln(out, "Nothing to review.")
			} else {
				fmt.Fprintf(out, "Done. Reviewed %d project(s).\n", reviewed)
			}
			return nil
		}
		project := batch[0]

		fmt.Fprintln(out)
		printProjectDetails(out, &catalog.ProjectDetails{Source: "discovered", Discovered: project})

	prompt:
		for {
			fmt.Fprint(out, "[r]efine / [o]pen / [x] reject / [s]kip / [q]uit: ")
			choice, err := readLine(reader)
			if err != nil {
				if err == io.EOF {
					return nil
				}
				return err
			}

			switch strings.ToLower(choice) {
			case "r":
				if err := reviewRefine(cmd, store, reader, project); err != nil {
					return err
				}
				reviewed++
				break prompt
			case "x":
				fmt.Fprint(out, "Reason (empty for default): ")
				reason, err := readLine(reader)
				if err != nil && err != io.EOF {
					return err
				}
				discarded, derr := store.Discard(cmd.Context(), project.ID, reason)
				if derr != nil {
					return derr
				}
				fmt.Fprintf(out, "Discarded %q (%s)\n", discarded.DetectedTitle, discarded.Reason)
				reviewed++
				break prompt
			case "o":
				if err := openWithSystem(project.FilePath); err != nil {
					fmt.Fprintf(out, "open failed: %v\n", err)
				}
			case "s":
				reviewed++
				skipped++
				break prompt
			case "q", "":
				fmt.Fprintf(out, "Stopped after %d project(s).\n", reviewed)
				return nil
			default:
				fmt.Fprintf(out, "unknown choice %q\n", choice)
			}
		}
	}
}

func reviewRefine(cmd *cobra.Command, store *catalog.Store, reader *bufio.Reader, project *catalog.DiscoveredProject) error {
	out := cmd.OutOrStdout()
	suggested := scanner.SuggestTitle(project.DetectedTitle)

	fmt.Fprintf(out, "Title [%s]: ", suggested)
	title, err := readLine(reader)
	if err != nil && err != io.EOF {
		return err
	}
	if strings.TrimSpace(title) == "" {
		title = suggested
	}

	fmt.Fprint(out, "Genre (optional): ")
	genre, err := readLine(reader)
	if err != nil && err != io.EOF {
		return err
	}

	opts := catalog.PromoteOptions{Title: title, Genre: genre}
	for {
		fmt.Fprint(out, "Rating 1-10 (optional): ")
		raw, err := readLine(reader)
		if err != nil && err != io.EOF {
			return err
		}
		raw = strings.TrimSpace(raw)
		if raw == "" {
			break
		}
		rating, convErr := strconv.Atoi(raw)
		if convErr != nil || rating < 1 || rating > 10 {
			fmt.Fprintln(out, "rating must be a number from 1 to 10")
			continue
		}
		opts.Rating = &rating
		break
	}

	curated, err := store.Promote(cmd.Context(), project.ID, opts)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "Promoted %q as curated project #%d\n", curated.Title, curated.ID)
	return nil
}

func readLine(reader *bufio.Reader) (string, error) {
	line, err := reader.ReadString('\n')
	line = strings.TrimRight(line, "\r\n")
	if err != nil && (err != io.EOF || line == "") {
		return line, err
	}
	return line, nil
}
