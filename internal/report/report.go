package report

import (
	"fmt"
	"sort"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"cratedig/internal/catalog"
)

// Count pairs a label with how many records carry it.
type Count struct {
	Label string
	Count int
}

// Report aggregates a catalog export for the analytics command.
type Report struct {
	Discovered  int
	Curated     int
	Discarded   int
	Unprocessed int

	Statuses []Count // curated status funnel, count descending
	Genres   []Count // curated genre distribution, count descending
	Formats  []Count // curated DAW breakdown, count descending
	Years    []Count // curated year breakdown, ascending by year

	RatedCount    int
	AverageRating float64
	TotalSizeMB   float64
}

// Build computes the report from a full export. Records with missing
// metadata fall into an "(unknown)" bucket rather than being dropped.
func Build(export *catalog.Export) *Report {
	r := &Report{
		Discovered: len(export.Discovered),
		Curated:    len(export.Curated),
		Discarded:  len(export.Discarded),
	}
	r.Unprocessed = r.Discovered - r.Curated - r.Discarded
	if r.Unprocessed < 0 {
		r.Unprocessed = 0
	}

	statuses := map[string]int{}
	genres := map[string]int{}
	formats := map[string]int{}
	years := map[string]int{}
	ratingSum := 0

	for _, project := range export.Curated {
		statuses[orUnknown(project.Status)]++
		genres[orUnknown(project.Genre)]++
		formats[orUnknown(string(project.Format))]++
		if project.Year > 0 {
			years[fmt.Sprintf("%d", project.Year)]++
		} else {
			years["(unknown)"]++
		}
		if project.Rating > 0 {
			r.RatedCount++
			ratingSum += project.Rating
		}
		r.TotalSizeMB += project.SizeMB
	}

	if r.RatedCount > 0 {
		r.AverageRating = float64(ratingSum) / float64(r.RatedCount)
	}
	r.Statuses = byCountDesc(statuses)
	r.Genres = byCountDesc(genres)
	r.Formats = byCountDesc(formats)
	r.Years = byLabelAsc(years)
	return r
}

// Render formats the report as a sequence of titled tables.
func (r *Report) Render() string {
	var b strings.Builder

	b.WriteString("Lifecycle\n")
	b.WriteString(renderCounts([]Count{
		{Label: "discovered", Count: r.Discovered},
		{Label: "curated", Count: r.Curated},
		{Label: "discarded", Count: r.Discarded},
		{Label: "unprocessed", Count: r.Unprocessed},
	}))

	sections := []struct {
		title  string
		counts []Count
	}{
		{"Curated by status", r.Statuses},
		{"Curated by genre", r.Genres},
		{"Curated by DAW", r.Formats},
		{"Curated by year", r.Years},
	}
	for _, section := range sections {
		if len(section.counts) == 0 {
			continue
		}
		b.WriteString("\n" + section.title + "\n")
		b.WriteString(renderCounts(section.counts))
	}

	b.WriteString("\nRatings\n")
	if r.RatedCount == 0 {
		b.WriteString("no rated projects\n")
	} else {
		fmt.Fprintf(&b, "%d rated, average %.1f/10\n", r.RatedCount, r.AverageRating)
	}
	fmt.Fprintf(&b, "curated library size: %.2f MB\n", r.TotalSizeMB)
	return b.String()
}

func renderCounts(counts []Count) string {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	tw.AppendHeader(table.Row{"", "Count"})
	for _, c := range counts {
		tw.AppendRow(table.Row{c.Label, c.Count})
	}
	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, Align: text.AlignLeft},
		{Number: 2, Align: text.AlignRight, AlignHeader: text.AlignLeft},
	})
	return tw.Render() + "\n"
}

func orUnknown(value string) string {
	if strings.TrimSpace(value) == "" {
		return "(unknown)"
	}
	return value
}

func byCountDesc(m map[string]int) []Count {
	counts := toCounts(m)
	sort.Slice(counts, func(i, j int) bool {
		if counts[i].Count != counts[j].Count {
			return counts[i].Count > counts[j].Count
		}
		return counts[i].Label < counts[j].Label
	})
	return counts
}

func byLabelAsc(m map[string]int) []Count {
	counts := toCounts(m)
	sort.Slice(counts, func(i, j int) bool {
		return counts[i].Label < counts[j].Label
	})
	return counts
}

func toCounts(m map[string]int) []Count {
	counts := make([]Count, 0, len(m))
	for label, count := range m {
		counts = append(counts, Count{Label: label, Count: count})
	}
	return counts
}
