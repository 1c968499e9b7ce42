package report

import (
	"strings"
	"testing"

	"cratedig/internal/catalog"
	"cratedig/internal/daw"
)

func sampleExport() *catalog.Export {
	return &catalog.Export{
		Discovered: []*catalog.DiscoveredProject{
			{ID: 1}, {ID: 2}, {ID: 3}, {ID: 4},
		},
		Curated: []*catalog.CuratedProject{
			{ID: 1, Status: "complete", Genre: "House", Format: daw.FLStudio, Year: 2021, Rating: 8, SizeMB: 10},
			{ID: 2, Status: "complete", Genre: "House", Format: daw.StudioOne, Year: 2022, Rating: 6, SizeMB: 5},
			{ID: 3, Status: "wip", Format: daw.FLStudio, SizeMB: 2.5},
		},
		Discarded: []*catalog.DiscardedProject{{ID: 1}},
	}
}

func TestBuild(t *testing.T) {
	r := Build(sampleExport())

	if r.Discovered != 4 || r.Curated != 3 || r.Discarded != 1 || r.Unprocessed != 0 {
		t.Fatalf("funnel = %d/%d/%d/%d", r.Discovered, r.Curated, r.Discarded, r.Unprocessed)
	}
	if len(r.Statuses) != 2 || r.Statuses[0].Label != "complete" || r.Statuses[0].Count != 2 {
		t.Fatalf("statuses = %v", r.Statuses)
	}
	if len(r.Genres) != 2 || r.Genres[0].Label != "House" {
		t.Fatalf("genres = %v", r.Genres)
	}
	if r.Genres[1].Label != "(unknown)" {
		t.Fatalf("missing genre must bucket as unknown, got %v", r.Genres)
	}
	if len(r.Formats) != 2 || r.Formats[0].Label != string(daw.FLStudio) || r.Formats[0].Count != 2 {
		t.Fatalf("formats = %v", r.Formats)
	}
	if len(r.Years) != 3 || r.Years[0].Label != "(unknown)" || r.Years[1].Label != "2021" {
		t.Fatalf("years = %v", r.Years)
	}
	if r.RatedCount != 2 || r.AverageRating != 7 {
		t.Fatalf("ratings = %d/%v", r.RatedCount, r.AverageRating)
	}
	if r.TotalSizeMB != 17.5 {
		t.Fatalf("size = %v", r.TotalSizeMB)
	}
}

func TestBuildEmptyExport(t *testing.T) {
	r := Build(&catalog.Export{})
	if r.Discovered != 0 || r.RatedCount != 0 || r.AverageRating != 0 {
		t.Fatalf("empty export report = %+v", r)
	}
	if out := r.Render(); !strings.Contains(out, "no rated projects") {
		t.Fatalf("render = %q", out)
	}
}

func TestRenderSections(t *testing.T) {
	out := Build(sampleExport()).Render()
	for _, want := range []string{"Lifecycle", "Curated by status", "Curated by DAW", "average 7.0/10", "17.50 MB"} {
		if !strings.Contains(out, want) {
			t.Fatalf("render missing %q:\n%s", want, out)
		}
	}
}
