package catalog_test

import (
	"context"
	"errors"
	"testing"

	"cratedig/internal/catalog"
	"cratedig/internal/daw"
	"cratedig/internal/testsupport"
)

func intPtr(v int) *int { return &v }

func TestPromoteDefaults(t *testing.T) {
	store := testsupport.MustOpenStore(t, testsupport.NewConfig(t))
	ctx := context.Background()

	source := testsupport.NewDiscovered(t, store, "/music/Track.flp", "Track")

	curated, err := store.Promote(ctx, source.ID, catalog.PromoteOptions{})
	if err != nil {
		t.Fatalf("Promote: %v", err)
	}
	if curated.Title != "Track" {
		t.Fatalf("title = %q, want detected title Track", curated.Title)
	}
	if curated.Status != catalog.DefaultCuratedStatus {
		t.Fatalf("status = %q, want %q", curated.Status, catalog.DefaultCuratedStatus)
	}
	if curated.Year != source.CreatedAt.Year() {
		t.Fatalf("year = %d, want creation year %d", curated.Year, source.CreatedAt.Year())
	}
	if curated.DiscoveredID != source.ID {
		t.Fatalf("discovered id = %d, want %d", curated.DiscoveredID, source.ID)
	}
	if curated.FilePath != source.FilePath || curated.Format != source.Format {
		t.Fatalf("copied fields = %q/%q, want %q/%q", curated.FilePath, curated.Format, source.FilePath, source.Format)
	}
	if curated.SizeMB != source.SizeMB {
		t.Fatalf("size = %v, want %v", curated.SizeMB, source.SizeMB)
	}
	if curated.Rating != 0 {
		t.Fatalf("rating = %d, want unset", curated.Rating)
	}
	if curated.CuratedAt.IsZero() {
		t.Fatal("curated_at must be set")
	}
}

func TestPromoteWithMetadata(t *testing.T) {
	store := testsupport.MustOpenStore(t, testsupport.NewConfig(t))
	ctx := context.Background()

	source := testsupport.NewDiscovered(t, store, "/music/Track.flp", "Track")

	curated, err := store.Promote(ctx, source.ID, catalog.PromoteOptions{
		Title:         "Night Drive",
		Description:   "late session sketch",
		Genre:         "House",
		BPM:           124,
		KeySignature:  "F minor",
		Year:          2021,
		Status:        "wip",
		Rating:        intPtr(8),
		Tags:          []string{"dark", "analog"},
		Collaboration: "with K.",
	})
	if err != nil {
		t.Fatalf("Promote: %v", err)
	}
	if curated.Title != "Night Drive" || curated.Genre != "House" || curated.BPM != 124 {
		t.Fatalf("metadata = %+v", curated)
	}
	if curated.Year != 2021 || curated.Status != "wip" || curated.Rating != 8 {
		t.Fatalf("metadata = %+v", curated)
	}
	if len(curated.Tags) != 2 || curated.Tags[0] != "dark" {
		t.Fatalf("tags = %v", curated.Tags)
	}
}

func TestPromoteRatingValidation(t *testing.T) {
	store := testsupport.MustOpenStore(t, testsupport.NewConfig(t))
	ctx := context.Background()

	source := testsupport.NewDiscovered(t, store, "/music/Track.flp", "Track")

	for _, rating := range []int{0, 11, -3} {
		_, err := store.Promote(ctx, source.ID, catalog.PromoteOptions{Rating: intPtr(rating)})
		if !errors.Is(err, catalog.ErrValidation) {
			t.Fatalf("rating %d: error = %v, want ErrValidation", rating, err)
		}
	}

	// Validation failures must leave the record promotable.
	if _, err := store.Promote(ctx, source.ID, catalog.PromoteOptions{Rating: intPtr(10)}); err != nil {
		t.Fatalf("Promote with valid rating: %v", err)
	}
}

func TestPromoteMissingRecord(t *testing.T) {
	store := testsupport.MustOpenStore(t, testsupport.NewConfig(t))

	_, err := store.Promote(context.Background(), 42, catalog.PromoteOptions{})
	if !errors.Is(err, catalog.ErrNotFound) {
		t.Fatalf("error = %v, want ErrNotFound", err)
	}
}

func TestLifecycleStateConflicts(t *testing.T) {
	store := testsupport.MustOpenStore(t, testsupport.NewConfig(t))
	ctx := context.Background()

	promoted := testsupport.NewDiscovered(t, store, "/music/A.flp", "A")
	discarded := testsupport.NewDiscovered(t, store, "/music/B.flp", "B")

	if _, err := store.Promote(ctx, promoted.ID, catalog.PromoteOptions{}); err != nil {
		t.Fatalf("Promote: %v", err)
	}
	if _, err := store.Discard(ctx, discarded.ID, "noise"); err != nil {
		t.Fatalf("Discard: %v", err)
	}

	// Both terminal states are final: no re-promotion, no cross-over.
	if _, err := store.Promote(ctx, promoted.ID, catalog.PromoteOptions{}); !errors.Is(err, catalog.ErrStateConflict) {
		t.Fatalf("re-promote error = %v, want ErrStateConflict", err)
	}
	if _, err := store.Discard(ctx, promoted.ID, ""); !errors.Is(err, catalog.ErrStateConflict) {
		t.Fatalf("discard promoted error = %v, want ErrStateConflict", err)
	}
	if _, err := store.Promote(ctx, discarded.ID, catalog.PromoteOptions{}); !errors.Is(err, catalog.ErrStateConflict) {
		t.Fatalf("promote discarded error = %v, want ErrStateConflict", err)
	}
	if _, err := store.Discard(ctx, discarded.ID, ""); !errors.Is(err, catalog.ErrStateConflict) {
		t.Fatalf("re-discard error = %v, want ErrStateConflict", err)
	}
}

func TestDiscardDefaults(t *testing.T) {
	store := testsupport.MustOpenStore(t, testsupport.NewConfig(t))
	ctx := context.Background()

	source := testsupport.NewDiscovered(t, store, "/music/Noise.flp", "Noise")

	record, err := store.Discard(ctx, source.ID, "   ")
	if err != nil {
		t.Fatalf("Discard: %v", err)
	}
	if record.Reason != catalog.DefaultDiscardReason {
		t.Fatalf("reason = %q, want %q", record.Reason, catalog.DefaultDiscardReason)
	}
	if record.DiscoveredID != source.ID || record.FilePath != source.FilePath {
		t.Fatalf("record = %+v", record)
	}
	if record.Format != daw.FLStudio {
		t.Fatalf("format = %q, want %q", record.Format, daw.FLStudio)
	}
	if record.DiscardedAt.IsZero() {
		t.Fatal("discarded_at must be set")
	}
}
