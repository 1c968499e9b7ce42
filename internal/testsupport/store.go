package testsupport

import (
	"context"
	"testing"
	"time"

	"cratedig/internal/catalog"
	"cratedig/internal/config"
	"cratedig/internal/daw"
)

// MustOpenStore opens a catalog.Store for tests and registers cleanup.
func MustOpenStore(t testing.TB, cfg *config.Config) *catalog.Store {
	t.Helper()

	store, err := catalog.Open(cfg)
	if err != nil {
		t.Fatalf("catalog.Open: %v", err)
	}
	t.Cleanup(func() {
		store.Close()
	})
	return store
}

// NewDiscovered inserts a discovered project with sensible defaults for the
// given path and title, returning the stored record.
func NewDiscovered(t testing.TB, store *catalog.Store, path, title string) *catalog.DiscoveredProject {
	t.Helper()

	project := &catalog.DiscoveredProject{
		FilePath:      path,
		Format:        daw.FLStudio,
		DetectedTitle: title,
		SizeMB:        1.5,
		CreatedAt:     time.Date(2023, 6, 1, 12, 0, 0, 0, time.UTC),
		ModifiedAt:    time.Date(2024, 1, 15, 9, 30, 0, 0, time.UTC),
	}
	if err := store.InsertDiscovered(context.Background(), project); err != nil {
		t.Fatalf("store.InsertDiscovered: %v", err)
	}
	return project
}
