package scanner

import (
	"context"
	"path/filepath"
	"sort"
	"testing"
)

func TestScanFindsSupportedFormats(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "Track.flp"), 16)
	writeFile(t, filepath.Join(root, "Song", "Song.song"), 16)
	writeFile(t, filepath.Join(root, "Song", "Song.wav"), 16)
	writeFile(t, filepath.Join(root, "readme.txt"), 16)

	walker := NewWalker(nil, nil)
	projects, err := walker.Scan(context.Background(), root)
	if err != nil {
		t.Fatalf("Scan: %v", err)
	}
	if len(projects) != 2 {
		t.Fatalf("found %d projects, want 2", len(projects))
	}

	titles := make([]string, 0, len(projects))
	for _, p := range projects {
		titles = append(titles, p.DetectedTitle)
	}
	sort.Strings(titles)
	if titles[0] != "Song" || titles[1] != "Track" {
		t.Fatalf("titles = %v, want [Song Track]", titles)
	}
}

func TestScanPrunesNoiseDirectories(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "Keep.flp"), 16)
	writeFile(t, filepath.Join(root, "Backups", "Old.flp"), 16)
	writeFile(t, filepath.Join(root, "Auto-Save", "Song", "Song.song"), 16)

	walker := NewWalker(nil, nil)
	projects, err := walker.Scan(context.Background(), root)
	if err != nil {
		t.Fatalf("Scan: %v", err)
	}
	if len(projects) != 1 || projects[0].DetectedTitle != "Keep" {
		t.Fatalf("projects = %v, want only Keep", projects)
	}
}

func TestScanSkipsNoiseFiles(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "project [2024-05-25 151417].bwproject"), 16)
	writeFile(t, filepath.Join(root, "Track.flp.bak"), 16)

	walker := NewWalker(nil, nil)
	projects, err := walker.Scan(context.Background(), root)
	if err != nil {
		t.Fatalf("Scan: %v", err)
	}
	if len(projects) != 0 {
		t.Fatalf("found %d projects, want 0", len(projects))
	}
}

func TestScanTreatsBundleDirectoryAsProject(t *testing.T) {
	root := t.TempDir()
	bundle := filepath.Join(root, "MyTune", "MyTune.logicx")
	writeFile(t, filepath.Join(bundle, "projectdata"), 16)
	writeFile(t, filepath.Join(bundle, "Alternatives", "000", "data.flp"), 16)

	walker := NewWalker(nil, nil)
	projects, err := walker.Scan(context.Background(), root)
	if err != nil {
		t.Fatalf("Scan: %v", err)
	}
	if len(projects) != 1 {
		t.Fatalf("found %d projects, want 1 (bundle contents must not be descended)", len(projects))
	}
	if projects[0].FilePath != bundle {
		t.Fatalf("path = %q, want %q", projects[0].FilePath, bundle)
	}
	if projects[0].DetectedTitle != "MyTune" {
		t.Fatalf("title = %q, want MyTune", projects[0].DetectedTitle)
	}
}

func TestScanMissingRoot(t *testing.T) {
	walker := NewWalker(nil, nil)
	projects, err := walker.Scan(context.Background(), filepath.Join(t.TempDir(), "gone"))
	if err != nil {
		t.Fatalf("Scan: %v", err)
	}
	if len(projects) != 0 {
		t.Fatalf("found %d projects for a missing root, want 0", len(projects))
	}
}

func TestScanExtraMarkers(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "Keep.flp"), 16)
	writeFile(t, filepath.Join(root, "Scratch", "Idea.flp"), 16)

	walker := NewWalker(NewClassifier("scratch"), nil)
	projects, err := walker.Scan(context.Background(), root)
	if err != nil {
		t.Fatalf("Scan: %v", err)
	}
	if len(projects) != 1 || projects[0].DetectedTitle != "Keep" {
		t.Fatalf("projects = %v, want only Keep", projects)
	}
}

func TestScanIgnoresAncestorsAboveRoot(t *testing.T) {
	base := t.TempDir()
	root := filepath.Join(base, "temp stuff", "library")
	writeFile(t, filepath.Join(root, "Track.flp"), 16)

	walker := NewWalker(nil, nil)
	projects, err := walker.Scan(context.Background(), root)
	if err != nil {
		t.Fatalf("Scan: %v", err)
	}
	if len(projects) != 1 {
		t.Fatalf("found %d projects, want 1 (markers above the root must not apply)", len(projects))
	}
}

func TestScanCancelledContext(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "Track.flp"), 16)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	walker := NewWalker(nil, nil)
	if _, err := walker.Scan(ctx, root); err == nil {
		t.Fatal("expected error from cancelled context")
	}
}
