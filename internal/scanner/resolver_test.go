package scanner

import (
	"os"
	"path/filepath"
	"testing"

	"cratedig/internal/daw"
)

func mustDef(t *testing.T, ext string) daw.Definition {
	t.Helper()
	def, ok := daw.ByExtension(ext)
	if !ok {
		t.Fatalf("no format registered for %q", ext)
	}
	return def
}

func writeFile(t *testing.T, path string, size int) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(path, make([]byte, size), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

func TestResolveFolderAlways(t *testing.T) {
	root := t.TempDir()
	folder := filepath.Join(root, "Song")
	projectFile := filepath.Join(folder, "Song.song")
	writeFile(t, projectFile, 128)
	writeFile(t, filepath.Join(folder, "Song.wav"), 64)
	writeFile(t, filepath.Join(folder, ".DS_Store"), 8)

	resolver := NewResolver(nil)
	project := resolver.Resolve(projectFile, mustDef(t, ".song"))
	if project == nil {
		t.Fatal("expected a resolved project")
	}
	if project.FolderPath != folder {
		t.Fatalf("folder path = %q, want %q", project.FolderPath, folder)
	}
	if project.DetectedTitle != "Song" {
		t.Fatalf("title = %q, want Song", project.DetectedTitle)
	}
	if len(project.ExtraFiles) != 1 || project.ExtraFiles[0] != "Song.wav" {
		t.Fatalf("extra files = %v, want [Song.wav]", project.ExtraFiles)
	}
}

func TestResolveStandalone(t *testing.T) {
	root := t.TempDir()
	projectFile := filepath.Join(root, "Track.flp")
	writeFile(t, projectFile, 3145728)

	resolver := NewResolver(nil)
	project := resolver.Resolve(projectFile, mustDef(t, ".flp"))
	if project == nil {
		t.Fatal("expected a resolved project")
	}
	if project.FolderPath != "" {
		t.Fatalf("standalone project must have no folder, got %q", project.FolderPath)
	}
	if project.DetectedTitle != "Track" {
		t.Fatalf("title = %q, want Track", project.DetectedTitle)
	}
	if project.SizeMB != 3.00 {
		t.Fatalf("size = %v, want 3.00", project.SizeMB)
	}
	if len(project.ExtraFiles) != 0 {
		t.Fatalf("standalone project must have no siblings, got %v", project.ExtraFiles)
	}
}

func TestResolveAmbiguousByParentName(t *testing.T) {
	root := t.TempDir()
	folder := filepath.Join(root, "MyTune")
	projectFile := filepath.Join(folder, "MyTune.logicx")
	writeFile(t, projectFile, 256)

	resolver := NewResolver(nil)
	project := resolver.Resolve(projectFile, mustDef(t, ".logicx"))
	if project == nil {
		t.Fatal("expected a resolved project")
	}
	if project.FolderPath != folder {
		t.Fatalf("parent named after stem must become the project folder, got %q", project.FolderPath)
	}
	if project.DetectedTitle != "MyTune" {
		t.Fatalf("title = %q, want MyTune", project.DetectedTitle)
	}
}

func TestResolveAmbiguousBySiblingPrefix(t *testing.T) {
	root := t.TempDir()
	folder := filepath.Join(root, "Sessions")
	projectFile := filepath.Join(folder, "Tune.logicx")
	writeFile(t, projectFile, 256)
	writeFile(t, filepath.Join(folder, "Tune.wav"), 64)

	resolver := NewResolver(nil)
	project := resolver.Resolve(projectFile, mustDef(t, ".logicx"))
	if project == nil {
		t.Fatal("expected a resolved project")
	}
	if project.FolderPath != folder {
		t.Fatalf("stem-prefixed sibling must trigger folder resolution, got %q", project.FolderPath)
	}
	if project.DetectedTitle != "Sessions" {
		t.Fatalf("title = %q, want folder name Sessions", project.DetectedTitle)
	}
	if len(project.ExtraFiles) != 1 || project.ExtraFiles[0] != "Tune.wav" {
		t.Fatalf("extra files = %v, want [Tune.wav]", project.ExtraFiles)
	}
}

func TestResolveAmbiguousStandalone(t *testing.T) {
	root := t.TempDir()
	folder := filepath.Join(root, "Misc")
	projectFile := filepath.Join(folder, "Tune.logicx")
	writeFile(t, projectFile, 256)
	writeFile(t, filepath.Join(folder, "Other.wav"), 64)

	resolver := NewResolver(nil)
	project := resolver.Resolve(projectFile, mustDef(t, ".logicx"))
	if project == nil {
		t.Fatal("expected a resolved project")
	}
	if project.FolderPath != "" {
		t.Fatalf("unrelated siblings must leave the project standalone, got %q", project.FolderPath)
	}
	if project.DetectedTitle != "Tune" {
		t.Fatalf("title = %q, want Tune", project.DetectedTitle)
	}
}

func TestResolveMissingFileFailsSoft(t *testing.T) {
	resolver := NewResolver(nil)
	if project := resolver.Resolve(filepath.Join(t.TempDir(), "gone.flp"), mustDef(t, ".flp")); project != nil {
		t.Fatalf("missing file must resolve to nil, got %+v", project)
	}
}

func TestResolveTimestamps(t *testing.T) {
	root := t.TempDir()
	projectFile := filepath.Join(root, "Track.flp")
	writeFile(t, projectFile, 16)

	resolver := NewResolver(nil)
	project := resolver.Resolve(projectFile, mustDef(t, ".flp"))
	if project == nil {
		t.Fatal("expected a resolved project")
	}
	if project.CreatedAt.IsZero() || project.ModifiedAt.IsZero() {
		t.Fatal("timestamps must be populated")
	}
	if project.CreatedAt.After(project.ModifiedAt) {
		t.Fatalf("created %v is after modified %v", project.CreatedAt, project.ModifiedAt)
	}
}
