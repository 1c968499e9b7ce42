package scanner

import (
	"log/slog"
	"math"
	"os"
	"path/filepath"
	"strings"

	"cratedig/internal/catalog"
	"cratedig/internal/daw"
)

// Resolver turns a matched project file into a discovered-project candidate.
type Resolver struct {
	logger *slog.Logger
}

// NewResolver builds a resolver. A nil logger falls back to slog.Default.
func NewResolver(logger *slog.Logger) *Resolver {
	if logger == nil {
		logger = slog.Default()
	}
	return &Resolver{logger: logger.With(slog.String("component", "resolver"))}
}

// Resolve determines the logical project unit for a project file: standalone
// vs. file-within-a-project-folder, the canonical title, and the sibling
// asset files. It fails soft: any filesystem error logs a warning and
// returns nil so the walker skips the candidate and carries on.
func (r *Resolver) Resolve(path string, def daw.Definition) *catalog.DiscoveredProject {
	info, err := os.Stat(path)
	if err != nil {
		r.logger.Warn("skipping unreadable project file", slog.String("path", path), slog.Any("error", err))
		return nil
	}

	project := &catalog.DiscoveredProject{
		FilePath:      path,
		Format:        def.Type,
		DetectedTitle: daw.Stem(path),
		SizeMB:        roundMB(info.Size()),
		CreatedAt:     creationTime(path, info).UTC(),
		ModifiedAt:    info.ModTime().UTC(),
	}

	var folder string
	switch def.Convention {
	case daw.FolderAlways:
		folder = filepath.Dir(path)
		project.DetectedTitle = filepath.Base(folder)
	case daw.FolderAmbiguous:
		inFolder, err := r.parentIsProjectFolder(path)
		if err != nil {
			r.logger.Warn("skipping project with unreadable parent", slog.String("path", path), slog.Any("error", err))
			return nil
		}
		if inFolder {
			folder = filepath.Dir(path)
			project.DetectedTitle = filepath.Base(folder)
		}
	case daw.Standalone:
		// File stem is already the title.
	}

	if folder != "" {
		siblings, err := ListSiblings(folder, filepath.Base(path))
		if err != nil {
			r.logger.Warn("skipping project with unreadable folder", slog.String("path", path), slog.Any("error", err))
			return nil
		}
		project.FolderPath = folder
		project.ExtraFiles = siblings
	}

	return project
}

// parentIsProjectFolder applies the ambiguous-format heuristic: the parent
// directory is the project folder when its name equals the project file's
// stem, or when any sibling entry's name starts with that stem.
func (r *Resolver) parentIsProjectFolder(path string) (bool, error) {
	parent := filepath.Dir(path)
	stem := daw.Stem(path)

	if filepath.Base(parent) == stem {
		return true, nil
	}

	entries, err := os.ReadDir(parent)
	if err != nil {
		return false, err
	}
	base := filepath.Base(path)
	for _, entry := range entries {
		if entry.Name() == base {
			continue
		}
		if strings.HasPrefix(entry.Name(), stem) {
			return true, nil
		}
	}
	return false, nil
}

// roundMB converts a byte count to megabytes rounded to two decimals.
func roundMB(bytes int64) float64 {
	mb := float64(bytes) / (1024 * 1024)
	return math.Round(mb*100) / 100
}
