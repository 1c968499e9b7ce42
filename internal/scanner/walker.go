package scanner

import (
	"context"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"cratedig/internal/catalog"
	"cratedig/internal/daw"
)

// Walker traverses a directory tree and emits discovered-project candidates
// for every supported project file that is not classified as noise.
type Walker struct {
	resolver   *Resolver
	classifier *Classifier
	logger     *slog.Logger
}

// NewWalker builds a walker with the given classifier. A nil classifier gets
// the built-in marker set; a nil logger falls back to slog.Default.
func NewWalker(classifier *Classifier, logger *slog.Logger) *Walker {
	if classifier == nil {
		classifier = NewClassifier()
	}
	if logger == nil {
		logger = slog.Default()
	}
	logger = logger.With(slog.String("component", "scanner"))
	return &Walker{
		resolver:   NewResolver(logger),
		classifier: classifier,
		logger:     logger,
	}
}

// Scan walks root and returns every resolvable project candidate, deduplicated
// by file path. A missing or unreadable root logs a warning and returns an
// empty slice; per-entry errors are logged and skipped so one bad subtree
// never aborts the scan.
func (w *Walker) Scan(ctx context.Context, root string) ([]*catalog.DiscoveredProject, error) {
	scanID := uuid.NewString()
	logger := w.logger.With(slog.String("scan_id", scanID))

	if _, err := os.Stat(root); err != nil {
		logger.Warn("scan root unavailable", slog.String("root", root), slog.Any("error", err))
		return nil, nil
	}

	logger.Info("scan started", slog.String("root", root))

	var projects []*catalog.DiscoveredProject
	seen := make(map[string]struct{})

	err := filepath.WalkDir(root, func(path string, entry fs.DirEntry, walkErr error) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		if walkErr != nil {
			logger.Warn("skipping unreadable entry", slog.String("path", path), slog.Any("error", walkErr))
			if entry != nil && entry.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}

		// Noise classification runs on the path relative to the scan root:
		// ancestors above the root (say, a scratch dir named tmp) must not
		// disqualify everything beneath it.
		rel, relErr := filepath.Rel(root, path)
		if relErr != nil {
			rel = path
		}

		if entry.IsDir() {
			// Bundle formats such as Logic's .logicx are directories that
			// behave like a single project file.
			if def, ok := daw.ByPath(path); ok {
				if !w.classifier.IsNoise(rel) {
					w.collect(path, def, seen, &projects)
				}
				return filepath.SkipDir
			}
			if path != root && w.classifier.IsNoiseDir(entry.Name()) {
				return filepath.SkipDir
			}
			return nil
		}

		def, ok := daw.ByPath(path)
		if !ok {
			return nil
		}
		if w.classifier.IsNoise(rel) {
			return nil
		}
		w.collect(path, def, seen, &projects)
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.Info("scan finished", slog.Int("candidates", len(projects)))
	return projects, nil
}

func (w *Walker) collect(path string, def daw.Definition, seen map[string]struct{}, projects *[]*catalog.DiscoveredProject) {
	if _, dup := seen[path]; dup {
		return
	}
	seen[path] = struct{}{}
	if project := w.resolver.Resolve(path, def); project != nil {
		*projects = append(*projects, project)
	}
}
