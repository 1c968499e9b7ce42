package scanner

import (
	"path/filepath"
	"strings"
)

// noiseDirMarkers flag backup/temp directories anywhere in a path's
// ancestry. Matching is case-insensitive and substring-based.
var noiseDirMarkers = []string{
	"auto-backup",
	"auto-save",
	"backup",
	"temp",
	"tmp",
	".backup",
	"_backup",
	"autosave",
	"recovery",
}

// noiseFileMarkers flag backup-like file names. " [20" matches Bitwig's
// bracketed autosave stamps such as "project [2024-05-25 151417].bwproject".
// It is a deliberate heuristic keyed to year-prefixed timestamps starting
// with "20", not a general timestamp parser.
var noiseFileMarkers = []string{
	" [20",
	".bak",
	"_bak",
	".backup",
	"_backup",
	"~",
	".tmp",
}

// Classifier decides whether a path is backup/temporary noise. The zero
// value applies the built-in marker set; extra markers extend it.
type Classifier struct {
	extra []string
}

// NewClassifier builds a classifier with optional extra markers, which are
// matched against both directory and file names.
func NewClassifier(extraMarkers ...string) *Classifier {
	extra := make([]string, 0, len(extraMarkers))
	for _, marker := range extraMarkers {
		trimmed := strings.ToLower(strings.TrimSpace(marker))
		if trimmed != "" {
			extra = append(extra, trimmed)
		}
	}
	return &Classifier{extra: extra}
}

// IsNoise reports whether the path should be excluded from discovery. Pure:
// it inspects only the path string, never the filesystem. A path is noise
// when any ancestor directory name contains a directory marker, or the file
// name itself contains a filename marker.
func (c *Classifier) IsNoise(path string) bool {
	if path == "" {
		return false
	}

	segments := strings.FieldsFunc(filepath.ToSlash(path), func(r rune) bool { return r == '/' })
	if len(segments) == 0 {
		return false
	}

	for _, segment := range segments[:len(segments)-1] {
		if containsAny(segment, noiseDirMarkers) || containsAny(segment, c.extra) {
			return true
		}
	}

	filename := segments[len(segments)-1]
	return containsAny(filename, noiseFileMarkers) || containsAny(filename, c.extra)
}

// IsNoiseDir reports whether a single directory name matches a directory
// marker. The walker uses it to prune whole subtrees before descending.
func (c *Classifier) IsNoiseDir(name string) bool {
	return containsAny(name, noiseDirMarkers) || containsAny(name, c.extra)
}

func containsAny(segment string, markers []string) bool {
	lowered := strings.ToLower(segment)
	for _, marker := range markers {
		if strings.Contains(lowered, marker) {
			return true
		}
	}
	return false
}
