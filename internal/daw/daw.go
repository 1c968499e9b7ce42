// Package daw describes the supported digital audio workstation project
// formats and the on-disk conventions each one follows.
//
// The extension table is the single source of truth for what the discovery
// walker matches. Adding support for a new workstation means adding a
// Definition here; the scanner and catalog pick it up without changes.
package daw

import (
	"path/filepath"
	"strings"
)

// Type identifies a workstation format by its display name.
type Type string

const (
	FLStudio  Type = "FL Studio"
	LogicPro  Type = "Logic Pro"
	StudioOne Type = "Studio One"
	Bitwig    Type = "Bitwig"
)

// Convention describes how a format lays its projects out on disk.
type Convention int

const (
	// Standalone project files live anywhere; the file stem is the title.
	Standalone Convention = iota
	// FolderAlways project files always sit inside a dedicated project
	// folder whose name is the title.
	FolderAlways
	// FolderAmbiguous project files may or may not be inside a dedicated
	// folder; the resolver inspects the parent directory to decide.
	FolderAmbiguous
)

// Definition binds a format to its file extensions and folder convention.
// A format may claim more than one extension.
type Definition struct {
	Type       Type
	Extensions []string
	Convention Convention
}

var table = []Definition{
	{Type: FLStudio, Extensions: []string{".flp"}, Convention: Standalone},
	{Type: LogicPro, Extensions: []string{".logicx"}, Convention: FolderAmbiguous},
	{Type: StudioOne, Extensions: []string{".song"}, Convention: FolderAlways},
	{Type: Bitwig, Extensions: []string{".bwproject"}, Convention: FolderAlways},
}

// Definitions returns the ordered list of supported formats.
func Definitions() []Definition {
	cp := make([]Definition, len(table))
	copy(cp, table)
	return cp
}

// ByExtension looks up the format claiming the given extension. The
// comparison is case-insensitive and tolerates a missing leading dot.
func ByExtension(ext string) (Definition, bool) {
	normalized := strings.ToLower(strings.TrimSpace(ext))
	if normalized == "" {
		return Definition{}, false
	}
	if !strings.HasPrefix(normalized, ".") {
		normalized = "." + normalized
	}
	for _, def := range table {
		for _, candidate := range def.Extensions {
			if candidate == normalized {
				return def, true
			}
		}
	}
	return Definition{}, false
}

// ByPath looks up the format for a file path based on its extension.
func ByPath(path string) (Definition, bool) {
	return ByExtension(filepath.Ext(path))
}

// Stem returns the base name of path with its format extension removed.
func Stem(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
