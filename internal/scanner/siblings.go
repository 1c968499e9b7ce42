package scanner

import (
	"fmt"
	"os"
	"strings"
)

// ListSiblings returns the names of regular, non-hidden files in folder,
// excluding the named project file. Names come back in lexical order
// (os.ReadDir order). Kept separate from resolution so it can be exercised
// directly against a temp-dir filesystem.
func ListSiblings(folder, exclude string) ([]string, error) {
	entries, err := os.ReadDir(folder)
	if err != nil {
		return nil, fmt.Errorf("read project folder: %w", err)
	}

	var names []string
	for _, entry := range entries {
		name := entry.Name()
		if name == exclude || strings.HasPrefix(name, ".") {
			continue
		}
		if !entry.Type().IsRegular() {
			continue
		}
		names = append(names, name)
	}
	return names, nil
}
