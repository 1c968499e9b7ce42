package scanner

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var titleCaser = cases.Title(language.Und)

// SuggestTitle cleans a detected title for presentation: separators become
// spaces, runs of whitespace collapse, and words are title-cased. Used by
// the review flow to propose a curated title from a raw folder or file name.
func SuggestTitle(detected string) string {
	cleaned := strings.NewReplacer("_", " ", "-", " ", ".", " ").Replace(detected)
	fields := strings.Fields(cleaned)
	if len(fields) == 0 {
		return strings.TrimSpace(detected)
	}
	return titleCaser.String(strings.Join(fields, " "))
}
