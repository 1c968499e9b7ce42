package catalog

import (
	"errors"
	"strings"
)

var (
	// ErrNotFound indicates no record matches the given id or title.
	ErrNotFound = errors.New("not found")
	// ErrAlreadyExists indicates a discovered insert hit an existing path.
	// Informational: re-scanning a directory is expected to produce these.
	ErrAlreadyExists = errors.New("already exists")
	// ErrStateConflict indicates a promote or discard was attempted on a
	// discovered record that has already been processed.
	ErrStateConflict = errors.New("state conflict")
	// ErrValidation indicates rejected promotion metadata.
	ErrValidation = errors.New("validation error")
)

func isUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}
