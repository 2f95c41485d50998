// Package storage holds the in-process link and click stores: a memory
// store and a JSON-lines journal that persists it to a file.
package storage

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned for unknown codes, ids and deleted links.
	ErrNotFound = errors.New("not found")

	// ErrConflict is returned when a code is already taken.
	ErrConflict = errors.New("data conflict")

	// ErrForbidden is returned when a caller mutates a link it does not own.
	ErrForbidden = errors.New("forbidden")
)

// ConflictError names the code that collided on insert.
type ConflictError struct {
	Code string
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("code %q already exists", e.Code)
}

// Unwrap lets errors.Is(err, ErrConflict) match.
func (e *ConflictError) Unwrap() error {
	return ErrConflict
}
