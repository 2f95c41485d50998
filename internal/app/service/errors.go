package service

import (
	"errors"
	"fmt"

	"github.com/atinyakov/shortlink/internal/storage"
)

var (
	ErrInvalidAlias = errors.New("invalid custom alias")
	ErrInvalidURL   = errors.New("invalid url")

	// ErrAliasTaken matches storage.ErrConflict as well.
	ErrAliasTaken = fmt.Errorf("custom alias already taken: %w", storage.ErrConflict)

	// ErrCodeSpaceExhausted means every generated code collided. It should
	// never happen with the default length and is logged as an alarm.
	ErrCodeSpaceExhausted = errors.New("could not allocate a unique short code")
)
