package services

import (
	"database/sql"
	"errors"
	"fmt"
)

var (
	ErrNotFound = errors.New("not found")
	ErrInvalid  = errors.New("invalid input")
)

func notFound(resource string) error { return fmt.Errorf("%s %w", resource, ErrNotFound) }

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalid, fmt.Sprintf(format, args...))
}

// lookup turns a missing row into a not-found error for resource.
func lookup(resource string, err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return notFound(resource)
	}
	return err
}
