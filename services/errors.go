// Package services holds the application logic between the HTTP
// controllers and the store: membership invariants, request lifecycles,
// moderation cascades, and notification fan-out.
// File: services/errors.go
package services

import (
	"errors"
	"fmt"

	"campus-teams/store"
)

// Error taxonomy surfaced to the transport layer. Callers match with
// errors.Is; the wrapped message carries the entity context.
var (
	// ErrNotFound means a referenced entity is absent.
	ErrNotFound = errors.New("not found")

	// ErrConflict covers duplicate team names, students already in a
	// team, and re-resolving a settled request.
	ErrConflict = errors.New("conflict")

	// ErrValidation means malformed input, e.g. a bad roll number.
	ErrValidation = errors.New("validation failed")

	// ErrInvalidAction means a lifecycle action outside {approve, reject}.
	ErrInvalidAction = errors.New("invalid action")

	// ErrUnauthorized means the moderation secret did not match.
	ErrUnauthorized = errors.New("unauthorized")
)

// asNotFound converts a store miss into the taxonomy, tagging the entity;
// other store errors pass through unchanged.
func asNotFound(entity string, err error) error {
	if store.IsNotFound(err) {
		return fmt.Errorf("%s: %w", entity, ErrNotFound)
	}
	return err
}
