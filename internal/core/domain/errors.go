// internal/core/domain/errors.go
package domain

import "errors"

// Sentinel errors forming the failure taxonomy surfaced by repositories and
// services. Handlers map these to HTTP status codes; nothing below the
// handler layer knows about HTTP.
var (
	// ErrNotFound indicates the requested id does not resolve to a row.
	ErrNotFound = errors.New("record not found")

	// ErrConstraintViolation indicates a uniqueness or foreign-key failure
	// on write (duplicate email, sale referencing a missing client/product).
	ErrConstraintViolation = errors.New("constraint violation")

	// ErrInvalidInput indicates the caller supplied values the domain
	// rejects before any store round-trip.
	ErrInvalidInput = errors.New("invalid input")

	// ErrStoreUnavailable indicates a connection or transport failure
	// talking to the database.
	ErrStoreUnavailable = errors.New("store unavailable")
)
