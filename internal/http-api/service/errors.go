package service

import "errors"

// Error taxonomy shared by every resource service. Handlers translate these
// to HTTP status codes; nothing below this layer leaks to clients unwrapped.
var (
	// ErrNotFound - the addressed identity does not exist, or a listing
	// matched nothing.
	ErrNotFound = errors.New("not found")
	// ErrConflict - duplicate identity or duplicate relationship.
	ErrConflict = errors.New("conflict")
	// ErrValidation - missing required field, rating out of range, or a
	// reference that does not resolve.
	ErrValidation = errors.New("validation failed")
	// ErrForbidden - the authenticated party may not perform this change.
	ErrForbidden = errors.New("forbidden")
)
