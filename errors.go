package portico

import "errors"

var (
	// ErrNotFound is returned when no API route or static asset resolves a path
	ErrNotFound = errors.New("not found")
	// ErrEntryMissing is returned when even the entry document is absent; this
	// is a deployment defect, not a normal runtime miss
	ErrEntryMissing = errors.New("entry document missing")
	// ErrMethodNotAllowed is returned when a path matches but the HTTP method
	// is not accepted for it
	ErrMethodNotAllowed = errors.New("method not allowed")
	// ErrInvalidInput is returned when input validation fails
	ErrInvalidInput = errors.New("invalid input")
)
