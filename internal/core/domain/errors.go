package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested entity does not exist.
	// Query operations report missing single entities as nil results;
	// this error is reserved for adapters that must fail on absence.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrInvalidSeed indicates a seed document failed validation.
	// Nothing is written to storage when this is returned.
	ErrInvalidSeed = errors.New("invalid seed dataset")

	// ErrSchemaMissing indicates the database file has not been built.
	ErrSchemaMissing = errors.New("database schema missing")
)
