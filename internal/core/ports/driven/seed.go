package driven

import (
	"context"

	"github.com/custodia-labs/sanctions-law/internal/core/domain"
)

// SeedStore builds a database from a dataset.
type SeedStore interface {
	// Rebuild replaces every table, index and trigger with a fresh schema
	// holding ds. On any failure the previous database is left as it was.
	Rebuild(ctx context.Context, ds *domain.Dataset) error
}

// SeedReader reads a seed document and validates its shape.
type SeedReader interface {
	// Read returns domain.ErrInvalidSeed (wrapped) when the document is
	// missing a collection or its version metadata.
	Read(ctx context.Context, path string) (*domain.Dataset, error)
}
