package driving

import (
	"context"

	"github.com/custodia-labs/sanctions-law/internal/core/domain"
)

// SeedService builds the database from a seed document.
type SeedService interface {
	// Load validates the document at path, recreates the schema and seeds
	// it. It returns the row counts of the built database.
	Load(ctx context.Context, path string) (domain.Summary, error)
}
