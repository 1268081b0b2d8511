package driving

import (
	"context"

	"github.com/custodia-labs/sanctions-law/internal/core/domain"
)

// SourceService answers list-sources and about.
type SourceService interface {
	// List summarises every source and optionally details one.
	List(ctx context.Context, q domain.SourceQuery) (*domain.SourceListing, error)

	// About returns dataset-wide counts and descriptive text.
	About(ctx context.Context) (*domain.About, error)
}

// FreshnessService answers check-freshness.
type FreshnessService interface {
	Check(ctx context.Context, q domain.FreshnessQuery) (*domain.FreshnessReport, error)
}

// CoverageService produces the coverage artifact.
type CoverageService interface {
	Report(ctx context.Context) (*domain.CoverageReport, error)
}
