package driven

import (
	"context"

	"github.com/custodia-labs/sanctions-law/internal/core/domain"
)

// SourceStore provides read access to sources and their aggregates.
type SourceStore interface {
	// Summaries returns every source with counts, ordered by priority tier then id.
	Summaries(ctx context.Context) ([]domain.SourceSummary, error)

	// Get returns the full source record, or nil if absent.
	Get(ctx context.Context, id string) (*domain.Source, error)

	// List returns every source ordered by id.
	List(ctx context.Context) ([]domain.Source, error)

	// Samples returns recent provisions of the source.
	Samples(ctx context.Context, id string, limit int) ([]domain.ProvisionRef, error)
}

// FreshnessStore provides read access to stored freshness rows.
type FreshnessStore interface {
	// List returns every freshness row joined with its source name, ordered by source id.
	List(ctx context.Context) ([]domain.FreshnessRecord, error)
}

// SummaryStore reports what a database holds.
type SummaryStore interface {
	// Summary counts rows per entity table.
	Summary(ctx context.Context) (domain.Summary, error)

	// DatasetInfo returns the metadata of the seed the database was built from.
	DatasetInfo(ctx context.Context) (domain.DatasetInfo, error)
}
