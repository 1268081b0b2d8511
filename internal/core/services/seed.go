package services

import (
	"context"
	"fmt"

	"github.com/custodia-labs/sanctions-law/internal/core/domain"
	"github.com/custodia-labs/sanctions-law/internal/core/ports/driven"
	"github.com/custodia-labs/sanctions-law/internal/core/ports/driving"
	"github.com/custodia-labs/sanctions-law/internal/logger"
)

// Ensure SeedService implements the interface.
var _ driving.SeedService = (*SeedService)(nil)

// SeedService builds a database from a seed document.
type SeedService struct {
	reader  driven.SeedReader
	store   driven.SeedStore
	summary driven.SummaryStore
}

// NewSeedService creates a new seed service.
func NewSeedService(reader driven.SeedReader, store driven.SeedStore, summary driven.SummaryStore) *SeedService {
	return &SeedService{reader: reader, store: store, summary: summary}
}

// Load reads and validates the seed before touching the database, then
// rebuilds the database from it. A failed rebuild keeps the previous data.
func (s *SeedService) Load(ctx context.Context, path string) (domain.Summary, error) {
	logger.Section("Build")
	logger.Debug("Reading seed %s", path)

	ds, err := s.reader.Read(ctx, path)
	if err != nil {
		return domain.Summary{}, fmt.Errorf("read seed: %w", err)
	}

	logger.Debug("Seed %s generated %s: %d sources, %d provisions",
		ds.SchemaVersion, ds.GeneratedAt, len(ds.Sources), len(ds.Provisions))

	if err := s.store.Rebuild(ctx, ds); err != nil {
		return domain.Summary{}, fmt.Errorf("seed database: %w", err)
	}

	sum, err := s.summary.Summary(ctx)
	if err != nil {
		return domain.Summary{}, fmt.Errorf("summarise database: %w", err)
	}

	logger.Info("Loaded %d records", sum.Total())
	return sum, nil
}
