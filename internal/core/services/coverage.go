package services

import (
	"context"
	"fmt"

	"github.com/custodia-labs/sanctions-law/internal/core/domain"
	"github.com/custodia-labs/sanctions-law/internal/core/ports/driven"
	"github.com/custodia-labs/sanctions-law/internal/core/ports/driving"
)

// Ensure CoverageService implements the interface.
var _ driving.CoverageService = (*CoverageService)(nil)

// CoverageService compares stored record counts with source estimates.
type CoverageService struct {
	sources driven.SourceStore
}

// NewCoverageService creates a new coverage service.
func NewCoverageService(sources driven.SourceStore) *CoverageService {
	return &CoverageService{sources: sources}
}

// Report builds the coverage artifact, one entry per source in priority order.
func (s *CoverageService) Report(ctx context.Context) (*domain.CoverageReport, error) {
	summaries, err := s.sources.Summaries(ctx)
	if err != nil {
		return nil, fmt.Errorf("list sources: %w", err)
	}

	report := &domain.CoverageReport{Entries: make([]domain.CoverageEntry, 0, len(summaries))}
	for _, sum := range summaries {
		expected := domain.ParseRecordsEstimate(sum.RecordsEstimate)
		actual := sum.RecordCount()

		report.Entries = append(report.Entries, domain.CoverageEntry{
			SourceID:      sum.ID,
			SourceName:    sum.Name,
			PriorityTier:  sum.PriorityTier,
			Estimate:      sum.RecordsEstimate,
			Expected:      expected,
			Actual:        actual,
			CompletionPct: domain.CompletionPercent(expected, actual),
		})
		report.Expected += expected
		report.Actual += actual
	}
	report.CompletionPct = domain.CompletionPercent(report.Expected, report.Actual)

	return report, nil
}
