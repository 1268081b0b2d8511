package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/custodia-labs/sanctions-law/internal/core/domain"
	"github.com/custodia-labs/sanctions-law/internal/core/ports/driven"
	"github.com/custodia-labs/sanctions-law/internal/core/ports/driving"
)

// Ensure SourceService implements the interface.
var _ driving.SourceService = (*SourceService)(nil)

// SourceService lists sources and reports what the database holds.
type SourceService struct {
	sources driven.SourceStore
	summary driven.SummaryStore
	version string
}

// NewSourceService creates a new source service. version is reported by About.
func NewSourceService(sources driven.SourceStore, summary driven.SummaryStore, version string) *SourceService {
	return &SourceService{sources: sources, summary: summary, version: version}
}

// List summarises every source. When q names a source, its full record is
// attached as the detail, with sample provisions if requested. An unknown
// source id leaves the detail empty.
func (s *SourceService) List(ctx context.Context, q domain.SourceQuery) (*domain.SourceListing, error) {
	summaries, err := s.sources.Summaries(ctx)
	if err != nil {
		return nil, fmt.Errorf("list sources: %w", err)
	}

	listing := &domain.SourceListing{Sources: summaries}

	id := strings.TrimSpace(q.SourceID)
	if id == "" {
		return listing, nil
	}

	src, err := s.sources.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get source %s: %w", id, err)
	}
	if src == nil {
		return listing, nil
	}

	detail := &domain.SourceDetail{Source: *src}
	if q.IncludeSamples {
		detail.SampleItems, err = s.sources.Samples(ctx, id, domain.RelatedLimit)
		if err != nil {
			return nil, fmt.Errorf("sample source %s: %w", id, err)
		}
	}
	listing.Detail = detail

	return listing, nil
}

// About returns dataset-wide counts, the source list and fixed descriptive text.
func (s *SourceService) About(ctx context.Context) (*domain.About, error) {
	counts, err := s.summary.Summary(ctx)
	if err != nil {
		return nil, fmt.Errorf("count records: %w", err)
	}

	info, err := s.summary.DatasetInfo(ctx)
	if err != nil {
		return nil, fmt.Errorf("read dataset info: %w", err)
	}

	sources, err := s.sources.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list sources: %w", err)
	}

	about := &domain.About{
		Name:         domain.AboutName,
		Version:      s.version,
		Description:  domain.AboutDescription,
		Disclaimer:   domain.AboutDisclaimer,
		Dataset:      info,
		Counts:       counts,
		TotalRecords: counts.Total(),
		Sources:      make([]domain.AboutSource, 0, len(sources)),
	}
	for _, src := range sources {
		about.Sources = append(about.Sources, domain.AboutSource{
			ID:        src.ID,
			Name:      src.Name,
			Authority: src.Authority,
			URL:       src.OfficialPortal,
		})
	}

	return about, nil
}
