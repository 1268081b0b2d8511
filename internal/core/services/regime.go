package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/custodia-labs/sanctions-law/internal/core/domain"
	"github.com/custodia-labs/sanctions-law/internal/core/ports/driven"
	"github.com/custodia-labs/sanctions-law/internal/core/ports/driving"
	"github.com/custodia-labs/sanctions-law/internal/logger"
)

// Ensure RegimeService implements the interface.
var _ driving.RegimeService = (*RegimeService)(nil)

// RegimeService provides regime and delisting procedure lookups.
type RegimeService struct {
	regimes    driven.RegimeStore
	provisions driven.ProvisionStore
}

// NewRegimeService creates a new regime service.
func NewRegimeService(regimes driven.RegimeStore, provisions driven.ProvisionStore) *RegimeService {
	return &RegimeService{regimes: regimes, provisions: provisions}
}

// Get returns regimes matching q, each with its provision and case-law
// counts. Filtering by id defaults the limit to one.
func (s *RegimeService) Get(ctx context.Context, q domain.RegimeQuery) ([]domain.RegimeDetail, error) {
	q.ID = strings.TrimSpace(q.ID)
	q.Name = strings.TrimSpace(q.Name)
	q.Jurisdiction = strings.TrimSpace(q.Jurisdiction)

	def := domain.DefaultLimit
	if q.ID != "" {
		def = 1
	}
	q.Limit = domain.NormalizeLimit(q.Limit, def)

	logger.Debug("Regime lookup: id=%q name=%q jurisdiction=%q limit=%d",
		q.ID, q.Name, q.Jurisdiction, q.Limit)

	regimes, err := s.regimes.Find(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("find regimes: %w", err)
	}

	details := make([]domain.RegimeDetail, 0, len(regimes))
	for _, r := range regimes {
		d := domain.RegimeDetail{Regime: r}

		d.ProvisionCount, d.CaseLawCount, err = s.regimes.CountLinks(ctx, r.ID)
		if err != nil {
			return nil, fmt.Errorf("count links for %s: %w", r.ID, err)
		}

		if q.IncludeProvisions {
			d.SampleProvisions, err = s.provisions.ByRegime(ctx, r.ID, 0, domain.RelatedLimit)
			if err != nil {
				return nil, fmt.Errorf("sample provisions for %s: %w", r.ID, err)
			}
		}

		details = append(details, d)
	}

	return details, nil
}

// DelistingProcedures returns procedures filtered by id and/or regime.
func (s *RegimeService) DelistingProcedures(
	ctx context.Context, q domain.DelistingQuery,
) ([]domain.DelistingDetail, error) {
	q.ID = strings.TrimSpace(q.ID)
	q.RegimeID = strings.TrimSpace(q.RegimeID)
	q.Limit = domain.NormalizeLimit(q.Limit, domain.DefaultLimit)

	procedures, err := s.regimes.DelistingProcedures(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("find delisting procedures: %w", err)
	}
	return procedures, nil
}
