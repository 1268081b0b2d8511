package services

import (
	"context"
	"fmt"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/custodia-labs/sanctions-law/internal/core/domain"
	"github.com/custodia-labs/sanctions-law/internal/core/ports/driven"
	"github.com/custodia-labs/sanctions-law/internal/core/ports/driving"
	"github.com/custodia-labs/sanctions-law/internal/logger"
)

// Ensure CyberService implements the interface.
var _ driving.CyberService = (*CyberService)(nil)

// CyberService aggregates cyber-related regimes, orders and provisions.
type CyberService struct {
	regimes    driven.RegimeStore
	orders     driven.ExecutiveOrderStore
	provisions driven.ProvisionStore
}

// NewCyberService creates a new cyber sanctions service.
func NewCyberService(
	regimes driven.RegimeStore, orders driven.ExecutiveOrderStore, provisions driven.ProvisionStore,
) *CyberService {
	return &CyberService{regimes: regimes, orders: orders, provisions: provisions}
}

// Check runs the three cyber queries independently, each capped at the
// limit. The jurisdiction filter is applied to the fetched orders and
// provisions only, so a filtered list may hold fewer entries than the
// limit. Regimes are always returned unfiltered.
func (s *CyberService) Check(ctx context.Context, q domain.CyberQuery) (*domain.CyberReport, error) {
	logger.Section("Cyber Sanctions Check")

	query := strings.TrimSpace(q.Query)
	jurisdiction := strings.TrimSpace(q.Jurisdiction)
	limit := domain.NormalizeLimit(q.Limit, domain.DefaultLimit)

	logger.Debug("Query: %q jurisdiction=%q limit=%d", query, jurisdiction, limit)

	var (
		regimes    []domain.Regime
		orders     []domain.CyberOrder
		provisions []domain.CyberProvision
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		if regimes, err = s.regimes.Cyber(gctx, query, limit); err != nil {
			return fmt.Errorf("cyber regimes: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		if orders, err = s.orders.Cyber(gctx, query, limit); err != nil {
			return fmt.Errorf("cyber executive orders: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		if provisions, err = s.provisions.Cyber(gctx, query, limit); err != nil {
			return fmt.Errorf("cyber provisions: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	report := &domain.CyberReport{
		Regimes:         append([]domain.Regime{}, regimes...),
		ExecutiveOrders: []domain.CyberOrder{},
		Provisions:      []domain.CyberProvision{},
	}

	for _, o := range orders {
		o.Jurisdiction = domain.InferJurisdiction(o.Jurisdiction, o.SourceID)
		if domain.MatchesJurisdiction(o.Jurisdiction, jurisdiction) {
			report.ExecutiveOrders = append(report.ExecutiveOrders, o)
		}
	}
	for _, p := range provisions {
		p.Jurisdiction = domain.InferJurisdiction(p.Jurisdiction, p.SourceID)
		if domain.MatchesJurisdiction(p.Jurisdiction, jurisdiction) {
			report.Provisions = append(report.Provisions, p)
		}
	}

	logger.Debug("Cyber report: %d regimes, %d orders, %d provisions",
		len(report.Regimes), len(report.ExecutiveOrders), len(report.Provisions))
	return report, nil
}
