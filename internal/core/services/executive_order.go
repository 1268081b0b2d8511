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

// Ensure ExecutiveOrderService implements the interface.
var _ driving.ExecutiveOrderService = (*ExecutiveOrderService)(nil)

// ExecutiveOrderService provides executive order lookups.
type ExecutiveOrderService struct {
	orders     driven.ExecutiveOrderStore
	provisions driven.ProvisionStore
}

// NewExecutiveOrderService creates a new executive order service.
func NewExecutiveOrderService(
	orders driven.ExecutiveOrderStore, provisions driven.ProvisionStore,
) *ExecutiveOrderService {
	return &ExecutiveOrderService{orders: orders, provisions: provisions}
}

// Get looks an order up by its number or id. Related provisions come from
// the order's regime, or for an order without a regime, from section and
// guidance provisions of the same source.
func (s *ExecutiveOrderService) Get(
	ctx context.Context, q domain.ExecutiveOrderLookup,
) (*domain.ExecutiveOrderDetail, error) {
	key := strings.TrimSpace(q.OrderNumber)
	if key == "" {
		return nil, fmt.Errorf("%w: order_number is required", domain.ErrInvalidInput)
	}

	order, err := s.orders.Get(ctx, key)
	if err != nil {
		return nil, fmt.Errorf("get executive order: %w", err)
	}
	if order == nil {
		logger.Debug("Executive order %q not found", key)
		return nil, nil
	}
	order.Jurisdiction = domain.InferJurisdiction(order.Jurisdiction, order.SourceID)

	if !q.IncludeRelated {
		return order, nil
	}

	if order.RegimeID != "" {
		order.RelatedProvisions, err = s.provisions.ByRegime(ctx, order.RegimeID, 0, domain.RelatedLimit)
	} else {
		order.RelatedProvisions, err = s.provisions.BySourceKinds(
			ctx, order.SourceID, domain.RelatedProvisionKinds, domain.RelatedLimit)
	}
	if err != nil {
		return nil, fmt.Errorf("get related provisions: %w", err)
	}

	return order, nil
}
