package driving

import (
	"context"

	"github.com/custodia-labs/sanctions-law/internal/core/domain"
)

// ExecutiveOrderService answers get-executive-order.
type ExecutiveOrderService interface {
	// Get looks an order up by number or id.
	Get(ctx context.Context, q domain.ExecutiveOrderLookup) (*domain.ExecutiveOrderDetail, error)
}
