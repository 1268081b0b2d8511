package driven

import (
	"context"

	"github.com/custodia-labs/sanctions-law/internal/core/domain"
)

// ExecutiveOrderStore provides read access to executive orders.
type ExecutiveOrderStore interface {
	// Get returns the order whose number or id equals key, or nil.
	// Jurisdiction holds the linked regime's jurisdiction, or "".
	Get(ctx context.Context, key string) (*domain.ExecutiveOrderDetail, error)

	// Cyber returns cyber-flagged orders, optionally narrowed by a
	// substring of number, title or summary. Jurisdiction holds the linked
	// regime's jurisdiction, or "".
	Cyber(ctx context.Context, query string, limit int) ([]domain.CyberOrder, error)
}
