package driving

import (
	"context"

	"github.com/custodia-labs/sanctions-law/internal/core/domain"
)

// CyberService answers check-cyber-sanctions.
type CyberService interface {
	// Check aggregates cyber regimes, orders and provisions.
	Check(ctx context.Context, q domain.CyberQuery) (*domain.CyberReport, error)
}
