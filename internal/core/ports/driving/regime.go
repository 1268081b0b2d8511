package driving

import (
	"context"

	"github.com/custodia-labs/sanctions-law/internal/core/domain"
)

// RegimeService answers get-regime and get-delisting-procedure.
type RegimeService interface {
	// Get returns regimes matching q with their link counts.
	Get(ctx context.Context, q domain.RegimeQuery) ([]domain.RegimeDetail, error)

	// DelistingProcedures returns procedures matching q.
	DelistingProcedures(ctx context.Context, q domain.DelistingQuery) ([]domain.DelistingDetail, error)
}
