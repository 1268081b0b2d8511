package driven

import (
	"context"

	"github.com/custodia-labs/sanctions-law/internal/core/domain"
)

// RegimeStore provides read access to regimes and delisting procedures.
type RegimeStore interface {
	// Find returns regimes matching q, ordered by jurisdiction then name.
	Find(ctx context.Context, q domain.RegimeQuery) ([]domain.Regime, error)

	// CountLinks returns how many provisions and case-law rows reference the regime.
	CountLinks(ctx context.Context, regimeID string) (provisions, caseLaw int, err error)

	// Cyber returns cyber-flagged regimes, optionally narrowed by a
	// substring of name or summary.
	Cyber(ctx context.Context, query string, limit int) ([]domain.Regime, error)

	// DelistingProcedures returns procedures joined with their regime,
	// ordered by jurisdiction then regime name.
	DelistingProcedures(ctx context.Context, q domain.DelistingQuery) ([]domain.DelistingDetail, error)
}
