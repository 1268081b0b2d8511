package driven

import (
	"context"

	"github.com/custodia-labs/sanctions-law/internal/core/domain"
)

// CaseLawStore provides read access to case law.
type CaseLawStore interface {
	// Find returns decisions matching q, newest first.
	Find(ctx context.Context, q domain.CaseLawQuery) ([]domain.CaseLawDetail, error)
}
