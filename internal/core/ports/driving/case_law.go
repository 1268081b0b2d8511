package driving

import (
	"context"

	"github.com/custodia-labs/sanctions-law/internal/core/domain"
)

// CaseLawService answers search-case-law.
type CaseLawService interface {
	Search(ctx context.Context, q domain.CaseLawQuery) ([]domain.CaseLawDetail, error)
}
