package driving

import (
	"context"

	"github.com/custodia-labs/sanctions-law/internal/core/domain"
)

// ProvisionService answers search-provisions and get-provision.
type ProvisionService interface {
	// Search ranks provisions against free text. A blank query returns no hits.
	Search(ctx context.Context, q domain.ProvisionSearch) ([]domain.ProvisionHit, error)

	// Get fetches one provision by source id and item id.
	Get(ctx context.Context, q domain.ProvisionLookup) (*domain.ProvisionDetail, error)
}
