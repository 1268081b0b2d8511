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

// Ensure ProvisionService implements the interface.
var _ driving.ProvisionService = (*ProvisionService)(nil)

// ProvisionService provides provision search and lookup.
type ProvisionService struct {
	store driven.ProvisionStore
}

// NewProvisionService creates a new provision service.
func NewProvisionService(store driven.ProvisionStore) *ProvisionService {
	return &ProvisionService{store: store}
}

// Search ranks provisions against free text with optional filters.
func (s *ProvisionService) Search(ctx context.Context, q domain.ProvisionSearch) ([]domain.ProvisionHit, error) {
	logger.Section("Provision Search")
	logger.Debug("Query: %q", q.Query)

	q.Query = strings.TrimSpace(q.Query)
	if q.Query == "" {
		logger.Debug("Empty query, returning no results")
		return []domain.ProvisionHit{}, nil
	}

	q.SourceIDs = domain.NormalizeStringList(q.SourceIDs)
	q.Jurisdictions = domain.NormalizeStringList(q.Jurisdictions)
	q.Topics = domain.NormalizeStringList(q.Topics)
	q.RegimeID = strings.TrimSpace(q.RegimeID)
	q.Limit = domain.NormalizeLimit(q.Limit, domain.DefaultLimit)

	logger.Debug("Filters: sources=%v jurisdictions=%v regime=%q topics=%v limit=%d",
		q.SourceIDs, q.Jurisdictions, q.RegimeID, q.Topics, q.Limit)

	hits, err := s.store.Search(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("search provisions: %w", err)
	}

	logger.Debug("Found %d provisions", len(hits))
	return hits, nil
}

// Get fetches one provision by its natural key. When IncludeRelated is
// set, up to five provisions of the same regime are attached, or for a
// provision without a regime, provisions sharing its first topic.
func (s *ProvisionService) Get(ctx context.Context, q domain.ProvisionLookup) (*domain.ProvisionDetail, error) {
	sourceID := strings.TrimSpace(q.SourceID)
	itemID := strings.TrimSpace(q.ItemID)
	if sourceID == "" || itemID == "" {
		return nil, fmt.Errorf("%w: source_id and item_id are required", domain.ErrInvalidInput)
	}

	detail, err := s.store.Get(ctx, sourceID, itemID)
	if err != nil {
		return nil, fmt.Errorf("get provision: %w", err)
	}
	if detail == nil {
		logger.Debug("Provision %s/%s not found", sourceID, itemID)
		return nil, nil
	}

	if !q.IncludeRelated {
		return detail, nil
	}

	var related []domain.ProvisionRef
	switch {
	case detail.RegimeID != "":
		related, err = s.store.ByRegime(ctx, detail.RegimeID, detail.ID, domain.RelatedLimit)
	case len(detail.Topics) > 0:
		related, err = s.store.ByTopic(ctx, detail.Topics[0], detail.ID, domain.RelatedLimit)
	}
	if err != nil {
		return nil, fmt.Errorf("get related provisions: %w", err)
	}
	detail.Related = related

	return detail, nil
}
