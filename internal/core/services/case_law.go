package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/custodia-labs/sanctions-law/internal/core/domain"
	"github.com/custodia-labs/sanctions-law/internal/core/ports/driven"
	"github.com/custodia-labs/sanctions-law/internal/core/ports/driving"
)

// Ensure CaseLawService implements the interface.
var _ driving.CaseLawService = (*CaseLawService)(nil)

// CaseLawService provides case-law search.
type CaseLawService struct {
	store driven.CaseLawStore
}

// NewCaseLawService creates a new case law service.
func NewCaseLawService(store driven.CaseLawStore) *CaseLawService {
	return &CaseLawService{store: store}
}

// Search returns decisions matching q, newest first.
func (s *CaseLawService) Search(ctx context.Context, q domain.CaseLawQuery) ([]domain.CaseLawDetail, error) {
	q.Query = strings.TrimSpace(q.Query)
	q.RegimeID = strings.TrimSpace(q.RegimeID)
	q.Court = strings.TrimSpace(q.Court)
	q.Limit = domain.NormalizeLimit(q.Limit, domain.DefaultLimit)

	cases, err := s.store.Find(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("search case law: %w", err)
	}
	return cases, nil
}
