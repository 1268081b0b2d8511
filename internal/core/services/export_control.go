package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/custodia-labs/sanctions-law/internal/core/domain"
	"github.com/custodia-labs/sanctions-law/internal/core/ports/driven"
	"github.com/custodia-labs/sanctions-law/internal/core/ports/driving"
)

// Ensure ExportControlService implements the interface.
var _ driving.ExportControlService = (*ExportControlService)(nil)

// ExportControlService provides export-control lookups.
type ExportControlService struct {
	store driven.ExportControlStore
}

// NewExportControlService creates a new export control service.
func NewExportControlService(store driven.ExportControlStore) *ExportControlService {
	return &ExportControlService{store: store}
}

// Get returns export-control sections matching q.
func (s *ExportControlService) Get(ctx context.Context, q domain.ExportControlQuery) ([]domain.ExportControl, error) {
	q.Jurisdiction = strings.TrimSpace(q.Jurisdiction)
	q.Section = strings.TrimSpace(q.Section)
	q.Query = strings.TrimSpace(q.Query)
	q.Limit = domain.NormalizeLimit(q.Limit, domain.DefaultLimit)

	controls, err := s.store.Find(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("find export controls: %w", err)
	}
	return controls, nil
}
