package driven

import (
	"context"

	"github.com/custodia-labs/sanctions-law/internal/core/domain"
)

// ExportControlStore provides read access to export-control sections.
type ExportControlStore interface {
	// Find returns sections matching q ordered by jurisdiction, instrument, section.
	Find(ctx context.Context, q domain.ExportControlQuery) ([]domain.ExportControl, error)
}
