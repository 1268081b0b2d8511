package driving

import (
	"context"

	"github.com/custodia-labs/sanctions-law/internal/core/domain"
)

// ExportControlService answers get-export-control.
type ExportControlService interface {
	Get(ctx context.Context, q domain.ExportControlQuery) ([]domain.ExportControl, error)
}
