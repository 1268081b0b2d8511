package driven

import (
	"context"

	"github.com/custodia-labs/sanctions-law/internal/core/domain"
)

// ProvisionStore provides read access to provisions and their full-text index.
type ProvisionStore interface {
	// Search runs a ranked full-text match. Lists in q are normalised and
	// q.Limit is already clamped. A query that escapes to nothing returns
	// an empty slice.
	Search(ctx context.Context, q domain.ProvisionSearch) ([]domain.ProvisionHit, error)

	// Get returns the provision with the natural key, or nil if absent.
	Get(ctx context.Context, sourceID, itemID string) (*domain.ProvisionDetail, error)

	// ByRegime returns provisions of a regime by recency, then item id,
	// skipping the row with excludeID (0 skips nothing).
	ByRegime(ctx context.Context, regimeID string, excludeID int64, limit int) ([]domain.ProvisionRef, error)

	// ByTopic returns provisions whose topic list contains topic as a
	// substring, skipping excludeID, by recency then item id.
	ByTopic(ctx context.Context, topic string, excludeID int64, limit int) ([]domain.ProvisionRef, error)

	// BySourceKinds returns provisions of a source whose kind is in kinds.
	BySourceKinds(ctx context.Context, sourceID string, kinds []string, limit int) ([]domain.ProvisionRef, error)

	// Cyber returns provisions tagged cyber, optionally narrowed by a
	// substring of title or text. Jurisdiction holds the linked regime's
	// jurisdiction, or "" when there is none.
	Cyber(ctx context.Context, query string, limit int) ([]domain.CyberProvision, error)
}
