package sqlite

import (
	"context"
	"fmt"

	"github.com/custodia-labs/sanctions-law/internal/core/domain"
	"github.com/custodia-labs/sanctions-law/internal/core/ports/driven"
)

// exportControlStore implements driven.ExportControlStore.
type exportControlStore struct {
	store *Store
}

var _ driven.ExportControlStore = (*exportControlStore)(nil)

// Find returns export-control sections matching q.
func (s *exportControlStore) Find(ctx context.Context, q domain.ExportControlQuery) ([]domain.ExportControl, error) {
	var where whereClause
	if q.Jurisdiction != "" {
		where.add("x.jurisdiction = ? COLLATE NOCASE", q.Jurisdiction)
	}
	if q.Section != "" {
		where.addAnyLike(q.Section, "x.section")
	}
	if q.Query != "" {
		where.addAnyLike(q.Query, "x.title", "x.summary", "x.focus")
	}

	rows, err := s.store.db.QueryContext(ctx, `
		SELECT x.id, x.source_id, x.jurisdiction, x.instrument, x.section, x.title,
			x.summary, x.focus, x.official_url
		FROM export_controls x`+where.String()+`
		ORDER BY x.jurisdiction ASC, x.instrument ASC, x.section ASC, x.id ASC
		LIMIT ?
	`, append(where.args, q.Limit)...)
	if err != nil {
		return nil, fmt.Errorf("querying export controls: %w", err)
	}
	defer rows.Close()

	out := []domain.ExportControl{}
	for rows.Next() {
		var x domain.ExportControl
		if err := rows.Scan(&x.ID, &x.SourceID, &x.Jurisdiction, &x.Instrument, &x.Section,
			&x.Title, &x.Summary, &x.Focus, &x.OfficialURL); err != nil {
			return nil, fmt.Errorf("scanning export control: %w", err)
		}
		out = append(out, x)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating export controls: %w", err)
	}
	return out, nil
}
