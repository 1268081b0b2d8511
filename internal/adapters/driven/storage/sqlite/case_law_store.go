package sqlite

import (
	"context"
	"fmt"

	"github.com/custodia-labs/sanctions-law/internal/core/domain"
	"github.com/custodia-labs/sanctions-law/internal/core/ports/driven"
)

// caseLawStore implements driven.CaseLawStore.
type caseLawStore struct {
	store *Store
}

var _ driven.CaseLawStore = (*caseLawStore)(nil)

// Find returns decisions matching q, newest first.
func (s *caseLawStore) Find(ctx context.Context, q domain.CaseLawQuery) ([]domain.CaseLawDetail, error) {
	var where whereClause
	if q.Query != "" {
		where.addAnyLike(q.Query, "c.case_reference", "c.title", "c.summary", "c.keywords")
	}
	if q.RegimeID != "" {
		where.add("c.regime_id = ?", q.RegimeID)
	}
	if q.Court != "" {
		where.addAnyLike(q.Court, "c.court")
	}
	if q.DelistingRelated != nil {
		where.add("c.delisting_related = ?", *q.DelistingRelated)
	}

	rows, err := s.store.db.QueryContext(ctx, `
		SELECT c.id, c.source_id, c.court, c.case_reference, c.title, c.decision_date,
			COALESCE(c.regime_id, ''), c.delisting_related, c.outcome, c.summary,
			c.keywords, c.official_url, COALESCE(r.name, '')
		FROM sanctions_case_law c
		LEFT JOIN sanctions_regimes r ON r.id = c.regime_id`+where.String()+`
		ORDER BY c.decision_date DESC, c.id ASC
		LIMIT ?
	`, append(where.args, q.Limit)...)
	if err != nil {
		return nil, fmt.Errorf("querying case law: %w", err)
	}
	defer rows.Close()

	out := []domain.CaseLawDetail{}
	for rows.Next() {
		var c domain.CaseLawDetail
		var keywords string
		if err := rows.Scan(&c.ID, &c.SourceID, &c.Court, &c.CaseReference, &c.Title,
			&c.DecisionDate, &c.RegimeID, &c.DelistingRelated, &c.Outcome, &c.Summary,
			&keywords, &c.OfficialURL, &c.RegimeName); err != nil {
			return nil, fmt.Errorf("scanning case law: %w", err)
		}
		c.Keywords = decodeStringList(keywords)
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating case law: %w", err)
	}
	return out, nil
}
