package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/custodia-labs/sanctions-law/internal/core/domain"
	"github.com/custodia-labs/sanctions-law/internal/core/ports/driven"
)

// executiveOrderStore implements driven.ExecutiveOrderStore.
type executiveOrderStore struct {
	store *Store
}

var _ driven.ExecutiveOrderStore = (*executiveOrderStore)(nil)

// Get looks up an order by number or id. A number match is preferred when
// both would match different rows.
func (s *executiveOrderStore) Get(ctx context.Context, key string) (*domain.ExecutiveOrderDetail, error) {
	row := s.store.db.QueryRowContext(ctx, `
		SELECT e.id, e.source_id, COALESCE(e.regime_id, ''), e.order_number, e.title,
			e.issued_date, e.status, e.summary, e.cyber_related, e.legal_basis, e.official_url,
			s.name, COALESCE(r.name, ''), COALESCE(r.jurisdiction, '')
		FROM executive_orders e
		JOIN sources s ON s.id = e.source_id
		LEFT JOIN sanctions_regimes r ON r.id = e.regime_id
		WHERE e.order_number = ? OR e.id = ?
		ORDER BY (e.order_number = ?) DESC, e.id ASC
		LIMIT 1
	`, key, key, key)

	var d domain.ExecutiveOrderDetail
	var legalBasis string
	if err := row.Scan(&d.ID, &d.SourceID, &d.RegimeID, &d.OrderNumber, &d.Title,
		&d.IssuedDate, &d.Status, &d.Summary, &d.CyberRelated, &legalBasis, &d.OfficialURL,
		&d.SourceName, &d.RegimeName, &d.Jurisdiction); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("scanning executive order: %w", err)
	}
	d.LegalBasis = decodeStringList(legalBasis)
	return &d, nil
}

// Cyber returns cyber-flagged orders, most recent first.
func (s *executiveOrderStore) Cyber(ctx context.Context, query string, limit int) ([]domain.CyberOrder, error) {
	var where whereClause
	where.add("e.cyber_related = 1")
	if query != "" {
		where.addAnyLike(query, "e.order_number", "e.title", "e.summary")
	}

	rows, err := s.store.db.QueryContext(ctx, `
		SELECT e.id, e.order_number, e.title, e.issued_date, e.status, e.summary,
			e.source_id, COALESCE(e.regime_id, ''), COALESCE(r.name, ''),
			COALESCE(r.jurisdiction, ''), e.official_url
		FROM executive_orders e
		LEFT JOIN sanctions_regimes r ON r.id = e.regime_id`+where.String()+`
		ORDER BY e.issued_date DESC, e.order_number ASC, e.id ASC
		LIMIT ?
	`, append(where.args, limit)...)
	if err != nil {
		return nil, fmt.Errorf("querying cyber executive orders: %w", err)
	}
	defer rows.Close()

	out := []domain.CyberOrder{}
	for rows.Next() {
		var o domain.CyberOrder
		if err := rows.Scan(&o.ID, &o.OrderNumber, &o.Title, &o.IssuedDate, &o.Status,
			&o.Summary, &o.SourceID, &o.RegimeID, &o.RegimeName,
			&o.Jurisdiction, &o.OfficialURL); err != nil {
			return nil, fmt.Errorf("scanning cyber executive order: %w", err)
		}
		out = append(out, o)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating cyber executive orders: %w", err)
	}
	return out, nil
}
