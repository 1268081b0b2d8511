package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/custodia-labs/sanctions-law/internal/core/domain"
	"github.com/custodia-labs/sanctions-law/internal/core/ports/driven"
)

// regimeColumns selects the columns scanned by scanRegimes.
const regimeColumns = `r.id, r.name, r.jurisdiction, r.authority, r.summary, r.legal_basis,
	r.cyber_related, COALESCE(r.delisting_procedure_id, ''), r.official_url`

// regimeStore implements driven.RegimeStore.
type regimeStore struct {
	store *Store
}

var _ driven.RegimeStore = (*regimeStore)(nil)

// Find returns regimes matching q.
func (s *regimeStore) Find(ctx context.Context, q domain.RegimeQuery) ([]domain.Regime, error) {
	var where whereClause
	if q.ID != "" {
		where.add("r.id = ?", q.ID)
	}
	if q.Name != "" {
		where.addAnyLike(q.Name, "r.name")
	}
	if q.Jurisdiction != "" {
		where.add("r.jurisdiction = ? COLLATE NOCASE", q.Jurisdiction)
	}

	rows, err := s.store.db.QueryContext(ctx, `
		SELECT `+regimeColumns+`
		FROM sanctions_regimes r`+where.String()+`
		ORDER BY r.jurisdiction ASC, r.name ASC, r.id ASC
		LIMIT ?
	`, append(where.args, q.Limit)...)
	if err != nil {
		return nil, fmt.Errorf("querying regimes: %w", err)
	}
	return scanRegimes(rows)
}

// CountLinks counts provisions and case law referencing the regime.
func (s *regimeStore) CountLinks(ctx context.Context, regimeID string) (provisions, caseLaw int, err error) {
	err = s.store.db.QueryRowContext(ctx, `
		SELECT
			(SELECT COUNT(*) FROM provisions WHERE regime_id = ?),
			(SELECT COUNT(*) FROM sanctions_case_law WHERE regime_id = ?)
	`, regimeID, regimeID).Scan(&provisions, &caseLaw)
	if err != nil {
		return 0, 0, fmt.Errorf("counting regime links: %w", err)
	}
	return provisions, caseLaw, nil
}

// Cyber returns cyber-flagged regimes.
func (s *regimeStore) Cyber(ctx context.Context, query string, limit int) ([]domain.Regime, error) {
	var where whereClause
	where.add("r.cyber_related = 1")
	if query != "" {
		where.addAnyLike(query, "r.name", "r.summary")
	}

	rows, err := s.store.db.QueryContext(ctx, `
		SELECT `+regimeColumns+`
		FROM sanctions_regimes r`+where.String()+`
		ORDER BY r.jurisdiction ASC, r.name ASC, r.id ASC
		LIMIT ?
	`, append(where.args, limit)...)
	if err != nil {
		return nil, fmt.Errorf("querying cyber regimes: %w", err)
	}
	return scanRegimes(rows)
}

// DelistingProcedures returns procedures joined with their regime.
func (s *regimeStore) DelistingProcedures(
	ctx context.Context, q domain.DelistingQuery,
) ([]domain.DelistingDetail, error) {
	var where whereClause
	if q.ID != "" {
		where.add("d.id = ?", q.ID)
	}
	if q.RegimeID != "" {
		where.add("d.regime_id = ?", q.RegimeID)
	}

	rows, err := s.store.db.QueryContext(ctx, `
		SELECT d.id, d.regime_id, d.authority, d.procedure_summary, d.evidentiary_standard,
			d.review_body, d.review_timeline, d.application_url, d.legal_basis,
			r.name, r.jurisdiction
		FROM delisting_procedures d
		JOIN sanctions_regimes r ON r.id = d.regime_id`+where.String()+`
		ORDER BY r.jurisdiction ASC, r.name ASC, d.id ASC
		LIMIT ?
	`, append(where.args, q.Limit)...)
	if err != nil {
		return nil, fmt.Errorf("querying delisting procedures: %w", err)
	}
	defer rows.Close()

	out := []domain.DelistingDetail{}
	for rows.Next() {
		var d domain.DelistingDetail
		var legalBasis string
		if err := rows.Scan(&d.ID, &d.RegimeID, &d.Authority, &d.ProcedureSummary,
			&d.EvidentiaryStandard, &d.ReviewBody, &d.ReviewTimeline, &d.ApplicationURL,
			&legalBasis, &d.RegimeName, &d.Jurisdiction); err != nil {
			return nil, fmt.Errorf("scanning delisting procedure: %w", err)
		}
		d.LegalBasis = decodeStringList(legalBasis)
		out = append(out, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating delisting procedures: %w", err)
	}
	return out, nil
}

// scanRegimes reads rows selected with regimeColumns.
func scanRegimes(rows *sql.Rows) ([]domain.Regime, error) {
	defer rows.Close()

	regimes := []domain.Regime{}
	for rows.Next() {
		var r domain.Regime
		var legalBasis string
		if err := rows.Scan(&r.ID, &r.Name, &r.Jurisdiction, &r.Authority, &r.Summary,
			&legalBasis, &r.CyberRelated, &r.DelistingProcedureID, &r.OfficialURL); err != nil {
			return nil, fmt.Errorf("scanning regime: %w", err)
		}
		r.LegalBasis = decodeStringList(legalBasis)
		regimes = append(regimes, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating regimes: %w", err)
	}
	return regimes, nil
}
