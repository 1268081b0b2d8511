package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/custodia-labs/sanctions-law/internal/core/domain"
	"github.com/custodia-labs/sanctions-law/internal/core/ports/driven"
)

// sourceStore implements driven.SourceStore.
type sourceStore struct {
	store *Store
}

var _ driven.SourceStore = (*sourceStore)(nil)

// priorityOrder ranks priority tiers for ORDER BY; unknown tiers sort last.
var priorityOrder = priorityCase("s.priority_tier")

// priorityCase renders PriorityTier.Rank as a SQL CASE over column.
func priorityCase(column string) string {
	var b strings.Builder
	b.WriteString("CASE " + column)
	for _, tier := range domain.PriorityTiers {
		fmt.Fprintf(&b, " WHEN '%s' THEN %d", tier, tier.Rank())
	}
	fmt.Fprintf(&b, " ELSE %d END", domain.PriorityTier("").Rank())
	return b.String()
}

// sourceColumns selects the columns scanned by scanSource.
const sourceColumns = `s.id, s.name, s.authority, s.official_portal, s.retrieval_method,
	s.update_frequency, s.records_estimate, s.priority_tier, s.coverage_note,
	s.last_verified, s.metadata`

// Summaries returns every source with per-table counts, most important first.
func (s *sourceStore) Summaries(ctx context.Context) ([]domain.SourceSummary, error) {
	rows, err := s.store.db.QueryContext(ctx, `
		SELECT s.id, s.name, s.authority, s.official_portal, s.update_frequency,
			s.priority_tier, s.records_estimate,
			(SELECT COUNT(*) FROM provisions p WHERE p.source_id = s.id),
			(SELECT COUNT(DISTINCT p.regime_id) FROM provisions p WHERE p.source_id = s.id),
			(SELECT COUNT(*) FROM sanctions_case_law c WHERE c.source_id = s.id),
			(SELECT COUNT(*) FROM executive_orders e WHERE e.source_id = s.id),
			(SELECT COUNT(*) FROM export_controls x WHERE x.source_id = s.id),
			COALESCE(f.status, ''), COALESCE(f.last_updated, '')
		FROM sources s
		LEFT JOIN source_freshness f ON f.source_id = s.id
		ORDER BY `+priorityOrder+`, s.id ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("querying source summaries: %w", err)
	}
	defer rows.Close()

	out := []domain.SourceSummary{}
	for rows.Next() {
		var sum domain.SourceSummary
		if err := rows.Scan(&sum.ID, &sum.Name, &sum.Authority, &sum.OfficialPortal,
			&sum.UpdateFrequency, &sum.PriorityTier, &sum.RecordsEstimate,
			&sum.ProvisionCount, &sum.RegimeCount, &sum.CaseLawCount,
			&sum.ExecutiveOrderCount, &sum.ExportControlCount,
			&sum.FreshnessStatus, &sum.LastUpdated); err != nil {
			return nil, fmt.Errorf("scanning source summary: %w", err)
		}
		out = append(out, sum)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating source summaries: %w", err)
	}
	return out, nil
}

// Get returns a source by id, or nil when absent.
func (s *sourceStore) Get(ctx context.Context, id string) (*domain.Source, error) {
	row := s.store.db.QueryRowContext(ctx, `
		SELECT `+sourceColumns+` FROM sources s WHERE s.id = ?
	`, id)

	src, err := scanSource(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return src, nil
}

// List returns every source ordered by id.
func (s *sourceStore) List(ctx context.Context) ([]domain.Source, error) {
	rows, err := s.store.db.QueryContext(ctx, `
		SELECT `+sourceColumns+` FROM sources s ORDER BY s.id ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("querying sources: %w", err)
	}
	defer rows.Close()

	out := []domain.Source{}
	for rows.Next() {
		src, err := scanSource(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *src)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating sources: %w", err)
	}
	return out, nil
}

// Samples returns the most recent provisions of a source.
func (s *sourceStore) Samples(ctx context.Context, id string, limit int) ([]domain.ProvisionRef, error) {
	rows, err := s.store.db.QueryContext(ctx, `
		SELECT `+provisionRefColumns+`
		FROM provisions p
		WHERE p.source_id = ?
		ORDER BY COALESCE(p.issued_date, '') DESC, p.item_id ASC
		LIMIT ?
	`, id, limit)
	if err != nil {
		return nil, fmt.Errorf("querying source samples: %w", err)
	}
	return scanProvisionRefs(rows)
}

// rowScanner is satisfied by *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

// scanSource reads a row selected with sourceColumns. sql.ErrNoRows is
// returned unwrapped.
func scanSource(row rowScanner) (*domain.Source, error) {
	var src domain.Source
	var metadata sql.NullString
	err := row.Scan(&src.ID, &src.Name, &src.Authority, &src.OfficialPortal,
		&src.RetrievalMethod, &src.UpdateFrequency, &src.RecordsEstimate,
		&src.PriorityTier, &src.CoverageNote, &src.LastVerified, &metadata)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, err
	}
	if err != nil {
		return nil, fmt.Errorf("scanning source: %w", err)
	}
	src.Metadata = decodeObject(metadata)
	return &src, nil
}

// freshnessStore implements driven.FreshnessStore.
type freshnessStore struct {
	store *Store
}

var _ driven.FreshnessStore = (*freshnessStore)(nil)

// List returns every freshness row with its source name.
func (s *freshnessStore) List(ctx context.Context) ([]domain.FreshnessRecord, error) {
	rows, err := s.store.db.QueryContext(ctx, `
		SELECT f.source_id, f.last_checked, f.last_updated, f.check_frequency,
			f.status, f.notes, COALESCE(s.name, f.source_id)
		FROM source_freshness f
		LEFT JOIN sources s ON s.id = f.source_id
		ORDER BY f.source_id ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("querying freshness: %w", err)
	}
	defer rows.Close()

	out := []domain.FreshnessRecord{}
	for rows.Next() {
		var r domain.FreshnessRecord
		if err := rows.Scan(&r.SourceID, &r.LastChecked, &r.LastUpdated,
			&r.CheckFrequency, &r.Status, &r.Notes, &r.SourceName); err != nil {
			return nil, fmt.Errorf("scanning freshness: %w", err)
		}
		out = append(out, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating freshness: %w", err)
	}
	return out, nil
}
