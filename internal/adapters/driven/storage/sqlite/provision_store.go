package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/custodia-labs/sanctions-law/internal/core/domain"
	"github.com/custodia-labs/sanctions-law/internal/core/ports/driven"
)

// snippetTokens is the approximate snippet length in tokens.
const snippetTokens = 32

// provisionStore implements driven.ProvisionStore.
type provisionStore struct {
	store *Store
}

var _ driven.ProvisionStore = (*provisionStore)(nil)

// Search ranks provisions with BM25. Lower relevance means a better match;
// ties break on row id so identical queries return identical pages.
func (s *provisionStore) Search(ctx context.Context, q domain.ProvisionSearch) ([]domain.ProvisionHit, error) {
	match := escapeFTSQuery(q.Query)
	if match == "" {
		return []domain.ProvisionHit{}, nil
	}

	var where whereClause
	where.addIn("p.source_id", q.SourceIDs)
	where.addIn("COALESCE(r.jurisdiction, '') COLLATE NOCASE", q.Jurisdictions)
	if q.RegimeID != "" {
		where.add("p.regime_id = ?", q.RegimeID)
	}
	where.addLikeAnyOf("p.topics", q.Topics)

	args := append([]any{match}, where.args...)
	args = append(args, q.Limit)

	rows, err := s.store.db.QueryContext(ctx, fmt.Sprintf(`
		SELECT p.source_id, p.item_id, p.title, p.kind,
			COALESCE(p.regime_id, ''), COALESCE(r.name, ''), COALESCE(r.jurisdiction, ''),
			s.name, COALESCE(p.issued_date, ''), p.url, p.topics,
			snippet(provisions_fts, -1, '**', '**', '...', %d),
			bm25(provisions_fts) AS relevance
		FROM provisions_fts
		JOIN provisions p ON p.id = provisions_fts.rowid
		JOIN sources s ON s.id = p.source_id
		LEFT JOIN sanctions_regimes r ON r.id = p.regime_id
		WHERE provisions_fts MATCH ?%s
		ORDER BY relevance ASC, p.id ASC
		LIMIT ?
	`, snippetTokens, where.and()), args...)
	if err != nil {
		return nil, fmt.Errorf("searching provisions: %w", err)
	}
	defer rows.Close()

	hits := []domain.ProvisionHit{}
	for rows.Next() {
		var h domain.ProvisionHit
		var topics string
		if err := rows.Scan(&h.SourceID, &h.ItemID, &h.Title, &h.Kind,
			&h.RegimeID, &h.RegimeName, &h.Jurisdiction,
			&h.SourceName, &h.IssuedDate, &h.URL, &topics,
			&h.Snippet, &h.Relevance); err != nil {
			return nil, fmt.Errorf("scanning search hit: %w", err)
		}
		h.Topics = decodeStringList(topics)
		hits = append(hits, h)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating search hits: %w", err)
	}
	return hits, nil
}

// Get retrieves a provision by its natural key.
func (s *provisionStore) Get(ctx context.Context, sourceID, itemID string) (*domain.ProvisionDetail, error) {
	row := s.store.db.QueryRowContext(ctx, `
		SELECT p.id, p.source_id, p.item_id, p.title, p.text, COALESCE(p.parent, ''),
			p.kind, COALESCE(p.regime_id, ''), COALESCE(p.issued_date, ''), p.url,
			p.topics, p.metadata,
			s.name, COALESCE(r.name, ''), COALESCE(r.jurisdiction, '')
		FROM provisions p
		JOIN sources s ON s.id = p.source_id
		LEFT JOIN sanctions_regimes r ON r.id = p.regime_id
		WHERE p.source_id = ? AND p.item_id = ?
	`, sourceID, itemID)

	var d domain.ProvisionDetail
	var topics string
	var metadata sql.NullString
	if err := row.Scan(&d.ID, &d.SourceID, &d.ItemID, &d.Title, &d.Text, &d.Parent,
		&d.Kind, &d.RegimeID, &d.IssuedDate, &d.URL, &topics, &metadata,
		&d.SourceName, &d.RegimeName, &d.Jurisdiction); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("scanning provision: %w", err)
	}
	d.Topics = decodeStringList(topics)
	d.Metadata = decodeObject(metadata)
	return &d, nil
}

// ByRegime returns provisions of a regime, most recent first.
func (s *provisionStore) ByRegime(
	ctx context.Context, regimeID string, excludeID int64, limit int,
) ([]domain.ProvisionRef, error) {
	rows, err := s.store.db.QueryContext(ctx, `
		SELECT `+provisionRefColumns+`
		FROM provisions p
		WHERE p.regime_id = ? AND p.id != ?
		ORDER BY COALESCE(p.issued_date, '') DESC, p.item_id ASC
		LIMIT ?
	`, regimeID, excludeID, limit)
	if err != nil {
		return nil, fmt.Errorf("querying regime provisions: %w", err)
	}
	return scanProvisionRefs(rows)
}

// ByTopic returns provisions whose topic list contains topic.
func (s *provisionStore) ByTopic(
	ctx context.Context, topic string, excludeID int64, limit int,
) ([]domain.ProvisionRef, error) {
	rows, err := s.store.db.QueryContext(ctx, `
		SELECT `+provisionRefColumns+`
		FROM provisions p
		WHERE `+likeCond("p.topics")+` AND p.id != ?
		ORDER BY COALESCE(p.issued_date, '') DESC, p.item_id ASC
		LIMIT ?
	`, likePattern(topic), excludeID, limit)
	if err != nil {
		return nil, fmt.Errorf("querying topic provisions: %w", err)
	}
	return scanProvisionRefs(rows)
}

// BySourceKinds returns provisions of a source restricted to kinds.
func (s *provisionStore) BySourceKinds(
	ctx context.Context, sourceID string, kinds []string, limit int,
) ([]domain.ProvisionRef, error) {
	if len(kinds) == 0 {
		return []domain.ProvisionRef{}, nil
	}

	var where whereClause
	where.add("p.source_id = ?", sourceID)
	where.addIn("p.kind", kinds)

	rows, err := s.store.db.QueryContext(ctx, `
		SELECT `+provisionRefColumns+`
		FROM provisions p`+where.String()+`
		ORDER BY COALESCE(p.issued_date, '') DESC, p.item_id ASC
		LIMIT ?
	`, append(where.args, limit)...)
	if err != nil {
		return nil, fmt.Errorf("querying source provisions: %w", err)
	}
	return scanProvisionRefs(rows)
}

// Cyber returns cyber-tagged provisions, most recent first.
func (s *provisionStore) Cyber(ctx context.Context, query string, limit int) ([]domain.CyberProvision, error) {
	var where whereClause
	where.add(likeCond("p.topics"), likePattern(domain.CyberTopic))
	if query != "" {
		where.addAnyLike(query, "p.title", "p.text")
	}

	rows, err := s.store.db.QueryContext(ctx, `
		SELECT p.source_id, p.item_id, p.title, p.kind,
			COALESCE(p.regime_id, ''), COALESCE(r.name, ''), COALESCE(r.jurisdiction, ''),
			COALESCE(p.issued_date, ''), p.topics, p.url
		FROM provisions p
		LEFT JOIN sanctions_regimes r ON r.id = p.regime_id`+where.String()+`
		ORDER BY COALESCE(p.issued_date, '') DESC, p.source_id ASC, p.item_id ASC
		LIMIT ?
	`, append(where.args, limit)...)
	if err != nil {
		return nil, fmt.Errorf("querying cyber provisions: %w", err)
	}
	defer rows.Close()

	out := []domain.CyberProvision{}
	for rows.Next() {
		var c domain.CyberProvision
		var topics string
		if err := rows.Scan(&c.SourceID, &c.ItemID, &c.Title, &c.Kind,
			&c.RegimeID, &c.RegimeName, &c.Jurisdiction,
			&c.IssuedDate, &topics, &c.URL); err != nil {
			return nil, fmt.Errorf("scanning cyber provision: %w", err)
		}
		c.Topics = decodeStringList(topics)
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating cyber provisions: %w", err)
	}
	return out, nil
}
