package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/custodia-labs/sanctions-law/internal/adapters/driven/storage/sqlite/schema"
	"github.com/custodia-labs/sanctions-law/internal/core/domain"
	"github.com/custodia-labs/sanctions-law/internal/core/ports/driven"
	"github.com/custodia-labs/sanctions-law/internal/logger"
)

const (
	driverName = "sqlite"

	// dsnPragmas apply to every pooled connection.
	dsnPragmas = "_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)"

	// requiredTables must exist before a database can be served.
	requiredTables = 3
)

// Store is a unified SQLite-based storage that provides access to
// all legal-reference store interfaces through wrapper types.
type Store struct {
	db   *sql.DB
	path string
	now  func() time.Time
}

// DefaultPath returns ~/.sanctions-law/data/sanctions.db.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("getting home directory: %w", err)
	}
	return filepath.Join(home, ".sanctions-law", "data", "sanctions.db"), nil
}

// NewStore opens (creating if needed) the database at path for building.
// If path is empty, DefaultPath is used. The schema is not created; call
// CreateSchema before seeding.
func NewStore(path string) (*Store, error) {
	if path == "" {
		var err error
		if path, err = DefaultPath(); err != nil {
			return nil, err
		}
	}

	// Ensure directory exists
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}

	db, err := openWritable(path)
	if err != nil {
		return nil, err
	}

	return &Store{db: db, path: path, now: time.Now}, nil
}

// openWritable opens path with the connection pragmas and checks it.
func openWritable(path string) (*sql.DB, error) {
	db, err := sql.Open(driverName, path+"?"+dsnPragmas)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("connecting to database: %w", err)
	}
	return db, nil
}

// OpenReadOnly opens an existing, built database for serving queries.
// It returns domain.ErrSchemaMissing when the file does not exist or
// has not been built.
func OpenReadOnly(path string) (*Store, error) {
	if path == "" {
		var err error
		if path, err = DefaultPath(); err != nil {
			return nil, err
		}
	}

	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s does not exist", domain.ErrSchemaMissing, path)
		}
		return nil, fmt.Errorf("checking database: %w", err)
	}

	db, err := sql.Open(driverName, path+"?"+dsnPragmas+"&_pragma=query_only(1)")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	s := &Store{db: db, path: path, now: time.Now}
	if err := s.checkSchema(context.Background()); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

// NewStoreFromDB wraps an already open handle. The caller keeps ownership
// of connection settings; used with test doubles.
func NewStoreFromDB(db *sql.DB) *Store {
	return &Store{db: db, now: time.Now}
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Path returns the database file path.
func (s *Store) Path() string {
	return s.path
}

// ProvisionStore returns a ProvisionStore interface backed by this store.
func (s *Store) ProvisionStore() driven.ProvisionStore {
	return &provisionStore{store: s}
}

// RegimeStore returns a RegimeStore interface backed by this store.
func (s *Store) RegimeStore() driven.RegimeStore {
	return &regimeStore{store: s}
}

// ExecutiveOrderStore returns an ExecutiveOrderStore interface backed by this store.
func (s *Store) ExecutiveOrderStore() driven.ExecutiveOrderStore {
	return &executiveOrderStore{store: s}
}

// ExportControlStore returns an ExportControlStore interface backed by this store.
func (s *Store) ExportControlStore() driven.ExportControlStore {
	return &exportControlStore{store: s}
}

// CaseLawStore returns a CaseLawStore interface backed by this store.
func (s *Store) CaseLawStore() driven.CaseLawStore {
	return &caseLawStore{store: s}
}

// SourceStore returns a SourceStore interface backed by this store.
func (s *Store) SourceStore() driven.SourceStore {
	return &sourceStore{store: s}
}

// FreshnessStore returns a FreshnessStore interface backed by this store.
func (s *Store) FreshnessStore() driven.FreshnessStore {
	return &freshnessStore{store: s}
}

var (
	_ driven.SeedStore    = (*Store)(nil)
	_ driven.SummaryStore = (*Store)(nil)
)

// CreateSchema drops and recreates every table, the full-text index and its
// triggers. Foreign keys are disabled on a pinned connection while tables
// are dropped so existing rows do not block the rebuild.
func (s *Store) CreateSchema(ctx context.Context) error {
	conn, err := s.db.Conn(ctx)
	if err != nil {
		return fmt.Errorf("acquiring connection: %w", err)
	}
	defer conn.Close()

	if _, err := conn.ExecContext(ctx, "PRAGMA foreign_keys = OFF"); err != nil {
		return fmt.Errorf("disabling foreign keys: %w", err)
	}
	defer conn.ExecContext(context.Background(), "PRAGMA foreign_keys = ON") //nolint:errcheck

	entries, err := fs.ReadDir(schema.FS, ".")
	if err != nil {
		return fmt.Errorf("reading schema directory: %w", err)
	}

	var files []string
	for _, entry := range entries {
		if strings.HasSuffix(entry.Name(), ".sql") {
			files = append(files, entry.Name())
		}
	}
	sort.Strings(files)

	for _, name := range files {
		content, err := fs.ReadFile(schema.FS, name)
		if err != nil {
			return fmt.Errorf("reading schema %s: %w", name, err)
		}
		if _, err := conn.ExecContext(ctx, string(content)); err != nil {
			return fmt.Errorf("executing schema %s: %w", name, err)
		}
	}

	return nil
}

// Rebuild builds ds into a temporary file next to the database and renames
// it over the database once the seed has committed. The store then reopens
// on the new file. A store opened without a path rebuilds in place.
func (s *Store) Rebuild(ctx context.Context, ds *domain.Dataset) error {
	if s.path == "" {
		if err := s.CreateSchema(ctx); err != nil {
			return fmt.Errorf("creating schema: %w", err)
		}
		return s.Seed(ctx, ds)
	}

	tmp, err := os.CreateTemp(filepath.Dir(s.path), filepath.Base(s.path)+".build-*")
	if err != nil {
		return fmt.Errorf("creating build file: %w", err)
	}
	buildPath := tmp.Name()
	tmp.Close()
	defer os.Remove(buildPath) //nolint:errcheck

	if err := s.buildInto(ctx, buildPath, ds); err != nil {
		return err
	}

	if err := s.db.Close(); err != nil {
		return fmt.Errorf("closing database: %w", err)
	}
	renameErr := os.Rename(buildPath, s.path)

	db, err := openWritable(s.path)
	if err != nil {
		return fmt.Errorf("reopening database: %w", err)
	}
	s.db = db

	if renameErr != nil {
		return fmt.Errorf("replacing database: %w", renameErr)
	}
	logger.Debug("Replaced %s", s.path)
	return nil
}

// buildInto creates the schema in the file at path and seeds it.
func (s *Store) buildInto(ctx context.Context, path string, ds *domain.Dataset) (err error) {
	db, err := openWritable(path)
	if err != nil {
		return err
	}
	build := &Store{db: db, path: path, now: s.now}
	defer func() {
		if cerr := build.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("closing build file: %w", cerr)
		}
	}()

	if err := build.CreateSchema(ctx); err != nil {
		return fmt.Errorf("creating schema: %w", err)
	}
	return build.Seed(ctx, ds)
}

// checkSchema verifies the core tables exist.
func (s *Store) checkSchema(ctx context.Context) error {
	var n int
	err := s.db.QueryRowContext(ctx, `
		SELECT COUNT(*) FROM sqlite_master
		WHERE type = 'table' AND name IN ('sources', 'provisions', 'provisions_fts')
	`).Scan(&n)
	if err != nil {
		return fmt.Errorf("inspecting schema: %w", err)
	}
	if n < requiredTables {
		return fmt.Errorf("%w: %s has not been built", domain.ErrSchemaMissing, s.path)
	}
	return nil
}

// Summary counts rows per entity table.
func (s *Store) Summary(ctx context.Context) (domain.Summary, error) {
	var sum domain.Summary
	err := s.db.QueryRowContext(ctx, `
		SELECT
			(SELECT COUNT(*) FROM sources),
			(SELECT COUNT(*) FROM sanctions_regimes),
			(SELECT COUNT(*) FROM provisions),
			(SELECT COUNT(*) FROM executive_orders),
			(SELECT COUNT(*) FROM delisting_procedures),
			(SELECT COUNT(*) FROM export_controls),
			(SELECT COUNT(*) FROM sanctions_case_law),
			(SELECT COUNT(*) FROM source_freshness)
	`).Scan(&sum.Sources, &sum.Regimes, &sum.Provisions, &sum.ExecutiveOrders,
		&sum.DelistingProcedures, &sum.ExportControls, &sum.CaseLaw, &sum.Freshness)
	if err != nil {
		return domain.Summary{}, fmt.Errorf("counting rows: %w", err)
	}
	return sum, nil
}

// DatasetInfo returns the metadata recorded at seed time.
func (s *Store) DatasetInfo(ctx context.Context) (domain.DatasetInfo, error) {
	rows, err := s.db.QueryContext(ctx, "SELECT key, value FROM dataset_info")
	if err != nil {
		return domain.DatasetInfo{}, fmt.Errorf("querying dataset info: %w", err)
	}
	defer rows.Close()

	var info domain.DatasetInfo
	for rows.Next() {
		var key, value string
		if err := rows.Scan(&key, &value); err != nil {
			return domain.DatasetInfo{}, fmt.Errorf("scanning dataset info: %w", err)
		}
		switch key {
		case infoSchemaVersion:
			info.SchemaVersion = value
		case infoGeneratedAt:
			info.GeneratedAt = value
		case infoBuiltAt:
			info.BuiltAt = value
		}
	}
	if err := rows.Err(); err != nil {
		return domain.DatasetInfo{}, fmt.Errorf("iterating dataset info: %w", err)
	}
	return info, nil
}

// ==================== Query Helpers ====================

// whereClause accumulates AND-ed SQL conditions and their arguments.
type whereClause struct {
	conds []string
	args  []any
}

// add appends a condition with its arguments.
func (w *whereClause) add(cond string, args ...any) {
	w.conds = append(w.conds, cond)
	w.args = append(w.args, args...)
}

// addIn appends "expr IN (?, ...)" for a non-empty value list.
func (w *whereClause) addIn(expr string, values []string) {
	if len(values) == 0 {
		return
	}
	placeholders := strings.TrimSuffix(strings.Repeat("?, ", len(values)), ", ")
	w.conds = append(w.conds, expr+" IN ("+placeholders+")")
	for _, v := range values {
		w.args = append(w.args, v)
	}
}

// addAnyLike appends "(fold(c1) LIKE ? OR ...)" with the same pattern for
// every column.
func (w *whereClause) addAnyLike(term string, columns ...string) {
	pattern := likePattern(term)
	parts := make([]string, len(columns))
	for i, c := range columns {
		parts[i] = likeCond(c)
		w.args = append(w.args, pattern)
	}
	w.conds = append(w.conds, "("+strings.Join(parts, " OR ")+")")
}

// addLikeAnyOf appends "(fold(column) LIKE ? OR ...)" with one pattern per
// term. An empty term list adds nothing.
func (w *whereClause) addLikeAnyOf(column string, terms []string) {
	if len(terms) == 0 {
		return
	}
	parts := make([]string, len(terms))
	for i, term := range terms {
		parts[i] = likeCond(column)
		w.args = append(w.args, likePattern(term))
	}
	w.conds = append(w.conds, "("+strings.Join(parts, " OR ")+")")
}

// String renders the clause, including the leading keyword when needed.
func (w *whereClause) String() string {
	if len(w.conds) == 0 {
		return ""
	}
	return " WHERE " + strings.Join(w.conds, " AND ")
}

// and renders the conditions for appending to an existing WHERE.
func (w *whereClause) and() string {
	if len(w.conds) == 0 {
		return ""
	}
	return " AND " + strings.Join(w.conds, " AND ")
}

// nullString converts empty strings to SQL NULL.
func nullString(s string) sql.NullString {
	if s == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: s, Valid: true}
}

// provisionRefColumns selects the columns scanned by scanProvisionRefs.
const provisionRefColumns = `p.source_id, p.item_id, p.title, p.kind,
	COALESCE(p.regime_id, ''), COALESCE(p.issued_date, ''), p.url`

// scanProvisionRefs reads rows selected with provisionRefColumns.
func scanProvisionRefs(rows *sql.Rows) ([]domain.ProvisionRef, error) {
	defer rows.Close()

	refs := []domain.ProvisionRef{}
	for rows.Next() {
		var r domain.ProvisionRef
		if err := rows.Scan(&r.SourceID, &r.ItemID, &r.Title, &r.Kind,
			&r.RegimeID, &r.IssuedDate, &r.URL); err != nil {
			return nil, fmt.Errorf("scanning provision: %w", err)
		}
		refs = append(refs, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating provisions: %w", err)
	}
	return refs, nil
}
