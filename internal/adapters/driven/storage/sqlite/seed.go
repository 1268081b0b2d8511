package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/custodia-labs/sanctions-law/internal/core/domain"
)

// dataset_info keys.
const (
	infoSchemaVersion = "schema_version"
	infoGeneratedAt   = "generated_at"
	infoBuiltAt       = "built_at"
)

// Seed inserts the whole dataset in one transaction, parents first. If any
// insert fails the transaction is rolled back and nothing is persisted.
func (s *Store) Seed(ctx context.Context, ds *domain.Dataset) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck

	if _, err := tx.ExecContext(ctx, `
		INSERT INTO dataset_info (key, value) VALUES (?, ?), (?, ?), (?, ?)
	`, infoSchemaVersion, ds.SchemaVersion,
		infoGeneratedAt, ds.GeneratedAt,
		infoBuiltAt, s.now().UTC().Format(time.RFC3339)); err != nil {
		return fmt.Errorf("saving dataset info: %w", err)
	}

	steps := []struct {
		name string
		fn   func(context.Context, *sql.Tx, *domain.Dataset) error
	}{
		{"sources", insertSources},
		{"regimes", insertRegimes},
		{"provisions", insertProvisions},
		{"executive orders", insertExecutiveOrders},
		{"delisting procedures", insertDelistingProcedures},
		{"export controls", insertExportControls},
		{"case law", insertCaseLaw},
		{"freshness", insertFreshness},
	}
	for _, step := range steps {
		if err := step.fn(ctx, tx, ds); err != nil {
			return fmt.Errorf("seeding %s: %w", step.name, err)
		}
	}

	if err := checkForeignKeys(ctx, tx); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing transaction: %w", err)
	}
	return nil
}

// checkForeignKeys reports deferred violations before commit. A COMMIT
// rejected by a deferred constraint leaves the transaction open, so the
// check has to run while a rollback is still possible.
func checkForeignKeys(ctx context.Context, tx *sql.Tx) error {
	rows, err := tx.QueryContext(ctx, "PRAGMA foreign_key_check")
	if err != nil {
		return fmt.Errorf("checking foreign keys: %w", err)
	}
	defer rows.Close()

	if rows.Next() {
		var table, parent string
		var rowID sql.NullInt64
		var fkid int
		if err := rows.Scan(&table, &rowID, &parent, &fkid); err != nil {
			return fmt.Errorf("scanning foreign key violation: %w", err)
		}
		return fmt.Errorf("foreign key violation: %s references missing %s row", table, parent)
	}
	return rows.Err()
}

// insertRows prepares query once and executes it for each of n rows.
func insertRows(ctx context.Context, tx *sql.Tx, query string, n int, args func(i int) ([]any, error)) error {
	if n == 0 {
		return nil
	}

	stmt, err := tx.PrepareContext(ctx, query)
	if err != nil {
		return fmt.Errorf("preparing statement: %w", err)
	}
	defer stmt.Close()

	for i := 0; i < n; i++ {
		values, err := args(i)
		if err != nil {
			return fmt.Errorf("row %d: %w", i, err)
		}
		if _, err := stmt.ExecContext(ctx, values...); err != nil {
			return fmt.Errorf("row %d: %w", i, err)
		}
	}
	return nil
}

func insertSources(ctx context.Context, tx *sql.Tx, ds *domain.Dataset) error {
	return insertRows(ctx, tx, `
		INSERT INTO sources (id, name, authority, official_portal, retrieval_method,
			update_frequency, records_estimate, priority_tier, coverage_note, last_verified, metadata)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, len(ds.Sources), func(i int) ([]any, error) {
		src := ds.Sources[i]
		metadata, err := encodeObject(src.Metadata)
		if err != nil {
			return nil, fmt.Errorf("marshalling metadata: %w", err)
		}
		return []any{src.ID, src.Name, src.Authority, src.OfficialPortal, src.RetrievalMethod,
			string(src.UpdateFrequency), src.RecordsEstimate, string(src.PriorityTier),
			src.CoverageNote, src.LastVerified, metadata}, nil
	})
}

func insertRegimes(ctx context.Context, tx *sql.Tx, ds *domain.Dataset) error {
	return insertRows(ctx, tx, `
		INSERT INTO sanctions_regimes (id, name, jurisdiction, authority, summary,
			legal_basis, cyber_related, delisting_procedure_id, official_url)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, len(ds.Regimes), func(i int) ([]any, error) {
		r := ds.Regimes[i]
		return []any{r.ID, r.Name, r.Jurisdiction, r.Authority, r.Summary,
			encodeList(r.LegalBasis), r.CyberRelated, nullString(r.DelistingProcedureID),
			r.OfficialURL}, nil
	})
}

func insertProvisions(ctx context.Context, tx *sql.Tx, ds *domain.Dataset) error {
	return insertRows(ctx, tx, `
		INSERT INTO provisions (source_id, item_id, title, text, parent, kind,
			regime_id, issued_date, url, topics, metadata)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, len(ds.Provisions), func(i int) ([]any, error) {
		p := ds.Provisions[i]
		metadata, err := encodeObject(p.Metadata)
		if err != nil {
			return nil, fmt.Errorf("marshalling metadata: %w", err)
		}
		return []any{p.SourceID, p.ItemID, p.Title, p.Text, nullString(p.Parent), p.Kind,
			nullString(p.RegimeID), nullString(p.IssuedDate), p.URL,
			encodeList(p.Topics), metadata}, nil
	})
}

func insertExecutiveOrders(ctx context.Context, tx *sql.Tx, ds *domain.Dataset) error {
	return insertRows(ctx, tx, `
		INSERT INTO executive_orders (id, source_id, regime_id, order_number, title,
			issued_date, status, summary, cyber_related, legal_basis, official_url)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, len(ds.ExecutiveOrders), func(i int) ([]any, error) {
		e := ds.ExecutiveOrders[i]
		return []any{e.ID, e.SourceID, nullString(e.RegimeID), e.OrderNumber, e.Title,
			e.IssuedDate, string(e.Status), e.Summary, e.CyberRelated,
			encodeList(e.LegalBasis), e.OfficialURL}, nil
	})
}

func insertDelistingProcedures(ctx context.Context, tx *sql.Tx, ds *domain.Dataset) error {
	return insertRows(ctx, tx, `
		INSERT INTO delisting_procedures (id, regime_id, authority, procedure_summary,
			evidentiary_standard, review_body, review_timeline, application_url, legal_basis)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, len(ds.DelistingProcedures), func(i int) ([]any, error) {
		d := ds.DelistingProcedures[i]
		return []any{d.ID, d.RegimeID, d.Authority, d.ProcedureSummary,
			d.EvidentiaryStandard, d.ReviewBody, d.ReviewTimeline, d.ApplicationURL,
			encodeList(d.LegalBasis)}, nil
	})
}

func insertExportControls(ctx context.Context, tx *sql.Tx, ds *domain.Dataset) error {
	return insertRows(ctx, tx, `
		INSERT INTO export_controls (id, source_id, jurisdiction, instrument, section,
			title, summary, focus, official_url)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, len(ds.ExportControls), func(i int) ([]any, error) {
		x := ds.ExportControls[i]
		return []any{x.ID, x.SourceID, x.Jurisdiction, x.Instrument, x.Section,
			x.Title, x.Summary, x.Focus, x.OfficialURL}, nil
	})
}

func insertCaseLaw(ctx context.Context, tx *sql.Tx, ds *domain.Dataset) error {
	return insertRows(ctx, tx, `
		INSERT INTO sanctions_case_law (id, source_id, court, case_reference, title,
			decision_date, regime_id, delisting_related, outcome, summary, keywords, official_url)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, len(ds.CaseLaw), func(i int) ([]any, error) {
		c := ds.CaseLaw[i]
		return []any{c.ID, c.SourceID, c.Court, c.CaseReference, c.Title,
			c.DecisionDate, nullString(c.RegimeID), c.DelistingRelated, c.Outcome,
			c.Summary, encodeList(c.Keywords), c.OfficialURL}, nil
	})
}

func insertFreshness(ctx context.Context, tx *sql.Tx, ds *domain.Dataset) error {
	return insertRows(ctx, tx, `
		INSERT INTO source_freshness (source_id, last_checked, last_updated,
			check_frequency, status, notes)
		VALUES (?, ?, ?, ?, ?, ?)
	`, len(ds.Freshness), func(i int) ([]any, error) {
		f := ds.Freshness[i]
		return []any{f.SourceID, f.LastChecked, f.LastUpdated,
			string(f.CheckFrequency), string(f.Status), f.Notes}, nil
	})
}
