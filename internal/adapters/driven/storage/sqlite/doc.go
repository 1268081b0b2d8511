// Package sqlite provides the SQLite-based implementation of the driven
// storage ports.
//
// This adapter uses modernc.org/sqlite, a pure Go SQLite implementation that
// requires no CGO and ships with the FTS5 and JSON1 extensions. It implements
// every store interface through a single database handle:
//
//   - ProvisionStore: Provision lookups and ranked full-text search
//   - RegimeStore: Regimes, link counts and delisting procedures
//   - ExecutiveOrderStore, ExportControlStore, CaseLawStore
//   - SourceStore, FreshnessStore, SummaryStore
//   - SeedStore: Rebuild into a side file, renamed over the database on success
//
// # Schema
//
// The schema lives in the schema/ directory and is applied in file-name
// order by CreateSchema, which drops and recreates everything. Rebuild runs
// CreateSchema and Seed on a fresh file so a failed build never touches
// the served database. Provisions
// are mirrored into the provisions_fts virtual table by triggers.
//
// # JSON Columns
//
// List and object attributes are stored as JSON text. They are decoded in
// codec.go; malformed stored values decode to an empty list or nil map.
//
// # Data Location
//
// By default, the database is stored at ~/.sanctions-law/data/sanctions.db
//
// # Access Modes
//
// NewStore opens the file read-write for building. OpenReadOnly is used for
// serving: it refuses files without a schema and rejects writes.
package sqlite
