// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Required Interfaces
//
//   - ProvisionStore: Provision lookups and full-text search
//   - RegimeStore: Regimes, link counts and delisting procedures
//   - ExecutiveOrderStore: Executive order lookups
//   - ExportControlStore: Export-control lookups
//   - CaseLawStore: Case-law lookups
//   - SourceStore: Source listings and aggregate counts
//   - FreshnessStore: Stored freshness rows
//   - SummaryStore: Row counts and dataset metadata
//   - SeedStore: Atomic schema rebuild and seeding
//   - SeedReader: Reads and validates a seed document
//
// All read ports receive inputs whose limits are already normalised. They
// must order results deterministically and never mutate storage.
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter package
package driven
