// Package domain defines the core entities of the sanctions-law reference.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - Source: An issuing authority that produces legal records
//   - Regime: A named sanctions programme tied to one jurisdiction
//   - Provision: An atomic, citable passage of legal text
//   - ExecutiveOrder, DelistingProcedure, ExportControl, CaseLaw
//   - SourceFreshness: Declared staleness data for a source
//
// It also holds the pure helpers shared by every query operation: limit
// clamping, filter-list normalisation, date arithmetic, the freshness
// evaluator and jurisdiction inference.
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
