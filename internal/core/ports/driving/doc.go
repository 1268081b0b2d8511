// Package driving defines interfaces that external actors (MCP, CLI) use
// to interact with core services. These are the "driving" ports in hexagonal
// architecture terminology - they drive the application.
//
// Every read operation follows the same contract:
//
//   - Required fields missing or blank: an error wrapping domain.ErrInvalidInput
//   - Well-formed single-entity lookup matching nothing: nil result, nil error
//   - Storage failures: returned wrapped, never swallowed
//
// Implementations of these interfaces live in internal/core/services.
package driving
