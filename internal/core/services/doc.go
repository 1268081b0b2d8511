// Package services implements the driving port interfaces.
// Services contain the core query logic: they normalise input, apply
// limits and defaults, and orchestrate calls to driven ports (adapters).
//
// Services are pure Go with no CGO or external dependencies.
package services
