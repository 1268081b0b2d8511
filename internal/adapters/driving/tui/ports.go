// Package tui provides an interactive terminal browser over the stored
// provisions and sources. It is a driving adapter like the MCP server and
// the CLI, and reaches the core only through driving ports.
package tui

import (
	"github.com/custodia-labs/sanctions-law/internal/core/ports/driving"
)

// Ports aggregates the driving port interfaces the TUI needs.
type Ports struct {
	// Provisions answers searches and provision lookups.
	Provisions driving.ProvisionService

	// Sources lists sources and their details.
	Sources driving.SourceService
}

// Validate ensures all required ports are set.
func (p *Ports) Validate() error {
	if p == nil {
		return ErrInvalidPorts
	}
	if p.Provisions == nil {
		return ErrMissingProvisionService
	}
	if p.Sources == nil {
		return ErrMissingSourceService
	}
	return nil
}
