package mcp

import (
	"fmt"

	"github.com/custodia-labs/sanctions-law/internal/core/ports/driving"
)

// Ports aggregates all driving port interfaces required by the MCP server.
// This provides a single injection point for dependency injection.
type Ports struct {
	Provisions      driving.ProvisionService
	Regimes         driving.RegimeService
	ExecutiveOrders driving.ExecutiveOrderService
	Cyber           driving.CyberService
	ExportControls  driving.ExportControlService
	CaseLaw         driving.CaseLawService
	Sources         driving.SourceService
	Freshness       driving.FreshnessService
}

// Validate ensures all required ports are set.
// Every tool is always registered, so every port is required.
func (p *Ports) Validate() error {
	required := []struct {
		name string
		set  bool
	}{
		{"provisions", p.Provisions != nil},
		{"regimes", p.Regimes != nil},
		{"executive orders", p.ExecutiveOrders != nil},
		{"cyber", p.Cyber != nil},
		{"export controls", p.ExportControls != nil},
		{"case law", p.CaseLaw != nil},
		{"sources", p.Sources != nil},
		{"freshness", p.Freshness != nil},
	}
	for _, r := range required {
		if !r.set {
			return fmt.Errorf("%w: %s", ErrMissingService, r.name)
		}
	}
	return nil
}
