package mcp

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/sanctions-law/internal/core/domain"
	"github.com/custodia-labs/sanctions-law/internal/logger"
)

// Tool names. These are the public operation surface shared by every
// transport.
const (
	ToolSearchProvisions    = "search-provisions"
	ToolGetProvision        = "get-provision"
	ToolGetRegime           = "get-regime"
	ToolGetExecutiveOrder   = "get-executive-order"
	ToolCheckCyberSanctions = "check-cyber-sanctions"
	ToolGetDelisting        = "get-delisting-procedure"
	ToolGetExportControl    = "get-export-control"
	ToolSearchCaseLaw       = "search-case-law"
	ToolListSources         = "list-sources"
	ToolAbout               = "about"
	ToolCheckFreshness      = "check-freshness"
)

// ToolNames lists every tool in registration order.
func ToolNames() []string {
	return []string{
		ToolSearchProvisions,
		ToolGetProvision,
		ToolGetRegime,
		ToolGetExecutiveOrder,
		ToolCheckCyberSanctions,
		ToolGetDelisting,
		ToolGetExportControl,
		ToolSearchCaseLaw,
		ToolListSources,
		ToolAbout,
		ToolCheckFreshness,
	}
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	addTool(s, ToolSearchProvisions,
		"Full-text search over sanctions provisions, ranked by relevance with highlighted snippets",
		s.handleSearchProvisions)
	addTool(s, ToolGetProvision,
		"Fetch a single provision by source id and item id, optionally with related provisions",
		s.handleGetProvision)
	addTool(s, ToolGetRegime,
		"Look up sanctions regimes by id, name or jurisdiction with linked provision and case law counts",
		s.handleGetRegime)
	addTool(s, ToolGetExecutiveOrder,
		"Fetch an executive order by order number or id, optionally with related provisions",
		s.handleGetExecutiveOrder)
	addTool(s, ToolCheckCyberSanctions,
		"List cyber-related regimes, executive orders and provisions; orders and provisions can be filtered by jurisdiction",
		s.handleCheckCyberSanctions)
	addTool(s, ToolGetDelisting,
		"Fetch delisting procedures by procedure id or regime id",
		s.handleGetDelisting)
	addTool(s, ToolGetExportControl,
		"Look up export control entries by jurisdiction, section or free text",
		s.handleGetExportControl)
	addTool(s, ToolSearchCaseLaw,
		"Search sanctions case law by text, regime, court or delisting relevance, newest first",
		s.handleSearchCaseLaw)
	addTool(s, ToolListSources,
		"Summarise every source with record counts and freshness, optionally detailing one source",
		s.handleListSources)
	addTool(s, ToolAbout,
		"Describe the dataset: record counts, sources and disclaimer",
		s.handleAbout)
	addTool(s, ToolCheckFreshness,
		"Evaluate how current each source is against its check frequency",
		s.handleCheckFreshness)
}

// toolHandler is the transport-independent part of a tool.
type toolHandler[In, Out any] func(ctx context.Context, input In) (Out, error)

// addTool registers h under name, wrapping it with call logging, metrics and
// error mapping.
func addTool[In, Out any](s *Server, name, description string, h toolHandler[In, Out]) {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        name,
		Description: description,
	}, instrument(s, name, h))
}

// instrument adapts h to the SDK handler signature. Input errors become tool
// results flagged IsError so the client sees the message; anything else is a
// protocol error.
func instrument[In, Out any](s *Server, name string, h toolHandler[In, Out]) mcp.ToolHandlerFor[In, Out] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input In) (*mcp.CallToolResult, Out, error) {
		callID := uuid.NewString()
		start := time.Now()
		logger.Event("tool call", "tool", name, "call_id", callID)

		out, err := h(ctx, input)
		elapsed := time.Since(start)

		var zero Out
		switch {
		case errors.Is(err, domain.ErrInvalidInput):
			s.metrics.ObserveCall(name, outcomeInvalidInput, elapsed)
			logger.Event("tool rejected", "tool", name, "call_id", callID, "error", err.Error())
			return toolError(err), zero, nil
		case err != nil:
			s.metrics.ObserveCall(name, outcomeError, elapsed)
			logger.Error("tool %s (%s) failed: %v", name, callID, err)
			return nil, zero, err
		}

		s.metrics.ObserveCall(name, outcomeOK, elapsed)
		logger.Event("tool done", "tool", name, "call_id", callID, "duration", elapsed)
		return nil, out, nil
	}
}

// toolError builds a tool result carrying err as its text content.
func toolError(err error) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		IsError: true,
		Content: []mcp.Content{&mcp.TextContent{Text: err.Error()}},
	}
}

// SearchProvisionsInput is the input schema for search-provisions.
type SearchProvisionsInput struct {
	Query         string   `json:"query" jsonschema:"free text to search provision titles and text for"`
	Sources       []string `json:"sources,omitempty" jsonschema:"restrict to any of these source ids"`
	Jurisdictions []string `json:"jurisdictions,omitempty" jsonschema:"restrict to regimes in any of these jurisdictions (UN, EU, US, UK)"`
	RegimeID      string   `json:"regime_id,omitempty" jsonschema:"restrict to one sanctions regime"`
	Topics        []string `json:"topics,omitempty" jsonschema:"restrict to provisions tagged with any of these topics"`
	Limit         any      `json:"limit,omitempty" jsonschema:"maximum number of results (default 10, max 50)"`
}

// SearchProvisionsOutput is the output schema for search-provisions.
type SearchProvisionsOutput struct {
	Results []domain.ProvisionHit `json:"results"`
	Count   int                   `json:"count"`
}

func (s *Server) handleSearchProvisions(ctx context.Context, input SearchProvisionsInput) (SearchProvisionsOutput, error) {
	hits, err := s.ports.Provisions.Search(ctx, domain.ProvisionSearch{
		Query:         input.Query,
		SourceIDs:     input.Sources,
		Jurisdictions: input.Jurisdictions,
		RegimeID:      input.RegimeID,
		Topics:        input.Topics,
		Limit:         domain.ParseLimit(input.Limit),
	})
	if err != nil {
		return SearchProvisionsOutput{}, err
	}
	if hits == nil {
		hits = []domain.ProvisionHit{}
	}
	return SearchProvisionsOutput{Results: hits, Count: len(hits)}, nil
}

// GetProvisionInput is the input schema for get-provision.
type GetProvisionInput struct {
	SourceID       string `json:"source_id" jsonschema:"id of the source the provision belongs to"`
	ItemID         string `json:"item_id" jsonschema:"item id of the provision within its source"`
	IncludeRelated bool   `json:"include_related,omitempty" jsonschema:"attach up to 5 related provisions"`
}

// GetProvisionOutput is the output schema for get-provision.
// Provision is null when nothing matches.
type GetProvisionOutput struct {
	Provision *domain.ProvisionDetail `json:"provision"`
}

func (s *Server) handleGetProvision(ctx context.Context, input GetProvisionInput) (GetProvisionOutput, error) {
	p, err := s.ports.Provisions.Get(ctx, domain.ProvisionLookup{
		SourceID:       input.SourceID,
		ItemID:         input.ItemID,
		IncludeRelated: input.IncludeRelated,
	})
	if err != nil {
		return GetProvisionOutput{}, err
	}
	return GetProvisionOutput{Provision: p}, nil
}

// GetRegimeInput is the input schema for get-regime.
type GetRegimeInput struct {
	RegimeID          string `json:"regime_id,omitempty" jsonschema:"exact regime id"`
	Name              string `json:"name,omitempty" jsonschema:"part of the regime name"`
	Jurisdiction      string `json:"jurisdiction,omitempty" jsonschema:"exact jurisdiction code"`
	IncludeProvisions bool   `json:"include_provisions,omitempty" jsonschema:"attach up to 5 recent provisions per regime"`
	Limit             any    `json:"limit,omitempty" jsonschema:"maximum number of regimes (default 10, or 1 with regime_id)"`
}

// GetRegimeOutput is the output schema for get-regime.
type GetRegimeOutput struct {
	Regimes []domain.RegimeDetail `json:"regimes"`
	Count   int                   `json:"count"`
}

func (s *Server) handleGetRegime(ctx context.Context, input GetRegimeInput) (GetRegimeOutput, error) {
	regimes, err := s.ports.Regimes.Get(ctx, domain.RegimeQuery{
		ID:                input.RegimeID,
		Name:              input.Name,
		Jurisdiction:      input.Jurisdiction,
		IncludeProvisions: input.IncludeProvisions,
		Limit:             domain.ParseLimit(input.Limit),
	})
	if err != nil {
		return GetRegimeOutput{}, err
	}
	if regimes == nil {
		regimes = []domain.RegimeDetail{}
	}
	return GetRegimeOutput{Regimes: regimes, Count: len(regimes)}, nil
}

// GetExecutiveOrderInput is the input schema for get-executive-order.
type GetExecutiveOrderInput struct {
	OrderNumber    string `json:"order_number" jsonschema:"order number (e.g. 13694) or internal id"`
	IncludeRelated bool   `json:"include_related,omitempty" jsonschema:"attach up to 5 related provisions"`
}

// GetExecutiveOrderOutput is the output schema for get-executive-order.
// ExecutiveOrder is null when nothing matches.
type GetExecutiveOrderOutput struct {
	ExecutiveOrder *domain.ExecutiveOrderDetail `json:"executive_order"`
}

func (s *Server) handleGetExecutiveOrder(ctx context.Context, input GetExecutiveOrderInput) (GetExecutiveOrderOutput, error) {
	eo, err := s.ports.ExecutiveOrders.Get(ctx, domain.ExecutiveOrderLookup{
		OrderNumber:    input.OrderNumber,
		IncludeRelated: input.IncludeRelated,
	})
	if err != nil {
		return GetExecutiveOrderOutput{}, err
	}
	return GetExecutiveOrderOutput{ExecutiveOrder: eo}, nil
}

// CheckCyberSanctionsInput is the input schema for check-cyber-sanctions.
type CheckCyberSanctionsInput struct {
	Query        string `json:"query,omitempty" jsonschema:"narrow every list by a text fragment"`
	Jurisdiction string `json:"jurisdiction,omitempty" jsonschema:"keep only orders and provisions of this jurisdiction"`
	Limit        any    `json:"limit,omitempty" jsonschema:"maximum entries per list (default 10, max 50)"`
}

func (s *Server) handleCheckCyberSanctions(ctx context.Context, input CheckCyberSanctionsInput) (domain.CyberReport, error) {
	report, err := s.ports.Cyber.Check(ctx, domain.CyberQuery{
		Query:        input.Query,
		Jurisdiction: input.Jurisdiction,
		Limit:        domain.ParseLimit(input.Limit),
	})
	if err != nil {
		return domain.CyberReport{}, err
	}
	if report == nil {
		return domain.CyberReport{}, nil
	}
	return *report, nil
}

// GetDelistingInput is the input schema for get-delisting-procedure.
type GetDelistingInput struct {
	ProcedureID string `json:"procedure_id,omitempty" jsonschema:"exact procedure id"`
	RegimeID    string `json:"regime_id,omitempty" jsonschema:"procedures of this regime"`
	Limit       any    `json:"limit,omitempty" jsonschema:"maximum number of procedures (default 10, max 50)"`
}

// GetDelistingOutput is the output schema for get-delisting-procedure.
type GetDelistingOutput struct {
	Procedures []domain.DelistingDetail `json:"procedures"`
	Count      int                      `json:"count"`
}

func (s *Server) handleGetDelisting(ctx context.Context, input GetDelistingInput) (GetDelistingOutput, error) {
	procs, err := s.ports.Regimes.DelistingProcedures(ctx, domain.DelistingQuery{
		ID:       input.ProcedureID,
		RegimeID: input.RegimeID,
		Limit:    domain.ParseLimit(input.Limit),
	})
	if err != nil {
		return GetDelistingOutput{}, err
	}
	if procs == nil {
		procs = []domain.DelistingDetail{}
	}
	return GetDelistingOutput{Procedures: procs, Count: len(procs)}, nil
}

// GetExportControlInput is the input schema for get-export-control.
type GetExportControlInput struct {
	Jurisdiction string `json:"jurisdiction,omitempty" jsonschema:"exact jurisdiction code"`
	Section      string `json:"section,omitempty" jsonschema:"part of the section identifier"`
	Query        string `json:"query,omitempty" jsonschema:"text fragment matched against title, summary and focus"`
	Limit        any    `json:"limit,omitempty" jsonschema:"maximum number of entries (default 10, max 50)"`
}

// GetExportControlOutput is the output schema for get-export-control.
type GetExportControlOutput struct {
	ExportControls []domain.ExportControl `json:"export_controls"`
	Count          int                    `json:"count"`
}

func (s *Server) handleGetExportControl(ctx context.Context, input GetExportControlInput) (GetExportControlOutput, error) {
	controls, err := s.ports.ExportControls.Get(ctx, domain.ExportControlQuery{
		Jurisdiction: input.Jurisdiction,
		Section:      input.Section,
		Query:        input.Query,
		Limit:        domain.ParseLimit(input.Limit),
	})
	if err != nil {
		return GetExportControlOutput{}, err
	}
	if controls == nil {
		controls = []domain.ExportControl{}
	}
	return GetExportControlOutput{ExportControls: controls, Count: len(controls)}, nil
}

// SearchCaseLawInput is the input schema for search-case-law.
type SearchCaseLawInput struct {
	Query            string `json:"query,omitempty" jsonschema:"text fragment matched against reference, title, summary and keywords"`
	RegimeID         string `json:"regime_id,omitempty" jsonschema:"decisions concerning this regime"`
	Court            string `json:"court,omitempty" jsonschema:"part of the court name"`
	DelistingRelated *bool  `json:"delisting_related,omitempty" jsonschema:"only decisions with this delisting flag"`
	Limit            any    `json:"limit,omitempty" jsonschema:"maximum number of decisions (default 10, max 50)"`
}

// SearchCaseLawOutput is the output schema for search-case-law.
type SearchCaseLawOutput struct {
	Cases []domain.CaseLawDetail `json:"cases"`
	Count int                    `json:"count"`
}

func (s *Server) handleSearchCaseLaw(ctx context.Context, input SearchCaseLawInput) (SearchCaseLawOutput, error) {
	cases, err := s.ports.CaseLaw.Search(ctx, domain.CaseLawQuery{
		Query:            input.Query,
		RegimeID:         input.RegimeID,
		Court:            input.Court,
		DelistingRelated: input.DelistingRelated,
		Limit:            domain.ParseLimit(input.Limit),
	})
	if err != nil {
		return SearchCaseLawOutput{}, err
	}
	if cases == nil {
		cases = []domain.CaseLawDetail{}
	}
	return SearchCaseLawOutput{Cases: cases, Count: len(cases)}, nil
}

// ListSourcesInput is the input schema for list-sources.
type ListSourcesInput struct {
	SourceID       string `json:"source_id,omitempty" jsonschema:"also return a detail record for this source"`
	IncludeSamples bool   `json:"include_samples,omitempty" jsonschema:"attach up to 5 sample provisions to the detail"`
}

func (s *Server) handleListSources(ctx context.Context, input ListSourcesInput) (domain.SourceListing, error) {
	listing, err := s.ports.Sources.List(ctx, domain.SourceQuery{
		SourceID:       input.SourceID,
		IncludeSamples: input.IncludeSamples,
	})
	if err != nil {
		return domain.SourceListing{}, err
	}
	if listing == nil {
		return domain.SourceListing{Sources: []domain.SourceSummary{}}, nil
	}
	return *listing, nil
}

// AboutInput is the input schema for about. It takes no arguments.
type AboutInput struct{}

func (s *Server) handleAbout(ctx context.Context, _ AboutInput) (domain.About, error) {
	about, err := s.ports.Sources.About(ctx)
	if err != nil {
		return domain.About{}, err
	}
	if about == nil {
		return domain.About{}, nil
	}
	return *about, nil
}

// CheckFreshnessInput is the input schema for check-freshness.
type CheckFreshnessInput struct {
	AsOf       string `json:"as_of,omitempty" jsonschema:"reference date YYYY-MM-DD (default today)"`
	MaxAgeDays int    `json:"max_age_days,omitempty" jsonschema:"age in days for is_within_max_age (default 45)"`
	Status     string `json:"status,omitempty" jsonschema:"only sources with this declared status (fresh, warning, stale, planned)"`
}

func (s *Server) handleCheckFreshness(ctx context.Context, input CheckFreshnessInput) (domain.FreshnessReport, error) {
	report, err := s.ports.Freshness.Check(ctx, domain.FreshnessQuery{
		AsOf:       input.AsOf,
		MaxAgeDays: input.MaxAgeDays,
		Status:     input.Status,
	})
	if err != nil {
		return domain.FreshnessReport{}, err
	}
	if report == nil {
		return domain.FreshnessReport{}, nil
	}
	return *report, nil
}
