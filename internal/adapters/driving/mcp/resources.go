package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/sanctions-law/internal/core/domain"
)

const (
	// uriScheme is the custom URI scheme for sanctions law resources.
	uriScheme = "sanctions-law://"

	mimeJSON = "application/json"
)

// registerResources registers all resource handlers with the MCP server.
func (s *Server) registerResources() {
	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "sources",
		Name:        "sources",
		Description: "Summary of every source with record counts and freshness",
		MIMEType:    mimeJSON,
	}, s.handleSourcesResource)

	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "about",
		Name:        "about",
		Description: "Dataset description, counts and disclaimer",
		MIMEType:    mimeJSON,
	}, s.handleAboutResource)

	s.server.AddResourceTemplate(&mcp.ResourceTemplate{
		URITemplate: uriScheme + "sources/{sourceId}",
		Name:        "source-detail",
		Description: "Detail of one source with sample provisions",
		MIMEType:    mimeJSON,
	}, s.handleSourceDetailResource)
}

// handleSourcesResource returns the summary of every source.
func (s *Server) handleSourcesResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	listing, err := s.ports.Sources.List(ctx, domain.SourceQuery{})
	if err != nil {
		return nil, fmt.Errorf("listing sources: %w", err)
	}
	sources := []domain.SourceSummary{}
	if listing != nil && listing.Sources != nil {
		sources = listing.Sources
	}
	return jsonResource(req.Params.URI, sources)
}

// handleAboutResource returns the dataset metadata summary.
func (s *Server) handleAboutResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	about, err := s.ports.Sources.About(ctx)
	if err != nil {
		return nil, fmt.Errorf("building about: %w", err)
	}
	return jsonResource(req.Params.URI, about)
}

// handleSourceDetailResource returns one source with sample provisions.
func (s *Server) handleSourceDetailResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	// Extract sourceId from URI: sanctions-law://sources/{sourceId}
	sourceID := extractSourceID(req.Params.URI)
	if sourceID == "" {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	listing, err := s.ports.Sources.List(ctx, domain.SourceQuery{
		SourceID:       sourceID,
		IncludeSamples: true,
	})
	if err != nil {
		return nil, fmt.Errorf("getting source: %w", err)
	}
	if listing == nil || listing.Detail == nil {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}
	return jsonResource(req.Params.URI, listing.Detail)
}

// jsonResource renders v as the single JSON content of a resource.
func jsonResource(uri string, v any) (*mcp.ReadResourceResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling resource: %w", err)
	}
	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      uri,
			MIMEType: mimeJSON,
			Text:     string(data),
		}},
	}, nil
}

// extractSourceID extracts the source ID from a URI like sanctions-law://sources/{sourceId}.
func extractSourceID(uri string) string {
	const prefix = uriScheme + "sources/"

	if !strings.HasPrefix(uri, prefix) {
		return ""
	}

	id := strings.TrimPrefix(uri, prefix)
	if strings.Contains(id, "/") {
		return ""
	}
	return id
}
