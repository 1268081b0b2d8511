// Package mcp provides an MCP (Model Context Protocol) server adapter for the
// sanctions law reference. It exposes the eleven query operations as tools
// and the source catalogue as resources, over stdio or streamable HTTP.
package mcp

import "errors"

// ErrMissingService is returned when a required driving port is not provided.
var ErrMissingService = errors.New("mcp: service is required")
