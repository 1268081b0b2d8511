// Package httpapi serves the MCP endpoint over HTTP together with health
// and metrics endpoints. It holds no query logic of its own.
package httpapi
