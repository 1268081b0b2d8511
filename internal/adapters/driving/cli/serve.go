package cli

import (
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/cobra"

	"github.com/custodia-labs/sanctions-law/internal/adapters/driving/httpapi"
	"github.com/custodia-labs/sanctions-law/internal/adapters/driving/mcp"
	"github.com/custodia-labs/sanctions-law/internal/logger"
)

// configuredAddr is the --http value used when the flag is given without an
// address; it selects server.http_addr from the config.
const configuredAddr = "configured"

var (
	serveHTTP    string
	serveOrigins []string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the MCP server",
	Long: `Start the Model Context Protocol server over the built database.

By default, the server communicates over stdio using JSON-RPC and can be
used with Claude Desktop and other MCP-compatible AI assistants.

Use --http to serve streamable HTTP instead. The HTTP server also exposes
/health and Prometheus /metrics, and throttles /mcp per client according to
server.requests_per_second.

Examples:
  # Stdio mode (default)
  sanctions-law serve

  # HTTP mode on server.http_addr from the config
  sanctions-law serve --http

  # HTTP mode on an explicit address
  sanctions-law serve --http 127.0.0.1:9090

Claude Desktop configuration (claude_desktop_config.json):
  {
    "mcpServers": {
      "sanctions-law": {
        "command": "/path/to/sanctions-law",
        "args": ["serve"]
      }
    }
  }`,
	Annotations: map[string]string{needsAnnotation: needsReadDB},
	Args:        cobra.NoArgs,
	RunE:        runServe,
}

func init() {
	serveCmd.Flags().StringVar(&serveHTTP, "http", "", "serve over HTTP on this address instead of stdio")
	serveCmd.Flags().Lookup("http").NoOptDefVal = configuredAddr
	serveCmd.Flags().StringSliceVar(&serveOrigins, "allow-origin", nil, "CORS origins allowed over HTTP (default any)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	if store == nil {
		return errors.New("database not opened")
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	server, err := mcp.NewServer(queryPorts(), version, mcp.NewMetrics(reg))
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if serveHTTP == "" {
		logger.Info("Serving MCP over stdio")
		return server.Run(ctx)
	}

	addr := serveHTTP
	if addr == configuredAddr {
		addr = settings.Server.HTTPAddr
	}

	var limiter *httpapi.RateLimiter
	if rps := settings.Server.RequestsPerSecond; rps > 0 {
		limiter = httpapi.NewRateLimiter(rps, 0)
	}

	router := httpapi.NewRouter(httpapi.RouterConfig{
		MCP:            server.Handler(),
		Health:         store,
		Gatherer:       reg,
		Limiter:        limiter,
		AllowedOrigins: serveOrigins,
	})

	fmt.Fprintf(cmd.ErrOrStderr(), "MCP server listening on http://%s%s\n", addr, httpapi.PathMCP)

	return httpapi.NewServer(addr, router).Run(ctx)
}
