// Package cli provides the cobra command tree for the sanctions law reference.
// The root command is the composition root: it loads configuration, opens
// the database in the mode a command asks for and wires the core services.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/sanctions-law/internal/adapters/driven/config/file"
	"github.com/custodia-labs/sanctions-law/internal/adapters/driven/seedfile"
	"github.com/custodia-labs/sanctions-law/internal/adapters/driven/storage/sqlite"
	"github.com/custodia-labs/sanctions-law/internal/adapters/driving/mcp"
	"github.com/custodia-labs/sanctions-law/internal/core/domain"
	"github.com/custodia-labs/sanctions-law/internal/core/ports/driving"
	"github.com/custodia-labs/sanctions-law/internal/core/services"
	"github.com/custodia-labs/sanctions-law/internal/logger"
)

// version is set at build time via SetVersion.
var version = "dev"

// Persistent flags.
var (
	dbPath     string
	configPath string
	verbose    bool
)

// Annotation key declaring what a command needs from the composition root.
const needsAnnotation = "needs"

// Values of needsAnnotation.
const (
	needsConfig  = "config"
	needsReadDB  = "read"
	needsWriteDB = "write"
)

// State wired by setup and released by teardown.
var (
	settings *domain.Settings
	store    *sqlite.Store

	settingsService       driving.SettingsService
	seedService           driving.SeedService
	provisionService      driving.ProvisionService
	regimeService         driving.RegimeService
	executiveOrderService driving.ExecutiveOrderService
	cyberService          driving.CyberService
	exportControlService  driving.ExportControlService
	caseLawService        driving.CaseLawService
	sourceService         driving.SourceService
	freshnessService      driving.FreshnessService
	coverageService       driving.CoverageService
)

var rootCmd = &cobra.Command{
	Use:   "sanctions-law",
	Short: "Sanctions law reference server",
	Long: `A read-only reference of sanctions law: provisions, executive orders,
regimes, delisting procedures, export controls and case law.

Build the database once from a seed file, then serve it to MCP clients
over stdio or HTTP, or query it directly from the command line.`,
	SilenceUsage:       true,
	PersistentPreRunE:  setup,
	PersistentPostRunE: teardown,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "", "database file (default ~/.sanctions-law/data/sanctions.db)")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "config file (default ~/.sanctions-law/config.toml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging on stderr")
}

// Execute runs the root command and releases the database afterwards.
func Execute() error {
	err := rootCmd.Execute()
	// cobra skips PersistentPostRunE when a command fails.
	if cerr := teardown(rootCmd, nil); err == nil {
		err = cerr
	}
	return err
}

// SetVersion sets the version reported by the version command and the
// MCP server.
func SetVersion(v string) {
	version = v
}

// setup wires whatever the command declares it needs.
func setup(cmd *cobra.Command, _ []string) error {
	logger.SetVerbose(verbose)

	needs := cmd.Annotations[needsAnnotation]
	if needs == "" {
		return nil
	}

	if err := loadSettings(); err != nil {
		return err
	}

	switch needs {
	case needsReadDB:
		return openForQueries()
	case needsWriteDB:
		return openForBuild()
	}
	return nil
}

// teardown closes the database and forgets every wired service.
func teardown(_ *cobra.Command, _ []string) error {
	var err error
	if store != nil {
		if cerr := store.Close(); cerr != nil {
			err = fmt.Errorf("closing database: %w", cerr)
		}
	}

	settings = nil
	store = nil
	settingsService = nil
	seedService = nil
	provisionService = nil
	regimeService = nil
	executiveOrderService = nil
	cyberService = nil
	exportControlService = nil
	caseLawService = nil
	sourceService = nil
	freshnessService = nil
	coverageService = nil
	return err
}

func loadSettings() error {
	var (
		cfg *file.ConfigStore
		err error
	)
	if configPath != "" {
		cfg, err = file.NewConfigStoreAt(configPath)
	} else {
		cfg, err = file.NewConfigStore("")
	}
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	settingsService = services.NewSettingsService(cfg)
	if settings, err = settingsService.Get(); err != nil {
		return fmt.Errorf("reading settings: %w", err)
	}
	logger.Debug("Config: %s", cfg.Path())
	return nil
}

// databasePath resolves the database file: flag, then config, then default.
func databasePath() string {
	if dbPath != "" {
		return dbPath
	}
	return settings.Database.Path
}

func openForQueries() error {
	s, err := sqlite.OpenReadOnly(databasePath())
	if err != nil {
		return fmt.Errorf("opening database (run 'sanctions-law build' first): %w", err)
	}
	store = s
	logger.Debug("Database: %s (read-only)", s.Path())

	provisions := s.ProvisionStore()
	regimes := s.RegimeStore()
	orders := s.ExecutiveOrderStore()
	sources := s.SourceStore()

	provisionService = services.NewProvisionService(provisions)
	regimeService = services.NewRegimeService(regimes, provisions)
	executiveOrderService = services.NewExecutiveOrderService(orders, provisions)
	cyberService = services.NewCyberService(regimes, orders, provisions)
	exportControlService = services.NewExportControlService(s.ExportControlStore())
	caseLawService = services.NewCaseLawService(s.CaseLawStore())
	sourceService = services.NewSourceService(sources, s, version)
	freshnessService = services.NewFreshnessService(s.FreshnessStore(), settings.Freshness.MaxAgeDays)
	coverageService = services.NewCoverageService(sources)
	return nil
}

func openForBuild() error {
	loader, err := seedfile.NewLoader()
	if err != nil {
		return err
	}

	s, err := sqlite.NewStore(databasePath())
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	store = s
	logger.Debug("Database: %s", s.Path())

	seedService = services.NewSeedService(loader, s, s)
	return nil
}

// queryPorts collects the wired query services for the MCP server.
func queryPorts() *mcp.Ports {
	return &mcp.Ports{
		Provisions:      provisionService,
		Regimes:         regimeService,
		ExecutiveOrders: executiveOrderService,
		Cyber:           cyberService,
		ExportControls:  exportControlService,
		CaseLaw:         caseLawService,
		Sources:         sourceService,
		Freshness:       freshnessService,
	}
}
