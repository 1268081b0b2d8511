package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/sanctions-law/internal/core/domain"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage application settings",
	Long: `View and change settings stored in the configuration file.

Command-line flags override the file; the file overrides built-in defaults.`,
	Annotations: map[string]string{needsAnnotation: needsConfig},
	RunE:        runConfigShow,
}

var configShowCmd = &cobra.Command{
	Use:         "show",
	Short:       "Show current settings",
	Annotations: map[string]string{needsAnnotation: needsConfig},
	Args:        cobra.NoArgs,
	RunE:        runConfigShow,
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Change a setting",
	Long: `Change one setting by its dotted key.

Available keys:
  database.path                 - database file used by every command
  freshness.max_age_days        - default cut-off for the within-max-age flag
  server.http_addr              - address used by 'serve --http'
  server.requests_per_second    - per-client HTTP throttle (0 disables)`,
	Annotations: map[string]string{needsAnnotation: needsConfig},
	Args:        cobra.ExactArgs(2),
	RunE:        runConfigSet,
}

func init() {
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSetCmd)
	rootCmd.AddCommand(configCmd)
}

func runConfigShow(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	current, err := settingsService.Get()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	dbDisplay := current.Database.Path
	if dbDisplay == "" {
		dbDisplay = "(default)"
	}

	cmd.Println("Current Settings")
	cmd.Println("================")
	cmd.Println()

	cmd.Println("[Database]")
	cmd.Printf("  Path: %s\n", dbDisplay)
	cmd.Println()

	cmd.Println("[Freshness]")
	cmd.Printf("  Max age days: %d\n", current.Freshness.MaxAgeDays)
	cmd.Println()

	cmd.Println("[Server]")
	cmd.Printf("  HTTP address: %s\n", current.Server.HTTPAddr)
	if current.Server.RequestsPerSecond > 0 {
		cmd.Printf("  Requests per second: %g\n", current.Server.RequestsPerSecond)
	} else {
		cmd.Println("  Requests per second: unlimited")
	}
	return nil
}

func runConfigSet(cmd *cobra.Command, args []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	key, value := args[0], args[1]
	if err := settingsService.Set(key, value); err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return err
		}
		return fmt.Errorf("failed to save setting: %w", err)
	}

	cmd.Printf("Set %s = %s\n", key, value)
	return nil
}
