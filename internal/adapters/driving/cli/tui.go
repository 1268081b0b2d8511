package cli

import (
	"fmt"
	"os"
	"runtime/debug"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/sanctions-law/internal/adapters/driving/tui"
)

// runApp starts the program. Tests replace it to avoid taking the terminal.
var runApp = (*tui.App).Run

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Browse provisions and sources interactively",
	Long: `Launch the interactive terminal browser over the built database.

Search provisions by free text, open one to read its full text and related
provisions, or switch to the source list for counts and freshness.

Controls:
  Enter    - Search / Open
  ↑/k, ↓/j - Navigate
  /        - New search
  Tab      - Sources
  Esc      - Back
  ?        - Help
  q        - Quit`,
	Annotations: map[string]string{needsAnnotation: needsReadDB},
	Args:        cobra.NoArgs,
	RunE:        runTUI,
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(cmd *cobra.Command, _ []string) (err error) {
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "Stack trace:\n%s\n", debug.Stack())
			err = fmt.Errorf("panic in TUI: %v", r)
		}
	}()

	app, err := tui.NewApp(&tui.Ports{
		Provisions: provisionService,
		Sources:    sourceService,
	})
	if err != nil {
		return fmt.Errorf("failed to create TUI: %w", err)
	}
	app.WithContext(cmd.Context())

	if err := runApp(app); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}
	return nil
}
