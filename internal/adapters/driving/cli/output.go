package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/custodia-labs/sanctions-law/internal/core/domain"
)

// Palette shared by every table.
var (
	colourPrimary = lipgloss.Color("#7C3AED") // Purple
	colourMuted   = lipgloss.Color("#6C7086") // Medium gray
	colourSuccess = lipgloss.Color("#A6E3A1") // Green
	colourWarning = lipgloss.Color("#F9E2AF") // Yellow
	colourError   = lipgloss.Color("#F38BA8") // Red
	colourBorder  = lipgloss.Color("#45475A") // Border gray
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(colourPrimary)
	headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	mutedStyle  = lipgloss.NewStyle().Foreground(colourMuted)
)

// wantJSON reports whether output should be JSON: when asked for, or when
// stdout is redirected away from a terminal.
func wantJSON(cmd *cobra.Command, forced bool) bool {
	if forced {
		return true
	}
	f, ok := cmd.OutOrStdout().(*os.File)
	return ok && !term.IsTerminal(int(f.Fd()))
}

func printJSON(cmd *cobra.Command, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal output: %w", err)
	}
	cmd.Println(string(data))
	return nil
}

// newTable returns a bordered table with a bold header row.
func newTable(headers ...string) *table.Table {
	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colourBorder)).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		}).
		Headers(headers...)
}

// renderStatus colours a freshness status.
func renderStatus(status domain.FreshnessStatus) string {
	style := lipgloss.NewStyle()
	switch status {
	case domain.FreshnessFresh:
		style = style.Foreground(colourSuccess)
	case domain.FreshnessWarning:
		style = style.Foreground(colourWarning)
	case domain.FreshnessStale:
		style = style.Foreground(colourError)
	default:
		style = style.Foreground(colourMuted)
	}
	return style.Render(string(status))
}

// orDash renders empty strings as a dash.
func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
