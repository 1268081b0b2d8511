package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var coverageJSON bool

var coverageCmd = &cobra.Command{
	Use:   "coverage",
	Short: "Compare stored records with each source's estimate",
	Long: `Reports, per source, the records held (provisions, executive orders,
export controls and case law) against the number parsed from the source's
records estimate, with a completion percentage capped at 100.`,
	Annotations: map[string]string{needsAnnotation: needsReadDB},
	Args:        cobra.NoArgs,
	RunE:        runCoverage,
}

func init() {
	coverageCmd.Flags().BoolVar(&coverageJSON, "json", false, "output the report as JSON")
	rootCmd.AddCommand(coverageCmd)
}

func runCoverage(cmd *cobra.Command, _ []string) error {
	if coverageService == nil {
		return errors.New("coverage service not configured")
	}

	report, err := coverageService.Report(cmd.Context())
	if err != nil {
		return fmt.Errorf("coverage report failed: %w", err)
	}

	if wantJSON(cmd, coverageJSON) {
		return printJSON(cmd, report)
	}

	t := newTable("Source", "Tier", "Estimate", "Expected", "Actual", "Completion")
	for i := range report.Entries {
		e := &report.Entries[i]
		t.Row(
			e.SourceID,
			orDash(string(e.PriorityTier)),
			orDash(e.Estimate),
			fmt.Sprint(e.Expected),
			fmt.Sprint(e.Actual),
			fmt.Sprintf("%.1f%%", e.CompletionPct),
		)
	}
	cmd.Println(t.Render())
	cmd.Printf("Overall: %d of %d expected records (%.1f%%)\n", report.Actual, report.Expected, report.CompletionPct)
	return nil
}
