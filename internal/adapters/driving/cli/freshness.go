package cli

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/sanctions-law/internal/core/domain"
)

var (
	freshnessAsOf   string
	freshnessStatus string
	freshnessMaxAge int
	freshnessJSON   bool
)

var freshnessCmd = &cobra.Command{
	Use:   "freshness",
	Short: "Report how current each source is",
	Long: `Evaluates every source against the threshold for its check frequency:
daily 30 days, weekly 60, monthly 120, on change 90.

A source within its threshold is fresh, within twice the threshold a warning,
and stale beyond that. Sources without a usable update date are planned.`,
	Annotations: map[string]string{needsAnnotation: needsReadDB},
	Args:        cobra.NoArgs,
	RunE:        runFreshness,
}

func init() {
	freshnessCmd.Flags().StringVar(&freshnessAsOf, "as-of", "", "reference date YYYY-MM-DD (default today)")
	freshnessCmd.Flags().StringVar(&freshnessStatus, "status", "", "only sources with this declared status")
	freshnessCmd.Flags().IntVar(&freshnessMaxAge, "max-age", 0, "age in days for the within-max-age column (default from config)")
	freshnessCmd.Flags().BoolVar(&freshnessJSON, "json", false, "output the report as JSON")
	rootCmd.AddCommand(freshnessCmd)
}

func runFreshness(cmd *cobra.Command, _ []string) error {
	if freshnessService == nil {
		return errors.New("freshness service not configured")
	}

	report, err := freshnessService.Check(cmd.Context(), domain.FreshnessQuery{
		AsOf:       freshnessAsOf,
		MaxAgeDays: freshnessMaxAge,
		Status:     freshnessStatus,
	})
	if err != nil {
		return fmt.Errorf("freshness check failed: %w", err)
	}

	if wantJSON(cmd, freshnessJSON) {
		return printJSON(cmd, report)
	}

	cmd.Println(titleStyle.Render(fmt.Sprintf("Freshness as of %s", report.AsOf)))
	if len(report.Entries) == 0 {
		cmd.Println("No sources match.")
		return nil
	}

	t := newTable("Source", "Frequency", "Last updated", "Age", "Threshold", "Declared", "Evaluated",
		fmt.Sprintf("<= %dd", report.MaxAgeDays))
	for i := range report.Entries {
		e := &report.Entries[i]
		age := "n/a"
		if e.AgeDays != nil {
			age = strconv.Itoa(*e.AgeDays)
		}
		within := "no"
		if e.IsWithinMaxAge {
			within = "yes"
		}
		t.Row(
			e.SourceID,
			orDash(string(e.CheckFrequency)),
			orDash(e.LastUpdated),
			age,
			strconv.Itoa(e.ThresholdDays),
			orDash(string(e.DeclaredStatus)),
			renderStatus(e.EvaluatedStatus),
			within,
		)
	}
	cmd.Println(t.Render())

	totals := report.Totals
	cmd.Printf("Total: %d  fresh: %d  warning: %d  stale: %d  planned: %d\n",
		totals.Total, totals.Fresh, totals.Warning, totals.Stale, totals.Planned)
	for i := range report.Entries {
		if note := report.Entries[i].Notes; note != "" {
			cmd.Println(mutedStyle.Render(fmt.Sprintf("  %s: %s", report.Entries[i].SourceID, note)))
		}
	}
	return nil
}
