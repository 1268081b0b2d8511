package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/sanctions-law/internal/core/domain"
)

var (
	sourcesSamples bool
	sourcesJSON    bool
)

var sourcesCmd = &cobra.Command{
	Use:   "sources [source-id]",
	Short: "List sources with record counts and freshness",
	Long: `Summarises every source ordered by priority tier. Given a source id,
also prints its detail record; --samples adds recent provisions.`,
	Annotations: map[string]string{needsAnnotation: needsReadDB},
	Args:        cobra.MaximumNArgs(1),
	RunE:        runSources,
}

func init() {
	sourcesCmd.Flags().BoolVar(&sourcesSamples, "samples", false, "include sample provisions in the detail")
	sourcesCmd.Flags().BoolVar(&sourcesJSON, "json", false, "output as JSON")
	rootCmd.AddCommand(sourcesCmd)
}

func runSources(cmd *cobra.Command, args []string) error {
	if sourceService == nil {
		return errors.New("source service not configured")
	}

	q := domain.SourceQuery{IncludeSamples: sourcesSamples}
	if len(args) == 1 {
		q.SourceID = args[0]
	}

	listing, err := sourceService.List(cmd.Context(), q)
	if err != nil {
		return fmt.Errorf("listing sources: %w", err)
	}

	if wantJSON(cmd, sourcesJSON) {
		return printJSON(cmd, listing)
	}

	t := newTable("Source", "Tier", "Provisions", "Regimes", "Case law", "Freshness", "Last updated")
	for i := range listing.Sources {
		s := &listing.Sources[i]
		t.Row(
			s.ID,
			orDash(string(s.PriorityTier)),
			fmt.Sprint(s.ProvisionCount),
			fmt.Sprint(s.RegimeCount),
			fmt.Sprint(s.CaseLawCount),
			renderStatus(s.FreshnessStatus),
			orDash(s.LastUpdated),
		)
	}
	cmd.Println(t.Render())

	if q.SourceID == "" {
		return nil
	}
	if listing.Detail == nil {
		return fmt.Errorf("source %q: %w", q.SourceID, domain.ErrNotFound)
	}
	outputSourceDetail(cmd, listing.Detail)
	return nil
}

func outputSourceDetail(cmd *cobra.Command, d *domain.SourceDetail) {
	cmd.Println()
	cmd.Println(titleStyle.Render(d.Name))
	cmd.Printf("  ID: %s\n", d.ID)
	cmd.Printf("  Authority: %s\n", orDash(d.Authority))
	cmd.Printf("  Portal: %s\n", orDash(d.OfficialPortal))
	cmd.Printf("  Update frequency: %s\n", orDash(string(d.UpdateFrequency)))
	cmd.Printf("  Records estimate: %s\n", orDash(d.RecordsEstimate))
	cmd.Printf("  Coverage: %s\n", orDash(d.CoverageNote))
	cmd.Printf("  Last verified: %s\n", orDash(d.LastVerified))

	if len(d.SampleItems) == 0 {
		return
	}
	cmd.Println()
	cmd.Println("  Samples:")
	for _, item := range d.SampleItems {
		cmd.Printf("    - %s %s\n", item.ItemID, mutedStyle.Render(item.Title))
	}
}
