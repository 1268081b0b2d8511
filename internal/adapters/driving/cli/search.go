package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/sanctions-law/internal/core/domain"
)

var (
	searchLimit         int
	searchSources       []string
	searchJurisdictions []string
	searchRegime        string
	searchTopics        []string
	searchJSON          bool
)

var searchCmd = &cobra.Command{
	Use:   "search [query]",
	Short: "Search sanctions provisions",
	Long: `Performs a full-text search over provision titles and text.
Results are ranked by BM25 relevance, best match first.`,
	Annotations: map[string]string{needsAnnotation: needsReadDB},
	Args:        cobra.ExactArgs(1),
	RunE:        runSearch,
}

func init() {
	searchCmd.Flags().IntVarP(&searchLimit, "limit", "n", 10, "maximum number of results")
	searchCmd.Flags().StringSliceVar(&searchSources, "source", nil, "restrict to these source ids")
	searchCmd.Flags().StringSliceVar(&searchJurisdictions, "jurisdiction", nil, "restrict to regimes in these jurisdictions")
	searchCmd.Flags().StringVar(&searchRegime, "regime", "", "restrict to one regime id")
	searchCmd.Flags().StringSliceVar(&searchTopics, "topic", nil, "restrict to provisions tagged with these topics")
	searchCmd.Flags().BoolVar(&searchJSON, "json", false, "output results as JSON")
	rootCmd.AddCommand(searchCmd)
}

func runSearch(cmd *cobra.Command, args []string) error {
	if provisionService == nil {
		return errors.New("provision service not configured")
	}

	hits, err := provisionService.Search(cmd.Context(), domain.ProvisionSearch{
		Query:         args[0],
		SourceIDs:     searchSources,
		Jurisdictions: searchJurisdictions,
		RegimeID:      searchRegime,
		Topics:        searchTopics,
		Limit:         searchLimit,
	})
	if err != nil {
		return fmt.Errorf("search failed: %w", err)
	}

	if wantJSON(cmd, searchJSON) {
		if hits == nil {
			hits = []domain.ProvisionHit{}
		}
		return printJSON(cmd, hits)
	}

	return outputSearchTable(cmd, hits)
}

func outputSearchTable(cmd *cobra.Command, hits []domain.ProvisionHit) error {
	if len(hits) == 0 {
		cmd.Println("No results found.")
		return nil
	}

	cmd.Println(titleStyle.Render("Results:"))
	cmd.Println()
	for i := range hits {
		h := &hits[i]
		// Format: [N] Title (source/item)
		cmd.Printf("  [%d] %s (%s/%s)\n", i+1, h.Title, h.SourceID, h.ItemID)

		parts := []string{h.SourceName}
		if h.RegimeName != "" {
			parts = append(parts, h.RegimeName)
		}
		if h.Jurisdiction != "" {
			parts = append(parts, h.Jurisdiction)
		}
		cmd.Printf("      %s\n", mutedStyle.Render(strings.Join(parts, " | ")))
		if h.Snippet != "" {
			cmd.Printf("      %s\n", h.Snippet)
		}
		cmd.Println()
	}
	return nil
}
