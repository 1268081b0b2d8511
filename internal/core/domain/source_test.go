package domain

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPriorityTier_Rank(t *testing.T) {
	tiers := []PriorityTier{"experimental", PriorityLow, PriorityCritical, PriorityMedium, PriorityHigh}
	sort.SliceStable(tiers, func(i, j int) bool { return tiers[i].Rank() < tiers[j].Rank() })

	assert.Equal(t, []PriorityTier{PriorityCritical, PriorityHigh, PriorityMedium, PriorityLow, "experimental"}, tiers)
}

func TestPriorityTiers_InRankOrder(t *testing.T) {
	for i, tier := range PriorityTiers {
		assert.Equal(t, i, tier.Rank(), tier)
	}
}

func TestSourceSummary_RecordCount(t *testing.T) {
	s := SourceSummary{ProvisionCount: 4, ExecutiveOrderCount: 2, ExportControlCount: 1, CaseLawCount: 3}
	assert.Equal(t, 10, s.RecordCount())
}
