package domain

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFrequencyThreshold(t *testing.T) {
	tests := []struct {
		frequency UpdateFrequency
		expected  int
	}{
		{FrequencyDaily, 30},
		{FrequencyWeekly, 60},
		{FrequencyMonthly, 120},
		{FrequencyOnChange, 90},
		{" Weekly ", 60},
		{"quarterly", 30},
		{"", 30},
	}

	for _, tt := range tests {
		t.Run(string(tt.frequency), func(t *testing.T) {
			assert.Equal(t, tt.expected, FrequencyThreshold(tt.frequency))
		})
	}
}

func TestDaysBetween(t *testing.T) {
	tests := []struct {
		name     string
		from     string
		to       string
		expected float64
	}{
		{"same day", "2026-10-01", "2026-10-01", 0},
		{"ten days", "2026-09-21", "2026-10-01", 10},
		{"across leap day", "2024-02-28", "2024-03-01", 2},
		{"future date floors at zero", "2026-10-05", "2026-10-01", 0},
		{"timestamp floors partial days", "2026-09-30T18:00:00Z", "2026-10-01", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, DaysBetween(tt.from, tt.to))
		})
	}
}

func TestDaysBetween_InvalidDates(t *testing.T) {
	assert.True(t, math.IsInf(DaysBetween("pending", "2026-10-01"), 1))
	assert.True(t, math.IsInf(DaysBetween("2026-10-01", ""), 1))
	assert.True(t, math.IsInf(DaysBetween("2026-13-45", "2026-10-01"), 1))
}

func TestEvaluateFreshness(t *testing.T) {
	const asOf = "2026-10-01"

	tests := []struct {
		name        string
		lastUpdated string
		frequency   UpdateFrequency
		status      FreshnessStatus
		age         float64
	}{
		{"10 days daily is fresh", "2026-09-21", FrequencyDaily, FreshnessFresh, 10},
		{"30 days daily is still fresh", "2026-09-01", FrequencyDaily, FreshnessFresh, 30},
		{"45 days daily is warning", "2026-08-17", FrequencyDaily, FreshnessWarning, 45},
		{"60 days daily is warning", "2026-08-02", FrequencyDaily, FreshnessWarning, 60},
		{"100 days daily is stale", "2026-06-23", FrequencyDaily, FreshnessStale, 100},
		{"45 days weekly is fresh", "2026-08-17", FrequencyWeekly, FreshnessFresh, 45},
		{"100 days monthly is fresh", "2026-06-23", FrequencyMonthly, FreshnessFresh, 100},
		{"100 days on_change is warning", "2026-06-23", FrequencyOnChange, FreshnessWarning, 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			eval := EvaluateFreshness(tt.lastUpdated, tt.frequency, asOf)
			assert.Equal(t, tt.status, eval.Status)
			assert.Equal(t, tt.age, eval.AgeDays)
			assert.Equal(t, FrequencyThreshold(tt.frequency), eval.ThresholdDays)
		})
	}
}

func TestEvaluateFreshness_UnparseableIsPlanned(t *testing.T) {
	eval := EvaluateFreshness("not-yet-ingested", FrequencyDaily, "2026-10-01")

	assert.Equal(t, FreshnessPlanned, eval.Status)
	assert.True(t, math.IsInf(eval.AgeDays, 1))
}

func TestFreshnessTotals_Add(t *testing.T) {
	var totals FreshnessTotals
	for _, s := range []FreshnessStatus{FreshnessFresh, FreshnessFresh, FreshnessWarning, FreshnessStale, FreshnessPlanned} {
		totals.Add(s)
	}

	assert.Equal(t, FreshnessTotals{Fresh: 2, Warning: 1, Stale: 1, Planned: 1, Total: 5}, totals)
}
