package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/sanctions-law/internal/core/domain"
	"github.com/custodia-labs/sanctions-law/internal/testfixtures"
)

func TestFreshnessService_Check(t *testing.T) {
	store := newSeededStore(t)
	svc := NewFreshnessService(store.FreshnessStore(), 0)

	report, err := svc.Check(context.Background(), domain.FreshnessQuery{AsOf: testfixtures.AsOf})
	require.NoError(t, err)

	assert.Equal(t, testfixtures.AsOf, report.AsOf)
	assert.Equal(t, domain.DefaultMaxAgeDays, report.MaxAgeDays)
	require.Len(t, report.Entries, testfixtures.FreshnessCount)

	byID := map[string]domain.FreshnessEntry{}
	for _, e := range report.Entries {
		byID[e.SourceID] = e
	}

	tests := []struct {
		source    string
		status    domain.FreshnessStatus
		age       int
		threshold int
		withinMax bool
	}{
		{"UN_SECURITY_COUNCIL", domain.FreshnessFresh, 10, 30, true},
		{"EU_COUNCIL_SANCTIONS", domain.FreshnessFresh, 45, 60, true},
		{"US_OFAC_REGULATIONS", domain.FreshnessWarning, 45, 30, true},
		{"UK_OFSI_REGULATIONS", domain.FreshnessStale, 100, 30, false},
	}
	for _, tt := range tests {
		t.Run(tt.source, func(t *testing.T) {
			e := byID[tt.source]
			assert.Equal(t, tt.status, e.EvaluatedStatus)
			require.NotNil(t, e.AgeDays)
			assert.Equal(t, tt.age, *e.AgeDays)
			assert.Equal(t, tt.threshold, e.ThresholdDays)
			assert.Equal(t, tt.withinMax, e.IsWithinMaxAge)
		})
	}

	planned := byID["INTL_CASE_LAW"]
	assert.Equal(t, domain.FreshnessPlanned, planned.EvaluatedStatus)
	assert.Nil(t, planned.AgeDays)
	assert.False(t, planned.IsWithinMaxAge)

	assert.Equal(t, domain.FreshnessTotals{Fresh: 2, Warning: 1, Stale: 1, Planned: 1, Total: 5}, report.Totals)
}

func TestFreshnessService_Check_MaxAgeOverride(t *testing.T) {
	store := newSeededStore(t)
	svc := NewFreshnessService(store.FreshnessStore(), domain.DefaultMaxAgeDays)

	report, err := svc.Check(context.Background(), domain.FreshnessQuery{AsOf: testfixtures.AsOf, MaxAgeDays: 20})
	require.NoError(t, err)

	within := 0
	for _, e := range report.Entries {
		if e.IsWithinMaxAge {
			within++
		}
	}
	assert.Equal(t, 1, within)
	assert.Equal(t, 2, report.Totals.Fresh, "max age must not change classification")
}

func TestFreshnessService_Check_StatusFilter(t *testing.T) {
	store := newSeededStore(t)
	svc := NewFreshnessService(store.FreshnessStore(), 0)

	report, err := svc.Check(context.Background(), domain.FreshnessQuery{AsOf: testfixtures.AsOf, Status: " Stale "})
	require.NoError(t, err)
	require.Len(t, report.Entries, 1)
	assert.Equal(t, "UK_OFSI_REGULATIONS", report.Entries[0].SourceID)
	assert.Equal(t, domain.FreshnessTotals{Stale: 1, Total: 1}, report.Totals)
}

func TestFreshnessService_Check_DefaultsToToday(t *testing.T) {
	mock := &mockFreshnessStore{records: []domain.FreshnessRecord{{
		SourceFreshness: domain.SourceFreshness{
			SourceID:       "UN_SECURITY_COUNCIL",
			LastUpdated:    "2026-10-08",
			CheckFrequency: domain.FrequencyDaily,
			Status:         domain.FreshnessFresh,
		},
	}}}
	svc := NewFreshnessService(mock, 0)
	svc.SetClock(func() time.Time { return time.Date(2026, 10, 18, 23, 0, 0, 0, time.UTC) })

	report, err := svc.Check(context.Background(), domain.FreshnessQuery{})
	require.NoError(t, err)
	assert.Equal(t, "2026-10-18", report.AsOf)
	require.Len(t, report.Entries, 1)
	assert.Equal(t, 10, *report.Entries[0].AgeDays)
}

func TestFreshnessService_Check_InvalidAsOf(t *testing.T) {
	svc := NewFreshnessService(&mockFreshnessStore{}, 0)

	_, err := svc.Check(context.Background(), domain.FreshnessQuery{AsOf: "yesterday"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestFreshnessService_Check_StorageError(t *testing.T) {
	svc := NewFreshnessService(&mockFreshnessStore{err: errStorage}, 0)

	_, err := svc.Check(context.Background(), domain.FreshnessQuery{AsOf: testfixtures.AsOf})
	assert.ErrorIs(t, err, errStorage)
}
