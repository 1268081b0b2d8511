package services

import (
	"context"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/custodia-labs/sanctions-law/internal/core/domain"
	"github.com/custodia-labs/sanctions-law/internal/core/ports/driven"
	"github.com/custodia-labs/sanctions-law/internal/core/ports/driving"
	"github.com/custodia-labs/sanctions-law/internal/logger"
)

// Ensure FreshnessService implements the interface.
var _ driving.FreshnessService = (*FreshnessService)(nil)

// FreshnessService evaluates how current each source's data is.
type FreshnessService struct {
	store      driven.FreshnessStore
	maxAgeDays int
	now        func() time.Time
}

// NewFreshnessService creates a new freshness service. maxAgeDays is the
// default cut-off for is_within_max_age; non-positive values use
// domain.DefaultMaxAgeDays.
func NewFreshnessService(store driven.FreshnessStore, maxAgeDays int) *FreshnessService {
	if maxAgeDays <= 0 {
		maxAgeDays = domain.DefaultMaxAgeDays
	}
	return &FreshnessService{store: store, maxAgeDays: maxAgeDays, now: time.Now}
}

// SetClock replaces the clock used when no as-of date is given.
func (s *FreshnessService) SetClock(now func() time.Time) {
	s.now = now
}

// Check evaluates every stored freshness row as of q.AsOf. The status
// filter applies to the declared status; totals count evaluated statuses
// over the filtered entries.
func (s *FreshnessService) Check(ctx context.Context, q domain.FreshnessQuery) (*domain.FreshnessReport, error) {
	logger.Section("Freshness Check")

	asOf := strings.TrimSpace(q.AsOf)
	if asOf == "" {
		asOf = s.now().UTC().Format(domain.DateLayout)
	} else if _, ok := domain.ParseDate(asOf); !ok {
		return nil, fmt.Errorf("%w: as_of must be a YYYY-MM-DD date, got %q", domain.ErrInvalidInput, asOf)
	}

	maxAge := q.MaxAgeDays
	if maxAge <= 0 {
		maxAge = s.maxAgeDays
	}
	status := domain.FreshnessStatus(strings.ToLower(strings.TrimSpace(q.Status)))

	logger.Debug("As of %s, max age %d days, status filter %q", asOf, maxAge, status)

	records, err := s.store.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list freshness: %w", err)
	}

	report := &domain.FreshnessReport{
		AsOf:       asOf,
		MaxAgeDays: maxAge,
		Entries:    []domain.FreshnessEntry{},
	}

	for _, r := range records {
		if status != "" && r.Status != status {
			continue
		}

		eval := domain.EvaluateFreshness(r.LastUpdated, r.CheckFrequency, asOf)
		entry := domain.FreshnessEntry{
			SourceID:        r.SourceID,
			SourceName:      r.SourceName,
			LastChecked:     r.LastChecked,
			LastUpdated:     r.LastUpdated,
			CheckFrequency:  r.CheckFrequency,
			DeclaredStatus:  r.Status,
			EvaluatedStatus: eval.Status,
			ThresholdDays:   eval.ThresholdDays,
			Notes:           r.Notes,
		}
		if !math.IsInf(eval.AgeDays, 0) {
			age := int(eval.AgeDays)
			entry.AgeDays = &age
			entry.IsWithinMaxAge = age <= maxAge
		}

		report.Entries = append(report.Entries, entry)
		report.Totals.Add(eval.Status)
	}

	logger.Debug("Freshness: %d fresh, %d warning, %d stale, %d planned",
		report.Totals.Fresh, report.Totals.Warning, report.Totals.Stale, report.Totals.Planned)
	return report, nil
}
