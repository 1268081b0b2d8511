package domain

import (
	"math"
	"strings"
	"time"
)

// DateLayout is the ISO date format used for every stored date.
const DateLayout = "2006-01-02"

// DefaultMaxAgeDays is the default cut-off for the auxiliary
// is_within_max_age flag of a freshness report.
const DefaultMaxAgeDays = 45

// FreshnessStatus classifies how current a source's data is.
type FreshnessStatus string

// Freshness statuses, from most to least current.
const (
	FreshnessFresh   FreshnessStatus = "fresh"
	FreshnessWarning FreshnessStatus = "warning"
	FreshnessStale   FreshnessStatus = "stale"

	// FreshnessPlanned marks a source whose last update date is unknown,
	// typically one that has not been ingested yet.
	FreshnessPlanned FreshnessStatus = "planned"
)

// SourceFreshness is the stored freshness row for one source.
type SourceFreshness struct {
	SourceID       string          `json:"source_id"`
	LastChecked    string          `json:"last_checked"`
	LastUpdated    string          `json:"last_updated"`
	CheckFrequency UpdateFrequency `json:"check_frequency"`
	Status         FreshnessStatus `json:"status"`
	Notes          string          `json:"notes,omitempty"`
}

// FreshnessRecord is a stored freshness row joined with its source name.
type FreshnessRecord struct {
	SourceFreshness
	SourceName string
}

// FrequencyThreshold returns the number of days after which data checked at
// the given frequency stops being fresh. Unknown frequencies use 30.
func FrequencyThreshold(f UpdateFrequency) int {
	switch UpdateFrequency(strings.ToLower(strings.TrimSpace(string(f)))) {
	case FrequencyDaily:
		return 30
	case FrequencyWeekly:
		return 60
	case FrequencyMonthly:
		return 120
	case FrequencyOnChange:
		return 90
	default:
		return 30
	}
}

// ParseDate parses an ISO date (YYYY-MM-DD) or an RFC 3339 timestamp.
func ParseDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	if t, err := time.Parse(DateLayout, s); err == nil {
		return t, true
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t.UTC(), true
	}
	return time.Time{}, false
}

// DaysBetween returns the whole days elapsed from from to to, floored at
// zero. Either date failing to parse yields +Inf.
func DaysBetween(from, to string) float64 {
	start, ok := ParseDate(from)
	if !ok {
		return math.Inf(1)
	}
	end, ok := ParseDate(to)
	if !ok {
		return math.Inf(1)
	}
	days := math.Floor(end.Sub(start).Hours() / 24)
	if days < 0 {
		return 0
	}
	return days
}

// FreshnessEvaluation is the outcome of classifying one source.
type FreshnessEvaluation struct {
	// AgeDays is +Inf when the last update date is unknown.
	AgeDays       float64
	ThresholdDays int
	Status        FreshnessStatus
}

// EvaluateFreshness classifies data last updated on lastUpdated, checked at
// frequency, as seen on asOf:
//
//	age unknown              -> planned
//	age <= threshold         -> fresh
//	age <= 2 * threshold     -> warning
//	otherwise                -> stale
func EvaluateFreshness(lastUpdated string, frequency UpdateFrequency, asOf string) FreshnessEvaluation {
	age := DaysBetween(lastUpdated, asOf)
	threshold := FrequencyThreshold(frequency)

	eval := FreshnessEvaluation{AgeDays: age, ThresholdDays: threshold}
	switch {
	case math.IsInf(age, 0) || math.IsNaN(age):
		eval.Status = FreshnessPlanned
	case age <= float64(threshold):
		eval.Status = FreshnessFresh
	case age <= float64(2*threshold):
		eval.Status = FreshnessWarning
	default:
		eval.Status = FreshnessStale
	}
	return eval
}

// FreshnessQuery filters a freshness report.
type FreshnessQuery struct {
	// AsOf is the reference date (YYYY-MM-DD). Empty means today.
	AsOf string

	// MaxAgeDays drives IsWithinMaxAge only. Zero means DefaultMaxAgeDays.
	MaxAgeDays int

	// Status restricts entries to one declared status.
	Status string
}

// FreshnessEntry is one evaluated source in a freshness report.
type FreshnessEntry struct {
	SourceID        string          `json:"source_id"`
	SourceName      string          `json:"source_name"`
	LastChecked     string          `json:"last_checked"`
	LastUpdated     string          `json:"last_updated"`
	CheckFrequency  UpdateFrequency `json:"check_frequency"`
	DeclaredStatus  FreshnessStatus `json:"declared_status"`
	EvaluatedStatus FreshnessStatus `json:"evaluated_status"`
	AgeDays         *int            `json:"age_days"`
	ThresholdDays   int             `json:"threshold_days"`
	IsWithinMaxAge  bool            `json:"is_within_max_age"`
	Notes           string          `json:"notes,omitempty"`
}

// FreshnessTotals counts entries per evaluated status.
type FreshnessTotals struct {
	Fresh   int `json:"fresh"`
	Warning int `json:"warning"`
	Stale   int `json:"stale"`
	Planned int `json:"planned"`
	Total   int `json:"total"`
}

// Add counts one entry with the given status.
func (t *FreshnessTotals) Add(status FreshnessStatus) {
	switch status {
	case FreshnessFresh:
		t.Fresh++
	case FreshnessWarning:
		t.Warning++
	case FreshnessStale:
		t.Stale++
	case FreshnessPlanned:
		t.Planned++
	}
	t.Total++
}

// FreshnessReport is the result of a freshness check.
type FreshnessReport struct {
	AsOf       string           `json:"as_of"`
	MaxAgeDays int              `json:"max_age_days"`
	Entries    []FreshnessEntry `json:"entries"`
	Totals     FreshnessTotals  `json:"totals"`
}
