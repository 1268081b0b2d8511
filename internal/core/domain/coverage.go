package domain

import (
	"math"
	"strings"
	"unicode"
)

// CoverageEntry compares the records held for a source with its estimate.
type CoverageEntry struct {
	SourceID      string       `json:"source_id"`
	SourceName    string       `json:"source_name"`
	PriorityTier  PriorityTier `json:"priority_tier"`
	Estimate      string       `json:"records_estimate"`
	Expected      int          `json:"expected"`
	Actual        int          `json:"actual"`
	CompletionPct float64      `json:"completion_pct"`
}

// CoverageReport is the derived coverage artifact for verification tooling.
type CoverageReport struct {
	Entries       []CoverageEntry `json:"entries"`
	Expected      int             `json:"expected"`
	Actual        int             `json:"actual"`
	CompletionPct float64         `json:"completion_pct"`
}

// MaxRecordsEstimate caps parsed estimates.
const MaxRecordsEstimate = 1_000_000_000

// ParseRecordsEstimate extracts the leading number from a human-readable
// estimate: "~1,200 provisions" is 1200, "3k+" is 3000. No number yields 0.
// Values above MaxRecordsEstimate are capped.
func ParseRecordsEstimate(estimate string) int {
	start := strings.IndexFunc(estimate, unicode.IsDigit)
	if start < 0 {
		return 0
	}
	n := 0
	i := start
	for ; i < len(estimate); i++ {
		c := estimate[i]
		if c == ',' {
			continue
		}
		if c < '0' || c > '9' {
			break
		}
		if n > (MaxRecordsEstimate-9)/10 {
			n = MaxRecordsEstimate
			continue
		}
		n = n*10 + int(c-'0')
	}
	if i < len(estimate) && (estimate[i] == 'k' || estimate[i] == 'K') {
		if n > MaxRecordsEstimate/1000 {
			return MaxRecordsEstimate
		}
		n *= 1000
	}
	return min(n, MaxRecordsEstimate)
}

// CompletionPercent returns actual as a percentage of expected, capped at
// 100 and rounded to one decimal place. With nothing expected, any record
// counts as complete.
func CompletionPercent(expected, actual int) float64 {
	if expected <= 0 {
		if actual > 0 {
			return 100
		}
		return 0
	}
	pct := float64(actual) / float64(expected) * 100
	if pct > 100 {
		pct = 100
	}
	return math.Round(pct*10) / 10
}
