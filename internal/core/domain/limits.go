package domain

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// Result-size bounds shared by every query operation.
const (
	// MinLimit is the smallest number of rows any operation returns when asked.
	MinLimit = 1

	// MaxLimit is the hard cap on rows per query.
	MaxLimit = 50

	// DefaultLimit is used when an operation has no specific default.
	DefaultLimit = 10

	// RelatedLimit caps related and sample provision lists.
	RelatedLimit = 5
)

// NormalizeLimit clamps requested to [MinLimit, MaxLimit].
// A zero value means "not provided" and yields def.
func NormalizeLimit(requested, def int) int {
	if requested == 0 {
		requested = def
	}
	if requested < MinLimit {
		return MinLimit
	}
	if requested > MaxLimit {
		return MaxLimit
	}
	return requested
}

// ParseLimit converts a loosely typed limit (as decoded from JSON) into an
// integer. Non-numeric, non-finite or missing values return 0, which
// NormalizeLimit treats as "use the default".
func ParseLimit(v any) int {
	var f float64
	switch n := v.(type) {
	case nil:
		return 0
	case int:
		return n
	case int64:
		return int(n)
	case float64:
		f = n
	case json.Number:
		parsed, err := n.Float64()
		if err != nil {
			return 0
		}
		f = parsed
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		if err != nil {
			return 0
		}
		f = parsed
	default:
		return 0
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	f = math.Floor(f)
	if f == 0 {
		// An explicit zero still asks for the minimum, not the default.
		return MinLimit
	}
	if f > MaxLimit {
		return MaxLimit
	}
	if f < -MaxLimit {
		return -MaxLimit
	}
	return int(f)
}

// NormalizeStringList trims each value, drops empties and removes
// duplicates while keeping first-seen order.
func NormalizeStringList(values []string) []string {
	if len(values) == 0 {
		return nil
	}
	seen := make(map[string]struct{}, len(values))
	out := make([]string, 0, len(values))
	for _, v := range values {
		v = strings.TrimSpace(v)
		if v == "" {
			continue
		}
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	if len(out) == 0 {
		return nil
	}
	return out
}
