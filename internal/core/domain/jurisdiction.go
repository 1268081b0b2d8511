package domain

import "strings"

// JurisdictionInternational is assigned when no other signal applies.
const JurisdictionInternational = "INTL"

// sourcePrefixes maps source id prefixes to jurisdictions. The table is a
// naming convention, not stored data; keep it in sync with seed source ids.
var sourcePrefixes = []struct {
	prefix       string
	jurisdiction string
}{
	{"UN_", "UN"},
	{"EU_", "EU"},
	{"US_", "US"},
	{"UK_", "UK"},
}

// InferJurisdiction returns regimeJurisdiction when a regime is linked and
// otherwise derives the jurisdiction from the source id prefix.
func InferJurisdiction(regimeJurisdiction, sourceID string) string {
	if regimeJurisdiction != "" {
		return regimeJurisdiction
	}
	for _, p := range sourcePrefixes {
		if strings.HasPrefix(sourceID, p.prefix) {
			return p.jurisdiction
		}
	}
	return JurisdictionInternational
}

// MatchesJurisdiction reports whether jurisdiction passes filter.
// An empty filter matches everything.
func MatchesJurisdiction(jurisdiction, filter string) bool {
	filter = strings.TrimSpace(filter)
	if filter == "" {
		return true
	}
	return strings.EqualFold(jurisdiction, filter)
}
