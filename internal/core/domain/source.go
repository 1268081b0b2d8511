package domain

// UpdateFrequency is how often an issuing authority publishes changes.
type UpdateFrequency string

// Known update frequencies.
const (
	FrequencyDaily    UpdateFrequency = "daily"
	FrequencyWeekly   UpdateFrequency = "weekly"
	FrequencyMonthly  UpdateFrequency = "monthly"
	FrequencyOnChange UpdateFrequency = "on_change"
)

// PriorityTier ranks sources for listing and ingestion.
type PriorityTier string

// Known priority tiers, highest first.
const (
	PriorityCritical PriorityTier = "critical"
	PriorityHigh     PriorityTier = "high"
	PriorityMedium   PriorityTier = "medium"
	PriorityLow      PriorityTier = "low"
)

// PriorityTiers lists the known tiers in rank order.
var PriorityTiers = []PriorityTier{PriorityCritical, PriorityHigh, PriorityMedium, PriorityLow}

// Rank orders tiers critical < high < medium < low < anything else.
func (p PriorityTier) Rank() int {
	switch p {
	case PriorityCritical:
		return 0
	case PriorityHigh:
		return 1
	case PriorityMedium:
		return 2
	case PriorityLow:
		return 3
	default:
		return 4
	}
}

// Source is an issuing authority whose records are stored.
type Source struct {
	// ID is the unique identifier, e.g. "EU_COUNCIL_SANCTIONS".
	ID string `json:"id"`

	// Name is the display name.
	Name string `json:"name"`

	// Authority is the body that issues the records.
	Authority string `json:"authority"`

	// OfficialPortal is the URL of the authority's publication portal.
	OfficialPortal string `json:"official_portal"`

	// RetrievalMethod describes how records are harvested.
	RetrievalMethod string `json:"retrieval_method"`

	// UpdateFrequency is the expected publication cadence.
	UpdateFrequency UpdateFrequency `json:"update_frequency"`

	// RecordsEstimate is a human-readable estimate such as "~1,200 provisions".
	RecordsEstimate string `json:"records_estimate"`

	// PriorityTier orders sources in listings.
	PriorityTier PriorityTier `json:"priority_tier"`

	// CoverageNote explains what the stored records cover.
	CoverageNote string `json:"coverage_note"`

	// LastVerified is the ISO date the source was last checked by hand.
	LastVerified string `json:"last_verified"`

	// Metadata holds free-form attributes.
	Metadata map[string]any `json:"metadata,omitempty"`
}

// SourceSummary is a source row with aggregate counts.
type SourceSummary struct {
	ID                  string          `json:"id"`
	Name                string          `json:"name"`
	Authority           string          `json:"authority"`
	OfficialPortal      string          `json:"official_portal"`
	UpdateFrequency     UpdateFrequency `json:"update_frequency"`
	PriorityTier        PriorityTier    `json:"priority_tier"`
	RecordsEstimate     string          `json:"records_estimate"`
	ProvisionCount      int             `json:"provision_count"`
	RegimeCount         int             `json:"regime_count"`
	CaseLawCount        int             `json:"case_law_count"`
	ExecutiveOrderCount int             `json:"executive_order_count"`
	ExportControlCount  int             `json:"export_control_count"`
	FreshnessStatus     FreshnessStatus `json:"freshness_status,omitempty"`
	LastUpdated         string          `json:"last_updated,omitempty"`
}

// RecordCount is the number of records of every kind attributed to the source.
func (s SourceSummary) RecordCount() int {
	return s.ProvisionCount + s.ExecutiveOrderCount + s.ExportControlCount + s.CaseLawCount
}

// SourceDetail is the extended view of one source.
type SourceDetail struct {
	Source
	SampleItems []ProvisionRef `json:"sample_items,omitempty"`
}

// SourceQuery selects what list-sources returns.
type SourceQuery struct {
	// SourceID requests an additional detail record.
	SourceID string

	// IncludeSamples attaches up to RelatedLimit sample provisions to the detail.
	IncludeSamples bool
}

// SourceListing is the result of list-sources.
type SourceListing struct {
	Sources []SourceSummary `json:"sources"`
	Detail  *SourceDetail   `json:"detail,omitempty"`
}
