package domain

// Provision is an atomic passage of legal text and the unit indexed for
// full-text search. (SourceID, ItemID) is its natural key.
type Provision struct {
	// ID is the storage row id. It is assigned at seed time.
	ID int64 `json:"id,omitempty"`

	SourceID   string         `json:"source_id"`
	ItemID     string         `json:"item_id"`
	Title      string         `json:"title"`
	Text       string         `json:"text"`
	Parent     string         `json:"parent,omitempty"`
	Kind       string         `json:"kind"`
	RegimeID   string         `json:"regime_id,omitempty"`
	IssuedDate string         `json:"issued_date,omitempty"`
	URL        string         `json:"url"`
	Topics     []string       `json:"topics"`
	Metadata   map[string]any `json:"metadata,omitempty"`
}

// ProvisionRef is the short form used for related and sample lists.
type ProvisionRef struct {
	SourceID   string `json:"source_id"`
	ItemID     string `json:"item_id"`
	Title      string `json:"title"`
	Kind       string `json:"kind"`
	RegimeID   string `json:"regime_id,omitempty"`
	IssuedDate string `json:"issued_date,omitempty"`
	URL        string `json:"url"`
}

// ProvisionDetail is a provision joined with its source and regime names.
type ProvisionDetail struct {
	Provision
	SourceName   string         `json:"source_name"`
	RegimeName   string         `json:"regime_name,omitempty"`
	Jurisdiction string         `json:"jurisdiction,omitempty"`
	Related      []ProvisionRef `json:"related,omitempty"`
}

// ProvisionSearch is the input of the full-text provision search.
type ProvisionSearch struct {
	// Query is free text. It is escaped before reaching the index.
	Query string

	// SourceIDs restricts hits to any of these sources.
	SourceIDs []string

	// Jurisdictions restricts hits to provisions whose regime is in any of
	// these jurisdictions. Provisions without a regime have jurisdiction "".
	Jurisdictions []string

	// RegimeID restricts hits to a single regime.
	RegimeID string

	// Topics restricts hits to provisions tagged with any of these topics.
	Topics []string

	Limit int
}

// ProvisionHit is one ranked full-text search result.
type ProvisionHit struct {
	SourceID     string   `json:"source_id"`
	ItemID       string   `json:"item_id"`
	Title        string   `json:"title"`
	Kind         string   `json:"kind"`
	RegimeID     string   `json:"regime_id,omitempty"`
	RegimeName   string   `json:"regime_name,omitempty"`
	Jurisdiction string   `json:"jurisdiction,omitempty"`
	SourceName   string   `json:"source_name"`
	IssuedDate   string   `json:"issued_date,omitempty"`
	URL          string   `json:"url"`
	Topics       []string `json:"topics"`
	Snippet      string   `json:"snippet"`

	// Relevance is the BM25 score; lower is more relevant.
	Relevance float64 `json:"relevance"`
}

// ProvisionLookup identifies a single provision.
type ProvisionLookup struct {
	SourceID       string
	ItemID         string
	IncludeRelated bool
}
