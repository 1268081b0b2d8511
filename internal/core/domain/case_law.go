package domain

// CaseLaw is a court decision concerning sanctions.
type CaseLaw struct {
	ID               string   `json:"id"`
	SourceID         string   `json:"source_id"`
	Court            string   `json:"court"`
	CaseReference    string   `json:"case_reference"`
	Title            string   `json:"title"`
	DecisionDate     string   `json:"decision_date"`
	RegimeID         string   `json:"regime_id,omitempty"`
	DelistingRelated bool     `json:"delisting_related"`
	Outcome          string   `json:"outcome"`
	Summary          string   `json:"summary"`
	Keywords         []string `json:"keywords"`
	OfficialURL      string   `json:"official_url"`
}

// CaseLawQuery filters search-case-law. Empty fields are ignored.
type CaseLawQuery struct {
	// Query matches any part of the reference, title, summary or keywords.
	Query string

	RegimeID string

	// Court matches any part of the court name.
	Court string

	// DelistingRelated, when non-nil, restricts to rows with that flag.
	DelistingRelated *bool

	Limit int
}

// CaseLawDetail is a decision joined with its regime name.
type CaseLawDetail struct {
	CaseLaw
	RegimeName string `json:"regime_name,omitempty"`
}
