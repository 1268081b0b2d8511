package domain

// Regime is a named sanctions programme tied to one jurisdiction.
type Regime struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Jurisdiction string   `json:"jurisdiction"`
	Authority    string   `json:"authority"`
	Summary      string   `json:"summary"`
	LegalBasis   []string `json:"legal_basis"`
	CyberRelated bool     `json:"cyber_related"`

	// DelistingProcedureID, when set, references an existing DelistingProcedure.
	DelistingProcedureID string `json:"delisting_procedure_id,omitempty"`

	OfficialURL string `json:"official_url"`
}

// RegimeQuery filters get-regime. Empty fields are ignored.
type RegimeQuery struct {
	// ID matches exactly.
	ID string

	// Name matches any part of the regime name, case-insensitively.
	Name string

	// Jurisdiction matches exactly, case-insensitively.
	Jurisdiction string

	// IncludeProvisions attaches sample provisions to each result.
	IncludeProvisions bool

	Limit int
}

// RegimeDetail is a regime with link counts and optional samples.
type RegimeDetail struct {
	Regime
	ProvisionCount   int            `json:"provision_count"`
	CaseLawCount     int            `json:"case_law_count"`
	SampleProvisions []ProvisionRef `json:"sample_provisions,omitempty"`
}

// DelistingProcedure is the administrative route to removal from a regime.
type DelistingProcedure struct {
	ID                  string   `json:"id"`
	RegimeID            string   `json:"regime_id"`
	Authority           string   `json:"authority"`
	ProcedureSummary    string   `json:"procedure_summary"`
	EvidentiaryStandard string   `json:"evidentiary_standard"`
	ReviewBody          string   `json:"review_body"`
	ReviewTimeline      string   `json:"review_timeline"`
	ApplicationURL      string   `json:"application_url"`
	LegalBasis          []string `json:"legal_basis"`
}

// DelistingQuery filters get-delisting-procedure.
type DelistingQuery struct {
	ID       string
	RegimeID string
	Limit    int
}

// DelistingDetail is a procedure joined with its regime.
type DelistingDetail struct {
	DelistingProcedure
	RegimeName   string `json:"regime_name"`
	Jurisdiction string `json:"jurisdiction"`
}
