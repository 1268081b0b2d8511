package domain

// ExportControl is one section of an export-control instrument.
type ExportControl struct {
	ID           string `json:"id"`
	SourceID     string `json:"source_id"`
	Jurisdiction string `json:"jurisdiction"`
	Instrument   string `json:"instrument"`
	Section      string `json:"section"`
	Title        string `json:"title"`
	Summary      string `json:"summary"`
	Focus        string `json:"focus"`
	OfficialURL  string `json:"official_url"`
}

// ExportControlQuery filters get-export-control.
type ExportControlQuery struct {
	// Jurisdiction matches exactly, case-insensitively.
	Jurisdiction string

	// Section matches any part of the section identifier.
	Section string

	// Query matches any part of the title, summary or focus.
	Query string

	Limit int
}
