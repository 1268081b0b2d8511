package domain

// Fixed descriptive text returned by the about operation.
const (
	AboutName = "Sanctions Law Reference"

	AboutDescription = "Read-only reference of sanctions law: provisions, executive orders, " +
		"sanctions regimes, delisting procedures, export controls and case law, " +
		"with full-text search and per-source freshness reporting."

	AboutDisclaimer = "This reference is provided for research purposes only and does not " +
		"constitute legal advice. Texts are reproduced from official sources and may lag " +
		"behind the authoritative versions; always verify against the official publication " +
		"before relying on any provision."
)

// AboutSource is the short form of a source in the about summary.
type AboutSource struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Authority string `json:"authority"`
	URL       string `json:"url"`
}

// About is the metadata summary of the whole dataset.
type About struct {
	Name         string        `json:"name"`
	Version      string        `json:"version"`
	Description  string        `json:"description"`
	Disclaimer   string        `json:"disclaimer"`
	Dataset      DatasetInfo   `json:"dataset"`
	Counts       Summary       `json:"counts"`
	TotalRecords int           `json:"total_records"`
	Sources      []AboutSource `json:"sources"`
}
