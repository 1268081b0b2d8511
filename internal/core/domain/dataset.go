package domain

// Dataset is a complete seed document. Collections are loaded in
// dependency order: sources and regimes first, freshness last.
type Dataset struct {
	SchemaVersion       string               `json:"schema_version"`
	GeneratedAt         string               `json:"generated_at"`
	Sources             []Source             `json:"sources"`
	Regimes             []Regime             `json:"regimes"`
	Provisions          []Provision          `json:"provisions"`
	ExecutiveOrders     []ExecutiveOrder     `json:"executive_orders"`
	DelistingProcedures []DelistingProcedure `json:"delisting_procedures"`
	ExportControls      []ExportControl      `json:"export_controls"`
	CaseLaw             []CaseLaw            `json:"case_law"`
	Freshness           []SourceFreshness    `json:"freshness"`
}

// Summary counts rows per entity table.
type Summary struct {
	Sources             int `json:"sources"`
	Regimes             int `json:"regimes"`
	Provisions          int `json:"provisions"`
	ExecutiveOrders     int `json:"executive_orders"`
	DelistingProcedures int `json:"delisting_procedures"`
	ExportControls      int `json:"export_controls"`
	CaseLaw             int `json:"case_law"`
	Freshness           int `json:"freshness"`
}

// Total is the number of rows across every entity table.
func (s Summary) Total() int {
	return s.Sources + s.Regimes + s.Provisions + s.ExecutiveOrders +
		s.DelistingProcedures + s.ExportControls + s.CaseLaw + s.Freshness
}

// DatasetInfo describes the seed a database was built from.
type DatasetInfo struct {
	SchemaVersion string `json:"schema_version"`
	GeneratedAt   string `json:"generated_at"`
	BuiltAt       string `json:"built_at"`
}
