package domain

// CyberQuery filters check-cyber-sanctions. Every field is optional.
type CyberQuery struct {
	// Query narrows each list by a case-insensitive substring.
	Query string

	// Jurisdiction is applied after fetching, to orders and provisions.
	Jurisdiction string

	Limit int
}

// CyberOrder is a cyber-related executive order with its jurisdiction.
type CyberOrder struct {
	ID           string      `json:"id"`
	OrderNumber  string      `json:"order_number"`
	Title        string      `json:"title"`
	IssuedDate   string      `json:"issued_date"`
	Status       OrderStatus `json:"status"`
	Summary      string      `json:"summary"`
	SourceID     string      `json:"source_id"`
	RegimeID     string      `json:"regime_id,omitempty"`
	RegimeName   string      `json:"regime_name,omitempty"`
	Jurisdiction string      `json:"jurisdiction"`
	OfficialURL  string      `json:"official_url"`
}

// CyberProvision is a cyber-tagged provision with its jurisdiction.
type CyberProvision struct {
	SourceID     string   `json:"source_id"`
	ItemID       string   `json:"item_id"`
	Title        string   `json:"title"`
	Kind         string   `json:"kind"`
	RegimeID     string   `json:"regime_id,omitempty"`
	RegimeName   string   `json:"regime_name,omitempty"`
	IssuedDate   string   `json:"issued_date,omitempty"`
	Topics       []string `json:"topics"`
	Jurisdiction string   `json:"jurisdiction"`
	URL          string   `json:"url"`
}

// CyberReport aggregates everything cyber-related.
type CyberReport struct {
	Regimes         []Regime         `json:"regimes"`
	ExecutiveOrders []CyberOrder     `json:"executive_orders"`
	Provisions      []CyberProvision `json:"provisions"`
}

// CyberTopic is the topic tag that marks a provision as cyber-related.
const CyberTopic = "cyber"
