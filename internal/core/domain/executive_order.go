package domain

// OrderStatus is the legal status of an executive order.
type OrderStatus string

// Known order statuses.
const (
	OrderActive  OrderStatus = "active"
	OrderAmended OrderStatus = "amended"
	OrderRevoked OrderStatus = "revoked"
)

// ExecutiveOrder is an executive instrument. OrderNumber is the external
// lookup key.
type ExecutiveOrder struct {
	ID           string      `json:"id"`
	SourceID     string      `json:"source_id"`
	RegimeID     string      `json:"regime_id,omitempty"`
	OrderNumber  string      `json:"order_number"`
	Title        string      `json:"title"`
	IssuedDate   string      `json:"issued_date"`
	Status       OrderStatus `json:"status"`
	Summary      string      `json:"summary"`
	CyberRelated bool        `json:"cyber_related"`
	LegalBasis   []string    `json:"legal_basis"`
	OfficialURL  string      `json:"official_url"`
}

// ExecutiveOrderLookup identifies an order by number or by id.
type ExecutiveOrderLookup struct {
	OrderNumber    string
	IncludeRelated bool
}

// ExecutiveOrderDetail is an order joined with its source and regime.
type ExecutiveOrderDetail struct {
	ExecutiveOrder
	SourceName        string         `json:"source_name"`
	RegimeName        string         `json:"regime_name,omitempty"`
	Jurisdiction      string         `json:"jurisdiction"`
	RelatedProvisions []ProvisionRef `json:"related_provisions,omitempty"`
}

// RelatedProvisionKinds are the provision kinds considered related to an
// executive order that has no regime.
var RelatedProvisionKinds = []string{"executive_order_section", "guidance"}
