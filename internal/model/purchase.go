package model

// Purchase represents an equipment purchase order for a base.
// Immutable once created; totalCost is always quantity × unitPrice.
type Purchase struct {
	ID            int64   `json:"id"`
	EquipmentType string  `json:"equipmentType"`
	Description   string  `json:"description"`
	Quantity      int     `json:"quantity"`
	UnitPrice     float64 `json:"unitPrice"`
	TotalCost     float64 `json:"totalCost"`
	Supplier      string  `json:"supplier"`
	Base          string  `json:"base"`
	PurchaseDate  string  `json:"purchaseDate"`
	Status        string  `json:"status"`
	PurchasedBy   string  `json:"purchasedBy"`
	Notes         string  `json:"notes,omitempty"`
}

// Purchase statuses.
const (
	PurchaseStatusPending   = "pending"
	PurchaseStatusCompleted = "completed"
)
