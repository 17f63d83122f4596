package model

// Transfer represents an equipment movement between two bases.
// ApprovedBy stays nil until the transfer is approved.
type Transfer struct {
	ID               int64   `json:"id"`
	EquipmentType    string  `json:"equipmentType"`
	Description      string  `json:"description"`
	Quantity         int     `json:"quantity"`
	FromBase         string  `json:"fromBase"`
	ToBase           string  `json:"toBase"`
	TransferDate     string  `json:"transferDate"`
	EstimatedArrival string  `json:"estimatedArrival"`
	Status           string  `json:"status"`
	RequestedBy      string  `json:"requestedBy"`
	ApprovedBy       *string `json:"approvedBy"`
	Priority         string  `json:"priority"`
	Notes            string  `json:"notes,omitempty"`
}

// Transfer statuses.
const (
	TransferStatusPending   = "pending"
	TransferStatusInTransit = "in-transit"
	TransferStatusCompleted = "completed"
)

// Transfer priorities.
const (
	PriorityLow    = "low"
	PriorityNormal = "normal"
	PriorityHigh   = "high"
	PriorityUrgent = "urgent"
)

// Priorities is the fixed ordered list of transfer priorities.
var Priorities = []string{PriorityLow, PriorityNormal, PriorityHigh, PriorityUrgent}

// ValidPriority reports whether p is a known transfer priority.
func ValidPriority(p string) bool {
	for _, known := range Priorities {
		if p == known {
			return true
		}
	}
	return false
}
