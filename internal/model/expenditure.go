package model

// Expenditure represents consumed equipment (ammunition, supplies).
// Expenditures have no status; AuthorizedBy is stamped from the creating
// identity and never user-supplied.
type Expenditure struct {
	ID              int64  `json:"id"`
	EquipmentType   string `json:"equipmentType"`
	Description     string `json:"description"`
	Quantity        int    `json:"quantity"`
	Unit            string `json:"unit"`
	Base            string `json:"base"`
	ExpenditureDate string `json:"expenditureDate"`
	Reason          string `json:"reason"`
	AuthorizedBy    string `json:"authorizedBy"`
	Notes           string `json:"notes,omitempty"`
}
