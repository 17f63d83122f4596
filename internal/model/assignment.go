package model

// Assignment represents a serialized piece of equipment assigned to a person.
// AssignedBy is stamped from the creating identity and never user-supplied.
type Assignment struct {
	ID             int64  `json:"id"`
	EquipmentType  string `json:"equipmentType"`
	Description    string `json:"description"`
	SerialNumber   string `json:"serialNumber"`
	AssignedTo     string `json:"assignedTo"`
	Unit           string `json:"unit"`
	Base           string `json:"base"`
	AssignmentDate string `json:"assignmentDate"`
	Status         string `json:"status"`
	AssignedBy     string `json:"assignedBy"`
	Notes          string `json:"notes,omitempty"`
}

// Assignment statuses.
const (
	AssignmentStatusActive   = "active"
	AssignmentStatusReturned = "returned"
)
