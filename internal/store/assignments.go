package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"milasset/internal/model"
)

// AssignmentParams carries the caller-supplied fields of a new equipment
// assignment.
type AssignmentParams struct {
	EquipmentType string `json:"equipmentType"`
	Description   string `json:"description"`
	SerialNumber  string `json:"serialNumber"`
	AssignedTo    string `json:"assignedTo"`
	Unit          string `json:"unit"`
	Base          string `json:"base"`
	Notes         string `json:"notes"`
}

// ListAssignments returns all assignment records, most recent first.
func ListAssignments(ctx context.Context, db *sql.DB) ([]model.Assignment, error) {
	assignments, err := loadStore(ctx, db, keyAssignments, seedAssignments)
	if err != nil {
		return nil, fmt.Errorf("failed to list assignments: %w", err)
	}
	return assignments, nil
}

// CreateAssignment validates and records a new equipment assignment. The
// record is stamped with a generated id, the current date, active status and
// the acting identity as the assigner. For identities locked to a home base
// the base field is overridden with that base.
func CreateAssignment(ctx context.Context, db *sql.DB, ident model.Identity, params AssignmentParams, id int64, now time.Time) (model.Assignment, error) {
	if ident.BaseLocked() {
		params.Base = ident.HomeBase
	}

	var missing []string
	if params.EquipmentType == "" {
		missing = append(missing, "equipmentType")
	}
	if params.Description == "" {
		missing = append(missing, "description")
	}
	if params.SerialNumber == "" {
		missing = append(missing, "serialNumber")
	}
	if params.AssignedTo == "" {
		missing = append(missing, "assignedTo")
	}
	if params.Unit == "" {
		missing = append(missing, "unit")
	}
	if params.Base == "" {
		missing = append(missing, "base")
	}
	if len(missing) > 0 {
		return model.Assignment{}, missingFields(missing)
	}

	assignment := model.Assignment{
		ID:             id,
		EquipmentType:  params.EquipmentType,
		Description:    params.Description,
		SerialNumber:   params.SerialNumber,
		AssignedTo:     params.AssignedTo,
		Unit:           params.Unit,
		Base:           params.Base,
		AssignmentDate: now.Format(dateLayout),
		Status:         model.AssignmentStatusActive,
		AssignedBy:     ident.Name,
		Notes:          params.Notes,
	}

	assignments, err := loadStore(ctx, db, keyAssignments, seedAssignments)
	if err != nil {
		return model.Assignment{}, fmt.Errorf("failed to load assignments: %w", err)
	}

	assignments = append([]model.Assignment{assignment}, assignments...)
	if err := saveStore(ctx, db, keyAssignments, assignments); err != nil {
		return model.Assignment{}, fmt.Errorf("failed to save assignment: %w", err)
	}

	return assignment, nil
}
