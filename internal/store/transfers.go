package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"milasset/internal/model"
)

// TransferParams carries the caller-supplied fields of a new transfer
// request.
type TransferParams struct {
	EquipmentType    string `json:"equipmentType"`
	Description      string `json:"description"`
	Quantity         int    `json:"quantity"`
	FromBase         string `json:"fromBase"`
	ToBase           string `json:"toBase"`
	EstimatedArrival string `json:"estimatedArrival"`
	RequestedBy      string `json:"requestedBy"`
	Priority         string `json:"priority"`
	Notes            string `json:"notes"`
}

// ListTransfers returns all transfer records, most recent first.
func ListTransfers(ctx context.Context, db *sql.DB) ([]model.Transfer, error) {
	transfers, err := loadStore(ctx, db, keyTransfers, seedTransfers)
	if err != nil {
		return nil, fmt.Errorf("failed to list transfers: %w", err)
	}
	return transfers, nil
}

// CreateTransfer validates and records a new transfer request. The record is
// stamped with a generated id, the current date and pending status, and
// starts with no approver. Source and destination bases must differ and the
// estimated arrival must be at least a day out.
func CreateTransfer(ctx context.Context, db *sql.DB, ident model.Identity, params TransferParams, id int64, now time.Time) (model.Transfer, error) {
	var missing []string
	if params.EquipmentType == "" {
		missing = append(missing, "equipmentType")
	}
	if params.Description == "" {
		missing = append(missing, "description")
	}
	if params.Quantity < 1 {
		missing = append(missing, "quantity")
	}
	if params.FromBase == "" {
		missing = append(missing, "fromBase")
	}
	if params.ToBase == "" {
		missing = append(missing, "toBase")
	}
	if params.EstimatedArrival == "" {
		missing = append(missing, "estimatedArrival")
	}
	if params.RequestedBy == "" {
		missing = append(missing, "requestedBy")
	}
	if len(missing) > 0 {
		return model.Transfer{}, missingFields(missing)
	}

	if params.FromBase == params.ToBase {
		return model.Transfer{}, &ValidationError{
			Message: "source and destination bases cannot be the same",
			Fields:  []string{"fromBase", "toBase"},
		}
	}

	arrival, err := time.Parse(dateLayout, params.EstimatedArrival)
	if err != nil {
		return model.Transfer{}, &ValidationError{
			Message: "estimated arrival must be a valid date",
			Fields:  []string{"estimatedArrival"},
		}
	}
	tomorrow, _ := time.Parse(dateLayout, now.AddDate(0, 0, 1).Format(dateLayout))
	if arrival.Before(tomorrow) {
		return model.Transfer{}, &ValidationError{
			Message: "estimated arrival must be at least tomorrow",
			Fields:  []string{"estimatedArrival"},
		}
	}

	priority := params.Priority
	if priority == "" {
		priority = model.PriorityNormal
	} else if !model.ValidPriority(priority) {
		return model.Transfer{}, &ValidationError{
			Message: "unknown priority",
			Fields:  []string{"priority"},
		}
	}

	transfer := model.Transfer{
		ID:               id,
		EquipmentType:    params.EquipmentType,
		Description:      params.Description,
		Quantity:         params.Quantity,
		FromBase:         params.FromBase,
		ToBase:           params.ToBase,
		TransferDate:     now.Format(dateLayout),
		EstimatedArrival: params.EstimatedArrival,
		Status:           model.TransferStatusPending,
		RequestedBy:      params.RequestedBy,
		ApprovedBy:       nil,
		Priority:         priority,
		Notes:            params.Notes,
	}

	transfers, err := loadStore(ctx, db, keyTransfers, seedTransfers)
	if err != nil {
		return model.Transfer{}, fmt.Errorf("failed to load transfers: %w", err)
	}

	transfers = append([]model.Transfer{transfer}, transfers...)
	if err := saveStore(ctx, db, keyTransfers, transfers); err != nil {
		return model.Transfer{}, fmt.Errorf("failed to save transfer: %w", err)
	}

	return transfer, nil
}
