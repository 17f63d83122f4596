package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"milasset/internal/model"
)

// ExpenditureParams carries the caller-supplied fields of a new expenditure
// record.
type ExpenditureParams struct {
	EquipmentType string `json:"equipmentType"`
	Description   string `json:"description"`
	Quantity      int    `json:"quantity"`
	Unit          string `json:"unit"`
	Base          string `json:"base"`
	Reason        string `json:"reason"`
	Notes         string `json:"notes"`
}

// ListExpenditures returns all expenditure records, most recent first.
func ListExpenditures(ctx context.Context, db *sql.DB) ([]model.Expenditure, error) {
	expenditures, err := loadStore(ctx, db, keyExpenditures, seedExpenditures)
	if err != nil {
		return nil, fmt.Errorf("failed to list expenditures: %w", err)
	}
	return expenditures, nil
}

// CreateExpenditure validates and records a new expenditure. The record is
// stamped with a generated id, the current date and the acting identity as
// the authorizer. For identities locked to a home base the base field is
// overridden with that base.
func CreateExpenditure(ctx context.Context, db *sql.DB, ident model.Identity, params ExpenditureParams, id int64, now time.Time) (model.Expenditure, error) {
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
	if params.Quantity < 1 {
		missing = append(missing, "quantity")
	}
	if params.Unit == "" {
		missing = append(missing, "unit")
	}
	if params.Base == "" {
		missing = append(missing, "base")
	}
	if params.Reason == "" {
		missing = append(missing, "reason")
	}
	if len(missing) > 0 {
		return model.Expenditure{}, missingFields(missing)
	}

	expenditure := model.Expenditure{
		ID:              id,
		EquipmentType:   params.EquipmentType,
		Description:     params.Description,
		Quantity:        params.Quantity,
		Unit:            params.Unit,
		Base:            params.Base,
		ExpenditureDate: now.Format(dateLayout),
		Reason:          params.Reason,
		AuthorizedBy:    ident.Name,
		Notes:           params.Notes,
	}

	expenditures, err := loadStore(ctx, db, keyExpenditures, seedExpenditures)
	if err != nil {
		return model.Expenditure{}, fmt.Errorf("failed to load expenditures: %w", err)
	}

	expenditures = append([]model.Expenditure{expenditure}, expenditures...)
	if err := saveStore(ctx, db, keyExpenditures, expenditures); err != nil {
		return model.Expenditure{}, fmt.Errorf("failed to save expenditure: %w", err)
	}

	return expenditure, nil
}
