package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"milasset/internal/model"
)

// PurchaseParams carries the caller-supplied fields of a new purchase order.
// Server-owned fields (id, date, status, total cost) are never read from it.
type PurchaseParams struct {
	EquipmentType string  `json:"equipmentType"`
	Description   string  `json:"description"`
	Quantity      int     `json:"quantity"`
	UnitPrice     float64 `json:"unitPrice"`
	Supplier      string  `json:"supplier"`
	Base          string  `json:"base"`
	PurchasedBy   string  `json:"purchasedBy"`
	Notes         string  `json:"notes"`
}

// ListPurchases returns all purchase records, most recent first.
func ListPurchases(ctx context.Context, db *sql.DB) ([]model.Purchase, error) {
	purchases, err := loadStore(ctx, db, keyPurchases, seedPurchases)
	if err != nil {
		return nil, fmt.Errorf("failed to list purchases: %w", err)
	}
	return purchases, nil
}

// CreatePurchase validates and records a new purchase order. The record is
// stamped with a generated id, the current date and pending status, and its
// total cost is computed from quantity and unit price. For identities locked
// to a home base the base field is overridden with that base.
func CreatePurchase(ctx context.Context, db *sql.DB, ident model.Identity, params PurchaseParams, id int64, now time.Time) (model.Purchase, error) {
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
	if params.UnitPrice < 0 {
		missing = append(missing, "unitPrice")
	}
	if params.Supplier == "" {
		missing = append(missing, "supplier")
	}
	if params.Base == "" {
		missing = append(missing, "base")
	}
	if params.PurchasedBy == "" {
		missing = append(missing, "purchasedBy")
	}
	if len(missing) > 0 {
		return model.Purchase{}, missingFields(missing)
	}

	purchase := model.Purchase{
		ID:            id,
		EquipmentType: params.EquipmentType,
		Description:   params.Description,
		Quantity:      params.Quantity,
		UnitPrice:     params.UnitPrice,
		TotalCost:     float64(params.Quantity) * params.UnitPrice,
		Supplier:      params.Supplier,
		Base:          params.Base,
		PurchaseDate:  now.Format(dateLayout),
		Status:        model.PurchaseStatusPending,
		PurchasedBy:   params.PurchasedBy,
		Notes:         params.Notes,
	}

	purchases, err := loadStore(ctx, db, keyPurchases, seedPurchases)
	if err != nil {
		return model.Purchase{}, fmt.Errorf("failed to load purchases: %w", err)
	}

	purchases = append([]model.Purchase{purchase}, purchases...)
	if err := saveStore(ctx, db, keyPurchases, purchases); err != nil {
		return model.Purchase{}, fmt.Errorf("failed to save purchase: %w", err)
	}

	return purchase, nil
}
