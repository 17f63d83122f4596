package api

import (
	"fmt"
	"net/http"

	"milasset/internal/filter"
	"milasset/internal/model"
	"milasset/internal/store"
)

// queryFilters builds the effective filter state from query parameters,
// pinned to the identity's home base where required.
func queryFilters(r *http.Request, ident model.Identity) filter.Filters {
	q := r.URL.Query()
	return filter.Pin(filter.Filters{
		DateRange:     q.Get("dateRange"),
		Base:          q.Get("base"),
		EquipmentType: q.Get("equipmentType"),
	}, ident)
}

// ListPurchases handles GET /api/purchases.
func (s *Server) ListPurchases(w http.ResponseWriter, r *http.Request) {
	if !requireSection(w, r, model.SectionPurchases) {
		return
	}
	ident := GetIdentity(r.Context())

	purchases, err := store.ListPurchases(r.Context(), s.DB)
	if err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to list purchases")
		return
	}

	filters := queryFilters(r, ident)
	visible := filter.Purchases(purchases, filters, r.URL.Query().Get("q"))

	var totalValue float64
	for _, p := range visible {
		totalValue += p.TotalCost
	}

	jsonResponse(w, http.StatusOK, map[string]any{
		"purchases":  visible,
		"totalValue": totalValue,
		"filters":    filters,
	})
}

// CreatePurchase handles POST /api/purchases.
func (s *Server) CreatePurchase(w http.ResponseWriter, r *http.Request) {
	if !requireSection(w, r, model.SectionPurchases) {
		return
	}
	ident := GetIdentity(r.Context())

	var params store.PurchaseParams
	if err := decodeJSON(r, &params); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	purchase, err := store.CreatePurchase(r.Context(), s.DB, ident, params, s.IDs.Next(), s.now())
	if err != nil {
		if v := store.AsValidation(err); v != nil {
			jsonResponse(w, http.StatusBadRequest, map[string]any{
				"error":  v.Message,
				"fields": v.Fields,
			})
			return
		}
		jsonError(w, http.StatusInternalServerError, "failed to create purchase")
		return
	}

	jsonResponse(w, http.StatusCreated, map[string]any{
		"purchase": purchase,
		"message":  fmt.Sprintf("%s purchase order has been submitted for approval.", purchase.Description),
	})
}
