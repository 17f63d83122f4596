package api

import (
	"fmt"
	"net/http"

	"milasset/internal/filter"
	"milasset/internal/model"
	"milasset/internal/store"
)

// ListExpenditures handles GET /api/expenditures.
func (s *Server) ListExpenditures(w http.ResponseWriter, r *http.Request) {
	if !requireSection(w, r, model.SectionAssignments) {
		return
	}
	ident := GetIdentity(r.Context())

	expenditures, err := store.ListExpenditures(r.Context(), s.DB)
	if err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to list expenditures")
		return
	}

	filters := queryFilters(r, ident)
	visible := filter.Expenditures(expenditures, filters, r.URL.Query().Get("q"))

	totalQuantity := 0
	for _, e := range visible {
		totalQuantity += e.Quantity
	}

	jsonResponse(w, http.StatusOK, map[string]any{
		"expenditures":  visible,
		"totalQuantity": totalQuantity,
		"filters":       filters,
	})
}

// CreateExpenditure handles POST /api/expenditures.
func (s *Server) CreateExpenditure(w http.ResponseWriter, r *http.Request) {
	if !requireSection(w, r, model.SectionAssignments) {
		return
	}
	ident := GetIdentity(r.Context())

	var params store.ExpenditureParams
	if err := decodeJSON(r, &params); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	expenditure, err := store.CreateExpenditure(r.Context(), s.DB, ident, params, s.IDs.Next(), s.now())
	if err != nil {
		if v := store.AsValidation(err); v != nil {
			jsonResponse(w, http.StatusBadRequest, map[string]any{
				"error":  v.Message,
				"fields": v.Fields,
			})
			return
		}
		jsonError(w, http.StatusInternalServerError, "failed to create expenditure")
		return
	}

	jsonResponse(w, http.StatusCreated, map[string]any{
		"expenditure": expenditure,
		"message":     fmt.Sprintf("%d %s has been recorded as expended.", expenditure.Quantity, expenditure.Description),
	})
}
