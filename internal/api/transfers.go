package api

import (
	"fmt"
	"net/http"

	"milasset/internal/filter"
	"milasset/internal/model"
	"milasset/internal/store"
)

// ListTransfers handles GET /api/transfers.
func (s *Server) ListTransfers(w http.ResponseWriter, r *http.Request) {
	if !requireSection(w, r, model.SectionTransfers) {
		return
	}
	ident := GetIdentity(r.Context())

	transfers, err := store.ListTransfers(r.Context(), s.DB)
	if err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to list transfers")
		return
	}

	filters := queryFilters(r, ident)
	visible := filter.Transfers(transfers, filters, r.URL.Query().Get("q"))

	inTransit := 0
	for _, t := range visible {
		if t.Status == model.TransferStatusInTransit {
			inTransit++
		}
	}

	jsonResponse(w, http.StatusOK, map[string]any{
		"transfers": visible,
		"total":     len(visible),
		"inTransit": inTransit,
		"filters":   filters,
	})
}

// CreateTransfer handles POST /api/transfers.
func (s *Server) CreateTransfer(w http.ResponseWriter, r *http.Request) {
	if !requireSection(w, r, model.SectionTransfers) {
		return
	}
	ident := GetIdentity(r.Context())

	var params store.TransferParams
	if err := decodeJSON(r, &params); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	transfer, err := store.CreateTransfer(r.Context(), s.DB, ident, params, s.IDs.Next(), s.now())
	if err != nil {
		if v := store.AsValidation(err); v != nil {
			jsonResponse(w, http.StatusBadRequest, map[string]any{
				"error":  v.Message,
				"fields": v.Fields,
			})
			return
		}
		jsonError(w, http.StatusInternalServerError, "failed to create transfer")
		return
	}

	jsonResponse(w, http.StatusCreated, map[string]any{
		"transfer": transfer,
		"message":  fmt.Sprintf("Transfer of %s has been submitted for approval.", transfer.Description),
	})
}
