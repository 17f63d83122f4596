package api

import (
	"fmt"
	"net/http"

	"milasset/internal/filter"
	"milasset/internal/model"
	"milasset/internal/store"
)

// The assignments section covers both equipment assignments and
// expenditures; a single permission gates all four endpoints.

// ListAssignments handles GET /api/assignments.
func (s *Server) ListAssignments(w http.ResponseWriter, r *http.Request) {
	if !requireSection(w, r, model.SectionAssignments) {
		return
	}
	ident := GetIdentity(r.Context())

	assignments, err := store.ListAssignments(r.Context(), s.DB)
	if err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to list assignments")
		return
	}

	filters := queryFilters(r, ident)
	visible := filter.Assignments(assignments, filters, r.URL.Query().Get("q"))

	active := 0
	for _, a := range visible {
		if a.Status == model.AssignmentStatusActive {
			active++
		}
	}

	jsonResponse(w, http.StatusOK, map[string]any{
		"assignments": visible,
		"active":      active,
		"filters":     filters,
	})
}

// CreateAssignment handles POST /api/assignments.
func (s *Server) CreateAssignment(w http.ResponseWriter, r *http.Request) {
	if !requireSection(w, r, model.SectionAssignments) {
		return
	}
	ident := GetIdentity(r.Context())

	var params store.AssignmentParams
	if err := decodeJSON(r, &params); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	assignment, err := store.CreateAssignment(r.Context(), s.DB, ident, params, s.IDs.Next(), s.now())
	if err != nil {
		if v := store.AsValidation(err); v != nil {
			jsonResponse(w, http.StatusBadRequest, map[string]any{
				"error":  v.Message,
				"fields": v.Fields,
			})
			return
		}
		jsonError(w, http.StatusInternalServerError, "failed to create assignment")
		return
	}

	jsonResponse(w, http.StatusCreated, map[string]any{
		"assignment": assignment,
		"message":    fmt.Sprintf("%s has been assigned to %s.", assignment.Description, assignment.AssignedTo),
	})
}
