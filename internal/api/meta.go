package api

import (
	"net/http"

	"milasset/internal/model"
)

// Meta handles GET /api/meta. It returns the fixed vocabularies used to
// populate filter and form dropdowns.
func (s *Server) Meta(w http.ResponseWriter, r *http.Request) {
	jsonResponse(w, http.StatusOK, map[string]any{
		"bases":          model.Bases,
		"equipmentTypes": model.EquipmentTypes,
		"priorities":     model.Priorities,
		"dateRanges":     model.DateRanges,
		"roles":          []string{model.RoleAdmin, model.RoleBaseCommander, model.RoleLogisticsOfficer},
		"sections":       model.Sections,
	})
}

// Status handles GET /api/status. It reports the outcome of the startup
// connectivity check against the external reporting database.
func (s *Server) Status(w http.ResponseWriter, r *http.Request) {
	jsonResponse(w, http.StatusOK, s.DBStatus())
}
