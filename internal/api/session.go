package api

import (
	"fmt"
	"net/http"
	"strings"

	"milasset/internal/auth"
	"milasset/internal/filter"
	"milasset/internal/model"
)

// GetSession handles GET /api/session. It returns the acting identity, the active
// section, and the identity's default filter state.
func (s *Server) GetSession(w http.ResponseWriter, r *http.Request) {
	ident := GetIdentity(r.Context())
	claims := GetClaims(r.Context())

	jsonResponse(w, http.StatusOK, map[string]any{
		"identity":      ident,
		"activeSection": ident.ResolveSection(claims.ActiveSection),
		"filters":       filter.Defaults(ident),
	})
}

type switchRoleRequest struct {
	Role string `json:"role"`
}

// SwitchRole handles PUT /api/session/role. Switching roles keeps the active
// section when the new role may view it, otherwise falls back to the
// dashboard.
func (s *Server) SwitchRole(w http.ResponseWriter, r *http.Request) {
	var req switchRoleRequest
	if err := decodeJSON(r, &req); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	ident, ok := model.IdentityFor(req.Role)
	if !ok {
		jsonError(w, http.StatusBadRequest, "unknown role")
		return
	}

	claims := GetClaims(r.Context())
	section := ident.ResolveSection(claims.ActiveSection)

	if err := s.setSession(w, ident.Role, section); err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to create session")
		return
	}

	jsonResponse(w, http.StatusOK, map[string]any{
		"identity":      ident,
		"activeSection": section,
		"filters":       filter.Defaults(ident),
		"message":       fmt.Sprintf("Switched to %s (%s)", ident.Name, strings.ReplaceAll(ident.Role, "_", " ")),
	})
}

type switchSectionRequest struct {
	Section string `json:"section"`
}

// SwitchSection handles PUT /api/session/section. A section outside the
// acting identity's permissions is rejected.
func (s *Server) SwitchSection(w http.ResponseWriter, r *http.Request) {
	var req switchSectionRequest
	if err := decodeJSON(r, &req); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	ident := GetIdentity(r.Context())
	if !ident.Allows(req.Section) {
		jsonError(w, http.StatusForbidden, "access denied")
		return
	}

	if err := s.setSession(w, ident.Role, req.Section); err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to create session")
		return
	}

	jsonResponse(w, http.StatusOK, map[string]any{
		"activeSection": req.Section,
	})
}

// setSession mints a session token and sets the session cookie.
func (s *Server) setSession(w http.ResponseWriter, role, section string) error {
	token, err := auth.GenerateToken(s.SessionSecret, role, section)
	if err != nil {
		return err
	}

	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookie,
		Value:    token,
		Path:     "/",
		MaxAge:   int(auth.TokenExpiry.Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return nil
}
