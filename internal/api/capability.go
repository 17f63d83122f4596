package api

import "net/http"

// capabilities names the dashboard actions that are visible but not yet
// implemented. Invoking one returns 501 unless a handler has been
// registered for it, so new actions can ship without changing the routes.
var capabilities = map[string]bool{
	"view_details":     true,
	"status_update":    true,
	"export":           true,
	"analytics":        true,
	"approvals":        true,
	"track_status":     true,
	"transfer_history": true,
	"notifications":    true,
	"settings":         true,
	"logout":           true,
}

// CapabilityRegistry maps capability names to optional handlers.
type CapabilityRegistry struct {
	handlers map[string]http.HandlerFunc
}

// NewCapabilityRegistry returns an empty registry.
func NewCapabilityRegistry() *CapabilityRegistry {
	return &CapabilityRegistry{handlers: make(map[string]http.HandlerFunc)}
}

// Register installs a handler for a known capability.
func (c *CapabilityRegistry) Register(name string, h http.HandlerFunc) {
	c.handlers[name] = h
}

// Invoke handles POST /api/capabilities/{name}.
func (c *CapabilityRegistry) Invoke(w http.ResponseWriter, r *http.Request) {
	name := r.PathValue("name")
	if !capabilities[name] {
		jsonError(w, http.StatusNotFound, "unknown capability")
		return
	}

	if h, ok := c.handlers[name]; ok {
		h(w, r)
		return
	}

	jsonResponse(w, http.StatusNotImplemented, map[string]string{
		"error":      "not supported",
		"capability": name,
	})
}
