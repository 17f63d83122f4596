package api

import "net/http"

// NewRouter creates the API router with all endpoints registered.
func NewRouter(s *Server, capabilities *CapabilityRegistry) http.Handler {
	mux := http.NewServeMux()

	// Session and metadata.
	mux.HandleFunc("GET /api/session", s.GetSession)
	mux.HandleFunc("PUT /api/session/role", s.SwitchRole)
	mux.HandleFunc("PUT /api/session/section", s.SwitchSection)
	mux.HandleFunc("GET /api/meta", s.Meta)
	mux.HandleFunc("GET /api/status", s.Status)

	// Dashboard.
	mux.HandleFunc("GET /api/dashboard", s.Dashboard)

	// Purchases.
	mux.HandleFunc("GET /api/purchases", s.ListPurchases)
	mux.HandleFunc("POST /api/purchases", s.CreatePurchase)

	// Transfers.
	mux.HandleFunc("GET /api/transfers", s.ListTransfers)
	mux.HandleFunc("POST /api/transfers", s.CreateTransfer)

	// Assignments and expenditures.
	mux.HandleFunc("GET /api/assignments", s.ListAssignments)
	mux.HandleFunc("POST /api/assignments", s.CreateAssignment)
	mux.HandleFunc("GET /api/expenditures", s.ListExpenditures)
	mux.HandleFunc("POST /api/expenditures", s.CreateExpenditure)

	// Named but unimplemented dashboard actions.
	mux.HandleFunc("POST /api/capabilities/{name}", capabilities.Invoke)

	identity := IdentityMiddleware(s.SessionSecret, s.DefaultRole)
	return LoggingMiddleware(identity(mux))
}
