package api

import (
	"database/sql"
	"sync"
	"time"

	"milasset/internal/idgen"
	"milasset/internal/probe"
)

// Server holds the shared dependencies of all handlers.
type Server struct {
	DB            *sql.DB
	SessionSecret string
	DefaultRole   string
	IDs           idgen.Generator
	Now           func() time.Time

	mu       sync.RWMutex
	dbStatus probe.Status
}

// now returns the current time, using the injected clock when set.
func (s *Server) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

// SetDBStatus records the outcome of the startup connectivity check.
func (s *Server) SetDBStatus(status probe.Status) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.dbStatus = status
}

// DBStatus returns the recorded connectivity check outcome.
func (s *Server) DBStatus() probe.Status {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.dbStatus
}
