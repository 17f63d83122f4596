package api

import (
	"context"
	"log"
	"net/http"
	"strings"
	"time"

	"milasset/internal/auth"
	"milasset/internal/model"
)

type contextKey string

const (
	identityKey contextKey = "identity"
	claimsKey   contextKey = "claims"
)

// SessionCookie is the name of the session cookie.
const SessionCookie = "session"

// IdentityMiddleware resolves the acting identity from the session token.
// The token is read from the session cookie, or from the Authorization
// header as a fallback. A missing or invalid token is not an error; the
// request proceeds as the default role viewing the dashboard.
func IdentityMiddleware(secret, defaultRole string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims := sessionClaims(r, secret)

			var ident model.Identity
			var ok bool
			if claims != nil {
				ident, ok = model.IdentityFor(claims.Role)
			}
			if !ok {
				ident, _ = model.IdentityFor(defaultRole)
				claims = &auth.Claims{Role: ident.Role, ActiveSection: model.SectionDashboard}
			}

			ctx := context.WithValue(r.Context(), identityKey, ident)
			ctx = context.WithValue(ctx, claimsKey, claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// sessionClaims extracts and validates the session token, if any.
func sessionClaims(r *http.Request, secret string) *auth.Claims {
	tokenStr := ""
	if cookie, err := r.Cookie(SessionCookie); err == nil {
		tokenStr = cookie.Value
	} else if header := r.Header.Get("Authorization"); strings.HasPrefix(header, "Bearer ") {
		tokenStr = strings.TrimPrefix(header, "Bearer ")
	}
	if tokenStr == "" {
		return nil
	}

	claims, err := auth.ValidateToken(secret, tokenStr)
	if err != nil {
		return nil
	}
	return claims
}

// GetIdentity retrieves the acting identity from the context.
func GetIdentity(ctx context.Context) model.Identity {
	ident, _ := ctx.Value(identityKey).(model.Identity)
	return ident
}

// GetClaims retrieves the session claims from the context.
func GetClaims(ctx context.Context) *auth.Claims {
	claims, _ := ctx.Value(claimsKey).(*auth.Claims)
	return claims
}

// requireSection enforces section access at render time. It writes a 403
// and returns false when the acting identity may not view the section.
func requireSection(w http.ResponseWriter, r *http.Request, section string) bool {
	ident := GetIdentity(r.Context())
	if !ident.Allows(section) {
		jsonError(w, http.StatusForbidden, "access denied")
		return false
	}
	return true
}

// statusRecorder wraps http.ResponseWriter to capture the status code.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

// LoggingMiddleware logs HTTP requests with method, path, status, and duration.
func LoggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		log.Printf("%s %s %d %s", r.Method, r.URL.RequestURI(), rec.status, time.Since(start).Round(time.Millisecond))
	})
}
