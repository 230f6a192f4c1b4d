package middleware

import (
	"net"
	"net/http"
	"strings"

	"github.com/cairncms/cairn/pkg/access"
	"github.com/cairncms/cairn/pkg/identity"
)

// SessionAuthenticator is middleware that confirms session bearer tokens
type SessionAuthenticator struct {
	Manager *access.Manager
}

// NewSessionAuthenticator creates a new session authenticator middleware
func NewSessionAuthenticator(manager *access.Manager) *SessionAuthenticator {
	return &SessionAuthenticator{Manager: manager}
}

// TokenFromRequest extracts the session token from the Authorization
// header. Both "Bearer <token>" and a bare token are accepted.
func TokenFromRequest(r *http.Request) string {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return ""
	}
	if strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimPrefix(authHeader, "Bearer ")
	}
	return authHeader
}

// ClientIP returns the caller's IP, honoring X-Forwarded-For.
func ClientIP(r *http.Request) net.IP {
	if forwarded := r.Header.Get("X-Forwarded-For"); forwarded != "" {
		first := strings.TrimSpace(strings.Split(forwarded, ",")[0])
		if ip := net.ParseIP(first); ip != nil {
			return ip
		}
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return net.ParseIP(r.RemoteAddr)
	}
	return net.ParseIP(host)
}

// Middleware returns an HTTP middleware that confirms the session token
// and stores the resulting identity in the request context
func (s *SessionAuthenticator) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := TokenFromRequest(r)
		if token == "" {
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = w.Write([]byte("Authorization missing"))
			return
		}

		session, account, err := s.Manager.ConfirmToken(r.Context(), token)
		if err != nil {
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = w.Write([]byte("Invalid session"))
			return
		}

		id := identity.FromSession(session, account).WithRemoteIP(ClientIP(r))
		r = r.WithContext(identity.Set(r.Context(), id))

		next.ServeHTTP(w, r)
	})
}
