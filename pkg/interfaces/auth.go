package interfaces

import (
	"context"
	"net/http"
	"time"
)

// AuthUser describes the authenticated principal attached to a session.
type AuthUser struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

// Session carries the authenticated state for a single request.
type Session struct {
	Token     string
	User      *AuthUser
	ExpiresAt time.Time
}

// SessionProvider abstracts the external auth backend. Refresh is attempted on
// every request regardless of route classification so session cookies stay
// fresh; implementations return a nil session (not an error) for anonymous
// requests.
type SessionProvider interface {
	// Refresh validates the session carried by the request, extends it when
	// possible, and writes refreshed cookies to the response.
	Refresh(ctx context.Context, w http.ResponseWriter, r *http.Request) (*Session, error)
	// Role resolves the role associated with the session's user. Lookup
	// failures must be treated by callers as "not authorized" (fail closed).
	Role(ctx context.Context, userID string) (string, error)
	// SignOut terminates the session and clears its cookies.
	SignOut(ctx context.Context, w http.ResponseWriter, session *Session) error
}
