package auth

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/goliatone/go-portfolio/pkg/interfaces"
)

// RoleAdmin is the only role granted access to the admin surface.
const RoleAdmin = "admin"

var (
	ErrNoSession = errors.New("auth: no active session")
	ErrForbidden = errors.New("auth: admin role required")
)

type contextKey struct{}

// WithSession stores the resolved session on the request context.
func WithSession(ctx context.Context, session *interfaces.Session) context.Context {
	return context.WithValue(ctx, contextKey{}, session)
}

// SessionFromContext returns the session placed by the access gate, or nil.
func SessionFromContext(ctx context.Context) *interfaces.Session {
	session, _ := ctx.Value(contextKey{}).(*interfaces.Session)
	return session
}

// IsAdmin reports whether the role string grants admin access.
func IsAdmin(role string) bool {
	return strings.EqualFold(strings.TrimSpace(role), RoleAdmin)
}

// MemorySessionProvider is an in-process SessionProvider used for tests and
// local development. Sessions are keyed by a bearer token carried in the
// session cookie.
type MemorySessionProvider struct {
	mu       sync.RWMutex
	sessions map[string]*interfaces.Session
	roles    map[string]string
	ttl      time.Duration
	now      func() time.Time

	// FailRole forces Role lookups to error for fail-closed tests.
	FailRole error
}

// SessionCookie is the cookie carrying the session token.
const SessionCookie = "portfolio_session"

// NewMemorySessionProvider creates an empty provider with the given session
// lifetime.
func NewMemorySessionProvider(ttl time.Duration) *MemorySessionProvider {
	if ttl <= 0 {
		ttl = time.Hour
	}
	return &MemorySessionProvider{
		sessions: map[string]*interfaces.Session{},
		roles:    map[string]string{},
		ttl:      ttl,
		now:      func() time.Time { return time.Now().UTC() },
	}
}

// WithClock overrides the provider clock.
func (p *MemorySessionProvider) WithClock(clock func() time.Time) *MemorySessionProvider {
	if clock != nil {
		p.now = clock
	}
	return p
}

// Register creates a session for the user and returns its token.
func (p *MemorySessionProvider) Register(token string, user interfaces.AuthUser) *interfaces.Session {
	p.mu.Lock()
	defer p.mu.Unlock()
	session := &interfaces.Session{
		Token:     token,
		User:      &user,
		ExpiresAt: p.now().Add(p.ttl),
	}
	p.sessions[token] = session
	p.roles[user.ID] = user.Role
	return session
}

// Refresh resolves the session from the request cookie and extends its
// expiry, rewriting the cookie on the response.
func (p *MemorySessionProvider) Refresh(ctx context.Context, w http.ResponseWriter, r *http.Request) (*interfaces.Session, error) {
	cookie, err := r.Cookie(SessionCookie)
	if err != nil || strings.TrimSpace(cookie.Value) == "" {
		return nil, ErrNoSession
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	session, ok := p.sessions[cookie.Value]
	if !ok {
		return nil, ErrNoSession
	}
	if p.now().After(session.ExpiresAt) {
		delete(p.sessions, cookie.Value)
		return nil, ErrNoSession
	}

	session.ExpiresAt = p.now().Add(p.ttl)
	if w != nil {
		http.SetCookie(w, &http.Cookie{
			Name:     SessionCookie,
			Value:    session.Token,
			Path:     "/",
			Expires:  session.ExpiresAt,
			HttpOnly: true,
			SameSite: http.SameSiteLaxMode,
		})
	}
	clone := *session
	return &clone, nil
}

// Role returns the stored role for the user.
func (p *MemorySessionProvider) Role(ctx context.Context, userID string) (string, error) {
	if p.FailRole != nil {
		return "", p.FailRole
	}
	p.mu.RLock()
	defer p.mu.RUnlock()
	role, ok := p.roles[userID]
	if !ok {
		return "", ErrNoSession
	}
	return role, nil
}

// SignOut invalidates the session and clears the cookie.
func (p *MemorySessionProvider) SignOut(ctx context.Context, w http.ResponseWriter, session *interfaces.Session) error {
	if session != nil {
		p.mu.Lock()
		delete(p.sessions, session.Token)
		p.mu.Unlock()
	}
	if w != nil {
		http.SetCookie(w, &http.Cookie{
			Name:     SessionCookie,
			Value:    "",
			Path:     "/",
			MaxAge:   -1,
			HttpOnly: true,
			SameSite: http.SameSiteLaxMode,
		})
	}
	return nil
}
