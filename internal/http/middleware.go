package http

import (
	"net/http"
	"strings"

	"github.com/goliatone/go-portfolio/internal/auth"
	"github.com/goliatone/go-portfolio/internal/i18n"
	"github.com/goliatone/go-portfolio/pkg/interfaces"
)

// routeClass partitions the URL space for the access gate.
type routeClass int

const (
	routePublic routeClass = iota
	routeAdminLogin
	routeAdminProtected
	routeAdminAPI
)

// AccessGate enforces the admin route policy: sessions are refreshed on
// every request, admin pages require an admin role, and role lookups that
// fail are treated as unauthorized.
type AccessGate struct {
	sessions interfaces.SessionProvider
	routes   *AdminRoutes
	logger   interfaces.Logger
}

// GateOption mutates the AccessGate configuration.
type GateOption func(*AccessGate)

// NewAccessGate constructs the gate middleware.
func NewAccessGate(sessions interfaces.SessionProvider, routes *AdminRoutes, opts ...GateOption) *AccessGate {
	gate := &AccessGate{
		sessions: sessions,
		routes:   routes,
	}
	if gate.routes == nil {
		gate.routes = NewAdminRoutes("")
	}
	for _, opt := range opts {
		if opt != nil {
			opt(gate)
		}
	}
	return gate
}

// WithGateLogger wires a logger for sign-out and refresh diagnostics.
func WithGateLogger(logger interfaces.Logger) GateOption {
	return func(gate *AccessGate) {
		gate.logger = logger
	}
}

// Wrap returns a handler that applies the gate before calling next.
func (g *AccessGate) Wrap(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		class, locale := classifyRoute(r.URL.Path)

		// Refresh runs on every request so session cookies stay fresh even
		// on public pages.
		var session *interfaces.Session
		if g.sessions != nil {
			refreshed, err := g.sessions.Refresh(r.Context(), w, r)
			if err == nil {
				session = refreshed
			}
		}
		if session != nil {
			r = r.WithContext(auth.WithSession(r.Context(), session))
		}

		switch class {
		case routeAdminAPI:
			g.serveAdminAPI(w, r, next, session)
		case routeAdminProtected:
			g.serveAdminPage(w, r, next, session, locale)
		case routeAdminLogin:
			g.serveLoginPage(w, r, next, session, locale)
		default:
			next.ServeHTTP(w, r)
		}
	})
}

func (g *AccessGate) serveAdminAPI(w http.ResponseWriter, r *http.Request, next http.Handler, session *interfaces.Session) {
	if session == nil || session.User == nil {
		writeJSON(w, http.StatusUnauthorized, errorResponse{Error: "Unauthorized"})
		return
	}
	if !g.sessionIsAdmin(r, w, session) {
		writeJSON(w, http.StatusUnauthorized, errorResponse{Error: "Unauthorized"})
		return
	}
	next.ServeHTTP(w, r)
}

func (g *AccessGate) serveAdminPage(w http.ResponseWriter, r *http.Request, next http.Handler, session *interfaces.Session, locale string) {
	if session == nil || session.User == nil {
		http.Redirect(w, r, g.routes.LoginURL(locale, r.URL.RequestURI(), ""), http.StatusFound)
		return
	}
	if !g.sessionIsAdmin(r, w, session) {
		http.Redirect(w, r, g.routes.LoginURL(locale, "", "unauthorized"), http.StatusFound)
		return
	}
	next.ServeHTTP(w, r)
}

func (g *AccessGate) serveLoginPage(w http.ResponseWriter, r *http.Request, next http.Handler, session *interfaces.Session, locale string) {
	if session == nil || session.User == nil {
		next.ServeHTTP(w, r)
		return
	}
	role, err := g.sessions.Role(r.Context(), session.User.ID)
	if err != nil || !auth.IsAdmin(role) {
		next.ServeHTTP(w, r)
		return
	}
	target := safeRedirectTarget(r.URL.Query().Get("redirect"))
	if target == "" {
		target = g.routes.HomeURL(locale)
	}
	http.Redirect(w, r, target, http.StatusFound)
}

// sessionIsAdmin resolves the role for the session's user. A lookup failure
// or a non-admin role forces sign-out; lookup errors fail closed.
func (g *AccessGate) sessionIsAdmin(r *http.Request, w http.ResponseWriter, session *interfaces.Session) bool {
	role, err := g.sessions.Role(r.Context(), session.User.ID)
	if err != nil {
		if g.logger != nil {
			g.logger.Warn("gate.role_lookup_failed", "user_id", session.User.ID, "error", err)
		}
		g.signOut(r, w, session)
		return false
	}
	if !auth.IsAdmin(role) {
		g.signOut(r, w, session)
		return false
	}
	return true
}

func (g *AccessGate) signOut(r *http.Request, w http.ResponseWriter, session *interfaces.Session) {
	if err := g.sessions.SignOut(r.Context(), w, session); err != nil && g.logger != nil {
		g.logger.Warn("gate.sign_out_failed", "error", err)
	}
}

// classifyRoute maps a request path to its gate class and locale. The locale
// comes from the first path segment when it names a supported locale.
func classifyRoute(path string) (routeClass, string) {
	if path == "/api/admin" || strings.HasPrefix(path, "/api/admin/") {
		return routeAdminAPI, i18n.DefaultLocale
	}

	segments := splitPath(path)
	locale := i18n.DefaultLocale
	if len(segments) > 0 && i18n.IsSupported(strings.ToLower(segments[0])) {
		locale = strings.ToLower(segments[0])
		segments = segments[1:]
	}
	if len(segments) == 0 || segments[0] != "admin" {
		return routePublic, locale
	}
	if len(segments) > 1 && segments[1] == "login" {
		return routeAdminLogin, locale
	}
	return routeAdminProtected, locale
}

func splitPath(path string) []string {
	trimmed := strings.Trim(path, "/")
	if trimmed == "" {
		return nil
	}
	return strings.Split(trimmed, "/")
}

// safeRedirectTarget accepts only site-relative targets so the login page
// cannot bounce users to arbitrary hosts.
func safeRedirectTarget(target string) string {
	trimmed := strings.TrimSpace(target)
	if !strings.HasPrefix(trimmed, "/") || strings.HasPrefix(trimmed, "//") {
		return ""
	}
	return trimmed
}
