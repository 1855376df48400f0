package http_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	apihttp "github.com/goliatone/go-portfolio/internal/http"

	"github.com/goliatone/go-portfolio/internal/auth"
	"github.com/goliatone/go-portfolio/pkg/interfaces"
)

func newGateHandler(provider *auth.MemorySessionProvider) (http.Handler, *bool) {
	reached := false
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		reached = true
		w.WriteHeader(http.StatusOK)
	})
	gate := apihttp.NewAccessGate(provider, apihttp.NewAdminRoutes(""))
	return gate.Wrap(next), &reached
}

func sessionRequest(method, target, token string) *http.Request {
	req := httptest.NewRequest(method, target, nil)
	if token != "" {
		req.AddCookie(&http.Cookie{Name: auth.SessionCookie, Value: token})
	}
	return req
}

func redirectLocation(t *testing.T, res *http.Response) *url.URL {
	t.Helper()
	if res.StatusCode != http.StatusFound {
		t.Fatalf("expected 302, got %d", res.StatusCode)
	}
	location, err := url.Parse(res.Header.Get("Location"))
	if err != nil {
		t.Fatalf("parse location: %v", err)
	}
	return location
}

func TestGateRedirectsAnonymousAdminRequest(t *testing.T) {
	provider := auth.NewMemorySessionProvider(time.Hour)
	handler, reached := newGateHandler(provider)

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, sessionRequest(http.MethodGet, "/ru/admin/projects", ""))

	location := redirectLocation(t, rec.Result())
	if location.Path != "/ru/admin/login" {
		t.Fatalf("expected login path, got %q", location.Path)
	}
	if got := location.Query().Get("redirect"); got != "/ru/admin/projects" {
		t.Fatalf("expected redirect back to requested path, got %q", got)
	}
	if *reached {
		t.Fatal("protected handler must not run without a session")
	}
}

func TestGateForcesSignOutForNonAdminSession(t *testing.T) {
	provider := auth.NewMemorySessionProvider(time.Hour)
	provider.Register("tok-editor", interfaces.AuthUser{ID: "user-1", Email: "editor@example.com", Role: "editor"})
	handler, reached := newGateHandler(provider)

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, sessionRequest(http.MethodGet, "/en/admin", "tok-editor"))

	location := redirectLocation(t, rec.Result())
	if got := location.Query().Get("error"); got != "unauthorized" {
		t.Fatalf("expected error=unauthorized, got %q", got)
	}
	if *reached {
		t.Fatal("protected handler must not run for non-admin sessions")
	}

	// Sign-out must have invalidated the session server-side.
	if _, err := provider.Refresh(context.Background(), nil, sessionRequest(http.MethodGet, "/", "tok-editor")); !errors.Is(err, auth.ErrNoSession) {
		t.Fatalf("expected session to be revoked, got %v", err)
	}
}

func TestGateFailsClosedOnRoleLookupError(t *testing.T) {
	provider := auth.NewMemorySessionProvider(time.Hour)
	provider.Register("tok-admin", interfaces.AuthUser{ID: "user-2", Email: "admin@example.com", Role: auth.RoleAdmin})
	provider.FailRole = errors.New("role backend unavailable")
	handler, reached := newGateHandler(provider)

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, sessionRequest(http.MethodGet, "/en/admin", "tok-admin"))

	location := redirectLocation(t, rec.Result())
	if got := location.Query().Get("error"); got != "unauthorized" {
		t.Fatalf("expected error=unauthorized on lookup failure, got %q", got)
	}
	if *reached {
		t.Fatal("role lookup failures must fail closed")
	}
}

func TestGateAdminAPIRespondsUnauthorizedJSON(t *testing.T) {
	provider := auth.NewMemorySessionProvider(time.Hour)
	handler, reached := newGateHandler(provider)

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, sessionRequest(http.MethodGet, "/api/admin/projects", ""))

	res := rec.Result()
	if res.StatusCode != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", res.StatusCode)
	}
	if body := rec.Body.String(); !strings.Contains(body, `"error":"Unauthorized"`) {
		t.Fatalf("expected Unauthorized body, got %s", body)
	}
	if *reached {
		t.Fatal("API handler must not run without a session")
	}
}

func TestGateRedirectsAdminAwayFromLogin(t *testing.T) {
	provider := auth.NewMemorySessionProvider(time.Hour)
	provider.Register("tok-admin", interfaces.AuthUser{ID: "user-3", Email: "admin@example.com", Role: auth.RoleAdmin})
	handler, _ := newGateHandler(provider)

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, sessionRequest(http.MethodGet, "/uz/admin/login?redirect=%2Fuz%2Fadmin%2Fstats", "tok-admin"))

	location := redirectLocation(t, rec.Result())
	if location.Path != "/uz/admin/stats" {
		t.Fatalf("expected redirect target honoured, got %q", location.Path)
	}

	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, sessionRequest(http.MethodGet, "/uz/admin/login", "tok-admin"))
	location = redirectLocation(t, rec.Result())
	if location.Path != "/uz/admin" {
		t.Fatalf("expected admin landing, got %q", location.Path)
	}
}

func TestGateIgnoresExternalRedirectTargets(t *testing.T) {
	provider := auth.NewMemorySessionProvider(time.Hour)
	provider.Register("tok-admin", interfaces.AuthUser{ID: "user-4", Email: "admin@example.com", Role: auth.RoleAdmin})
	handler, _ := newGateHandler(provider)

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, sessionRequest(http.MethodGet, "/en/admin/login?redirect=%2F%2Fevil.example", "tok-admin"))

	location := redirectLocation(t, rec.Result())
	if location.Path != "/en/admin" {
		t.Fatalf("expected protocol-relative target rejected, got %q", location.String())
	}
}

func TestGateAllowsAdminThroughWithSessionOnContext(t *testing.T) {
	provider := auth.NewMemorySessionProvider(time.Hour)
	provider.Register("tok-admin", interfaces.AuthUser{ID: "user-5", Email: "admin@example.com", Role: auth.RoleAdmin})

	var seen *interfaces.Session
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = auth.SessionFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	})
	gate := apihttp.NewAccessGate(provider, apihttp.NewAdminRoutes(""))
	handler := gate.Wrap(next)

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, sessionRequest(http.MethodGet, "/en/admin/projects", "tok-admin"))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if seen == nil || seen.User == nil || seen.User.ID != "user-5" {
		t.Fatalf("expected session on context, got %+v", seen)
	}
}

func TestGateLeavesPublicRoutesOpen(t *testing.T) {
	provider := auth.NewMemorySessionProvider(time.Hour)
	handler, reached := newGateHandler(provider)

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, sessionRequest(http.MethodGet, "/ru/projects", ""))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if !*reached {
		t.Fatal("public handler should run unauthenticated")
	}
}
