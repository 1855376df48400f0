package http

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/goliatone/go-portfolio/internal/content"
	"github.com/goliatone/go-portfolio/internal/i18n"
	"github.com/goliatone/go-portfolio/pkg/interfaces"
)

// PublicAPI serves the read-only localized portfolio endpoints. Every read
// is publish gated; unpublished singletons render as null rather than 404.
type PublicAPI struct {
	basePath string
	content  content.Service
	sessions interfaces.SessionProvider
}

// PublicOption mutates the PublicAPI configuration.
type PublicOption func(*PublicAPI)

// NewPublicAPI constructs a PublicAPI instance.
func NewPublicAPI(opts ...PublicOption) *PublicAPI {
	api := &PublicAPI{
		basePath: "/api",
	}
	for _, opt := range opts {
		if opt != nil {
			opt(api)
		}
	}
	return api
}

// WithPublicBasePath overrides the base API path (defaults to "/api").
func WithPublicBasePath(path string) PublicOption {
	return func(api *PublicAPI) {
		if trimmed := strings.TrimSpace(path); trimmed != "" {
			api.basePath = trimmed
		}
	}
}

// WithPublicContentService wires the content service.
func WithPublicContentService(service content.Service) PublicOption {
	return func(api *PublicAPI) {
		api.content = service
	}
}

// WithPublicSessionProvider wires the session provider for /auth/session.
func WithPublicSessionProvider(provider interfaces.SessionProvider) PublicOption {
	return func(api *PublicAPI) {
		api.sessions = provider
	}
}

// Register attaches the public endpoints to the provided mux.
func (api *PublicAPI) Register(mux *http.ServeMux) error {
	if mux == nil {
		return fmt.Errorf("http: mux is required")
	}

	base := joinPath(api.basePath, "")
	mux.HandleFunc("GET "+joinPath(base, "hero"), api.handleHero)
	mux.HandleFunc("GET "+joinPath(base, "about"), api.handleAbout)
	mux.HandleFunc("GET "+joinPath(base, "projects"), api.handleProjects)
	mux.HandleFunc("GET "+joinPath(base, "skills"), api.handleSkills)
	mux.HandleFunc("GET "+joinPath(base, "stats"), api.handleStats)
	mux.HandleFunc("GET "+joinPath(base, "locales"), api.handleLocales)
	mux.HandleFunc("GET "+joinPath(base, "auth/session"), api.handleSession)
	return nil
}

// requestLocale validates the locale query parameter. An absent parameter
// defaults to English; an unknown one is a client error rather than a silent
// fallback.
func requestLocale(w http.ResponseWriter, r *http.Request) (string, bool) {
	raw := strings.TrimSpace(r.URL.Query().Get("locale"))
	if raw == "" {
		return i18n.DefaultLocale, true
	}
	locale := strings.ToLower(raw)
	if !i18n.IsSupported(locale) {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "Invalid locale"})
		return "", false
	}
	return locale, true
}

func (api *PublicAPI) handleHero(w http.ResponseWriter, r *http.Request) {
	if api.content == nil {
		writeJSON(w, http.StatusServiceUnavailable, errorResponse{Error: "service_unavailable"})
		return
	}
	locale, ok := requestLocale(w, r)
	if !ok {
		return
	}
	record, err := api.content.PublishedHero(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	if record == nil {
		writeJSON(w, http.StatusOK, nil)
		return
	}
	writeJSON(w, http.StatusOK, record.Localize(locale))
}

func (api *PublicAPI) handleAbout(w http.ResponseWriter, r *http.Request) {
	if api.content == nil {
		writeJSON(w, http.StatusServiceUnavailable, errorResponse{Error: "service_unavailable"})
		return
	}
	locale, ok := requestLocale(w, r)
	if !ok {
		return
	}
	record, err := api.content.PublishedAbout(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	if record == nil {
		writeJSON(w, http.StatusOK, nil)
		return
	}
	writeJSON(w, http.StatusOK, record.Localize(locale))
}

func (api *PublicAPI) handleProjects(w http.ResponseWriter, r *http.Request) {
	if api.content == nil {
		writeJSON(w, http.StatusServiceUnavailable, errorResponse{Error: "service_unavailable"})
		return
	}
	locale, ok := requestLocale(w, r)
	if !ok {
		return
	}
	records, err := api.content.PublishedProjects(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	localized := make([]*content.LocalizedProject, 0, len(records))
	for _, record := range records {
		localized = append(localized, record.Localize(locale))
	}
	writeJSON(w, http.StatusOK, localized)
}

func (api *PublicAPI) handleSkills(w http.ResponseWriter, r *http.Request) {
	if api.content == nil {
		writeJSON(w, http.StatusServiceUnavailable, errorResponse{Error: "service_unavailable"})
		return
	}
	if _, ok := requestLocale(w, r); !ok {
		return
	}
	records, err := api.content.PublishedSkills(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, records)
}

func (api *PublicAPI) handleStats(w http.ResponseWriter, r *http.Request) {
	if api.content == nil {
		writeJSON(w, http.StatusServiceUnavailable, errorResponse{Error: "service_unavailable"})
		return
	}
	locale, ok := requestLocale(w, r)
	if !ok {
		return
	}
	records, err := api.content.PublishedStats(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	localized := make([]*content.LocalizedStat, 0, len(records))
	for _, record := range records {
		localized = append(localized, record.Localize(locale))
	}
	writeJSON(w, http.StatusOK, localized)
}

func (api *PublicAPI) handleLocales(w http.ResponseWriter, r *http.Request) {
	if api.content == nil {
		writeJSON(w, http.StatusServiceUnavailable, errorResponse{Error: "service_unavailable"})
		return
	}
	records, err := api.content.Locales(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, records)
}

type sessionResponse struct {
	User *interfaces.AuthUser `json:"user"`
}

// handleSession reports the current session without ever failing: an absent
// or expired session is a 200 with a null user.
func (api *PublicAPI) handleSession(w http.ResponseWriter, r *http.Request) {
	if api.sessions == nil {
		writeJSON(w, http.StatusOK, sessionResponse{})
		return
	}
	session, err := api.sessions.Refresh(r.Context(), w, r)
	if err != nil || session == nil {
		writeJSON(w, http.StatusOK, sessionResponse{})
		return
	}
	writeJSON(w, http.StatusOK, sessionResponse{User: session.User})
}
