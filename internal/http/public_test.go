package http_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	apihttp "github.com/goliatone/go-portfolio/internal/http"

	"github.com/goliatone/go-portfolio/internal/auth"
	"github.com/goliatone/go-portfolio/internal/content"
	"github.com/goliatone/go-portfolio/pkg/interfaces"
	"github.com/google/uuid"
)

func newPublicServer(t *testing.T, repos content.Repositories, provider *auth.MemorySessionProvider) *http.ServeMux {
	t.Helper()
	service := content.NewService(repos)
	api := apihttp.NewPublicAPI(
		apihttp.WithPublicContentService(service),
		apihttp.WithPublicSessionProvider(provider),
	)
	mux := http.NewServeMux()
	if err := api.Register(mux); err != nil {
		t.Fatalf("register public api: %v", err)
	}
	return mux
}

func seedPublicHero(t *testing.T, repos content.Repositories, published bool) {
	t.Helper()
	heroID := uuid.New()
	_, err := repos.Heroes.Save(context.Background(), &content.Hero{
		ID:          heroID,
		Name:        "John Doe",
		ResumeURL:   "https://cdn.example.com/resumes/cv.pdf",
		IsPublished: published,
		Translations: []*content.HeroTranslation{
			{ID: uuid.New(), HeroID: heroID, Locale: "en", Profession: "Backend Developer"},
			{ID: uuid.New(), HeroID: heroID, Locale: "ru", Profession: "Бэкенд-разработчик"},
		},
	})
	if err != nil {
		t.Fatalf("seed hero: %v", err)
	}
}

func TestPublicHeroRejectsUnknownLocale(t *testing.T) {
	repos := content.MemoryRepositories()
	mux := newPublicServer(t, repos, nil)

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/hero?locale=fr", nil))

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	var body map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if body["error"] != "Invalid locale" {
		t.Fatalf("expected Invalid locale, got %q", body["error"])
	}
}

func TestPublicHeroRendersNullWhenUnpublished(t *testing.T) {
	repos := content.MemoryRepositories()
	seedPublicHero(t, repos, false)
	mux := newPublicServer(t, repos, nil)

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/hero", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if body := strings.TrimSpace(rec.Body.String()); body != "null" {
		t.Fatalf("expected literal null body, got %q", body)
	}
	var payload *content.LocalizedHero
	if err := json.Unmarshal(rec.Body.Bytes(), &payload); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if payload != nil {
		t.Fatalf("expected null body for unpublished hero, got %+v", payload)
	}
}

func TestPublicHeroLocalizesWithFallback(t *testing.T) {
	repos := content.MemoryRepositories()
	seedPublicHero(t, repos, true)
	mux := newPublicServer(t, repos, nil)

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/hero?locale=uz", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var payload content.LocalizedHero
	if err := json.Unmarshal(rec.Body.Bytes(), &payload); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if payload.Profession != "Backend Developer" {
		t.Fatalf("expected English fallback for uz, got %q", payload.Profession)
	}
}

func TestPublicProjectsFilterUnpublished(t *testing.T) {
	repos := content.MemoryRepositories()
	service := content.NewService(repos)

	ctx := context.Background()
	for _, req := range []content.CreateProjectRequest{
		{
			Published: true,
			Translations: []content.TranslationInput{
				{Locale: "en", Title: "Taxi Booking App", Description: "Realtime dispatch"},
				{Locale: "ru", Title: "Приложение такси"},
			},
		},
		{
			Published: false,
			Translations: []content.TranslationInput{
				{Locale: "en", Title: "Unreleased Side Project"},
			},
		},
	} {
		if _, err := service.CreateProject(ctx, req); err != nil {
			t.Fatalf("create project: %v", err)
		}
	}

	mux := newPublicServer(t, repos, nil)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/projects?locale=ru", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var payload []content.LocalizedProject
	if err := json.Unmarshal(rec.Body.Bytes(), &payload); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if len(payload) != 1 {
		t.Fatalf("expected one published project, got %d", len(payload))
	}
	if payload[0].Title != "Приложение такси" {
		t.Fatalf("expected ru title, got %q", payload[0].Title)
	}
	if payload[0].Description != "Realtime dispatch" {
		t.Fatalf("expected English description fallback, got %q", payload[0].Description)
	}
}

func TestPublicSessionEndpointNeverFails(t *testing.T) {
	repos := content.MemoryRepositories()
	provider := auth.NewMemorySessionProvider(time.Hour)
	provider.Register("tok-admin", interfaces.AuthUser{ID: "user-1", Email: "admin@example.com", Role: auth.RoleAdmin})
	mux := newPublicServer(t, repos, provider)

	// Anonymous request still gets a 200 with a null user.
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/auth/session", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var anonymous struct {
		User *interfaces.AuthUser `json:"user"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &anonymous); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if anonymous.User != nil {
		t.Fatalf("expected null user, got %+v", anonymous.User)
	}

	req := httptest.NewRequest(http.MethodGet, "/api/auth/session", nil)
	req.AddCookie(&http.Cookie{Name: auth.SessionCookie, Value: "tok-admin"})
	rec = httptest.NewRecorder()
	mux.ServeHTTP(rec, req)
	var authed struct {
		User *interfaces.AuthUser `json:"user"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &authed); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if authed.User == nil || authed.User.ID != "user-1" {
		t.Fatalf("expected session user, got %+v", authed.User)
	}
}
