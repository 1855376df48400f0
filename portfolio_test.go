package portfolio_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	portfolio "github.com/goliatone/go-portfolio"
)

func memoryConfig() portfolio.Config {
	cfg := portfolio.DefaultConfig()
	cfg.Storage.Provider = "memory"
	cfg.Assets.Provider = "memory"
	cfg.Assets.PublicBaseURL = "https://cdn.example.com"
	return cfg
}

const seedFixture = `{
	"hero": {
		"name": "John Doe",
		"published": true,
		"translations": {
			"en": {"profession": "Backend Developer"},
			"uz": {"profession": "Backend dasturchi"}
		}
	},
	"skills": [
		{"name": "Go", "icon": "go", "gradient_from": "#00ADD8", "gradient_to": "#5DC9E2", "published": true}
	],
	"stats": [
		{"value": "2+", "published": true, "translations": {"en": {"label": "Years of experience"}}}
	]
}`

func TestNewRequiresDatabaseForBunStorage(t *testing.T) {
	cfg := portfolio.DefaultConfig()
	if _, err := portfolio.New(cfg); err != portfolio.ErrDatabaseRequired {
		t.Fatalf("expected ErrDatabaseRequired, got %v", err)
	}
}

func TestSeedIsIdempotent(t *testing.T) {
	module, err := portfolio.New(memoryConfig())
	if err != nil {
		t.Fatalf("new module: %v", err)
	}

	ctx := context.Background()
	for i := 0; i < 2; i++ {
		if err := module.Seed(ctx, []byte(seedFixture)); err != nil {
			t.Fatalf("seed pass %d: %v", i+1, err)
		}
	}

	locales, err := module.Content().Locales(ctx)
	if err != nil {
		t.Fatalf("locales: %v", err)
	}
	if len(locales) != 3 {
		t.Fatalf("expected 3 locales, got %d", len(locales))
	}

	skills, err := module.Content().Skills(ctx)
	if err != nil {
		t.Fatalf("skills: %v", err)
	}
	if len(skills) != 1 {
		t.Fatalf("expected 1 seeded skill, got %d", len(skills))
	}

	hero, err := module.Content().PublishedHero(ctx)
	if err != nil {
		t.Fatalf("published hero: %v", err)
	}
	if hero == nil || hero.Name != "John Doe" {
		t.Fatalf("expected seeded hero, got %+v", hero)
	}
}

func TestSeedRejectsInvalidFixture(t *testing.T) {
	module, err := portfolio.New(memoryConfig())
	if err != nil {
		t.Fatalf("new module: %v", err)
	}
	bad := `{"skills": [{"name": "Go", "icon": "go", "gradient_from": "blue"}]}`
	if err := module.Seed(context.Background(), []byte(bad)); err == nil {
		t.Fatal("expected fixture validation error")
	}
}

func TestHandlerServesPublicAndGatesAdmin(t *testing.T) {
	module, err := portfolio.New(memoryConfig())
	if err != nil {
		t.Fatalf("new module: %v", err)
	}
	if err := module.Seed(context.Background(), []byte(seedFixture)); err != nil {
		t.Fatalf("seed: %v", err)
	}
	handler, err := module.Handler()
	if err != nil {
		t.Fatalf("handler: %v", err)
	}

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/hero?locale=ru", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 from public hero, got %d: %s", rec.Code, rec.Body.String())
	}
	var hero struct {
		Profession string `json:"profession"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &hero); err != nil {
		t.Fatalf("decode hero: %v", err)
	}
	if hero.Profession != "Backend Developer" {
		t.Fatalf("expected English fallback for ru, got %q", hero.Profession)
	}

	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/admin/projects", nil))
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 from gated admin API, got %d", rec.Code)
	}
}
