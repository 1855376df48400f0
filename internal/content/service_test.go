package content_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/goliatone/go-portfolio/internal/content"
	"github.com/google/uuid"
)

type assetRemoverStub struct {
	removed []string
}

func (s *assetRemoverStub) Remove(ctx context.Context, publicURL string) {
	s.removed = append(s.removed, publicURL)
}

func newTestService(t *testing.T, opts ...content.ServiceOption) (content.Service, content.Repositories) {
	t.Helper()
	repos := content.MemoryRepositories()
	base := []content.ServiceOption{
		content.WithClock(func() time.Time {
			return time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
		}),
	}
	svc := content.NewService(repos, append(base, opts...)...)
	return svc, repos
}

func seedHero(t *testing.T, repos content.Repositories, published bool) *content.Hero {
	t.Helper()
	record, err := repos.Heroes.Save(context.Background(), &content.Hero{
		ID:          uuid.New(),
		Name:        "John Doe",
		IsPublished: published,
	})
	if err != nil {
		t.Fatalf("seed hero: %v", err)
	}
	return record
}

func TestUpdateHeroRequiresSeededRecord(t *testing.T) {
	svc, _ := newTestService(t)

	name := "John Doe"
	_, err := svc.UpdateHero(context.Background(), content.UpdateHeroRequest{Name: &name})
	if !content.IsNotFound(err) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestUpdateHeroReplacesTranslations(t *testing.T) {
	svc, repos := newTestService(t)
	seedHero(t, repos, false)

	updated, err := svc.UpdateHero(context.Background(), content.UpdateHeroRequest{
		Translations: []content.TranslationInput{
			{Locale: "en", Profession: "Backend Developer"},
			{Locale: "ru", Profession: "Бэкенд-разработчик"},
		},
	})
	if err != nil {
		t.Fatalf("update hero: %v", err)
	}
	if len(updated.Translations) != 2 {
		t.Fatalf("expected 2 translations, got %d", len(updated.Translations))
	}

	localized := updated.Localize("uz")
	if localized.Profession != "Backend Developer" {
		t.Fatalf("expected english fallback for uz, got %q", localized.Profession)
	}
}

func TestUpdateHeroRejectsTranslationsWithoutEnglish(t *testing.T) {
	svc, repos := newTestService(t)
	seedHero(t, repos, false)

	_, err := svc.UpdateHero(context.Background(), content.UpdateHeroRequest{
		Translations: []content.TranslationInput{{Locale: "ru", Profession: "Бэкенд"}},
	})
	if !errors.Is(err, content.ErrDefaultLocaleRequired) {
		t.Fatalf("expected ErrDefaultLocaleRequired, got %v", err)
	}
}

func TestPublishedHeroHiddenUntilPublished(t *testing.T) {
	svc, repos := newTestService(t)
	seedHero(t, repos, false)

	record, err := svc.PublishedHero(context.Background())
	if err != nil {
		t.Fatalf("published hero: %v", err)
	}
	if record != nil {
		t.Fatalf("expected nil for unpublished hero, got %+v", record)
	}

	if _, err := svc.SetHeroPublished(context.Background(), true, uuid.Nil); err != nil {
		t.Fatalf("publish hero: %v", err)
	}
	record, err = svc.PublishedHero(context.Background())
	if err != nil {
		t.Fatalf("published hero: %v", err)
	}
	if record == nil {
		t.Fatal("expected hero after publish")
	}
}

func TestPublishedHeroNilWhenUnseeded(t *testing.T) {
	svc, _ := newTestService(t)

	record, err := svc.PublishedHero(context.Background())
	if err != nil {
		t.Fatalf("published hero: %v", err)
	}
	if record != nil {
		t.Fatalf("expected nil hero, got %+v", record)
	}
}

func TestCreateProjectDerivesSlugFromEnglishTitle(t *testing.T) {
	svc, _ := newTestService(t)

	created, err := svc.CreateProject(context.Background(), content.CreateProjectRequest{
		Translations: []content.TranslationInput{
			{Locale: "en", Title: "Taxi Booking App"},
		},
	})
	if err != nil {
		t.Fatalf("create project: %v", err)
	}
	if created.Slug != "taxi-booking-app" {
		t.Fatalf("expected derived slug, got %q", created.Slug)
	}
}

func TestCreateProjectRejectsDuplicateSlug(t *testing.T) {
	svc, _ := newTestService(t)

	req := content.CreateProjectRequest{
		Slug: "portfolio-site",
		Translations: []content.TranslationInput{
			{Locale: "en", Title: "Portfolio Site"},
		},
	}
	if _, err := svc.CreateProject(context.Background(), req); err != nil {
		t.Fatalf("create project: %v", err)
	}
	if _, err := svc.CreateProject(context.Background(), req); !errors.Is(err, content.ErrSlugExists) {
		t.Fatalf("expected ErrSlugExists, got %v", err)
	}
}

func TestPublishedProjectsFiltersUnpublished(t *testing.T) {
	svc, _ := newTestService(t)

	if _, err := svc.CreateProject(context.Background(), content.CreateProjectRequest{
		Slug:      "visible",
		Published: true,
		Translations: []content.TranslationInput{
			{Locale: "en", Title: "Visible"},
		},
	}); err != nil {
		t.Fatalf("create project: %v", err)
	}
	if _, err := svc.CreateProject(context.Background(), content.CreateProjectRequest{
		Slug: "hidden",
		Translations: []content.TranslationInput{
			{Locale: "en", Title: "Hidden"},
		},
	}); err != nil {
		t.Fatalf("create project: %v", err)
	}

	all, err := svc.Projects(context.Background())
	if err != nil {
		t.Fatalf("projects: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("expected 2 projects on admin read, got %d", len(all))
	}

	published, err := svc.PublishedProjects(context.Background())
	if err != nil {
		t.Fatalf("published projects: %v", err)
	}
	if len(published) != 1 || published[0].Slug != "visible" {
		t.Fatalf("expected only the published project, got %+v", published)
	}
}

func TestSetProjectPublishedIsIdempotent(t *testing.T) {
	svc, _ := newTestService(t)

	created, err := svc.CreateProject(context.Background(), content.CreateProjectRequest{
		Slug:      "toggle-me",
		Published: true,
		Translations: []content.TranslationInput{
			{Locale: "en", Title: "Toggle Me"},
		},
	})
	if err != nil {
		t.Fatalf("create project: %v", err)
	}

	updated, err := svc.SetProjectPublished(context.Background(), created.ID, true, uuid.Nil)
	if err != nil {
		t.Fatalf("set published: %v", err)
	}
	if !updated.IsPublished {
		t.Fatal("expected project to remain published")
	}
}

func TestDeleteProjectCleansUpImageAsset(t *testing.T) {
	remover := &assetRemoverStub{}
	svc, _ := newTestService(t, content.WithAssetRemover(remover))

	created, err := svc.CreateProject(context.Background(), content.CreateProjectRequest{
		Slug:     "with-image",
		ImageURL: "https://cdn.example.com/projects/app.webp",
		Translations: []content.TranslationInput{
			{Locale: "en", Title: "With Image"},
		},
	})
	if err != nil {
		t.Fatalf("create project: %v", err)
	}

	if err := svc.DeleteProject(context.Background(), content.DeleteProjectRequest{ID: created.ID}); err != nil {
		t.Fatalf("delete project: %v", err)
	}
	if len(remover.removed) != 1 || remover.removed[0] != "https://cdn.example.com/projects/app.webp" {
		t.Fatalf("expected image cleanup, got %v", remover.removed)
	}
	if _, err := svc.Project(context.Background(), created.ID); !content.IsNotFound(err) {
		t.Fatalf("expected not found after delete, got %v", err)
	}
}

func TestProjectListOrderedByDisplayOrder(t *testing.T) {
	svc, _ := newTestService(t)

	for _, p := range []struct {
		slug  string
		order int
	}{
		{"third", 30},
		{"first", 10},
		{"second", 20},
	} {
		if _, err := svc.CreateProject(context.Background(), content.CreateProjectRequest{
			Slug:         p.slug,
			DisplayOrder: p.order,
			Translations: []content.TranslationInput{
				{Locale: "en", Title: p.slug},
			},
		}); err != nil {
			t.Fatalf("create project %s: %v", p.slug, err)
		}
	}

	records, err := svc.Projects(context.Background())
	if err != nil {
		t.Fatalf("projects: %v", err)
	}
	got := []string{records[0].Slug, records[1].Slug, records[2].Slug}
	want := []string{"first", "second", "third"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected order %v, got %v", want, got)
		}
	}
}

func TestCreateSkillValidatesRequiredFields(t *testing.T) {
	svc, _ := newTestService(t)

	if _, err := svc.CreateSkill(context.Background(), content.CreateSkillRequest{Icon: "go"}); !errors.Is(err, content.ErrNameRequired) {
		t.Fatalf("expected ErrNameRequired, got %v", err)
	}
	if _, err := svc.CreateSkill(context.Background(), content.CreateSkillRequest{Name: "Go"}); !errors.Is(err, content.ErrIconRequired) {
		t.Fatalf("expected ErrIconRequired, got %v", err)
	}
}

func TestCreateStatLocalizesLabel(t *testing.T) {
	svc, _ := newTestService(t)

	created, err := svc.CreateStat(context.Background(), content.CreateStatRequest{
		Value:     "2+",
		Published: true,
		Translations: []content.TranslationInput{
			{Locale: "en", Label: "Years of experience"},
			{Locale: "uz", Label: "Yillik tajriba"},
		},
	})
	if err != nil {
		t.Fatalf("create stat: %v", err)
	}

	if got := created.Localize("uz").Label; got != "Yillik tajriba" {
		t.Fatalf("expected uzbek label, got %q", got)
	}
	if got := created.Localize("ru").Label; got != "Years of experience" {
		t.Fatalf("expected english fallback for ru, got %q", got)
	}
}

func TestUpdateStatRejectsEmptyValue(t *testing.T) {
	svc, _ := newTestService(t)

	created, err := svc.CreateStat(context.Background(), content.CreateStatRequest{
		Value: "15",
		Translations: []content.TranslationInput{
			{Locale: "en", Label: "Projects"},
		},
	})
	if err != nil {
		t.Fatalf("create stat: %v", err)
	}

	empty := "  "
	if _, err := svc.UpdateStat(context.Background(), content.UpdateStatRequest{ID: created.ID, Value: &empty}); !errors.Is(err, content.ErrValueRequired) {
		t.Fatalf("expected ErrValueRequired, got %v", err)
	}
}

func TestValidateTranslationsRejectsDuplicatesAndUnknownLocales(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.CreateStat(context.Background(), content.CreateStatRequest{
		Value: "5",
		Translations: []content.TranslationInput{
			{Locale: "en", Label: "One"},
			{Locale: "en", Label: "Two"},
		},
	})
	if !errors.Is(err, content.ErrDuplicateLocale) {
		t.Fatalf("expected ErrDuplicateLocale, got %v", err)
	}

	_, err = svc.CreateStat(context.Background(), content.CreateStatRequest{
		Value: "5",
		Translations: []content.TranslationInput{
			{Locale: "en", Label: "One"},
			{Locale: "fr", Label: "Un"},
		},
	})
	if !errors.Is(err, content.ErrUnknownLocale) {
		t.Fatalf("expected ErrUnknownLocale, got %v", err)
	}
}
