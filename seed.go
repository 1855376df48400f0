package portfolio

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/goliatone/go-portfolio/internal/content"
	"github.com/goliatone/go-portfolio/internal/i18n"
	"github.com/goliatone/go-portfolio/internal/identity"
	"github.com/goliatone/go-portfolio/internal/validation"
)

type seedTranslation struct {
	Title         string   `json:"title"`
	Description   string   `json:"description"`
	Profession    string   `json:"profession"`
	PrimaryCTA    string   `json:"primary_cta"`
	SecondaryCTA  string   `json:"secondary_cta"`
	Location      string   `json:"location"`
	Availability  string   `json:"availability"`
	Education     string   `json:"education"`
	ServicesTitle string   `json:"services_title"`
	Services      []string `json:"services"`
	Label         string   `json:"label"`
}

type seedHero struct {
	Name         string                     `json:"name"`
	ResumeURL    string                     `json:"resume_url"`
	Published    bool                       `json:"published"`
	Translations map[string]seedTranslation `json:"translations"`
}

type seedAbout struct {
	ImageURL     string                     `json:"image_url"`
	Published    bool                       `json:"published"`
	Translations map[string]seedTranslation `json:"translations"`
}

type seedProject struct {
	Slug         string                     `json:"slug"`
	ImageURL     string                     `json:"image_url"`
	LiveURL      string                     `json:"live_url"`
	RepoURL      string                     `json:"repo_url"`
	Tech         []string                   `json:"tech"`
	DisplayOrder int                        `json:"display_order"`
	Published    bool                       `json:"published"`
	Translations map[string]seedTranslation `json:"translations"`
}

type seedSkill struct {
	Name         string `json:"name"`
	Icon         string `json:"icon"`
	GradientFrom string `json:"gradient_from"`
	GradientTo   string `json:"gradient_to"`
	DisplayOrder int    `json:"display_order"`
	Published    bool   `json:"published"`
}

type seedStat struct {
	Value        string                     `json:"value"`
	DisplayOrder int                        `json:"display_order"`
	Published    bool                       `json:"published"`
	Translations map[string]seedTranslation `json:"translations"`
}

type seedFixture struct {
	Hero     *seedHero     `json:"hero"`
	About    *seedAbout    `json:"about"`
	Projects []seedProject `json:"projects"`
	Skills   []seedSkill   `json:"skills"`
	Stats    []seedStat    `json:"stats"`
}

var seedLocaleNames = map[string][2]string{
	"en": {"English", "English"},
	"ru": {"Russian", "Русский"},
	"uz": {"Uzbek", "Oʻzbekcha"},
}

// Seed ensures the locale registry exists and, when a fixture is provided,
// bootstraps the initial content. Identifiers are derived deterministically
// so repeated runs upsert instead of duplicating, and existing records are
// never overwritten.
func (m *Module) Seed(ctx context.Context, fixture []byte) error {
	if err := m.seedLocales(ctx); err != nil {
		return err
	}
	if len(fixture) == 0 {
		return nil
	}

	if _, err := validation.ValidateSeedDocument(fixture); err != nil {
		return err
	}
	var doc seedFixture
	if err := json.Unmarshal(fixture, &doc); err != nil {
		return fmt.Errorf("portfolio: decode seed fixture: %w", err)
	}

	if err := m.seedHero(ctx, doc.Hero); err != nil {
		return err
	}
	if err := m.seedAbout(ctx, doc.About); err != nil {
		return err
	}
	if err := m.seedProjects(ctx, doc.Projects); err != nil {
		return err
	}
	if err := m.seedSkills(ctx, doc.Skills); err != nil {
		return err
	}
	return m.seedStats(ctx, doc.Stats)
}

func (m *Module) seedLocales(ctx context.Context) error {
	now := time.Now().UTC()
	for _, code := range i18n.SupportedLocales() {
		names := seedLocaleNames[code]
		native := names[1]
		record := &content.Locale{
			ID:         identity.LocaleUUID(code),
			Code:       code,
			Display:    names[0],
			NativeName: &native,
			IsActive:   true,
			IsDefault:  code == i18n.DefaultLocale,
			CreatedAt:  now,
		}
		if _, err := m.repos.Locales.Save(ctx, record); err != nil {
			return fmt.Errorf("portfolio: seed locale %s: %w", code, err)
		}
	}
	return nil
}

func (m *Module) seedHero(ctx context.Context, seed *seedHero) error {
	if seed == nil {
		return nil
	}
	if _, err := m.repos.Heroes.Get(ctx); err == nil {
		return nil
	} else if !content.IsNotFound(err) {
		return err
	}

	now := time.Now().UTC()
	heroID := identity.HeroUUID()
	if _, err := m.repos.Heroes.Save(ctx, &content.Hero{
		ID:          heroID,
		Name:        seed.Name,
		ResumeURL:   seed.ResumeURL,
		IsPublished: seed.Published,
		CreatedAt:   now,
		UpdatedAt:   now,
	}); err != nil {
		return fmt.Errorf("portfolio: seed hero: %w", err)
	}

	translations := make([]*content.HeroTranslation, 0, len(seed.Translations))
	for locale, tr := range seed.Translations {
		translations = append(translations, &content.HeroTranslation{
			ID:           identity.UUID("go-portfolio:hero:translation:" + locale),
			HeroID:       heroID,
			Locale:       locale,
			Profession:   tr.Profession,
			Description:  tr.Description,
			PrimaryCTA:   tr.PrimaryCTA,
			SecondaryCTA: tr.SecondaryCTA,
			CreatedAt:    now,
			UpdatedAt:    now,
		})
	}
	return m.repos.Heroes.ReplaceTranslations(ctx, heroID, translations)
}

func (m *Module) seedAbout(ctx context.Context, seed *seedAbout) error {
	if seed == nil {
		return nil
	}
	if _, err := m.repos.Abouts.Get(ctx); err == nil {
		return nil
	} else if !content.IsNotFound(err) {
		return err
	}

	now := time.Now().UTC()
	aboutID := identity.AboutUUID()
	if _, err := m.repos.Abouts.Save(ctx, &content.About{
		ID:          aboutID,
		ImageURL:    seed.ImageURL,
		IsPublished: seed.Published,
		CreatedAt:   now,
		UpdatedAt:   now,
	}); err != nil {
		return fmt.Errorf("portfolio: seed about: %w", err)
	}

	translations := make([]*content.AboutTranslation, 0, len(seed.Translations))
	for locale, tr := range seed.Translations {
		translations = append(translations, &content.AboutTranslation{
			ID:            identity.UUID("go-portfolio:about:translation:" + locale),
			AboutID:       aboutID,
			Locale:        locale,
			Title:         tr.Title,
			Description:   tr.Description,
			Location:      tr.Location,
			Availability:  tr.Availability,
			Education:     tr.Education,
			ServicesTitle: tr.ServicesTitle,
			Services:      tr.Services,
			CreatedAt:     now,
			UpdatedAt:     now,
		})
	}
	return m.repos.Abouts.ReplaceTranslations(ctx, aboutID, translations)
}

func (m *Module) seedProjects(ctx context.Context, seeds []seedProject) error {
	now := time.Now().UTC()
	for _, seed := range seeds {
		if _, err := m.repos.Projects.GetBySlug(ctx, seed.Slug); err == nil {
			continue
		} else if !content.IsNotFound(err) {
			return err
		}

		projectID := identity.ProjectUUID(seed.Slug)
		if _, err := m.repos.Projects.Create(ctx, &content.Project{
			ID:           projectID,
			Slug:         seed.Slug,
			ImageURL:     seed.ImageURL,
			LiveURL:      seed.LiveURL,
			RepoURL:      seed.RepoURL,
			Tech:         seed.Tech,
			DisplayOrder: seed.DisplayOrder,
			IsPublished:  seed.Published,
			CreatedAt:    now,
			UpdatedAt:    now,
		}); err != nil {
			return fmt.Errorf("portfolio: seed project %s: %w", seed.Slug, err)
		}

		translations := make([]*content.ProjectTranslation, 0, len(seed.Translations))
		for locale, tr := range seed.Translations {
			translations = append(translations, &content.ProjectTranslation{
				ID:          identity.UUID("go-portfolio:project:" + seed.Slug + ":translation:" + locale),
				ProjectID:   projectID,
				Locale:      locale,
				Title:       tr.Title,
				Description: tr.Description,
				CreatedAt:   now,
				UpdatedAt:   now,
			})
		}
		if err := m.repos.Projects.ReplaceTranslations(ctx, projectID, translations); err != nil {
			return fmt.Errorf("portfolio: seed project %s translations: %w", seed.Slug, err)
		}
	}
	return nil
}

func (m *Module) seedSkills(ctx context.Context, seeds []seedSkill) error {
	existing, err := m.repos.Skills.List(ctx)
	if err != nil {
		return err
	}
	byName := make(map[string]bool, len(existing))
	for _, record := range existing {
		byName[strings.ToLower(record.Name)] = true
	}

	now := time.Now().UTC()
	for _, seed := range seeds {
		if byName[strings.ToLower(seed.Name)] {
			continue
		}
		if _, err := m.repos.Skills.Create(ctx, &content.Skill{
			ID:           identity.SkillUUID(seed.Name),
			Name:         seed.Name,
			Icon:         seed.Icon,
			GradientFrom: seed.GradientFrom,
			GradientTo:   seed.GradientTo,
			DisplayOrder: seed.DisplayOrder,
			IsPublished:  seed.Published,
			CreatedAt:    now,
			UpdatedAt:    now,
		}); err != nil {
			return fmt.Errorf("portfolio: seed skill %s: %w", seed.Name, err)
		}
	}
	return nil
}

func (m *Module) seedStats(ctx context.Context, seeds []seedStat) error {
	existing, err := m.repos.Stats.List(ctx)
	if err != nil {
		return err
	}
	byValue := make(map[string]bool, len(existing))
	for _, record := range existing {
		byValue[strings.ToLower(record.Value)] = true
	}

	now := time.Now().UTC()
	for _, seed := range seeds {
		if byValue[strings.ToLower(seed.Value)] {
			continue
		}
		statID := identity.StatUUID(seed.Value)
		if _, err := m.repos.Stats.Create(ctx, &content.Stat{
			ID:           statID,
			Value:        seed.Value,
			DisplayOrder: seed.DisplayOrder,
			IsPublished:  seed.Published,
			CreatedAt:    now,
			UpdatedAt:    now,
		}); err != nil {
			return fmt.Errorf("portfolio: seed stat %s: %w", seed.Value, err)
		}

		translations := make([]*content.StatTranslation, 0, len(seed.Translations))
		for locale, tr := range seed.Translations {
			translations = append(translations, &content.StatTranslation{
				ID:        identity.UUID("go-portfolio:stat:" + seed.Value + ":translation:" + locale),
				StatID:    statID,
				Locale:    locale,
				Label:     tr.Label,
				CreatedAt: now,
				UpdatedAt: now,
			})
		}
		if err := m.repos.Stats.ReplaceTranslations(ctx, statID, translations); err != nil {
			return fmt.Errorf("portfolio: seed stat %s translations: %w", seed.Value, err)
		}
	}
	return nil
}
