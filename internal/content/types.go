package content

import (
	"time"

	"github.com/uptrace/bun"

	"github.com/goliatone/go-portfolio/internal/i18n"
	"github.com/google/uuid"
)

// Locale represents supported languages for the portfolio.
type Locale struct {
	bun.BaseModel `bun:"table:locales,alias:l"`

	ID         uuid.UUID  `bun:",pk,type:uuid"        json:"id"`
	Code       string     `bun:"code,notnull"         json:"code"`
	Display    string     `bun:"display_name,notnull" json:"display_name"`
	NativeName *string    `bun:"native_name"          json:"native_name,omitempty"`
	IsActive   bool       `bun:"is_active,notnull,default:true"   json:"is_active"`
	IsDefault  bool       `bun:"is_default,notnull,default:false" json:"is_default"`
	DeletedAt  *time.Time `bun:"deleted_at,nullzero"  json:"deleted_at,omitempty"`
	CreatedAt  time.Time  `bun:"created_at,nullzero,default:current_timestamp" json:"created_at"`
}

// Hero is the singleton masthead record. The name is locale-invariant; the
// profession, description, and call-to-action labels live on translations.
type Hero struct {
	bun.BaseModel `bun:"table:heroes,alias:h"`

	ID           uuid.UUID          `bun:",pk,type:uuid" json:"id"`
	Name         string             `bun:"name,notnull" json:"name"`
	ResumeURL    string             `bun:"resume_url" json:"resume_url"`
	IsPublished  bool               `bun:"is_published,notnull,default:false" json:"is_published"`
	CreatedAt    time.Time          `bun:"created_at,nullzero,default:current_timestamp" json:"created_at"`
	UpdatedAt    time.Time          `bun:"updated_at,nullzero,default:current_timestamp" json:"updated_at"`
	Translations []*HeroTranslation `bun:"rel:has-many,join:id=hero_id" json:"translations,omitempty"`
}

// HeroTranslation stores the localized hero copy for one locale.
type HeroTranslation struct {
	bun.BaseModel `bun:"table:hero_translations,alias:ht"`

	ID           uuid.UUID `bun:",pk,type:uuid" json:"id"`
	HeroID       uuid.UUID `bun:"hero_id,notnull,type:uuid" json:"hero_id"`
	Locale       string    `bun:"locale,notnull" json:"locale"`
	Profession   string    `bun:"profession,notnull" json:"profession"`
	Description  string    `bun:"description" json:"description"`
	PrimaryCTA   string    `bun:"primary_cta" json:"primary_cta"`
	SecondaryCTA string    `bun:"secondary_cta" json:"secondary_cta"`
	CreatedAt    time.Time `bun:"created_at,nullzero,default:current_timestamp" json:"created_at"`
	UpdatedAt    time.Time `bun:"updated_at,nullzero,default:current_timestamp" json:"updated_at"`
}

// About is the singleton biography record.
type About struct {
	bun.BaseModel `bun:"table:abouts,alias:a"`

	ID           uuid.UUID           `bun:",pk,type:uuid" json:"id"`
	ImageURL     string              `bun:"image_url" json:"image_url"`
	IsPublished  bool                `bun:"is_published,notnull,default:false" json:"is_published"`
	CreatedAt    time.Time           `bun:"created_at,nullzero,default:current_timestamp" json:"created_at"`
	UpdatedAt    time.Time           `bun:"updated_at,nullzero,default:current_timestamp" json:"updated_at"`
	Translations []*AboutTranslation `bun:"rel:has-many,join:id=about_id" json:"translations,omitempty"`
}

// AboutTranslation stores the localized biography copy for one locale.
type AboutTranslation struct {
	bun.BaseModel `bun:"table:about_translations,alias:at"`

	ID            uuid.UUID `bun:",pk,type:uuid" json:"id"`
	AboutID       uuid.UUID `bun:"about_id,notnull,type:uuid" json:"about_id"`
	Locale        string    `bun:"locale,notnull" json:"locale"`
	Title         string    `bun:"title,notnull" json:"title"`
	Description   string    `bun:"description" json:"description"`
	Location      string    `bun:"location" json:"location"`
	Availability  string    `bun:"availability" json:"availability"`
	Education     string    `bun:"education" json:"education"`
	ServicesTitle string    `bun:"services_title" json:"services_title"`
	Services      []string  `bun:"services,type:jsonb" json:"services,omitempty"`
	CreatedAt     time.Time `bun:"created_at,nullzero,default:current_timestamp" json:"created_at"`
	UpdatedAt     time.Time `bun:"updated_at,nullzero,default:current_timestamp" json:"updated_at"`
}

// Project is a portfolio entry. Title and description are localized through
// translations; URLs and the technology list are locale-invariant.
type Project struct {
	bun.BaseModel `bun:"table:projects,alias:p"`

	ID           uuid.UUID             `bun:",pk,type:uuid" json:"id"`
	Slug         string                `bun:"slug,notnull" json:"slug"`
	ImageURL     string                `bun:"image_url" json:"image_url"`
	LiveURL      string                `bun:"live_url" json:"live_url"`
	RepoURL      string                `bun:"repo_url" json:"repo_url"`
	Tech         []string              `bun:"tech,type:jsonb" json:"tech,omitempty"`
	DisplayOrder int                   `bun:"display_order,notnull,default:0" json:"display_order"`
	IsPublished  bool                  `bun:"is_published,notnull,default:false" json:"is_published"`
	CreatedAt    time.Time             `bun:"created_at,nullzero,default:current_timestamp" json:"created_at"`
	UpdatedAt    time.Time             `bun:"updated_at,nullzero,default:current_timestamp" json:"updated_at"`
	Translations []*ProjectTranslation `bun:"rel:has-many,join:id=project_id" json:"translations,omitempty"`
}

// ProjectTranslation stores the localized project copy for one locale.
type ProjectTranslation struct {
	bun.BaseModel `bun:"table:project_translations,alias:pt"`

	ID          uuid.UUID `bun:",pk,type:uuid" json:"id"`
	ProjectID   uuid.UUID `bun:"project_id,notnull,type:uuid" json:"project_id"`
	Locale      string    `bun:"locale,notnull" json:"locale"`
	Title       string    `bun:"title,notnull" json:"title"`
	Description string    `bun:"description" json:"description"`
	CreatedAt   time.Time `bun:"created_at,nullzero,default:current_timestamp" json:"created_at"`
	UpdatedAt   time.Time `bun:"updated_at,nullzero,default:current_timestamp" json:"updated_at"`
}

// Skill is a locale-invariant capability entry rendered with an icon and a
// two-stop gradient.
type Skill struct {
	bun.BaseModel `bun:"table:skills,alias:s"`

	ID           uuid.UUID `bun:",pk,type:uuid" json:"id"`
	Name         string    `bun:"name,notnull" json:"name"`
	Icon         string    `bun:"icon,notnull" json:"icon"`
	GradientFrom string    `bun:"gradient_from" json:"gradient_from"`
	GradientTo   string    `bun:"gradient_to" json:"gradient_to"`
	DisplayOrder int       `bun:"display_order,notnull,default:0" json:"display_order"`
	IsPublished  bool      `bun:"is_published,notnull,default:false" json:"is_published"`
	CreatedAt    time.Time `bun:"created_at,nullzero,default:current_timestamp" json:"created_at"`
	UpdatedAt    time.Time `bun:"updated_at,nullzero,default:current_timestamp" json:"updated_at"`
}

// Stat is a short headline figure ("2+", "15"); its label is localized.
type Stat struct {
	bun.BaseModel `bun:"table:stats,alias:st"`

	ID           uuid.UUID          `bun:",pk,type:uuid" json:"id"`
	Value        string             `bun:"value,notnull" json:"value"`
	DisplayOrder int                `bun:"display_order,notnull,default:0" json:"display_order"`
	IsPublished  bool               `bun:"is_published,notnull,default:false" json:"is_published"`
	CreatedAt    time.Time          `bun:"created_at,nullzero,default:current_timestamp" json:"created_at"`
	UpdatedAt    time.Time          `bun:"updated_at,nullzero,default:current_timestamp" json:"updated_at"`
	Translations []*StatTranslation `bun:"rel:has-many,join:id=stat_id" json:"translations,omitempty"`
}

// StatTranslation stores the localized stat label for one locale.
type StatTranslation struct {
	bun.BaseModel `bun:"table:stat_translations,alias:stt"`

	ID        uuid.UUID `bun:",pk,type:uuid" json:"id"`
	StatID    uuid.UUID `bun:"stat_id,notnull,type:uuid" json:"stat_id"`
	Locale    string    `bun:"locale,notnull" json:"locale"`
	Label     string    `bun:"label,notnull" json:"label"`
	CreatedAt time.Time `bun:"created_at,nullzero,default:current_timestamp" json:"created_at"`
	UpdatedAt time.Time `bun:"updated_at,nullzero,default:current_timestamp" json:"updated_at"`
}

// LocalizedHero is the resolved public view of the hero section.
type LocalizedHero struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	Profession   string    `json:"profession"`
	Description  string    `json:"description"`
	PrimaryCTA   string    `json:"primary_cta"`
	SecondaryCTA string    `json:"secondary_cta"`
	ResumeURL    string    `json:"resume_url"`
}

// LocalizedAbout is the resolved public view of the about section.
type LocalizedAbout struct {
	ID            uuid.UUID `json:"id"`
	Title         string    `json:"title"`
	Description   string    `json:"description"`
	Location      string    `json:"location"`
	Availability  string    `json:"availability"`
	Education     string    `json:"education"`
	ServicesTitle string    `json:"services_title"`
	Services      []string  `json:"services"`
	ImageURL      string    `json:"image"`
}

// LocalizedProject is the resolved public view of a project.
type LocalizedProject struct {
	ID          uuid.UUID `json:"id"`
	Slug        string    `json:"slug"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	ImageURL    string    `json:"image"`
	LiveURL     string    `json:"liveUrl"`
	RepoURL     string    `json:"githubUrl"`
	Tech        []string  `json:"tech"`
}

// LocalizedStat is the resolved public view of a stat.
type LocalizedStat struct {
	ID           uuid.UUID `json:"id"`
	Value        string    `json:"value"`
	Label        string    `json:"label"`
	DisplayOrder int       `json:"display_order"`
}

// Localize resolves the hero against the requested locale, falling back to
// English field by field.
func (h *Hero) Localize(locale string) *LocalizedHero {
	if h == nil {
		return nil
	}
	byLocale := make(map[string]i18n.Fields, len(h.Translations))
	for _, tr := range h.Translations {
		if tr == nil {
			continue
		}
		byLocale[tr.Locale] = i18n.Fields{
			"profession":    tr.Profession,
			"description":   tr.Description,
			"primary_cta":   tr.PrimaryCTA,
			"secondary_cta": tr.SecondaryCTA,
		}
	}
	return &LocalizedHero{
		ID:           h.ID,
		Name:         h.Name,
		Profession:   i18n.Resolve(byLocale, "profession", locale),
		Description:  i18n.Resolve(byLocale, "description", locale),
		PrimaryCTA:   i18n.Resolve(byLocale, "primary_cta", locale),
		SecondaryCTA: i18n.Resolve(byLocale, "secondary_cta", locale),
		ResumeURL:    h.ResumeURL,
	}
}

// Localize resolves the about section against the requested locale.
func (a *About) Localize(locale string) *LocalizedAbout {
	if a == nil {
		return nil
	}
	byLocale := make(map[string]i18n.Fields, len(a.Translations))
	services := map[string][]string{}
	for _, tr := range a.Translations {
		if tr == nil {
			continue
		}
		byLocale[tr.Locale] = i18n.Fields{
			"title":          tr.Title,
			"description":    tr.Description,
			"location":       tr.Location,
			"availability":   tr.Availability,
			"education":      tr.Education,
			"services_title": tr.ServicesTitle,
		}
		services[tr.Locale] = tr.Services
	}

	normalized := i18n.Normalize(locale)
	resolvedServices := services[normalized]
	if len(resolvedServices) == 0 {
		resolvedServices = services[i18n.DefaultLocale]
	}

	return &LocalizedAbout{
		ID:            a.ID,
		Title:         i18n.Resolve(byLocale, "title", locale),
		Description:   i18n.Resolve(byLocale, "description", locale),
		Location:      i18n.Resolve(byLocale, "location", locale),
		Availability:  i18n.Resolve(byLocale, "availability", locale),
		Education:     i18n.Resolve(byLocale, "education", locale),
		ServicesTitle: i18n.Resolve(byLocale, "services_title", locale),
		Services:      append([]string(nil), resolvedServices...),
		ImageURL:      a.ImageURL,
	}
}

// Localize resolves the project against the requested locale.
func (p *Project) Localize(locale string) *LocalizedProject {
	if p == nil {
		return nil
	}
	byLocale := make(map[string]i18n.Fields, len(p.Translations))
	for _, tr := range p.Translations {
		if tr == nil {
			continue
		}
		byLocale[tr.Locale] = i18n.Fields{
			"title":       tr.Title,
			"description": tr.Description,
		}
	}
	return &LocalizedProject{
		ID:          p.ID,
		Slug:        p.Slug,
		Title:       i18n.Resolve(byLocale, "title", locale),
		Description: i18n.Resolve(byLocale, "description", locale),
		ImageURL:    p.ImageURL,
		LiveURL:     p.LiveURL,
		RepoURL:     p.RepoURL,
		Tech:        append([]string(nil), p.Tech...),
	}
}

// Localize resolves the stat label against the requested locale.
func (s *Stat) Localize(locale string) *LocalizedStat {
	if s == nil {
		return nil
	}
	byLocale := make(map[string]i18n.Fields, len(s.Translations))
	for _, tr := range s.Translations {
		if tr == nil {
			continue
		}
		byLocale[tr.Locale] = i18n.Fields{"label": tr.Label}
	}
	return &LocalizedStat{
		ID:           s.ID,
		Value:        s.Value,
		Label:        i18n.Resolve(byLocale, "label", locale),
		DisplayOrder: s.DisplayOrder,
	}
}
