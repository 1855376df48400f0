package content

import (
	"context"
	"strings"
	"time"

	"github.com/goliatone/go-portfolio/internal/i18n"
	"github.com/goliatone/go-portfolio/internal/logging"
	"github.com/goliatone/go-portfolio/pkg/activity"
	"github.com/goliatone/go-portfolio/pkg/interfaces"
	"github.com/google/uuid"
)

// Service exposes the portfolio content use cases: typed accessors over the
// five content kinds with admin reads, publish-gated public reads, and
// mutations restricted to the admin surface.
type Service interface {
	HeroService
	AboutService
	ProjectService
	SkillService
	StatService
	Locales(ctx context.Context) ([]*Locale, error)
}

// HeroService manages the singleton hero record.
type HeroService interface {
	Hero(ctx context.Context) (*Hero, error)
	PublishedHero(ctx context.Context) (*Hero, error)
	UpdateHero(ctx context.Context, req UpdateHeroRequest) (*Hero, error)
	SetHeroPublished(ctx context.Context, published bool, updatedBy uuid.UUID) (*Hero, error)
}

// AboutService manages the singleton about record.
type AboutService interface {
	About(ctx context.Context) (*About, error)
	PublishedAbout(ctx context.Context) (*About, error)
	UpdateAbout(ctx context.Context, req UpdateAboutRequest) (*About, error)
	SetAboutPublished(ctx context.Context, published bool, updatedBy uuid.UUID) (*About, error)
}

// ProjectService manages portfolio projects.
type ProjectService interface {
	Projects(ctx context.Context) ([]*Project, error)
	PublishedProjects(ctx context.Context) ([]*Project, error)
	Project(ctx context.Context, id uuid.UUID) (*Project, error)
	CreateProject(ctx context.Context, req CreateProjectRequest) (*Project, error)
	UpdateProject(ctx context.Context, req UpdateProjectRequest) (*Project, error)
	DeleteProject(ctx context.Context, req DeleteProjectRequest) error
	SetProjectPublished(ctx context.Context, id uuid.UUID, published bool, updatedBy uuid.UUID) (*Project, error)
}

// SkillService manages skill entries.
type SkillService interface {
	Skills(ctx context.Context) ([]*Skill, error)
	PublishedSkills(ctx context.Context) ([]*Skill, error)
	Skill(ctx context.Context, id uuid.UUID) (*Skill, error)
	CreateSkill(ctx context.Context, req CreateSkillRequest) (*Skill, error)
	UpdateSkill(ctx context.Context, req UpdateSkillRequest) (*Skill, error)
	DeleteSkill(ctx context.Context, id uuid.UUID, deletedBy uuid.UUID) error
	SetSkillPublished(ctx context.Context, id uuid.UUID, published bool, updatedBy uuid.UUID) (*Skill, error)
}

// StatService manages headline stats.
type StatService interface {
	Stats(ctx context.Context) ([]*Stat, error)
	PublishedStats(ctx context.Context) ([]*Stat, error)
	Stat(ctx context.Context, id uuid.UUID) (*Stat, error)
	CreateStat(ctx context.Context, req CreateStatRequest) (*Stat, error)
	UpdateStat(ctx context.Context, req UpdateStatRequest) (*Stat, error)
	DeleteStat(ctx context.Context, id uuid.UUID, deletedBy uuid.UUID) error
	SetStatPublished(ctx context.Context, id uuid.UUID, published bool, updatedBy uuid.UUID) (*Stat, error)
}

// HeroRepository abstracts storage for the hero singleton.
type HeroRepository interface {
	Get(ctx context.Context) (*Hero, error)
	Save(ctx context.Context, record *Hero) (*Hero, error)
	ReplaceTranslations(ctx context.Context, heroID uuid.UUID, translations []*HeroTranslation) error
}

// AboutRepository abstracts storage for the about singleton.
type AboutRepository interface {
	Get(ctx context.Context) (*About, error)
	Save(ctx context.Context, record *About) (*About, error)
	ReplaceTranslations(ctx context.Context, aboutID uuid.UUID, translations []*AboutTranslation) error
}

// ProjectRepository abstracts storage for projects. Reads return records with
// translations attached, ordered by display order ascending with creation
// time breaking ties.
type ProjectRepository interface {
	Create(ctx context.Context, record *Project) (*Project, error)
	GetByID(ctx context.Context, id uuid.UUID) (*Project, error)
	GetBySlug(ctx context.Context, slug string) (*Project, error)
	List(ctx context.Context) ([]*Project, error)
	Update(ctx context.Context, record *Project) (*Project, error)
	ReplaceTranslations(ctx context.Context, projectID uuid.UUID, translations []*ProjectTranslation) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// SkillRepository abstracts storage for skills.
type SkillRepository interface {
	Create(ctx context.Context, record *Skill) (*Skill, error)
	GetByID(ctx context.Context, id uuid.UUID) (*Skill, error)
	List(ctx context.Context) ([]*Skill, error)
	Update(ctx context.Context, record *Skill) (*Skill, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// StatRepository abstracts storage for stats.
type StatRepository interface {
	Create(ctx context.Context, record *Stat) (*Stat, error)
	GetByID(ctx context.Context, id uuid.UUID) (*Stat, error)
	List(ctx context.Context) ([]*Stat, error)
	Update(ctx context.Context, record *Stat) (*Stat, error)
	ReplaceTranslations(ctx context.Context, statID uuid.UUID, translations []*StatTranslation) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// LocaleRepository resolves locale registry entries. Save upserts by code so
// seeding stays idempotent.
type LocaleRepository interface {
	List(ctx context.Context) ([]*Locale, error)
	GetByCode(ctx context.Context, code string) (*Locale, error)
	Save(ctx context.Context, record *Locale) (*Locale, error)
}

// AssetRemover performs best-effort deletion of a stored asset by public URL.
// Failures are handled by the remover itself and never surface to content
// mutations.
type AssetRemover interface {
	Remove(ctx context.Context, publicURL string)
}

// Repositories bundles the storage dependencies for the content service.
type Repositories struct {
	Heroes   HeroRepository
	Abouts   AboutRepository
	Projects ProjectRepository
	Skills   SkillRepository
	Stats    StatRepository
	Locales  LocaleRepository
}

// ServiceOption configures the service at construction time.
type ServiceOption func(*service)

// WithClock overrides the clock used to stamp records.
func WithClock(clock func() time.Time) ServiceOption {
	return func(s *service) {
		if clock != nil {
			s.now = clock
		}
	}
}

// IDGenerator produces identifiers for created records.
type IDGenerator func() uuid.UUID

// WithIDGenerator overrides identifier generation.
func WithIDGenerator(generator IDGenerator) ServiceOption {
	return func(s *service) {
		if generator != nil {
			s.id = generator
		}
	}
}

// WithAssetRemover wires best-effort asset cleanup into project deletion and
// asset-replacing updates.
func WithAssetRemover(remover AssetRemover) ServiceOption {
	return func(s *service) {
		s.assets = remover
	}
}

// WithActivityNotifier wires an audit sink for admin mutations.
func WithActivityNotifier(notifier activity.Notifier) ServiceOption {
	return func(s *service) {
		if notifier != nil {
			s.activity = notifier
		}
	}
}

// WithLogger attaches a logger for mutation outcomes.
func WithLogger(logger interfaces.Logger) ServiceOption {
	return func(s *service) {
		if logger != nil {
			s.logger = logger
		}
	}
}

type service struct {
	repos    Repositories
	now      func() time.Time
	id       IDGenerator
	assets   AssetRemover
	activity activity.Notifier
	logger   interfaces.Logger
}

// NewService constructs the content service over the provided repositories.
func NewService(repos Repositories, opts ...ServiceOption) Service {
	s := &service{
		repos:    repos,
		now:      func() time.Time { return time.Now().UTC() },
		id:       uuid.New,
		activity: activity.NoOp(),
		logger:   logging.NoOp(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Locales lists the active locale registry.
func (s *service) Locales(ctx context.Context) ([]*Locale, error) {
	if s.repos.Locales == nil {
		return nil, nil
	}
	return s.repos.Locales.List(ctx)
}

// TranslationInput is the localized payload shared by hero/about/project/stat
// mutations. Fields beyond the entity's own set are ignored by each service.
type TranslationInput struct {
	Locale        string
	Title         string
	Description   string
	Profession    string
	PrimaryCTA    string
	SecondaryCTA  string
	Location      string
	Availability  string
	Education     string
	ServicesTitle string
	Services      []string
	Label         string
}

// validateTranslations enforces the shared invariants: at least one entry,
// no duplicate locales, known locales only, and a default-locale entry.
func validateTranslations(inputs []TranslationInput) error {
	if len(inputs) == 0 {
		return ErrNoTranslations
	}
	seen := make(map[string]bool, len(inputs))
	hasDefault := false
	for _, input := range inputs {
		code := strings.ToLower(strings.TrimSpace(input.Locale))
		if !i18n.IsSupported(code) {
			return ErrUnknownLocale
		}
		if seen[code] {
			return ErrDuplicateLocale
		}
		seen[code] = true
		if code == i18n.DefaultLocale {
			hasDefault = true
		}
	}
	if !hasDefault {
		return ErrDefaultLocaleRequired
	}
	return nil
}

func (s *service) notify(ctx context.Context, verb, objectType, objectID string, actor uuid.UUID, metadata map[string]any) {
	event := activity.Event{
		Verb:           verb,
		ObjectType:     objectType,
		ObjectID:       objectID,
		Channel:        "portfolio",
		DefinitionCode: objectType + ":" + verb,
		Metadata:       metadata,
		OccurredAt:     s.now(),
	}
	if actor != uuid.Nil {
		event.ActorID = actor.String()
	}
	if err := s.activity.Notify(ctx, event); err != nil {
		s.logger.Warn("activity notify failed", "verb", verb, "object_type", objectType, "error", err)
	}
}

// removeAsset performs best-effort cleanup of a stored asset.
func (s *service) removeAsset(ctx context.Context, publicURL string) {
	if s.assets == nil || strings.TrimSpace(publicURL) == "" {
		return
	}
	s.assets.Remove(ctx, publicURL)
}
