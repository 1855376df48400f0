package content

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/google/uuid"
)

// MemoryRepositories returns an in-memory Repositories bundle, used for tests
// and local development without a database.
func MemoryRepositories() Repositories {
	return Repositories{
		Heroes:   NewMemoryHeroRepository(),
		Abouts:   NewMemoryAboutRepository(),
		Projects: NewMemoryProjectRepository(),
		Skills:   NewMemorySkillRepository(),
		Stats:    NewMemoryStatRepository(),
		Locales:  NewMemoryLocaleRepository(),
	}
}

// MemoryHeroRepository stores the hero singleton in process memory.
type MemoryHeroRepository struct {
	mu     sync.RWMutex
	record *Hero
}

// NewMemoryHeroRepository creates an empty in-memory hero repository.
func NewMemoryHeroRepository() *MemoryHeroRepository {
	return &MemoryHeroRepository{}
}

func (r *MemoryHeroRepository) Get(ctx context.Context) (*Hero, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if r.record == nil {
		return nil, &NotFoundError{Resource: "hero"}
	}
	return cloneHero(r.record), nil
}

func (r *MemoryHeroRepository) Save(ctx context.Context, record *Hero) (*Hero, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	clone := cloneHero(record)
	if r.record != nil && len(clone.Translations) == 0 {
		clone.Translations = cloneHeroTranslations(r.record.Translations)
	}
	r.record = clone
	return cloneHero(r.record), nil
}

func (r *MemoryHeroRepository) ReplaceTranslations(ctx context.Context, heroID uuid.UUID, translations []*HeroTranslation) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.record == nil || r.record.ID != heroID {
		return &NotFoundError{Resource: "hero", Key: heroID.String()}
	}
	r.record.Translations = cloneHeroTranslations(translations)
	return nil
}

// MemoryAboutRepository stores the about singleton in process memory.
type MemoryAboutRepository struct {
	mu     sync.RWMutex
	record *About
}

// NewMemoryAboutRepository creates an empty in-memory about repository.
func NewMemoryAboutRepository() *MemoryAboutRepository {
	return &MemoryAboutRepository{}
}

func (r *MemoryAboutRepository) Get(ctx context.Context) (*About, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if r.record == nil {
		return nil, &NotFoundError{Resource: "about"}
	}
	return cloneAbout(r.record), nil
}

func (r *MemoryAboutRepository) Save(ctx context.Context, record *About) (*About, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	clone := cloneAbout(record)
	if r.record != nil && len(clone.Translations) == 0 {
		clone.Translations = cloneAboutTranslations(r.record.Translations)
	}
	r.record = clone
	return cloneAbout(r.record), nil
}

func (r *MemoryAboutRepository) ReplaceTranslations(ctx context.Context, aboutID uuid.UUID, translations []*AboutTranslation) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.record == nil || r.record.ID != aboutID {
		return &NotFoundError{Resource: "about", Key: aboutID.String()}
	}
	r.record.Translations = cloneAboutTranslations(translations)
	return nil
}

// MemoryProjectRepository stores projects in process memory.
type MemoryProjectRepository struct {
	mu      sync.RWMutex
	records map[uuid.UUID]*Project
}

// NewMemoryProjectRepository creates an empty in-memory project repository.
func NewMemoryProjectRepository() *MemoryProjectRepository {
	return &MemoryProjectRepository{records: map[uuid.UUID]*Project{}}
}

func (r *MemoryProjectRepository) Create(ctx context.Context, record *Project) (*Project, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	clone := cloneProject(record)
	r.records[clone.ID] = clone
	return cloneProject(clone), nil
}

func (r *MemoryProjectRepository) GetByID(ctx context.Context, id uuid.UUID) (*Project, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	record, ok := r.records[id]
	if !ok {
		return nil, &NotFoundError{Resource: "project", Key: id.String()}
	}
	return cloneProject(record), nil
}

func (r *MemoryProjectRepository) GetBySlug(ctx context.Context, slug string) (*Project, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, record := range r.records {
		if strings.EqualFold(record.Slug, slug) {
			return cloneProject(record), nil
		}
	}
	return nil, &NotFoundError{Resource: "project", Key: slug}
}

func (r *MemoryProjectRepository) List(ctx context.Context) ([]*Project, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	records := make([]*Project, 0, len(r.records))
	for _, record := range r.records {
		records = append(records, cloneProject(record))
	}
	sort.SliceStable(records, func(i, j int) bool {
		if records[i].DisplayOrder != records[j].DisplayOrder {
			return records[i].DisplayOrder < records[j].DisplayOrder
		}
		return records[i].CreatedAt.Before(records[j].CreatedAt)
	})
	return records, nil
}

func (r *MemoryProjectRepository) Update(ctx context.Context, record *Project) (*Project, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	existing, ok := r.records[record.ID]
	if !ok {
		return nil, &NotFoundError{Resource: "project", Key: record.ID.String()}
	}
	clone := cloneProject(record)
	if len(clone.Translations) == 0 {
		clone.Translations = cloneProjectTranslations(existing.Translations)
	}
	r.records[clone.ID] = clone
	return cloneProject(clone), nil
}

func (r *MemoryProjectRepository) ReplaceTranslations(ctx context.Context, projectID uuid.UUID, translations []*ProjectTranslation) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	record, ok := r.records[projectID]
	if !ok {
		return &NotFoundError{Resource: "project", Key: projectID.String()}
	}
	record.Translations = cloneProjectTranslations(translations)
	return nil
}

func (r *MemoryProjectRepository) Delete(ctx context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.records[id]; !ok {
		return &NotFoundError{Resource: "project", Key: id.String()}
	}
	delete(r.records, id)
	return nil
}

// MemorySkillRepository stores skills in process memory.
type MemorySkillRepository struct {
	mu      sync.RWMutex
	records map[uuid.UUID]*Skill
}

// NewMemorySkillRepository creates an empty in-memory skill repository.
func NewMemorySkillRepository() *MemorySkillRepository {
	return &MemorySkillRepository{records: map[uuid.UUID]*Skill{}}
}

func (r *MemorySkillRepository) Create(ctx context.Context, record *Skill) (*Skill, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	clone := cloneSkill(record)
	r.records[clone.ID] = clone
	return cloneSkill(clone), nil
}

func (r *MemorySkillRepository) GetByID(ctx context.Context, id uuid.UUID) (*Skill, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	record, ok := r.records[id]
	if !ok {
		return nil, &NotFoundError{Resource: "skill", Key: id.String()}
	}
	return cloneSkill(record), nil
}

func (r *MemorySkillRepository) List(ctx context.Context) ([]*Skill, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	records := make([]*Skill, 0, len(r.records))
	for _, record := range r.records {
		records = append(records, cloneSkill(record))
	}
	sort.SliceStable(records, func(i, j int) bool {
		if records[i].DisplayOrder != records[j].DisplayOrder {
			return records[i].DisplayOrder < records[j].DisplayOrder
		}
		return records[i].CreatedAt.Before(records[j].CreatedAt)
	})
	return records, nil
}

func (r *MemorySkillRepository) Update(ctx context.Context, record *Skill) (*Skill, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.records[record.ID]; !ok {
		return nil, &NotFoundError{Resource: "skill", Key: record.ID.String()}
	}
	clone := cloneSkill(record)
	r.records[clone.ID] = clone
	return cloneSkill(clone), nil
}

func (r *MemorySkillRepository) Delete(ctx context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.records[id]; !ok {
		return &NotFoundError{Resource: "skill", Key: id.String()}
	}
	delete(r.records, id)
	return nil
}

// MemoryStatRepository stores stats in process memory.
type MemoryStatRepository struct {
	mu      sync.RWMutex
	records map[uuid.UUID]*Stat
}

// NewMemoryStatRepository creates an empty in-memory stat repository.
func NewMemoryStatRepository() *MemoryStatRepository {
	return &MemoryStatRepository{records: map[uuid.UUID]*Stat{}}
}

func (r *MemoryStatRepository) Create(ctx context.Context, record *Stat) (*Stat, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	clone := cloneStat(record)
	r.records[clone.ID] = clone
	return cloneStat(clone), nil
}

func (r *MemoryStatRepository) GetByID(ctx context.Context, id uuid.UUID) (*Stat, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	record, ok := r.records[id]
	if !ok {
		return nil, &NotFoundError{Resource: "stat", Key: id.String()}
	}
	return cloneStat(record), nil
}

func (r *MemoryStatRepository) List(ctx context.Context) ([]*Stat, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	records := make([]*Stat, 0, len(r.records))
	for _, record := range r.records {
		records = append(records, cloneStat(record))
	}
	sort.SliceStable(records, func(i, j int) bool {
		if records[i].DisplayOrder != records[j].DisplayOrder {
			return records[i].DisplayOrder < records[j].DisplayOrder
		}
		return records[i].CreatedAt.Before(records[j].CreatedAt)
	})
	return records, nil
}

func (r *MemoryStatRepository) Update(ctx context.Context, record *Stat) (*Stat, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	existing, ok := r.records[record.ID]
	if !ok {
		return nil, &NotFoundError{Resource: "stat", Key: record.ID.String()}
	}
	clone := cloneStat(record)
	if len(clone.Translations) == 0 {
		clone.Translations = cloneStatTranslations(existing.Translations)
	}
	r.records[clone.ID] = clone
	return cloneStat(clone), nil
}

func (r *MemoryStatRepository) ReplaceTranslations(ctx context.Context, statID uuid.UUID, translations []*StatTranslation) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	record, ok := r.records[statID]
	if !ok {
		return &NotFoundError{Resource: "stat", Key: statID.String()}
	}
	record.Translations = cloneStatTranslations(translations)
	return nil
}

func (r *MemoryStatRepository) Delete(ctx context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.records[id]; !ok {
		return &NotFoundError{Resource: "stat", Key: id.String()}
	}
	delete(r.records, id)
	return nil
}

// MemoryLocaleRepository stores the locale registry in process memory.
type MemoryLocaleRepository struct {
	mu      sync.RWMutex
	records map[string]*Locale
}

// NewMemoryLocaleRepository creates an empty in-memory locale repository.
func NewMemoryLocaleRepository() *MemoryLocaleRepository {
	return &MemoryLocaleRepository{records: map[string]*Locale{}}
}

// Seed registers locale entries, replacing any existing entry for the code.
func (r *MemoryLocaleRepository) Seed(locales ...*Locale) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, locale := range locales {
		if locale == nil {
			continue
		}
		clone := *locale
		r.records[strings.ToLower(clone.Code)] = &clone
	}
}

func (r *MemoryLocaleRepository) List(ctx context.Context) ([]*Locale, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	records := make([]*Locale, 0, len(r.records))
	for _, record := range r.records {
		clone := *record
		records = append(records, &clone)
	}
	sort.Slice(records, func(i, j int) bool { return records[i].Code < records[j].Code })
	return records, nil
}

func (r *MemoryLocaleRepository) Save(ctx context.Context, record *Locale) (*Locale, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	clone := *record
	key := strings.ToLower(strings.TrimSpace(clone.Code))
	if existing, ok := r.records[key]; ok {
		clone.ID = existing.ID
		clone.CreatedAt = existing.CreatedAt
	}
	r.records[key] = &clone
	result := clone
	return &result, nil
}

func (r *MemoryLocaleRepository) GetByCode(ctx context.Context, code string) (*Locale, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	record, ok := r.records[strings.ToLower(strings.TrimSpace(code))]
	if !ok {
		return nil, &NotFoundError{Resource: "locale", Key: code}
	}
	clone := *record
	return &clone, nil
}

func cloneHero(record *Hero) *Hero {
	if record == nil {
		return nil
	}
	clone := *record
	clone.Translations = cloneHeroTranslations(record.Translations)
	return &clone
}

func cloneHeroTranslations(translations []*HeroTranslation) []*HeroTranslation {
	if translations == nil {
		return nil
	}
	cloned := make([]*HeroTranslation, 0, len(translations))
	for _, tr := range translations {
		if tr == nil {
			continue
		}
		copy := *tr
		cloned = append(cloned, &copy)
	}
	return cloned
}

func cloneAbout(record *About) *About {
	if record == nil {
		return nil
	}
	clone := *record
	clone.Translations = cloneAboutTranslations(record.Translations)
	return &clone
}

func cloneAboutTranslations(translations []*AboutTranslation) []*AboutTranslation {
	if translations == nil {
		return nil
	}
	cloned := make([]*AboutTranslation, 0, len(translations))
	for _, tr := range translations {
		if tr == nil {
			continue
		}
		copy := *tr
		copy.Services = append([]string(nil), tr.Services...)
		cloned = append(cloned, &copy)
	}
	return cloned
}

func cloneProject(record *Project) *Project {
	if record == nil {
		return nil
	}
	clone := *record
	clone.Tech = append([]string(nil), record.Tech...)
	clone.Translations = cloneProjectTranslations(record.Translations)
	return &clone
}

func cloneProjectTranslations(translations []*ProjectTranslation) []*ProjectTranslation {
	if translations == nil {
		return nil
	}
	cloned := make([]*ProjectTranslation, 0, len(translations))
	for _, tr := range translations {
		if tr == nil {
			continue
		}
		copy := *tr
		cloned = append(cloned, &copy)
	}
	return cloned
}

func cloneSkill(record *Skill) *Skill {
	if record == nil {
		return nil
	}
	clone := *record
	return &clone
}

func cloneStat(record *Stat) *Stat {
	if record == nil {
		return nil
	}
	clone := *record
	clone.Translations = cloneStatTranslations(record.Translations)
	return &clone
}

func cloneStatTranslations(translations []*StatTranslation) []*StatTranslation {
	if translations == nil {
		return nil
	}
	cloned := make([]*StatTranslation, 0, len(translations))
	for _, tr := range translations {
		if tr == nil {
			continue
		}
		copy := *tr
		cloned = append(cloned, &copy)
	}
	return cloned
}
