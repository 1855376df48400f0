package content

import (
	"context"
	"fmt"

	goerrors "github.com/goliatone/go-errors"
	repository "github.com/goliatone/go-repository-bun"
	"github.com/goliatone/go-repository-cache/cache"
	repositorycache "github.com/goliatone/go-repository-cache/repositorycache"
	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// BunRepositories constructs the full bun-backed Repositories bundle without
// caching.
func BunRepositories(db *bun.DB) Repositories {
	return BunRepositoriesWithCache(db, nil, nil)
}

// BunRepositoriesWithCache constructs the full bun-backed Repositories bundle
// with optional read caching.
func BunRepositoriesWithCache(db *bun.DB, cacheService cache.CacheService, keySerializer cache.KeySerializer) Repositories {
	return Repositories{
		Heroes:   NewBunHeroRepositoryWithCache(db, cacheService, keySerializer),
		Abouts:   NewBunAboutRepositoryWithCache(db, cacheService, keySerializer),
		Projects: NewBunProjectRepositoryWithCache(db, cacheService, keySerializer),
		Skills:   NewBunSkillRepositoryWithCache(db, cacheService, keySerializer),
		Stats:    NewBunStatRepositoryWithCache(db, cacheService, keySerializer),
		Locales:  NewBunLocaleRepositoryWithCache(db, cacheService, keySerializer),
	}
}

// BunHeroRepository implements HeroRepository over bun.
type BunHeroRepository struct {
	db           *bun.DB
	repo         repository.Repository[*Hero]
	translations repository.Repository[*HeroTranslation]
}

// NewBunHeroRepository creates a hero repository without caching.
func NewBunHeroRepository(db *bun.DB) *BunHeroRepository {
	return NewBunHeroRepositoryWithCache(db, nil, nil)
}

// NewBunHeroRepositoryWithCache creates a hero repository with optional caching.
func NewBunHeroRepositoryWithCache(db *bun.DB, cacheService cache.CacheService, keySerializer cache.KeySerializer) *BunHeroRepository {
	return &BunHeroRepository{
		db:           db,
		repo:         wrapWithCache(NewHeroRepository(db), cacheService, keySerializer),
		translations: wrapWithCache(NewHeroTranslationRepository(db), cacheService, keySerializer),
	}
}

func (r *BunHeroRepository) Get(ctx context.Context) (*Hero, error) {
	records, _, err := r.repo.List(ctx, repository.SelectPaginate(1, 0))
	if err != nil {
		return nil, mapRepositoryError(err, "hero", "")
	}
	if len(records) == 0 {
		return nil, &NotFoundError{Resource: "hero"}
	}
	record := records[0]
	translations, _, err := r.translations.List(ctx,
		repository.SelectRawProcessor(func(q *bun.SelectQuery) *bun.SelectQuery {
			return q.Where("?TableAlias.hero_id = ?", record.ID)
		}),
	)
	if err != nil {
		return nil, mapRepositoryError(err, "hero_translation", record.ID.String())
	}
	record.Translations = translations
	return record, nil
}

func (r *BunHeroRepository) Save(ctx context.Context, record *Hero) (*Hero, error) {
	existing, err := r.repo.GetByID(ctx, record.ID.String())
	if err != nil {
		if goerrors.IsCategory(err, repository.CategoryDatabaseNotFound) {
			created, err := r.repo.Create(ctx, record)
			if err != nil {
				return nil, mapRepositoryError(err, "hero", record.ID.String())
			}
			return created, nil
		}
		return nil, mapRepositoryError(err, "hero", record.ID.String())
	}
	record.CreatedAt = existing.CreatedAt
	updated, err := r.repo.Update(ctx, record)
	if err != nil {
		return nil, mapRepositoryError(err, "hero", record.ID.String())
	}
	return updated, nil
}

func (r *BunHeroRepository) ReplaceTranslations(ctx context.Context, heroID uuid.UUID, translations []*HeroTranslation) error {
	return r.db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		if _, err := tx.NewDelete().
			Model((*HeroTranslation)(nil)).
			Where("?TableAlias.hero_id = ?", heroID).
			Exec(ctx); err != nil {
			return fmt.Errorf("delete hero translations: %w", err)
		}
		if len(translations) == 0 {
			return nil
		}
		if _, err := tx.NewInsert().Model(&translations).Exec(ctx); err != nil {
			return fmt.Errorf("insert hero translations: %w", err)
		}
		return nil
	})
}

// BunAboutRepository implements AboutRepository over bun.
type BunAboutRepository struct {
	db           *bun.DB
	repo         repository.Repository[*About]
	translations repository.Repository[*AboutTranslation]
}

// NewBunAboutRepository creates an about repository without caching.
func NewBunAboutRepository(db *bun.DB) *BunAboutRepository {
	return NewBunAboutRepositoryWithCache(db, nil, nil)
}

// NewBunAboutRepositoryWithCache creates an about repository with optional caching.
func NewBunAboutRepositoryWithCache(db *bun.DB, cacheService cache.CacheService, keySerializer cache.KeySerializer) *BunAboutRepository {
	return &BunAboutRepository{
		db:           db,
		repo:         wrapWithCache(NewAboutRepository(db), cacheService, keySerializer),
		translations: wrapWithCache(NewAboutTranslationRepository(db), cacheService, keySerializer),
	}
}

func (r *BunAboutRepository) Get(ctx context.Context) (*About, error) {
	records, _, err := r.repo.List(ctx, repository.SelectPaginate(1, 0))
	if err != nil {
		return nil, mapRepositoryError(err, "about", "")
	}
	if len(records) == 0 {
		return nil, &NotFoundError{Resource: "about"}
	}
	record := records[0]
	translations, _, err := r.translations.List(ctx,
		repository.SelectRawProcessor(func(q *bun.SelectQuery) *bun.SelectQuery {
			return q.Where("?TableAlias.about_id = ?", record.ID)
		}),
	)
	if err != nil {
		return nil, mapRepositoryError(err, "about_translation", record.ID.String())
	}
	record.Translations = translations
	return record, nil
}

func (r *BunAboutRepository) Save(ctx context.Context, record *About) (*About, error) {
	existing, err := r.repo.GetByID(ctx, record.ID.String())
	if err != nil {
		if goerrors.IsCategory(err, repository.CategoryDatabaseNotFound) {
			created, err := r.repo.Create(ctx, record)
			if err != nil {
				return nil, mapRepositoryError(err, "about", record.ID.String())
			}
			return created, nil
		}
		return nil, mapRepositoryError(err, "about", record.ID.String())
	}
	record.CreatedAt = existing.CreatedAt
	updated, err := r.repo.Update(ctx, record)
	if err != nil {
		return nil, mapRepositoryError(err, "about", record.ID.String())
	}
	return updated, nil
}

func (r *BunAboutRepository) ReplaceTranslations(ctx context.Context, aboutID uuid.UUID, translations []*AboutTranslation) error {
	return r.db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		if _, err := tx.NewDelete().
			Model((*AboutTranslation)(nil)).
			Where("?TableAlias.about_id = ?", aboutID).
			Exec(ctx); err != nil {
			return fmt.Errorf("delete about translations: %w", err)
		}
		if len(translations) == 0 {
			return nil
		}
		if _, err := tx.NewInsert().Model(&translations).Exec(ctx); err != nil {
			return fmt.Errorf("insert about translations: %w", err)
		}
		return nil
	})
}

// BunProjectRepository implements ProjectRepository over bun.
type BunProjectRepository struct {
	db           *bun.DB
	repo         repository.Repository[*Project]
	translations repository.Repository[*ProjectTranslation]
}

// NewBunProjectRepository creates a project repository without caching.
func NewBunProjectRepository(db *bun.DB) *BunProjectRepository {
	return NewBunProjectRepositoryWithCache(db, nil, nil)
}

// NewBunProjectRepositoryWithCache creates a project repository with optional caching.
func NewBunProjectRepositoryWithCache(db *bun.DB, cacheService cache.CacheService, keySerializer cache.KeySerializer) *BunProjectRepository {
	return &BunProjectRepository{
		db:           db,
		repo:         wrapWithCache(NewProjectRepository(db), cacheService, keySerializer),
		translations: wrapWithCache(NewProjectTranslationRepository(db), cacheService, keySerializer),
	}
}

func (r *BunProjectRepository) Create(ctx context.Context, record *Project) (*Project, error) {
	created, err := r.repo.Create(ctx, record)
	if err != nil {
		return nil, mapRepositoryError(err, "project", record.Slug)
	}
	return created, nil
}

func (r *BunProjectRepository) GetByID(ctx context.Context, id uuid.UUID) (*Project, error) {
	record, err := r.repo.GetByID(ctx, id.String())
	if err != nil {
		return nil, mapRepositoryError(err, "project", id.String())
	}
	if err := r.attachTranslations(ctx, record); err != nil {
		return nil, err
	}
	return record, nil
}

func (r *BunProjectRepository) GetBySlug(ctx context.Context, slug string) (*Project, error) {
	record, err := r.repo.GetByIdentifier(ctx, slug)
	if err != nil {
		return nil, mapRepositoryError(err, "project", slug)
	}
	if err := r.attachTranslations(ctx, record); err != nil {
		return nil, err
	}
	return record, nil
}

func (r *BunProjectRepository) List(ctx context.Context) ([]*Project, error) {
	records, _, err := r.repo.List(ctx,
		repository.SelectRawProcessor(func(q *bun.SelectQuery) *bun.SelectQuery {
			return q.OrderExpr("?TableAlias.display_order ASC").
				OrderExpr("?TableAlias.created_at ASC")
		}),
	)
	if err != nil {
		return nil, mapRepositoryError(err, "project", "")
	}
	if len(records) == 0 {
		return records, nil
	}

	ids := make([]uuid.UUID, 0, len(records))
	for _, record := range records {
		ids = append(ids, record.ID)
	}
	translations, _, err := r.translations.List(ctx,
		repository.SelectRawProcessor(func(q *bun.SelectQuery) *bun.SelectQuery {
			return q.Where("?TableAlias.project_id IN (?)", bun.In(ids))
		}),
	)
	if err != nil {
		return nil, mapRepositoryError(err, "project_translation", "")
	}
	byProject := make(map[uuid.UUID][]*ProjectTranslation, len(records))
	for _, tr := range translations {
		byProject[tr.ProjectID] = append(byProject[tr.ProjectID], tr)
	}
	for _, record := range records {
		record.Translations = byProject[record.ID]
	}
	return records, nil
}

func (r *BunProjectRepository) Update(ctx context.Context, record *Project) (*Project, error) {
	updated, err := r.repo.Update(ctx, record)
	if err != nil {
		return nil, mapRepositoryError(err, "project", record.ID.String())
	}
	return updated, nil
}

func (r *BunProjectRepository) ReplaceTranslations(ctx context.Context, projectID uuid.UUID, translations []*ProjectTranslation) error {
	return r.db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		if _, err := tx.NewDelete().
			Model((*ProjectTranslation)(nil)).
			Where("?TableAlias.project_id = ?", projectID).
			Exec(ctx); err != nil {
			return fmt.Errorf("delete project translations: %w", err)
		}
		if len(translations) == 0 {
			return nil
		}
		if _, err := tx.NewInsert().Model(&translations).Exec(ctx); err != nil {
			return fmt.Errorf("insert project translations: %w", err)
		}
		return nil
	})
}

func (r *BunProjectRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		if _, err := tx.NewDelete().
			Model((*ProjectTranslation)(nil)).
			Where("?TableAlias.project_id = ?", id).
			Exec(ctx); err != nil {
			return fmt.Errorf("delete project translations: %w", err)
		}
		if _, err := tx.NewDelete().
			Model((*Project)(nil)).
			Where("?TableAlias.id = ?", id).
			Exec(ctx); err != nil {
			return fmt.Errorf("delete project: %w", err)
		}
		return nil
	})
}

func (r *BunProjectRepository) attachTranslations(ctx context.Context, record *Project) error {
	translations, _, err := r.translations.List(ctx,
		repository.SelectRawProcessor(func(q *bun.SelectQuery) *bun.SelectQuery {
			return q.Where("?TableAlias.project_id = ?", record.ID)
		}),
	)
	if err != nil {
		return mapRepositoryError(err, "project_translation", record.ID.String())
	}
	record.Translations = translations
	return nil
}

// BunSkillRepository implements SkillRepository over bun.
type BunSkillRepository struct {
	repo repository.Repository[*Skill]
}

// NewBunSkillRepository creates a skill repository without caching.
func NewBunSkillRepository(db *bun.DB) *BunSkillRepository {
	return NewBunSkillRepositoryWithCache(db, nil, nil)
}

// NewBunSkillRepositoryWithCache creates a skill repository with optional caching.
func NewBunSkillRepositoryWithCache(db *bun.DB, cacheService cache.CacheService, keySerializer cache.KeySerializer) *BunSkillRepository {
	return &BunSkillRepository{repo: wrapWithCache(NewSkillRepository(db), cacheService, keySerializer)}
}

func (r *BunSkillRepository) Create(ctx context.Context, record *Skill) (*Skill, error) {
	created, err := r.repo.Create(ctx, record)
	if err != nil {
		return nil, mapRepositoryError(err, "skill", record.Name)
	}
	return created, nil
}

func (r *BunSkillRepository) GetByID(ctx context.Context, id uuid.UUID) (*Skill, error) {
	record, err := r.repo.GetByID(ctx, id.String())
	if err != nil {
		return nil, mapRepositoryError(err, "skill", id.String())
	}
	return record, nil
}

func (r *BunSkillRepository) List(ctx context.Context) ([]*Skill, error) {
	records, _, err := r.repo.List(ctx,
		repository.SelectRawProcessor(func(q *bun.SelectQuery) *bun.SelectQuery {
			return q.OrderExpr("?TableAlias.display_order ASC").
				OrderExpr("?TableAlias.created_at ASC")
		}),
	)
	if err != nil {
		return nil, mapRepositoryError(err, "skill", "")
	}
	return records, nil
}

func (r *BunSkillRepository) Update(ctx context.Context, record *Skill) (*Skill, error) {
	updated, err := r.repo.Update(ctx, record)
	if err != nil {
		return nil, mapRepositoryError(err, "skill", record.ID.String())
	}
	return updated, nil
}

func (r *BunSkillRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.repo.Delete(ctx, &Skill{ID: id})
}

// BunStatRepository implements StatRepository over bun.
type BunStatRepository struct {
	db           *bun.DB
	repo         repository.Repository[*Stat]
	translations repository.Repository[*StatTranslation]
}

// NewBunStatRepository creates a stat repository without caching.
func NewBunStatRepository(db *bun.DB) *BunStatRepository {
	return NewBunStatRepositoryWithCache(db, nil, nil)
}

// NewBunStatRepositoryWithCache creates a stat repository with optional caching.
func NewBunStatRepositoryWithCache(db *bun.DB, cacheService cache.CacheService, keySerializer cache.KeySerializer) *BunStatRepository {
	return &BunStatRepository{
		db:           db,
		repo:         wrapWithCache(NewStatRepository(db), cacheService, keySerializer),
		translations: wrapWithCache(NewStatTranslationRepository(db), cacheService, keySerializer),
	}
}

func (r *BunStatRepository) Create(ctx context.Context, record *Stat) (*Stat, error) {
	created, err := r.repo.Create(ctx, record)
	if err != nil {
		return nil, mapRepositoryError(err, "stat", record.Value)
	}
	return created, nil
}

func (r *BunStatRepository) GetByID(ctx context.Context, id uuid.UUID) (*Stat, error) {
	record, err := r.repo.GetByID(ctx, id.String())
	if err != nil {
		return nil, mapRepositoryError(err, "stat", id.String())
	}
	translations, _, err := r.translations.List(ctx,
		repository.SelectRawProcessor(func(q *bun.SelectQuery) *bun.SelectQuery {
			return q.Where("?TableAlias.stat_id = ?", record.ID)
		}),
	)
	if err != nil {
		return nil, mapRepositoryError(err, "stat_translation", record.ID.String())
	}
	record.Translations = translations
	return record, nil
}

func (r *BunStatRepository) List(ctx context.Context) ([]*Stat, error) {
	records, _, err := r.repo.List(ctx,
		repository.SelectRawProcessor(func(q *bun.SelectQuery) *bun.SelectQuery {
			return q.OrderExpr("?TableAlias.display_order ASC").
				OrderExpr("?TableAlias.created_at ASC")
		}),
	)
	if err != nil {
		return nil, mapRepositoryError(err, "stat", "")
	}
	if len(records) == 0 {
		return records, nil
	}

	ids := make([]uuid.UUID, 0, len(records))
	for _, record := range records {
		ids = append(ids, record.ID)
	}
	translations, _, err := r.translations.List(ctx,
		repository.SelectRawProcessor(func(q *bun.SelectQuery) *bun.SelectQuery {
			return q.Where("?TableAlias.stat_id IN (?)", bun.In(ids))
		}),
	)
	if err != nil {
		return nil, mapRepositoryError(err, "stat_translation", "")
	}
	byStat := make(map[uuid.UUID][]*StatTranslation, len(records))
	for _, tr := range translations {
		byStat[tr.StatID] = append(byStat[tr.StatID], tr)
	}
	for _, record := range records {
		record.Translations = byStat[record.ID]
	}
	return records, nil
}

func (r *BunStatRepository) Update(ctx context.Context, record *Stat) (*Stat, error) {
	updated, err := r.repo.Update(ctx, record)
	if err != nil {
		return nil, mapRepositoryError(err, "stat", record.ID.String())
	}
	return updated, nil
}

func (r *BunStatRepository) ReplaceTranslations(ctx context.Context, statID uuid.UUID, translations []*StatTranslation) error {
	return r.db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		if _, err := tx.NewDelete().
			Model((*StatTranslation)(nil)).
			Where("?TableAlias.stat_id = ?", statID).
			Exec(ctx); err != nil {
			return fmt.Errorf("delete stat translations: %w", err)
		}
		if len(translations) == 0 {
			return nil
		}
		if _, err := tx.NewInsert().Model(&translations).Exec(ctx); err != nil {
			return fmt.Errorf("insert stat translations: %w", err)
		}
		return nil
	})
}

func (r *BunStatRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		if _, err := tx.NewDelete().
			Model((*StatTranslation)(nil)).
			Where("?TableAlias.stat_id = ?", id).
			Exec(ctx); err != nil {
			return fmt.Errorf("delete stat translations: %w", err)
		}
		if _, err := tx.NewDelete().
			Model((*Stat)(nil)).
			Where("?TableAlias.id = ?", id).
			Exec(ctx); err != nil {
			return fmt.Errorf("delete stat: %w", err)
		}
		return nil
	})
}

// BunLocaleRepository implements LocaleRepository over bun.
type BunLocaleRepository struct {
	repo repository.Repository[*Locale]
}

// NewBunLocaleRepository creates a locale repository without caching.
func NewBunLocaleRepository(db *bun.DB) *BunLocaleRepository {
	return NewBunLocaleRepositoryWithCache(db, nil, nil)
}

// NewBunLocaleRepositoryWithCache creates a locale repository with optional caching.
func NewBunLocaleRepositoryWithCache(db *bun.DB, cacheService cache.CacheService, keySerializer cache.KeySerializer) *BunLocaleRepository {
	return &BunLocaleRepository{repo: wrapWithCache(NewLocaleRepository(db), cacheService, keySerializer)}
}

func (r *BunLocaleRepository) List(ctx context.Context) ([]*Locale, error) {
	records, _, err := r.repo.List(ctx,
		repository.SelectRawProcessor(func(q *bun.SelectQuery) *bun.SelectQuery {
			return q.Where("?TableAlias.is_active = ?", true).
				OrderExpr("?TableAlias.code ASC")
		}),
	)
	if err != nil {
		return nil, mapRepositoryError(err, "locale", "")
	}
	return records, nil
}

func (r *BunLocaleRepository) GetByCode(ctx context.Context, code string) (*Locale, error) {
	record, err := r.repo.GetByIdentifier(ctx, code)
	if err != nil {
		return nil, mapRepositoryError(err, "locale", code)
	}
	return record, nil
}

func (r *BunLocaleRepository) Save(ctx context.Context, record *Locale) (*Locale, error) {
	existing, err := r.repo.GetByIdentifier(ctx, record.Code)
	if err != nil {
		if goerrors.IsCategory(err, repository.CategoryDatabaseNotFound) {
			created, createErr := r.repo.Create(ctx, record)
			if createErr != nil {
				return nil, mapRepositoryError(createErr, "locale", record.Code)
			}
			return created, nil
		}
		return nil, mapRepositoryError(err, "locale", record.Code)
	}

	record.ID = existing.ID
	record.CreatedAt = existing.CreatedAt
	updated, err := r.repo.Update(ctx, record)
	if err != nil {
		return nil, mapRepositoryError(err, "locale", record.Code)
	}
	return updated, nil
}

func mapRepositoryError(err error, resource, key string) error {
	if err == nil {
		return nil
	}
	if goerrors.IsCategory(err, repository.CategoryDatabaseNotFound) {
		return &NotFoundError{
			Resource: resource,
			Key:      key,
		}
	}
	return fmt.Errorf("%s repository error: %w", resource, err)
}

func wrapWithCache[T any](base repository.Repository[T], cacheService cache.CacheService, keySerializer cache.KeySerializer) repository.Repository[T] {
	if cacheService == nil || keySerializer == nil {
		return base
	}
	return repositorycache.New(base, cacheService, keySerializer)
}
