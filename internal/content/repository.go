package content

import (
	repository "github.com/goliatone/go-repository-bun"
	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// NewLocaleRepository creates a repository for Locale entities.
func NewLocaleRepository(db *bun.DB) repository.Repository[*Locale] {
	return repository.MustNewRepository(db, repository.ModelHandlers[*Locale]{
		NewRecord: func() *Locale { return &Locale{} },
		GetID: func(l *Locale) uuid.UUID {
			return l.ID
		},
		SetID: func(l *Locale, id uuid.UUID) {
			l.ID = id
		},
		GetIdentifier: func() string {
			return "code"
		},
		GetIdentifierValue: func(l *Locale) string {
			return l.Code
		},
	})
}

// NewHeroRepository creates a repository for Hero entities.
func NewHeroRepository(db *bun.DB) repository.Repository[*Hero] {
	return repository.MustNewRepository(db, repository.ModelHandlers[*Hero]{
		NewRecord: func() *Hero { return &Hero{} },
		GetID: func(h *Hero) uuid.UUID {
			return h.ID
		},
		SetID: func(h *Hero, id uuid.UUID) {
			h.ID = id
		},
		GetIdentifier: func() string {
			return "id"
		},
		GetIdentifierValue: func(h *Hero) string {
			return h.ID.String()
		},
	})
}

// NewHeroTranslationRepository creates a repository for HeroTranslation entities.
func NewHeroTranslationRepository(db *bun.DB) repository.Repository[*HeroTranslation] {
	return repository.MustNewRepository(db, repository.ModelHandlers[*HeroTranslation]{
		NewRecord: func() *HeroTranslation { return &HeroTranslation{} },
		GetID: func(tr *HeroTranslation) uuid.UUID {
			return tr.ID
		},
		SetID: func(tr *HeroTranslation, id uuid.UUID) {
			tr.ID = id
		},
		GetIdentifier: func() string {
			return "id"
		},
		GetIdentifierValue: func(tr *HeroTranslation) string {
			return tr.ID.String()
		},
	})
}

// NewAboutRepository creates a repository for About entities.
func NewAboutRepository(db *bun.DB) repository.Repository[*About] {
	return repository.MustNewRepository(db, repository.ModelHandlers[*About]{
		NewRecord: func() *About { return &About{} },
		GetID: func(a *About) uuid.UUID {
			return a.ID
		},
		SetID: func(a *About, id uuid.UUID) {
			a.ID = id
		},
		GetIdentifier: func() string {
			return "id"
		},
		GetIdentifierValue: func(a *About) string {
			return a.ID.String()
		},
	})
}

// NewAboutTranslationRepository creates a repository for AboutTranslation entities.
func NewAboutTranslationRepository(db *bun.DB) repository.Repository[*AboutTranslation] {
	return repository.MustNewRepository(db, repository.ModelHandlers[*AboutTranslation]{
		NewRecord: func() *AboutTranslation { return &AboutTranslation{} },
		GetID: func(tr *AboutTranslation) uuid.UUID {
			return tr.ID
		},
		SetID: func(tr *AboutTranslation, id uuid.UUID) {
			tr.ID = id
		},
		GetIdentifier: func() string {
			return "id"
		},
		GetIdentifierValue: func(tr *AboutTranslation) string {
			return tr.ID.String()
		},
	})
}

// NewProjectRepository creates a repository for Project entities.
func NewProjectRepository(db *bun.DB) repository.Repository[*Project] {
	return repository.MustNewRepository(db, repository.ModelHandlers[*Project]{
		NewRecord: func() *Project { return &Project{} },
		GetID: func(p *Project) uuid.UUID {
			return p.ID
		},
		SetID: func(p *Project, id uuid.UUID) {
			p.ID = id
		},
		GetIdentifier: func() string {
			return "slug"
		},
		GetIdentifierValue: func(p *Project) string {
			return p.Slug
		},
	})
}

// NewProjectTranslationRepository creates a repository for ProjectTranslation entities.
func NewProjectTranslationRepository(db *bun.DB) repository.Repository[*ProjectTranslation] {
	return repository.MustNewRepository(db, repository.ModelHandlers[*ProjectTranslation]{
		NewRecord: func() *ProjectTranslation { return &ProjectTranslation{} },
		GetID: func(tr *ProjectTranslation) uuid.UUID {
			return tr.ID
		},
		SetID: func(tr *ProjectTranslation, id uuid.UUID) {
			tr.ID = id
		},
		GetIdentifier: func() string {
			return "id"
		},
		GetIdentifierValue: func(tr *ProjectTranslation) string {
			return tr.ID.String()
		},
	})
}

// NewSkillRepository creates a repository for Skill entities.
func NewSkillRepository(db *bun.DB) repository.Repository[*Skill] {
	return repository.MustNewRepository(db, repository.ModelHandlers[*Skill]{
		NewRecord: func() *Skill { return &Skill{} },
		GetID: func(s *Skill) uuid.UUID {
			return s.ID
		},
		SetID: func(s *Skill, id uuid.UUID) {
			s.ID = id
		},
		GetIdentifier: func() string {
			return "name"
		},
		GetIdentifierValue: func(s *Skill) string {
			return s.Name
		},
	})
}

// NewStatRepository creates a repository for Stat entities.
func NewStatRepository(db *bun.DB) repository.Repository[*Stat] {
	return repository.MustNewRepository(db, repository.ModelHandlers[*Stat]{
		NewRecord: func() *Stat { return &Stat{} },
		GetID: func(s *Stat) uuid.UUID {
			return s.ID
		},
		SetID: func(s *Stat, id uuid.UUID) {
			s.ID = id
		},
		GetIdentifier: func() string {
			return "id"
		},
		GetIdentifierValue: func(s *Stat) string {
			return s.ID.String()
		},
	})
}

// NewStatTranslationRepository creates a repository for StatTranslation entities.
func NewStatTranslationRepository(db *bun.DB) repository.Repository[*StatTranslation] {
	return repository.MustNewRepository(db, repository.ModelHandlers[*StatTranslation]{
		NewRecord: func() *StatTranslation { return &StatTranslation{} },
		GetID: func(tr *StatTranslation) uuid.UUID {
			return tr.ID
		},
		SetID: func(tr *StatTranslation, id uuid.UUID) {
			tr.ID = id
		},
		GetIdentifier: func() string {
			return "id"
		},
		GetIdentifierValue: func(tr *StatTranslation) string {
			return tr.ID.String()
		},
	})
}
