package content

import (
	"context"
	"strings"

	"github.com/google/uuid"
)

// UpdateHeroRequest captures a partial update of the hero singleton. Nil
// fields are left untouched; a non-nil Translations slice replaces the full
// localized set.
type UpdateHeroRequest struct {
	Name         *string
	ResumeURL    *string
	Translations []TranslationInput
	UpdatedBy    uuid.UUID
}

// Hero returns the singleton record regardless of publish state.
func (s *service) Hero(ctx context.Context) (*Hero, error) {
	return s.repos.Heroes.Get(ctx)
}

// PublishedHero returns the hero for public rendering, or nil when the
// record is absent or unpublished. Public pages render an empty section in
// that case rather than erroring.
func (s *service) PublishedHero(ctx context.Context) (*Hero, error) {
	record, err := s.repos.Heroes.Get(ctx)
	if err != nil {
		if IsNotFound(err) {
			return nil, nil
		}
		return nil, err
	}
	if !record.IsPublished {
		return nil, nil
	}
	return record, nil
}

// UpdateHero merges the provided fields into the singleton. The hero is
// pre-seeded and update-only; a missing record surfaces as NotFound.
func (s *service) UpdateHero(ctx context.Context, req UpdateHeroRequest) (*Hero, error) {
	record, err := s.repos.Heroes.Get(ctx)
	if err != nil {
		return nil, err
	}

	if req.Translations != nil {
		if err := validateTranslations(req.Translations); err != nil {
			return nil, err
		}
	}

	if req.Name != nil {
		record.Name = strings.TrimSpace(*req.Name)
	}
	if req.ResumeURL != nil {
		record.ResumeURL = strings.TrimSpace(*req.ResumeURL)
	}
	record.UpdatedAt = s.now()

	updated, err := s.repos.Heroes.Save(ctx, record)
	if err != nil {
		return nil, err
	}

	if req.Translations != nil {
		translations := make([]*HeroTranslation, 0, len(req.Translations))
		for _, input := range req.Translations {
			translations = append(translations, &HeroTranslation{
				ID:           s.id(),
				HeroID:       updated.ID,
				Locale:       strings.ToLower(strings.TrimSpace(input.Locale)),
				Profession:   input.Profession,
				Description:  input.Description,
				PrimaryCTA:   input.PrimaryCTA,
				SecondaryCTA: input.SecondaryCTA,
				CreatedAt:    s.now(),
				UpdatedAt:    s.now(),
			})
		}
		if err := s.repos.Heroes.ReplaceTranslations(ctx, updated.ID, translations); err != nil {
			return nil, err
		}
		updated, err = s.repos.Heroes.Get(ctx)
		if err != nil {
			return nil, err
		}
	}

	s.notify(ctx, "update", "hero", updated.ID.String(), req.UpdatedBy, nil)
	return updated, nil
}

// SetHeroPublished toggles public visibility of the hero section.
func (s *service) SetHeroPublished(ctx context.Context, published bool, updatedBy uuid.UUID) (*Hero, error) {
	record, err := s.repos.Heroes.Get(ctx)
	if err != nil {
		return nil, err
	}
	record.IsPublished = published
	record.UpdatedAt = s.now()
	updated, err := s.repos.Heroes.Save(ctx, record)
	if err != nil {
		return nil, err
	}
	s.notify(ctx, "publish", "hero", updated.ID.String(), updatedBy, map[string]any{"published": published})
	return updated, nil
}
