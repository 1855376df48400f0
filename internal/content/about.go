package content

import (
	"context"
	"strings"

	"github.com/google/uuid"
)

// UpdateAboutRequest captures a partial update of the about singleton. Nil
// fields are left untouched; a non-nil Translations slice replaces the full
// localized set.
type UpdateAboutRequest struct {
	ImageURL     *string
	Translations []TranslationInput
	UpdatedBy    uuid.UUID
}

// About returns the singleton record regardless of publish state.
func (s *service) About(ctx context.Context) (*About, error) {
	return s.repos.Abouts.Get(ctx)
}

// PublishedAbout returns the about section for public rendering, or nil when
// absent or unpublished.
func (s *service) PublishedAbout(ctx context.Context) (*About, error) {
	record, err := s.repos.Abouts.Get(ctx)
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

// UpdateAbout merges the provided fields into the singleton. The about
// record is pre-seeded and update-only; a missing record surfaces as NotFound.
func (s *service) UpdateAbout(ctx context.Context, req UpdateAboutRequest) (*About, error) {
	record, err := s.repos.Abouts.Get(ctx)
	if err != nil {
		return nil, err
	}

	if req.Translations != nil {
		if err := validateTranslations(req.Translations); err != nil {
			return nil, err
		}
	}

	if req.ImageURL != nil {
		record.ImageURL = strings.TrimSpace(*req.ImageURL)
	}
	record.UpdatedAt = s.now()

	updated, err := s.repos.Abouts.Save(ctx, record)
	if err != nil {
		return nil, err
	}

	if req.Translations != nil {
		translations := make([]*AboutTranslation, 0, len(req.Translations))
		for _, input := range req.Translations {
			translations = append(translations, &AboutTranslation{
				ID:            s.id(),
				AboutID:       updated.ID,
				Locale:        strings.ToLower(strings.TrimSpace(input.Locale)),
				Title:         input.Title,
				Description:   input.Description,
				Location:      input.Location,
				Availability:  input.Availability,
				Education:     input.Education,
				ServicesTitle: input.ServicesTitle,
				Services:      append([]string(nil), input.Services...),
				CreatedAt:     s.now(),
				UpdatedAt:     s.now(),
			})
		}
		if err := s.repos.Abouts.ReplaceTranslations(ctx, updated.ID, translations); err != nil {
			return nil, err
		}
		updated, err = s.repos.Abouts.Get(ctx)
		if err != nil {
			return nil, err
		}
	}

	s.notify(ctx, "update", "about", updated.ID.String(), req.UpdatedBy, nil)
	return updated, nil
}

// SetAboutPublished toggles public visibility of the about section.
func (s *service) SetAboutPublished(ctx context.Context, published bool, updatedBy uuid.UUID) (*About, error) {
	record, err := s.repos.Abouts.Get(ctx)
	if err != nil {
		return nil, err
	}
	record.IsPublished = published
	record.UpdatedAt = s.now()
	updated, err := s.repos.Abouts.Save(ctx, record)
	if err != nil {
		return nil, err
	}
	s.notify(ctx, "publish", "about", updated.ID.String(), updatedBy, map[string]any{"published": published})
	return updated, nil
}
