package content

import (
	"context"
	"strings"

	"github.com/google/uuid"
)

// CreateStatRequest captures the information required to create a headline
// stat. The value is locale invariant; only the label is translated.
type CreateStatRequest struct {
	Value        string
	DisplayOrder int
	Published    bool
	Translations []TranslationInput
	CreatedBy    uuid.UUID
}

// UpdateStatRequest captures mutable fields for an existing stat. Nil
// pointers and a nil Translations slice leave the field untouched.
type UpdateStatRequest struct {
	ID           uuid.UUID
	Value        *string
	DisplayOrder *int
	Translations []TranslationInput
	UpdatedBy    uuid.UUID
}

// Stats returns every stat for the admin surface.
func (s *service) Stats(ctx context.Context) ([]*Stat, error) {
	return s.repos.Stats.List(ctx)
}

// PublishedStats returns the publish-gated list for public rendering.
func (s *service) PublishedStats(ctx context.Context) ([]*Stat, error) {
	records, err := s.repos.Stats.List(ctx)
	if err != nil {
		return nil, err
	}
	published := make([]*Stat, 0, len(records))
	for _, record := range records {
		if record.IsPublished {
			published = append(published, record)
		}
	}
	return published, nil
}

// Stat returns a single stat by id.
func (s *service) Stat(ctx context.Context, id uuid.UUID) (*Stat, error) {
	if id == uuid.Nil {
		return nil, ErrIDRequired
	}
	return s.repos.Stats.GetByID(ctx, id)
}

// CreateStat validates and stores a new stat with its labels.
func (s *service) CreateStat(ctx context.Context, req CreateStatRequest) (*Stat, error) {
	value := strings.TrimSpace(req.Value)
	if value == "" {
		return nil, ErrValueRequired
	}
	if err := validateTranslations(req.Translations); err != nil {
		return nil, err
	}

	now := s.now()
	record := &Stat{
		ID:           s.id(),
		Value:        value,
		DisplayOrder: req.DisplayOrder,
		IsPublished:  req.Published,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	created, err := s.repos.Stats.Create(ctx, record)
	if err != nil {
		return nil, err
	}
	if err := s.repos.Stats.ReplaceTranslations(ctx, created.ID, s.statTranslations(created.ID, req.Translations)); err != nil {
		return nil, err
	}

	created, err = s.repos.Stats.GetByID(ctx, created.ID)
	if err != nil {
		return nil, err
	}

	s.notify(ctx, "create", "stat", created.ID.String(), req.CreatedBy, map[string]any{"value": created.Value})
	return created, nil
}

// UpdateStat merges the provided fields; last writer wins on concurrent
// edits.
func (s *service) UpdateStat(ctx context.Context, req UpdateStatRequest) (*Stat, error) {
	if req.ID == uuid.Nil {
		return nil, ErrIDRequired
	}
	record, err := s.repos.Stats.GetByID(ctx, req.ID)
	if err != nil {
		return nil, err
	}

	if req.Translations != nil {
		if err := validateTranslations(req.Translations); err != nil {
			return nil, err
		}
	}

	if req.Value != nil {
		value := strings.TrimSpace(*req.Value)
		if value == "" {
			return nil, ErrValueRequired
		}
		record.Value = value
	}
	if req.DisplayOrder != nil {
		record.DisplayOrder = *req.DisplayOrder
	}
	record.UpdatedAt = s.now()

	updated, err := s.repos.Stats.Update(ctx, record)
	if err != nil {
		return nil, err
	}

	if req.Translations != nil {
		if err := s.repos.Stats.ReplaceTranslations(ctx, updated.ID, s.statTranslations(updated.ID, req.Translations)); err != nil {
			return nil, err
		}
	}

	updated, err = s.repos.Stats.GetByID(ctx, updated.ID)
	if err != nil {
		return nil, err
	}

	s.notify(ctx, "update", "stat", updated.ID.String(), req.UpdatedBy, map[string]any{"value": updated.Value})
	return updated, nil
}

// DeleteStat removes a stat entry.
func (s *service) DeleteStat(ctx context.Context, id uuid.UUID, deletedBy uuid.UUID) error {
	if id == uuid.Nil {
		return ErrIDRequired
	}
	record, err := s.repos.Stats.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.repos.Stats.Delete(ctx, record.ID); err != nil {
		return err
	}
	s.notify(ctx, "delete", "stat", record.ID.String(), deletedBy, map[string]any{"value": record.Value})
	return nil
}

// SetStatPublished toggles public visibility of a stat.
func (s *service) SetStatPublished(ctx context.Context, id uuid.UUID, published bool, updatedBy uuid.UUID) (*Stat, error) {
	if id == uuid.Nil {
		return nil, ErrIDRequired
	}
	record, err := s.repos.Stats.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	record.IsPublished = published
	record.UpdatedAt = s.now()
	updated, err := s.repos.Stats.Update(ctx, record)
	if err != nil {
		return nil, err
	}
	s.notify(ctx, "publish", "stat", updated.ID.String(), updatedBy, map[string]any{"published": published})
	return updated, nil
}

func (s *service) statTranslations(statID uuid.UUID, inputs []TranslationInput) []*StatTranslation {
	translations := make([]*StatTranslation, 0, len(inputs))
	for _, input := range inputs {
		translations = append(translations, &StatTranslation{
			ID:        s.id(),
			StatID:    statID,
			Locale:    strings.ToLower(strings.TrimSpace(input.Locale)),
			Label:     input.Label,
			CreatedAt: s.now(),
			UpdatedAt: s.now(),
		})
	}
	return translations
}
