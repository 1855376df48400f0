package content

import (
	"context"
	"strings"

	"github.com/google/uuid"
)

// CreateSkillRequest captures the information required to create a skill.
// Skills are locale invariant: technology names and icon identifiers render
// the same across locales.
type CreateSkillRequest struct {
	Name         string
	Icon         string
	GradientFrom string
	GradientTo   string
	DisplayOrder int
	Published    bool
	CreatedBy    uuid.UUID
}

// UpdateSkillRequest captures mutable fields for an existing skill. Nil
// pointers leave the field untouched.
type UpdateSkillRequest struct {
	ID           uuid.UUID
	Name         *string
	Icon         *string
	GradientFrom *string
	GradientTo   *string
	DisplayOrder *int
	UpdatedBy    uuid.UUID
}

// Skills returns every skill for the admin surface.
func (s *service) Skills(ctx context.Context) ([]*Skill, error) {
	return s.repos.Skills.List(ctx)
}

// PublishedSkills returns the publish-gated list for public rendering.
func (s *service) PublishedSkills(ctx context.Context) ([]*Skill, error) {
	records, err := s.repos.Skills.List(ctx)
	if err != nil {
		return nil, err
	}
	published := make([]*Skill, 0, len(records))
	for _, record := range records {
		if record.IsPublished {
			published = append(published, record)
		}
	}
	return published, nil
}

// Skill returns a single skill by id.
func (s *service) Skill(ctx context.Context, id uuid.UUID) (*Skill, error) {
	if id == uuid.Nil {
		return nil, ErrIDRequired
	}
	return s.repos.Skills.GetByID(ctx, id)
}

// CreateSkill validates and stores a new skill entry.
func (s *service) CreateSkill(ctx context.Context, req CreateSkillRequest) (*Skill, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, ErrNameRequired
	}
	if strings.TrimSpace(req.Icon) == "" {
		return nil, ErrIconRequired
	}

	now := s.now()
	record := &Skill{
		ID:           s.id(),
		Name:         name,
		Icon:         strings.TrimSpace(req.Icon),
		GradientFrom: strings.TrimSpace(req.GradientFrom),
		GradientTo:   strings.TrimSpace(req.GradientTo),
		DisplayOrder: req.DisplayOrder,
		IsPublished:  req.Published,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	created, err := s.repos.Skills.Create(ctx, record)
	if err != nil {
		return nil, err
	}

	s.notify(ctx, "create", "skill", created.ID.String(), req.CreatedBy, map[string]any{"name": created.Name})
	return created, nil
}

// UpdateSkill merges the provided fields; last writer wins on concurrent
// edits.
func (s *service) UpdateSkill(ctx context.Context, req UpdateSkillRequest) (*Skill, error) {
	if req.ID == uuid.Nil {
		return nil, ErrIDRequired
	}
	record, err := s.repos.Skills.GetByID(ctx, req.ID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			return nil, ErrNameRequired
		}
		record.Name = name
	}
	if req.Icon != nil {
		icon := strings.TrimSpace(*req.Icon)
		if icon == "" {
			return nil, ErrIconRequired
		}
		record.Icon = icon
	}
	if req.GradientFrom != nil {
		record.GradientFrom = strings.TrimSpace(*req.GradientFrom)
	}
	if req.GradientTo != nil {
		record.GradientTo = strings.TrimSpace(*req.GradientTo)
	}
	if req.DisplayOrder != nil {
		record.DisplayOrder = *req.DisplayOrder
	}
	record.UpdatedAt = s.now()

	updated, err := s.repos.Skills.Update(ctx, record)
	if err != nil {
		return nil, err
	}

	s.notify(ctx, "update", "skill", updated.ID.String(), req.UpdatedBy, map[string]any{"name": updated.Name})
	return updated, nil
}

// DeleteSkill removes a skill entry.
func (s *service) DeleteSkill(ctx context.Context, id uuid.UUID, deletedBy uuid.UUID) error {
	if id == uuid.Nil {
		return ErrIDRequired
	}
	record, err := s.repos.Skills.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.repos.Skills.Delete(ctx, record.ID); err != nil {
		return err
	}
	s.notify(ctx, "delete", "skill", record.ID.String(), deletedBy, map[string]any{"name": record.Name})
	return nil
}

// SetSkillPublished toggles public visibility of a skill.
func (s *service) SetSkillPublished(ctx context.Context, id uuid.UUID, published bool, updatedBy uuid.UUID) (*Skill, error) {
	if id == uuid.Nil {
		return nil, ErrIDRequired
	}
	record, err := s.repos.Skills.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	record.IsPublished = published
	record.UpdatedAt = s.now()
	updated, err := s.repos.Skills.Update(ctx, record)
	if err != nil {
		return nil, err
	}
	s.notify(ctx, "publish", "skill", updated.ID.String(), updatedBy, map[string]any{"published": published})
	return updated, nil
}
