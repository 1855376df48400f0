package content

import (
	"context"
	"strings"

	slug "github.com/goliatone/go-slug"
	"github.com/google/uuid"
)

// CreateProjectRequest captures the information required to create a project.
// Slug is optional; when empty it is derived from the English title.
type CreateProjectRequest struct {
	Slug         string
	ImageURL     string
	LiveURL      string
	RepoURL      string
	Tech         []string
	DisplayOrder int
	Published    bool
	Translations []TranslationInput
	CreatedBy    uuid.UUID
}

// UpdateProjectRequest captures mutable fields for an existing project. Nil
// pointers and a nil Tech/Translations slice leave the field untouched.
type UpdateProjectRequest struct {
	ID           uuid.UUID
	Slug         *string
	ImageURL     *string
	LiveURL      *string
	RepoURL      *string
	Tech         []string
	DisplayOrder *int
	Translations []TranslationInput
	UpdatedBy    uuid.UUID
}

// DeleteProjectRequest captures the information required to remove a project.
type DeleteProjectRequest struct {
	ID        uuid.UUID
	DeletedBy uuid.UUID
}

// Projects returns every project for the admin surface.
func (s *service) Projects(ctx context.Context) ([]*Project, error) {
	return s.repos.Projects.List(ctx)
}

// PublishedProjects returns the publish-gated list for public rendering.
func (s *service) PublishedProjects(ctx context.Context) ([]*Project, error) {
	records, err := s.repos.Projects.List(ctx)
	if err != nil {
		return nil, err
	}
	published := make([]*Project, 0, len(records))
	for _, record := range records {
		if record.IsPublished {
			published = append(published, record)
		}
	}
	return published, nil
}

// Project returns a single project by id.
func (s *service) Project(ctx context.Context, id uuid.UUID) (*Project, error) {
	if id == uuid.Nil {
		return nil, ErrIDRequired
	}
	return s.repos.Projects.GetByID(ctx, id)
}

// CreateProject validates and stores a new project with its translations.
func (s *service) CreateProject(ctx context.Context, req CreateProjectRequest) (*Project, error) {
	if err := validateTranslations(req.Translations); err != nil {
		return nil, err
	}

	normalized, err := s.resolveSlug(ctx, req.Slug, req.Translations, uuid.Nil)
	if err != nil {
		return nil, err
	}

	now := s.now()
	record := &Project{
		ID:           s.id(),
		Slug:         normalized,
		ImageURL:     strings.TrimSpace(req.ImageURL),
		LiveURL:      strings.TrimSpace(req.LiveURL),
		RepoURL:      strings.TrimSpace(req.RepoURL),
		Tech:         append([]string(nil), req.Tech...),
		DisplayOrder: req.DisplayOrder,
		IsPublished:  req.Published,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	created, err := s.repos.Projects.Create(ctx, record)
	if err != nil {
		return nil, err
	}
	if err := s.repos.Projects.ReplaceTranslations(ctx, created.ID, s.projectTranslations(created.ID, req.Translations)); err != nil {
		return nil, err
	}

	created, err = s.repos.Projects.GetByID(ctx, created.ID)
	if err != nil {
		return nil, err
	}

	s.notify(ctx, "create", "project", created.ID.String(), req.CreatedBy, map[string]any{"slug": created.Slug})
	return created, nil
}

// UpdateProject merges the provided fields; last writer wins on concurrent
// edits.
func (s *service) UpdateProject(ctx context.Context, req UpdateProjectRequest) (*Project, error) {
	if req.ID == uuid.Nil {
		return nil, ErrIDRequired
	}
	record, err := s.repos.Projects.GetByID(ctx, req.ID)
	if err != nil {
		return nil, err
	}

	if req.Translations != nil {
		if err := validateTranslations(req.Translations); err != nil {
			return nil, err
		}
	}

	if req.Slug != nil {
		normalized, err := s.resolveSlug(ctx, *req.Slug, nil, record.ID)
		if err != nil {
			return nil, err
		}
		record.Slug = normalized
	}
	if req.ImageURL != nil {
		record.ImageURL = strings.TrimSpace(*req.ImageURL)
	}
	if req.LiveURL != nil {
		record.LiveURL = strings.TrimSpace(*req.LiveURL)
	}
	if req.RepoURL != nil {
		record.RepoURL = strings.TrimSpace(*req.RepoURL)
	}
	if req.Tech != nil {
		record.Tech = append([]string(nil), req.Tech...)
	}
	if req.DisplayOrder != nil {
		record.DisplayOrder = *req.DisplayOrder
	}
	record.UpdatedAt = s.now()

	updated, err := s.repos.Projects.Update(ctx, record)
	if err != nil {
		return nil, err
	}

	if req.Translations != nil {
		if err := s.repos.Projects.ReplaceTranslations(ctx, updated.ID, s.projectTranslations(updated.ID, req.Translations)); err != nil {
			return nil, err
		}
	}

	updated, err = s.repos.Projects.GetByID(ctx, updated.ID)
	if err != nil {
		return nil, err
	}

	s.notify(ctx, "update", "project", updated.ID.String(), req.UpdatedBy, map[string]any{"slug": updated.Slug})
	return updated, nil
}

// DeleteProject removes the record and then cleans up its image asset on a
// best-effort basis; cleanup failure never blocks the deletion.
func (s *service) DeleteProject(ctx context.Context, req DeleteProjectRequest) error {
	if req.ID == uuid.Nil {
		return ErrIDRequired
	}
	record, err := s.repos.Projects.GetByID(ctx, req.ID)
	if err != nil {
		return err
	}
	if err := s.repos.Projects.Delete(ctx, record.ID); err != nil {
		return err
	}
	s.removeAsset(ctx, record.ImageURL)
	s.notify(ctx, "delete", "project", record.ID.String(), req.DeletedBy, map[string]any{"slug": record.Slug})
	return nil
}

// SetProjectPublished toggles public visibility; toggling to the current
// state is a no-op on content.
func (s *service) SetProjectPublished(ctx context.Context, id uuid.UUID, published bool, updatedBy uuid.UUID) (*Project, error) {
	if id == uuid.Nil {
		return nil, ErrIDRequired
	}
	record, err := s.repos.Projects.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	record.IsPublished = published
	record.UpdatedAt = s.now()
	updated, err := s.repos.Projects.Update(ctx, record)
	if err != nil {
		return nil, err
	}
	s.notify(ctx, "publish", "project", updated.ID.String(), updatedBy, map[string]any{"published": published})
	return updated, nil
}

func (s *service) projectTranslations(projectID uuid.UUID, inputs []TranslationInput) []*ProjectTranslation {
	translations := make([]*ProjectTranslation, 0, len(inputs))
	for _, input := range inputs {
		translations = append(translations, &ProjectTranslation{
			ID:          s.id(),
			ProjectID:   projectID,
			Locale:      strings.ToLower(strings.TrimSpace(input.Locale)),
			Title:       input.Title,
			Description: input.Description,
			CreatedAt:   s.now(),
			UpdatedAt:   s.now(),
		})
	}
	return translations
}

// resolveSlug normalizes the requested slug (deriving one from the English
// title when empty) and enforces uniqueness. selfID exempts the record being
// updated from the conflict check.
func (s *service) resolveSlug(ctx context.Context, requested string, translations []TranslationInput, selfID uuid.UUID) (string, error) {
	candidate := strings.TrimSpace(requested)
	if candidate == "" {
		for _, input := range translations {
			if strings.ToLower(strings.TrimSpace(input.Locale)) == "en" {
				candidate = input.Title
				break
			}
		}
	}
	if strings.TrimSpace(candidate) == "" {
		return "", ErrSlugRequired
	}

	normalized, err := slug.Normalize(candidate)
	if err != nil || normalized == "" {
		return "", ErrSlugInvalid
	}

	existing, err := s.repos.Projects.GetBySlug(ctx, normalized)
	if err != nil {
		if IsNotFound(err) {
			return normalized, nil
		}
		return "", err
	}
	if existing != nil && existing.ID != selfID {
		return "", ErrSlugExists
	}
	return normalized, nil
}
