package markdown

import (
	"context"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	"github.com/goliatone/go-portfolio/internal/content"
	"github.com/goliatone/go-portfolio/internal/i18n"
	"github.com/goliatone/go-portfolio/internal/logging"
	"github.com/goliatone/go-portfolio/pkg/interfaces"
	"github.com/google/uuid"
)

// Importer turns a directory of localized markdown files into portfolio
// projects. Files are grouped by slug across locale subdirectories:
//
//	projects/
//	  en/taxi-app.md
//	  ru/taxi-app.md
//	  uz/taxi-app.md
//
// The default-locale file is authoritative for locale-invariant fields; a
// slug without a default-locale file is skipped.
type Importer struct {
	service  content.Service
	renderer *Renderer
	logger   interfaces.Logger
	actor    uuid.UUID
}

// ImporterOption configures the importer.
type ImporterOption func(*Importer)

// WithLogger attaches a logger for per-file outcomes.
func WithLogger(logger interfaces.Logger) ImporterOption {
	return func(i *Importer) {
		if logger != nil {
			i.logger = logger
		}
	}
}

// WithActor records the user the import runs as.
func WithActor(actor uuid.UUID) ImporterOption {
	return func(i *Importer) {
		i.actor = actor
	}
}

// NewImporter constructs an importer over the content service.
func NewImporter(service content.Service, opts ...ImporterOption) *Importer {
	imp := &Importer{
		service:  service,
		renderer: NewRenderer(),
		logger:   logging.NoOp(),
	}
	for _, opt := range opts {
		opt(imp)
	}
	return imp
}

// ImportResult summarizes one import run.
type ImportResult struct {
	Created int
	Updated int
	Skipped []string
}

type localizedDoc struct {
	meta ProjectFrontMatter
	body []byte
}

// ImportDirectory loads every markdown project under root and creates or
// updates the matching records. Existing slugs are updated in place.
func (i *Importer) ImportDirectory(ctx context.Context, fsys fs.FS) (*ImportResult, error) {
	grouped, err := i.collect(fsys)
	if err != nil {
		return nil, err
	}

	result := &ImportResult{}

	existing, err := i.service.Projects(ctx)
	if err != nil {
		return nil, err
	}
	bySlug := make(map[string]*content.Project, len(existing))
	for _, record := range existing {
		bySlug[record.Slug] = record
	}

	slugs := make([]string, 0, len(grouped))
	for slug := range grouped {
		slugs = append(slugs, slug)
	}
	sort.Strings(slugs)

	for _, slug := range slugs {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		docs := grouped[slug]
		base, ok := docs[i18n.DefaultLocale]
		if !ok {
			i.logger.Warn("project skipped: no default locale file", "slug", slug)
			result.Skipped = append(result.Skipped, slug)
			continue
		}

		translations, err := i.buildTranslations(docs)
		if err != nil {
			return nil, fmt.Errorf("project %s: %w", slug, err)
		}

		current := bySlug[slug]

		if current == nil {
			if _, err := i.service.CreateProject(ctx, content.CreateProjectRequest{
				Slug:         slug,
				ImageURL:     base.meta.Image,
				LiveURL:      base.meta.LiveURL,
				RepoURL:      base.meta.RepoURL,
				Tech:         base.meta.Tech,
				DisplayOrder: base.meta.DisplayOrder,
				Published:    base.meta.Published,
				Translations: translations,
				CreatedBy:    i.actor,
			}); err != nil {
				return nil, fmt.Errorf("create project %s: %w", slug, err)
			}
			result.Created++
			i.logger.Info("project imported", "slug", slug, "locales", len(translations))
			continue
		}

		image := base.meta.Image
		live := base.meta.LiveURL
		repo := base.meta.RepoURL
		order := base.meta.DisplayOrder
		if _, err := i.service.UpdateProject(ctx, content.UpdateProjectRequest{
			ID:           current.ID,
			ImageURL:     &image,
			LiveURL:      &live,
			RepoURL:      &repo,
			Tech:         base.meta.Tech,
			DisplayOrder: &order,
			Translations: translations,
			UpdatedBy:    i.actor,
		}); err != nil {
			return nil, fmt.Errorf("update project %s: %w", slug, err)
		}
		result.Updated++
		i.logger.Info("project refreshed", "slug", slug, "locales", len(translations))
	}

	return result, nil
}

// collect walks locale subdirectories and groups documents by slug. The file
// name (without extension) is the fallback slug when frontmatter omits one.
func (i *Importer) collect(fsys fs.FS) (map[string]map[string]localizedDoc, error) {
	grouped := map[string]map[string]localizedDoc{}

	for _, locale := range i18n.SupportedLocales() {
		entries, err := fs.ReadDir(fsys, locale)
		if err != nil {
			continue
		}
		for _, entry := range entries {
			if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".md") {
				continue
			}
			filePath := path.Join(locale, entry.Name())
			data, err := fs.ReadFile(fsys, filePath)
			if err != nil {
				return nil, fmt.Errorf("read %s: %w", filePath, err)
			}
			meta, body, err := ParseProject(data)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", filePath, err)
			}
			slug := strings.TrimSpace(meta.Slug)
			if slug == "" {
				slug = strings.TrimSuffix(entry.Name(), ".md")
			}
			if grouped[slug] == nil {
				grouped[slug] = map[string]localizedDoc{}
			}
			grouped[slug][locale] = localizedDoc{meta: meta, body: body}
		}
	}
	return grouped, nil
}

func (i *Importer) buildTranslations(docs map[string]localizedDoc) ([]content.TranslationInput, error) {
	locales := make([]string, 0, len(docs))
	for locale := range docs {
		locales = append(locales, locale)
	}
	sort.Strings(locales)

	translations := make([]content.TranslationInput, 0, len(docs))
	for _, locale := range locales {
		doc := docs[locale]
		description, err := i.renderer.Render(doc.body)
		if err != nil {
			return nil, err
		}
		translations = append(translations, content.TranslationInput{
			Locale:      locale,
			Title:       doc.meta.Title,
			Description: strings.TrimSpace(description),
		})
	}
	return translations, nil
}
