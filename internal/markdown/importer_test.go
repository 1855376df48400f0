package markdown_test

import (
	"context"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/goliatone/go-portfolio/internal/content"
	"github.com/goliatone/go-portfolio/internal/markdown"
)

func fixtureFS() fstest.MapFS {
	return fstest.MapFS{
		"en/taxi-app.md": &fstest.MapFile{Data: []byte(`---
title: Taxi Booking App
slug: taxi-app
image: https://cdn.example.com/projects/taxi.webp
live_url: https://taxi.example.com
repo_url: https://github.com/example/taxi
tech: [Go, PostgreSQL]
display_order: 10
published: true
---
Real-time dispatch with **driver tracking**.
`)},
		"ru/taxi-app.md": &fstest.MapFile{Data: []byte(`---
title: Приложение для заказа такси
slug: taxi-app
---
Диспетчеризация в реальном времени.
`)},
		"ru/orphan.md": &fstest.MapFile{Data: []byte(`---
title: Без английской версии
---
Текст.
`)},
	}
}

func TestImportDirectoryCreatesProjectsWithTranslations(t *testing.T) {
	svc := content.NewService(content.MemoryRepositories())
	importer := markdown.NewImporter(svc)

	result, err := importer.ImportDirectory(context.Background(), fixtureFS())
	if err != nil {
		t.Fatalf("import: %v", err)
	}
	if result.Created != 1 {
		t.Fatalf("expected 1 created, got %d", result.Created)
	}
	if len(result.Skipped) != 1 || result.Skipped[0] != "orphan" {
		t.Fatalf("expected orphan skipped, got %v", result.Skipped)
	}

	projects, err := svc.Projects(context.Background())
	if err != nil {
		t.Fatalf("projects: %v", err)
	}
	if len(projects) != 1 {
		t.Fatalf("expected 1 project, got %d", len(projects))
	}
	project := projects[0]
	if project.Slug != "taxi-app" || !project.IsPublished {
		t.Fatalf("unexpected project %+v", project)
	}
	if len(project.Translations) != 2 {
		t.Fatalf("expected en+ru translations, got %d", len(project.Translations))
	}

	localized := project.Localize("en")
	if !strings.Contains(localized.Description, "<strong>driver tracking</strong>") {
		t.Fatalf("expected rendered markdown, got %q", localized.Description)
	}
}

type listCountingService struct {
	content.Service
	listCalls int
}

func (s *listCountingService) Projects(ctx context.Context) ([]*content.Project, error) {
	s.listCalls++
	return s.Service.Projects(ctx)
}

func TestImportDirectoryListsProjectsOnce(t *testing.T) {
	svc := &listCountingService{Service: content.NewService(content.MemoryRepositories())}
	importer := markdown.NewImporter(svc)

	fsys := fixtureFS()
	fsys["en/metro-map.md"] = &fstest.MapFile{Data: []byte(`---
title: Metro Map
slug: metro-map
---
Interactive transit map.
`)}
	fsys["en/crm.md"] = &fstest.MapFile{Data: []byte(`---
title: CRM Dashboard
slug: crm
---
Sales pipeline dashboard.
`)}

	result, err := importer.ImportDirectory(context.Background(), fsys)
	if err != nil {
		t.Fatalf("import: %v", err)
	}
	if result.Created != 3 {
		t.Fatalf("expected 3 created, got %d", result.Created)
	}
	if svc.listCalls != 1 {
		t.Fatalf("expected a single project listing per run, got %d", svc.listCalls)
	}
}

func TestImportDirectoryUpdatesExistingSlug(t *testing.T) {
	svc := content.NewService(content.MemoryRepositories())
	importer := markdown.NewImporter(svc)

	if _, err := importer.ImportDirectory(context.Background(), fixtureFS()); err != nil {
		t.Fatalf("first import: %v", err)
	}

	fsys := fixtureFS()
	fsys["en/taxi-app.md"] = &fstest.MapFile{Data: []byte(`---
title: Taxi Booking Platform
slug: taxi-app
display_order: 5
---
Updated copy.
`)}

	result, err := importer.ImportDirectory(context.Background(), fsys)
	if err != nil {
		t.Fatalf("second import: %v", err)
	}
	if result.Created != 0 || result.Updated != 1 {
		t.Fatalf("expected update, got created=%d updated=%d", result.Created, result.Updated)
	}

	projects, err := svc.Projects(context.Background())
	if err != nil {
		t.Fatalf("projects: %v", err)
	}
	if len(projects) != 1 {
		t.Fatalf("expected 1 project after re-import, got %d", len(projects))
	}
	if projects[0].DisplayOrder != 5 {
		t.Fatalf("expected display order refreshed, got %d", projects[0].DisplayOrder)
	}
	if got := projects[0].Localize("en").Title; got != "Taxi Booking Platform" {
		t.Fatalf("expected updated title, got %q", got)
	}
}
