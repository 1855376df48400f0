package markdowncmd

import (
	"context"
	"os"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/goliatone/go-portfolio/internal/commands"
	"github.com/goliatone/go-portfolio/internal/content"
	"github.com/goliatone/go-portfolio/internal/markdown"
	"github.com/goliatone/go-portfolio/pkg/interfaces"
	"github.com/google/uuid"
)

const importProjectsMessageType = "portfolio.markdown.import_projects"

// ImportProjectsCommand imports localized markdown project files from a
// directory on disk.
type ImportProjectsCommand struct {
	Dir   string     `json:"dir"`
	RunBy *uuid.UUID `json:"run_by,omitempty"`
}

// Type implements command.Message.
func (ImportProjectsCommand) Type() string { return importProjectsMessageType }

// Validate ensures the message names a source directory.
func (m ImportProjectsCommand) Validate() error {
	errs := validation.Errors{}
	if strings.TrimSpace(m.Dir) == "" {
		errs["dir"] = validation.NewError("portfolio.markdown.import.dir_required", "dir is required")
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

// ImportProjectsHandler runs markdown imports through the shared command
// handler foundation.
type ImportProjectsHandler struct {
	inner *commands.Handler[ImportProjectsCommand]
}

// NewImportProjectsHandler constructs a handler wired to the content service.
func NewImportProjectsHandler(service content.Service, logger interfaces.Logger, opts ...commands.HandlerOption[ImportProjectsCommand]) *ImportProjectsHandler {
	exec := func(ctx context.Context, msg ImportProjectsCommand) error {
		importerOpts := []markdown.ImporterOption{markdown.WithLogger(logger)}
		if msg.RunBy != nil {
			importerOpts = append(importerOpts, markdown.WithActor(*msg.RunBy))
		}
		importer := markdown.NewImporter(service, importerOpts...)
		_, err := importer.ImportDirectory(ctx, os.DirFS(msg.Dir))
		return err
	}

	handlerOpts := []commands.HandlerOption[ImportProjectsCommand]{
		commands.WithLogger[ImportProjectsCommand](logger),
		commands.WithOperation[ImportProjectsCommand]("markdown.import_projects"),
	}
	handlerOpts = append(handlerOpts, opts...)

	return &ImportProjectsHandler{
		inner: commands.NewHandler[ImportProjectsCommand](exec, handlerOpts...),
	}
}

// Execute satisfies command.Commander[ImportProjectsCommand].Execute.
func (h *ImportProjectsHandler) Execute(ctx context.Context, msg ImportProjectsCommand) error {
	return h.inner.Execute(ctx, msg)
}
