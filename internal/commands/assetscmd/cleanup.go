package assetscmd

import (
	"context"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/goliatone/go-portfolio/internal/assets"
	"github.com/goliatone/go-portfolio/internal/commands"
	"github.com/goliatone/go-portfolio/pkg/interfaces"
)

const removeAssetMessageType = "portfolio.assets.remove"

// RemoveAssetCommand requests deletion of a stored asset by public URL.
type RemoveAssetCommand struct {
	URL string `json:"url"`
}

// Type implements command.Message.
func (RemoveAssetCommand) Type() string { return removeAssetMessageType }

// Validate ensures the message carries a target URL.
func (m RemoveAssetCommand) Validate() error {
	errs := validation.Errors{}
	if strings.TrimSpace(m.URL) == "" {
		errs["url"] = validation.NewError("portfolio.assets.remove.url_required", "url is required")
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

// RemoveAssetHandler deletes assets via the asset service using the shared
// command handler foundation.
type RemoveAssetHandler struct {
	inner *commands.Handler[RemoveAssetCommand]
}

// NewRemoveAssetHandler constructs a handler wired to the asset service.
func NewRemoveAssetHandler(service assets.Service, logger interfaces.Logger, opts ...commands.HandlerOption[RemoveAssetCommand]) *RemoveAssetHandler {
	exec := func(ctx context.Context, msg RemoveAssetCommand) error {
		return service.Remove(ctx, msg.URL)
	}

	handlerOpts := []commands.HandlerOption[RemoveAssetCommand]{
		commands.WithLogger[RemoveAssetCommand](logger),
		commands.WithOperation[RemoveAssetCommand]("assets.remove"),
	}
	handlerOpts = append(handlerOpts, opts...)

	return &RemoveAssetHandler{
		inner: commands.NewHandler[RemoveAssetCommand](exec, handlerOpts...),
	}
}

// Execute satisfies command.Commander[RemoveAssetCommand].Execute.
func (h *RemoveAssetHandler) Execute(ctx context.Context, msg RemoveAssetCommand) error {
	return h.inner.Execute(ctx, msg)
}
