package contentcmd

import (
	"context"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/goliatone/go-portfolio/internal/commands"
	"github.com/goliatone/go-portfolio/internal/content"
	"github.com/goliatone/go-portfolio/pkg/interfaces"
	"github.com/google/uuid"
)

const setPublishedMessageType = "portfolio.content.set_published"

// Entity kinds accepted by SetPublishedCommand.
const (
	EntityHero    = "hero"
	EntityAbout   = "about"
	EntityProject = "project"
	EntitySkill   = "skill"
	EntityStat    = "stat"
)

// SetPublishedCommand toggles public visibility of one content section or
// record. Singleton sections (hero, about) leave ID unset.
type SetPublishedCommand struct {
	Entity    string     `json:"entity"`
	ID        uuid.UUID  `json:"id,omitempty"`
	Published bool       `json:"published"`
	UpdatedBy *uuid.UUID `json:"updated_by,omitempty"`
}

// Type implements command.Message.
func (SetPublishedCommand) Type() string { return setPublishedMessageType }

// Validate ensures the message targets a known entity kind and carries an id
// for per-record kinds.
func (m SetPublishedCommand) Validate() error {
	errs := validation.Errors{}
	switch m.Entity {
	case EntityHero, EntityAbout:
	case EntityProject, EntitySkill, EntityStat:
		if m.ID == uuid.Nil {
			errs["id"] = validation.NewError("portfolio.content.set_published.id_required", "id is required for "+m.Entity)
		}
	default:
		errs["entity"] = validation.NewError("portfolio.content.set_published.entity_invalid", "unknown entity kind")
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

// SetPublishedHandler routes publish toggles to the content service through
// the shared command handler foundation.
type SetPublishedHandler struct {
	inner *commands.Handler[SetPublishedCommand]
}

// NewSetPublishedHandler constructs a handler wired to the content service.
func NewSetPublishedHandler(service content.Service, logger interfaces.Logger, opts ...commands.HandlerOption[SetPublishedCommand]) *SetPublishedHandler {
	exec := func(ctx context.Context, msg SetPublishedCommand) error {
		actor := uuid.Nil
		if msg.UpdatedBy != nil {
			actor = *msg.UpdatedBy
		}
		var err error
		switch msg.Entity {
		case EntityHero:
			_, err = service.SetHeroPublished(ctx, msg.Published, actor)
		case EntityAbout:
			_, err = service.SetAboutPublished(ctx, msg.Published, actor)
		case EntityProject:
			_, err = service.SetProjectPublished(ctx, msg.ID, msg.Published, actor)
		case EntitySkill:
			_, err = service.SetSkillPublished(ctx, msg.ID, msg.Published, actor)
		case EntityStat:
			_, err = service.SetStatPublished(ctx, msg.ID, msg.Published, actor)
		}
		return err
	}

	handlerOpts := []commands.HandlerOption[SetPublishedCommand]{
		commands.WithLogger[SetPublishedCommand](logger),
		commands.WithOperation[SetPublishedCommand]("content.set_published"),
	}
	handlerOpts = append(handlerOpts, opts...)

	return &SetPublishedHandler{
		inner: commands.NewHandler[SetPublishedCommand](exec, handlerOpts...),
	}
}

// Execute satisfies command.Commander[SetPublishedCommand].Execute.
func (h *SetPublishedHandler) Execute(ctx context.Context, msg SetPublishedCommand) error {
	return h.inner.Execute(ctx, msg)
}
