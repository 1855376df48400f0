// Package activity describes admin audit events emitted by content and asset
// mutations. Events are fanned out to sinks; the usersink subpackage adapts
// them onto the go-users activity log.
package activity

import (
	"context"
	"time"
)

// Event captures a single admin action against a portfolio resource.
type Event struct {
	Verb           string
	ActorID        string
	UserID         string
	TenantID       string
	ObjectType     string
	ObjectID       string
	Channel        string
	DefinitionCode string
	Recipients     []string
	Metadata       map[string]any
	OccurredAt     time.Time
}

// Notifier receives events; implementations decide durability.
type Notifier interface {
	Notify(ctx context.Context, event Event) error
}

// NoOp returns a notifier that drops every event.
func NoOp() Notifier {
	return noopNotifier{}
}

type noopNotifier struct{}

func (noopNotifier) Notify(context.Context, Event) error { return nil }
