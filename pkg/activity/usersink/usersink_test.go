package usersink_test

import (
	"context"
	"testing"
	"time"

	"github.com/goliatone/go-portfolio/pkg/activity"
	"github.com/goliatone/go-portfolio/pkg/activity/usersink"
	"github.com/goliatone/go-portfolio/pkg/interfaces"
)

func TestHookMapsEventToActivityRecord(t *testing.T) {
	var captured []interfaces.ActivityRecord
	hook := usersink.Hook{Sink: interfaces.ActivitySinkFunc(func(ctx context.Context, record interfaces.ActivityRecord) error {
		captured = append(captured, record)
		return nil
	})}

	occurred := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	err := hook.Notify(context.Background(), activity.Event{
		Verb:       "project.published",
		ActorID:    "3b9d4b40-9c5a-4f64-9d92-0f39c1b7a001",
		ObjectType: "project",
		ObjectID:   "taxi-dispatch",
		Metadata:   map[string]any{"locale_count": 3},
		OccurredAt: occurred,
	})
	if err != nil {
		t.Fatalf("notify: %v", err)
	}
	if len(captured) != 1 {
		t.Fatalf("expected 1 record, got %d", len(captured))
	}
	record := captured[0]
	if record.Verb != "project.published" {
		t.Fatalf("unexpected verb %q", record.Verb)
	}
	if record.ObjectID != "taxi-dispatch" {
		t.Fatalf("unexpected object id %q", record.ObjectID)
	}
	if !record.OccurredAt.Equal(occurred) {
		t.Fatalf("unexpected occurred at %v", record.OccurredAt)
	}
	if record.Data["locale_count"] != 3 {
		t.Fatalf("expected metadata to carry over, got %v", record.Data)
	}
}

func TestHookSkipsEventsWithoutVerb(t *testing.T) {
	calls := 0
	hook := usersink.Hook{Sink: interfaces.ActivitySinkFunc(func(ctx context.Context, record interfaces.ActivityRecord) error {
		calls++
		return nil
	})}

	if err := hook.Notify(context.Background(), activity.Event{ObjectType: "project"}); err != nil {
		t.Fatalf("notify: %v", err)
	}
	if calls != 0 {
		t.Fatal("expected verb-less event to be dropped")
	}
}
