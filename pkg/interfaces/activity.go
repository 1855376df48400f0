package interfaces

import (
	"context"

	usertypes "github.com/goliatone/go-users/pkg/types"
)

// ActivityRecord is the go-users record shape portfolio admin events (content
// edits, publish toggles, asset uploads) are mapped into before leaving the
// module.
type ActivityRecord = usertypes.ActivityRecord

// ActivitySink receives one record per admin mutation. Implementations decide
// durability; the module treats sink failures as non-fatal and never blocks a
// mutation on them.
type ActivitySink interface {
	Log(ctx context.Context, record ActivityRecord) error
}

// ActivitySinkFunc adapts a plain function to the ActivitySink contract.
type ActivitySinkFunc func(ctx context.Context, record ActivityRecord) error

// Log implements ActivitySink.
func (f ActivitySinkFunc) Log(ctx context.Context, record ActivityRecord) error {
	return f(ctx, record)
}
