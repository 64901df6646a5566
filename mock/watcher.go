package mock

import (
	"context"

	"github.com/fwojciec/seolint"
)

var _ seolint.Watcher = (*Watcher)(nil)

// Watcher is a mock implementation of seolint.Watcher.
type Watcher struct {
	WatchFn func(ctx context.Context, root string, onChange func()) error
}

func (w *Watcher) Watch(ctx context.Context, root string, onChange func()) error {
	return w.WatchFn(ctx, root, onChange)
}
