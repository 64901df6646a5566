package mock

import (
	"context"

	"github.com/fwojciec/seolint"
)

var _ seolint.Corpus = (*Corpus)(nil)

// Corpus is a mock implementation of seolint.Corpus.
type Corpus struct {
	DiscoverFn func(ctx context.Context) ([]*seolint.Source, error)
	ReadFn     func(ctx context.Context, src *seolint.Source) (string, error)
}

func (c *Corpus) Discover(ctx context.Context) ([]*seolint.Source, error) {
	return c.DiscoverFn(ctx)
}

func (c *Corpus) Read(ctx context.Context, src *seolint.Source) (string, error) {
	return c.ReadFn(ctx, src)
}
