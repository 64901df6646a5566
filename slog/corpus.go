// Package slog provides logging decorators around seolint services.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/seolint"
)

// Ensure LoggingCorpus implements seolint.Corpus.
var _ seolint.Corpus = (*LoggingCorpus)(nil)

// LoggingCorpus wraps a Corpus with debug logging.
type LoggingCorpus struct {
	next   seolint.Corpus
	logger *slog.Logger
}

// NewLoggingCorpus creates a new LoggingCorpus.
func NewLoggingCorpus(next seolint.Corpus, logger *slog.Logger) *LoggingCorpus {
	return &LoggingCorpus{next: next, logger: logger}
}

// Discover delegates to the wrapped corpus and logs the operation.
func (c *LoggingCorpus) Discover(ctx context.Context) (sources []*seolint.Source, err error) {
	defer func(begin time.Time) {
		c.logger.Info("corpus discovery",
			"count", len(sources),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return c.next.Discover(ctx)
}

// Read delegates to the wrapped corpus and logs the operation.
func (c *LoggingCorpus) Read(ctx context.Context, src *seolint.Source) (raw string, err error) {
	defer func(begin time.Time) {
		c.logger.Debug("corpus read",
			"slug", src.Slug,
			"path", src.Path,
			"bytes", len(raw),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return c.next.Read(ctx, src)
}
