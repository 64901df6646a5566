package slog

import (
	"log/slog"
	"time"

	"github.com/fwojciec/seolint"
)

// Ensure LoggingExtractor implements seolint.Extractor.
var _ seolint.Extractor = (*LoggingExtractor)(nil)

// LoggingExtractor wraps an Extractor with debug logging.
type LoggingExtractor struct {
	next   seolint.Extractor
	logger *slog.Logger
}

// NewLoggingExtractor creates a new LoggingExtractor.
func NewLoggingExtractor(next seolint.Extractor, logger *slog.Logger) *LoggingExtractor {
	return &LoggingExtractor{next: next, logger: logger}
}

// Extract delegates to the wrapped extractor and logs what was found.
func (e *LoggingExtractor) Extract(raw string) (result *seolint.ExtractResult, err error) {
	defer func(begin time.Time) {
		attrs := []any{"bytes", len(raw)}
		if result != nil {
			attrs = append(attrs,
				"title", result.Title != "",
				"description", result.Description != "",
				"paragraphs", len(result.Paragraphs),
			)
		}
		attrs = append(attrs, "duration", time.Since(begin), "err", err)
		e.logger.Debug("extract", attrs...)
	}(time.Now())
	return e.next.Extract(raw)
}
