package slog

import (
	"log/slog"
	"time"

	"github.com/fwojciec/seolint"
)

// Ensure LoggingExporter implements seolint.Exporter.
var _ seolint.Exporter = (*LoggingExporter)(nil)

// LoggingExporter wraps an Exporter with logging. Format names the output
// kind in log lines (e.g., "json", "junit").
type LoggingExporter struct {
	next   seolint.Exporter
	format string
	logger *slog.Logger
}

// NewLoggingExporter creates a new LoggingExporter.
func NewLoggingExporter(next seolint.Exporter, format string, logger *slog.Logger) *LoggingExporter {
	return &LoggingExporter{next: next, format: format, logger: logger}
}

// Export delegates to the wrapped exporter and logs the operation.
func (e *LoggingExporter) Export(report *seolint.Report, path string) (err error) {
	defer func(begin time.Time) {
		e.logger.Info("export",
			"format", e.format,
			"path", path,
			"articles", len(report.Details),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return e.next.Export(report, path)
}
