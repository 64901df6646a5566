package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/seolint"
)

// Ensure LoggingRunService implements seolint.RunService.
var _ seolint.RunService = (*LoggingRunService)(nil)

// LoggingRunService wraps a RunService with logging.
type LoggingRunService struct {
	next   seolint.RunService
	logger *slog.Logger
}

// NewLoggingRunService creates a new LoggingRunService.
func NewLoggingRunService(next seolint.RunService, logger *slog.Logger) *LoggingRunService {
	return &LoggingRunService{next: next, logger: logger}
}

// CreateRun delegates to the wrapped service and logs the operation.
func (s *LoggingRunService) CreateRun(ctx context.Context, run *seolint.Run) (err error) {
	defer func(begin time.Time) {
		s.logger.Info("create run",
			"id", run.ID,
			"root", run.Root,
			"results", len(run.Results),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.CreateRun(ctx, run)
}

// FindRunByID delegates to the wrapped service and logs the operation.
func (s *LoggingRunService) FindRunByID(ctx context.Context, id string) (run *seolint.Run, err error) {
	defer func(begin time.Time) {
		s.logger.Info("find run",
			"id", id,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.FindRunByID(ctx, id)
}

// FindRuns delegates to the wrapped service and logs the operation.
func (s *LoggingRunService) FindRuns(ctx context.Context, filter seolint.RunFilter) (runs []*seolint.Run, err error) {
	defer func(begin time.Time) {
		attrs := []any{"count", len(runs)}
		if filter.Root != nil {
			attrs = append(attrs, "root", *filter.Root)
		}
		attrs = append(attrs, "duration", time.Since(begin), "err", err)
		s.logger.Info("find runs", attrs...)
	}(time.Now())
	return s.next.FindRuns(ctx, filter)
}

// DeleteRun delegates to the wrapped service and logs the operation.
func (s *LoggingRunService) DeleteRun(ctx context.Context, id string) (err error) {
	defer func(begin time.Time) {
		s.logger.Info("delete run",
			"id", id,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.DeleteRun(ctx, id)
}
