package mock

import (
	"context"

	"github.com/fwojciec/seolint"
)

var _ seolint.RunService = (*RunService)(nil)

// RunService is a mock implementation of seolint.RunService.
type RunService struct {
	CreateRunFn   func(ctx context.Context, run *seolint.Run) error
	FindRunByIDFn func(ctx context.Context, id string) (*seolint.Run, error)
	FindRunsFn    func(ctx context.Context, filter seolint.RunFilter) ([]*seolint.Run, error)
	DeleteRunFn   func(ctx context.Context, id string) error
}

func (s *RunService) CreateRun(ctx context.Context, run *seolint.Run) error {
	return s.CreateRunFn(ctx, run)
}

func (s *RunService) FindRunByID(ctx context.Context, id string) (*seolint.Run, error) {
	return s.FindRunByIDFn(ctx, id)
}

func (s *RunService) FindRuns(ctx context.Context, filter seolint.RunFilter) ([]*seolint.Run, error) {
	return s.FindRunsFn(ctx, filter)
}

func (s *RunService) DeleteRun(ctx context.Context, id string) error {
	return s.DeleteRunFn(ctx, id)
}
