package slog_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/fwojciec/seolint"
	"github.com/fwojciec/seolint/mock"
	seoslog "github.com/fwojciec/seolint/slog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggingRunService_CreateRun(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))
	inner := &mock.RunService{
		CreateRunFn: func(ctx context.Context, run *seolint.Run) error {
			return nil
		},
	}

	svc := seoslog.NewLoggingRunService(inner, logger)
	err := svc.CreateRun(context.Background(), &seolint.Run{
		ID:      "run-1",
		Root:    "content/blog",
		Results: []seolint.RunResult{{Slug: "a"}, {Slug: "b"}},
	})

	require.NoError(t, err)
	output := buf.String()
	assert.Contains(t, output, "create run")
	assert.Contains(t, output, "id=run-1")
	assert.Contains(t, output, "root=content/blog")
	assert.Contains(t, output, "results=2")
	assert.Contains(t, output, "duration=")
}

func TestLoggingRunService_FindRunByID(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))
	inner := &mock.RunService{
		FindRunByIDFn: func(ctx context.Context, id string) (*seolint.Run, error) {
			return nil, seolint.Errorf(seolint.ENOTFOUND, "run not found")
		},
	}

	svc := seoslog.NewLoggingRunService(inner, logger)
	_, err := svc.FindRunByID(context.Background(), "missing")

	assert.Equal(t, seolint.ENOTFOUND, seolint.ErrorCode(err))
	output := buf.String()
	assert.Contains(t, output, "find run")
	assert.Contains(t, output, "id=missing")
	assert.Contains(t, output, "code=not_found")
}

func TestLoggingRunService_FindRuns(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))
	inner := &mock.RunService{
		FindRunsFn: func(ctx context.Context, filter seolint.RunFilter) ([]*seolint.Run, error) {
			return []*seolint.Run{{ID: "run-1"}}, nil
		},
	}

	root := "content/blog"
	svc := seoslog.NewLoggingRunService(inner, logger)
	runs, err := svc.FindRuns(context.Background(), seolint.RunFilter{Root: &root})

	require.NoError(t, err)
	assert.Len(t, runs, 1)
	output := buf.String()
	assert.Contains(t, output, "find runs")
	assert.Contains(t, output, "count=1")
	assert.Contains(t, output, "root=content/blog")
}

func TestLoggingRunService_DeleteRun(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))
	var deleted string
	inner := &mock.RunService{
		DeleteRunFn: func(ctx context.Context, id string) error {
			deleted = id
			return nil
		},
	}

	svc := seoslog.NewLoggingRunService(inner, logger)
	err := svc.DeleteRun(context.Background(), "run-1")

	require.NoError(t, err)
	assert.Equal(t, "run-1", deleted)
	assert.Contains(t, buf.String(), "delete run")
}
