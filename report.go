package seolint

import (
	"context"
	"time"
)

// Report is the canonical output of one analysis run.
type Report struct {
	ID        string              `json:"id"`
	Timestamp time.Time           `json:"timestamp"`
	Root      string              `json:"root"`
	Summary   *ComplianceSummary  `json:"summary"`
	Details   []*ComplianceResult `json:"details"`
}

// Exporter writes a report to a durable format.
type Exporter interface {
	// Export writes a complete snapshot of the report to path.
	// Filesystem errors are returned to the caller.
	Export(report *Report, path string) error
}

// Run is a recorded analysis run.
type Run struct {
	ID                string      `json:"id"`
	Root              string      `json:"root"`
	TotalArticles     int         `json:"totalArticles"`
	CompliantArticles int         `json:"compliantArticles"`
	ComplianceRate    float64     `json:"complianceRate"`
	CreatedAt         time.Time   `json:"createdAt"`
	Results           []RunResult `json:"results,omitempty"`
}

// RunResult is the stored outcome of one document within a run.
type RunResult struct {
	Slug         string `json:"slug"`
	ContentHash  string `json:"contentHash"`
	Compliant    bool   `json:"compliant"`
	ErrorCount   int    `json:"errorCount"`
	WarningCount int    `json:"warningCount"`
}

// NewRun converts a report into a Run for storage.
func NewRun(report *Report) *Run {
	run := &Run{
		ID:        report.ID,
		Root:      report.Root,
		CreatedAt: report.Timestamp,
	}
	if report.Summary != nil {
		run.TotalArticles = report.Summary.TotalArticles
		run.CompliantArticles = report.Summary.CompliantArticles
		run.ComplianceRate = report.Summary.ComplianceRate
	}
	for _, r := range report.Details {
		run.Results = append(run.Results, RunResult{
			Slug:         r.Slug,
			ContentHash:  r.ContentHash,
			Compliant:    r.Compliant,
			ErrorCount:   len(r.Errors),
			WarningCount: len(r.Warnings),
		})
	}
	return run
}

// Validate returns an error if the run contains invalid fields.
func (r *Run) Validate() error {
	if r.ID == "" {
		return Errorf(EINVALID, "run ID required")
	}
	if r.Root == "" {
		return Errorf(EINVALID, "run root required")
	}
	return nil
}

// RunService represents a service for managing recorded runs.
type RunService interface {
	// CreateRun records a run and its per-document results.
	// Returns ECONFLICT if a run with the same ID exists.
	CreateRun(ctx context.Context, run *Run) error

	// FindRunByID retrieves a run with its results.
	// Returns ENOTFOUND if the run does not exist.
	FindRunByID(ctx context.Context, id string) (*Run, error)

	// FindRuns retrieves runs matching the filter, newest first.
	// Results are not loaded.
	FindRuns(ctx context.Context, filter RunFilter) ([]*Run, error)

	// DeleteRun permanently removes a run and its results.
	// Returns ENOTFOUND if the run does not exist.
	DeleteRun(ctx context.Context, id string) error
}

// RunFilter represents a filter for FindRuns.
type RunFilter struct {
	Root *string `json:"root"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}

// Watcher notifies about changes below a corpus root.
type Watcher interface {
	// Watch blocks until ctx is done, calling onChange after each batch of
	// filesystem changes.
	Watch(ctx context.Context, root string, onChange func()) error
}
