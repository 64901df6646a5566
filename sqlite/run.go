package sqlite

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"github.com/fwojciec/seolint"
	"github.com/google/uuid"
)

// Compile-time interface verification.
var _ seolint.RunService = (*RunService)(nil)

// RunService implements seolint.RunService using SQLite.
type RunService struct {
	db *DB
}

// NewRunService creates a new RunService.
func NewRunService(db *DB) *RunService {
	return &RunService{db: db}
}

// CreateRun records a run and its results in one transaction. A run
// without an ID gets a generated one; a zero CreatedAt is set to now.
func (s *RunService) CreateRun(ctx context.Context, run *seolint.Run) error {
	if run.ID == "" {
		run.ID = uuid.New().String()
	}
	if run.CreatedAt.IsZero() {
		run.CreatedAt = time.Now().UTC()
	}
	if err := run.Validate(); err != nil {
		return err
	}

	tx, err := s.db.BeginTx(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	var exists int
	if err := tx.QueryRowContext(ctx, "SELECT COUNT(*) FROM runs WHERE id = ?", run.ID).Scan(&exists); err != nil {
		return err
	}
	if exists > 0 {
		return seolint.Errorf(seolint.ECONFLICT, "run %q already exists", run.ID)
	}

	if _, err := tx.ExecContext(ctx, `
		INSERT INTO runs (id, root, total_articles, compliant_articles, compliance_rate, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`, run.ID, run.Root, run.TotalArticles, run.CompliantArticles, run.ComplianceRate,
		formatTime(run.CreatedAt)); err != nil {
		return err
	}

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO run_results (run_id, slug, content_hash, compliant, error_count, warning_count, position)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for i, r := range run.Results {
		if _, err := stmt.ExecContext(ctx, run.ID, r.Slug, r.ContentHash, r.Compliant,
			r.ErrorCount, r.WarningCount, i); err != nil {
			return err
		}
	}

	return tx.Commit()
}

// FindRunByID retrieves a run with its results in their original order.
func (s *RunService) FindRunByID(ctx context.Context, id string) (*seolint.Run, error) {
	var run seolint.Run
	var createdAt string

	err := s.db.QueryRowContext(ctx, `
		SELECT id, root, total_articles, compliant_articles, compliance_rate, created_at
		FROM runs
		WHERE id = ?
	`, id).Scan(&run.ID, &run.Root, &run.TotalArticles, &run.CompliantArticles, &run.ComplianceRate, &createdAt)

	if err == sql.ErrNoRows {
		return nil, seolint.Errorf(seolint.ENOTFOUND, "run not found")
	}
	if err != nil {
		return nil, err
	}

	if run.CreatedAt, err = parseTime(createdAt, "created_at"); err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT slug, content_hash, compliant, error_count, warning_count
		FROM run_results
		WHERE run_id = ?
		ORDER BY position
	`, id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var r seolint.RunResult
		if err := rows.Scan(&r.Slug, &r.ContentHash, &r.Compliant, &r.ErrorCount, &r.WarningCount); err != nil {
			return nil, err
		}
		run.Results = append(run.Results, r)
	}

	return &run, rows.Err()
}

// FindRuns retrieves runs matching the filter, newest first.
func (s *RunService) FindRuns(ctx context.Context, filter seolint.RunFilter) ([]*seolint.Run, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT id, root, total_articles, compliant_articles, compliance_rate, created_at FROM runs WHERE 1=1")

	if filter.Root != nil {
		query.WriteString(" AND root = ?")
		args = append(args, *filter.Root)
	}

	query.WriteString(" ORDER BY created_at DESC, rowid DESC")
	appendPagination(&query, &args, filter.Limit, filter.Offset)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var runs []*seolint.Run
	for rows.Next() {
		var run seolint.Run
		var createdAt string

		if err := rows.Scan(&run.ID, &run.Root, &run.TotalArticles, &run.CompliantArticles,
			&run.ComplianceRate, &createdAt); err != nil {
			return nil, err
		}
		if run.CreatedAt, err = parseTime(createdAt, "created_at"); err != nil {
			return nil, err
		}

		runs = append(runs, &run)
	}

	return runs, rows.Err()
}

// DeleteRun permanently removes a run and its results.
func (s *RunService) DeleteRun(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, "DELETE FROM runs WHERE id = ?", id)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return seolint.Errorf(seolint.ENOTFOUND, "run not found")
	}
	return nil
}
