package sqlite

import (
	"context"
	"strings"
	"time"

	"github.com/fwojciec/nethys"
	"github.com/google/uuid"
)

// Compile-time interface verification.
var _ nethys.RunService = (*RunService)(nil)

// RunService implements nethys.RunService using SQLite.
type RunService struct {
	db *DB
}

// NewRunService creates a new RunService.
func NewRunService(db *DB) *RunService {
	return &RunService{db: db}
}

// CreateRun stores a finished run with a generated ID.
func (s *RunService) CreateRun(ctx context.Context, run *nethys.Run) error {
	if err := run.Validate(); err != nil {
		return err
	}

	run.ID = uuid.New().String()
	if run.FinishedAt.IsZero() {
		run.FinishedAt = time.Now().UTC()
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO runs (id, started_at, finished_at, extracted, skipped, warnings)
		VALUES (?, ?, ?, ?, ?, ?)
	`, run.ID, run.StartedAt.UTC().Format(time.RFC3339), run.FinishedAt.UTC().Format(time.RFC3339),
		run.Extracted, run.Skipped, run.Warnings)

	return err
}

// FindRuns returns runs, most recent first. A limit of zero returns all runs.
func (s *RunService) FindRuns(ctx context.Context, limit int) ([]*nethys.Run, error) {
	var query strings.Builder
	var args []any
	query.WriteString("SELECT id, started_at, finished_at, extracted, skipped, warnings FROM runs ORDER BY started_at DESC, rowid DESC")
	args = paginate(&query, args, limit, 0)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var runs []*nethys.Run
	for rows.Next() {
		var run nethys.Run
		var startedAt, finishedAt string
		if err := rows.Scan(&run.ID, &startedAt, &finishedAt, &run.Extracted, &run.Skipped, &run.Warnings); err != nil {
			return nil, err
		}
		if run.StartedAt, err = parseTime("started_at", startedAt); err != nil {
			return nil, err
		}
		if run.FinishedAt, err = parseTime("finished_at", finishedAt); err != nil {
			return nil, err
		}
		runs = append(runs, &run)
	}

	return runs, rows.Err()
}
