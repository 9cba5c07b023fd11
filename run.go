package nethys

import (
	"context"
	"time"
)

// Run records the outcome of one indexing pass.
type Run struct {
	ID         string    `json:"id"`
	StartedAt  time.Time `json:"startedAt"`
	FinishedAt time.Time `json:"finishedAt"`
	Extracted  int       `json:"extracted"`
	Skipped    int       `json:"skipped"`
	Warnings   int       `json:"warnings"`
}

// Validate returns an error if the run contains invalid fields.
func (r *Run) Validate() error {
	if r.StartedAt.IsZero() {
		return Errorf(EINVALID, "run start time required")
	}
	if r.Extracted < 0 || r.Skipped < 0 || r.Warnings < 0 {
		return Errorf(EINVALID, "run counts must not be negative")
	}
	return nil
}

// RunService represents a service for recording indexing runs.
type RunService interface {
	// CreateRun stores a finished run and assigns its ID.
	CreateRun(ctx context.Context, run *Run) error

	// FindRuns returns runs, most recent first.
	FindRuns(ctx context.Context, limit int) ([]*Run, error)
}
