package main_test

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/fwojciec/nethys"
	main "github.com/fwojciec/nethys/cmd/nethys"
	"github.com/fwojciec/nethys/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunsCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("lists runs with counts", func(t *testing.T) {
		t.Parallel()

		started := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
		var gotLimit int
		stdout, stderr := &bytes.Buffer{}, &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: stdout,
			Stderr: stderr,
			Runs: &mock.RunService{
				FindRunsFn: func(_ context.Context, limit int) ([]*nethys.Run, error) {
					gotLimit = limit
					return []*nethys.Run{{
						ID:         "run-1",
						StartedAt:  started,
						FinishedAt: started.Add(90 * time.Second),
						Extracted:  120,
						Skipped:    3,
						Warnings:   7,
					}}, nil
				},
			},
		}

		err := (&main.RunsCmd{Limit: 5}).Run(deps)

		require.NoError(t, err)
		assert.Equal(t, 5, gotLimit)
		assert.Contains(t, stdout.String(), "run-1  2024-03-01T10:00:00Z  1m30s  extracted=120 skipped=3 warnings=7")
	})

	t.Run("shows helpful message when no runs exist", func(t *testing.T) {
		t.Parallel()

		stdout, stderr := &bytes.Buffer{}, &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: stdout,
			Stderr: stderr,
			Runs: &mock.RunService{
				FindRunsFn: func(_ context.Context, _ int) ([]*nethys.Run, error) { return nil, nil },
			},
		}

		err := (&main.RunsCmd{}).Run(deps)

		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "No runs found")
	})

	t.Run("returns error on failure", func(t *testing.T) {
		t.Parallel()

		stdout, stderr := &bytes.Buffer{}, &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: stdout,
			Stderr: stderr,
			Runs: &mock.RunService{
				FindRunsFn: func(_ context.Context, _ int) ([]*nethys.Run, error) { return nil, errors.New("boom") },
			},
		}

		err := (&main.RunsCmd{}).Run(deps)

		require.Error(t, err)
		assert.Contains(t, stderr.String(), "error: Internal error.")
	})
}
