package sqlite_test

import (
	"context"
	"testing"
	"time"

	"github.com/fwojciec/nethys"
	"github.com/fwojciec/nethys/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunService_CreateRun(t *testing.T) {
	t.Parallel()

	t.Run("creates run with generated ID", func(t *testing.T) {
		t.Parallel()

		svc := sqlite.NewRunService(setupTestDB(t))
		run := &nethys.Run{
			StartedAt:  time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC),
			FinishedAt: time.Date(2024, 3, 1, 10, 5, 0, 0, time.UTC),
			Extracted:  120,
			Skipped:    3,
			Warnings:   7,
		}

		err := svc.CreateRun(context.Background(), run)

		require.NoError(t, err)
		assert.NotEmpty(t, run.ID, "ID should be generated")
	})

	t.Run("returns error for invalid run", func(t *testing.T) {
		t.Parallel()

		svc := sqlite.NewRunService(setupTestDB(t))

		err := svc.CreateRun(context.Background(), &nethys.Run{})

		require.Error(t, err)
		assert.Equal(t, nethys.EINVALID, nethys.ErrorCode(err))
	})
}

func TestRunService_FindRuns(t *testing.T) {
	t.Parallel()

	t.Run("returns runs most recent first", func(t *testing.T) {
		t.Parallel()

		svc := sqlite.NewRunService(setupTestDB(t))
		ctx := context.Background()
		base := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
		for i := range 3 {
			require.NoError(t, svc.CreateRun(ctx, &nethys.Run{
				StartedAt:  base.Add(time.Duration(i) * time.Hour),
				FinishedAt: base.Add(time.Duration(i)*time.Hour + time.Minute),
				Extracted:  i,
			}))
		}

		runs, err := svc.FindRuns(ctx, 0)

		require.NoError(t, err)
		require.Len(t, runs, 3)
		assert.Equal(t, 2, runs[0].Extracted)
		assert.Equal(t, 0, runs[2].Extracted)
		assert.True(t, runs[0].StartedAt.Equal(base.Add(2*time.Hour)))
	})

	t.Run("respects limit", func(t *testing.T) {
		t.Parallel()

		svc := sqlite.NewRunService(setupTestDB(t))
		ctx := context.Background()
		for range 3 {
			require.NoError(t, svc.CreateRun(ctx, &nethys.Run{StartedAt: time.Now()}))
		}

		runs, err := svc.FindRuns(ctx, 2)

		require.NoError(t, err)
		assert.Len(t, runs, 2)
	})
}
