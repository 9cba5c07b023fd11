package sqlite_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/fwojciec/nethys"
	"github.com/fwojciec/nethys/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestDB(t *testing.T) *sqlite.DB {
	t.Helper()
	db := sqlite.NewDB(":memory:")
	require.NoError(t, db.Open())
	t.Cleanup(func() { db.Close() })
	return db
}

func TestDB_Open(t *testing.T) {
	t.Parallel()

	t.Run("migrates a new database to the current version", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		ctx := context.Background()

		version, err := db.Version(ctx)
		require.NoError(t, err)
		assert.Equal(t, sqlite.SchemaVersion, version)

		var count int
		require.NoError(t, db.QueryRowContext(ctx, "SELECT COUNT(*) FROM records").Scan(&count))
		require.NoError(t, db.QueryRowContext(ctx, "SELECT COUNT(*) FROM runs").Scan(&count))
	})

	t.Run("reopening keeps data and version", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "nethys.db")
		ctx := context.Background()

		db := sqlite.NewDB(path)
		require.NoError(t, db.Open())
		require.NoError(t, sqlite.NewRecordService(db).SubmitRecord(ctx,
			&nethys.Record{ID: "1", Category: nethys.CategoryFeat, Name: "Power Attack"}))
		require.NoError(t, db.Close())

		db = sqlite.NewDB(path)
		require.NoError(t, db.Open())
		defer db.Close()

		version, err := db.Version(ctx)
		require.NoError(t, err)
		assert.Equal(t, sqlite.SchemaVersion, version)

		rec, err := sqlite.NewRecordService(db).FindRecordByKey(ctx, "feat-1")
		require.NoError(t, err)
		assert.Equal(t, "Power Attack", rec.Name)
	})

	t.Run("upgrades a database created by an earlier version", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "nethys.db")
		ctx := context.Background()

		db := sqlite.NewDB(path)
		require.NoError(t, db.Open())
		_, err := db.ExecContext(ctx, "DROP INDEX idx_records_level")
		require.NoError(t, err)
		_, err = db.ExecContext(ctx, "DROP INDEX idx_records_type")
		require.NoError(t, err)
		_, err = db.ExecContext(ctx, "PRAGMA user_version = 2")
		require.NoError(t, err)
		require.NoError(t, db.Close())

		db = sqlite.NewDB(path)
		require.NoError(t, db.Open())
		defer db.Close()

		var name string
		err = db.QueryRowContext(ctx,
			"SELECT name FROM sqlite_master WHERE type = 'index' AND name = 'idx_records_level'").Scan(&name)
		require.NoError(t, err)
		version, err := db.Version(ctx)
		require.NoError(t, err)
		assert.Equal(t, sqlite.SchemaVersion, version)
	})

	t.Run("refuses a database from a newer version", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "nethys.db")

		db := sqlite.NewDB(path)
		require.NoError(t, db.Open())
		_, err := db.ExecContext(context.Background(), "PRAGMA user_version = 99")
		require.NoError(t, err)
		require.NoError(t, db.Close())

		err = sqlite.NewDB(path).Open()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "newer than supported")
	})

	t.Run("returns error for invalid path", func(t *testing.T) {
		t.Parallel()

		db := sqlite.NewDB("/nonexistent/path/db.sqlite")
		err := db.Open()
		require.Error(t, err)
	})

	t.Run("enables WAL mode for file-based databases", func(t *testing.T) {
		t.Parallel()

		db := sqlite.NewDB(filepath.Join(t.TempDir(), "test.db"))
		require.NoError(t, db.Open())
		defer db.Close()

		var journalMode string
		err := db.QueryRowContext(context.Background(), "PRAGMA journal_mode").Scan(&journalMode)
		require.NoError(t, err)
		assert.Equal(t, "wal", journalMode)
	})
}
