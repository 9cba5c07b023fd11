package sqlite_test

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/fwojciec/nethys"
	"github.com/fwojciec/nethys/sqlite"
	"github.com/stretchr/testify/require"
)

// BenchmarkSubmitRecord measures upserting records into a file database,
// the write pattern of an index run.
func BenchmarkSubmitRecord(b *testing.B) {
	dbPath := filepath.Join(b.TempDir(), "bench.db")

	db := sqlite.NewDB(dbPath)
	require.NoError(b, db.Open())
	defer func() {
		db.Close()
		os.Remove(dbPath + "-wal")
		os.Remove(dbPath + "-shm")
	}()

	ctx := context.Background()
	svc := sqlite.NewRecordService(db)

	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		level := i % 20
		rec := &nethys.Record{
			ID:       fmt.Sprint(i),
			Category: nethys.CategorySpell,
			Type:     "Spell",
			Name:     fmt.Sprintf("Spell %d", i),
			Level:    &level,
			Text:     fmt.Sprintf("Spell %d Source Core Rulebook pg. %d Traditions arcane, primal Cast two actions.", i, i),
			Trait:    []string{"evocation", "fire"},
		}
		if err := svc.SubmitRecord(ctx, rec); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkResubmitRecord measures replacing an existing record.
func BenchmarkResubmitRecord(b *testing.B) {
	db := sqlite.NewDB(filepath.Join(b.TempDir(), "bench.db"))
	require.NoError(b, db.Open())
	defer db.Close()

	ctx := context.Background()
	svc := sqlite.NewRecordService(db)

	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		rec := &nethys.Record{ID: "1", Category: nethys.CategoryFeat, Name: fmt.Sprintf("Feat %d", i)}
		if err := svc.SubmitRecord(ctx, rec); err != nil {
			b.Fatal(err)
		}
	}
}
