package fs_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/fwojciec/nethys"
	"github.com/fwojciec/nethys/fs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

func TestCorpus_Entries(t *testing.T) {
	t.Parallel()

	t.Run("lists entries by directory then numeric id", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		writeFile(t, filepath.Join(dir, "spells", "10.html"), "<h1>10</h1>")
		writeFile(t, filepath.Join(dir, "spells", "2.html"), "<h1>2</h1>")
		writeFile(t, filepath.Join(dir, "actions", "1.html"), "<h1>1</h1>")

		entries, err := fs.NewCorpus(dir).Entries(context.Background())

		require.NoError(t, err)
		assert.Equal(t, []nethys.Entry{
			{Category: nethys.CategoryAction, ID: "1"},
			{Category: nethys.CategorySpell, ID: "2"},
			{Category: nethys.CategorySpell, ID: "10"},
		}, entries)
	})

	t.Run("skips empty files and missing markers", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		writeFile(t, filepath.Join(dir, "feats", "1.html"), "<h1>1</h1>")
		writeFile(t, filepath.Join(dir, "feats", "2.html"), "")
		writeFile(t, filepath.Join(dir, "feats", "3.404"), "")
		writeFile(t, filepath.Join(dir, "feats", "notes.txt"), "x")

		entries, err := fs.NewCorpus(dir).Entries(context.Background())

		require.NoError(t, err)
		assert.Equal(t, []nethys.Entry{{Category: nethys.CategoryFeat, ID: "1"}}, entries)
	})

	t.Run("lists only requested categories", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		writeFile(t, filepath.Join(dir, "feats", "1.html"), "x")
		writeFile(t, filepath.Join(dir, "spells", "1.html"), "x")

		entries, err := fs.NewCorpus(dir, lookup(t, nethys.CategorySpell)).Entries(context.Background())

		require.NoError(t, err)
		assert.Equal(t, []nethys.Entry{{Category: nethys.CategorySpell, ID: "1"}}, entries)
	})

	t.Run("missing data directory is a configuration error", func(t *testing.T) {
		t.Parallel()

		_, err := fs.NewCorpus(filepath.Join(t.TempDir(), "nope")).Entries(context.Background())

		assert.Equal(t, nethys.ECONFIG, nethys.ErrorCode(err))
	})

	t.Run("missing requested category is a configuration error", func(t *testing.T) {
		t.Parallel()

		_, err := fs.NewCorpus(t.TempDir(), lookup(t, nethys.CategorySpell)).Entries(context.Background())

		assert.Equal(t, nethys.ECONFIG, nethys.ErrorCode(err))
	})

	t.Run("unknown directory is a configuration error", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		writeFile(t, filepath.Join(dir, "wands", "1.html"), "x")

		_, err := fs.NewCorpus(dir).Entries(context.Background())

		assert.Equal(t, nethys.ECONFIG, nethys.ErrorCode(err))
	})

	t.Run("include patterns narrow the listing", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		writeFile(t, filepath.Join(dir, "spells", "1.html"), "<h1>1</h1>")
		writeFile(t, filepath.Join(dir, "spells", "12.html"), "<h1>12</h1>")
		writeFile(t, filepath.Join(dir, "spells", "2.html"), "<h1>2</h1>")
		writeFile(t, filepath.Join(dir, "feats", "12.html"), "<h1>12</h1>")

		corpus := fs.NewCorpus(dir)
		corpus.Include = []string{"spells/1*.html", "**/2.html"}
		entries, err := corpus.Entries(context.Background())

		require.NoError(t, err)
		assert.Equal(t, []nethys.Entry{
			{Category: nethys.CategorySpell, ID: "1"},
			{Category: nethys.CategorySpell, ID: "2"},
			{Category: nethys.CategorySpell, ID: "12"},
		}, entries)
	})

	t.Run("invalid include pattern is a configuration error", func(t *testing.T) {
		t.Parallel()

		corpus := fs.NewCorpus(t.TempDir())
		corpus.Include = []string{"spells/[1.html"}
		_, err := corpus.Entries(context.Background())

		assert.Equal(t, nethys.ECONFIG, nethys.ErrorCode(err))
	})
}

func TestCorpus_Markup(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "spells", "5.html"), "<h1 class=\"title\">Shield</h1>")
	corpus := fs.NewCorpus(dir)

	markup, err := corpus.Markup(context.Background(), nethys.Entry{Category: nethys.CategorySpell, ID: "5"})
	require.NoError(t, err)
	assert.Equal(t, "<h1 class=\"title\">Shield</h1>", markup)

	_, err = corpus.Markup(context.Background(), nethys.Entry{Category: nethys.CategorySpell, ID: "6"})
	assert.Equal(t, nethys.ENOTFOUND, nethys.ErrorCode(err))
}
