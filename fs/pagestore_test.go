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

func lookup(t *testing.T, c nethys.Category) nethys.CategoryInfo {
	t.Helper()
	info, ok := nethys.LookupCategory(c)
	require.True(t, ok)
	return info
}

func TestPageStore(t *testing.T) {
	t.Parallel()

	t.Run("saves markup under the category directory", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		store := fs.NewPageStore(dir)
		info := lookup(t, nethys.CategorySpell)

		require.False(t, store.Has(info, 7))
		require.NoError(t, store.Save(context.Background(), info, 7, `<div id="main">x</div>`))

		data, err := os.ReadFile(filepath.Join(dir, "spells", "7.html"))
		require.NoError(t, err)
		assert.Equal(t, `<div id="main">x</div>`, string(data))
		assert.True(t, store.Has(info, 7))
	})

	t.Run("missing marker counts as cached", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		store := fs.NewPageStore(dir)
		info := lookup(t, nethys.CategoryAction)

		require.NoError(t, store.MarkMissing(context.Background(), info, 3))

		fi, err := os.Stat(filepath.Join(dir, "actions", "3.404"))
		require.NoError(t, err)
		assert.Equal(t, int64(0), fi.Size())
		assert.True(t, store.Has(info, 3))
		assert.False(t, store.Has(info, 4))
	})
}
