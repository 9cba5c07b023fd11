package nethys_test

import (
	"sort"
	"testing"

	"github.com/fwojciec/nethys"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCategories(t *testing.T) {
	t.Parallel()

	t.Run("sorted by directory", func(t *testing.T) {
		t.Parallel()

		infos := nethys.Categories()

		assert.True(t, sort.SliceIsSorted(infos, func(i, j int) bool { return infos[i].Dir < infos[j].Dir }))
	})

	t.Run("categories and directories are unique", func(t *testing.T) {
		t.Parallel()

		categories := make(map[nethys.Category]bool)
		dirs := make(map[string]bool)
		for _, info := range nethys.Categories() {
			assert.False(t, categories[info.Category], info.Category)
			assert.False(t, dirs[info.Dir], info.Dir)
			categories[info.Category] = true
			dirs[info.Dir] = true
			assert.NotEmpty(t, info.Page)
			assert.NotEmpty(t, info.Type)
		}
	})
}

func TestCategoryInfo_URL(t *testing.T) {
	t.Parallel()

	spell, ok := nethys.LookupCategory(nethys.CategorySpell)
	require.True(t, ok)
	assert.Equal(t, "Spells.aspx?ID=119", spell.URL("119"))

	unique, ok := nethys.LookupCategory(nethys.CategoryAnimalCompanionUnique)
	require.True(t, ok)
	assert.Equal(t, "AnimalCompanions.aspx?ID=3&Unique=true", unique.URL("3"))
}

func TestLookupDir(t *testing.T) {
	t.Parallel()

	info, ok := nethys.LookupDir("monsters")
	require.True(t, ok)
	assert.Equal(t, nethys.CategoryCreature, info.Category)

	_, ok = nethys.LookupDir("nope")
	assert.False(t, ok)
}

func TestParseCategories(t *testing.T) {
	t.Parallel()

	t.Run("empty selects all", func(t *testing.T) {
		t.Parallel()

		infos, err := nethys.ParseCategories(nil)

		require.NoError(t, err)
		assert.Len(t, infos, len(nethys.Categories()))
	})

	t.Run("accepts categories and directories", func(t *testing.T) {
		t.Parallel()

		infos, err := nethys.ParseCategories([]string{"spell", "npcs"})

		require.NoError(t, err)
		require.Len(t, infos, 2)
		assert.Equal(t, nethys.CategorySpell, infos[0].Category)
		assert.Equal(t, nethys.CategoryNPC, infos[1].Category)
	})

	t.Run("rejects unknown names", func(t *testing.T) {
		t.Parallel()

		_, err := nethys.ParseCategories([]string{"spells", "dragons"})

		require.Error(t, err)
		assert.Equal(t, nethys.ECONFIG, nethys.ErrorCode(err))
	})
}
