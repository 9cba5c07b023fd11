package nethys_test

import (
	"testing"

	"github.com/fwojciec/nethys"
	"github.com/stretchr/testify/assert"
)

func TestAggregate(t *testing.T) {
	t.Parallel()

	t.Run("collects distinct sorted facets", func(t *testing.T) {
		t.Parallel()

		recs := []*nethys.Record{
			{ID: "2", Category: nethys.CategorySource, Name: "Bestiary", SourceCategory: "Rulebooks"},
			{ID: "1", Category: nethys.CategorySource, Name: "Core Rulebook", SourceCategory: "Rulebooks"},
			{ID: "9", Category: nethys.CategorySource, Name: "Age of Ashes", SourceCategory: "Adventure Paths"},
			{ID: "1", Category: nethys.CategorySource, Name: "Core Rulebook", SourceCategory: "Rulebooks"},
			{ID: "61", Category: nethys.CategoryTrait, Name: "Fire", TraitGroup: "Energy"},
			{ID: "14", Category: nethys.CategoryTrait, Name: "Acid", TraitGroup: "Energy"},
			{ID: "5", Category: nethys.CategoryTrait, Name: "Elf", TraitGroup: "Ancestry"},
			{ID: "119", Category: nethys.CategorySpell, Name: "Fireball"},
		}

		aggs := nethys.Aggregate(recs)

		assert.Equal(t, []nethys.SourceFacet{
			{Category: "Adventure Paths", Name: "Age of Ashes"},
			{Category: "Rulebooks", Name: "Bestiary"},
			{Category: "Rulebooks", Name: "Core Rulebook"},
		}, aggs.Sources)
		assert.Equal(t, []nethys.TraitFacet{
			{Group: "Ancestry", Trait: "Elf"},
			{Group: "Energy", Trait: "Acid"},
			{Group: "Energy", Trait: "Fire"},
		}, aggs.Traits)
	})

	t.Run("skips records without a group", func(t *testing.T) {
		t.Parallel()

		aggs := nethys.Aggregate([]*nethys.Record{
			{ID: "1", Category: nethys.CategorySource, Name: "Core Rulebook"},
			{ID: "2", Category: nethys.CategoryTrait, Name: "Fire"},
		})

		assert.Empty(t, aggs.Sources)
		assert.Empty(t, aggs.Traits)
	})
}
