package nethys

import "sort"

// SourceFacet is one distinct source book with its source category.
type SourceFacet struct {
	Category string `json:"category"`
	Name     string `json:"name"`
}

// TraitFacet is one distinct trait with its trait group.
type TraitFacet struct {
	Group string `json:"group"`
	Trait string `json:"trait"`
}

// Aggregations lists the facet values observed across a corpus.
type Aggregations struct {
	Sources []SourceFacet `json:"sources"`
	Traits  []TraitFacet  `json:"traits"`
}

// Aggregate collects the distinct source and trait-group facets of records.
// Records missing the facet's group value are left out.
func Aggregate(records []*Record) *Aggregations {
	aggs := &Aggregations{
		Sources: []SourceFacet{},
		Traits:  []TraitFacet{},
	}
	seenSources := make(map[SourceFacet]bool)
	seenTraits := make(map[TraitFacet]bool)

	for _, rec := range records {
		switch rec.Category {
		case CategorySource:
			f := SourceFacet{Category: rec.SourceCategory, Name: rec.Name}
			if f.Category == "" || seenSources[f] {
				continue
			}
			seenSources[f] = true
			aggs.Sources = append(aggs.Sources, f)
		case CategoryTrait:
			f := TraitFacet{Group: rec.TraitGroup, Trait: rec.Name}
			if f.Group == "" || seenTraits[f] {
				continue
			}
			seenTraits[f] = true
			aggs.Traits = append(aggs.Traits, f)
		}
	}

	sort.Slice(aggs.Sources, func(i, j int) bool {
		a, b := aggs.Sources[i], aggs.Sources[j]
		if a.Category != b.Category {
			return a.Category < b.Category
		}
		return a.Name < b.Name
	})
	sort.Slice(aggs.Traits, func(i, j int) bool {
		a, b := aggs.Traits[i], aggs.Traits[j]
		if a.Group != b.Group {
			return a.Group < b.Group
		}
		return a.Trait < b.Trait
	})
	return aggs
}
