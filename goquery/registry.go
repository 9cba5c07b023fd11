package goquery

import (
	"github.com/fwojciec/nethys"
)

var _ nethys.Assembler = (*Registry)(nil)

// Registry maps every category to the function that assembles its pages.
// The table is fixed at construction; lookups need no locking.
type Registry struct {
	converter  nethys.Converter
	assemblers map[nethys.Category]AssembleFunc
}

// NewRegistry creates a Registry covering every category. When converter is
// not nil, each record also gets a Markdown rendering of its page.
func NewRegistry(converter nethys.Converter) *Registry {
	r := &Registry{
		converter:  converter,
		assemblers: make(map[nethys.Category]AssembleFunc),
	}
	for _, info := range nethys.Categories() {
		if info.Category == nethys.CategoryEquipment {
			r.assemblers[info.Category] = assembleEquipment(info)
			continue
		}
		r.assemblers[info.Category] = single(info, fills[info.Category])
	}
	return r
}

// Assemble parses markup and dispatches it to the category's function.
func (r *Registry) Assemble(category nethys.Category, id string, markup string) ([]*nethys.Record, error) {
	assemble := r.assemblers[category]
	if assemble == nil {
		return nil, nethys.Errorf(nethys.EINVALID, "unknown category %q", category)
	}

	doc, err := NewDocument(markup)
	if err != nil {
		return nil, err
	}
	recs, err := assemble(id, doc)
	if err != nil {
		return nil, err
	}

	if r.converter != nil {
		md, err := r.converter.Convert(markup)
		if err != nil {
			return nil, err
		}
		for _, rec := range recs {
			rec.Markdown = md
		}
	}
	return recs, nil
}
