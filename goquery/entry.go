package goquery

import (
	"github.com/fwojciec/nethys"
)

// entry accumulates the record of one entry page while it is assembled.
type entry struct {
	doc   *Document
	info  nethys.CategoryInfo
	title int
	rec   *nethys.Record
}

// newEntry fills the fields every category shares. Returns EINVALID when the
// page has no entry title.
func newEntry(info nethys.CategoryInfo, id string, doc *Document) (*entry, error) {
	title := doc.Find(doc.ElementWithClass("h1", "title"))
	if title == None {
		return nil, nethys.Errorf(nethys.EINVALID, "%s-%s: entry title not found", info.Category, id)
	}

	t := doc.TitleData(title)
	e := &entry{
		doc:   doc,
		info:  info,
		title: title,
		rec: &nethys.Record{
			ID:       id,
			Category: info.Category,
			Type:     t.Type,
			Name:     t.Name,
			PFS:      t.PFS,
			URL:      info.URL(id),
			Text:     doc.JoinedText(doc.Parent(title)),
			Spoilers: doc.Spoilers(),
		},
	}
	if e.rec.Type == "" {
		e.rec.Type = info.Type
	}
	e.rec.Level = e.parseInt("level", t.Level)

	sources := doc.LabelLinks("Source")
	e.rec.SourceRaw = sources
	for _, source := range sources {
		e.rec.Source = append(e.rec.Source, nethys.NormalizeSource(source))
	}
	return e, nil
}

// clone copies the shared fields into a fresh record for a sub-item.
func (e *entry) clone(id string) *entry {
	rec := *e.rec
	rec.ID = id
	rec.Warnings = nil
	return &entry{doc: e.doc, info: e.info, title: e.title, rec: &rec}
}

func (e *entry) warn(field, raw string) {
	e.rec.Warnings = append(e.rec.Warnings, nethys.FieldWarning{
		Key:   e.rec.Key(),
		Field: field,
		Raw:   raw,
	})
}

// label scans a label with the default stop set.
func (e *entry) label(label string) string {
	return e.doc.LabelText(label, DefaultStop)
}

func (e *entry) parseInt(field, raw string) *int {
	n, ok := nethys.ParseInt(raw)
	if !ok {
		e.warn(field, raw)
	}
	return n
}

func (e *entry) setTraits(traits []string) {
	e.rec.Trait = nethys.NormalizeTraits(traits)
	e.rec.TraitRaw = traits
}

// setRarityTraits sets the traits and the rarity they name.
func (e *entry) setRarityTraits(traits []string) {
	e.setTraits(traits)
	e.rec.Rarity = nethys.Rarity(traits)
}

func (e *entry) setPrice(raw string) {
	price, ok := nethys.ParsePrice(raw)
	if !ok {
		e.warn("price", raw)
	}
	e.rec.Price = &price
	e.rec.PriceRaw = raw
}

func (e *entry) setBulk(raw string) {
	bulk, ok := nethys.ParseBulk(raw)
	if !ok {
		e.warn("bulk", raw)
	}
	e.rec.Bulk = &bulk
	e.rec.BulkRaw = raw
}

func (e *entry) setDuration(raw string) {
	duration, ok := nethys.ParseDuration(raw)
	if !ok {
		e.warn("duration", raw)
	}
	e.rec.Duration = duration
	e.rec.DurationRaw = raw
}

func (e *entry) setOnset(raw string) {
	onset, ok := nethys.ParseDuration(raw)
	if !ok {
		e.warn("onset", raw)
	}
	e.rec.Onset = onset
	e.rec.OnsetRaw = raw
}

func (e *entry) setRange(raw string) {
	r, ok := nethys.ParseRange(raw)
	if !ok {
		e.warn("range", raw)
	}
	e.rec.Range = r
	e.rec.RangeRaw = raw
}

func (e *entry) setSpeed(raw string) {
	e.rec.SpeedRaw = raw
	if raw == "" {
		return
	}
	speed, ok := nethys.ParseSpeed(raw)
	if !ok {
		e.warn("speed", raw)
	}
	e.rec.Speed = &speed
}

func (e *entry) setResistances(raw []string) {
	resistance, ok := nethys.ParseResistances(raw)
	if !ok {
		e.warn("resistance", joinNonEmpty(raw))
	}
	e.rec.Resistance = resistance
	e.rec.ResistanceRaw = raw
}

func (e *entry) setWeaknesses(raw []string) {
	weakness, ok := nethys.ParseResistances(raw)
	if !ok {
		e.warn("weakness", joinNonEmpty(raw))
	}
	e.rec.Weakness = weakness
	e.rec.WeaknessRaw = raw
}

// records returns the finished record.
func (e *entry) records() []*nethys.Record {
	return []*nethys.Record{e.rec}
}
