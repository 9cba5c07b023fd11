package goquery

import (
	"strconv"

	"github.com/fwojciec/nethys"
)

// assembleEquipment returns one record per item, or one per variant for
// items whose level reads "N+". Variants are the h2 titles consisting of
// exactly a name and a type with level; each gets the id "<id>-<index>".
func assembleEquipment(info nethys.CategoryInfo) AssembleFunc {
	return func(id string, doc *Document) ([]*nethys.Record, error) {
		e, err := newEntry(info, id, doc)
		if err != nil {
			return nil, err
		}
		e.rec.ItemCategory = doc.NavCategory(NavigationID)
		e.rec.ItemSubcategory = doc.NavCategory(SubNavigationID)

		if doc.TitleData(e.title).HasSubItems() {
			if recs := equipmentVariants(e); len(recs) > 0 {
				return recs, nil
			}
		}

		fillEquipment(e)
		return e.records(), nil
	}
}

func fillEquipment(e *entry) {
	doc := e.doc
	traits := doc.Traits()

	e.setBulk(doc.LabelText("Bulk", ";(—"))
	e.setDuration(e.label("Maximum Duration"))
	e.rec.Hands = e.label("Hands")
	e.setOnset(e.label("Onset"))
	e.setPrice(e.label("Price"))
	e.rec.SavingThrow = e.label("Saving Throw")
	e.rec.Stage = doc.Stages()
	e.rec.School = nethys.School(traits)
	e.rec.Usage = e.label("Usage")
	e.setRarityTraits(traits)
}

func equipmentVariants(base *entry) []*nethys.Record {
	doc := base.doc
	titles := doc.FindAll(doc.ElementWithClass("h2", "title"))
	if len(titles) == 0 {
		return nil
	}
	shared := titles[0]

	var recs []*nethys.Record
	for idx, h := range titles {
		if len(doc.Strings(h)) != 2 {
			continue
		}
		end := doc.Len()
		if idx+1 < len(titles) {
			end = titles[idx+1]
		}

		e := base.clone(base.rec.ID + "-" + strconv.Itoa(idx))
		t := doc.TitleData(h)
		e.rec.Name = t.Name
		e.rec.Type = t.Type
		e.rec.Level = e.parseInt("level", t.Level)

		bulk := doc.LabelTextIn(h, end, "Bulk", DefaultStop, "")
		if bulk == "" {
			bulk = doc.LabelTextIn(base.title, shared, "Bulk", ";(—", "")
		}
		traits := doc.TraitsIn(h, end)
		if len(traits) == 0 {
			traits = doc.Traits()
		}

		e.rec.Activate = doc.Actions("Activate")
		e.setBulk(bulk)
		e.rec.Effect = e.label("Effect")
		e.rec.Frequency = e.label("Frequency")
		e.rec.Hands = doc.LabelTextIn(h, end, "Hands", DefaultStop, "")
		e.setPrice(doc.LabelTextIn(h, end, "Price", DefaultStop, ""))
		e.rec.School = nethys.School(traits)
		e.rec.Trigger = e.label("Trigger")
		e.rec.Usage = e.label("Usage")
		e.setRarityTraits(traits)
		recs = append(recs, e.rec)
	}
	return recs
}
