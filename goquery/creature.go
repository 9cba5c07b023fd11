package goquery

import (
	"strings"

	"github.com/fwojciec/nethys"
)

// fillCreature handles monster and NPC stat blocks. The first title heads the
// lore section; the stat block title is the second one and a third, when
// present, names the creature family.
func fillCreature(e *entry) {
	doc := e.doc
	titles := doc.FindAll(doc.ElementWithClass("h1", "title"))
	if len(titles) > 1 {
		t := doc.TitleData(titles[1])
		e.rec.Name = t.Name
		e.rec.Type = t.Type
		e.rec.Level = e.parseInt("level", t.Level)
	}
	if len(titles) > 2 {
		e.rec.CreatureFamily = strings.TrimSpace(doc.Text(titles[2]))
	}

	traits := doc.Traits()
	e.rec.Alignment = e.spanText("traitalignment")
	e.rec.Size = nonEmpty(e.spanText("traitsize"))
	e.rec.School = nethys.School(traits)
	e.setRarityTraits(traits)

	e.rec.Language = nethys.SplitComma(e.label("Languages"))
	e.rec.Perception = e.parseInt("perception", e.label("Perception"))
	e.rec.Sense = nethys.Senses(doc.LabelText("Perception", ""))
	e.rec.Skill = nethys.SplitComma(e.label("Skills"))
	e.setSpeed(e.label("Speed"))
	e.rec.Item = nethys.SplitComma(e.label("Items"))

	e.rec.Strength = e.parseInt("strength", doc.LabelText("Str", ","))
	e.rec.Dexterity = e.parseInt("dexterity", doc.LabelText("Dex", ","))
	e.rec.Constitution = e.parseInt("constitution", doc.LabelText("Con", ","))
	e.rec.Intelligence = e.parseInt("intelligence", doc.LabelText("Int", ","))
	e.rec.Wisdom = e.parseInt("wisdom", doc.LabelText("Wis", ","))
	e.rec.Charisma = e.parseInt("charisma", e.label("Cha"))

	hp := doc.LabelText("HP", ";,(")
	e.rec.AC = e.parseInt("ac", doc.LabelText("AC", ";,( "))
	e.rec.FortitudeSave = e.parseInt("fortitude_save", doc.LabelText("Fort", ";,("))
	e.rec.ReflexSave = e.parseInt("reflex_save", doc.LabelText("Ref", ";,("))
	e.rec.WillSave = e.parseInt("will_save", doc.LabelText("Will", ";,("))
	e.rec.HP = e.parseInt("hp", hp)
	e.rec.HPRaw = hp
	e.rec.Immunity = nethys.SplitComma(e.label("Immunities"))
	e.setResistances(nethys.SplitCommaSpecial(doc.LabelText("Resistances", "")))
	e.setWeaknesses(nethys.SplitCommaSpecial(doc.LabelText("Weaknesses", "")))

	switch {
	case doc.HasLink("greater darkvision"):
		e.rec.Vision = "Greater darkvision"
	case doc.HasLink("darkvision"):
		e.rec.Vision = "Darkvision"
	case doc.HasLink("low-light vision"):
		e.rec.Vision = "Low-light vision"
	}

	e.rec.StrongestSave, e.rec.WeakestSave = rankSaves(e.rec.FortitudeSave, e.rec.ReflexSave, e.rec.WillSave)
}

// rankSaves returns the search aliases of the highest and lowest saving
// throws. Ties list every tied save. Nothing is ranked unless all three saves
// are known.
func rankSaves(fort, ref, will *int) (strongest, weakest []string) {
	if fort == nil || ref == nil || will == nil {
		return nil, nil
	}

	hi := max(*fort, *ref, *will)
	lo := min(*fort, *ref, *will)
	saves := []struct {
		value   int
		aliases []string
	}{
		{*fort, []string{"fort", "fortitude"}},
		{*ref, []string{"ref", "reflex"}},
		{*will, []string{"will"}},
	}
	for _, s := range saves {
		if s.value == hi {
			strongest = append(strongest, s.aliases...)
		}
		if s.value == lo {
			weakest = append(weakest, s.aliases...)
		}
	}
	return strongest, weakest
}
