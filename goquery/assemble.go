package goquery

import (
	"strings"

	"github.com/fwojciec/nethys"
)

// Navigation block ids. The highlighted link in each names the category and
// subcategory of the current page.
const (
	NavigationID    = "ctl00_RadDrawer1_Content_MainContent_Navigation"
	SubNavigationID = "ctl00_RadDrawer1_Content_MainContent_SubNavigation"
)

// AssembleFunc builds the records of one entry page.
type AssembleFunc func(id string, doc *Document) ([]*nethys.Record, error)

// fillFunc adds the category-specific fields to a record.
type fillFunc func(e *entry)

// fills lists the categories that have fields beyond the shared ones.
// Categories missing from this table only get the shared fields.
var fills = map[nethys.Category]fillFunc{
	nethys.CategoryAction:                  fillAction,
	nethys.CategoryAncestry:                fillAncestry,
	nethys.CategoryAnimalCompanion:         fillRarityTraits,
	nethys.CategoryAnimalCompanionAdvanced: fillRarityTraits,
	nethys.CategoryAnimalCompanionUnique:   fillRarityTraits,
	nethys.CategoryArmor:                   fillArmor,
	nethys.CategoryArmorGroup:              fillArmorGroup,
	nethys.CategoryBackground:              fillBackground,
	nethys.CategoryBloodline:               fillBloodline,
	nethys.CategoryCause:                   fillCause,
	nethys.CategoryClass:                   fillClass,
	nethys.CategoryCreature:                fillCreature,
	nethys.CategoryCreatureAbility:         fillCreatureAbility,
	nethys.CategoryCreatureFamily:          fillCreatureFamily,
	nethys.CategoryCurse:                   fillCurse,
	nethys.CategoryDeity:                   fillDeity,
	nethys.CategoryDeityCategory:           fillDeityCategory,
	nethys.CategoryDisease:                 fillDisease,
	nethys.CategoryDomain:                  fillDomain,
	nethys.CategoryEidolon:                 fillEidolon,
	nethys.CategoryFamiliar:                fillFamiliar,
	nethys.CategoryFamiliarSpecific:        fillFamiliarSpecific,
	nethys.CategoryFeat:                    fillFeat,
	nethys.CategoryHazard:                  fillHazard,
	nethys.CategoryHeritage:                fillRarityTraits,
	nethys.CategoryLesson:                  fillLesson,
	nethys.CategoryNPC:                     fillCreature,
	nethys.CategoryPatron:                  fillPatron,
	nethys.CategoryPlane:                   fillPlane,
	nethys.CategoryRelic:                   fillRelic,
	nethys.CategoryRitual:                  fillRitual,
	nethys.CategoryRules:                   fillRules,
	nethys.CategoryShield:                  fillShield,
	nethys.CategorySiegeWeapon:             fillSiegeWeapon,
	nethys.CategorySkill:                   fillSkill,
	nethys.CategorySource:                  fillSource,
	nethys.CategorySpell:                   fillSpell,
	nethys.CategoryTrait:                   fillTrait,
	nethys.CategoryVehicle:                 fillVehicle,
	nethys.CategoryWay:                     fillWay,
	nethys.CategoryWeapon:                  fillWeapon,
	nethys.CategoryWeaponGroup:             fillWeaponGroup,
}

// single returns an AssembleFunc producing one record per page.
func single(info nethys.CategoryInfo, fill fillFunc) AssembleFunc {
	return func(id string, doc *Document) ([]*nethys.Record, error) {
		e, err := newEntry(info, id, doc)
		if err != nil {
			return nil, err
		}
		if fill != nil {
			fill(e)
		}
		return e.records(), nil
	}
}

func fillRarityTraits(e *entry) {
	e.setRarityTraits(e.doc.Traits())
}

func fillAction(e *entry) {
	traits := e.doc.Traits()
	e.rec.Type = "Action"
	e.rec.Actions = e.doc.TitleActions(e.title)
	e.rec.Cost = e.label("Cost")
	e.rec.Frequency = e.label("Frequency")
	e.rec.Requirement = e.label("Requirements")
	e.rec.School = nethys.School(traits)
	e.setTraits(traits)
	e.rec.Trigger = e.label("Trigger")
}

func fillAncestry(e *entry) {
	doc := e.doc
	hp := doc.ValuesUnderHeading("Hit Points")
	size := doc.ValuesUnderHeading("Size")
	speed := doc.ValuesUnderHeading("Speed")
	boosts := doc.ValuesUnderHeading("Ability Boosts")
	if len(boosts) == 1 && boosts[0] == "Two free ability boosts" {
		boosts = []string{"Free", "Free"}
	}

	var languages []string
	for _, language := range doc.ValuesUnderHeading("Languages") {
		if strings.HasPrefix(language, "Additional") {
			break
		}
		languages = append(languages, language)
	}

	e.rec.Name = strings.TrimSpace(doc.Text(e.title))
	e.rec.Type = "Ancestry"
	e.setRarityTraits(doc.Traits())
	e.rec.AbilityBoost = boosts
	e.rec.AbilityFlaw = doc.ValuesUnderHeading("Ability Flaw(s)")
	if len(hp) > 0 {
		e.rec.HP = e.parseInt("hp", hp[0])
		e.rec.HPRaw = hp[0]
	}
	e.rec.Language = languages
	if len(size) > 0 {
		e.rec.Size = strings.Split(size[0], " or ")
	}
	if len(speed) > 0 {
		e.setSpeed(strings.Join(speed, ", "))
	}

	switch {
	case doc.HasLink("Darkvision"):
		e.rec.Vision = "Darkvision"
	case doc.HasLink("Low-light vision"):
		e.rec.Vision = "Low-light vision"
	}
}

func fillArmor(e *entry) {
	traits := nethys.SplitComma(e.doc.LabelTextTrim("Traits", DefaultStop, "—"))
	ac := e.label("AC Bonus")

	e.rec.Type = "Armor"
	e.rec.AC = e.parseInt("ac", ac)
	if e.rec.AC != nil {
		e.rec.ArmorCategory = armorCategory(*e.rec.AC)
	}
	e.rec.ArmorGroup = e.doc.LabelText("Group", ";—")
	e.setBulk(e.doc.LabelText("Bulk", ";—"))
	e.rec.CheckPenalty = e.parseInt("check_penalty", e.doc.LabelText("Check Penalty", ";—"))
	e.rec.DexCap = e.parseInt("dex_cap", e.doc.LabelText("Dex Cap", ";—"))
	e.rec.ItemCategory = "Armor"
	e.rec.ItemSubcategory = "Base Armor"
	e.setPrice(e.label("Price"))
	e.rec.SpeedPenalty = e.doc.LabelText("Speed Penalty", ";—")
	e.rec.Strength = e.parseInt("strength", e.doc.LabelText("Strength", ";—"))
	e.setRarityTraits(traits)
}

// armorCategory classifies armor by its AC bonus.
func armorCategory(ac int) string {
	switch {
	case ac == 0:
		return "Unarmored"
	case ac <= 2:
		return "Light"
	case ac <= 4:
		return "Medium"
	default:
		return "Heavy"
	}
}

func fillArmorGroup(e *entry) {
	e.rec.ArmorGroup = e.rec.Name
}

var abilityNames = []string{"Strength", "Dexterity", "Constitution", "Intelligence", "Wisdom", "Charisma"}

func fillBackground(e *entry) {
	var abilities []string
	for _, ability := range abilityNames {
		if e.doc.Find(e.doc.ElementWithText("b", ability)) != None {
			abilities = append(abilities, ability)
		}
	}

	e.rec.AbilityBoost = abilities
	e.rec.Feat = e.doc.LinksTo("Feats")
	e.rec.Region = e.label("Region")
	e.rec.Skill = e.doc.LinksTo("Skills")
	e.setRarityTraits(e.doc.Traits())
}

func fillBloodline(e *entry) {
	e.rec.BloodMagic = nethys.SplitComma(e.label("Blood Magic"))
	e.rec.BloodlineSpell = nethys.SplitComma(e.label("Bloodline Spells"))
	e.rec.GrantedSpell = nethys.SplitComma(e.label("Granted Spells"))
	e.rec.Skill = nethys.SplitComma(e.label("Bloodline Skills"))
	e.rec.SpellList = e.label("Spell List")
}

// splitBracket splits "Name [Lawful Good]" into name and bracketed text.
func splitBracket(title string) (name, bracket string) {
	name, bracket, _ = strings.Cut(title, "[")
	bracket, _, _ = strings.Cut(bracket, "]")
	return strings.TrimSpace(name), strings.TrimSpace(bracket)
}

func fillCause(e *entry) {
	name, alignment := splitBracket(e.doc.Text(e.title))

	var initials strings.Builder
	for _, word := range strings.Fields(alignment) {
		initials.WriteString(word[:1])
	}

	e.rec.Name = name
	if initials.Len() > 0 {
		e.rec.Alignment = initials.String()
		e.setTraits([]string{e.rec.Alignment})
	}
}

func fillClass(e *entry) {
	doc := e.doc
	perception := doc.ValuesUnderHeading("Perception")

	if b := doc.Find(boldPrefix(doc, "Hit Points: ")); b != None {
		var digits strings.Builder
		for _, c := range doc.Text(b) {
			if c >= '0' && c <= '9' {
				digits.WriteRune(c)
			}
		}
		e.rec.HPRaw = strings.TrimSpace(doc.Text(b))
		e.rec.HP = e.parseInt("hp", digits.String())
	}

	if b := doc.Find(boldPrefix(doc, "Key Ability: ")); b != None {
		key := strings.TrimPrefix(strings.TrimSpace(doc.Text(b)), "Key Ability: ")
		for _, ability := range strings.Split(key, " OR ") {
			e.rec.Ability = append(e.rec.Ability, titleCase(ability))
		}
	}

	e.rec.AttackProficiency = doc.ValuesUnderHeading("Attacks")
	e.rec.DefenseProficiency = doc.ValuesUnderHeading("Defenses")
	if len(perception) > 0 {
		e.rec.PerceptionProficiency = perception[0]
	}
	e.rec.SavingThrowProficiency = doc.ValuesUnderHeading("Saving Throws")
	e.rec.SkillProficiency = doc.ValuesUnderHeading("Skills")
	e.setRarityTraits(doc.Traits())
}

// boldPrefix matches bold elements whose text starts with prefix.
func boldPrefix(doc *Document, prefix string) func(i int) bool {
	return func(i int) bool {
		return doc.Is(i, "b") && strings.HasPrefix(strings.TrimSpace(doc.Text(i)), prefix)
	}
}

// titleCase upper-cases the first letter of each word and lower-cases the rest.
func titleCase(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + strings.ToLower(w[1:])
	}
	return strings.Join(words, " ")
}

func fillCreatureAbility(e *entry) {
	if img := e.doc.FindNext(e.title, e.doc.Element("img")); img != None && img < e.doc.End(e.title) {
		e.rec.Actions, _ = e.doc.Attr(img, "alt")
	}
	e.rec.Requirement = e.label("Requirements")
	e.rec.Effect = e.label("Effect")
	e.rec.Trigger = e.label("Trigger")
}

func fillCreatureFamily(e *entry) {
	e.rec.CreatureFamily = e.rec.Name
}

func fillCurse(e *entry) {
	traits := e.doc.Traits()
	e.rec.Effect = e.label("Effect")
	e.rec.SavingThrow = e.label("Saving Throw")
	e.rec.School = nethys.School(traits)
	e.rec.Usage = e.label("Usage")
	e.setRarityTraits(traits)
}

func fillDeity(e *entry) {
	name, alignment := splitBracket(e.doc.Text(e.title))

	e.rec.Name = name
	e.rec.Ability = nethys.SplitOn(e.label("Divine Ability"), " or ")
	e.rec.Alignment = alignment
	e.rec.Anathema = e.label("Anathema")
	e.rec.AreaOfConcern = e.label("Areas of Concern")
	e.rec.ClericSpell = e.label("Cleric Spells")
	e.rec.DeityCategory = e.label("Category")
	e.rec.DivineFont = nethys.SplitOn(e.label("Divine Font"), " or ")
	e.rec.Skill = nethys.SplitOn(e.label("Divine Skill"), " or ")
	e.rec.Domain = append(nethys.SplitComma(e.label("Domains")), nethys.SplitComma(e.label("Alternate Domains"))...)
	e.rec.Edict = e.label("Edicts")
	e.rec.FavoredWeapon = nethys.SplitOn(e.label("Favored Weapon"), " or ")
	e.rec.FollowerAlignment = nethys.SplitComma(e.label("Follower Alignments"))
	if alignment != "" {
		e.setTraits([]string{alignment})
	}
}

func fillDeityCategory(e *entry) {
	e.rec.DeityCategory = e.rec.Name
}

func fillDisease(e *entry) {
	e.rec.SavingThrow = e.label("Saving Throw")
	e.setOnset(e.label("Onset"))
	e.rec.Stage = e.doc.Stages()
	e.setRarityTraits(e.doc.Traits())
}

func fillDomain(e *entry) {
	e.rec.AdvancedDomainSpell = e.label("Advanced Domain Spell")
	e.rec.Deity = nethys.SplitComma(e.label("Deities"))
	e.rec.DomainSpell = e.label("Domain Spell")
}

func fillEidolon(e *entry) {
	e.rec.HomePlane = e.label("Home Plane")
	e.rec.Language = nethys.SplitComma(e.label("Languages"))
	e.rec.Sense = nethys.SplitComma(e.label("Senses"))
	e.rec.Size = nethys.SplitComma(e.label("Size"))
	e.rec.Skill = nethys.SplitComma(e.label("Skills"))
	e.setSpeed(e.label("Speed"))
	e.rec.Tradition = nethys.SplitComma(e.label("Tradition"))
	e.setTraits(e.doc.Traits())
}

func fillFamiliar(e *entry) {
	e.rec.AbilityType = e.label("Ability Type")
}

func fillFamiliarSpecific(e *entry) {
	e.rec.FamiliarAbility = nethys.SplitComma(e.label("Granted Abilities"))
	e.rec.RequiredAbilities = e.parseInt("required_abilities", e.label("Required Number of Abilities"))
	e.setRarityTraits(e.doc.Traits())
}

func fillFeat(e *entry) {
	traits := e.doc.Traits()
	e.rec.Actions = e.doc.TitleActions(e.title)
	e.rec.Archetype = strings.Trim(e.label("Archetype"), " *")
	e.rec.Frequency = e.label("Frequency")
	e.rec.Prerequisite = e.doc.LabelText("Prerequisites", "")
	e.rec.Requirement = e.label("Requirements")
	e.rec.School = nethys.School(traits)
	e.rec.Trigger = e.label("Trigger")
	e.setRarityTraits(traits)
}

func fillHazard(e *entry) {
	doc := e.doc
	hp := doc.LabelText("HP", ";(")

	e.rec.AC = e.parseInt("ac", doc.LabelText("AC", ";,"))
	e.rec.Complexity = e.label("Complexity")
	e.rec.Disable = doc.LabelText("Disable", "")
	e.rec.FortitudeSave = e.parseInt("fortitude_save", doc.LabelText("Fort", ";,"))
	e.rec.Hardness = e.parseInt("hardness", doc.LabelText("Hardness", ";,"))
	e.rec.HP = e.parseInt("hp", hp)
	e.rec.HPRaw = hp
	e.rec.Immunity = nethys.SplitComma(e.label("Immunities"))
	e.rec.ReflexSave = e.parseInt("reflex_save", doc.LabelText("Ref", ";,"))
	e.rec.Reset = e.label("Reset")
	e.rec.Stealth = e.label("Stealth")
	e.rec.WillSave = e.parseInt("will_save", e.label("Will"))
}

func fillLesson(e *entry) {
	e.rec.LessonType = e.label("Lesson Type")
	e.setRarityTraits(e.doc.Traits())
}

func fillPatron(e *entry) {
	e.rec.GrantedSpell = nonEmpty(e.label("Granted Spell"))
	e.rec.HexCantrip = e.label("Hex Cantrip")
	e.rec.Skill = nonEmpty(e.label("Patron Skill"))
	e.rec.SpellList = e.label("Spell List")
	e.setRarityTraits(e.doc.Traits())
}

func fillPlane(e *entry) {
	e.rec.Alignment = e.spanText("traitalignment")
	e.rec.Divinity = e.label("Divinities")
	e.rec.NativeInhabitant = e.label("Native Inhabitants")
	e.rec.PlaneCategory = e.label("Category")
	e.setTraits(e.doc.Traits())
}

// spanText returns the text of the first span with the given class.
func (e *entry) spanText(class string) string {
	span := e.doc.Find(e.doc.ElementWithClass("span", class))
	if span == None {
		return ""
	}
	return strings.TrimSpace(e.doc.Text(span))
}

func fillRelic(e *entry) {
	traits := e.doc.Traits()
	e.rec.Aspect = e.label("Aspect")
	e.rec.Prerequisite = e.label("Prerequisite")
	e.rec.School = nethys.School(traits)
	e.setTraits(traits)
}

func fillRitual(e *entry) {
	doc := e.doc
	traits := doc.Traits()
	casters := e.label("Secondary Casters")

	e.rec.Actions = e.label("Cast")
	e.rec.Area = e.label("Area")
	e.rec.Cost = e.label("Cost")
	e.setDuration(e.label("Duration"))
	e.rec.Heighten = doc.Heightened()
	e.rec.PrimaryCheck = doc.LabelTextTrim("Primary Check", "", ";")
	e.setRange(e.label("Range"))
	e.rec.School = nethys.School(traits)
	e.rec.SecondaryCasters = e.parseInt("secondary_casters", casters)
	e.rec.SecondaryCastersRaw = casters
	e.rec.SecondaryCheck = doc.LabelTextTrim("Secondary Checks", "", ";")
	e.rec.Target = e.label("Target(s)")
	e.setRarityTraits(traits)
}

func fillRules(e *entry) {
	doc := e.doc
	prev := doc.PrevSibling(e.title)
	if prev == None {
		return
	}

	var crumbs []string
	for n := doc.PrevSibling(prev); n != None; n = doc.PrevSibling(n) {
		crumbs = append(crumbs, doc.Text(n))
	}
	var b strings.Builder
	for i := len(crumbs) - 1; i >= 0; i-- {
		b.WriteString(crumbs[i])
	}
	e.rec.Breadcrumbs = b.String()
}

func fillShield(e *entry) {
	hp := e.doc.LabelText("HP (BT)", ";(")

	e.rec.AC = e.parseInt("ac", e.doc.LabelText("AC Bonus", ";("))
	e.setBulk(e.label("Bulk"))
	e.rec.Hardness = e.parseInt("hardness", e.label("Hardness"))
	e.rec.HP = e.parseInt("hp", hp)
	e.rec.HPRaw = hp
	e.rec.ItemCategory = "Shields"
	e.rec.ItemSubcategory = "Base Shields"
	e.setPrice(e.label("Price"))
	e.rec.SpeedPenalty = e.doc.LabelTextTrim("Speed Penalty", DefaultStop, "—")
}

func fillSiegeWeapon(e *entry) {
	e.rec.ItemCategory = "Siege Weapons"
	e.setRarityTraits(e.doc.Traits())
}

func fillSkill(e *entry) {
	name, ability, _ := strings.Cut(e.doc.Text(e.title), "(")
	e.rec.Name = strings.TrimSpace(name)
	if ability = strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(ability), ")")); ability != "" {
		e.rec.Ability = []string{ability}
	}
}

func fillSource(e *entry) {
	e.rec.Source = []string{e.rec.Name}
	e.rec.SourceRaw = []string{e.rec.Name}
	e.rec.SourceCategory = e.doc.NavCategory(NavigationID)
}

func fillSpell(e *entry) {
	doc := e.doc
	traits := doc.Traits()

	e.rec.Actions = doc.Actions("Cast")
	e.rec.Area = e.label("Area")
	e.rec.Bloodline = nethys.SplitComma(e.label("Bloodline"))
	e.rec.Component = doc.LabelLinks("Cast")
	e.rec.Deity = nethys.SplitComma(e.label("Deities"))
	if len(e.rec.Deity) == 0 {
		e.rec.Deity = nonEmpty(e.label("Deity"))
	}
	e.rec.Domain = nonEmpty(e.label("Domain"))
	e.setDuration(e.label("Duration"))
	e.rec.Heighten = doc.Heightened()
	e.rec.Mystery = e.label("Mystery")
	e.rec.PatronTheme = e.label("Patron Theme")
	e.setRange(e.label("Range"))
	e.rec.Requirement = e.label("Requirements")
	e.rec.SavingThrow = e.label("Saving Throw")
	e.rec.School = nethys.School(traits)
	e.rec.Target = e.label("Targets")
	e.rec.Tradition = nethys.SplitComma(e.label("Traditions"))
	e.rec.Trigger = e.label("Trigger")
	e.setRarityTraits(traits)
}

func fillTrait(e *entry) {
	e.rec.TraitGroup = e.doc.NavCategory(NavigationID)
}

func fillVehicle(e *entry) {
	e.rec.ItemCategory = "Vehicles"
	e.setRarityTraits(e.doc.Traits())
}

func fillWay(e *entry) {
	e.rec.SlingersReload = e.label("Slinger's Reload")
	e.rec.Deed = e.doc.LabelText("Deeds", "")
	e.rec.Skill = nonEmpty(e.label("Way Skill"))
}

func fillWeapon(e *entry) {
	doc := e.doc
	traits := doc.LabelLinks("Traits")
	reload := doc.LabelText("Reload", ";—")
	category := e.label("Category")
	rangeRaw := e.label("Range")

	e.rec.Type = "Weapon"
	e.rec.Ammunition = e.label("Ammunition")
	e.setBulk(doc.LabelText("Bulk", ";—"))
	e.rec.Damage = e.label("Damage")
	e.rec.Deity = nethys.SplitComma(e.label("Favored Weapon"))
	e.rec.Hands = e.label("Hands")
	e.rec.ItemCategory = "Weapons"
	e.rec.ItemSubcategory = "Base Weapons"
	e.setPrice(e.label("Price"))
	e.setRange(rangeRaw)
	e.rec.Reload = e.parseInt("reload", reload)
	e.rec.ReloadRaw = reload
	e.rec.WeaponCategory = category
	e.rec.WeaponGroup = e.label("Group")
	e.setRarityTraits(traits)

	if rangeRaw != "" || strings.EqualFold(category, "ammunition") {
		e.rec.WeaponType = "Ranged"
	} else {
		e.rec.WeaponType = "Melee"
	}
}

func fillWeaponGroup(e *entry) {
	e.rec.WeaponGroup = e.rec.Name
}

// nonEmpty wraps a single scanned value, or returns nil when it is empty.
func nonEmpty(s string) []string {
	if s == "" {
		return nil
	}
	return []string{s}
}
