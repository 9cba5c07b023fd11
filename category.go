package nethys

import (
	"sort"
	"strings"
)

// Category identifies the kind of rulebook entry a record was built from.
type Category string

// Entry categories. Each one has exactly one row in the category table.
const (
	CategoryAction                     Category = "action"
	CategoryAncestry                   Category = "ancestry"
	CategoryAnimalCompanion            Category = "animal-companion"
	CategoryAnimalCompanionAdvanced    Category = "animal-companion-advanced"
	CategoryAnimalCompanionSpecialized Category = "animal-companion-specialized"
	CategoryAnimalCompanionUnique      Category = "animal-companion-unique"
	CategoryArcaneSchool               Category = "arcane-school"
	CategoryArchetype                  Category = "archetype"
	CategoryArmor                      Category = "armor"
	CategoryArmorGroup                 Category = "armor-group"
	CategoryArticle                    Category = "article"
	CategoryBackground                 Category = "background"
	CategoryBloodline                  Category = "bloodline"
	CategoryCause                      Category = "cause"
	CategoryClassKit                   Category = "class-kit"
	CategoryClassSample                Category = "class-sample"
	CategoryClass                      Category = "class"
	CategoryCondition                  Category = "condition"
	CategoryCreature                   Category = "creature"
	CategoryCreatureAbility            Category = "creature-ability"
	CategoryCreatureFamily             Category = "creature-family"
	CategoryCurse                      Category = "curse"
	CategoryDeity                      Category = "deity"
	CategoryDeityCategory              Category = "deity-category"
	CategoryDisease                    Category = "disease"
	CategoryDoctrine                   Category = "doctrine"
	CategoryDomain                     Category = "domain"
	CategoryDruidicOrder               Category = "druidic-order"
	CategoryEidolon                    Category = "eidolon"
	CategoryEquipment                  Category = "equipment"
	CategoryFamiliar                   Category = "familiar"
	CategoryFamiliarSpecific           Category = "familiar-specific"
	CategoryFeat                       Category = "feat"
	CategoryHazard                     Category = "hazard"
	CategoryHeritage                   Category = "heritage"
	CategoryHuntersEdge                Category = "hunters-edge"
	CategoryHybridStudy                Category = "hybrid-study"
	CategoryInnovation                 Category = "innovation"
	CategoryInstinct                   Category = "instinct"
	CategoryLanguage                   Category = "language"
	CategoryLesson                     Category = "lesson"
	CategoryMethodology                Category = "methodology"
	CategoryMuse                       Category = "muse"
	CategoryMystery                    Category = "mystery"
	CategoryNPC                        Category = "npc"
	CategoryNPCThemeTemplate           Category = "npc-theme-template"
	CategoryPatron                     Category = "patron"
	CategoryPlane                      Category = "plane"
	CategoryRacket                     Category = "racket"
	CategoryRelic                      Category = "relic"
	CategoryResearchField              Category = "research-field"
	CategoryRitual                     Category = "ritual"
	CategoryRules                      Category = "rules"
	CategoryShield                     Category = "shield"
	CategorySiegeWeapon                Category = "siege-weapon"
	CategorySkill                      Category = "skill"
	CategorySource                     Category = "source"
	CategorySpell                      Category = "spell"
	CategoryStyle                      Category = "style"
	CategoryTenet                      Category = "tenet"
	CategoryTrait                      Category = "trait"
	CategoryVehicle                    Category = "vehicle"
	CategoryWay                        Category = "way"
	CategoryWeapon                     Category = "weapon"
	CategoryWeaponGroup                Category = "weapon-group"
)

// CategoryInfo describes where entries of a category live, both in the
// on-disk corpus and on the source site.
type CategoryInfo struct {
	Category Category
	// Dir is the corpus subdirectory holding <id>.html files.
	Dir string
	// Page is the site page name, e.g. "Spells" for Spells.aspx.
	Page string
	// Type is the record type used when the title carries none.
	Type string
	// Params are extra query parameters for variant pages.
	Params []string
}

// URL returns the site-relative URL of the entry with the given id.
func (c CategoryInfo) URL(id string) string {
	return c.Page + ".aspx?" + strings.Join(append([]string{"ID=" + id}, c.Params...), "&")
}

var categories = []CategoryInfo{
	{CategoryAction, "actions", "Actions", "Action", nil},
	{CategoryAncestry, "ancestries", "Ancestries", "Ancestry", nil},
	{CategoryAnimalCompanion, "animal-companions", "AnimalCompanions", "Animal Companion", nil},
	{CategoryAnimalCompanionAdvanced, "animal-companions-advanced", "AnimalCompanions", "Animal Companion Advanced Option", []string{"Advanced=true"}},
	{CategoryAnimalCompanionSpecialized, "animal-companions-specialized", "AnimalCompanions", "Animal Companion Specialization", []string{"Specialized=true"}},
	{CategoryAnimalCompanionUnique, "animal-companions-unique", "AnimalCompanions", "Unique Animal Companion", []string{"Unique=true"}},
	{CategoryArcaneSchool, "arcane-schools", "ArcaneSchools", "Wizard Arcane School", nil},
	{CategoryArchetype, "archetypes", "Archetypes", "Archetype", nil},
	{CategoryArmor, "armor", "Armor", "Armor", nil},
	{CategoryArmorGroup, "armor-groups", "ArmorGroups", "Armor Specialization", nil},
	{CategoryArticle, "articles", "Articles", "Setting Article", nil},
	{CategoryBackground, "backgrounds", "Backgrounds", "Background", nil},
	{CategoryBloodline, "bloodlines", "Bloodlines", "Sorcerer Bloodline", nil},
	{CategoryCause, "causes", "Causes", "Champion Cause", nil},
	{CategoryClassKit, "class-kits", "ClassKits", "Class Kit", nil},
	{CategoryClassSample, "class-samples", "ClassSamples", "Class Sample", nil},
	{CategoryClass, "classes", "Classes", "Class", nil},
	{CategoryCondition, "conditions", "Conditions", "Condition", nil},
	{CategoryCurse, "curses", "Curses", "Curse", nil},
	{CategoryDeity, "deities", "Deities", "Deity", nil},
	{CategoryDeityCategory, "deity-categories", "DeityCategories", "Deity Category", nil},
	{CategoryDisease, "diseases", "Diseases", "Disease", nil},
	{CategoryDoctrine, "doctrines", "Doctrines", "Cleric Doctrine", nil},
	{CategoryDomain, "domains", "Domains", "Domain", nil},
	{CategoryDruidicOrder, "druidic-orders", "DruidicOrders", "Druidic Order", nil},
	{CategoryEidolon, "eidolons", "Eidolons", "Summoner Eidolon", nil},
	{CategoryEquipment, "equipment", "Equipment", "Equipment", nil},
	{CategoryFamiliar, "familiars", "Familiars", "Familiar Ability", nil},
	{CategoryFamiliarSpecific, "familiars-specific", "Familiars", "Specific Familiar", []string{"Specific=true"}},
	{CategoryFeat, "feats", "Feats", "Feat", nil},
	{CategoryHazard, "hazards", "Hazards", "Hazard", nil},
	{CategoryHeritage, "heritages", "Heritages", "Heritage", nil},
	{CategoryHuntersEdge, "hunters-edge", "HuntersEdge", "Hunter's Edge", nil},
	{CategoryHybridStudy, "hybrid-studies", "HybridStudies", "Magus Hybrid Study", nil},
	{CategoryInnovation, "innovations", "Innovations", "Inventor Innovation", nil},
	{CategoryInstinct, "instincts", "Instincts", "Barbarian Instinct", nil},
	{CategoryLanguage, "languages", "Languages", "Language", nil},
	{CategoryLesson, "lessons", "Lessons", "Witch Lesson", nil},
	{CategoryMethodology, "methodologies", "Methodologies", "Investigator Methodology", nil},
	{CategoryCreatureAbility, "monster-abilities", "MonsterAbilities", "Creature Ability", nil},
	{CategoryCreatureFamily, "monster-families", "MonsterFamilies", "Creature Family", nil},
	{CategoryCreature, "monsters", "Monsters", "Creature", nil},
	{CategoryMuse, "muses", "Muses", "Bard Muse", nil},
	{CategoryMystery, "mysteries", "Mysteries", "Oracle Mystery", nil},
	{CategoryNPCThemeTemplate, "npc-theme-templates", "NPCThemeTemplates", "Creature Theme Template", nil},
	{CategoryNPC, "npcs", "NPCs", "Creature", nil},
	{CategoryPatron, "patrons", "Patrons", "Witch Patron Theme", nil},
	{CategoryPlane, "planes", "Planes", "Plane", nil},
	{CategoryRacket, "rackets", "Rackets", "Rogue Racket", nil},
	{CategoryRelic, "relics", "Relics", "Relic", nil},
	{CategoryResearchField, "research-fields", "ResearchFields", "Alchemist Research Field", nil},
	{CategoryRitual, "rituals", "Rituals", "Ritual", nil},
	{CategoryRules, "rules", "Rules", "Rules", nil},
	{CategoryShield, "shields", "Shields", "Shield", nil},
	{CategorySiegeWeapon, "siege-weapons", "SiegeWeapons", "Siege Weapon", nil},
	{CategorySkill, "skills", "Skills", "Skill", nil},
	{CategorySource, "sources", "Sources", "Source", nil},
	{CategorySpell, "spells", "Spells", "Spell", nil},
	{CategoryStyle, "styles", "Styles", "Swashbuckler Style", nil},
	{CategoryTenet, "tenets", "Tenets", "Champion Tenet", nil},
	{CategoryTrait, "traits", "Traits", "Trait", nil},
	{CategoryVehicle, "vehicles", "Vehicles", "Vehicle", nil},
	{CategoryWay, "ways", "Ways", "Gunslinger Way", nil},
	{CategoryWeaponGroup, "weapon-groups", "WeaponGroups", "Weapon Critical Specialization", nil},
	{CategoryWeapon, "weapons", "Weapons", "Weapon", nil},
}

// Categories returns the category table sorted by corpus directory name.
func Categories() []CategoryInfo {
	infos := make([]CategoryInfo, len(categories))
	copy(infos, categories)
	sort.Slice(infos, func(i, j int) bool { return infos[i].Dir < infos[j].Dir })
	return infos
}

// LookupCategory returns the table row for a category.
func LookupCategory(c Category) (CategoryInfo, bool) {
	for _, info := range categories {
		if info.Category == c {
			return info, true
		}
	}
	return CategoryInfo{}, false
}

// LookupDir returns the table row for a corpus directory name.
func LookupDir(dir string) (CategoryInfo, bool) {
	for _, info := range categories {
		if info.Dir == dir {
			return info, true
		}
	}
	return CategoryInfo{}, false
}

// ParseCategories resolves category names or directory names, as accepted on
// the command line. An empty input selects every category.
func ParseCategories(names []string) ([]CategoryInfo, error) {
	if len(names) == 0 {
		return Categories(), nil
	}
	infos := make([]CategoryInfo, 0, len(names))
	for _, name := range names {
		info, ok := LookupCategory(Category(name))
		if !ok {
			info, ok = LookupDir(name)
		}
		if !ok {
			return nil, Errorf(ECONFIG, "unknown category %q", name)
		}
		infos = append(infos, info)
	}
	return infos, nil
}
