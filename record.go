package nethys

import "context"

// Record is the flat, typed representation of one rulebook entry.
//
// Numeric fields are nil when the entry has no value or the value could not
// be parsed; the scanned text is kept in the matching *Raw field.
type Record struct {
	ID       string   `json:"id"`
	Category Category `json:"category"`
	Type     string   `json:"type"`
	Name     string   `json:"name"`
	Level    *int     `json:"level,omitempty"`
	Text     string   `json:"text"`
	Markdown string   `json:"markdown,omitempty"`
	URL      string   `json:"url"`

	PFS       string   `json:"pfs,omitempty"`
	Source    []string `json:"source,omitempty"`
	SourceRaw []string `json:"source_raw,omitempty"`
	Spoilers  string   `json:"spoilers,omitempty"`
	Rarity    string   `json:"rarity,omitempty"`
	Trait     []string `json:"trait,omitempty"`
	TraitRaw  []string `json:"trait_raw,omitempty"`
	School    string   `json:"school,omitempty"`

	// Activities.
	Actions     string `json:"actions,omitempty"`
	Activate    string `json:"activate,omitempty"`
	Cost        string `json:"cost,omitempty"`
	Frequency   string `json:"frequency,omitempty"`
	Requirement string `json:"requirement,omitempty"`
	Trigger     string `json:"trigger,omitempty"`
	Effect      string `json:"effect,omitempty"`
	Usage       string `json:"usage,omitempty"`
	SavingThrow string `json:"saving_throw,omitempty"`

	// Character options.
	Ability                []string `json:"ability,omitempty"`
	AbilityBoost           []string `json:"ability_boost,omitempty"`
	AbilityFlaw            []string `json:"ability_flaw,omitempty"`
	AbilityType            string   `json:"ability_type,omitempty"`
	Archetype              string   `json:"archetype,omitempty"`
	Prerequisite           string   `json:"prerequisite,omitempty"`
	Feat                   []string `json:"feat,omitempty"`
	Skill                  []string `json:"skill,omitempty"`
	Region                 string   `json:"region,omitempty"`
	Language               []string `json:"language,omitempty"`
	Size                   []string `json:"size,omitempty"`
	Vision                 string   `json:"vision,omitempty"`
	AttackProficiency      []string `json:"attack_proficiency,omitempty"`
	DefenseProficiency     []string `json:"defense_proficiency,omitempty"`
	PerceptionProficiency  string   `json:"perception_proficiency,omitempty"`
	SavingThrowProficiency []string `json:"saving_throw_proficiency,omitempty"`
	SkillProficiency       []string `json:"skill_proficiency,omitempty"`
	BloodMagic             []string `json:"blood_magic,omitempty"`
	BloodlineSpell         []string `json:"bloodline_spell,omitempty"`
	GrantedSpell           []string `json:"granted_spell,omitempty"`
	HexCantrip             string   `json:"hex_cantrip,omitempty"`
	SpellList              string   `json:"spell_list,omitempty"`
	LessonType             string   `json:"lesson_type,omitempty"`
	FamiliarAbility        []string `json:"familiar_ability,omitempty"`
	RequiredAbilities      *int     `json:"required_abilities,omitempty"`
	SlingersReload         string   `json:"slingers_reload,omitempty"`
	Deed                   string   `json:"deed,omitempty"`
	Aspect                 string   `json:"aspect,omitempty"`

	// Religion and planes.
	Alignment           string   `json:"alignment,omitempty"`
	Anathema            string   `json:"anathema,omitempty"`
	AreaOfConcern       string   `json:"area_of_concern,omitempty"`
	ClericSpell         string   `json:"cleric_spell,omitempty"`
	DeityCategory       string   `json:"deity_category,omitempty"`
	DivineFont          []string `json:"divine_font,omitempty"`
	Domain              []string `json:"domain,omitempty"`
	DomainSpell         string   `json:"domain_spell,omitempty"`
	AdvancedDomainSpell string   `json:"advanced_domain_spell,omitempty"`
	Edict               string   `json:"edict,omitempty"`
	FavoredWeapon       []string `json:"favored_weapon,omitempty"`
	FollowerAlignment   []string `json:"follower_alignment,omitempty"`
	Deity               []string `json:"deity,omitempty"`
	Divinity            string   `json:"divinity,omitempty"`
	NativeInhabitant    string   `json:"native_inhabitant,omitempty"`
	PlaneCategory       string   `json:"plane_category,omitempty"`
	HomePlane           string   `json:"home_plane,omitempty"`

	// Afflictions.
	Onset    *int     `json:"onset,omitempty"`
	OnsetRaw string   `json:"onset_raw,omitempty"`
	Stage    []string `json:"stage,omitempty"`

	// Spells and rituals.
	Area                string   `json:"area,omitempty"`
	Bloodline           []string `json:"bloodline,omitempty"`
	Component           []string `json:"component,omitempty"`
	Duration            *int     `json:"duration,omitempty"`
	DurationRaw         string   `json:"duration_raw,omitempty"`
	Heighten            []string `json:"heighten,omitempty"`
	Mystery             string   `json:"mystery,omitempty"`
	PatronTheme         string   `json:"patron_theme,omitempty"`
	PrimaryCheck        string   `json:"primary_check,omitempty"`
	Range               *int     `json:"range,omitempty"`
	RangeRaw            string   `json:"range_raw,omitempty"`
	SecondaryCasters    *int     `json:"secondary_casters,omitempty"`
	SecondaryCastersRaw string   `json:"secondary_casters_raw,omitempty"`
	SecondaryCheck      string   `json:"secondary_check,omitempty"`
	Target              string   `json:"target,omitempty"`
	Tradition           []string `json:"tradition,omitempty"`

	// Items.
	ItemCategory    string   `json:"item_category,omitempty"`
	ItemSubcategory string   `json:"item_subcategory,omitempty"`
	Price           *int     `json:"price,omitempty"`
	PriceRaw        string   `json:"price_raw,omitempty"`
	Bulk            *float64 `json:"bulk,omitempty"`
	BulkRaw         string   `json:"bulk_raw,omitempty"`
	Hands           string   `json:"hands,omitempty"`
	ArmorCategory   string   `json:"armor_category,omitempty"`
	ArmorGroup      string   `json:"armor_group,omitempty"`
	CheckPenalty    *int     `json:"check_penalty,omitempty"`
	DexCap          *int     `json:"dex_cap,omitempty"`
	SpeedPenalty    string   `json:"speed_penalty,omitempty"`
	Ammunition      string   `json:"ammunition,omitempty"`
	Damage          string   `json:"damage,omitempty"`
	Reload          *int     `json:"reload,omitempty"`
	ReloadRaw       string   `json:"reload_raw,omitempty"`
	WeaponCategory  string   `json:"weapon_category,omitempty"`
	WeaponGroup     string   `json:"weapon_group,omitempty"`
	WeaponType      string   `json:"weapon_type,omitempty"`

	// Creatures and hazards.
	AC             *int      `json:"ac,omitempty"`
	HP             *int      `json:"hp,omitempty"`
	HPRaw          string    `json:"hp_raw,omitempty"`
	Hardness       *int      `json:"hardness,omitempty"`
	FortitudeSave  *int      `json:"fortitude_save,omitempty"`
	ReflexSave     *int      `json:"reflex_save,omitempty"`
	WillSave       *int      `json:"will_save,omitempty"`
	Perception     *int      `json:"perception,omitempty"`
	Strength       *int      `json:"strength,omitempty"`
	Dexterity      *int      `json:"dexterity,omitempty"`
	Constitution   *int      `json:"constitution,omitempty"`
	Intelligence   *int      `json:"intelligence,omitempty"`
	Wisdom         *int      `json:"wisdom,omitempty"`
	Charisma       *int      `json:"charisma,omitempty"`
	Sense          []string  `json:"sense,omitempty"`
	Speed          *Speed    `json:"speed,omitempty"`
	SpeedRaw       string    `json:"speed_raw,omitempty"`
	Immunity       []string  `json:"immunity,omitempty"`
	Resistance     DamageMap `json:"resistance,omitempty"`
	ResistanceRaw  []string  `json:"resistance_raw,omitempty"`
	Weakness       DamageMap `json:"weakness,omitempty"`
	WeaknessRaw    []string  `json:"weakness_raw,omitempty"`
	StrongestSave  []string  `json:"strongest_save,omitempty"`
	WeakestSave    []string  `json:"weakest_save,omitempty"`
	Item           []string  `json:"item,omitempty"`
	CreatureFamily string    `json:"creature_family,omitempty"`
	Complexity     string    `json:"complexity,omitempty"`
	Disable        string    `json:"disable,omitempty"`
	Reset          string    `json:"reset,omitempty"`
	Stealth        string    `json:"stealth,omitempty"`

	// Reference pages.
	Breadcrumbs    string `json:"breadcrumbs,omitempty"`
	SourceCategory string `json:"source_category,omitempty"`
	TraitGroup     string `json:"trait_group,omitempty"`

	// Warnings collects soft parse failures. It is never serialized.
	Warnings []FieldWarning `json:"-"`
}

// Key returns the corpus-wide unique key of the record.
func (r *Record) Key() string {
	return string(r.Category) + "-" + r.ID
}

// Validate returns an error if the record is missing identifying fields.
func (r *Record) Validate() error {
	if r.ID == "" {
		return Errorf(EINVALID, "record id required")
	}
	if r.Category == "" {
		return Errorf(EINVALID, "record category required")
	}
	if r.Name == "" {
		return Errorf(EINVALID, "record %s name required", r.Key())
	}
	return nil
}

// FieldWarning reports a field whose scanned text did not match any form
// its normalizer understands.
type FieldWarning struct {
	Key   string
	Field string
	Raw   string
}

// Speed holds movement speeds in feet by mode.
type Speed struct {
	Land   *int `json:"land"`
	Burrow *int `json:"burrow"`
	Climb  *int `json:"climb"`
	Fly    *int `json:"fly"`
	Swim   *int `json:"swim"`
}

// DamageMap maps elementary damage type keys to resistance or weakness values.
type DamageMap map[string]int

// RecordSink accepts finished records, typically a search index client.
type RecordSink interface {
	SubmitRecord(ctx context.Context, rec *Record) error
}

// RecordService represents a searchable store of submitted records.
type RecordService interface {
	RecordSink

	// FindRecordByKey retrieves a record by its category-prefixed key.
	// Returns ENOTFOUND if the record does not exist.
	FindRecordByKey(ctx context.Context, key string) (*Record, error)

	// FindRecords retrieves records matching the filter.
	FindRecords(ctx context.Context, filter RecordFilter) ([]*Record, error)
}

// RecordFilter represents a filter for FindRecords.
type RecordFilter struct {
	Category *Category `json:"category"`
	Type     *string   `json:"type"`
	// Query matches records whose name or text contains it.
	Query *string `json:"query"`

	MinLevel *int `json:"minLevel"`
	MaxLevel *int `json:"maxLevel"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}

// Assembler turns the markup of one entry into records.
type Assembler interface {
	// Assemble parses markup and builds the records of the entry.
	// Returns EINVALID when the markup has no entry title.
	Assemble(category Category, id string, markup string) ([]*Record, error)
}
