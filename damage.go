package nethys

import (
	"regexp"
	"strings"
)

// Elementary damage type groups that composite resistance phrases expand into.
var (
	PhysicalDamageTypes  = []string{"bludgeoning", "physical", "piercing", "slashing"}
	EnergyDamageTypes    = []string{"acid", "cold", "electricity", "fire", "sonic", "positive", "negative", "force"}
	AlignmentDamageTypes = []string{"chaotic", "evil", "good", "lawful"}
	MaterialDamageTypes  = []string{"cold_iron", "orichalcum", "silver"}
	OtherDamageTypes     = []string{"area", "bleed", "mental", "poison", "precision", "splash"}
)

// AllDamageTypes returns every elementary damage type key, including "all".
func AllDamageTypes() []string {
	types := []string{"all"}
	types = append(types, PhysicalDamageTypes...)
	types = append(types, EnergyDamageTypes...)
	types = append(types, AlignmentDamageTypes...)
	types = append(types, MaterialDamageTypes...)
	types = append(types, OtherDamageTypes...)
	return types
}

var resistanceRe = regexp.MustCompile(`^([\w ]+?)(?: \(except ([^)]*)\))? (\d+)(?: \(except ([^)]*)\)?)?`)

// ParseResistances parses resistance or weakness entries such as
// "fire 5", "physical 10 (except silver)" or "all 5 (except force)" into a
// map keyed by elementary damage type. Later entries overwrite earlier ones.
//
// Exceptions only remove keys that are themselves elementary damage types;
// an exception like "silver" against "physical" leaves the expansion intact.
func ParseResistances(values []string) (DamageMap, bool) {
	if len(values) == 0 {
		return nil, true
	}

	ok := true
	m := DamageMap{}
	for _, value := range values {
		match := resistanceRe.FindStringSubmatch(strings.TrimSpace(value))
		if match == nil {
			ok = false
			continue
		}

		exceptions := match[2]
		if exceptions == "" {
			exceptions = match[4]
		}
		n := atoi(match[3])
		for _, key := range ExpandDamageType(canonicalDamageType(match[1]), exceptions) {
			m[key] = n
		}
	}
	return m, ok
}

// ExpandDamageType expands a canonical damage type into its elementary keys
// and removes any exception that is itself an elementary key.
func ExpandDamageType(damageType, exceptions string) []string {
	var types []string
	switch damageType {
	case "physical":
		types = PhysicalDamageTypes
	case "energy":
		types = EnergyDamageTypes
	case "all":
		types = AllDamageTypes()
	default:
		for _, t := range AllDamageTypes() {
			if t == damageType {
				types = []string{damageType}
				break
			}
		}
	}

	excluded := parseExceptions(exceptions)
	if len(excluded) == 0 {
		return types
	}

	expanded := make([]string, 0, len(types))
	for _, t := range types {
		if !excluded[t] {
			expanded = append(expanded, t)
		}
	}
	return expanded
}

func canonicalDamageType(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	s = strings.ReplaceAll(s, " damage", "")
	s = strings.ReplaceAll(s, " energy", "")
	s = strings.ReplaceAll(s, "all physical", "physical")
	return strings.ReplaceAll(s, " ", "_")
}

func parseExceptions(s string) map[string]bool {
	if s == "" {
		return nil
	}
	s = strings.ToLower(s)
	s = strings.ReplaceAll(s, " or ", ",")
	s = strings.ReplaceAll(s, ";", ",")
	s = strings.ReplaceAll(s, " ", "_")

	excluded := make(map[string]bool)
	for _, tok := range strings.Split(s, ",") {
		tok = strings.Trim(tok, "_)")
		if tok != "" {
			excluded[tok] = true
		}
	}
	return excluded
}
