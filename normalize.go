package nethys

import (
	"regexp"
	"strconv"
	"strings"
)

// The normalizers in this file map scanned rules text to typed values. They
// are total: malformed input yields the type's default and ok == false, and
// empty input yields the default with ok == true since absence is valid data.

var (
	priceRe    = regexp.MustCompile(`^(?:(\d+(?:,\d{3})*) gp)?(?:, )?(?:(\d+) sp)?(?:, )?(?:(\d+) cp)?`)
	durationRe = regexp.MustCompile(`^(\d+) (\w+)`)
	speedRe    = regexp.MustCompile(`^(?:(\w+) )?(\d+)(?: feet)?`)
	intRe      = regexp.MustCompile(`[+-]?\d+`)
)

// ParsePrice returns a price in copper pieces.
func ParsePrice(s string) (int, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, true
	}

	m := priceRe.FindStringSubmatch(s)
	if m == nil || m[0] == "" {
		return 0, false
	}

	total := 0
	total += atoi(strings.ReplaceAll(m[1], ",", "")) * 100
	total += atoi(m[2]) * 10
	total += atoi(m[3])
	return total, true
}

var durationUnits = map[string]int{
	"round":  6,
	"minute": 60,
	"hour":   60 * 60,
	"day":    60 * 60 * 24,
	"week":   60 * 60 * 24 * 7,
	"month":  60 * 60 * 24 * 30,
	"year":   60 * 60 * 24 * 365,
}

// ParseDuration returns a duration in seconds, or nil when the text does not
// start with a count and a known unit.
func ParseDuration(s string) (*int, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, true
	}

	m := durationRe.FindStringSubmatch(s)
	if m == nil {
		return nil, false
	}

	seconds, ok := durationUnits[strings.TrimSuffix(m[2], "s")]
	if !ok {
		return nil, false
	}
	n := atoi(m[1]) * seconds
	return &n, true
}

// ParseRange returns a distance in feet.
func ParseRange(s string) (*int, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, true
	}

	var n int
	switch s {
	case "touch":
		n = 0
	case "planetary":
		n = 10000000
	case "unlimited":
		n = 100000000
	default:
		s = strings.ReplaceAll(s, "-", " ")
		s = strings.ReplaceAll(s, ",", "")
		found := false
		for _, tok := range strings.Fields(s) {
			if isDigits(tok) {
				n = atoi(tok)
				found = true
				break
			}
		}
		if !found {
			return nil, false
		}
		if strings.Contains(s, "mile") {
			n *= 5280
		}
	}
	return &n, true
}

// ParseBulk returns an item's bulk, where "L" (light) counts as 0.1.
func ParseBulk(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, true
	}
	if s == "L" {
		return 0.1, true
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return f, true
}

// ParseSpeed parses comma separated speeds such as "25 feet, climb 15 feet".
// A speed without a mode is the land speed.
func ParseSpeed(s string) (Speed, bool) {
	var speed Speed
	s = strings.TrimSpace(s)
	if s == "" {
		return speed, true
	}

	matched := false
	for _, part := range strings.Split(s, ", ") {
		m := speedRe.FindStringSubmatch(strings.TrimSpace(part))
		if m == nil {
			continue
		}
		n := atoi(m[2])
		switch m[1] {
		case "":
			speed.Land = &n
		case "burrow":
			speed.Burrow = &n
		case "climb":
			speed.Climb = &n
		case "fly":
			speed.Fly = &n
		case "swim":
			speed.Swim = &n
		default:
			continue
		}
		matched = true
	}
	return speed, matched
}

// ParseInt returns the first signed integer in s, e.g. 12 for "+12". Rules
// text writes negative numbers with an en dash, which counts as a minus sign.
func ParseInt(s string) (*int, bool) {
	s = strings.ReplaceAll(strings.TrimSpace(s), "\u2013", "-")
	if s == "" {
		return nil, true
	}
	tok := intRe.FindString(s)
	if tok == "" {
		return nil, false
	}
	n, err := strconv.Atoi(strings.TrimPrefix(tok, "+"))
	if err != nil {
		return nil, false
	}
	return &n, true
}

// SplitOn splits s on sep and trims each part. Empty input yields nil.
func SplitOn(s, sep string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, sep)
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return parts
}

// SplitComma splits s on commas and trims each part.
func SplitComma(s string) []string {
	return SplitOn(s, ",")
}

// SplitCommaSpecial splits s on commas that are not inside parentheses,
// which keeps "fire 5 (except magical, silver)" in one piece.
func SplitCommaSpecial(s string) []string {
	if s == "" {
		return nil
	}

	var values []string
	var part strings.Builder
	depth := 0
	for _, c := range s {
		switch {
		case c == ',' && depth == 0:
			values = append(values, strings.TrimSpace(part.String()))
			part.Reset()
			continue
		case c == '(':
			depth++
		case c == ')' && depth > 0:
			depth--
		}
		part.WriteRune(c)
	}
	if part.Len() > 0 {
		values = append(values, strings.TrimSpace(strings.TrimRight(part.String(), ";")))
	}

	r := strings.NewReplacer(" )", ")", " ,", ",", " ;", ";", "non- ", "non-")
	for i := range values {
		values[i] = r.Replace(values[i])
	}
	return values
}

// traitPrefixes are parameterized traits reduced to their base name,
// e.g. "deadly d10" becomes "deadly".
var traitPrefixes = []string{
	"additive",
	"attached",
	"capacity",
	"deadly",
	"fatal aim",
	"fatal",
	"jousting",
	"legacy",
	"modular",
	"scatter",
	"thrown",
	"twin",
	"two-hand",
	"versatile",
	"volley",
}

// NormalizeTraits canonicalizes traits, preserving order.
func NormalizeTraits(traits []string) []string {
	if traits == nil {
		return nil
	}
	normalized := make([]string, len(traits))
	for i, trait := range traits {
		normalized[i] = normalizeTrait(trait)
	}
	return normalized
}

func normalizeTrait(trait string) string {
	lower := strings.ToLower(trait)
	for _, prefix := range traitPrefixes {
		if strings.HasPrefix(lower, prefix) {
			return trait[:len(prefix)]
		}
	}
	return trait
}

// Rarity returns the rarity named by the traits, defaulting to "common".
func Rarity(traits []string) string {
	for _, rarity := range []string{"uncommon", "rare", "unique"} {
		if containsFold(traits, rarity) {
			return rarity
		}
	}
	return "common"
}

// School returns the magic school named by the traits, if any.
func School(traits []string) string {
	for _, school := range []string{
		"abjuration",
		"conjuration",
		"divination",
		"enchantment",
		"evocation",
		"illusion",
		"necromancy",
		"transmutation",
	} {
		if containsFold(traits, school) {
			return school
		}
	}
	return ""
}

// NormalizeSource strips the page reference from a source citation.
func NormalizeSource(source string) string {
	if i := strings.Index(source, " pg. "); i != -1 {
		return source[:i]
	}
	return source
}

// Senses returns the senses listed after the last semicolon of a
// perception line, e.g. "+7; darkvision, scent (imprecise) 30 feet".
func Senses(perception string) []string {
	i := strings.LastIndex(perception, ";")
	if i == -1 {
		return nil
	}
	return SplitComma(perception[i+1:])
}

func containsFold(values []string, s string) bool {
	for _, v := range values {
		if strings.EqualFold(v, s) {
			return true
		}
	}
	return false
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, c := range s {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}

// atoi converts a regexp-validated digit string; empty groups are zero.
func atoi(s string) int {
	n, _ := strconv.Atoi(s)
	return n
}
