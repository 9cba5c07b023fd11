package goquery

import (
	"regexp"
	"strconv"
	"strings"
	"unicode"
)

// DefaultStop ends a label scan at the first semicolon.
const DefaultStop = ";"

// labelBoundary lists the tags that end a label scan without being included.
var labelBoundary = []string{"b", "br", "hr", "h2", "h3"}

var labelCleaner = strings.NewReplacer(" ,", ",", " ;", ";", " )", ")")

// Label matches bold elements whose text is the label. Surrounding
// whitespace and a trailing colon are ignored on both sides.
func (d *Document) Label(label string) func(i int) bool {
	label = strings.TrimSuffix(strings.TrimSpace(label), ":")
	return func(i int) bool {
		if !d.Is(i, "b") {
			return false
		}
		text := strings.TrimSuffix(strings.TrimSpace(d.Text(i)), ":")
		return text == label
	}
}

// LabelText returns the text following the first bold label in the document.
// See LabelTextIn.
func (d *Document) LabelText(label, stop string) string {
	return d.LabelTextIn(d.Root(), d.Len(), label, stop, "")
}

// LabelTextTrim is LabelText with extra characters trimmed from the result.
func (d *Document) LabelTextTrim(label, stop, trim string) string {
	return d.LabelTextIn(d.Root(), d.Len(), label, stop, trim)
}

// LabelTextIn finds the first bold label between nodes from and to and
// concatenates the text of its following siblings. The walk ends inside a sibling at the
// first character of stop, keeping the text before it, or before a line
// break, rule, bold label or subheading. Characters in trim are stripped from
// both ends of the result. Returns "" when the label is absent or nothing
// follows it.
func (d *Document) LabelTextIn(from, to int, label, stop, trim string) string {
	b := d.FindNext(from, d.Label(label))
	if b == None || b >= to {
		return ""
	}

	var parts []string
	for n := d.NextSibling(b); n != None; n = d.NextSibling(n) {
		if d.Is(n, labelBoundary...) {
			break
		}
		text := d.Text(n)
		if text == "" {
			continue
		}
		trimmed := strings.TrimLeftFunc(text, unicode.IsSpace)
		if stop != "" {
			if k := strings.IndexAny(trimmed, stop); k >= 0 {
				parts = append(parts, strings.TrimSpace(trimmed[:k]))
				break
			}
		}
		parts = append(parts, strings.TrimSpace(text))
	}

	s := joinNonEmpty(parts)
	if trim != "" {
		s = strings.Trim(s, trim)
	}
	s = strings.TrimSpace(s)
	s = labelCleaner.Replace(s)
	return strings.TrimRight(s, " ,;")
}

// LabelLinks returns the link texts following a bold label up to the end of
// the line, or up to the first link ending in a semicolon.
func (d *Document) LabelLinks(label string) []string {
	b := d.Find(d.Label(label))
	if b == None {
		return nil
	}

	var links []string
	for n := d.NextSibling(b); n != None; n = d.NextSibling(n) {
		if d.Is(n, "br", "hr") {
			break
		}
		if !d.Is(n, "a", "u") {
			continue
		}
		text := d.Text(n)
		if link := strings.TrimSpace(strings.Trim(text, "; ")); link != "" {
			links = append(links, link)
		}
		if strings.HasSuffix(strings.TrimSpace(text), ";") {
			break
		}
	}
	return links
}

// Traits returns the text of every trait badge in document order. A badge is
// a span whose first class begins with "trait". A heading ends the walk only
// once at least one trait was collected, so introductory headings before the
// badges are passed over.
func (d *Document) Traits() []string {
	return d.TraitsIn(d.Root(), d.Len())
}

// TraitsIn is Traits restricted to the nodes between from and to.
func (d *Document) TraitsIn(from, to int) []string {
	var traits []string
	for i := from + 1; i < to; i++ {
		if d.Is(i, "span") {
			if classes := d.Classes(i); len(classes) > 0 && strings.HasPrefix(classes[0], "trait") {
				traits = append(traits, d.Text(i))
				continue
			}
		}
		if len(traits) > 0 && d.Is(i, "h1", "h2", "h3") {
			break
		}
	}
	return traits
}

// Actions returns the action cost following a label such as "Cast" or
// "Activate": action glyphs and literal text up to the first parenthesis or
// semicolon, link, or structural tag.
func (d *Document) Actions(label string) string {
	b := d.Find(d.Label(label))
	if b == None {
		return ""
	}

	var parts []string
	for n := d.NextSibling(b); n != None; n = d.NextSibling(n) {
		text := d.Text(n)
		if k := strings.IndexAny(text, "(;"); k >= 0 {
			parts = append(parts, text[:k])
			break
		}
		if d.Is(n, "br", "hr", "a", "b", "h1", "h2", "h3") {
			break
		}
		switch {
		case d.Is(n, "span") && d.HasClass(n, "action"):
			title, _ := d.Attr(n, "title")
			parts = append(parts, title)
		case d.Is(n, "img") && d.HasClass(n, "actiondark"):
			alt, _ := d.Attr(n, "alt")
			parts = append(parts, alt)
		default:
			parts = append(parts, text)
		}
	}
	return joinNonEmpty(parts)
}

// TitleActions returns the action glyph run inside a title: the alt text of
// its first direct image child and of the images and text that follow it, up
// to the first span.
func (d *Document) TitleActions(title int) string {
	img := None
	for c := d.FirstChild(title); c != None; c = d.NextSibling(c) {
		if d.Is(c, "img") {
			img = c
			break
		}
	}
	if img == None {
		return ""
	}

	alt, _ := d.Attr(img, "alt")
	parts := []string{alt}
	for n := d.NextSibling(img); n != None; n = d.NextSibling(n) {
		if d.Is(n, "span") {
			break
		}
		if d.Is(n, "img") {
			alt, _ := d.Attr(n, "alt")
			parts = append(parts, alt)
			continue
		}
		parts = append(parts, d.Text(n))
	}
	return joinNonEmpty(parts)
}

// Title holds the parts of an entry title such as "Fireball Spell 3".
type Title struct {
	Name  string
	Type  string
	Level string
	PFS   string
}

// HasSubItems reports whether the level marks an entry with variants ("5+").
func (t Title) HasSubItems() bool {
	return strings.HasSuffix(t.Level, "+")
}

// TitleData splits a title element into name, type, level and PFS status.
func (d *Document) TitleData(title int) Title {
	var t Title
	strs := d.Strings(title)
	if len(strs) == 0 {
		return t
	}
	t.Name = strings.TrimSpace(strs[0])

	if len(strs) > 1 {
		last := strs[len(strs)-1]
		fields := strings.Fields(last)
		if len(fields) >= 2 && isLevel(fields[len(fields)-1]) {
			t.Type = strings.Join(fields[:len(fields)-1], " ")
			t.Level = fields[len(fields)-1]
		} else {
			t.Type = strings.TrimSpace(strings.ReplaceAll(last, " Level Varies", ""))
		}
	}

	if img := d.FindNext(title, d.Element("img")); img != None && img < d.End(title) {
		if alt, _ := d.Attr(img, "alt"); strings.HasPrefix(alt, "PFS") {
			t.PFS = strings.TrimPrefix(alt, "PFS ")
		}
	}
	return t
}

func isLevel(s string) bool {
	s = strings.Trim(s, "+-")
	if s == "" {
		return false
	}
	_, err := strconv.Atoi(s)
	return err == nil
}

// ValuesUnderHeading returns the line-break separated values that follow the
// h2 heading with the given text, up to the next h2.
func (d *Document) ValuesUnderHeading(heading string) []string {
	h := d.Find(d.ElementWithText("h2", heading))
	if h == None {
		return nil
	}

	var values []string
	var value strings.Builder
	for n := d.NextSibling(h); n != None; n = d.NextSibling(n) {
		if d.Is(n, "h2") {
			break
		}
		if d.Is(n, "br") {
			values = append(values, strings.TrimSpace(value.String()))
			value.Reset()
			continue
		}
		value.WriteString(d.Text(n))
	}
	return values
}

var heightenedRe = regexp.MustCompile(`^Heightened \((.*)\)`)

// Heightened returns the heightening levels, e.g. "+1" or "3rd".
func (d *Document) Heightened() []string {
	var levels []string
	for _, i := range d.FindAll(d.Element("b")) {
		if m := heightenedRe.FindStringSubmatch(strings.TrimSpace(d.Text(i))); m != nil {
			levels = append(levels, m[1])
		}
	}
	return levels
}

// maxStages is the highest affliction stage label scanned.
const maxStages = 7

// Stages returns the affliction stages. Each stage label is scanned on its own.
func (d *Document) Stages() []string {
	var stages []string
	for n := 1; n <= maxStages; n++ {
		if stage := d.LabelText("Stage "+strconv.Itoa(n), DefaultStop); stage != "" {
			stages = append(stages, stage)
		}
	}
	return stages
}

// Spoilers returns the adventure named by a spoiler warning heading.
func (d *Document) Spoilers() string {
	for _, h := range d.FindAll(d.ElementWithClass("h2", "title")) {
		text := d.Text(h)
		if !strings.Contains(text, "may contain spoilers") {
			continue
		}
		_, after, ok := strings.Cut(text, "from the ")
		if !ok {
			return ""
		}
		adventure, _, _ := strings.Cut(after, " Adventure")
		return strings.TrimSpace(adventure)
	}
	return ""
}

// NavCategory returns the highlighted entry of a navigation block, which
// marks the category of the current page.
func (d *Document) NavCategory(id string) string {
	nav := d.Find(d.ElementWithID(id))
	if nav == None {
		return ""
	}
	u := d.FindNext(nav, d.Element("u"))
	if u == None || u >= d.End(nav) {
		return ""
	}
	return strings.TrimSpace(d.Text(u))
}

// HasLink reports whether the document contains a link with the given text,
// ignoring case.
func (d *Document) HasLink(text string) bool {
	return d.Find(func(i int) bool {
		return d.Is(i, "a") && strings.EqualFold(strings.TrimSpace(d.Text(i)), text)
	}) != None
}

// LinksTo returns the texts of the links whose href contains fragment.
func (d *Document) LinksTo(fragment string) []string {
	var texts []string
	for _, i := range d.FindAll(d.Element("a")) {
		if href, _ := d.Attr(i, "href"); strings.Contains(href, fragment) {
			texts = append(texts, d.Text(i))
		}
	}
	return texts
}

func joinNonEmpty(parts []string) string {
	kept := parts[:0:0]
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, " ")
}
