package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/nethys"
	"golang.org/x/net/html"
)

// None is the index returned when a node does not exist.
const None = -1

type nodeKind uint8

const (
	documentNode nodeKind = iota
	elementNode
	textNode
)

// node is one arena slot. Links are indexes into Document.nodes.
type node struct {
	kind  nodeKind
	tag   string
	data  string
	attrs []html.Attribute

	parent      int
	firstChild  int
	prevSibling int
	nextSibling int
	// end is one past the index of the last descendant.
	end int
}

// Document is an immutable parsed entry page. Nodes are stored in document
// order and addressed by index, so index order is document order and the
// descendants of node i are exactly the indexes in (i, End(i)).
//
// A Document holds no cursor state and is safe for concurrent use.
type Document struct {
	nodes []node
}

// NewDocument parses markup into a Document.
func NewDocument(markup string) (*Document, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(markup))
	if err != nil {
		return nil, nethys.Errorf(nethys.EINVALID, "failed to parse HTML: %v", err)
	}
	return NewDocumentFromNode(doc.Nodes[0]), nil
}

// NewDocumentFromNode flattens an html node tree into a Document.
// Comments and doctypes are dropped.
func NewDocumentFromNode(root *html.Node) *Document {
	d := &Document{}
	d.add(root, None)
	return d
}

func (d *Document) add(n *html.Node, parent int) int {
	idx := len(d.nodes)
	nd := node{
		parent:      parent,
		firstChild:  None,
		prevSibling: None,
		nextSibling: None,
	}
	switch n.Type {
	case html.DocumentNode:
		nd.kind = documentNode
	case html.ElementNode:
		nd.kind = elementNode
		nd.tag = n.Data
		nd.attrs = n.Attr
	case html.TextNode:
		nd.kind = textNode
		nd.data = n.Data
	default:
		return None
	}
	d.nodes = append(d.nodes, nd)

	prev := None
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		ci := d.add(c, idx)
		if ci == None {
			continue
		}
		if prev == None {
			d.nodes[idx].firstChild = ci
		} else {
			d.nodes[prev].nextSibling = ci
			d.nodes[ci].prevSibling = prev
		}
		prev = ci
	}
	d.nodes[idx].end = len(d.nodes)
	return idx
}

// Len returns the number of nodes.
func (d *Document) Len() int { return len(d.nodes) }

// Root returns the index of the document node.
func (d *Document) Root() int { return 0 }

// Tag returns the element name of node i, or "" for text nodes.
func (d *Document) Tag(i int) string { return d.nodes[i].tag }

// IsText reports whether node i is a text node.
func (d *Document) IsText(i int) bool { return d.nodes[i].kind == textNode }

// Is reports whether node i is an element with one of the given tags.
func (d *Document) Is(i int, tags ...string) bool {
	if i == None || d.nodes[i].kind != elementNode {
		return false
	}
	for _, tag := range tags {
		if d.nodes[i].tag == tag {
			return true
		}
	}
	return false
}

// Parent returns the parent of node i.
func (d *Document) Parent(i int) int { return d.nodes[i].parent }

// NextSibling returns the next sibling of node i.
func (d *Document) NextSibling(i int) int { return d.nodes[i].nextSibling }

// PrevSibling returns the previous sibling of node i.
func (d *Document) PrevSibling(i int) int { return d.nodes[i].prevSibling }

// FirstChild returns the first child of node i.
func (d *Document) FirstChild(i int) int { return d.nodes[i].firstChild }

// End returns one past the last descendant of node i.
func (d *Document) End(i int) int { return d.nodes[i].end }

// Attr returns the value of an attribute of node i.
func (d *Document) Attr(i int, key string) (string, bool) {
	for _, a := range d.nodes[i].attrs {
		if a.Key == key {
			return a.Val, true
		}
	}
	return "", false
}

// Classes returns the class list of node i.
func (d *Document) Classes(i int) []string {
	class, _ := d.Attr(i, "class")
	return strings.Fields(class)
}

// HasClass reports whether node i carries the class.
func (d *Document) HasClass(i int, class string) bool {
	for _, c := range d.Classes(i) {
		if c == class {
			return true
		}
	}
	return false
}

// Text returns the concatenated text of node i and its descendants.
func (d *Document) Text(i int) string {
	n := d.nodes[i]
	if n.kind == textNode {
		return n.data
	}
	var b strings.Builder
	for j := i + 1; j < n.end; j++ {
		if d.nodes[j].kind == textNode {
			b.WriteString(d.nodes[j].data)
		}
	}
	return b.String()
}

// Strings returns the non-blank text nodes under node i, untrimmed.
func (d *Document) Strings(i int) []string {
	var strs []string
	for j := i; j < d.nodes[i].end; j++ {
		if d.nodes[j].kind == textNode && strings.TrimSpace(d.nodes[j].data) != "" {
			strs = append(strs, d.nodes[j].data)
		}
	}
	return strs
}

// JoinedText returns the trimmed text nodes under node i joined by spaces.
func (d *Document) JoinedText(i int) string {
	strs := d.Strings(i)
	for k := range strs {
		strs[k] = strings.TrimSpace(strs[k])
	}
	return strings.Join(strs, " ")
}

// FindNext returns the first node after from, in document order, that
// matches. Passing the root searches the whole document.
func (d *Document) FindNext(from int, match func(i int) bool) int {
	for i := from + 1; i < len(d.nodes); i++ {
		if match(i) {
			return i
		}
	}
	return None
}

// Find returns the first node in the document that matches.
func (d *Document) Find(match func(i int) bool) int {
	return d.FindNext(d.Root(), match)
}

// FindAll returns every node in the document that matches, in document order.
func (d *Document) FindAll(match func(i int) bool) []int {
	var found []int
	for i := range d.nodes {
		if match(i) {
			found = append(found, i)
		}
	}
	return found
}

// Element matches elements with the given tag.
func (d *Document) Element(tag string) func(i int) bool {
	return func(i int) bool { return d.Is(i, tag) }
}

// ElementWithClass matches elements with the given tag and class.
func (d *Document) ElementWithClass(tag, class string) func(i int) bool {
	return func(i int) bool { return d.Is(i, tag) && d.HasClass(i, class) }
}

// ElementWithText matches elements with the given tag whose trimmed text
// equals text.
func (d *Document) ElementWithText(tag, text string) func(i int) bool {
	return func(i int) bool {
		return d.Is(i, tag) && strings.TrimSpace(d.Text(i)) == text
	}
}

// ElementWithID matches the element with the given id attribute.
func (d *Document) ElementWithID(id string) func(i int) bool {
	return func(i int) bool {
		v, ok := d.Attr(i, "id")
		return ok && v == id && d.nodes[i].kind == elementNode
	}
}
