package htmltomarkdown

import (
	"html"
	"regexp"
	"strings"

	"github.com/JohannesKaufmann/html-to-markdown/v2/converter"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/base"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/commonmark"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/table"
	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/nethys"
)

// Ensure Converter implements nethys.Converter at compile time.
var _ nethys.Converter = (*Converter)(nil)

// DefaultDomain resolves the site-relative links of entry pages.
const DefaultDomain = "https://2e.aonprd.com"

var excessiveLinesRe = regexp.MustCompile(`\n{3,}`)

// Converter renders entry pages as Markdown. Navigation blocks are dropped
// and action glyph images are replaced by their alt text.
type Converter struct {
	conv   *converter.Converter
	domain string
}

// Option configures a Converter.
type Option func(*Converter)

// WithDomain sets the domain used to make relative links absolute.
func WithDomain(domain string) Option {
	return func(c *Converter) {
		c.domain = domain
	}
}

// NewConverter creates a new Converter.
func NewConverter(opts ...Option) *Converter {
	conv := converter.NewConverter(
		converter.WithPlugins(
			base.NewBasePlugin(),
			commonmark.NewCommonmarkPlugin(),
			table.NewTablePlugin(),
		),
	)
	c := &Converter{conv: conv, domain: DefaultDomain}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Convert transforms an entry page into Markdown.
func (c *Converter) Convert(markup string) (string, error) {
	if strings.TrimSpace(markup) == "" {
		return "", nethys.Errorf(nethys.EINVALID, "empty HTML input")
	}

	cleaned, err := clean(markup)
	if err != nil {
		return "", err
	}

	result, err := c.conv.ConvertString(cleaned, converter.WithDomain(c.domain))
	if err != nil {
		return "", err
	}

	result = excessiveLinesRe.ReplaceAllString(result, "\n\n")
	return strings.TrimSpace(result), nil
}

func clean(markup string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(markup))
	if err != nil {
		return "", nethys.Errorf(nethys.EINVALID, "failed to parse HTML: %v", err)
	}

	doc.Find(`[id^="ctl00_RadDrawer1_Content_MainContent_"]`).Remove()
	doc.Find("script, style").Remove()
	doc.Find("img.actiondark, span.action").Each(func(_ int, s *goquery.Selection) {
		text := s.AttrOr("alt", s.AttrOr("title", ""))
		s.ReplaceWithHtml("<span>[" + html.EscapeString(text) + "]</span>")
	})

	return doc.Html()
}
