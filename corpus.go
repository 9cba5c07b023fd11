package nethys

import "context"

// Entry identifies one source document of the corpus.
type Entry struct {
	Category Category
	ID       string
}

// Corpus provides the markup of every entry of a corpus pass.
type Corpus interface {
	// Entries lists the entries in a stable order.
	// Returns ECONFIG if the corpus or an expected category is missing.
	Entries(ctx context.Context) ([]Entry, error)

	// Markup returns the markup fragment of an entry.
	Markup(ctx context.Context, entry Entry) (string, error)
}

// PageSource retrieves entry markup from the source site.
type PageSource interface {
	// FetchPage returns the main content markup of an entry.
	// Returns ENOTFOUND when the site reports that the id does not exist.
	FetchPage(ctx context.Context, info CategoryInfo, id int) (string, error)
}

// PageCache stores fetched entry markup by category and numeric id.
type PageCache interface {
	// Has reports whether the id was already fetched or marked missing.
	Has(info CategoryInfo, id int) bool

	// Save stores the markup of an entry.
	Save(ctx context.Context, info CategoryInfo, id int, markup string) error

	// MarkMissing records that the id does not exist on the site.
	MarkMissing(ctx context.Context, info CategoryInfo, id int) error
}
