package mock

import (
	"context"

	"github.com/fwojciec/nethys"
)

var (
	_ nethys.PageSource = (*PageSource)(nil)
	_ nethys.PageCache  = (*PageCache)(nil)
	_ nethys.Corpus     = (*Corpus)(nil)
)

// PageSource is a mock implementation of nethys.PageSource.
type PageSource struct {
	FetchPageFn func(ctx context.Context, info nethys.CategoryInfo, id int) (string, error)
}

func (s *PageSource) FetchPage(ctx context.Context, info nethys.CategoryInfo, id int) (string, error) {
	return s.FetchPageFn(ctx, info, id)
}

// PageCache is a mock implementation of nethys.PageCache.
type PageCache struct {
	HasFn         func(info nethys.CategoryInfo, id int) bool
	SaveFn        func(ctx context.Context, info nethys.CategoryInfo, id int, markup string) error
	MarkMissingFn func(ctx context.Context, info nethys.CategoryInfo, id int) error
}

func (c *PageCache) Has(info nethys.CategoryInfo, id int) bool {
	return c.HasFn(info, id)
}

func (c *PageCache) Save(ctx context.Context, info nethys.CategoryInfo, id int, markup string) error {
	return c.SaveFn(ctx, info, id, markup)
}

func (c *PageCache) MarkMissing(ctx context.Context, info nethys.CategoryInfo, id int) error {
	return c.MarkMissingFn(ctx, info, id)
}

// Corpus is a mock implementation of nethys.Corpus.
type Corpus struct {
	EntriesFn func(ctx context.Context) ([]nethys.Entry, error)
	MarkupFn  func(ctx context.Context, entry nethys.Entry) (string, error)
}

func (c *Corpus) Entries(ctx context.Context) ([]nethys.Entry, error) {
	return c.EntriesFn(ctx)
}

func (c *Corpus) Markup(ctx context.Context, entry nethys.Entry) (string, error) {
	return c.MarkupFn(ctx, entry)
}
