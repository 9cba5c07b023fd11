// Package http provides an HTTP-based implementation of nethys.PageSource
// for fetching entry pages from the rules reference site.
package http

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/nethys"
)

// DefaultFetchTimeout is the default timeout for HTTP requests.
const DefaultFetchTimeout = 10 * time.Second

// DefaultBaseURL is the site entry pages are fetched from.
const DefaultBaseURL = "https://2e.aonprd.com"

// DefaultUserAgent identifies the fetcher to the site.
const DefaultUserAgent = "nethysfetch/1.0"

// MainSelector selects the entry content of a page. Everything outside it is
// site chrome.
const MainSelector = "div#main"

// Ensure Fetcher implements nethys.PageSource at compile time.
var _ nethys.PageSource = (*Fetcher)(nil)

// Fetcher retrieves entry pages using HTTP requests and keeps only their
// main content block.
type Fetcher struct {
	client    *http.Client
	timeout   time.Duration
	baseURL   string
	userAgent string
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithTimeout sets the timeout for HTTP requests.
// Defaults to DefaultFetchTimeout (10s) if not specified.
func WithTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		f.timeout = d
	}
}

// WithBaseURL sets the site root. Defaults to DefaultBaseURL.
func WithBaseURL(u string) Option {
	return func(f *Fetcher) {
		f.baseURL = strings.TrimRight(u, "/")
	}
}

// WithUserAgent sets the User-Agent header. Defaults to DefaultUserAgent.
func WithUserAgent(ua string) Option {
	return func(f *Fetcher) {
		f.userAgent = ua
	}
}

// NewFetcher creates a new HTTP-based Fetcher.
func NewFetcher(opts ...Option) *Fetcher {
	f := &Fetcher{
		timeout:   DefaultFetchTimeout,
		baseURL:   DefaultBaseURL,
		userAgent: DefaultUserAgent,
	}
	for _, opt := range opts {
		opt(f)
	}

	f.client = &http.Client{
		Timeout: f.timeout,
	}

	return f
}

// URL returns the absolute URL of an entry page.
func (f *Fetcher) URL(info nethys.CategoryInfo, id int) string {
	return f.baseURL + "/" + info.URL(strconv.Itoa(id))
}

// FetchPage retrieves an entry page and returns the outer HTML of its main
// content block. The site answers unknown ids with a server error, which is
// reported as ENOTFOUND.
func (f *Fetcher) FetchPage(ctx context.Context, info nethys.CategoryInfo, id int) (string, error) {
	url := f.URL(info, id)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", err
	}
	req.Header.Set("User-Agent", f.userAgent)

	resp, err := f.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusInternalServerError, http.StatusNotFound:
		return "", nethys.Errorf(nethys.ENOTFOUND, "%s-%d not found", info.Category, id)
	default:
		return "", fmt.Errorf("HTTP %d for %s", resp.StatusCode, url)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return "", err
	}
	main := doc.Find(MainSelector).First()
	if main.Length() == 0 {
		return "", nethys.Errorf(nethys.EINVALID, "no main content in %s", url)
	}
	return goquery.OuterHtml(main)
}

// Close drops idle keep-alive connections.
func (f *Fetcher) Close() error {
	f.client.CloseIdleConnections()
	return nil
}
