package crawl

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/fwojciec/nethys"
)

// DefaultMaxFailures is the number of consecutive failed ids after which a
// category is considered exhausted.
const DefaultMaxFailures = 10

// DefaultHost is the rate limiting key for the site.
const DefaultHost = "2e.aonprd.com"

// Downloader fills a page cache by walking the numeric ids of each category.
type Downloader struct {
	Source nethys.PageSource
	Cache  nethys.PageCache
	// Limiter paces requests. Optional.
	Limiter     Limiter
	Host        string
	RetryDelays []time.Duration
	MaxFailures int
	// OnRetry is told about each retried fetch. Optional.
	OnRetry func(event DownloadEvent, attempt int, err error)
}

// DownloadResult holds the outcome of a download pass.
type DownloadResult struct {
	Saved   int
	Missing int
	Failed  int
	Cached  int
	// Bytes is the total size of saved markup.
	Bytes int
}

// DownloadEvent reports one fetched id.
type DownloadEvent struct {
	Category nethys.Category
	ID       int
	URL      string
	// Missing is set when the site reported the id as nonexistent.
	Missing bool
	Error   error
}

// DownloadFunc is a callback for reporting download progress.
type DownloadFunc func(event DownloadEvent)

// Download walks every category from id 1 until MaxFailures consecutive ids
// fail. Ids already cached or marked missing are not fetched again.
func (d *Downloader) Download(ctx context.Context, infos []nethys.CategoryInfo, progress DownloadFunc) (*DownloadResult, error) {
	result := &DownloadResult{}
	for _, info := range infos {
		if err := d.downloadCategory(ctx, info, result, progress); err != nil {
			return result, err
		}
	}
	return result, nil
}

func (d *Downloader) downloadCategory(ctx context.Context, info nethys.CategoryInfo, result *DownloadResult, progress DownloadFunc) error {
	maxFailures := d.MaxFailures
	if maxFailures <= 0 {
		maxFailures = DefaultMaxFailures
	}
	delays := d.RetryDelays
	if delays == nil {
		delays = DefaultRetryDelays()
	}
	host := d.Host
	if host == "" {
		host = DefaultHost
	}

	failures := 0
	for id := 1; failures < maxFailures; id++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		if d.Cache.Has(info, id) {
			result.Cached++
			continue
		}

		if d.Limiter != nil {
			if err := d.Limiter.Wait(ctx, host); err != nil {
				return err
			}
		}

		url := info.URL(strconv.Itoa(id))
		event := DownloadEvent{Category: info.Category, ID: id, URL: url}
		var onRetry RetryFunc
		if d.OnRetry != nil {
			onRetry = func(attempt int, err error) { d.OnRetry(event, attempt, err) }
		}
		markup, err := Retry(ctx, delays, func(ctx context.Context) (string, error) {
			return d.Source.FetchPage(ctx, info, id)
		}, onRetry)

		switch {
		case err == nil:
			if err := d.Cache.Save(ctx, info, id, markup); err != nil {
				return fmt.Errorf("save %s-%d: %w", info.Category, id, err)
			}
			failures = 0
			result.Saved++
			result.Bytes += len(markup)
		case nethys.ErrorCode(err) == nethys.ENOTFOUND:
			if err := d.Cache.MarkMissing(ctx, info, id); err != nil {
				return fmt.Errorf("mark %s-%d missing: %w", info.Category, id, err)
			}
			failures++
			result.Missing++
			event.Missing = true
		default:
			if ctx.Err() != nil {
				return ctx.Err()
			}
			failures++
			result.Failed++
			event.Error = err
		}

		if progress != nil {
			progress(event)
		}
	}
	return nil
}
