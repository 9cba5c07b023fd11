package main

import (
	"context"
	"fmt"
	"io"

	"github.com/fwojciec/nethys"
	"github.com/fwojciec/nethys/crawl"
)

// FetchCmd downloads every id of the selected categories.
type FetchCmd struct {
	Infos   []nethys.CategoryInfo
	Verbose bool
}

// Run executes the download and prints a summary.
func (c *FetchCmd) Run(ctx context.Context, d *crawl.Downloader, stdout, stderr io.Writer) error {
	progress := func(event crawl.DownloadEvent) {
		switch {
		case event.Error != nil:
			fmt.Fprintf(stderr, "  fail %s-%d %s: %v\n", event.Category, event.ID, event.URL, event.Error)
		case event.Missing:
			if c.Verbose {
				fmt.Fprintf(stdout, "  miss %s-%d %s\n", event.Category, event.ID, event.URL)
			}
		case c.Verbose:
			fmt.Fprintf(stdout, "  save %s-%d %s\n", event.Category, event.ID, event.URL)
		}
	}

	result, err := d.Download(ctx, c.Infos, progress)
	if err != nil {
		fmt.Fprintf(stderr, "error: %s\n", nethys.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(stdout, "Saved %d pages (%s), %d missing, %d failed, %d already cached\n",
		result.Saved, crawl.FormatBytes(result.Bytes), result.Missing, result.Failed, result.Cached)
	return nil
}
