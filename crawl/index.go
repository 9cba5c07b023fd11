// Package crawl orchestrates corpus passes. The Indexer turns every entry of
// a corpus into records; the Downloader fills the on-disk corpus from the
// site.
package crawl

import (
	"context"
	"fmt"

	"github.com/fwojciec/nethys"
	"golang.org/x/sync/errgroup"
)

// DefaultConcurrency is the number of entries extracted in parallel.
const DefaultConcurrency = 10

// Indexer extracts records from every entry of a corpus.
type Indexer struct {
	Corpus    nethys.Corpus
	Assembler nethys.Assembler
	// Sink receives every record in entry order. Optional.
	Sink        nethys.RecordSink
	Concurrency int
}

// Result holds the outcome of an index pass.
type Result struct {
	// Records are all extracted records in entry order.
	Records   []*nethys.Record
	Extracted int
	Skipped   int
	Warnings  int
}

// ProgressEvent reports progress during an index pass.
type ProgressEvent struct {
	Type      ProgressType
	Completed int
	Total     int
	Entry     nethys.Entry
	Records   []*nethys.Record
	Error     error
}

// ProgressType indicates the type of progress event.
type ProgressType int

const (
	ProgressStarted ProgressType = iota
	ProgressExtracted
	ProgressSkipped
	ProgressFinished
)

// ProgressFunc is a callback for reporting index progress.
type ProgressFunc func(event ProgressEvent)

// indexResult holds the outcome of processing a single entry.
type indexResult struct {
	position int
	entry    nethys.Entry
	records  []*nethys.Record
	err      error
}

// Index runs one pass over the corpus. Entries whose markup cannot be read or
// assembled are skipped; a corpus configuration error aborts the pass.
// The progress callback, if provided, receives events as the pass proceeds.
func (ix *Indexer) Index(ctx context.Context, progress ProgressFunc) (*Result, error) {
	entries, err := ix.Corpus.Entries(ctx)
	if err != nil {
		return nil, fmt.Errorf("list entries: %w", err)
	}

	concurrency := ix.Concurrency
	if concurrency <= 0 {
		concurrency = DefaultConcurrency
	}

	total := len(entries)
	if progress != nil {
		progress(ProgressEvent{Type: ProgressStarted, Total: total})
	}

	resultCh := make(chan indexResult, concurrency)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	var abortErr error
	go func() {
		for i, entry := range entries {
			g.Go(func() error {
				result := ix.processEntry(gctx, i, entry)
				if nethys.ErrorCode(result.err) == nethys.ECONFIG {
					return result.err
				}
				resultCh <- result
				return nil
			})
		}
		abortErr = g.Wait()
		close(resultCh)
	}()

	results := make([]indexResult, total)
	var completed int
	for result := range resultCh {
		completed++
		results[result.position] = result

		if progress == nil {
			continue
		}
		event := ProgressEvent{
			Completed: completed,
			Total:     total,
			Entry:     result.entry,
			Records:   result.records,
			Error:     result.err,
		}
		if result.err != nil {
			event.Type = ProgressSkipped
		} else {
			event.Type = ProgressExtracted
		}
		progress(event)
	}

	if abortErr != nil {
		return nil, abortErr
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	res := &Result{}
	for _, result := range results {
		if result.err != nil {
			res.Skipped++
			continue
		}
		res.Extracted++
		for _, rec := range result.records {
			res.Warnings += len(rec.Warnings)
			if ix.Sink != nil {
				if err := ix.Sink.SubmitRecord(ctx, rec); err != nil {
					return nil, fmt.Errorf("submit %s: %w", rec.Key(), err)
				}
			}
			res.Records = append(res.Records, rec)
		}
	}

	if progress != nil {
		progress(ProgressEvent{Type: ProgressFinished, Completed: total, Total: total})
	}

	return res, nil
}

// processEntry reads and assembles a single entry.
func (ix *Indexer) processEntry(ctx context.Context, position int, entry nethys.Entry) indexResult {
	result := indexResult{
		position: position,
		entry:    entry,
	}

	markup, err := ix.Corpus.Markup(ctx, entry)
	if err != nil {
		result.err = err
		return result
	}

	records, err := ix.Assembler.Assemble(entry.Category, entry.ID, markup)
	if err != nil {
		result.err = err
		return result
	}

	result.records = records
	return result
}
