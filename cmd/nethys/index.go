package main

import (
	"fmt"
	"time"

	"github.com/fwojciec/nethys"
	"github.com/fwojciec/nethys/crawl"
	"github.com/fwojciec/nethys/prometheus"
	nslog "github.com/fwojciec/nethys/slog"
)

// Run executes the index command.
func (c *IndexCmd) Run(deps *Dependencies) error {
	cfg := *deps.Config
	cfg.Merge(c.config())
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", nethys.ErrorMessage(err))
		return err
	}

	started := time.Now().UTC()
	result, metrics, err := runPass(deps, &cfg, nslog.NewLoggingSink(deps.Records, deps.Logger))
	if err != nil {
		return err
	}
	writeMetrics(deps, &cfg, metrics)

	run := &nethys.Run{
		StartedAt:  started,
		FinishedAt: time.Now().UTC(),
		Extracted:  result.Extracted,
		Skipped:    result.Skipped,
		Warnings:   result.Warnings,
	}
	if err := deps.Runs.CreateRun(deps.Ctx, run); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", nethys.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Indexed %d records from %d entries (%d skipped, %d warnings)\n",
		len(result.Records), result.Extracted, result.Skipped, result.Warnings)
	fmt.Fprintf(deps.Stdout, "Run %s\n", run.ID)
	return nil
}

// runPass extracts every entry of the configured corpus, submitting records
// to sink when it is set.
func runPass(deps *Dependencies, cfg *Config, sink nethys.RecordSink) (*crawl.Result, *prometheus.Metrics, error) {
	corpus, err := deps.NewCorpus(cfg)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", nethys.ErrorMessage(err))
		return nil, nil, err
	}

	metrics := prometheus.NewMetrics()
	progress := func(event crawl.ProgressEvent) {
		metrics.Observe(event)
		switch event.Type {
		case crawl.ProgressStarted:
			fmt.Fprintf(deps.Stdout, "  Found %d entries\n", event.Total)
		case crawl.ProgressSkipped:
			fmt.Fprintf(deps.Stderr, "  skip %s-%s: %s\n", event.Entry.Category, event.Entry.ID, nethys.ErrorMessage(event.Error))
		}
	}

	ix := &crawl.Indexer{
		Corpus:      corpus,
		Assembler:   deps.NewAssembler(cfg),
		Sink:        sink,
		Concurrency: cfg.Index.Concurrency,
	}
	result, err := ix.Index(deps.Ctx, progress)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", nethys.ErrorMessage(err))
		return nil, nil, err
	}

	return result, metrics, nil
}

// writeMetrics writes the metrics textfile when one is configured.
func writeMetrics(deps *Dependencies, cfg *Config, metrics *prometheus.Metrics) {
	if cfg.Metrics.Textfile == "" {
		return
	}
	if err := metrics.WriteToTextfile(cfg.Metrics.Textfile); err != nil {
		deps.Logger.Warn("write metrics", "path", cfg.Metrics.Textfile, "err", err)
	}
}
