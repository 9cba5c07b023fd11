package main

import (
	"fmt"

	"github.com/fwojciec/nethys"
)

// Run executes the pack command.
func (c *PackCmd) Run(deps *Dependencies) error {
	cfg := *deps.Config
	override := c.config()
	override.Pack = PackConfig{Out: c.Out, Name: c.Name, Index: c.Index}
	cfg.Merge(override)
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", nethys.ErrorMessage(err))
		return err
	}

	result, metrics, err := runPass(deps, &cfg, nil)
	if err != nil {
		return err
	}

	batches := nethys.Pack(result.Records)
	metrics.ObserveBatches(batches)
	store := deps.NewBatchStore(&cfg)
	for _, batch := range batches {
		if err := store.SaveBatch(deps.Ctx, batch); err != nil {
			_ = store.Abort()
			fmt.Fprintf(deps.Stderr, "error: %s\n", nethys.ErrorMessage(err))
			return err
		}
	}
	if err := store.Commit(nethys.Aggregate(result.Records)); err != nil {
		_ = store.Abort()
		fmt.Fprintf(deps.Stderr, "error: %s\n", nethys.ErrorMessage(err))
		return err
	}

	writeMetrics(deps, &cfg, metrics)

	fmt.Fprintf(deps.Stdout, "Packed %d records into %d batches (%d skipped, %d warnings)\n",
		len(result.Records), len(batches), result.Skipped, result.Warnings)
	return nil
}
