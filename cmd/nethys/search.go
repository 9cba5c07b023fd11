package main

import (
	"encoding/json"
	"fmt"

	"github.com/fwojciec/nethys"
)

// Run executes the search command.
func (c *SearchCmd) Run(deps *Dependencies) error {
	if c.Key != "" {
		rec, err := deps.Records.FindRecordByKey(deps.Ctx, c.Key)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", nethys.ErrorMessage(err))
			return err
		}
		enc := json.NewEncoder(deps.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(rec)
	}

	filter := nethys.RecordFilter{
		MinLevel: c.MinLevel,
		MaxLevel: c.MaxLevel,
		Limit:    c.Limit,
	}
	if c.Query != "" {
		filter.Query = &c.Query
	}
	if c.Category != "" {
		info, ok := nethys.LookupCategory(nethys.Category(c.Category))
		if !ok {
			err := nethys.Errorf(nethys.EINVALID, "unknown category %q", c.Category)
			fmt.Fprintf(deps.Stderr, "error: %s\n", nethys.ErrorMessage(err))
			return err
		}
		filter.Category = &info.Category
	}
	if c.Type != "" {
		filter.Type = &c.Type
	}

	records, err := deps.Records.FindRecords(deps.Ctx, filter)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", nethys.ErrorMessage(err))
		return err
	}

	if len(records) == 0 {
		fmt.Fprintln(deps.Stdout, "No records found. Use 'nethys index' to build the store.")
		return nil
	}

	for _, rec := range records {
		level := "-"
		if rec.Level != nil {
			level = fmt.Sprint(*rec.Level)
		}
		fmt.Fprintf(deps.Stdout, "%s  %s  %s %s\n", rec.Key(), rec.Name, rec.Type, level)
	}

	return nil
}
