package main

import (
	"context"
	"io"
	"log/slog"

	"github.com/fwojciec/nethys"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx    context.Context
	Stdout io.Writer
	Stderr io.Writer
	Logger *slog.Logger
	Config *Config

	Records nethys.RecordService
	Runs    nethys.RunService

	// NewCorpus and NewAssembler build the pass inputs from the merged
	// configuration. Tests replace them.
	NewCorpus    func(cfg *Config) (nethys.Corpus, error)
	NewAssembler func(cfg *Config) nethys.Assembler
	// NewBatchStore builds the batch output of the pack command.
	NewBatchStore func(cfg *Config) nethys.BatchStore
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Config string `short:"C" type:"path" env:"NETHYS_CONFIG" help:"YAML config file"`
	Log    string `help:"Log level (debug, info, warn, error)"`

	Index  IndexCmd  `cmd:"" help:"Extract records from the corpus into the search store"`
	Pack   PackCmd   `cmd:"" help:"Extract records and write content-addressed upload batches"`
	Search SearchCmd `cmd:"" help:"Search stored records"`
	Runs   RunsCmd   `cmd:"" help:"List recent index runs"`
}

// CorpusFlags select the corpus of a pass.
type CorpusFlags struct {
	Data        string   `short:"d" env:"NETHYS_DATA" help:"Corpus directory"`
	Category    []string `short:"k" name:"category" help:"Limit to category (repeatable)"`
	Include     []string `short:"i" help:"Limit to entry paths matching glob, e.g. spells/1*.html (repeatable)"`
	Concurrency int      `short:"c" help:"Concurrent extraction limit"`
	Markdown    bool     `help:"Fill record markdown"`
	Metrics     string   `help:"Write Prometheus metrics to this textfile"`
}

func (f CorpusFlags) config() *Config {
	return &Config{
		Data:    DataConfig{Dir: f.Data, Categories: f.Category, Include: f.Include},
		Index:   IndexConfig{Concurrency: f.Concurrency, Markdown: f.Markdown},
		Metrics: MetricsConfig{Textfile: f.Metrics},
	}
}

// IndexCmd is the "index" subcommand.
type IndexCmd struct {
	CorpusFlags
}

// PackCmd is the "pack" subcommand.
type PackCmd struct {
	CorpusFlags
	Out   string `short:"o" help:"Parent directory of the output directory"`
	Name  string `help:"Output directory name"`
	Index string `help:"Index name for the index and aggregations files"`
}

// SearchCmd is the "search" subcommand.
type SearchCmd struct {
	Query    string `arg:"" optional:"" help:"Text to match in name or text"`
	Key      string `help:"Show the full record with this key"`
	Category string `short:"k" help:"Limit to category"`
	Type     string `short:"t" help:"Limit to record type"`
	MinLevel *int   `help:"Minimum level"`
	MaxLevel *int   `help:"Maximum level"`
	Limit    int    `short:"n" default:"20" help:"Maximum results"`
}

// RunsCmd is the "runs" subcommand.
type RunsCmd struct {
	Limit int `short:"n" default:"10" help:"Maximum runs"`
}
