package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/fwojciec/nethys"
	"gopkg.in/yaml.v3"
)

// Config represents the nethys configuration file.
type Config struct {
	Data    DataConfig    `yaml:"data"`
	Index   IndexConfig   `yaml:"index"`
	Pack    PackConfig    `yaml:"pack"`
	Metrics MetricsConfig `yaml:"metrics"`
	Log     LogConfig     `yaml:"log"`
}

// DataConfig locates the entry corpus.
type DataConfig struct {
	// Dir holds one subdirectory of <id>.html files per category.
	Dir string `yaml:"dir"`
	// Categories limits passes to these category names (empty = all present).
	Categories []string `yaml:"categories"`
	// Include limits passes to entry paths matching these glob patterns.
	Include []string `yaml:"include"`
}

// IndexConfig configures extraction.
type IndexConfig struct {
	Concurrency int `yaml:"concurrency"`
	// Markdown fills the markdown field of records.
	Markdown bool `yaml:"markdown"`
	// Domain resolves relative links in markdown.
	Domain string `yaml:"domain"`
}

// PackConfig configures batch output.
type PackConfig struct {
	// Out is the parent directory of the output directory.
	Out string `yaml:"out"`
	// Name is the output directory name.
	Name string `yaml:"name"`
	// Index names the index and aggregations files.
	Index string `yaml:"index"`
}

// MetricsConfig configures the Prometheus textfile.
type MetricsConfig struct {
	// Textfile is written after each run when set.
	Textfile string `yaml:"textfile"`
}

// LogConfig configures logging.
type LogConfig struct {
	Level string `yaml:"level"`
}

// DefaultConfig returns a Config with defaults.
func DefaultConfig() *Config {
	return &Config{
		Data: DataConfig{
			Dir: "data",
		},
		Index: IndexConfig{
			Concurrency: 10,
			Domain:      "https://2e.aonprd.com",
		},
		Pack: PackConfig{
			Out:   ".",
			Name:  "json-data",
			Index: "nethys",
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// Validate checks that the configuration is valid.
func (c *Config) Validate() error {
	if c.Data.Dir == "" {
		return nethys.Errorf(nethys.ECONFIG, "data.dir is required")
	}
	if c.Index.Concurrency <= 0 {
		return nethys.Errorf(nethys.ECONFIG, "index.concurrency must be positive")
	}
	if c.Pack.Name == "" || c.Pack.Index == "" {
		return nethys.Errorf(nethys.ECONFIG, "pack.name and pack.index are required")
	}
	if _, err := c.Infos(); err != nil {
		return err
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	return nil
}

// Infos resolves the configured category names.
func (c *Config) Infos() ([]nethys.CategoryInfo, error) {
	if len(c.Data.Categories) == 0 {
		return nil, nil
	}
	infos, err := nethys.ParseCategories(c.Data.Categories)
	if err != nil {
		return nil, nethys.Errorf(nethys.ECONFIG, "data.categories: %s", nethys.ErrorMessage(err))
	}
	return infos, nil
}

// Level returns the configured log level.
func (c *Config) Level() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.ToUpper(c.Log.Level))); err != nil {
		return 0, nethys.Errorf(nethys.ECONFIG, "log.level %q is not a level", c.Log.Level)
	}
	return level, nil
}

// LoadFromFile loads configuration from a YAML file over the defaults.
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	config := DefaultConfig()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, nethys.Errorf(nethys.ECONFIG, "failed to parse config file: %v", err)
	}

	return config, nil
}

// Merge merges another config into this one (other takes precedence for non-zero values).
func (c *Config) Merge(other *Config) {
	if other == nil {
		return
	}

	// Data
	if other.Data.Dir != "" {
		c.Data.Dir = other.Data.Dir
	}
	if len(other.Data.Categories) > 0 {
		c.Data.Categories = other.Data.Categories
	}
	if len(other.Data.Include) > 0 {
		c.Data.Include = other.Data.Include
	}

	// Index
	if other.Index.Concurrency != 0 {
		c.Index.Concurrency = other.Index.Concurrency
	}
	if other.Index.Markdown {
		c.Index.Markdown = true
	}
	if other.Index.Domain != "" {
		c.Index.Domain = other.Index.Domain
	}

	// Pack
	if other.Pack.Out != "" {
		c.Pack.Out = other.Pack.Out
	}
	if other.Pack.Name != "" {
		c.Pack.Name = other.Pack.Name
	}
	if other.Pack.Index != "" {
		c.Pack.Index = other.Pack.Index
	}

	// Metrics
	if other.Metrics.Textfile != "" {
		c.Metrics.Textfile = other.Metrics.Textfile
	}

	// Log
	if other.Log.Level != "" {
		c.Log.Level = other.Log.Level
	}
}
