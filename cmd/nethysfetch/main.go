package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/url"
	"os"
	"time"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/nethys"
	"github.com/fwojciec/nethys/crawl"
	"github.com/fwojciec/nethys/fs"
	nethyshttp "github.com/fwojciec/nethys/http"
	nslog "github.com/fwojciec/nethys/slog"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// RetryDelays overrides the backoff between fetch attempts. Tests set it.
	RetryDelays []time.Duration
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{}
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("nethysfetch"),
		kong.Description("Download rulebook entry pages into a local corpus"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	// Handle no arguments
	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no arguments provided")
	}

	// Handle help flags
	if len(args) == 1 && (args[0] == "--help" || args[0] == "-h" || args[0] == "help") {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	if _, err = parser.Parse(args); err != nil {
		return err
	}

	infos, err := nethys.ParseCategories(cli.Category)
	if err != nil {
		return err
	}
	base, err := url.Parse(cli.BaseURL)
	if err != nil || base.Host == "" {
		return nethys.Errorf(nethys.ECONFIG, "invalid base url %q", cli.BaseURL)
	}

	var level slog.Level
	if err := level.UnmarshalText([]byte(cli.Log)); err != nil {
		return nethys.Errorf(nethys.ECONFIG, "invalid log level %q", cli.Log)
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	fetcher := nethyshttp.NewFetcher(
		nethyshttp.WithTimeout(cli.Timeout),
		nethyshttp.WithBaseURL(cli.BaseURL),
	)
	defer fetcher.Close()

	d := &crawl.Downloader{
		Source:      nslog.NewLoggingPageSource(fetcher, logger),
		Cache:       fs.NewPageStore(cli.Data),
		Limiter:     crawl.NewHostLimiter(cli.Delay),
		Host:        base.Host,
		RetryDelays: m.RetryDelays,
		MaxFailures: cli.MaxFailures,
		OnRetry: func(event crawl.DownloadEvent, attempt int, err error) {
			logger.Warn("retry", "category", event.Category, "id", event.ID, "attempt", attempt, "err", err)
		},
	}

	cmd := &FetchCmd{Infos: infos, Verbose: cli.Verbose}
	return cmd.Run(ctx, d, stdout, stderr)
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Data        string        `short:"d" required:"" env:"NETHYS_DATA" help:"Corpus directory"`
	Category    []string      `short:"k" name:"category" help:"Limit to category (repeatable)"`
	Timeout     time.Duration `short:"t" default:"10s" help:"Fetch timeout per page"`
	Delay       time.Duration `default:"2s" help:"Pause between requests"`
	MaxFailures int           `default:"10" help:"Consecutive failed ids before a category is done"`
	BaseURL     string        `name:"base-url" default:"https://2e.aonprd.com" help:"Site root"`
	Log         string        `default:"warn" help:"Log level (debug, info, warn, error)"`
	Verbose     bool          `short:"v" help:"Print every fetched id"`
}
