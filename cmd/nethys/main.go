package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/nethys"
	"github.com/fwojciec/nethys/fs"
	"github.com/fwojciec/nethys/goquery"
	"github.com/fwojciec/nethys/htmltomarkdown"
	nslog "github.com/fwojciec/nethys/slog"
	"github.com/fwojciec/nethys/sqlite"
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
	// Database path. Set before calling Run().
	DBPath string

	// SQLite database used by SQLite service implementations.
	DB *sqlite.DB

	// Services for end-to-end testing.
	RecordService nethys.RecordService
	RunService    nethys.RunService
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		DBPath: defaultDBPath(),
	}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	if m.DB != nil {
		return m.DB.Close()
	}
	return nil
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("nethys"),
		kong.Description("Extract rulebook entries into search records and upload batches"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'nethys --help' to see available commands")
	}

	cmd := args[0]
	if cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	// Load configuration
	cfg := DefaultConfig()
	if cli.Config != "" {
		if cfg, err = LoadFromFile(cli.Config); err != nil {
			return err
		}
	}
	cfg.Merge(&Config{Log: LogConfig{Level: cli.Log}})
	level, err := cfg.Level()
	if err != nil {
		return err
	}
	deps.Config = cfg
	deps.Logger = slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	// Open database
	m.DB = sqlite.NewDB(m.DBPath)
	if err := m.DB.Open(); err != nil {
		fmt.Fprintf(stderr, "Hint: Set NETHYS_DB to use a different database path\n")
		return fmt.Errorf("failed to open database at %q: %w", m.DBPath, err)
	}
	defer m.Close()

	// Wire services into dependencies
	m.RecordService = sqlite.NewRecordService(m.DB)
	m.RunService = sqlite.NewRunService(m.DB)
	deps.Records = m.RecordService
	deps.Runs = m.RunService
	deps.NewCorpus = newCorpus
	deps.NewAssembler = func(cfg *Config) nethys.Assembler {
		return newAssembler(cfg, deps.Logger)
	}
	deps.NewBatchStore = func(cfg *Config) nethys.BatchStore {
		store := fs.NewBatchStore(cfg.Pack.Out, cfg.Pack.Name, cfg.Pack.Index)
		return nslog.NewLoggingBatchStore(store, deps.Logger)
	}

	return kongCtx.Run(deps)
}

func newCorpus(cfg *Config) (nethys.Corpus, error) {
	infos, err := cfg.Infos()
	if err != nil {
		return nil, err
	}
	corpus := fs.NewCorpus(cfg.Data.Dir, infos...)
	corpus.Include = cfg.Data.Include
	return corpus, nil
}

func newAssembler(cfg *Config, logger *slog.Logger) nethys.Assembler {
	var converter nethys.Converter
	if cfg.Index.Markdown {
		converter = htmltomarkdown.NewConverter(htmltomarkdown.WithDomain(cfg.Index.Domain))
	}
	return nslog.NewLoggingAssembler(goquery.NewRegistry(converter), logger)
}

func defaultDBPath() string {
	if path := os.Getenv("NETHYS_DB"); path != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "nethys.db"
	}
	dir := filepath.Join(home, ".nethys")
	_ = os.MkdirAll(dir, 0755)
	return filepath.Join(dir, "nethys.db")
}
