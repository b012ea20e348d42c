package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/gapscan"
	"github.com/fwojciec/gapscan/analyze"
	"github.com/fwojciec/gapscan/goquery"
	gaphttp "github.com/fwojciec/gapscan/http"
	"github.com/fwojciec/gapscan/htmltomarkdown"
	"github.com/fwojciec/gapscan/readability"
	gapslog "github.com/fwojciec/gapscan/slog"
	"github.com/fwojciec/gapscan/sqlite"
	"github.com/fwojciec/gapscan/trafilatura"
	"github.com/joho/godotenv"
)

func main() {
	// Optional .env for GAPSCAN_DB / GAPSCAN_ADDR.
	_ = godotenv.Load()

	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		_ = m.Close()
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	_ = m.Close()
}

// Main represents the program.
type Main struct {
	// Database path. Set before calling Run().
	DBPath string

	// SQLite database used by SQLite service implementations.
	DB *sqlite.DB

	// Services for end-to-end testing.
	ReportService gapscan.ReportService
	PageService   gapscan.PageService
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
		kong.Name("gapscan"),
		kong.Description("Competitor content gap analysis for articles"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'gapscan --help' to see available commands")
	}
	if cmd := args[0]; cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	level := slog.LevelInfo
	if cli.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))
	deps.Logger = logger

	cfg := gapscan.DefaultConfig()
	if cli.ConfigFile != "" {
		cfg, err = gapscan.LoadConfig(cli.ConfigFile)
		if err != nil {
			return fmt.Errorf("failed to load config %q: %w", cli.ConfigFile, err)
		}
	}
	deps.Config = cfg

	if cli.DB != "" {
		m.DBPath = cli.DB
	}
	m.DB = sqlite.NewDB(m.DBPath)
	if err := m.DB.Open(); err != nil {
		fmt.Fprintf(stderr, "Hint: Set GAPSCAN_DB to use a different database path\n")
		return fmt.Errorf("failed to open database at %q: %w", m.DBPath, err)
	}

	m.ReportService = sqlite.NewReportService(m.DB)
	m.PageService = sqlite.NewPageService(m.DB)
	deps.DB = m.DB
	deps.Reports = m.ReportService

	fetcher := gapslog.NewLoggingFetcher(gaphttp.NewFetcher(), logger)
	structurer := gapslog.NewLoggingStructurer(goquery.NewStructurer(cfg), logger)
	extractor := trafilatura.NewExtractor(trafilatura.WithFallback(readability.NewExtractor()))

	deps.Analyzer = analyze.NewAnalyzer(fetcher, structurer, cfg,
		analyze.WithArchival(extractor, htmltomarkdown.NewConverter(), m.PageService),
		analyze.WithReports(m.ReportService),
		analyze.WithLogger(logger),
	)

	return kongCtx.Run(deps)
}

func defaultDBPath() string {
	if path := os.Getenv("GAPSCAN_DB"); path != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "gapscan.db"
	}
	dir := filepath.Join(home, ".gapscan")
	_ = os.MkdirAll(dir, 0755)
	return filepath.Join(dir, "gapscan.db")
}
