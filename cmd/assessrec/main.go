package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/assessrec"
	"github.com/fwojciec/assessrec/goquery"
	assesshttp "github.com/fwojciec/assessrec/http"
	"github.com/fwojciec/assessrec/readability"
	"github.com/fwojciec/assessrec/recommend"
	"github.com/fwojciec/assessrec/rod"
	"github.com/fwojciec/assessrec/scrape"
	assessslog "github.com/fwojciec/assessrec/slog"
	"github.com/fwojciec/assessrec/tfidf"
	"github.com/fwojciec/assessrec/trafilatura"
	"github.com/joho/godotenv"
)

func main() {
	ctx := context.Background()

	// A missing .env file is not an error.
	_ = godotenv.Load()

	m := NewMain()
	defer m.Close()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Service, when set before Run, replaces the service built from
	// configuration. Used by end-to-end tests.
	Service *recommend.Service

	closers []io.Closer
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{}
}

// Close releases resources opened while wiring commands.
func (m *Main) Close() error {
	var first error
	for _, c := range m.closers {
		if err := c.Close(); err != nil && first == nil {
			first = err
		}
	}
	return first
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
		kong.Name("assessrec"),
		kong.Description("SHL assessment recommendation system."),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'assessrec --help' to see available commands")
	}
	if cmd := args[0]; cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	cfg, err := LoadConfig(cli.Config)
	if err != nil {
		return err
	}
	deps.Config = cfg
	deps.Logger = newLogger(stderr, cfg.Logging.Level, cli.Verbose)

	if m.Service != nil {
		deps.Service = m.Service
	} else {
		svc, err := m.buildService(cfg, deps.Logger, cli.browser())
		if err != nil {
			return err
		}
		deps.Service = svc
	}

	return kongCtx.Run(deps)
}

// buildService wires the pipeline from configuration: fetcher (HTTP or
// headless browser), rate limiter, catalog scraper, the extractor
// chain, and the TF-IDF ranker, each wrapped in its logging decorator.
// Exactly one layer gates on the rate limiter: the HTTP fetcher when it
// is in play, the scraper otherwise. Wiring the limiter into both would
// charge every fetch two tokens and halve the effective rate.
func (m *Main) buildService(cfg *Config, logger *slog.Logger, browser bool) (*recommend.Service, error) {
	limiter := scrape.NewLimiter(cfg.Catalog.RatePerSec)

	var fetcher assessrec.Fetcher
	var scraperLimiter *scrape.Limiter
	if browser {
		rodFetcher, err := rod.NewFetcher()
		if err != nil {
			return nil, fmt.Errorf("failed to start browser (is Chrome or Chromium installed?): %w", err)
		}
		fetcher = rodFetcher
		scraperLimiter = limiter
	} else {
		fetcher = assesshttp.NewFetcher(
			assesshttp.WithTimeout(cfg.Catalog.Timeout()),
			assesshttp.WithLimiter(limiter),
		)
	}
	fetcher = assessslog.NewLoggingFetcher(fetcher, logger)
	m.closers = append(m.closers, fetcher)

	scraper := &scrape.Scraper{
		Fetcher:     fetcher,
		Parser:      goquery.NewCatalogParser(),
		Limiter:     scraperLimiter,
		URLs:        cfg.Catalog.URLs,
		Concurrency: cfg.Catalog.Concurrency,
		Timeout:     cfg.Catalog.Timeout(),
	}

	return &recommend.Service{
		Catalog: assessslog.NewLoggingCatalogSource(scraper, logger),
		Fetcher: fetcher,
		Ranker:  assessslog.NewLoggingRanker(tfidf.NewRanker(), logger),
		Extractors: []assessrec.TextExtractor{
			goquery.NewTextExtractor(),
			trafilatura.NewExtractor(),
			readability.NewExtractor(),
		},
		TopN:           cfg.Server.TopN,
		ExtractTimeout: cfg.Server.ExtractTimeout(),
	}, nil
}

func newLogger(w io.Writer, level string, verbose bool) *slog.Logger {
	lvl := slog.LevelInfo
	switch level {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	}
	if verbose {
		lvl = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: lvl}))
}
