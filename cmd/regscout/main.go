package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/regscout"
	"github.com/fwojciec/regscout/fuzzywuzzy"
	"github.com/fwojciec/regscout/goquery"
	"github.com/fwojciec/regscout/htmltomarkdown"
	reghttp "github.com/fwojciec/regscout/http"
	"github.com/fwojciec/regscout/query"
	"github.com/fwojciec/regscout/route"
	"github.com/fwojciec/regscout/score"
	"github.com/fwojciec/regscout/search"
	regslog "github.com/fwojciec/regscout/slog"
	"github.com/fwojciec/regscout/sqlite"
	"github.com/fwojciec/regscout/trafilatura"
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

	// SQLite database used by the search history store.
	DB *sqlite.DB

	// HistoryService for end-to-end testing.
	HistoryService regscout.SearchHistoryService
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
	// Initialize dependencies struct for Kong binding
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	// Create Kong parser with dependency binding
	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("regscout"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	// Handle help flags using Kong
	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'regscout --help' to see available commands")
	}

	cmd := args[0]
	if cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	// Parse arguments first to know which command and its flags
	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	// Open database
	m.DB = sqlite.NewDB(m.DBPath)
	if err := m.DB.Open(); err != nil {
		fmt.Fprintf(stderr, "Hint: Set REGSCOUT_DB to use a different database path\n")
		return fmt.Errorf("failed to open database at %q: %w", m.DBPath, err)
	}
	defer m.Close()

	// Wire core services into dependencies
	m.HistoryService = sqlite.NewSearchHistoryService(m.DB)
	deps.DB = m.DB
	deps.History = m.HistoryService
	deps.Sitemaps = reghttp.NewSitemapService(nil)

	// Wire the search pipeline only when searching
	if cmd == "search" {
		logger := slog.New(slog.DiscardHandler)
		if cli.Search.Verbose {
			logger = slog.New(slog.NewTextHandler(stderr, nil))
		}

		fetcher := regslog.NewLoggingFetcher(reghttp.NewFetcher(), logger)
		defer fetcher.Close()

		scorer := regslog.NewLoggingScorer(
			score.NewScorer(score.DefaultConfig(), score.WithFuzzyMatcher(fuzzywuzzy.NewMatcher())),
			logger,
		)

		searcher, err := buildSearcher(cli.Search, fetcher, scorer, deps.Sitemaps, logger)
		if err != nil {
			return err
		}
		deps.Searcher = searcher
	}

	return kongCtx.Run(deps)
}

// buildSearcher assembles the engine for the primary site, or a multi-site
// searcher over all configured sites when requested.
func buildSearcher(cmd SearchCmd, fetcher regscout.Fetcher, scorer regscout.IntentScorer, sitemaps regscout.SitemapService, logger *slog.Logger) (regscout.Searcher, error) {
	sites := []regscout.Site{regscout.DefaultRegulatorSite()}
	if cmd.AllSites {
		sites = regscout.DefaultSites()
	}

	analyzer := query.NewAnalyzer(query.DefaultConfig())
	limiter := search.NewDomainLimiter(1.0)

	engines := make([]regscout.Searcher, 0, len(sites))
	for i := range sites {
		site := &sites[i]
		extractor, err := goquery.NewExtractor(site, fetcher, scorer,
			goquery.WithContentExtractor(trafilatura.NewExtractor(), htmltomarkdown.NewConverter()))
		if err != nil {
			return nil, fmt.Errorf("failed to configure extractor for %s: %w", site.Name, err)
		}

		engines = append(engines, &search.Engine{
			Site:      site,
			Analyzer:  analyzer,
			Planner:   route.NewPlanner(*site),
			Fetcher:   fetcher,
			Extractor: extractor,
			Scorer:    scorer,
			Limiter:   limiter,
			Sitemaps:  sitemaps,
			Logger:    logger,
		})
	}

	if len(engines) == 1 {
		return engines[0], nil
	}
	return &search.MultiSite{
		Searchers:   engines,
		Concurrency: cmd.Concurrency,
		Logger:      logger,
	}, nil
}

func defaultDBPath() string {
	if path := os.Getenv("REGSCOUT_DB"); path != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "regscout.db"
	}
	dir := filepath.Join(home, ".regscout")
	_ = os.MkdirAll(dir, 0755)
	return filepath.Join(dir, "regscout.db")
}
