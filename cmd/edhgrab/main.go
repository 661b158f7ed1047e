package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/edhgrab"
	"github.com/fwojciec/edhgrab/extract"
	"github.com/fwojciec/edhgrab/fs"
	"github.com/fwojciec/edhgrab/goquery"
	edhhttp "github.com/fwojciec/edhgrab/http"
	"github.com/fwojciec/edhgrab/htmltomarkdown"
	"github.com/fwojciec/edhgrab/readability"
	"github.com/fwojciec/edhgrab/resty"
	"github.com/fwojciec/edhgrab/rod"
	"github.com/fwojciec/edhgrab/scryfall"
	edhslog "github.com/fwojciec/edhgrab/slog"
	"github.com/fwojciec/edhgrab/sqlite"
	"github.com/fwojciec/edhgrab/trafilatura"
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

	// SQLite database backing the page and card caches.
	DB *sqlite.DB
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
		kong.Name("edhgrab"),
		kong.Description("Extract EDHREC upgrade guides and commander card statistics"),
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
		return fmt.Errorf("no command specified. Run 'edhgrab --help' to see available commands")
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

	logger := slog.New(slog.NewTextHandler(stderr, nil))

	// Open database
	m.DB = sqlite.NewDB(m.DBPath)
	if err := m.DB.Open(); err != nil {
		fmt.Fprintf(stderr, "Hint: Set EDHGRAB_DB to use a different database path\n")
		return fmt.Errorf("failed to open database at %q: %w", m.DBPath, err)
	}
	defer m.Close()

	deps.DB = m.DB
	deps.Pages = sqlite.NewPageCacheService(m.DB)
	deps.Sitemaps = edhhttp.NewSitemapService(nil)
	if cli.Verbose {
		deps.Sitemaps = edhslog.NewLoggingSitemapService(deps.Sitemaps, logger)
	}

	// The fetch chain serves every command that touches the site.
	var fetcher edhgrab.Fetcher
	if cmd == "guide" || cmd == "commander" || cmd == "articles" {
		chain, err := newFetchChain(stderr)
		if err != nil {
			return fmt.Errorf("failed to build fetch paths: %w", err)
		}
		defer chain.Close()

		fetcher = chain
		if cli.Verbose {
			fetcher = edhslog.NewLoggingFetcher(chain, logger)
		}
	}

	// Extraction services for the guide and commander commands
	if cmd == "guide" || cmd == "commander" {
		registry := goquery.NewDefaultRegistry()
		var parsers edhgrab.ParserRegistry = registry
		if cli.Verbose {
			parsers = edhslog.NewLoggingRegistry(registry, goquery.NewDetector(), logger)
		}

		var locator edhgrab.ContentLocator
		switch cli.Guide.Locator {
		case "readability":
			locator = readability.NewLocator()
		default:
			locator = trafilatura.NewLocator()
		}

		pages := deps.Pages
		if cli.Guide.NoCache {
			pages = nil
		}

		extractor := &extract.Extractor{
			Fetcher: fetcher,
			Parsers: parsers,
			Stats:   goquery.NewStatsParser(),
			Locator: locator,
			Pages:   pages,
		}
		deps.Guides = extractor
		deps.Stats = extractor
	}

	// Card enrichment: Scryfall behind the local cache
	needsCards := (cmd == "guide" && cli.Guide.Enrich) ||
		(cmd == "commander" && cli.Commander.Enrich)
	if needsCards {
		client := scryfall.NewClient()
		var cards edhgrab.CardService = sqlite.NewCardCacheService(m.DB, scryfall.NewCardService(client))
		if cli.Verbose {
			cards = edhslog.NewLoggingCardService(cards, logger)
		}
		deps.Cards = cards
		deps.Enricher = &extract.Enricher{Cards: cards}

		if cmd == "commander" && cli.Commander.SymbolDir != "" {
			store := fs.NewSymbolStore(cli.Commander.SymbolDir)
			deps.Symbols = scryfall.NewSymbolService(client, store)
		}
	}

	if cmd == "guide" {
		deps.Converter = htmltomarkdown.NewConverter()
		if cli.Guide.Out != "" {
			deps.Writer = fs.NewWriter(cli.Guide.Out)
		}
	}

	if cmd == "articles" {
		deps.Discoverer = &extract.Discoverer{
			Sitemaps: deps.Sitemaps,
			Fetcher:  fetcher,
			Links:    goquery.NewArticleSelector(),
			Limiter:  extract.NewDomainLimiter(1.0),
			MaxPages: cli.Articles.MaxPages,
			Progress: func(event extract.ProgressEvent) {
				if event.Err != nil {
					fmt.Fprintf(stderr, "  skip %s: %v\n", extract.TruncateURL(event.URL, 60), event.Err)
				}
			},
		}
	}

	return kongCtx.Run(deps)
}

// newFetchChain assembles the prioritized access paths: direct HTTP
// first, then each configured mirror, then the headless browser.
func newFetchChain(stderr io.Writer) (*extract.FallbackFetcher, error) {
	direct, err := resty.NewFetcher()
	if err != nil {
		return nil, err
	}

	paths := []edhgrab.Fetcher{direct}
	for _, template := range mirrorTemplates() {
		proxy, err := resty.NewProxyFetcher(template, direct)
		if err != nil {
			return nil, fmt.Errorf("invalid mirror template %q: %w", template, err)
		}
		paths = append(paths, proxy)
	}

	// The browser is the last resort; the HTTP paths work without it.
	rodFetcher, err := rod.NewFetcher()
	if err != nil {
		fmt.Fprintln(stderr, "Hint: install Chrome or Chromium to enable the rendered fetch path")
	} else {
		paths = append(paths, rodFetcher)
	}

	return extract.NewFallbackFetcher(paths)
}

// mirrorTemplates returns the mirror URL templates from EDHGRAB_MIRRORS,
// a comma-separated list of templates with a %s target placeholder.
func mirrorTemplates() []string {
	raw := os.Getenv("EDHGRAB_MIRRORS")
	if raw == "" {
		return nil
	}
	var templates []string
	for _, template := range strings.Split(raw, ",") {
		if template = strings.TrimSpace(template); template != "" {
			templates = append(templates, template)
		}
	}
	return templates
}

func defaultDBPath() string {
	if path := os.Getenv("EDHGRAB_DB"); path != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "edhgrab.db"
	}
	dir := filepath.Join(home, ".edhgrab")
	_ = os.MkdirAll(dir, 0755)
	return filepath.Join(dir, "edhgrab.db")
}
