package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/edhgrab"
	"github.com/fwojciec/edhgrab/extract"
	"github.com/fwojciec/edhgrab/fs"
	"github.com/fwojciec/edhgrab/goquery"
	"github.com/fwojciec/edhgrab/htmltomarkdown"
	"github.com/fwojciec/edhgrab/readability"
	"github.com/fwojciec/edhgrab/resty"
	"github.com/fwojciec/edhgrab/rod"
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
type Main struct{}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{}
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("edhfetch"),
		kong.Description("Fetch a single EDHREC upgrade guide as markdown"),
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

	_, err = parser.Parse(args)
	if err != nil {
		return err
	}

	// Wire dependencies
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	timeout := cli.Timeout
	if timeout == 0 {
		timeout = 10 * time.Second
	}

	direct, err := resty.NewFetcher(resty.WithTimeout(timeout))
	if err != nil {
		return fmt.Errorf("failed to create fetcher: %w", err)
	}

	paths := []edhgrab.Fetcher{direct}
	if browser, err := rod.NewFetcher(rod.WithFetchTimeout(timeout)); err == nil {
		paths = append(paths, browser)
	} else {
		fmt.Fprintln(stderr, "Hint: install Chrome or Chromium to enable the rendered fetch path")
	}

	chain, err := extract.NewFallbackFetcher(paths)
	if err != nil {
		return err
	}
	defer chain.Close()

	var locator edhgrab.ContentLocator
	switch cli.Locator {
	case "readability":
		locator = readability.NewLocator()
	default:
		locator = trafilatura.NewLocator()
	}

	deps.Guides = &extract.Extractor{
		Fetcher: chain,
		Parsers: goquery.NewDefaultRegistry(),
		Locator: locator,
	}
	deps.Converter = htmltomarkdown.NewConverter()
	if cli.Out != "" {
		deps.Writer = fs.NewWriter(cli.Out)
	}

	cmd := &FetchCmd{
		URL: cli.URL,
		Out: cli.Out,
	}

	return cmd.Run(deps)
}
