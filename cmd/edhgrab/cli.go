package main

import (
	"context"
	"io"

	"github.com/fwojciec/edhgrab"
	"github.com/fwojciec/edhgrab/extract"
	"github.com/fwojciec/edhgrab/fs"
	"github.com/fwojciec/edhgrab/sqlite"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx        context.Context
	Stdout     io.Writer
	Stderr     io.Writer
	DB         *sqlite.DB
	Guides     edhgrab.GuideService
	Stats      edhgrab.StatsService
	Cards      edhgrab.CardService
	Symbols    edhgrab.SymbolService
	Pages      edhgrab.PageCacheService
	Sitemaps   edhgrab.SitemapService
	Converter  edhgrab.Converter
	Writer     *fs.Writer
	Enricher   *extract.Enricher
	Discoverer *extract.Discoverer
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Verbose bool `short:"v" help:"Log service activity to stderr"`

	Guide     GuideCmd     `cmd:"" help:"Extract an upgrade-guide article"`
	Commander CommanderCmd `cmd:"" help:"Show card statistics for a commander"`
	Import    ImportCmd    `cmd:"" help:"Parse and display a card list file"`
	Articles  ArticlesCmd  `cmd:"" help:"Discover upgrade-guide articles on a site"`
}

// GuideCmd is the "guide" subcommand.
type GuideCmd struct {
	URL      string `arg:"" help:"Article URL"`
	Markdown bool   `short:"m" help:"Render the guide as markdown"`
	Out      string `short:"o" help:"Write the markdown export into this directory"`
	Enrich   bool   `short:"e" help:"Look up details for referenced cards"`
	Locator  string `default:"trafilatura" enum:"trafilatura,readability" help:"Content locator used when the article markup is unrecognized"`
	NoCache  bool   `help:"Bypass the local page cache"`
}

// CommanderCmd is the "commander" subcommand.
type CommanderCmd struct {
	Target       string  `arg:"" name:"commander" help:"Commander name or page URL"`
	MinInclusion float64 `help:"Only show cards at or above this inclusion percentage"`
	Enrich       bool    `short:"e" help:"Look up details for listed cards"`
	SymbolDir    string  `help:"Cache set symbol files into this directory (with --enrich)"`
	Export       string  `help:"Write the card list to a file"`
}

// ImportCmd is the "import" subcommand.
type ImportCmd struct {
	File   string `arg:"" help:"Card list file"`
	Export string `help:"Re-export the normalized list to a file"`
}

// ArticlesCmd is the "articles" subcommand.
type ArticlesCmd struct {
	URL      string `arg:"" help:"Site base URL"`
	MaxPages int    `default:"1000" help:"Fetch budget for the article walk"`
}
