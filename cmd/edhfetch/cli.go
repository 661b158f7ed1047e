package main

import (
	"context"
	"io"
	"time"

	"github.com/fwojciec/edhgrab"
	"github.com/fwojciec/edhgrab/fs"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx    context.Context
	Stdout io.Writer
	Stderr io.Writer

	Guides    edhgrab.GuideService
	Converter edhgrab.Converter
	Writer    *fs.Writer
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Locator string        `default:"trafilatura" enum:"trafilatura,readability" help:"Content locator used when no parser recognizes the page"`
	Timeout time.Duration `short:"t" default:"10s" help:"Fetch timeout per page"`
	Out     string        `short:"o" optional:"" help:"Directory to write the markdown file into"`
	URL     string        `arg:"" required:"" help:"Upgrade guide URL to fetch"`
}

// FetchCmd handles the fetch operation.
type FetchCmd struct {
	URL string
	Out string
}
