package main

import (
	"fmt"

	"github.com/fwojciec/edhgrab"
)

// Run executes the articles command.
func (c *ArticlesCmd) Run(deps *Dependencies) error {
	urls, err := deps.Discoverer.FindGuideURLs(deps.Ctx, c.URL)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", edhgrab.ErrorMessage(err))
		return err
	}

	if len(urls) == 0 {
		fmt.Fprintln(deps.Stdout, "No upgrade guides found.")
		return nil
	}

	for _, u := range urls {
		fmt.Fprintln(deps.Stdout, u)
	}
	fmt.Fprintf(deps.Stderr, "Found %d upgrade guides\n", len(urls))

	return nil
}
