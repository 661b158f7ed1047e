package main

import (
	"fmt"

	"github.com/fwojciec/edhgrab"
	"github.com/fwojciec/edhgrab/extract"
)

// Run executes the fetch command.
func (c *FetchCmd) Run(deps *Dependencies) error {
	guide, err := deps.Guides.ExtractGuide(deps.Ctx, c.URL)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", edhgrab.ErrorMessage(err))
		return err
	}

	rendered, err := edhgrab.ExportMarkdown(guide, deps.Converter)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", edhgrab.ErrorMessage(err))
		return err
	}

	if c.Out != "" {
		path, err := deps.Writer.WriteGuide(guide, rendered)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", edhgrab.ErrorMessage(err))
			return err
		}
		fmt.Fprintln(deps.Stdout, path)
	} else {
		fmt.Fprint(deps.Stdout, rendered)
	}

	fmt.Fprintf(deps.Stderr, "Fetched %q (%s)\n", guide.Title, extract.FormatBytes(len(rendered)))

	return nil
}
