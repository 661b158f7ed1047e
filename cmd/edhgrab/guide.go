package main

import (
	"fmt"

	"github.com/fwojciec/edhgrab"
	"github.com/fwojciec/edhgrab/extract"
)

// Run executes the guide command.
func (c *GuideCmd) Run(deps *Dependencies) error {
	guide, err := deps.Guides.ExtractGuide(deps.Ctx, c.URL)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", edhgrab.ErrorMessage(err))
		return err
	}

	var details []*edhgrab.CardDetails
	if c.Enrich && deps.Enricher != nil {
		details, err = deps.Enricher.EnrichNames(deps.Ctx, guide.CardNames())
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", edhgrab.ErrorMessage(err))
			return err
		}
	}

	if c.Markdown || c.Out != "" {
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
			fmt.Fprintf(deps.Stdout, "Wrote %s (%s)\n", path, extract.FormatBytes(len(rendered)))
		} else {
			fmt.Fprintln(deps.Stdout, rendered)
		}
	} else {
		fmt.Fprintln(deps.Stdout, edhgrab.FormatGuide(guide))
	}

	if len(details) > 0 {
		renderCardDetails(deps.Stdout, details)
	}

	return nil
}
