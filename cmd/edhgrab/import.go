package main

import (
	"fmt"
	"os"

	"github.com/fwojciec/edhgrab"
)

// Run executes the import command.
func (c *ImportCmd) Run(deps *Dependencies) error {
	f, err := os.Open(c.File)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %v\n", err)
		return err
	}
	defer f.Close()

	list, err := edhgrab.ParseCardList(f)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", edhgrab.ErrorMessage(err))
		return err
	}

	if len(list.Sections) == 0 {
		fmt.Fprintf(deps.Stderr, "error: no cards found in %s\n", c.File)
		return edhgrab.Errorf(edhgrab.ECONTENT, "no cards found in %s", c.File)
	}

	renderStatSections(deps.Stdout, list, nil)

	if c.Export != "" {
		if err := os.WriteFile(c.Export, []byte(edhgrab.FormatCardList(list)), 0644); err != nil {
			fmt.Fprintf(deps.Stderr, "error: %v\n", err)
			return err
		}
		fmt.Fprintf(deps.Stdout, "Wrote %s\n", c.Export)
	}

	return nil
}
