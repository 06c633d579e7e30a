package main

import (
	"fmt"

	"github.com/hkwon/pagesum"
)

// Run executes the show command.
func (c *ShowCmd) Run(deps *Dependencies) error {
	run, err := deps.Runs.FindRunByID(deps.Ctx, c.RunID)
	if err != nil {
		if pagesum.ErrorCode(err) == pagesum.ENOTFOUND {
			fmt.Fprintf(deps.Stderr, "error: run %q not found. Use 'pagesum list' to see saved runs.\n", c.RunID)
		} else {
			fmt.Fprintf(deps.Stderr, "error: %s\n", pagesum.ErrorMessage(err))
		}
		return err
	}

	docs, err := deps.Documents.FindDocuments(deps.Ctx, pagesum.DocumentFilter{RunID: &run.ID})
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", pagesum.ErrorMessage(err))
		return err
	}

	if len(docs) == 0 {
		fmt.Fprintf(deps.Stdout, "Run %s has no documents.\n", run.ID)
		return nil
	}

	fmt.Fprint(deps.Stdout, pagesum.FormatTable(docs))
	return nil
}
