package main

import (
	"fmt"

	"github.com/hkwon/pagesum"
)

// Run executes the export command.
func (c *ExportCmd) Run(deps *Dependencies) error {
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

	if err := writeCSVFile(c.CSV, docs); err != nil {
		fmt.Fprintf(deps.Stderr, "error: writing CSV: %v\n", err)
		return err
	}

	fmt.Fprintf(deps.Stdout, "Wrote %d rows to %s\n", len(docs), c.CSV)
	return nil
}
