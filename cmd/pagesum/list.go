package main

import (
	"fmt"

	"github.com/hkwon/pagesum"
)

// Run executes the list command.
func (c *ListCmd) Run(deps *Dependencies) error {
	runs, err := deps.Runs.FindRuns(deps.Ctx, pagesum.RunFilter{})
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", pagesum.ErrorMessage(err))
		return err
	}

	if len(runs) == 0 {
		fmt.Fprintln(deps.Stdout, "No saved runs. Use 'pagesum run --save' to create one.")
		return nil
	}

	for _, r := range runs {
		fmt.Fprintf(deps.Stdout, "%s  %s  sentences=%d keywords=%d\n",
			r.ID, r.CreatedAt.Format("2006-01-02 15:04"), r.MaxSentences, r.TopK)
	}

	return nil
}
