package main

import (
	"fmt"

	"github.com/hkwon/pagesum"
)

// Run executes the delete command.
func (c *DeleteCmd) Run(deps *Dependencies) error {
	if !c.Force {
		fmt.Fprintf(deps.Stderr, "error: use --force to confirm deletion\n")
		return pagesum.Errorf(pagesum.EINVALID, "use --force to confirm deletion")
	}

	if err := deps.Runs.DeleteRun(deps.Ctx, c.RunID); err != nil {
		if pagesum.ErrorCode(err) == pagesum.ENOTFOUND {
			fmt.Fprintf(deps.Stderr, "error: run %q not found. Use 'pagesum list' to see saved runs.\n", c.RunID)
		} else {
			fmt.Fprintf(deps.Stderr, "error: %s\n", pagesum.ErrorMessage(err))
		}
		return err
	}

	fmt.Fprintf(deps.Stdout, "Deleted run %s\n", c.RunID)
	return nil
}
