package main

import (
	"fmt"

	"github.com/fwojciec/seolint"
	"github.com/fwojciec/seolint/lipgloss"
)

// Run executes the history command.
func (c *HistoryCmd) Run(deps *Dependencies) error {
	printer := lipgloss.NewPrinter(deps.Stdout)

	if c.ID == "" {
		if c.Delete {
			fmt.Fprintf(deps.Stderr, "error: run ID required for --delete\n")
			return seolint.Errorf(seolint.EINVALID, "run ID required for --delete")
		}

		filter := seolint.RunFilter{Limit: c.Limit}
		if c.Root != "" {
			filter.Root = &c.Root
		}
		runs, err := deps.Runs.FindRuns(deps.Ctx, filter)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", seolint.ErrorMessage(err))
			return err
		}
		printer.PrintRuns(runs)
		return nil
	}

	if c.Delete {
		if err := deps.Runs.DeleteRun(deps.Ctx, c.ID); err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", seolint.ErrorMessage(err))
			return err
		}
		fmt.Fprintf(deps.Stdout, "Deleted run %s\n", c.ID)
		return nil
	}

	run, err := deps.Runs.FindRunByID(deps.Ctx, c.ID)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", seolint.ErrorMessage(err))
		return err
	}
	printer.PrintRun(run)
	return nil
}
