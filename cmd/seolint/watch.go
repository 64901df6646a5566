package main

import "fmt"

// Run executes the watch command. It blocks until the context is cancelled.
func (c *WatchCmd) Run(deps *Dependencies) error {
	if _, err := c.execute(deps); err != nil {
		return err
	}

	watcher := deps.NewWatcher(c.Output)
	fmt.Fprintf(deps.Stdout, "\nWatching %s for changes (Ctrl+C to stop)\n", c.Root)

	err := watcher.Watch(deps.Ctx, c.Root, func() {
		fmt.Fprintf(deps.Stdout, "\nChange detected, re-running analysis\n\n")
		// Failures were already reported; keep watching.
		_, _ = c.execute(deps)
	})
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error watching %s: %v\n", c.Root, err)
		return err
	}
	return nil
}
