package main

import (
	"errors"

	"github.com/spf13/cobra"
)

// errCyclesFound makes the process exit with status 1 after the cycle
// report has been printed.
var errCyclesFound = errors.New("circular dependencies found")

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "taskrank",
		Short: "Rank tasks by priority and check their dependencies",
		Long: `taskrank scores a batch of tasks with the task analyzer's prioritization
engine: urgency from the due date, importance, effort, and how many other
tasks each one blocks.

Task files are JSON or YAML lists of tasks:

  - id: 1
    title: Fix login bug
    due_date: 2025-06-20
    estimated_hours: 3
    importance: 8
    dependencies: [2]`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().StringP("file", "f", "", "task file (.json, .yaml or .yml); - reads JSON from stdin")
	_ = root.MarkPersistentFlagRequired("file")

	root.AddCommand(newRankCmd(), newCheckCmd())
	return root
}
