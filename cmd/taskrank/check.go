package main

import (
	"fmt"
	"io"

	"github.com/Manoj-Murari/task-analyzer/internal/domain/priority"
	"github.com/spf13/cobra"
)

func newCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Check a task file for circular dependencies",
		Long: `Check reports the first dependency cycle found in the file and exits
with status 1, or confirms that the tasks can be ranked.

Example:
  taskrank check -f tasks.json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			path, _ := cmd.Flags().GetString("file")
			tasks, err := readTasks(path, cmd.InOrStdin())
			if err != nil {
				return err
			}

			if cycles := priority.DetectCycles(tasks); len(cycles) > 0 {
				printCycles(cmd.OutOrStdout(), cycles)
				return errCyclesFound
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %d tasks, no circular dependencies\n", okStyle.Render("OK"), len(tasks))
			return nil
		},
	}
}

func printCycles(out io.Writer, cycles []string) {
	for _, c := range cycles {
		fmt.Fprintf(out, "%s %s\n", errorStyle.Render("CYCLE"), c)
	}
}
