// Command taskrank ranks a file of tasks offline with the same engine the
// API server uses, and checks task files for circular dependencies.
//
// Usage:
//
//	taskrank rank -f tasks.yaml [--strategy impact] [--date 2025-06-15] [--ai] [--json]
//	taskrank check -f tasks.json
package main

import (
	"errors"
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		if !errors.Is(err, errCyclesFound) {
			fmt.Fprintln(os.Stderr, "Error:", err)
		}
		os.Exit(1)
	}
}
