package priority

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/Manoj-Murari/task-analyzer/internal/domain"
)

// DetectCycles reports circular dependencies in a batch. An empty result means
// the batch is acyclic and safe to score.
//
// Only the first cycle found is reported: a batch with several disjoint cycles
// yields a single message, and the remaining cycles surface once the reported
// one is fixed and the batch is resubmitted. Dependencies on ids outside the
// batch are treated as already satisfied and never traversed.
func DetectCycles(tasks []domain.Task) []string {
	cycle := FindCycle(tasks)
	if len(cycle) == 0 {
		return []string{}
	}
	return []string{formatCycle(cycle)}
}

// FindCycle returns one dependency cycle as a closed path of task ids, for
// example [1 2 1] when task 1 depends on 2 and 2 depends on 1. The first and
// last element name the task at which the cycle was detected. It returns nil
// when the batch is acyclic.
//
// Traversal visits tasks in batch order and dependencies in listed order, so
// the reported cycle is stable for a given input.
func FindCycle(tasks []domain.Task) []int64 {
	const (
		white = iota
		gray
		black
	)

	adj := make(map[int64][]int64, len(tasks))
	for _, t := range tasks {
		adj[t.ID] = t.Dependencies
	}

	color := make(map[int64]int, len(tasks))
	parent := make(map[int64]int64, len(tasks))

	type frame struct {
		id   int64
		next int
	}

	for _, root := range tasks {
		if color[root.ID] != white {
			continue
		}

		color[root.ID] = gray
		stack := []frame{{id: root.ID}}

		for len(stack) > 0 {
			top := &stack[len(stack)-1]
			deps := adj[top.id]

			if top.next == len(deps) {
				color[top.id] = black
				stack = stack[:len(stack)-1]
				continue
			}

			dep := deps[top.next]
			top.next++

			if _, inBatch := adj[dep]; !inBatch {
				continue
			}

			switch color[dep] {
			case white:
				color[dep] = gray
				parent[dep] = top.id
				stack = append(stack, frame{id: dep})
			case gray:
				return closeCycle(parent, top.id, dep)
			}
		}
	}

	return nil
}

// closeCycle rebuilds the path dep -> ... -> from -> dep after the back edge
// from -> dep was found.
func closeCycle(parent map[int64]int64, from, dep int64) []int64 {
	rev := []int64{dep}
	for cur := from; cur != dep; cur = parent[cur] {
		rev = append(rev, cur)
	}
	rev = append(rev, dep)

	out := make([]int64, len(rev))
	for i := range rev {
		out[i] = rev[len(rev)-1-i]
	}
	return out
}

func formatCycle(cycle []int64) string {
	parts := make([]string, len(cycle))
	for i, id := range cycle {
		parts[i] = strconv.FormatInt(id, 10)
	}
	return fmt.Sprintf("Circular dependency detected involving task %d (%s)",
		cycle[0], strings.Join(parts, " -> "))
}
