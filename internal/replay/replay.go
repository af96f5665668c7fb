// Package replay re-executes a plan against the action rules. It is the
// round-trip check used by the CLI, the solve service, and the tests: a
// returned plan must drive the initial state to a goal state purely through
// successor label matching.
package replay

import (
	"fmt"

	"sokoplan.ai/internal/actions"
	"sokoplan.ai/internal/maze"
	"sokoplan.ai/internal/state"
)

// Step applies one action label by matching it against the successors of s.
// Returns false when the label is not applicable in s.
func Step(m *maze.Maze, s state.State, action string) (state.State, bool) {
	for _, succ := range actions.Successors(m, s) {
		if succ.Action == action {
			return succ.State, true
		}
	}
	return state.State{}, false
}

// Validate replays plan from init and confirms the final state satisfies
// the goal test. The reached final state is returned even on goal failure
// so callers can render where the plan ended up.
func Validate(m *maze.Maze, init state.State, plan []string) (state.State, error) {
	cur := init
	for i, action := range plan {
		next, ok := Step(m, cur, action)
		if !ok {
			return cur, fmt.Errorf("step %d: action %q not applicable", i+1, action)
		}
		cur = next
	}
	if !actions.IsGoal(m, cur) {
		return cur, fmt.Errorf("plan ends off-goal after %d steps", len(plan))
	}
	return cur, nil
}
