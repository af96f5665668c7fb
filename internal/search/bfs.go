package search

import (
	"time"

	"sokoplan.ai/internal/actions"
	"sokoplan.ai/internal/maze"
	"sokoplan.ai/internal/state"
)

// BreadthFirst explores strictly level by level. All transitions cost 1, so
// the first goal popped is a minimum-length plan.
func BreadthFirst(m *maze.Maze, init state.State) Result {
	var res Result
	start := time.Now()

	frontier := []state.State{init}
	explored := map[string]struct{}{init.Key(): {}}
	cameFrom := map[string]edge{}
	res.StatesGenerated = 1

	for len(frontier) > 0 {
		cur := frontier[0]
		frontier = frontier[1:]
		res.StatesExpanded++

		if actions.IsGoal(m, cur) {
			res.Success = true
			res.Plan = reconstruct(cameFrom, cur)
			res.PlanLength = len(res.Plan)
			res.TimeTaken = time.Since(start)
			return res
		}

		for _, succ := range actions.Successors(m, cur) {
			k := succ.State.Key()
			if _, seen := explored[k]; seen {
				continue
			}
			explored[k] = struct{}{}
			cameFrom[k] = edge{prev: cur, action: succ.Action}
			frontier = append(frontier, succ.State)
			res.StatesGenerated++
		}
	}

	res.TimeTaken = time.Since(start)
	return res
}
