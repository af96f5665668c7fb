package search

import (
	"time"

	"sokoplan.ai/internal/actions"
	"sokoplan.ai/internal/heuristics"
	"sokoplan.ai/internal/maze"
	"sokoplan.ai/internal/state"
)

// GreedyBestFirst expands the lowest-h state first. A state is marked
// explored the moment it is generated and never re-enqueued, even if a
// cheaper or better-scoring path to the same configuration turns up later.
// No optimality guarantee.
func GreedyBestFirst(m *maze.Maze, init state.State, h heuristics.Func) Result {
	var res Result
	start := time.Now()

	var frontier pqueue
	frontier.push(init, h(m, init))
	explored := map[string]struct{}{init.Key(): {}}
	cameFrom := map[string]edge{}
	res.StatesGenerated = 1

	for !frontier.empty() {
		cur := frontier.pop()
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
			frontier.push(succ.State, h(m, succ.State))
			res.StatesGenerated++
		}
	}

	res.TimeTaken = time.Since(start)
	return res
}
