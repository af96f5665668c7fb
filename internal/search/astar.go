package search

import (
	"time"

	"sokoplan.ai/internal/actions"
	"sokoplan.ai/internal/heuristics"
	"sokoplan.ai/internal/maze"
	"sokoplan.ai/internal/state"
)

// AStar expands by f = g + h. A configuration is enqueued when first seen
// or whenever a strictly better g is found for it; it joins the explored
// set only when popped, and stale pops (already-explored keys left behind
// by a better-g replacement) are discarded without re-expansion. With an
// admissible heuristic the returned plan is minimum-cost.
func AStar(m *maze.Maze, init state.State, h heuristics.Func) Result {
	var res Result
	start := time.Now()

	var frontier pqueue
	frontier.push(init, float64(init.G)+h(m, init))
	explored := map[string]struct{}{}
	cameFrom := map[string]edge{}
	bestG := map[string]int{init.Key(): init.G}
	res.StatesGenerated = 1

	for !frontier.empty() {
		cur := frontier.pop()
		curKey := cur.Key()
		if _, done := explored[curKey]; done {
			continue // stale entry
		}
		explored[curKey] = struct{}{}
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
			if _, done := explored[k]; done {
				continue
			}
			if g, seen := bestG[k]; seen && succ.State.G >= g {
				continue
			}
			bestG[k] = succ.State.G
			cameFrom[k] = edge{prev: cur, action: succ.Action}
			frontier.push(succ.State, float64(succ.State.G)+h(m, succ.State))
			res.StatesGenerated++
		}
	}

	res.TimeTaken = time.Since(start)
	return res
}
