package search

import (
	"time"

	"sokoplan.ai/internal/actions"
	"sokoplan.ai/internal/heuristics"
	"sokoplan.ai/internal/maze"
	"sokoplan.ai/internal/state"
)

// EnforcedHillClimbing repeats a bounded breadth-first probe from the
// current state, committing to the first successor found that is a goal or
// strictly improves the heuristic (first improvement, not best). Each
// round's predecessor map is private and reconstruction stops at the
// round's root; round fragments concatenate into the final plan. If a probe
// exhausts without improvement the whole search fails: no backtracking, no
// restarts. That incompleteness is the algorithm, not a bug.
func EnforcedHillClimbing(m *maze.Maze, init state.State, h heuristics.Func) Result {
	var res Result
	start := time.Now()

	cur := init
	curH := h(m, cur)
	var plan []string
	res.StatesGenerated = 1

	for !actions.IsGoal(m, cur) {
		frontier := []state.State{cur}
		explored := map[string]struct{}{cur.Key(): {}}
		cameFrom := map[string]edge{}
		improved := false

		for len(frontier) > 0 && !improved {
			st := frontier[0]
			frontier = frontier[1:]
			res.StatesExpanded++

			for _, succ := range actions.Successors(m, st) {
				k := succ.State.Key()
				if _, seen := explored[k]; seen {
					continue
				}
				explored[k] = struct{}{}
				cameFrom[k] = edge{prev: st, action: succ.Action}
				res.StatesGenerated++

				if actions.IsGoal(m, succ.State) {
					plan = append(plan, segment(cameFrom, cur, succ.State)...)
					res.Success = true
					res.Plan = plan
					res.PlanLength = len(plan)
					res.TimeTaken = time.Since(start)
					return res
				}

				if succH := h(m, succ.State); succH < curH {
					plan = append(plan, segment(cameFrom, cur, succ.State)...)
					cur = succ.State
					curH = succH
					improved = true
					break
				}

				frontier = append(frontier, succ.State)
			}
		}

		if !improved {
			// Local dead end: every reachable state scores >= curH.
			res.TimeTaken = time.Since(start)
			return res
		}
	}

	res.Success = true
	res.Plan = plan
	res.PlanLength = len(plan)
	res.TimeTaken = time.Since(start)
	return res
}
