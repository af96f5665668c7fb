// Package search implements the four planning strategies over the
// action-generation rules: breadth-first, greedy best-first, A*, and
// enforced hill climbing. All runs are synchronous and single-threaded;
// frontier, explored set and predecessor map live and die inside one call.
package search

import (
	"errors"
	"strings"
	"time"

	"sokoplan.ai/internal/heuristics"
	"sokoplan.ai/internal/maze"
	"sokoplan.ai/internal/state"
)

// Algorithm names accepted by Run.
const (
	AlgorithmBFS    = "bfs"
	AlgorithmGreedy = "greedy"
	AlgorithmAStar  = "astar"
	AlgorithmEHC    = "ehc"
)

var (
	ErrUnknownAlgorithm  = errors.New("unknown search algorithm")
	ErrHeuristicRequired = errors.New("heuristic required for this algorithm")
)

// Result carries the plan (when found) and the run statistics. An exhausted
// search is not an error: Success stays false and the counters keep
// whatever was accumulated.
type Result struct {
	Plan            []string
	Success         bool
	TimeTaken       time.Duration
	StatesGenerated int
	StatesExpanded  int
	PlanLength      int
}

type algorithm struct {
	needsHeuristic bool
	run            func(*maze.Maze, state.State, heuristics.Func) Result
}

var algorithms = map[string]algorithm{
	AlgorithmBFS: {run: func(m *maze.Maze, init state.State, _ heuristics.Func) Result {
		return BreadthFirst(m, init)
	}},
	AlgorithmGreedy: {needsHeuristic: true, run: GreedyBestFirst},
	AlgorithmAStar:  {needsHeuristic: true, run: AStar},
	AlgorithmEHC:    {needsHeuristic: true, run: EnforcedHillClimbing},
}

// Run dispatches to one of the four strategies. Unknown names and missing
// heuristics are rejected before any search work happens.
func Run(m *maze.Maze, init state.State, name string, h heuristics.Func) (Result, error) {
	a, ok := algorithms[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return Result{}, ErrUnknownAlgorithm
	}
	if a.needsHeuristic && h == nil {
		return Result{}, ErrHeuristicRequired
	}
	return a.run(m, init, h), nil
}

// Names returns the accepted algorithm names, for CLI/help surfaces.
func Names() []string {
	return []string{AlgorithmBFS, AlgorithmGreedy, AlgorithmAStar, AlgorithmEHC}
}
