// Package heuristics provides the two remaining-cost estimators. Both are
// pure functions of (maze, state) and O(number of boxes).
package heuristics

import (
	"fmt"
	"math"
	"strings"

	"sokoplan.ai/internal/maze"
	"sokoplan.ai/internal/state"
)

type Func func(*maze.Maze, state.State) float64

func manhattanDist(a, b maze.Vec2i) int {
	return abs(a.X-b.X) + abs(a.Y-b.Y)
}

func euclideanDist(a, b maze.Vec2i) float64 {
	dx := float64(a.X - b.X)
	dy := float64(a.Y - b.Y)
	return math.Sqrt(dx*dx + dy*dy)
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

// Manhattan estimates cost with L1 distances: carried box to its zone, or
// agent to the nearest misplaced box plus every misplaced box to its zone,
// plus 1 per door whose key is not yet owned. Intended to stay admissible
// under unit-cost moves; the flat key penalty is a known soft spot and is
// kept as designed.
func Manhattan(m *maze.Maze, s state.State) float64 {
	total := 0

	if s.CarriedBox != "" {
		if zone, ok := m.Zones[s.CarriedBox]; ok {
			total += manhattanDist(s.AgentPos, zone)
		}
	} else {
		minToBox := -1
		for _, b := range s.Boxes {
			zone, ok := m.Zones[b.ID]
			if !ok || zone == b.Pos {
				continue
			}
			if d := manhattanDist(s.AgentPos, b.Pos); minToBox < 0 || d < minToBox {
				minToBox = d
			}
			total += manhattanDist(b.Pos, zone)
		}
		if minToBox > 0 {
			total += minToBox
		}
	}

	total += missingKeys(m, s)
	return float64(total)
}

// Euclidean mirrors Manhattan's shape with L2 distances and deliberately
// non-admissible key weighting: 1.5 per missing key, plus 0.5 per key still
// on the floor whenever any key is missing. Useful only for greedy-style
// ordering.
func Euclidean(m *maze.Maze, s state.State) float64 {
	total := 0.0

	if s.CarriedBox != "" {
		if zone, ok := m.Zones[s.CarriedBox]; ok {
			total += euclideanDist(s.AgentPos, zone)
		}
	} else {
		minToBox := -1.0
		for _, b := range s.Boxes {
			zone, ok := m.Zones[b.ID]
			if !ok || zone == b.Pos {
				continue
			}
			if d := euclideanDist(s.AgentPos, b.Pos); minToBox < 0 || d < minToBox {
				minToBox = d
			}
			total += euclideanDist(b.Pos, zone)
		}
		if minToBox > 0 {
			total += minToBox
		}
	}

	if missing := missingKeys(m, s); missing > 0 {
		total += float64(missing) * 1.5
		total += float64(len(s.FloorKeys)) * 0.5
	}
	return total
}

func missingKeys(m *maze.Maze, s state.State) int {
	missing := 0
	for id := range m.Doors {
		if !s.OwnsKey(id) {
			missing++
		}
	}
	return missing
}

// ByName resolves a heuristic by its wire/CLI name.
func ByName(name string) (Func, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "manhattan":
		return Manhattan, nil
	case "euclidean":
		return Euclidean, nil
	default:
		return nil, fmt.Errorf("unknown heuristic %q (want manhattan or euclidean)", name)
	}
}
