// Package actions enumerates legal transitions from a state and evaluates
// goal satisfaction. Successor order is fixed (moves, then take-key, then
// lift, then drop) so identical inputs always yield identical plans.
package actions

import (
	"fmt"
	"sort"

	"sokoplan.ai/internal/maze"
	"sokoplan.ai/internal/state"
)

// The four movement labels. Take/Lift/Drop labels carry the object id, e.g.
// "Take Key 1", "Lift Box A", "Drop Box A". Consumers pattern-match these
// exact strings.
const (
	ActionLeft  = "Left"
	ActionRight = "Right"
	ActionUp    = "Up"
	ActionDown  = "Down"
)

type Successor struct {
	State  state.State
	Action string
}

// CanMove reports whether the agent may step onto target: in bounds, not a
// wall, and any door there already unlocked by an owned key.
func CanMove(m *maze.Maze, s state.State, target maze.Vec2i) bool {
	if !m.InBounds(target) {
		return false
	}
	if m.IsWall(target) {
		return false
	}
	if doorID, ok := m.DoorIDAt(target); ok && !s.OwnsKey(doorID) {
		return false
	}
	return true
}

// Successors returns every legal (state, action) pair reachable in one
// step, in the fixed generation order.
func Successors(m *maze.Maze, s state.State) []Successor {
	var out []Successor

	moves := []struct {
		to    maze.Vec2i
		label string
	}{
		{s.AgentPos.Add(maze.Vec2i{X: -1}), ActionLeft},
		{s.AgentPos.Add(maze.Vec2i{X: 1}), ActionRight},
		{s.AgentPos.Add(maze.Vec2i{Y: -1}), ActionUp},
		{s.AgentPos.Add(maze.Vec2i{Y: 1}), ActionDown},
	}
	for _, mv := range moves {
		if CanMove(m, s, mv.to) {
			out = append(out, Successor{State: moveAgent(s, mv.to), Action: mv.label})
		}
	}

	for _, k := range s.FloorKeys {
		if k.Pos == s.AgentPos {
			out = append(out, Successor{
				State:  takeKey(s, k.ID),
				Action: fmt.Sprintf("Take Key %s", k.ID),
			})
		}
	}

	if s.CarriedBox == "" {
		for _, b := range s.Boxes {
			if b.Pos == s.AgentPos {
				out = append(out, Successor{
					State:  liftBox(s, b.ID),
					Action: fmt.Sprintf("Lift Box %s", b.ID),
				})
			}
		}
	}

	if s.CarriedBox != "" {
		if zone, ok := m.Zones[s.CarriedBox]; ok && s.AgentPos == zone {
			out = append(out, Successor{
				State:  dropBox(s, s.CarriedBox, zone),
				Action: fmt.Sprintf("Drop Box %s", s.CarriedBox),
			})
		}
	}

	return out
}

// IsGoal reports whether every box sits exactly on its matching zone. A box
// with no matching zone can never satisfy the test, so a malformed maze
// degrades to an ordinary failure to solve. The carried-box slot is ignored
// here; see DESIGN.md for the variant choice.
func IsGoal(m *maze.Maze, s state.State) bool {
	for _, b := range s.Boxes {
		zone, ok := m.Zones[b.ID]
		if !ok || zone != b.Pos {
			return false
		}
	}
	return true
}

func moveAgent(s state.State, to maze.Vec2i) state.State {
	next := s
	next.AgentPos = to
	next.G++
	return next
}

func takeKey(s state.State, keyID string) state.State {
	next := s
	next.FloorKeys = make([]state.Placement, 0, len(s.FloorKeys)-1)
	for _, k := range s.FloorKeys {
		if k.ID != keyID {
			next.FloorKeys = append(next.FloorKeys, k)
		}
	}
	next.KeysOwned = append(append([]string(nil), s.KeysOwned...), keyID)
	sort.Strings(next.KeysOwned)
	next.G++
	return next
}

func liftBox(s state.State, boxID string) state.State {
	next := s
	next.CarriedBox = boxID
	next.G++
	return next
}

func dropBox(s state.State, boxID string, zone maze.Vec2i) state.State {
	next := s
	next.CarriedBox = ""
	next.Boxes = make([]state.Placement, len(s.Boxes))
	for i, b := range s.Boxes {
		if b.ID == boxID {
			b.Pos = zone
		}
		next.Boxes[i] = b
	}
	next.G++
	return next
}
