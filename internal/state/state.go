// Package state defines the immutable snapshot of a puzzle's dynamic
// configuration. Every transition builds a new State; nothing mutates one
// in place, so unchanged slices are shared freely between states.
package state

import (
	"fmt"
	"sort"
	"strings"

	"sokoplan.ai/internal/maze"
)

// Placement pairs an object id with its coordinate. Placement slices are
// kept in ascending id order at construction time so the canonical key is
// stable regardless of how the input maps iterated.
type Placement struct {
	ID  string
	Pos maze.Vec2i
}

type State struct {
	AgentPos   maze.Vec2i
	CarriedBox string      // "" when empty-handed
	Boxes      []Placement // ascending box id
	KeysOwned  []string    // ascending key id
	FloorKeys  []Placement // ascending key id
	G          int         // accumulated path cost
}

// Initial builds the starting state: agent at its start tile, nothing
// carried, no keys owned, g=0.
func Initial(s maze.Start) State {
	return State{
		AgentPos:  s.AgentPos,
		Boxes:     sortedPlacements(s.Boxes),
		FloorKeys: sortedPlacements(s.Keys),
	}
}

func sortedPlacements(m map[string]maze.Vec2i) []Placement {
	out := make([]Placement, 0, len(m))
	for id, pos := range m {
		out = append(out, Placement{ID: id, Pos: pos})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// Key is the canonical deduplication key: the full configuration excluding
// g. Two states reached at different costs share a key; that is the
// contract BFS/Greedy dedup and the A* better-g rule are built on.
func (s State) Key() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%d,%d|%s|", s.AgentPos.X, s.AgentPos.Y, s.CarriedBox)
	for _, p := range s.Boxes {
		fmt.Fprintf(&b, "%s:%d,%d;", p.ID, p.Pos.X, p.Pos.Y)
	}
	b.WriteByte('|')
	for _, id := range s.KeysOwned {
		b.WriteString(id)
		b.WriteByte(';')
	}
	b.WriteByte('|')
	for _, p := range s.FloorKeys {
		fmt.Fprintf(&b, "%s:%d,%d;", p.ID, p.Pos.X, p.Pos.Y)
	}
	return b.String()
}

// BoxPos returns the recorded position of a box. Note that while a box is
// carried its recorded position stays at the lift tile; only Drop rewrites
// it.
func (s State) BoxPos(id string) (maze.Vec2i, bool) {
	for _, p := range s.Boxes {
		if p.ID == id {
			return p.Pos, true
		}
	}
	return maze.Vec2i{}, false
}

func (s State) OwnsKey(id string) bool {
	for _, k := range s.KeysOwned {
		if k == id {
			return true
		}
	}
	return false
}
