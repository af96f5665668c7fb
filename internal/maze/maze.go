// Package maze holds the static layout of a puzzle: the grid bounds, the
// wall set, and the zone/door coordinate tables. A Maze is built once by the
// loader and read-only afterwards.
package maze

import "sort"

type Vec2i struct {
	X int
	Y int
}

func (v Vec2i) Add(o Vec2i) Vec2i { return Vec2i{v.X + o.X, v.Y + o.Y} }

type Maze struct {
	Width  int
	Height int
	Walls  map[Vec2i]struct{}
	Zones  map[string]Vec2i // box id -> drop zone coordinate
	Doors  map[string]Vec2i // door id -> door coordinate
}

func (m *Maze) InBounds(p Vec2i) bool {
	return p.X >= 0 && p.X < m.Width && p.Y >= 0 && p.Y < m.Height
}

func (m *Maze) IsWall(p Vec2i) bool {
	_, ok := m.Walls[p]
	return ok
}

// DoorIDAt returns the id of the door occupying p, if any.
func (m *Maze) DoorIDAt(p Vec2i) (string, bool) {
	for id, pos := range m.Doors {
		if pos == p {
			return id, true
		}
	}
	return "", false
}

// DoorIDs returns all door ids in ascending order.
func (m *Maze) DoorIDs() []string {
	ids := make([]string, 0, len(m.Doors))
	for id := range m.Doors {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// ZoneIDs returns all zone ids in ascending order.
func (m *Maze) ZoneIDs() []string {
	ids := make([]string, 0, len(m.Zones))
	for id := range m.Zones {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
