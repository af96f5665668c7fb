// Package pddl exports a maze as a PDDL problem file for the sokodomain
// planning domain: tile objects with adjacency facts, box/zone/key/door
// objects and placements, opens/matches relationships, and a box-at-zone
// goal conjunction.
package pddl

import (
	"fmt"
	"sort"
	"strings"

	"sokoplan.ai/internal/maze"
)

// Problem generates the problem file contents for the given maze and start
// configuration.
func Problem(m *maze.Maze, start maze.Start, name string) string {
	tiles := walkableTiles(m)
	tileName := func(p maze.Vec2i) string { return fmt.Sprintf("tile_%d_%d", p.X, p.Y) }

	boxIDs := sortedIDs(start.Boxes)
	keyIDs := sortedIDs(start.Keys)
	zoneIDs := m.ZoneIDs()
	doorIDs := m.DoorIDs()

	var b strings.Builder
	fmt.Fprintf(&b, "(define (problem %s)\n", name)
	b.WriteString("    (:domain sokodomain)\n\n")

	b.WriteString("    (:objects\n")
	b.WriteString("        ;; Tiles\n")
	for _, t := range tiles {
		fmt.Fprintf(&b, "        %s - tile\n", tileName(t))
	}
	b.WriteString("        ;; Agent\n")
	b.WriteString("        soko - soko\n")
	if len(boxIDs) > 0 {
		b.WriteString("        ;; Boxes\n")
		for _, id := range boxIDs {
			fmt.Fprintf(&b, "        box%s - box\n", id)
		}
	}
	if len(keyIDs) > 0 {
		b.WriteString("        ;; Keys\n")
		for _, id := range keyIDs {
			fmt.Fprintf(&b, "        key%s - key\n", id)
		}
	}
	if len(zoneIDs) > 0 {
		b.WriteString("        ;; Zones\n")
		for _, id := range zoneIDs {
			fmt.Fprintf(&b, "        zone%s - zone\n", id)
		}
	}
	if len(doorIDs) > 0 {
		b.WriteString("        ;; Doors\n")
		for _, id := range doorIDs {
			fmt.Fprintf(&b, "        door%s - door\n", id)
		}
	}
	b.WriteString("    )\n\n")

	b.WriteString("    (:init\n")
	b.WriteString("        ;; Soko's initial position\n")
	fmt.Fprintf(&b, "        (at soko %s)\n\n", tileName(start.AgentPos))
	if len(boxIDs) > 0 {
		b.WriteString("        ;; Box positions\n")
		for _, id := range boxIDs {
			fmt.Fprintf(&b, "        (boxat box%s %s)\n", id, tileName(start.Boxes[id]))
		}
		b.WriteByte('\n')
	}
	if len(keyIDs) > 0 {
		b.WriteString("        ;; Key positions\n")
		for _, id := range keyIDs {
			fmt.Fprintf(&b, "        (keyat key%s %s)\n", id, tileName(start.Keys[id]))
		}
		b.WriteByte('\n')
	}
	if len(zoneIDs) > 0 {
		b.WriteString("        ;; Zone positions\n")
		for _, id := range zoneIDs {
			fmt.Fprintf(&b, "        (zoneat zone%s %s)\n", id, tileName(m.Zones[id]))
		}
		b.WriteByte('\n')
	}
	if len(doorIDs) > 0 {
		b.WriteString("        ;; Door positions and lock status\n")
		for _, id := range doorIDs {
			fmt.Fprintf(&b, "        (doorat door%s %s)\n", id, tileName(m.Doors[id]))
			fmt.Fprintf(&b, "        (doorlocked door%s)\n", id)
		}
		b.WriteByte('\n')
	}

	b.WriteString("        ;; Path adjacencies\n")
	walkable := map[maze.Vec2i]struct{}{}
	for _, t := range tiles {
		walkable[t] = struct{}{}
	}
	for _, t := range tiles {
		for _, n := range neighbors(t) {
			if _, ok := walkable[n]; ok {
				fmt.Fprintf(&b, "        (path %s %s)\n", tileName(t), tileName(n))
			}
		}
	}
	b.WriteByte('\n')

	if len(keyIDs) > 0 && len(doorIDs) > 0 {
		b.WriteString("        ;; Key-Door relationships\n")
		for _, id := range keyIDs {
			if _, ok := m.Doors[id]; ok {
				fmt.Fprintf(&b, "        (opens key%s door%s)\n", id, id)
			}
		}
		b.WriteByte('\n')
	}
	if len(boxIDs) > 0 && len(zoneIDs) > 0 {
		b.WriteString("        ;; Box-Zone relationships\n")
		for _, id := range boxIDs {
			if _, ok := m.Zones[id]; ok {
				fmt.Fprintf(&b, "        (matches box%s zone%s)\n", id, id)
			}
		}
		b.WriteByte('\n')
	}
	b.WriteString("    )\n\n")

	b.WriteString("    (:goal\n")
	goals := 0
	for _, id := range boxIDs {
		if _, ok := m.Zones[id]; ok {
			goals++
		}
	}
	if goals > 0 {
		b.WriteString("        (and\n")
		for _, id := range boxIDs {
			if zone, ok := m.Zones[id]; ok {
				fmt.Fprintf(&b, "            (boxat box%s %s)\n", id, tileName(zone))
			}
		}
		b.WriteString("        )\n")
	} else {
		b.WriteString("        (and)  ;; No goal specified\n")
	}
	b.WriteString("    )\n")
	b.WriteString(")\n")
	return b.String()
}

// walkableTiles lists every in-bounds non-wall coordinate in ascending
// (x, y) order. Boxes, zones, keys, doors and the agent all stand on
// walkable tiles, so this matches the union of object positions and floor.
func walkableTiles(m *maze.Maze) []maze.Vec2i {
	var tiles []maze.Vec2i
	for x := 0; x < m.Width; x++ {
		for y := 0; y < m.Height; y++ {
			p := maze.Vec2i{X: x, Y: y}
			if !m.IsWall(p) {
				tiles = append(tiles, p)
			}
		}
	}
	sort.Slice(tiles, func(i, j int) bool {
		if tiles[i].X != tiles[j].X {
			return tiles[i].X < tiles[j].X
		}
		return tiles[i].Y < tiles[j].Y
	})
	return tiles
}

func neighbors(p maze.Vec2i) []maze.Vec2i {
	out := []maze.Vec2i{
		{X: p.X, Y: p.Y - 1},
		{X: p.X, Y: p.Y + 1},
		{X: p.X - 1, Y: p.Y},
		{X: p.X + 1, Y: p.Y},
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].X != out[j].X {
			return out[i].X < out[j].X
		}
		return out[i].Y < out[j].Y
	})
	return out
}

func sortedIDs(m map[string]maze.Vec2i) []string {
	ids := make([]string, 0, len(m))
	for id := range m {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
