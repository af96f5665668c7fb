// Package planview renders a maze plus a state as fixed-width text frames
// for terminal playback.
package planview

import (
	"fmt"
	"sort"
	"strings"

	"sokoplan.ai/internal/maze"
	"sokoplan.ai/internal/replay"
	"sokoplan.ai/internal/state"
)

const wallCell = "████"

// Render draws the grid with zones, doors, floor keys, boxes and the agent,
// followed by an inventory footer. A carried box is rendered on the agent
// tile (its recorded position does not track the agent while carried).
func Render(m *maze.Maze, s state.State) string {
	grid := make([][]string, m.Height)
	for y := range grid {
		grid[y] = make([]string, m.Width)
		for x := range grid[y] {
			grid[y][x] = " "
		}
	}

	for w := range m.Walls {
		grid[w.Y][w.X] = wallCell
	}
	for _, id := range m.ZoneIDs() {
		p := m.Zones[id]
		grid[p.Y][p.X] = fmt.Sprintf("[Z%s]", id)
	}
	for _, id := range m.DoorIDs() {
		p := m.Doors[id]
		grid[p.Y][p.X] = fmt.Sprintf("|D%s|", id)
	}
	for _, k := range s.FloorKeys {
		grid[k.Pos.Y][k.Pos.X] = fmt.Sprintf("[K%s]", k.ID)
	}
	for _, b := range s.Boxes {
		if b.Pos == s.AgentPos && s.CarriedBox == b.ID {
			continue
		}
		grid[b.Pos.Y][b.Pos.X] = fmt.Sprintf("[B%s]", b.ID)
	}
	if s.CarriedBox != "" {
		grid[s.AgentPos.Y][s.AgentPos.X] = fmt.Sprintf("SO-%s", s.CarriedBox)
	} else {
		grid[s.AgentPos.Y][s.AgentPos.X] = "SOKO"
	}

	var b strings.Builder
	for _, row := range grid {
		for _, cell := range row {
			if cell == wallCell {
				b.WriteString(cell)
				continue
			}
			fmt.Fprintf(&b, "%s", center(cell, 4))
		}
		b.WriteByte('\n')
	}

	b.WriteString("\n======= INVENTORY =======\n")
	owned := append([]string(nil), s.KeysOwned...)
	sort.Strings(owned)
	fmt.Fprintf(&b, "    Keys: [%s]\n", strings.Join(owned, ", "))
	if s.CarriedBox != "" {
		fmt.Fprintf(&b, "    Carrying: Box %s\n", s.CarriedBox)
	} else {
		b.WriteString("    Carrying:\n")
	}
	return b.String()
}

// Frame is one playback step: the action that led into the view.
type Frame struct {
	Action string
	View   string
}

// Frames replays plan from init, rendering each post-action state. Stops
// early if an action does not apply; callers validate plans first.
func Frames(m *maze.Maze, init state.State, plan []string) []Frame {
	frames := make([]Frame, 0, len(plan))
	cur := init
	for _, action := range plan {
		next, ok := replay.Step(m, cur, action)
		if !ok {
			break
		}
		cur = next
		frames = append(frames, Frame{Action: action, View: Render(m, cur)})
	}
	return frames
}

func center(s string, width int) string {
	if len(s) >= width {
		return s
	}
	left := (width - len(s)) / 2
	right := width - len(s) - left
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", right)
}
