package maze

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"regexp"
	"strings"
)

// Start collects the dynamic objects found while parsing: the agent's
// starting tile plus the initial box and key placements. The state package
// turns a Start into the initial search state.
type Start struct {
	AgentPos Vec2i
	Boxes    map[string]Vec2i // box id -> starting coordinate
	Keys     map[string]Vec2i // key id -> floor coordinate
}

// Cell vocabulary of the maze CSV format.
var (
	boxToken  = regexp.MustCompile(`^B-[A-Z]$`)
	zoneToken = regexp.MustCompile(`^Z-[A-Z]$`)
	keyToken  = regexp.MustCompile(`^K-[0-9]$`)
	doorToken = regexp.MustCompile(`^D-[0-9]$`)
)

// Parse reads a maze grid in CSV form. Each cell is one of: " " (floor),
// "S" (agent start), "W" (wall), "B-<id>", "Z-<id>", "K-<id>", "D-<id>".
// The grid width is taken from the first row.
func Parse(r io.Reader) (*Maze, Start, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	rows, err := cr.ReadAll()
	if err != nil {
		return nil, Start{}, fmt.Errorf("read maze csv: %w", err)
	}
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, Start{}, fmt.Errorf("empty maze")
	}

	m := &Maze{
		Width:  len(rows[0]),
		Height: len(rows),
		Walls:  map[Vec2i]struct{}{},
		Zones:  map[string]Vec2i{},
		Doors:  map[string]Vec2i{},
	}
	start := Start{
		Boxes: map[string]Vec2i{},
		Keys:  map[string]Vec2i{},
	}

	for y, row := range rows {
		for x, cell := range row {
			pos := Vec2i{x, y}
			switch strings.TrimSpace(cell) {
			case "":
				// floor
			case "S":
				start.AgentPos = pos
			case "W":
				m.Walls[pos] = struct{}{}
			default:
				tok := strings.TrimSpace(cell)
				switch {
				case boxToken.MatchString(tok):
					start.Boxes[tok[2:]] = pos
				case zoneToken.MatchString(tok):
					m.Zones[tok[2:]] = pos
				case keyToken.MatchString(tok):
					start.Keys[tok[2:]] = pos
				case doorToken.MatchString(tok):
					m.Doors[tok[2:]] = pos
				default:
					return nil, Start{}, fmt.Errorf("invalid maze cell %q at (%d,%d)", cell, x, y)
				}
			}
		}
	}
	return m, start, nil
}

// ParseFile reads a maze CSV from disk.
func ParseFile(path string) (*Maze, Start, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, Start{}, fmt.Errorf("open maze: %w", err)
	}
	defer f.Close()
	return Parse(f)
}
