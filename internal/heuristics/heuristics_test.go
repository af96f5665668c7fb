package heuristics

import (
	"math"
	"testing"

	"sokoplan.ai/internal/maze"
	"sokoplan.ai/internal/state"
)

func TestManhattan_TwoMisplacedBoxes(t *testing.T) {
	// Agent at origin; boxes at L1 distances 3 and 5, box-to-zone distances
	// 2 and 1, no doors: expect min(3,5) + 2 + 1 = 6.
	m := &maze.Maze{
		Width: 10, Height: 10,
		Walls: map[maze.Vec2i]struct{}{},
		Zones: map[string]maze.Vec2i{"A": {X: 5, Y: 0}, "B": {X: 4, Y: 2}},
		Doors: map[string]maze.Vec2i{},
	}
	s := state.State{
		AgentPos: maze.Vec2i{X: 0, Y: 0},
		Boxes: []state.Placement{
			{ID: "A", Pos: maze.Vec2i{X: 3, Y: 0}}, // agent dist 3, zone dist 2
			{ID: "B", Pos: maze.Vec2i{X: 4, Y: 1}}, // agent dist 5, zone dist 1
		},
	}
	if got := Manhattan(m, s); got != 6 {
		t.Fatalf("manhattan: got %v want 6", got)
	}
}

func TestManhattan_CarryingBox(t *testing.T) {
	m := &maze.Maze{
		Width: 8, Height: 8,
		Walls: map[maze.Vec2i]struct{}{},
		Zones: map[string]maze.Vec2i{"A": {X: 4, Y: 5}},
		Doors: map[string]maze.Vec2i{},
	}
	s := state.State{
		AgentPos:   maze.Vec2i{X: 1, Y: 1},
		CarriedBox: "A",
		Boxes:      []state.Placement{{ID: "A", Pos: maze.Vec2i{X: 1, Y: 1}}},
	}
	// Carrying: only agent-to-zone distance counts. |4-1| + |5-1| = 7.
	if got := Manhattan(m, s); got != 7 {
		t.Fatalf("manhattan carrying: got %v want 7", got)
	}
}

func TestManhattan_MissingKeyPenalty(t *testing.T) {
	m := &maze.Maze{
		Width: 4, Height: 4,
		Walls: map[maze.Vec2i]struct{}{},
		Zones: map[string]maze.Vec2i{"A": {X: 1, Y: 0}},
		Doors: map[string]maze.Vec2i{"1": {X: 2, Y: 2}, "2": {X: 3, Y: 3}},
	}
	s := state.State{
		AgentPos: maze.Vec2i{X: 0, Y: 0},
		Boxes:    []state.Placement{{ID: "A", Pos: maze.Vec2i{X: 1, Y: 0}}},
	}
	// All boxes placed; only the two missing keys contribute.
	if got := Manhattan(m, s); got != 2 {
		t.Fatalf("manhattan: got %v want 2", got)
	}
	s.KeysOwned = []string{"1"}
	if got := Manhattan(m, s); got != 1 {
		t.Fatalf("manhattan with one key: got %v want 1", got)
	}
}

func TestManhattan_ZeroAtGoal(t *testing.T) {
	m := &maze.Maze{
		Width: 3, Height: 3,
		Walls: map[maze.Vec2i]struct{}{},
		Zones: map[string]maze.Vec2i{"A": {X: 2, Y: 2}},
		Doors: map[string]maze.Vec2i{},
	}
	s := state.State{
		AgentPos: maze.Vec2i{X: 0, Y: 0},
		Boxes:    []state.Placement{{ID: "A", Pos: maze.Vec2i{X: 2, Y: 2}}},
	}
	if got := Manhattan(m, s); got != 0 {
		t.Fatalf("manhattan at goal: got %v want 0", got)
	}
}

func TestEuclidean_KeyWeighting(t *testing.T) {
	m := &maze.Maze{
		Width: 5, Height: 5,
		Walls: map[maze.Vec2i]struct{}{},
		Zones: map[string]maze.Vec2i{},
		Doors: map[string]maze.Vec2i{"1": {X: 1, Y: 1}, "2": {X: 2, Y: 2}},
	}
	s := state.State{
		AgentPos:  maze.Vec2i{X: 0, Y: 0},
		FloorKeys: []state.Placement{{ID: "1", Pos: maze.Vec2i{X: 1, Y: 1}}},
	}
	// 2 missing keys * 1.5 + 1 floor key * 0.5 = 3.5.
	if got := Euclidean(m, s); math.Abs(got-3.5) > 1e-9 {
		t.Fatalf("euclidean: got %v want 3.5", got)
	}

	// Once all keys are owned the floor-key term drops with the condition.
	s.KeysOwned = []string{"1", "2"}
	if got := Euclidean(m, s); got != 0 {
		t.Fatalf("euclidean all keys owned: got %v want 0", got)
	}
}

func TestEuclidean_CarryingUsesL2(t *testing.T) {
	m := &maze.Maze{
		Width: 8, Height: 8,
		Walls: map[maze.Vec2i]struct{}{},
		Zones: map[string]maze.Vec2i{"A": {X: 3, Y: 4}},
		Doors: map[string]maze.Vec2i{},
	}
	s := state.State{
		AgentPos:   maze.Vec2i{X: 0, Y: 0},
		CarriedBox: "A",
		Boxes:      []state.Placement{{ID: "A", Pos: maze.Vec2i{X: 0, Y: 0}}},
	}
	if got := Euclidean(m, s); math.Abs(got-5) > 1e-9 {
		t.Fatalf("euclidean carrying: got %v want 5", got)
	}
}

func TestByName(t *testing.T) {
	if _, err := ByName("manhattan"); err != nil {
		t.Fatalf("manhattan: %v", err)
	}
	if _, err := ByName(" Euclidean "); err != nil {
		t.Fatalf("euclidean with space/case: %v", err)
	}
	if _, err := ByName("chebyshev"); err == nil {
		t.Fatalf("expected error for unknown heuristic")
	}
}
