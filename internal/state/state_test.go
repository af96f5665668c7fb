package state

import (
	"testing"

	"sokoplan.ai/internal/maze"
)

func TestInitial_SortsPlacements(t *testing.T) {
	s := Initial(maze.Start{
		AgentPos: maze.Vec2i{X: 1, Y: 1},
		Boxes:    map[string]maze.Vec2i{"C": {X: 3, Y: 0}, "A": {X: 1, Y: 0}, "B": {X: 2, Y: 0}},
		Keys:     map[string]maze.Vec2i{"2": {X: 0, Y: 1}, "1": {X: 0, Y: 0}},
	})
	wantBoxes := []string{"A", "B", "C"}
	for i, id := range wantBoxes {
		if s.Boxes[i].ID != id {
			t.Fatalf("boxes not ascending: got %v", s.Boxes)
		}
	}
	if s.FloorKeys[0].ID != "1" || s.FloorKeys[1].ID != "2" {
		t.Fatalf("keys not ascending: got %v", s.FloorKeys)
	}
	if s.CarriedBox != "" || s.G != 0 || len(s.KeysOwned) != 0 {
		t.Fatalf("initial state not clean: %+v", s)
	}
}

func TestKey_StableAcrossInputOrder(t *testing.T) {
	a := Initial(maze.Start{
		AgentPos: maze.Vec2i{X: 2, Y: 3},
		Boxes:    map[string]maze.Vec2i{"A": {X: 1, Y: 0}, "B": {X: 2, Y: 0}},
		Keys:     map[string]maze.Vec2i{"1": {X: 0, Y: 0}, "2": {X: 5, Y: 5}},
	})
	b := Initial(maze.Start{
		AgentPos: maze.Vec2i{X: 2, Y: 3},
		Boxes:    map[string]maze.Vec2i{"B": {X: 2, Y: 0}, "A": {X: 1, Y: 0}},
		Keys:     map[string]maze.Vec2i{"2": {X: 5, Y: 5}, "1": {X: 0, Y: 0}},
	})
	if a.Key() != b.Key() {
		t.Fatalf("canonical key unstable:\n%s\n%s", a.Key(), b.Key())
	}
}

func TestKey_ExcludesCost(t *testing.T) {
	s := Initial(maze.Start{AgentPos: maze.Vec2i{X: 0, Y: 0}})
	cheap := s
	costly := s
	costly.G = 40
	if cheap.Key() != costly.Key() {
		t.Fatalf("g must not affect the canonical key")
	}
}

func TestKey_DistinguishesConfiguration(t *testing.T) {
	base := Initial(maze.Start{
		AgentPos: maze.Vec2i{X: 0, Y: 0},
		Boxes:    map[string]maze.Vec2i{"A": {X: 1, Y: 0}},
	})

	moved := base
	moved.AgentPos = maze.Vec2i{X: 1, Y: 0}
	if base.Key() == moved.Key() {
		t.Fatalf("agent position must affect key")
	}

	carrying := base
	carrying.CarriedBox = "A"
	if base.Key() == carrying.Key() {
		t.Fatalf("carried box must affect key")
	}

	keyed := base
	keyed.KeysOwned = []string{"1"}
	if base.Key() == keyed.Key() {
		t.Fatalf("owned keys must affect key")
	}
}

func TestBoxPosAndOwnsKey(t *testing.T) {
	s := Initial(maze.Start{
		Boxes: map[string]maze.Vec2i{"A": {X: 1, Y: 2}},
	})
	if pos, ok := s.BoxPos("A"); !ok || pos != (maze.Vec2i{X: 1, Y: 2}) {
		t.Fatalf("BoxPos(A): got %v %t", pos, ok)
	}
	if _, ok := s.BoxPos("Z"); ok {
		t.Fatalf("BoxPos(Z) should miss")
	}
	s.KeysOwned = []string{"1", "3"}
	if !s.OwnsKey("3") || s.OwnsKey("2") {
		t.Fatalf("OwnsKey wrong")
	}
}
