package planview

import (
	"strings"
	"testing"

	"sokoplan.ai/internal/maze"
	"sokoplan.ai/internal/state"
)

func load(t *testing.T, csv string) (*maze.Maze, state.State) {
	t.Helper()
	m, start, err := maze.Parse(strings.NewReader(csv))
	if err != nil {
		t.Fatalf("parse maze: %v", err)
	}
	return m, state.Initial(start)
}

func TestRender_ObjectsAndFooter(t *testing.T) {
	m, init := load(t, "S,B-A,D-1, ,Z-A\n ,W,W,W,W\nK-1, , , , \n")
	out := Render(m, init)

	for _, want := range []string{"SOKO", "[BA]", "|D1|", "[ZA]", "[K1]", "████", "Keys: []", "Carrying:\n"} {
		if !strings.Contains(out, want) {
			t.Fatalf("render missing %q:\n%s", want, out)
		}
	}
}

func TestRender_CarriedBoxOnAgentTile(t *testing.T) {
	m, init := load(t, "S,B-A,Z-A\n , , \n")
	s := init
	s.AgentPos = maze.Vec2i{X: 1, Y: 0}
	s.CarriedBox = "A"
	out := Render(m, s)

	if !strings.Contains(out, "SO-A") {
		t.Fatalf("carried agent marker missing:\n%s", out)
	}
	if strings.Contains(out, "[BA]") {
		t.Fatalf("carried box should not render at its recorded tile:\n%s", out)
	}
	if !strings.Contains(out, "Carrying: Box A") {
		t.Fatalf("footer should name the carried box:\n%s", out)
	}
}

func TestRender_OwnedKeysSorted(t *testing.T) {
	m, init := load(t, "S, \n , \n")
	s := init
	s.KeysOwned = []string{"2", "1"}
	if !strings.Contains(Render(m, s), "Keys: [1, 2]") {
		t.Fatalf("owned keys should render sorted")
	}
}

func TestFrames_OnePerAction(t *testing.T) {
	m, init := load(t, "S,B-A,Z-A\n , , \n")
	plan := []string{"Right", "Lift Box A", "Right", "Drop Box A"}
	frames := Frames(m, init, plan)
	if len(frames) != len(plan) {
		t.Fatalf("frames: got %d want %d", len(frames), len(plan))
	}
	for i, f := range frames {
		if f.Action != plan[i] {
			t.Fatalf("frame %d action %q", i, f.Action)
		}
	}
	if !strings.Contains(frames[1].View, "SO-A") {
		t.Fatalf("frame after lift should show carrying marker")
	}
	if !strings.Contains(frames[3].View, "Carrying:\n") {
		t.Fatalf("final frame should show empty hands")
	}
}

func TestFrames_StopsAtBadAction(t *testing.T) {
	m, init := load(t, "S,B-A,Z-A\n , , \n")
	frames := Frames(m, init, []string{"Right", "Drop Box A", "Right"})
	if len(frames) != 1 {
		t.Fatalf("frames should stop before the inapplicable step, got %d", len(frames))
	}
}

func TestCenter(t *testing.T) {
	if got := center("S", 4); got != " S  " {
		t.Fatalf("center: %q", got)
	}
	if got := center("SOKO", 4); got != "SOKO" {
		t.Fatalf("full-width cell untouched: %q", got)
	}
}
