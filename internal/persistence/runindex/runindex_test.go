package runindex

import (
	"context"
	"path/filepath"
	"reflect"
	"testing"
	"time"

	"sokoplan.ai/internal/search"
)

func sampleResult() search.Result {
	return search.Result{
		Plan:            []string{"Right", "Lift Box A", "Right", "Drop Box A"},
		Success:         true,
		TimeTaken:       3 * time.Millisecond,
		StatesGenerated: 12,
		StatesExpanded:  5,
		PlanLength:      4,
	}
}

func TestNewRun_PopulatesFields(t *testing.T) {
	r := NewRun("mazes/simple.csv", []byte("S,B-A,Z-A\n"), "astar", "manhattan", sampleResult())
	if r.ID == "" {
		t.Fatalf("run id must be set")
	}
	if len(r.MazeDigest) != 64 {
		t.Fatalf("digest should be sha256 hex: %q", r.MazeDigest)
	}
	if r.DurationMS != 3 {
		t.Fatalf("duration ms: %d", r.DurationMS)
	}
	if r.Algorithm != "astar" || r.Heuristic != "manhattan" || !r.Success {
		t.Fatalf("run: %+v", r)
	}

	// Same maze bytes, same digest; different bytes, different digest.
	r2 := NewRun("", []byte("S,B-A,Z-A\n"), "bfs", "", sampleResult())
	if r2.MazeDigest != r.MazeDigest {
		t.Fatalf("digest should depend only on maze bytes")
	}
	r3 := NewRun("", []byte("S\n"), "bfs", "", sampleResult())
	if r3.MazeDigest == r.MazeDigest {
		t.Fatalf("distinct mazes must not collide")
	}
	if r.ID == r2.ID {
		t.Fatalf("run ids must be unique")
	}
}

func TestIndex_RecordAndQuery(t *testing.T) {
	path := filepath.Join(t.TempDir(), "runs.db")

	ix, err := Open(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}

	first := NewRun("mazes/simple.csv", []byte("S,B-A,Z-A\n"), "bfs", "", sampleResult())
	second := NewRun("mazes/simple.csv", []byte("S,B-A,Z-A\n"), "ehc", "euclidean", search.Result{
		Success: false, StatesGenerated: 7, StatesExpanded: 7,
	})
	second.CreatedAt = first.CreatedAt.Add(time.Second)

	ix.Record(first)
	ix.Record(second)
	if err := ix.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}

	// Reopen: rows survive the process boundary.
	ix, err = Open(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer ix.Close()

	runs, err := ix.RecentRuns(context.Background(), 10)
	if err != nil {
		t.Fatalf("recent: %v", err)
	}
	if len(runs) != 2 {
		t.Fatalf("runs: got %d want 2", len(runs))
	}
	// Newest first.
	if runs[0].ID != second.ID || runs[1].ID != first.ID {
		t.Fatalf("order: %s, %s", runs[0].ID, runs[1].ID)
	}
	if runs[0].Success || !runs[1].Success {
		t.Fatalf("success flags lost")
	}
	if !reflect.DeepEqual(runs[1].Plan, first.Plan) {
		t.Fatalf("plan round trip: %v", runs[1].Plan)
	}
	if runs[1].Duration != 3*time.Millisecond {
		t.Fatalf("duration round trip: %v", runs[1].Duration)
	}
}

func TestIndex_RecordAfterCloseIsNoop(t *testing.T) {
	path := filepath.Join(t.TempDir(), "runs.db")
	ix, err := Open(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	if err := ix.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}
	// Must not panic on the closed channel.
	ix.Record(NewRun("", []byte("S\n"), "bfs", "", sampleResult()))
}

func TestIndex_RecentRunsLimit(t *testing.T) {
	path := filepath.Join(t.TempDir(), "runs.db")
	ix, err := Open(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer ix.Close()

	base := time.Now().UTC()
	for i := 0; i < 5; i++ {
		r := NewRun("", []byte("S\n"), "bfs", "", sampleResult())
		r.CreatedAt = base.Add(time.Duration(i) * time.Second)
		if err := ix.insert(r); err != nil {
			t.Fatalf("insert: %v", err)
		}
	}
	runs, err := ix.RecentRuns(context.Background(), 3)
	if err != nil {
		t.Fatalf("recent: %v", err)
	}
	if len(runs) != 3 {
		t.Fatalf("limit not applied: %d", len(runs))
	}
}
