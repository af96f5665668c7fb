// Package runindex keeps a sqlite index of completed search runs. Writes go
// through a single writer goroutine so callers never block on sqlite;
// queries read the db directly.
package runindex

import (
	"context"
	"crypto/sha256"
	"database/sql"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"sokoplan.ai/internal/search"
)

// Run is one recorded search invocation.
type Run struct {
	ID              string        `json:"run_id"`
	CreatedAt       time.Time     `json:"created_at"`
	MazePath        string        `json:"maze_path,omitempty"`
	MazeDigest      string        `json:"maze_digest"`
	Algorithm       string        `json:"algorithm"`
	Heuristic       string        `json:"heuristic,omitempty"`
	Success         bool          `json:"success"`
	PlanLength      int           `json:"plan_length"`
	StatesGenerated int           `json:"states_generated"`
	StatesExpanded  int           `json:"states_expanded"`
	Duration        time.Duration `json:"-"`
	DurationMS      int64         `json:"duration_ms"`
	Plan            []string      `json:"plan,omitempty"`
}

// NewRun builds a Run from a search result with a fresh uuid.
func NewRun(mazePath string, mazeCSV []byte, algorithm, heuristic string, res search.Result) Run {
	sum := sha256.Sum256(mazeCSV)
	return Run{
		ID:              uuid.NewString(),
		CreatedAt:       time.Now().UTC(),
		MazePath:        mazePath,
		MazeDigest:      hex.EncodeToString(sum[:]),
		Algorithm:       algorithm,
		Heuristic:       heuristic,
		Success:         res.Success,
		PlanLength:      res.PlanLength,
		StatesGenerated: res.StatesGenerated,
		StatesExpanded:  res.StatesExpanded,
		Duration:        res.TimeTaken,
		DurationMS:      res.TimeTaken.Milliseconds(),
		Plan:            res.Plan,
	}
}

type Index struct {
	db *sql.DB

	ch     chan Run
	wg     sync.WaitGroup
	once   sync.Once
	closed atomic.Bool
}

func Open(path string) (*Index, error) {
	if path == "" {
		return nil, fmt.Errorf("empty db path")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	if err := initPragmas(db); err != nil {
		_ = db.Close()
		return nil, err
	}
	if err := initSchema(db); err != nil {
		_ = db.Close()
		return nil, err
	}

	ix := &Index{
		db: db,
		ch: make(chan Run, 256),
	}
	ix.wg.Add(1)
	go func() {
		defer ix.wg.Done()
		ix.loop()
	}()
	return ix, nil
}

func initPragmas(db *sql.DB) error {
	pragmas := []string{
		"PRAGMA journal_mode=WAL;",
		"PRAGMA synchronous=NORMAL;",
		"PRAGMA busy_timeout=5000;",
		"PRAGMA temp_store=MEMORY;",
	}
	for _, p := range pragmas {
		if _, err := db.Exec(p); err != nil {
			return err
		}
	}
	return nil
}

func initSchema(db *sql.DB) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS meta (
			key TEXT PRIMARY KEY,
			value TEXT NOT NULL
		);`,
		`CREATE TABLE IF NOT EXISTS runs (
			id TEXT PRIMARY KEY,
			created_at TEXT NOT NULL,
			maze_path TEXT,
			maze_digest TEXT NOT NULL,
			algorithm TEXT NOT NULL,
			heuristic TEXT,
			success INTEGER NOT NULL,
			plan_length INTEGER NOT NULL,
			states_generated INTEGER NOT NULL,
			states_expanded INTEGER NOT NULL,
			duration_ms INTEGER NOT NULL,
			plan_json TEXT NOT NULL
		);`,
		`CREATE INDEX IF NOT EXISTS idx_runs_created ON runs(created_at);`,
		`CREATE INDEX IF NOT EXISTS idx_runs_maze ON runs(maze_digest, created_at);`,
	}
	for _, s := range stmts {
		if _, err := db.Exec(s); err != nil {
			return err
		}
	}
	return nil
}

// Record queues a run for insertion. Blocks only if the writer falls a full
// buffer behind, which a planner workload never does in practice.
func (ix *Index) Record(r Run) {
	if ix == nil || ix.closed.Load() {
		return
	}
	ix.ch <- r
}

func (ix *Index) loop() {
	for r := range ix.ch {
		if err := ix.insert(r); err != nil {
			// An index insert failing must not take the run down with it;
			// the JSONL log already holds the record.
			continue
		}
	}
}

func (ix *Index) insert(r Run) error {
	planJSON, err := json.Marshal(r.Plan)
	if err != nil {
		return err
	}
	_, err = ix.db.Exec(
		`INSERT OR REPLACE INTO runs
		 (id, created_at, maze_path, maze_digest, algorithm, heuristic, success,
		  plan_length, states_generated, states_expanded, duration_ms, plan_json)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		r.ID, r.CreatedAt.Format(time.RFC3339Nano), r.MazePath, r.MazeDigest,
		r.Algorithm, r.Heuristic, boolInt(r.Success),
		r.PlanLength, r.StatesGenerated, r.StatesExpanded, r.DurationMS, string(planJSON),
	)
	return err
}

// RecentRuns returns up to limit runs, newest first.
func (ix *Index) RecentRuns(ctx context.Context, limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := ix.db.QueryContext(ctx,
		`SELECT id, created_at, maze_path, maze_digest, algorithm, heuristic,
		        success, plan_length, states_generated, states_expanded,
		        duration_ms, plan_json
		 FROM runs ORDER BY created_at DESC LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Run
	for rows.Next() {
		var r Run
		var createdAt, planJSON string
		var success int
		if err := rows.Scan(&r.ID, &createdAt, &r.MazePath, &r.MazeDigest,
			&r.Algorithm, &r.Heuristic, &success, &r.PlanLength,
			&r.StatesGenerated, &r.StatesExpanded, &r.DurationMS, &planJSON); err != nil {
			return nil, err
		}
		r.CreatedAt, _ = time.Parse(time.RFC3339Nano, createdAt)
		r.Success = success != 0
		r.Duration = time.Duration(r.DurationMS) * time.Millisecond
		if err := json.Unmarshal([]byte(planJSON), &r.Plan); err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

// Close drains pending writes and shuts the db.
func (ix *Index) Close() error {
	var err error
	ix.once.Do(func() {
		ix.closed.Store(true)
		close(ix.ch)
		ix.wg.Wait()
		err = ix.db.Close()
	})
	return err
}

func boolInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
