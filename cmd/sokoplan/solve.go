package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"sokoplan.ai/internal/heuristics"
	"sokoplan.ai/internal/maze"
	persistlog "sokoplan.ai/internal/persistence/log"
	"sokoplan.ai/internal/persistence/runindex"
	"sokoplan.ai/internal/planview"
	"sokoplan.ai/internal/replay"
	"sokoplan.ai/internal/search"
	"sokoplan.ai/internal/state"
)

var algoNames = map[string]string{
	search.AlgorithmBFS:    "Breadth-First Search",
	search.AlgorithmGreedy: "Greedy Best-First Search",
	search.AlgorithmAStar:  "A* Search",
	search.AlgorithmEHC:    "Enforced Hill Climbing",
}

var (
	solveMaze      string
	solveAlgorithm string
	solveHeuristic string
	solveValidate  bool
	solveVisualize bool
	solvePlanOut   string
	solveNoRecord  bool
)

var solveCmd = &cobra.Command{
	Use:   "solve",
	Short: "Run one search over a maze file",
	RunE:  runSolve,
}

func init() {
	solveCmd.Flags().StringVar(&solveMaze, "maze", "", "path to maze CSV (required)")
	solveCmd.Flags().StringVar(&solveAlgorithm, "algorithm", "", "bfs, greedy, astar or ehc (default from config)")
	solveCmd.Flags().StringVar(&solveHeuristic, "heuristic", "", "manhattan or euclidean (default from config)")
	solveCmd.Flags().BoolVar(&solveValidate, "validate", true, "replay the plan to confirm it reaches the goal")
	solveCmd.Flags().BoolVar(&solveVisualize, "visualize", false, "step through the plan frame by frame")
	solveCmd.Flags().StringVar(&solvePlanOut, "save-plan", "", "write the plan as a JSON array to this path")
	solveCmd.Flags().BoolVar(&solveNoRecord, "no-record", false, "skip recording the run to the data dir")
	_ = solveCmd.MarkFlagRequired("maze")
}

func runSolve(cmd *cobra.Command, args []string) error {
	algorithm := solveAlgorithm
	if algorithm == "" {
		algorithm = cfg.DefaultAlgorithm
	}
	heuristicName := solveHeuristic
	if heuristicName == "" && algorithm != search.AlgorithmBFS {
		heuristicName = cfg.DefaultHeuristic
	}

	raw, err := os.ReadFile(solveMaze)
	if err != nil {
		return fmt.Errorf("read maze: %w", err)
	}
	m, start, err := maze.ParseFile(solveMaze)
	if err != nil {
		return err
	}
	init := state.Initial(start)

	debugf("walls: %d", len(m.Walls))
	debugf("zones: %v", m.Zones)
	debugf("doors: %v", m.Doors)
	debugf("agent: %v boxes: %v floor keys: %v", init.AgentPos, init.Boxes, init.FloorKeys)

	var h heuristics.Func
	if heuristicName != "" {
		h, err = heuristics.ByName(heuristicName)
		if err != nil {
			return err
		}
	}

	res, err := search.Run(m, init, algorithm, h)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, "\n======= SEARCH RESULTS =======")
	fmt.Fprintf(out, "Algorithm: %s\n", algoNames[algorithm])
	if heuristicName != "" {
		fmt.Fprintf(out, "Heuristic: %s\n", heuristicName)
	}
	fmt.Fprintf(out, "Time taken: %v\n", res.TimeTaken)
	fmt.Fprintf(out, "States generated: %d\n", res.StatesGenerated)
	fmt.Fprintf(out, "States expanded: %d\n", res.StatesExpanded)

	if !res.Success {
		fmt.Fprintln(out, "No solution found!")
	} else {
		fmt.Fprintf(out, "Plan length: %d steps\n", res.PlanLength)
		for i, action := range res.Plan {
			debugf("%d. %s", i+1, action)
		}
		if solveValidate {
			if _, err := replay.Validate(m, init, res.Plan); err != nil {
				fmt.Fprintf(out, "Plan valid: NO (%v)\n", err)
			} else {
				fmt.Fprintln(out, "Plan valid: YES")
			}
		}
	}

	if !solveNoRecord && cfg.RecordRuns {
		recordRun(solveMaze, raw, algorithm, heuristicName, res)
	}

	if solvePlanOut != "" && res.Success {
		b, err := json.MarshalIndent(res.Plan, "", "  ")
		if err != nil {
			return err
		}
		if err := os.WriteFile(solvePlanOut, append(b, '\n'), 0o644); err != nil {
			return fmt.Errorf("save plan: %w", err)
		}
	}

	if solveVisualize && res.Success {
		stepThrough(cmd, m, init, res.Plan)
	}
	return nil
}

func recordRun(mazePath string, mazeCSV []byte, algorithm, heuristic string, res search.Result) {
	run := runindex.NewRun(mazePath, mazeCSV, algorithm, heuristic, res)

	logDir := filepath.Join(cfg.DataDir, "runs")
	lw := persistlog.NewWriter(logDir, "runs")
	if err := lw.Write(run); err != nil {
		debugf("run log: %v", err)
	}
	_ = lw.Close()

	ix, err := runindex.Open(filepath.Join(cfg.DataDir, "runindex.db"))
	if err != nil {
		debugf("run index: %v", err)
		return
	}
	ix.Record(run)
	_ = ix.Close()
}

func stepThrough(cmd *cobra.Command, m *maze.Maze, init state.State, plan []string) {
	out := cmd.OutOrStdout()
	in := bufio.NewScanner(cmd.InOrStdin())
	for i, fr := range planview.Frames(m, init, plan) {
		fmt.Fprintln(out, "======= Plan Execution =======")
		fmt.Fprintln(out, fr.View)
		fmt.Fprintf(out, "Step %d/%d: %s\n", i+1, len(plan), fr.Action)
		fmt.Fprint(out, "Press Enter for next step...")
		if !in.Scan() {
			break
		}
	}
	fmt.Fprintln(out, "Plan execution complete!")
}
