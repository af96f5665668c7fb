package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"sokoplan.ai/internal/maze"
	"sokoplan.ai/internal/replay"
	"sokoplan.ai/internal/state"
)

var (
	replayMaze string
	replayPlan string
	replayShow bool
)

var replayCmd = &cobra.Command{
	Use:   "replay",
	Short: "Replay a saved plan against a maze and check it reaches the goal",
	RunE: func(cmd *cobra.Command, args []string) error {
		m, start, err := maze.ParseFile(replayMaze)
		if err != nil {
			return err
		}
		b, err := os.ReadFile(replayPlan)
		if err != nil {
			return fmt.Errorf("read plan: %w", err)
		}
		var plan []string
		if err := json.Unmarshal(b, &plan); err != nil {
			return fmt.Errorf("parse plan: %w", err)
		}

		init := state.Initial(start)
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Executing %d actions...\n", len(plan))
		if _, err := replay.Validate(m, init, plan); err != nil {
			return fmt.Errorf("plan invalid: %w", err)
		}
		fmt.Fprintln(out, "Plan successfully reaches goal state!")
		if replayShow {
			stepThrough(cmd, m, init, plan)
		}
		return nil
	},
}

func init() {
	replayCmd.Flags().StringVar(&replayMaze, "maze", "", "path to maze CSV (required)")
	replayCmd.Flags().StringVar(&replayPlan, "plan", "", "path to plan JSON array (required)")
	replayCmd.Flags().BoolVar(&replayShow, "visualize", false, "step through frames")
	_ = replayCmd.MarkFlagRequired("maze")
	_ = replayCmd.MarkFlagRequired("plan")
}
