package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"sokoplan.ai/internal/maze"
	"sokoplan.ai/internal/pddl"
)

var (
	pddlMaze string
	pddlName string
	pddlOut  string
)

var pddlCmd = &cobra.Command{
	Use:   "pddl",
	Short: "Export a maze as a PDDL problem file for the sokodomain domain",
	RunE: func(cmd *cobra.Command, args []string) error {
		m, start, err := maze.ParseFile(pddlMaze)
		if err != nil {
			return err
		}
		content := pddl.Problem(m, start, pddlName)
		if err := os.WriteFile(pddlOut, []byte(content), 0o644); err != nil {
			return fmt.Errorf("write problem file: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Problem file generated: %s\n", pddlOut)
		return nil
	},
}

func init() {
	pddlCmd.Flags().StringVar(&pddlMaze, "maze", "", "path to maze CSV (required)")
	pddlCmd.Flags().StringVar(&pddlName, "name", "problem", "PDDL problem name")
	pddlCmd.Flags().StringVar(&pddlOut, "out", "problem.pddl", "output path")
	_ = pddlCmd.MarkFlagRequired("maze")
}
