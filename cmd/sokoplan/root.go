package main

import (
	"github.com/spf13/cobra"

	"sokoplan.ai/internal/config"
)

var (
	cfgPath   string
	debugFlag bool
	cfg       config.Config
)

var rootCmd = &cobra.Command{
	Use:   "sokoplan",
	Short: "Automated planner for box/zone grid puzzles",
	Long: `sokoplan searches box/zone grid puzzles (walls, liftable boxes bound
to drop zones, keys and matching locked doors) for an action sequence that
places every box on its zone. Four strategies are available: bfs, greedy,
astar and ehc.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load(cfgPath)
		if err != nil {
			return err
		}
		if cmd.Root().PersistentFlags().Changed("debug") {
			cfg.Debug = debugFlag
		}
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", "", "path to sokoplan.yaml (optional)")
	rootCmd.PersistentFlags().BoolVar(&debugFlag, "debug", false, "verbose debug output")
	rootCmd.AddCommand(solveCmd, replayCmd, pddlCmd, serveCmd, runsCmd)
}

func debugf(format string, args ...any) {
	if cfg.Debug {
		rootCmd.PrintErrf("\t[DEBUG] "+format+"\n", args...)
	}
}
