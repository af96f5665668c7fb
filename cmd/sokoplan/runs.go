package main

import (
	"context"
	"fmt"
	"path/filepath"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"sokoplan.ai/internal/persistence/runindex"
)

var runsLimit int

var runsCmd = &cobra.Command{
	Use:   "runs",
	Short: "List recorded search runs, newest first",
	RunE: func(cmd *cobra.Command, args []string) error {
		ix, err := runindex.Open(filepath.Join(cfg.DataDir, "runindex.db"))
		if err != nil {
			return err
		}
		defer ix.Close()

		runs, err := ix.RecentRuns(context.Background(), runsLimit)
		if err != nil {
			return err
		}
		if len(runs) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "no recorded runs")
			return nil
		}

		tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		fmt.Fprintln(tw, "WHEN\tALGO\tHEURISTIC\tOK\tPLAN\tGEN\tEXP\tMS\tMAZE")
		for _, r := range runs {
			fmt.Fprintf(tw, "%s\t%s\t%s\t%t\t%d\t%d\t%d\t%d\t%s\n",
				r.CreatedAt.Format("2006-01-02 15:04:05"), r.Algorithm, r.Heuristic,
				r.Success, r.PlanLength, r.StatesGenerated, r.StatesExpanded,
				r.DurationMS, r.MazePath)
		}
		return tw.Flush()
	},
}

func init() {
	runsCmd.Flags().IntVar(&runsLimit, "limit", 20, "max runs to list")
}
