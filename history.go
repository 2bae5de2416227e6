package main

import (
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"swiftqa/report"
)

var historyFlags struct {
	db     string
	limit  int
	run    string
	failed bool
}

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recorded runs, or the results of one run",
	Args:  cobra.NoArgs,
	RunE:  runHistory,
}

func init() {
	f := historyCmd.Flags()
	f.StringVar(&historyFlags.db, "history", "", "SQLite database (default from config)")
	f.IntVar(&historyFlags.limit, "limit", 10, "number of runs to show")
	f.StringVar(&historyFlags.run, "run", "", "show the results of this run")
	f.BoolVar(&historyFlags.failed, "failed", false, "with --run, only failed cases")
}

func runHistory(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	path := historyFlags.db
	if path == "" {
		path = cfg.Run.HistoryDB
	}
	if path == "" {
		return fmt.Errorf("no history database: pass --history or set run.historyDB")
	}

	db, err := report.OpenDB(path)
	if err != nil {
		return err
	}
	defer db.Close()

	ctx := cmd.Context()
	tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)

	if historyFlags.run != "" {
		results, err := db.Results(ctx, historyFlags.run)
		if err != nil {
			return err
		}
		if len(results) == 0 {
			return fmt.Errorf("no results for run %s", historyFlags.run)
		}
		fmt.Fprintln(tw, "CASE\tVERDICT\tCLASS\tELAPSED\tERROR")
		for _, r := range results {
			if historyFlags.failed && r.Passed() {
				continue
			}
			fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n",
				r.CaseID, r.Verdict, r.Class, r.Elapsed.Round(time.Millisecond), r.Error)
		}
		return tw.Flush()
	}

	runs, err := db.Runs(ctx, historyFlags.limit)
	if err != nil {
		return err
	}
	fmt.Fprintln(tw, "RUN\tSTARTED\tDURATION\tTOTAL\tPASSED\tFAILED")
	for _, r := range runs {
		duration := "running"
		if r.FinishedAt.Valid {
			duration = r.FinishedAt.Time.Sub(r.StartedAt).Round(time.Second).String()
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%d\t%d\t%d\n",
			r.ID, r.StartedAt.Local().Format("2006-01-02 15:04"), duration, r.Total, r.Passed, r.Failed)
	}
	return tw.Flush()
}
