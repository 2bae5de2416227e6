package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"swiftqa/browser"
	"swiftqa/config"
	"swiftqa/executor"
	"swiftqa/report"
	"swiftqa/scenario"
	"swiftqa/suite"
)

type runOptions struct {
	groups      []string
	ids         []string
	categories  []string
	qualities   []string
	lengths     []string
	concurrency int
	headed      bool
	reportDir   string
	history     string
	catalog     string
}

var runFlags runOptions

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the scenario catalog against the translator",
	Args:  cobra.NoArgs,
	RunE:  runRun,
}

func init() {
	f := runCmd.Flags()
	addSelectionFlags(f)
	f.IntVarP(&runFlags.concurrency, "concurrency", "c", 0, "cases in flight (default from config)")
	f.BoolVar(&runFlags.headed, "headed", false, "show the browser window")
	f.StringVar(&runFlags.reportDir, "report-dir", "", "write attachments and results under this directory")
	f.StringVar(&runFlags.history, "history", "", "record the run in this SQLite database")

	addSelectionFlags(listCmd.Flags())
}

// addSelectionFlags registers the flags that pick scenarios. run and list
// share them.
func addSelectionFlags(f *pflag.FlagSet) {
	f.StringSliceVar(&runFlags.groups, "group", nil, "only these groups (positive, negative, ui)")
	f.StringSliceVar(&runFlags.ids, "id", nil, "only these scenario ids")
	f.StringSliceVar(&runFlags.categories, "category", nil, "only these categories")
	f.StringSliceVar(&runFlags.qualities, "quality", nil, "only these qualities (accuracy, robustness, formatting)")
	f.StringSliceVar(&runFlags.lengths, "length", nil, "only these lengths (S, M, L)")
	f.StringVar(&runFlags.catalog, "catalog", "", "TOML file with extra scenarios")
}

// applyRunFlags layers command-line overrides onto cfg.
func applyRunFlags(cfg *config.Config) {
	if runFlags.concurrency > 0 {
		cfg.Run.Concurrency = runFlags.concurrency
	}
	if runFlags.headed {
		headless := false
		cfg.Browser.Headless = &headless
	}
	if runFlags.reportDir != "" {
		cfg.Run.ReportDir = runFlags.reportDir
	}
	if runFlags.history != "" {
		cfg.Run.HistoryDB = runFlags.history
	}
	if runFlags.catalog != "" {
		cfg.Run.CatalogFile = runFlags.catalog
	}
}

// selectCases loads the catalog and applies the selection flags.
func selectCases(cfg *config.Config) (scenario.Catalog, error) {
	catalog := scenario.Default()
	if cfg.Run.CatalogFile != "" {
		extra, err := scenario.LoadFile(cfg.Run.CatalogFile)
		if err != nil {
			return scenario.Catalog{}, err
		}
		if catalog, err = catalog.Merge(extra); err != nil {
			return scenario.Catalog{}, err
		}
	}

	filter, err := buildFilter()
	if err != nil {
		return scenario.Catalog{}, err
	}
	return catalog.Filter(filter), nil
}

func buildFilter() (scenario.Filter, error) {
	f := scenario.Filter{
		IDs:        runFlags.ids,
		Categories: runFlags.categories,
	}
	for _, s := range runFlags.groups {
		g, err := scenario.ParseGroup(s)
		if err != nil {
			return f, err
		}
		f.Groups = append(f.Groups, g)
	}
	for _, s := range runFlags.qualities {
		q, err := scenario.ParseQuality(s)
		if err != nil {
			return f, err
		}
		f.Qualities = append(f.Qualities, q)
	}
	for _, s := range runFlags.lengths {
		l, err := scenario.ParseLength(s)
		if err != nil {
			return f, err
		}
		f.Lengths = append(f.Lengths, l)
	}
	return f, nil
}

func runRun(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	applyRunFlags(cfg)
	if err := cfg.Validate(); err != nil {
		return err
	}
	level, err := cfg.LogLevel()
	if err != nil {
		return err
	}

	catalog, err := selectCases(cfg)
	if err != nil {
		return err
	}
	if catalog.Len() == 0 {
		return fmt.Errorf("no scenarios match the selection")
	}

	runID := uuid.NewString()
	started := time.Now()
	target := cfg.TargetPage()

	sinks := []report.Sink{}

	var dirSink *report.DirSink
	if cfg.Run.ReportDir != "" {
		if dirSink, err = report.NewDirSink(cfg.Run.ReportDir, runID); err != nil {
			return err
		}
		logFile, err := os.Create(filepath.Join(dirSink.Dir(), "run.log"))
		if err != nil {
			return fmt.Errorf("creating run log: %w", err)
		}
		defer logFile.Close()
		setupLogging(level, jsonLog(logFile, level))
		sinks = append(sinks, dirSink)
	} else {
		setupLogging(level)
	}

	log := slog.With("comp", "main")

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var dbSink *report.DBSink
	if cfg.Run.HistoryDB != "" {
		db, err := report.OpenDB(cfg.Run.HistoryDB)
		if err != nil {
			return err
		}
		defer db.Close()
		if dbSink, err = db.StartRun(ctx, runID, target.URL, started); err != nil {
			return err
		}
		sinks = append(sinks, dbSink)
	}

	// the log sink goes last so its lines follow the persisted artifacts
	sinks = append(sinks, report.NewLogSink(slog.Default()))

	log.Info("starting run", "run", runID, "target", target.URL, "cases", catalog.Len(), "concurrency", cfg.Run.Concurrency)

	b, err := browser.Launch(ctx, cfg.BrowserOptions(), target)
	if err != nil {
		return err
	}
	defer b.Close()

	exec := executor.New(cfg.ExecutorTiming(), report.Multi(sinks...))
	runner := suite.NewRunner(suite.BrowserOpener(b), exec, cfg.Run.Concurrency, cfg.CaseTimeout())
	outcomes := runner.Run(ctx, catalog.Cases())

	results := make([]report.Result, 0, len(outcomes))
	for _, o := range outcomes {
		results = append(results, o.Result())
	}

	// finishing must survive an interrupted run
	finishCtx := context.WithoutCancel(ctx)
	if dbSink != nil {
		if err := dbSink.Finish(finishCtx, time.Now()); err != nil {
			log.Error("error finishing run history", "error", err)
		}
	}
	if dirSink != nil {
		if err := dirSink.Close(); err != nil {
			log.Error("error writing results", "error", err)
		}
	}

	report.WriteSummary(os.Stdout, results, report.TerminalWidth(os.Stdout))
	log.Info("run finished", "run", runID, "elapsed", time.Since(started))

	if ctx.Err() != nil {
		return fmt.Errorf("run interrupted after %d of %d cases", len(outcomes), catalog.Len())
	}
	for _, r := range results {
		if !r.Passed() {
			return errCasesFailed
		}
	}
	return nil
}
