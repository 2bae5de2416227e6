package main

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"swiftqa/browser"
	"swiftqa/translator"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Verify the translator page still has the expected input and output",
	Args:  cobra.NoArgs,
	RunE:  runCheck,
}

// runCheck tries the static HTML first and falls back to a rendered
// snapshot when the page builds its panels in script.
func runCheck(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	level, err := cfg.LogLevel()
	if err != nil {
		return err
	}
	setupLogging(level)
	log := slog.With("comp", "check")

	ctx := cmd.Context()
	target := cfg.TargetPage()
	opts := cfg.BrowserOptions()
	out := cmd.OutOrStdout()

	static, err := browser.FetchStatic(ctx, target.URL, opts)
	if err != nil {
		return err
	}
	err = target.Check(static)
	if err == nil {
		fmt.Fprintf(out, "ok: %s (static html)\n", target.URL)
		return nil
	}
	if !errors.Is(err, translator.ErrInputMissing) && !errors.Is(err, translator.ErrOutputMissing) {
		return err
	}
	log.Info("static html incomplete, rendering", "url", target.URL, "error", err)

	b, err := browser.Launch(ctx, opts, target)
	if err != nil {
		return err
	}
	defer b.Close()

	tab, err := b.NewTab(ctx)
	if err != nil {
		return err
	}
	defer tab.Close()

	snapshot, err := tab.Snapshot(ctx)
	if err != nil {
		return err
	}
	if err := target.Check(snapshot); err != nil {
		return fmt.Errorf("%s: %w", target.URL, err)
	}
	fmt.Fprintf(out, "ok: %s (rendered)\n", target.URL)
	return nil
}
