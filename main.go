// Swiftqa runs the end-to-end scenario catalog against the Singlish to
// Sinhala translator and reports every case.
package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	slogmulti "github.com/samber/slog-multi"
	"github.com/spf13/cobra"

	"swiftqa/config"
)

// errCasesFailed makes the process exit non-zero without printing an error.
var errCasesFailed = errors.New("cases failed")

var configFile string

func main() {
	if err := rootCmd.Execute(); err != nil {
		if !errors.Is(err, errCasesFailed) {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
		}
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:           "swiftqa",
	Short:         "End-to-end checks for the Singlish to Sinhala translator",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file (default ~/.config/swiftqa/config.toml)")

	rootCmd.AddCommand(runCmd, listCmd, checkCmd, historyCmd, initConfigCmd)
}

// loadConfig reads --config when given, otherwise the user config.
func loadConfig() (*config.Config, error) {
	if configFile != "" {
		return config.LoadFile(configFile)
	}
	return config.Load()
}

// setupLogging installs the default logger: text on stderr, plus any
// extra handlers such as the per-run JSON log.
func setupLogging(level slog.Level, extra ...slog.Handler) {
	var handler slog.Handler = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})
	if len(extra) > 0 {
		handler = slogmulti.Fanout(append([]slog.Handler{handler}, extra...)...)
	}
	slog.SetDefault(slog.New(handler))
}

// jsonLog returns a JSON handler writing to w at level.
func jsonLog(w io.Writer, level slog.Level) slog.Handler {
	return slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level})
}

var initConfigCmd = &cobra.Command{
	Use:   "init-config",
	Short: "Print the default config (redirect to ~/.config/swiftqa/config.toml)",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprint(cmd.OutOrStdout(), config.DefaultTOML())
	},
}
