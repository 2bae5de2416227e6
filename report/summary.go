package report

import (
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/sys/unix"
)

// DefaultWidth is used when output is not a terminal.
const DefaultWidth = 80

// TerminalWidth returns the column count of f, or DefaultWidth when f is
// not a terminal.
func TerminalWidth(f *os.File) int {
	ws, err := unix.IoctlGetWinsize(int(f.Fd()), unix.TIOCGWINSZ)
	if err != nil || ws.Col == 0 {
		return DefaultWidth
	}
	return int(ws.Col)
}

// WriteSummary prints per-group and per-quality tallies followed by one
// line for every case that did not pass.
func WriteSummary(w io.Writer, results []Result, width int) {
	if width < 40 {
		width = 40
	}
	rule := strings.Repeat("=", width)

	fmt.Fprintln(w, rule)
	writeTally(w, "Group", results, func(r Result) string { return r.Group })
	writeTally(w, "Quality", results, func(r Result) string { return r.Quality })

	var failed []Result
	for _, r := range results {
		if !r.Passed() {
			failed = append(failed, r)
		}
	}

	if len(failed) > 0 {
		fmt.Fprintln(w, strings.Repeat("-", width))
		for _, r := range failed {
			line := fmt.Sprintf("✗ %-12s %-14s %s", r.CaseID, r.Class, detail(r))
			fmt.Fprintln(w, truncate(line, width))
		}
	}

	fmt.Fprintln(w, rule)
	fmt.Fprintf(w, "%d cases: %d passed, %d failed\n", len(results), len(results)-len(failed), len(failed))
}

func writeTally(w io.Writer, title string, results []Result, key func(Result) string) {
	type tally struct{ pass, fail int }
	counts := make(map[string]*tally)
	var order []string
	for _, r := range results {
		k := key(r)
		if k == "" {
			k = "-"
		}
		t, ok := counts[k]
		if !ok {
			t = &tally{}
			counts[k] = t
			order = append(order, k)
		}
		if r.Passed() {
			t.pass++
		} else {
			t.fail++
		}
	}

	fmt.Fprintf(w, "%s:\n", title)
	for _, k := range order {
		t := counts[k]
		fmt.Fprintf(w, "  %-26s %3d passed %3d failed\n", k, t.pass, t.fail)
	}
}

// detail is one line describing a failure. Multi-line errors give way to
// the expected and actual text when there is an expectation to show.
func detail(r Result) string {
	first, _, multiline := strings.Cut(r.Error, "\n")
	switch {
	case r.Error != "" && !multiline:
		return r.Error
	case r.Error != "" && r.Expected == "":
		return first
	}
	actual := r.Actual
	if actual == "" {
		actual = empty
	}
	return fmt.Sprintf("expected %q got %q", r.Expected, actual)
}

func truncate(s string, width int) string {
	runes := []rune(s)
	if len(runes) <= width {
		return s
	}
	return string(runes[:width-3]) + "..."
}
