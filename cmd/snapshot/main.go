// Snapshot types one input into the translator and dumps what the output
// panel looks like afterwards. Used to debug locator and timing problems.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"time"

	"swiftqa/browser"
	"swiftqa/config"
	"swiftqa/normalize"
	"swiftqa/scenario"
)

func main() {
	var (
		configFile = flag.String("config", "", "config file (default ~/.config/swiftqa/config.toml)")
		typed      = flag.Bool("type", false, "type keystroke by keystroke instead of inserting")
		headed     = flag.Bool("headed", false, "show the browser window")
		wait       = flag.Duration("wait", 0, "wait this long for output (default from config)")
		full       = flag.Bool("full", false, "dump the whole page instead of the output panel")
		caseID     = flag.String("id", "", "take the input of this catalog scenario and compare exact-match output")
	)
	flag.Parse()

	input := "mata kiri bonna onnea"
	if flag.NArg() > 0 {
		input = flag.Arg(0)
	}

	var expected string
	if *caseID != "" {
		c, ok := scenario.Default().Lookup(*caseID)
		if !ok {
			log.Fatalf("Unknown scenario %s", *caseID)
		}
		input = c.Base().Input
		switch c := c.(type) {
		case scenario.Positive:
			expected = c.Expected
		case scenario.Interaction:
			*typed = true
		}
		fmt.Printf("Scenario: %s\n", c.Base().Title())
	}

	cfg, err := config.Load()
	if *configFile != "" {
		cfg, err = config.LoadFile(*configFile)
	}
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	opts := cfg.BrowserOptions()
	if *headed {
		opts.Headless = false
	}
	timing := cfg.ExecutorTiming()
	if *wait > 0 {
		timing.OutputTimeout = *wait
	}
	target := cfg.TargetPage()

	ctx, cancel := context.WithTimeout(context.Background(), cfg.CaseTimeout())
	defer cancel()

	b, err := browser.Launch(ctx, opts, target)
	if err != nil {
		log.Fatalf("Failed to launch browser: %v", err)
	}
	defer b.Close()

	tab, err := b.NewTab(ctx)
	if err != nil {
		log.Fatalf("Failed to open page: %v", err)
	}
	defer tab.Close()

	start := time.Now()
	if *typed {
		err = tab.Type(ctx, input, timing.KeystrokeDelay)
	} else {
		err = tab.Fill(ctx, input)
	}
	if err != nil {
		log.Fatalf("Failed to enter input: %v", err)
	}

	appeared, err := tab.WaitOutput(ctx, timing.OutputTimeout)
	if err != nil {
		log.Fatalf("Failed waiting for output: %v", err)
	}
	elapsed := time.Since(start)

	snapshot, err := tab.Snapshot(ctx)
	if err != nil {
		log.Fatalf("Failed to capture page: %v", err)
	}

	fmt.Printf("Input:    %q\n", input)
	fmt.Printf("Appeared: %v after %v\n", appeared, elapsed.Round(time.Millisecond))

	text, found, err := target.OutputText(snapshot)
	if err != nil {
		log.Fatalf("Failed to read output: %v", err)
	}
	if !found {
		fmt.Printf("Output panel not found (%s)\n", target.OutputSelector())
	} else {
		fmt.Printf("Output:   %q\n", normalize.Clean(text))
		if expected != "" {
			fmt.Printf("Expected: %q (match: %v)\n", normalize.Clean(expected), normalize.Equal(text, expected))
		}
	}
	fmt.Println()

	if *full {
		fmt.Println(snapshot)
		return
	}
	markup, err := target.OutputHTML(snapshot)
	if err != nil {
		log.Fatalf("Failed to extract output panel: %v", err)
	}
	if markup != "" {
		fmt.Println(markup)
	}
}
