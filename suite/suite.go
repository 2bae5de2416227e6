// Package suite runs a scenario catalog against the translator, one page
// session per case, with a bounded number of cases in flight.
package suite

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"swiftqa/browser"
	"swiftqa/executor"
	"swiftqa/scenario"
)

// Session is a page opened for exactly one case.
type Session interface {
	executor.Page
	Close()
}

// Opener opens a fresh session on the target page.
type Opener func(ctx context.Context) (Session, error)

// BrowserOpener opens each session as a new tab of b.
func BrowserOpener(b *browser.Browser) Opener {
	return func(ctx context.Context) (Session, error) {
		tab, err := b.NewTab(ctx)
		if err != nil {
			return nil, err
		}
		return tab, nil
	}
}

// Runner executes cases concurrently. Cases share nothing but the
// executor and the read-only catalog.
type Runner struct {
	open        Opener
	exec        *executor.Executor
	concurrency int
	caseTimeout time.Duration
	log         *slog.Logger
}

// NewRunner creates a runner with at most concurrency cases in flight,
// each bounded by caseTimeout.
func NewRunner(open Opener, exec *executor.Executor, concurrency int, caseTimeout time.Duration) *Runner {
	if concurrency < 1 {
		concurrency = 1
	}
	return &Runner{
		open:        open,
		exec:        exec,
		concurrency: concurrency,
		caseTimeout: caseTimeout,
		log:         slog.With("comp", "runner"),
	}
}

type job struct {
	idx int
	c   scenario.Case
}

// Run executes every case once and returns the outcomes in case order.
// Cases not started before ctx is cancelled are left out.
func (r *Runner) Run(ctx context.Context, cases []scenario.Case) []executor.Outcome {
	outcomes := make([]executor.Outcome, len(cases))
	ran := make([]bool, len(cases))

	jobs := make(chan job)
	var wg sync.WaitGroup

	for i := 0; i < r.concurrency; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := range jobs {
				outcomes[j.idx] = r.runOne(ctx, j.c)
				ran[j.idx] = true
			}
		}()
	}

	start := time.Now()
	r.log.Info("starting run", "cases", len(cases), "concurrency", r.concurrency)

dispatch:
	for i, c := range cases {
		if ctx.Err() != nil {
			r.log.Warn("run cancelled", "dispatched", i, "cases", len(cases))
			break
		}
		select {
		case jobs <- job{idx: i, c: c}:
		case <-ctx.Done():
			r.log.Warn("run cancelled", "dispatched", i, "cases", len(cases))
			break dispatch
		}
	}
	close(jobs)
	wg.Wait()

	var done []executor.Outcome
	for i, o := range outcomes {
		if ran[i] {
			done = append(done, o)
		}
	}

	r.log.Info("run finished", "ran", len(done), "elapsed", time.Since(start))
	return done
}

func (r *Runner) runOne(ctx context.Context, c scenario.Case) (o executor.Outcome) {
	id := c.Base().ID

	if r.caseTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.caseTimeout)
		defer cancel()
	}

	sess, err := r.open(ctx)
	if err != nil {
		return r.exec.Abort(ctx, c, fmt.Errorf("opening page: %w", err))
	}
	defer sess.Close()

	o = r.exec.Run(ctx, sess, c)
	r.log.Debug("case done", "case", id, "verdict", o.Verdict, "class", o.Class, "elapsed", o.Elapsed)
	return o
}
