// Package executor runs single scenarios against a translator page,
// classifies what it observes and attaches a diagnostic before handing
// back a verdict.
package executor

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"swiftqa/normalize"
	"swiftqa/report"
	"swiftqa/scenario"
)

// Page is the set of interaction verbs the executor needs from the page
// under test.
type Page interface {
	// Reset clears the input control.
	Reset(ctx context.Context) error
	// Fill submits text in one go.
	Fill(ctx context.Context, text string) error
	// Type submits text keystroke by keystroke.
	Type(ctx context.Context, text string, delay time.Duration) error
	// OutputText reads the output region; nil means it is absent.
	OutputText(ctx context.Context) (*string, error)
	// WaitOutput waits up to timeout for non-empty output and reports
	// whether it appeared.
	WaitOutput(ctx context.Context, timeout time.Duration) (bool, error)
	// WaitOutputContains waits up to timeout for the output to contain sub.
	WaitOutputContains(ctx context.Context, sub string, timeout time.Duration) (bool, error)
	// Settle waits a fixed time.
	Settle(ctx context.Context, d time.Duration) error
}

// Timing holds the observation windows.
type Timing struct {
	OutputTimeout   time.Duration
	SettleDelay     time.Duration
	KeystrokeDelay  time.Duration
	ContainsTimeout time.Duration
}

// DefaultTiming returns the standard windows.
func DefaultTiming() Timing {
	return Timing{
		OutputTimeout:   10 * time.Second,
		SettleDelay:     time.Second,
		KeystrokeDelay:  200 * time.Millisecond,
		ContainsTimeout: 10 * time.Second,
	}
}

// Verdict is the final judgement on a case.
type Verdict string

const (
	Pass       Verdict = report.VerdictPass
	Fail       Verdict = report.VerdictFail
	ForcedFail Verdict = report.VerdictForcedFail
)

// Class is the failure class of a case. Passing cases have ClassNone.
type Class string

const (
	ClassNone          Class = ""
	ClassEmptyOutput   Class = "empty-output"
	ClassMismatch      Class = "mismatch"
	ClassKnownWeakness Class = "known-weakness"
	ClassMissing       Class = "missing"
	ClassError         Class = "error"
)

var (
	ErrEmptyOutput   = errors.New("translator produced no output")
	ErrMismatch      = errors.New("output does not match expected translation")
	ErrKnownWeakness = errors.New("known weakness in handling malformed input")
	ErrMissing       = errors.New("expected text did not appear")
	ErrUnknownCase   = errors.New("unknown case type")
)

// WeaknessSentinel is what known-weakness cases are asserted against. No
// rendering of malformed input can produce it.
const WeaknessSentinel = "EXPECTED_TO_FAIL_TO_DEMONSTRATE_SYSTEM_WEAKNESS"

// Outcome is the ephemeral record of one case execution.
type Outcome struct {
	Case        scenario.Case
	Raw         *string
	Actual      string
	Expected    string
	Verdict     Verdict
	Class       Class
	Err         error
	Attachments []report.Attachment
	Elapsed     time.Duration
}

// Passed reports whether the case passed.
func (o Outcome) Passed() bool {
	return o.Verdict == Pass
}

// Result converts the outcome for the reporting sinks.
func (o Outcome) Result() report.Result {
	s := o.Case.Base()
	r := report.Result{
		CaseID:   s.ID,
		Title:    s.Title(),
		Group:    string(o.Case.Group()),
		Category: s.Tags.Category,
		Quality:  string(s.Tags.Quality),
		Verdict:  string(o.Verdict),
		Class:    string(o.Class),
		Input:    s.Input,
		Expected: o.Expected,
		Actual:   o.Actual,
		Elapsed:  o.Elapsed,
	}
	if o.Err != nil {
		r.Error = o.Err.Error()
	}
	return r
}

// TB is the part of testing.TB used to assert an outcome.
type TB interface {
	Helper()
	Errorf(format string, args ...any)
}

// Assert fails t unless the outcome passed.
func (o Outcome) Assert(t TB) {
	t.Helper()
	if o.Passed() {
		return
	}
	t.Errorf("%s [%s/%s]: %v", o.Case.Base().Title(), o.Verdict, o.Class, o.Err)
}

// Executor runs cases. It holds no per-case state and may be shared by
// concurrent runs, each with its own Page.
type Executor struct {
	timing Timing
	sink   report.Sink
	log    *slog.Logger
}

// New creates an executor reporting to sink.
func New(timing Timing, sink report.Sink) *Executor {
	return &Executor{
		timing: timing,
		sink:   sink,
		log:    slog.With("comp", "executor"),
	}
}

// Run executes one case and records its result.
func (e *Executor) Run(ctx context.Context, page Page, c scenario.Case) Outcome {
	start := time.Now()

	var o Outcome
	switch c := c.(type) {
	case scenario.Positive:
		o = e.runPositive(ctx, page, c)
	case scenario.Negative:
		o = e.runNegative(ctx, page, c)
	case scenario.Interaction:
		o = e.runInteraction(ctx, page, c)
	default:
		o = e.broken(Outcome{Case: c}, fmt.Errorf("%w: %T", ErrUnknownCase, c))
	}
	o.Elapsed = time.Since(start)

	if err := e.sink.Record(ctx, o.Result()); err != nil {
		e.log.Error("error recording result", "case", c.Base().ID, "error", err)
	}
	return o
}

// Abort records a case that could not be started, such as when no page
// session could be opened for it.
func (e *Executor) Abort(ctx context.Context, c scenario.Case, err error) Outcome {
	o := e.broken(Outcome{Case: c}, err)
	if err := e.sink.Record(ctx, o.Result()); err != nil {
		e.log.Error("error recording result", "case", c.Base().ID, "error", err)
	}
	return o
}

// RunPositive submits the input in full and requires the output to equal
// the expected translation exactly after normalization.
func (e *Executor) RunPositive(ctx context.Context, page Page, p scenario.Positive) Outcome {
	return e.Run(ctx, page, p)
}

// RunNegative submits malformed input and only requires the page to cope.
func (e *Executor) RunNegative(ctx context.Context, page Page, n scenario.Negative) Outcome {
	return e.Run(ctx, page, n)
}

// RunInteraction types the input live and requires the output to contain
// the expected text.
func (e *Executor) RunInteraction(ctx context.Context, page Page, u scenario.Interaction) Outcome {
	return e.Run(ctx, page, u)
}

func (e *Executor) runPositive(ctx context.Context, page Page, p scenario.Positive) Outcome {
	o := Outcome{Case: p, Expected: normalize.Clean(p.Expected)}

	if err := page.Reset(ctx); err != nil {
		return e.broken(o, err)
	}
	if err := page.Fill(ctx, p.Input); err != nil {
		return e.broken(o, err)
	}

	appeared, err := page.WaitOutput(ctx, e.timing.OutputTimeout)
	if err != nil {
		return e.broken(o, err)
	}
	if !appeared {
		e.log.Debug("output wait expired", "case", p.ID, "timeout", e.timing.OutputTimeout)
	}

	if err := e.read(ctx, page, &o); err != nil {
		return e.broken(o, err)
	}

	switch {
	case o.Actual == "":
		e.attach(ctx, &o, report.EmptyOutput(p.Input, o.Expected))
		return e.failed(o, ClassEmptyOutput, ErrEmptyOutput)
	case o.Actual != o.Expected:
		e.attach(ctx, &o, report.Mismatch(p.Input, o.Expected, o.Actual))
		return e.failed(o, ClassMismatch, fmt.Errorf("%w\n  expected: %s\n  actual:   %s", ErrMismatch, o.Expected, o.Actual))
	}

	e.attach(ctx, &o, report.Pass())
	o.Verdict = Pass
	return o
}

func (e *Executor) runNegative(ctx context.Context, page Page, n scenario.Negative) Outcome {
	o := Outcome{Case: n}

	if err := page.Reset(ctx); err != nil {
		return e.broken(o, err)
	}
	if err := page.Fill(ctx, n.Input); err != nil {
		return e.broken(o, err)
	}
	if err := page.Settle(ctx, e.timing.SettleDelay); err != nil {
		return e.broken(o, err)
	}
	if err := e.read(ctx, page, &o); err != nil {
		return e.broken(o, err)
	}

	if n.KnownWeakness {
		e.attach(ctx, &o, report.InvalidInput(n.Input, o.Actual))
		o.Verdict = ForcedFail
		o.Class = ClassKnownWeakness
		o.Err = fmt.Errorf("%w: got %q, asserted %q", ErrKnownWeakness, o.Actual, WeaknessSentinel)
		return o
	}

	// any output, including none, is acceptable
	e.attach(ctx, &o, report.HandledGracefully(n.Input, o.Actual))
	o.Verdict = Pass
	return o
}

func (e *Executor) runInteraction(ctx context.Context, page Page, u scenario.Interaction) Outcome {
	o := Outcome{Case: u, Expected: normalize.Clean(u.Expected)}

	if err := page.Reset(ctx); err != nil {
		return e.broken(o, err)
	}
	if err := page.Type(ctx, u.Input, e.timing.KeystrokeDelay); err != nil {
		return e.broken(o, err)
	}

	appeared, err := page.WaitOutputContains(ctx, o.Expected, e.timing.ContainsTimeout)
	if err != nil {
		return e.broken(o, err)
	}
	if err := e.read(ctx, page, &o); err != nil {
		return e.broken(o, err)
	}

	if !appeared {
		return e.failed(o, ClassMissing, fmt.Errorf("%w within %s: want %s in %s", ErrMissing, e.timing.ContainsTimeout, o.Expected, o.Actual))
	}

	e.attach(ctx, &o, report.UIVerified(u.Input, o.Expected))
	o.Verdict = Pass
	return o
}

func (e *Executor) read(ctx context.Context, page Page, o *Outcome) error {
	raw, err := page.OutputText(ctx)
	if err != nil {
		return fmt.Errorf("reading output: %w", err)
	}
	o.Raw = raw
	o.Actual = normalize.CleanPtr(raw)
	return nil
}

// attach hands a diagnostic to the sink before the verdict is set.
func (e *Executor) attach(ctx context.Context, o *Outcome, a report.Attachment) {
	o.Attachments = append(o.Attachments, a)
	if err := e.sink.Attach(ctx, o.Case.Base().ID, a); err != nil {
		e.log.Error("error attaching diagnostic", "case", o.Case.Base().ID, "label", a.Label, "error", err)
	}
}

func (e *Executor) failed(o Outcome, class Class, err error) Outcome {
	o.Verdict = Fail
	o.Class = class
	o.Err = err
	return o
}

// broken marks a case whose page interaction itself failed.
func (e *Executor) broken(o Outcome, err error) Outcome {
	e.log.Warn("page interaction failed", "case", o.Case.Base().ID, "error", err)
	return e.failed(o, ClassError, err)
}
