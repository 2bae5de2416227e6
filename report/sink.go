package report

import (
	"context"
	"errors"
	"log/slog"
	"slices"
	"sync"
	"time"
)

// Verdicts.
const (
	VerdictPass       = "pass"
	VerdictFail       = "fail"
	VerdictForcedFail = "forced-fail"
)

// Result is the final record of one case.
type Result struct {
	CaseID   string        `json:"case_id"`
	Title    string        `json:"title"`
	Group    string        `json:"group"`
	Category string        `json:"category,omitempty"`
	Quality  string        `json:"quality,omitempty"`
	Verdict  string        `json:"verdict"`
	Class    string        `json:"class,omitempty"`
	Input    string        `json:"input"`
	Expected string        `json:"expected,omitempty"`
	Actual   string        `json:"actual"`
	Error    string        `json:"error,omitempty"`
	Elapsed  time.Duration `json:"elapsed"`
}

// Passed reports whether the case passed.
func (r Result) Passed() bool {
	return r.Verdict == VerdictPass
}

// Sink receives diagnostics and results. Sinks only observe: an error from
// a sink is reported but never changes a verdict.
type Sink interface {
	Attach(ctx context.Context, caseID string, a Attachment) error
	Record(ctx context.Context, r Result) error
}

type multi []Sink

// Multi fans every call out to all sinks and joins their errors.
func Multi(sinks ...Sink) Sink {
	return multi(sinks)
}

func (m multi) Attach(ctx context.Context, caseID string, a Attachment) error {
	var errs []error
	for _, s := range m {
		errs = append(errs, s.Attach(ctx, caseID, a))
	}
	return errors.Join(errs...)
}

func (m multi) Record(ctx context.Context, r Result) error {
	var errs []error
	for _, s := range m {
		errs = append(errs, s.Record(ctx, r))
	}
	return errors.Join(errs...)
}

// Recorder keeps everything in memory. It is safe for concurrent use.
type Recorder struct {
	mu          sync.Mutex
	attachments map[string][]Attachment
	results     []Result
}

// NewRecorder creates an empty recorder.
func NewRecorder() *Recorder {
	return &Recorder{attachments: make(map[string][]Attachment)}
}

func (r *Recorder) Attach(ctx context.Context, caseID string, a Attachment) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.attachments[caseID] = append(r.attachments[caseID], a)
	return nil
}

func (r *Recorder) Record(ctx context.Context, res Result) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.results = append(r.results, res)
	return nil
}

// Attachments returns what was attached to a case, in order.
func (r *Recorder) Attachments(caseID string) []Attachment {
	r.mu.Lock()
	defer r.mu.Unlock()
	return slices.Clone(r.attachments[caseID])
}

// Results returns recorded results in arrival order.
func (r *Recorder) Results() []Result {
	r.mu.Lock()
	defer r.mu.Unlock()
	return slices.Clone(r.results)
}

// LogSink writes diagnostics and results to a structured logger.
type LogSink struct {
	log *slog.Logger
}

// NewLogSink creates a sink logging through log.
func NewLogSink(log *slog.Logger) *LogSink {
	return &LogSink{log: log.With("comp", "report")}
}

func (s *LogSink) Attach(ctx context.Context, caseID string, a Attachment) error {
	s.log.DebugContext(ctx, "attachment", "case", caseID, "label", a.Label, "body", a.Body)
	return nil
}

func (s *LogSink) Record(ctx context.Context, r Result) error {
	if r.Passed() {
		s.log.InfoContext(ctx, "case passed", "case", r.CaseID, "elapsed", r.Elapsed)
		return nil
	}
	s.log.WarnContext(ctx, "case failed", "case", r.CaseID, "verdict", r.Verdict, "class", r.Class, "error", r.Error)
	return nil
}

// TB is the subset of testing.TB a TestSink needs.
type TB interface {
	Helper()
	Logf(format string, args ...any)
}

// TestSink attaches diagnostics to a test's log so they appear next to the
// assertion that may fail.
type TestSink struct {
	t TB
}

// NewTestSink creates a sink logging to t.
func NewTestSink(t TB) *TestSink {
	return &TestSink{t: t}
}

func (s *TestSink) Attach(ctx context.Context, caseID string, a Attachment) error {
	s.t.Helper()
	s.t.Logf("[%s] %s (%s)\n%s", caseID, a.Label, a.ContentType, a.Body)
	return nil
}

func (s *TestSink) Record(ctx context.Context, r Result) error {
	return nil
}
