package executor

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"swiftqa/normalize"
	"swiftqa/report"
	"swiftqa/scenario"
)

// fakePage renders whatever translate returns for the current input.
type fakePage struct {
	translate func(input string) *string
	fail      map[string]error

	input   string
	calls   []string
	delay   time.Duration
	settled time.Duration
}

func newFakePage(translate func(string) *string) *fakePage {
	return &fakePage{translate: translate, fail: make(map[string]error)}
}

func (p *fakePage) call(verb string) error {
	p.calls = append(p.calls, verb)
	return p.fail[verb]
}

func (p *fakePage) Reset(ctx context.Context) error {
	p.input = ""
	return p.call("reset")
}

func (p *fakePage) Fill(ctx context.Context, text string) error {
	p.input = text
	return p.call("fill")
}

func (p *fakePage) Type(ctx context.Context, text string, delay time.Duration) error {
	p.delay = delay
	for _, r := range text {
		p.input += string(r)
	}
	return p.call("type")
}

func (p *fakePage) OutputText(ctx context.Context) (*string, error) {
	if err := p.call("read"); err != nil {
		return nil, err
	}
	return p.translate(p.input), nil
}

func (p *fakePage) WaitOutput(ctx context.Context, timeout time.Duration) (bool, error) {
	if err := p.call("wait"); err != nil {
		return false, err
	}
	return normalize.CleanPtr(p.translate(p.input)) != "", nil
}

func (p *fakePage) WaitOutputContains(ctx context.Context, sub string, timeout time.Duration) (bool, error) {
	if err := p.call("wait-contains"); err != nil {
		return false, err
	}
	return strings.Contains(normalize.CleanPtr(p.translate(p.input)), sub), nil
}

func (p *fakePage) Settle(ctx context.Context, d time.Duration) error {
	p.settled = d
	return p.call("settle")
}

func ptr(s string) *string { return &s }

func constant(s *string) func(string) *string {
	return func(string) *string { return s }
}

func positive(id string) scenario.Positive {
	for _, p := range scenario.Positives() {
		if p.ID == id {
			return p
		}
	}
	panic("no positive " + id)
}

func TestPositivePass(t *testing.T) {
	rec := report.NewRecorder()
	ex := New(DefaultTiming(), rec)

	p := positive("Pos_Fun_01")
	page := newFakePage(func(in string) *string {
		if in == "mata kiri bonna onnea" {
			return ptr("\n  මට කිරි බොන්න ඕනෑ \n")
		}
		return nil
	})

	o := ex.RunPositive(context.Background(), page, p)
	assert.True(t, o.Passed())
	assert.Equal(t, ClassNone, o.Class)
	assert.NoError(t, o.Err)
	assert.Equal(t, "මට කිරි බොන්න ඕනෑ", o.Actual)
	assert.Equal(t, "\n  මට කිරි බොන්න ඕනෑ \n", *o.Raw)
	assert.Equal(t, []string{"reset", "fill", "wait", "read"}, page.calls)

	assert.Equal(t, []report.Attachment{report.Pass()}, rec.Attachments("Pos_Fun_01"))
	results := rec.Results()
	require.Len(t, results, 1)
	assert.Equal(t, "pass", results[0].Verdict)
	assert.Equal(t, "Pos_Fun_01 — Drink request", results[0].Title)
	assert.Equal(t, "positive", results[0].Group)
	assert.Equal(t, "Accuracy validation", results[0].Quality)
}

func TestPositiveLineBreakPreserved(t *testing.T) {
	ex := New(DefaultTiming(), report.NewRecorder())
	p := positive("Pos_Fun_19")

	page := newFakePage(constant(ptr("මම පන්තියට යනවා\nඔයා එනවද?\n")))
	assert.True(t, ex.Run(context.Background(), page, p).Passed())

	page = newFakePage(constant(ptr("මම පන්තියට යනවා ඔයා එනවද?")))
	assert.False(t, ex.Run(context.Background(), page, p).Passed())
}

func TestPositiveMismatch(t *testing.T) {
	rec := report.NewRecorder()
	ex := New(DefaultTiming(), rec)

	p := positive("Pos_Fun_03")
	o := ex.Run(context.Background(), newFakePage(constant(ptr("මම එළියට එනවා"))), p)

	assert.Equal(t, Fail, o.Verdict)
	assert.Equal(t, ClassMismatch, o.Class)
	assert.ErrorIs(t, o.Err, ErrMismatch)

	atts := rec.Attachments("Pos_Fun_03")
	require.Len(t, atts, 1)
	assert.Equal(t, report.Mismatch("mama eliyata enawa", "මම එලියට එනවා", "මම එළියට එනවා"), atts[0])
	assert.Equal(t, "mismatch", rec.Results()[0].Class)
}

func TestPositiveEmptyOutput(t *testing.T) {
	tcs := map[string]*string{
		"absent":     nil,
		"empty":      ptr(""),
		"whitespace": ptr("  \n"),
	}

	for name, out := range tcs {
		t.Run(name, func(t *testing.T) {
			rec := report.NewRecorder()
			ex := New(DefaultTiming(), rec)

			o := ex.Run(context.Background(), newFakePage(constant(out)), positive("Pos_Fun_02"))
			assert.Equal(t, Fail, o.Verdict)
			assert.Equal(t, ClassEmptyOutput, o.Class)
			assert.ErrorIs(t, o.Err, ErrEmptyOutput)
			assert.Equal(t, "", o.Actual)
			assert.Equal(t, []report.Attachment{report.EmptyOutput("eya TV balanavaa", "එයා TV බලනවා")}, rec.Attachments("Pos_Fun_02"))
		})
	}
}

func TestPageErrors(t *testing.T) {
	boom := errors.New("target closed")

	tcs := []struct {
		verb string
		c    scenario.Case
	}{
		{"reset", positive("Pos_Fun_01")},
		{"fill", positive("Pos_Fun_01")},
		{"wait", positive("Pos_Fun_01")},
		{"read", positive("Pos_Fun_01")},
		{"settle", scenario.Negatives()[0]},
		{"type", scenario.Interactions()[0]},
		{"wait-contains", scenario.Interactions()[0]},
	}

	for _, tc := range tcs {
		t.Run(tc.verb, func(t *testing.T) {
			rec := report.NewRecorder()
			ex := New(DefaultTiming(), rec)

			page := newFakePage(constant(ptr("x")))
			page.fail[tc.verb] = boom

			o := ex.Run(context.Background(), page, tc.c)
			assert.Equal(t, Fail, o.Verdict)
			assert.Equal(t, ClassError, o.Class)
			assert.ErrorIs(t, o.Err, boom)
			assert.Empty(t, o.Attachments)
			assert.Len(t, rec.Results(), 1)
		})
	}
}

func TestNegatives(t *testing.T) {
	outputs := map[string]*string{
		"absent":   nil,
		"empty":    ptr(""),
		"rendered": ptr("පට්ටනෙ ම්cන් මරු"),
	}

	for name, out := range outputs {
		t.Run(name, func(t *testing.T) {
			for _, n := range scenario.Negatives() {
				rec := report.NewRecorder()
				ex := New(DefaultTiming(), rec)
				page := newFakePage(constant(out))

				o := ex.RunNegative(context.Background(), page, n)
				assert.Equal(t, []string{"reset", "fill", "settle", "read"}, page.calls)
				assert.Equal(t, time.Second, page.settled)
				assert.Equal(t, "", o.Expected)

				atts := rec.Attachments(n.ID)
				require.Len(t, atts, 1, n.ID)

				if n.KnownWeakness {
					assert.Equal(t, ForcedFail, o.Verdict, n.ID)
					assert.Equal(t, ClassKnownWeakness, o.Class)
					assert.ErrorIs(t, o.Err, ErrKnownWeakness)
					assert.ErrorContains(t, o.Err, WeaknessSentinel)
					assert.Equal(t, report.InvalidInput(n.Input, o.Actual), atts[0])
				} else {
					assert.True(t, o.Passed(), n.ID)
					assert.NoError(t, o.Err)
					assert.Equal(t, report.HandledGracefully(n.Input, o.Actual), atts[0])
				}
			}
		})
	}
}

func TestKnownWeaknessFailsEvenWhenFixed(t *testing.T) {
	n := scenario.Negative{
		Scenario:      scenario.Scenario{ID: "Neg_X", Input: "####"},
		KnownWeakness: true,
	}
	ex := New(DefaultTiming(), report.NewRecorder())

	o := ex.Run(context.Background(), newFakePage(constant(ptr("a perfectly sensible rendering"))), n)
	assert.Equal(t, ForcedFail, o.Verdict)
}

func TestInteraction(t *testing.T) {
	rec := report.NewRecorder()
	timing := DefaultTiming()
	ex := New(timing, rec)

	u := scenario.Interactions()[1]
	require.Equal(t, "subha rathriyak", u.Input)

	page := newFakePage(func(in string) *string {
		if in == "subha rathriyak" {
			return ptr("සුභ රාත්‍රියක් ")
		}
		return ptr("")
	})

	o := ex.RunInteraction(context.Background(), page, u)
	assert.True(t, o.Passed())
	assert.Equal(t, 200*time.Millisecond, page.delay)
	assert.Equal(t, []string{"reset", "type", "wait-contains", "read"}, page.calls)
	assert.Equal(t, []report.Attachment{report.UIVerified("subha rathriyak", "සුභ රාත්‍රියක්")}, rec.Attachments("Pos_UI_02"))
}

func TestInteractionPartialRender(t *testing.T) {
	ex := New(DefaultTiming(), report.NewRecorder())
	u := scenario.Interactions()[0]

	// live render still shows a suggestion after the expected text
	page := newFakePage(constant(ptr("ඔයා කොහෙද ඉන්නේ ඉන්නෙ")))
	assert.True(t, ex.Run(context.Background(), page, u).Passed())
}

func TestInteractionMissing(t *testing.T) {
	rec := report.NewRecorder()
	ex := New(DefaultTiming(), rec)
	u := scenario.Interactions()[0]

	o := ex.Run(context.Background(), newFakePage(constant(ptr("ඔයා"))), u)
	assert.Equal(t, Fail, o.Verdict)
	assert.Equal(t, ClassMissing, o.Class)
	assert.ErrorIs(t, o.Err, ErrMissing)
	assert.Empty(t, rec.Attachments(u.ID))
	assert.Len(t, rec.Results(), 1)
}

// orderSink records the order of sink calls.
type orderSink struct {
	events []string
}

func (s *orderSink) Attach(ctx context.Context, id string, a report.Attachment) error {
	s.events = append(s.events, "attach:"+a.Label)
	return errors.New("disk full")
}

func (s *orderSink) Record(ctx context.Context, r report.Result) error {
	s.events = append(s.events, "record:"+r.Verdict)
	return nil
}

func TestAttachBeforeVerdict(t *testing.T) {
	sink := &orderSink{}
	ex := New(DefaultTiming(), sink)

	o := ex.Run(context.Background(), newFakePage(constant(nil)), positive("Pos_Fun_01"))
	assert.Equal(t, []string{"attach:FAIL Reason", "record:fail"}, sink.events)
	// a failing sink does not change the verdict
	assert.Equal(t, ClassEmptyOutput, o.Class)
}

// embeddedCase satisfies scenario.Case through the embedded Positive but is
// none of the known variants.
type embeddedCase struct {
	scenario.Positive
}

func TestRunUnknownCaseType(t *testing.T) {
	rec := report.NewRecorder()
	ex := New(DefaultTiming(), rec)
	page := newFakePage(constant(ptr("x")))

	var o Outcome
	require.NotPanics(t, func() {
		o = ex.Run(context.Background(), page, embeddedCase{positive("Pos_Fun_01")})
	})

	assert.Equal(t, Fail, o.Verdict)
	assert.Equal(t, ClassError, o.Class)
	assert.ErrorIs(t, o.Err, ErrUnknownCase)
	assert.Empty(t, page.calls)

	results := rec.Results()
	require.Len(t, results, 1)
	assert.Equal(t, "Pos_Fun_01", results[0].CaseID)
	assert.Equal(t, "error", results[0].Class)
}

type fakeTB struct {
	errors []string
}

func (f *fakeTB) Helper() {}
func (f *fakeTB) Errorf(format string, args ...any) {
	f.errors = append(f.errors, fmt.Sprintf(format, args...))
}

func TestAssert(t *testing.T) {
	ex := New(DefaultTiming(), report.NewRecorder())

	tb := &fakeTB{}
	ex.Run(context.Background(), newFakePage(constant(ptr("එයා TV බලනවා"))), positive("Pos_Fun_02")).Assert(tb)
	assert.Empty(t, tb.errors)

	ex.Run(context.Background(), newFakePage(constant(nil)), positive("Pos_Fun_02")).Assert(tb)
	require.Len(t, tb.errors, 1)
	assert.Equal(t, "Pos_Fun_02 — Watching TV [fail/empty-output]: translator produced no output", tb.errors[0])
}
