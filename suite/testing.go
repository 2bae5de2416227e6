package suite

import (
	"context"
	"testing"

	"swiftqa/executor"
	"swiftqa/report"
	"swiftqa/scenario"
)

// RunT runs every case of c as a parallel subtest of t named by the case
// title. Diagnostics go to the subtest log as well as to sink.
func RunT(t *testing.T, open Opener, timing executor.Timing, sink report.Sink, c scenario.Catalog) {
	t.Helper()

	for _, cs := range c.Cases() {
		t.Run(cs.Base().Title(), func(t *testing.T) {
			t.Parallel()

			ctx := context.Background()
			if dl, ok := t.Deadline(); ok {
				var cancel context.CancelFunc
				ctx, cancel = context.WithDeadline(ctx, dl)
				defer cancel()
			}

			ex := executor.New(timing, report.Multi(sink, report.NewTestSink(t)))

			sess, err := open(ctx)
			if err != nil {
				ex.Abort(ctx, cs, err).Assert(t)
				return
			}
			defer sess.Close()

			ex.Run(ctx, sess, cs).Assert(t)
		})
	}
}
