package browser

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// frames returns a reader that yields each value in turn and then keeps
// returning the last one.
func frames(values ...*string) (func(context.Context) (*string, error), *int) {
	reads := 0
	return func(ctx context.Context) (*string, error) {
		i := min(reads, len(values)-1)
		reads++
		return values[i], nil
	}, &reads
}

func str(s string) *string { return &s }

func TestPollOutputAppears(t *testing.T) {
	read, reads := frames(nil, str("  "), str("මට කිරි\n"))

	ok, err := pollOutput(context.Background(), read, time.Second, time.Millisecond, nonEmpty)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, 3, *reads)
}

func TestPollOutputExpires(t *testing.T) {
	read, reads := frames(nil)

	start := time.Now()
	ok, err := pollOutput(context.Background(), read, 50*time.Millisecond, 5*time.Millisecond, nonEmpty)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Less(t, time.Since(start), time.Second)
	assert.Greater(t, *reads, 1)
}

func TestPollOutputContains(t *testing.T) {
	read, _ := frames(str("සුභ"), str("සුභ රාත්‍රියක්"))

	ok, err := pollOutput(context.Background(), read, time.Second, time.Millisecond, contains(" සුභ රාත්‍රියක් "))
	require.NoError(t, err)
	assert.True(t, ok)

	read, _ = frames(str("සුභ"))
	ok, err = pollOutput(context.Background(), read, 20*time.Millisecond, time.Millisecond, contains("රාත්"))
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestPollOutputReadError(t *testing.T) {
	boom := errors.New("target closed")
	read := func(context.Context) (*string, error) { return nil, boom }

	ok, err := pollOutput(context.Background(), read, time.Second, time.Millisecond, nonEmpty)
	assert.ErrorIs(t, err, boom)
	assert.False(t, ok)
}

func TestPollOutputCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	read, _ := frames(nil)
	time.AfterFunc(20*time.Millisecond, cancel)

	start := time.Now()
	ok, err := pollOutput(ctx, read, time.Minute, 5*time.Millisecond, nonEmpty)
	assert.ErrorIs(t, err, context.Canceled)
	assert.False(t, ok)
	assert.Less(t, time.Since(start), 10*time.Second)
}
