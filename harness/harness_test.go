package harness

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nvr-ai/go-sysbench/report"
)

func newTestHarness() (*Harness, *bytes.Buffer) {
	var buf bytes.Buffer
	return New(report.NewEmitter(&buf)), &buf
}

func TestMeasureInvokesOperationExactlyRepeatTimes(t *testing.T) {
	h, _ := newTestHarness()

	calls := 0
	_, err := h.Measure(context.Background(), "x", 3, func(_ context.Context) error {
		calls++
		return nil
	})

	require.NoError(t, err)
	assert.Equal(t, 3, calls)
}

func TestMeasureRejectsZeroRepeat(t *testing.T) {
	h, buf := newTestHarness()

	calls := 0
	_, err := h.Measure(context.Background(), "x", 0, func(_ context.Context) error {
		calls++
		return nil
	})

	assert.Error(t, err)
	assert.Equal(t, 0, calls, "operation must not run at all")
	assert.Empty(t, buf.String(), "no report line on failure")
}

func TestMeasureFailureAbortsAndEmitsNothing(t *testing.T) {
	h, buf := newTestHarness()
	boom := errors.New("boom")

	calls := 0
	_, err := h.Measure(context.Background(), "x", 3, func(_ context.Context) error {
		calls++
		if calls == 2 {
			return boom
		}
		return nil
	})

	assert.ErrorIs(t, err, boom)
	assert.Equal(t, 2, calls, "remaining repetitions must not run")
	assert.Empty(t, buf.String(), "no report line on failure")
}

func TestMeasureReportsMeanOfRepetitions(t *testing.T) {
	h, buf := newTestHarness()

	const pause = 30 * time.Millisecond
	mean, err := h.Measure(context.Background(), "Sleep Time", 3, func(_ context.Context) error {
		time.Sleep(pause)
		return nil
	})

	require.NoError(t, err)
	// Mean of three equal sleeps is the sleep itself, within scheduler slop.
	assert.GreaterOrEqual(t, mean, pause)
	assert.Less(t, mean, 10*pause)
	assert.Contains(t, buf.String(), "Sleep Time:")
	assert.Contains(t, buf.String(), "(avg over 3 runs)")
}

func TestMeasureEmitsExactlyOneLine(t *testing.T) {
	h, buf := newTestHarness()

	_, err := h.Measure(context.Background(), "x", 2, func(_ context.Context) error {
		return nil
	})

	require.NoError(t, err)
	assert.Equal(t, 1, bytes.Count(buf.Bytes(), []byte("\n")))
}

func TestStartTimer(t *testing.T) {
	stop := StartTimer()
	time.Sleep(5 * time.Millisecond)
	assert.GreaterOrEqual(t, stop(), 5*time.Millisecond)
}
