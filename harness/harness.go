// Package harness times benchmark operations with a monotonic clock.
package harness

import (
	"context"
	"time"

	"github.com/pkg/errors"

	"github.com/nvr-ai/go-sysbench/report"
)

// Operation is a zero-argument unit of benchmarked work. Any parameters are
// bound by the caller before measurement, keeping the harness decoupled from
// workload parameter shapes.
type Operation func(ctx context.Context) error

// Harness measures operations and reports averaged wall-clock durations.
type Harness struct {
	emitter *report.Emitter
}

// New returns a harness reporting through e.
func New(e *report.Emitter) *Harness {
	return &Harness{emitter: e}
}

// Measure runs op exactly repeat times sequentially, timing each full run
// with the monotonic clock, and returns the arithmetic mean. Each repetition
// completes before the next starts; internal pooling inside op does not
// overlap across repetitions.
//
// repeat must be >= 1. If any repetition fails, Measure fails as a whole and
// emits no report line. On success exactly one line is emitted carrying
// label, repeat count, and the mean.
func (h *Harness) Measure(ctx context.Context, label string, repeat int, op Operation) (time.Duration, error) {
	if repeat < 1 {
		return 0, errors.Errorf("repeat must be >= 1, got %d", repeat)
	}

	var total time.Duration
	for i := 0; i < repeat; i++ {
		stop := StartTimer()
		if err := op(ctx); err != nil {
			return 0, errors.Wrapf(err, "repetition %d of %d", i+1, repeat)
		}
		total += stop()
	}

	mean := total / time.Duration(repeat)
	h.emitter.Duration(label, repeat, mean)
	return mean, nil
}

// StartTimer begins timing an operation and returns a function that reports
// the elapsed duration when invoked.
func StartTimer() func() time.Duration {
	start := time.Now()
	return func() time.Duration {
		return time.Since(start)
	}
}
