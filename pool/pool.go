// Package pool fans a workload out across parallel workers.
package pool

import (
	"context"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/nvr-ai/go-sysbench/partition"
)

// Task executes one chunk of n work units.
type Task func(ctx context.Context, n int) error

// Run partitions total work units across workers and executes one chunk per
// goroutine, with at most workers chunks in flight at once. It blocks until
// every chunk has completed or one has failed. On failure the shared context
// is cancelled, remaining workers are allowed to observe it and stop, and the
// first error is returned; partial success is never reported.
func Run(ctx context.Context, task Task, total, workers int) error {
	if workers < 1 {
		return errors.Errorf("workers must be >= 1, got %d", workers)
	}
	if total < 0 {
		return errors.Errorf("total must be >= 0, got %d", total)
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for _, chunk := range partition.Split(total, workers) {
		chunk := chunk
		g.Go(func() error {
			return task(ctx, chunk)
		})
	}

	return g.Wait()
}
