// Package workload defines the closed set of benchmark workloads.
//
// Each workload is a stateless unit of work parameterized by a single
// iteration count or element count. Workloads are safe to invoke from
// multiple goroutines concurrently with disjoint parameters; they share no
// mutable state beyond the write-only result sinks below.
package workload

import (
	"context"
	"sync/atomic"

	"github.com/pkg/errors"
)

// Kind identifies one workload variant.
type Kind string

const (
	KindInteger  Kind = "integer"
	KindFloat    Kind = "float"
	KindHash     Kind = "hash"
	KindCompress Kind = "compress"
	KindMemory   Kind = "memory"
)

// Workload is one named unit of benchmarked work. Run consumes CPU, memory,
// or disk in proportion to n and returns once complete; results are
// discarded. A non-nil error means the invocation failed and must not be
// reported as a timing.
type Workload interface {
	Name() string
	Run(ctx context.Context, n int) error
}

// ByKind returns the workload for a kind.
func ByKind(kind Kind) (Workload, error) {
	switch kind {
	case KindInteger:
		return IntegerOps{}, nil
	case KindFloat:
		return FloatOps{}, nil
	case KindHash:
		return HashOps{}, nil
	case KindCompress:
		return CompressOps{}, nil
	case KindMemory:
		return MemoryFill{}, nil
	default:
		return nil, errors.Errorf("unknown workload kind: %q", kind)
	}
}

// All returns every registered workload in a fixed order.
func All() []Workload {
	return []Workload{IntegerOps{}, FloatOps{}, HashOps{}, CompressOps{}, MemoryFill{}}
}

// Result sinks keep the compiler from eliminating workload loops. Pooled
// workers store to them concurrently, so they are atomics; the values are
// meaningless and never read.
var (
	sinkInt   atomic.Int64
	sinkFloat atomic.Uint64
	sinkByte  atomic.Uint32
)

// checkInterval is how many loop iterations run between context checks.
const checkInterval = 1 << 16

func cancelled(ctx context.Context, i int) error {
	if i&(checkInterval-1) == 0 {
		return ctx.Err()
	}
	return nil
}
