package workload

import (
	"context"
	"math"
)

// IntegerOps burns CPU with integer modulo arithmetic.
type IntegerOps struct{}

// Name returns the workload name.
func (IntegerOps) Name() string { return string(KindInteger) }

// Run accumulates i % 2 over n iterations.
func (IntegerOps) Run(ctx context.Context, n int) error {
	count := 0
	for i := 0; i < n; i++ {
		if err := cancelled(ctx, i); err != nil {
			return err
		}
		count += i % 2
	}
	sinkInt.Store(int64(count))
	return nil
}

// FloatOps burns CPU with square roots and divisions.
type FloatOps struct{}

// Name returns the workload name.
func (FloatOps) Name() string { return string(KindFloat) }

// Run accumulates sqrt(i)/(i+1) over n iterations.
func (FloatOps) Run(ctx context.Context, n int) error {
	result := 0.0
	for i := 1; i < n; i++ {
		if err := cancelled(ctx, i); err != nil {
			return err
		}
		result += math.Sqrt(float64(i)) / float64(i+1)
	}
	sinkFloat.Store(math.Float64bits(result))
	return nil
}
