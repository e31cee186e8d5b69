package workload

import "context"

// MemoryFill allocates an int slice of n elements and fills it sequentially,
// exercising allocation and linear write bandwidth.
type MemoryFill struct{}

// Name returns the workload name.
func (MemoryFill) Name() string { return string(KindMemory) }

// Run allocates and fills the slice, then discards it.
func (MemoryFill) Run(ctx context.Context, n int) error {
	data := make([]int, n)
	for i := range data {
		if err := cancelled(ctx, i); err != nil {
			return err
		}
		data[i] = i
	}
	if n > 0 {
		sinkInt.Store(int64(data[n-1]))
	}
	return nil
}
