//go:build !nogorgonia

// Package matmul times dense square-matrix products on the gorgonia stack.
//
// The backend is optional: building with the nogorgonia tag swaps in a stub
// that reports unavailability, so deployments that cannot carry the numeric
// stack still build. Callers must check Available before use.
package matmul

import (
	"context"

	"github.com/chewxy/math32"
	"github.com/pkg/errors"
	G "gorgonia.org/gorgonia"
	"gorgonia.org/tensor"
)

// Available reports whether the gorgonia backend was compiled in.
func Available() error { return nil }

// Multiply computes the product of two size x size float32 matrices,
// iterations times, discarding each result. The expression graph and tape
// machine are built once and re-run per iteration.
func Multiply(ctx context.Context, size, iterations int) error {
	if size < 1 {
		return errors.Errorf("matrix size must be >= 1, got %d", size)
	}

	ta := tensor.New(tensor.WithShape(size, size), tensor.WithBacking(backing(size*size, 1)))
	tb := tensor.New(tensor.WithShape(size, size), tensor.WithBacking(backing(size*size, 2)))

	g := G.NewGraph()
	a := G.NewMatrix(g, tensor.Float32, G.WithShape(size, size), G.WithName("a"), G.WithValue(ta))
	b := G.NewMatrix(g, tensor.Float32, G.WithShape(size, size), G.WithName("b"), G.WithValue(tb))

	prod, err := G.Mul(a, b)
	if err != nil {
		return errors.Wrap(err, "build matmul graph")
	}

	vm := G.NewTapeMachine(g)
	defer vm.Close()

	for i := 0; i < iterations; i++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := vm.RunAll(); err != nil {
			return errors.Wrapf(err, "matmul iteration %d", i)
		}
		vm.Reset()
	}

	_ = prod.Value()
	return nil
}

// backing fills a float32 slice with deterministic non-trivial values.
func backing(n int, seed float32) []float32 {
	out := make([]float32, n)
	for i := range out {
		out[i] = math32.Sqrt(seed + float32(i))
	}
	return out
}
