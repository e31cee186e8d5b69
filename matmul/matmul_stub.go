//go:build nogorgonia

// Package matmul times dense square-matrix products on the gorgonia stack.
// This stub is compiled under the nogorgonia tag; every entry point reports
// the backend as unavailable.
package matmul

import "context"

// Available reports whether the gorgonia backend was compiled in.
func Available() error { return ErrUnavailable }

// Multiply always fails under the nogorgonia tag.
func Multiply(_ context.Context, _, _ int) error { return ErrUnavailable }
