// Package config holds the benchmark run configuration.
package config

import (
	"runtime"

	"github.com/pkg/errors"
)

// Config is the full set of operator-supplied parameters for one benchmark
// run. It is resolved once at startup, validated before any benchmark
// executes, and never mutated afterwards; inner components receive values
// from it rather than querying the environment themselves.
type Config struct {
	// Iterations is the total iteration count for the integer and
	// floating-point categories.
	Iterations int `json:"iterations"`
	// EncryptIterations is the iteration count for the SHA-256 category.
	EncryptIterations int `json:"encrypt_iterations"`
	// CompressIterations is the round-trip count for the compression category.
	CompressIterations int `json:"compress_iterations"`
	// FileSizeMB is the disk test file size in MiB.
	FileSizeMB int `json:"file_size_mb"`
	// BlockSizeKB is the disk test block size in KiB.
	BlockSizeKB int `json:"block_size_kb"`
	// ArraySize is the element count for the memory speed category.
	ArraySize int `json:"array_size"`
	// Workers is the parallel worker count for pooled runs.
	Workers int `json:"workers"`
	// Repeat is how many times each measurement is taken and averaged.
	Repeat int `json:"repeat"`
	// MatMul enables the optional matrix-multiply category.
	MatMul bool `json:"matmul"`
	// MatMulSize is the square matrix dimension for the matmul category.
	MatMulSize int `json:"matmul_size"`
	// MatMulIterations is the product count for the matmul category.
	MatMulIterations int `json:"matmul_iterations"`
}

// Default returns the configuration used when no flags are given. The worker
// count is resolved from the host core count here, once, and passed down.
func Default() Config {
	return Config{
		Iterations:         100_000_000,
		EncryptIterations:  10_000_000,
		CompressIterations: 10_000,
		FileSizeMB:         1000,
		BlockSizeKB:        64,
		ArraySize:          100_000_000,
		Workers:            runtime.NumCPU(),
		Repeat:             1,
		MatMulSize:         512,
		MatMulIterations:   10,
	}
}

// Validate rejects configurations that would produce meaningless or divide-
// by-zero measurements. It runs before any benchmark output is printed.
func (c Config) Validate() error {
	if c.Repeat < 1 {
		return errors.Errorf("repeat must be >= 1, got %d", c.Repeat)
	}
	if c.Workers < 1 {
		return errors.Errorf("workers must be >= 1, got %d", c.Workers)
	}
	if c.Iterations < 0 {
		return errors.Errorf("iterations must be >= 0, got %d", c.Iterations)
	}
	if c.EncryptIterations < 0 {
		return errors.Errorf("encrypt-iterations must be >= 0, got %d", c.EncryptIterations)
	}
	if c.CompressIterations < 0 {
		return errors.Errorf("compress-iterations must be >= 0, got %d", c.CompressIterations)
	}
	if c.FileSizeMB < 1 {
		return errors.Errorf("file-size must be >= 1 MiB, got %d", c.FileSizeMB)
	}
	if c.BlockSizeKB < 1 {
		return errors.Errorf("block-size must be >= 1 KiB, got %d", c.BlockSizeKB)
	}
	if c.BlockSizeKB > c.FileSizeMB*1024 {
		return errors.Errorf("block-size %d KiB exceeds file-size %d MiB", c.BlockSizeKB, c.FileSizeMB)
	}
	if c.ArraySize < 0 {
		return errors.Errorf("array-size must be >= 0, got %d", c.ArraySize)
	}
	if c.MatMul {
		if c.MatMulSize < 1 {
			return errors.Errorf("matmul-size must be >= 1, got %d", c.MatMulSize)
		}
		if c.MatMulIterations < 1 {
			return errors.Errorf("matmul-iterations must be >= 1, got %d", c.MatMulIterations)
		}
	}
	return nil
}
