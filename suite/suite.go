// Package suite drives the benchmark categories.
package suite

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"sync"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/pkg/errors"

	"github.com/nvr-ai/go-sysbench/config"
	"github.com/nvr-ai/go-sysbench/harness"
	"github.com/nvr-ai/go-sysbench/matmul"
	"github.com/nvr-ai/go-sysbench/pool"
	"github.com/nvr-ai/go-sysbench/report"
	"github.com/nvr-ai/go-sysbench/workload"
)

// Suite runs every benchmark category strictly one after another and collects
// the per-category results for the end-of-run summary.
type Suite struct {
	cfg     config.Config
	emitter *report.Emitter
	harness *harness.Harness

	mu      sync.Mutex
	results []CategoryResult
}

// New returns a suite writing its report to w.
func New(cfg config.Config, w io.Writer) *Suite {
	e := report.NewEmitter(w)
	return &Suite{
		cfg:     cfg,
		emitter: e,
		harness: harness.New(e),
		results: make([]CategoryResult, 0),
	}
}

// Run executes the configured categories in order. Parallelism exists only
// inside pooled measurements; categories never overlap. The first failure
// aborts the run.
//
// When the matrix-multiply category is enabled its backend is checked here,
// before any output, so a missing backend fails the run without printing
// partial results.
func (s *Suite) Run(ctx context.Context) error {
	if s.cfg.MatMul {
		if err := matmul.Available(); err != nil {
			return err
		}
	}

	stop := harness.StartTimer()
	s.banner()

	index := 0
	next := func() int { index++; return index }

	pooled := []struct {
		title string
		w     workload.Workload
		total int
	}{
		{"Integer Operations", workload.IntegerOps{}, s.cfg.Iterations},
		{"Floating-Point Operations", workload.FloatOps{}, s.cfg.Iterations},
		{"Encryption (SHA-256) Operations", workload.HashOps{}, s.cfg.EncryptIterations},
		{"Compression (zstd) Operations", workload.CompressOps{}, s.cfg.CompressIterations},
	}
	for _, c := range pooled {
		if err := s.runPooledCategory(ctx, next(), c.title, c.w, c.total); err != nil {
			return err
		}
	}

	if err := s.runDiskCategory(ctx, next()); err != nil {
		return err
	}
	if err := s.runMemoryCategory(ctx, next()); err != nil {
		return err
	}
	if s.cfg.MatMul {
		if err := s.runMatMulCategory(ctx, next()); err != nil {
			return err
		}
	}

	s.summary(stop())
	return nil
}

// runPooledCategory measures a workload single-threaded first, then fanned
// out across the worker pool.
func (s *Suite) runPooledCategory(ctx context.Context, index int, title string, w workload.Workload, total int) error {
	s.emitter.Category(index, title)
	startMem := captureMemory()

	single, err := s.harness.Measure(ctx, "Single Threaded Time", s.cfg.Repeat, func(ctx context.Context) error {
		return w.Run(ctx, total)
	})
	if err != nil {
		return errors.Wrapf(err, "%s: single-threaded", w.Name())
	}

	label := fmt.Sprintf("Parallel Time (%d workers)", s.cfg.Workers)
	parallel, err := s.harness.Measure(ctx, label, s.cfg.Repeat, func(ctx context.Context) error {
		return pool.Run(ctx, w.Run, total, s.cfg.Workers)
	})
	if err != nil {
		return errors.Wrapf(err, "%s: pooled", w.Name())
	}

	s.record(CategoryResult{
		Name:           title,
		SingleThreaded: single,
		Parallel:       parallel,
		Memory:         deltaMemory(startMem, captureMemory()),
	})
	slog.Debug("category complete",
		"category", title, "single", single, "parallel", parallel, "workers", s.cfg.Workers)
	return nil
}

// runDiskCategory times the sequential write and read phases separately,
// averaging each across repeats.
func (s *Suite) runDiskCategory(ctx context.Context, index int) error {
	s.emitter.Category(index, "Disk I/O Operations")
	startMem := captureMemory()

	d := workload.DiskIO{
		FileSizeMB:  s.cfg.FileSizeMB,
		BlockSizeKB: s.cfg.BlockSizeKB,
	}

	var writeTotal, readTotal time.Duration
	for i := 0; i < s.cfg.Repeat; i++ {
		write, read, err := d.Run(ctx)
		if err != nil {
			return errors.Wrap(err, "disk i/o")
		}
		writeTotal += write
		readTotal += read
	}
	write := writeTotal / time.Duration(s.cfg.Repeat)
	read := readTotal / time.Duration(s.cfg.Repeat)

	s.emitter.DiskTimes(s.cfg.Repeat, write, read)
	s.record(CategoryResult{
		Name:      "Disk I/O Operations",
		WriteTime: write,
		ReadTime:  read,
		Memory:    deltaMemory(startMem, captureMemory()),
	})
	slog.Debug("category complete", "category", "disk", "write", write, "read", read)
	return nil
}

func (s *Suite) runMemoryCategory(ctx context.Context, index int) error {
	s.emitter.Category(index, "Memory Speed Operations")
	startMem := captureMemory()

	w := workload.MemoryFill{}
	d, err := s.harness.Measure(ctx, "Time", s.cfg.Repeat, func(ctx context.Context) error {
		return w.Run(ctx, s.cfg.ArraySize)
	})
	if err != nil {
		return errors.Wrap(err, "memory speed")
	}

	s.record(CategoryResult{
		Name:           "Memory Speed Operations",
		SingleThreaded: d,
		Memory:         deltaMemory(startMem, captureMemory()),
	})
	return nil
}

func (s *Suite) runMatMulCategory(ctx context.Context, index int) error {
	title := fmt.Sprintf("Matrix Multiply (%dx%d) Operations", s.cfg.MatMulSize, s.cfg.MatMulSize)
	s.emitter.Category(index, title)
	startMem := captureMemory()

	d, err := s.harness.Measure(ctx, "Time", s.cfg.Repeat, func(ctx context.Context) error {
		return matmul.Multiply(ctx, s.cfg.MatMulSize, s.cfg.MatMulIterations)
	})
	if err != nil {
		return errors.Wrap(err, "matrix multiply")
	}

	s.record(CategoryResult{
		Name:           title,
		SingleThreaded: d,
		Memory:         deltaMemory(startMem, captureMemory()),
	})
	return nil
}

func (s *Suite) record(r CategoryResult) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.results = append(s.results, r)
}

// GetResults returns a copy of the results recorded so far.
func (s *Suite) GetResults() []CategoryResult {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]CategoryResult, len(s.results))
	copy(out, s.results)
	return out
}

func (s *Suite) banner() {
	s.emitter.Linef("Starting benchmarks with %d workers...", s.cfg.Workers)
	s.emitter.Linef("Disk test: %s file, %s blocks",
		humanize.IBytes(uint64(s.cfg.FileSizeMB)<<20),
		humanize.IBytes(uint64(s.cfg.BlockSizeKB)<<10))
	if s.cfg.Repeat > 1 {
		s.emitter.Linef("Averaging each measurement over %d runs", s.cfg.Repeat)
	}
}

func (s *Suite) summary(total time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.emitter.Linef("")
	s.emitter.Linef("=== BENCHMARK RESULTS SUMMARY ===")
	s.emitter.Linef("Categories completed: %d in %.2f seconds", len(s.results), total.Seconds())
	for _, r := range s.results {
		s.emitter.Linef("  %s: %s allocated, %d GC cycles",
			r.Name, humanize.IBytes(r.Memory.TotalAllocBytes), r.Memory.NumGC)
	}
}
