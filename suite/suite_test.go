package suite

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nvr-ai/go-sysbench/config"
)

// tinyConfig keeps end-to-end runs fast enough for tests.
func tinyConfig() config.Config {
	return config.Config{
		Iterations:         50_000,
		EncryptIterations:  1_000,
		CompressIterations: 5,
		FileSizeMB:         1,
		BlockSizeKB:        64,
		ArraySize:          100_000,
		Workers:            2,
		Repeat:             1,
		MatMulSize:         16,
		MatMulIterations:   2,
	}
}

func TestRunAllCategories(t *testing.T) {
	var buf bytes.Buffer
	s := New(tinyConfig(), &buf)

	require.NoError(t, s.Run(context.Background()))

	results := s.GetResults()
	require.Len(t, results, 6)
	assert.Equal(t, "Integer Operations", results[0].Name)
	assert.Equal(t, "Disk I/O Operations", results[4].Name)
	assert.Equal(t, "Memory Speed Operations", results[5].Name)

	out := buf.String()
	assert.Contains(t, out, "Starting benchmarks with 2 workers...")
	assert.Contains(t, out, "[1] Integer Operations")
	assert.Contains(t, out, "Single Threaded Time:")
	assert.Contains(t, out, "Parallel Time (2 workers):")
	assert.Contains(t, out, "Write Time:")
	assert.Contains(t, out, "Read Time:")
	assert.Contains(t, out, "=== BENCHMARK RESULTS SUMMARY ===")
	assert.Contains(t, out, "Categories completed: 6")
}

func TestRunWithRepeatAverages(t *testing.T) {
	cfg := tinyConfig()
	cfg.Repeat = 2

	var buf bytes.Buffer
	s := New(cfg, &buf)

	require.NoError(t, s.Run(context.Background()))
	assert.Contains(t, buf.String(), "(avg over 2 runs)")
}

func TestRunCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var buf bytes.Buffer
	s := New(tinyConfig(), &buf)

	err := s.Run(ctx)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, s.GetResults())
}

func TestCategoryMemoryMetricsPopulated(t *testing.T) {
	cfg := tinyConfig()
	cfg.ArraySize = 1_000_000

	var buf bytes.Buffer
	s := New(cfg, &buf)
	require.NoError(t, s.Run(context.Background()))

	for _, r := range s.GetResults() {
		if r.Name == "Memory Speed Operations" {
			// The fill allocates ~8 MB; the delta must reflect it.
			assert.Greater(t, r.Memory.TotalAllocBytes, uint64(1_000_000))
		}
	}
}
