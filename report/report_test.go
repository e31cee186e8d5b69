package report

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCategory(t *testing.T) {
	var buf bytes.Buffer
	NewEmitter(&buf).Category(1, "Integer Operations")
	assert.Equal(t, "\n[1] Integer Operations\n", buf.String())
}

func TestDurationSingleRun(t *testing.T) {
	var buf bytes.Buffer
	NewEmitter(&buf).Duration("Single Threaded Time", 1, 1230*time.Millisecond)
	assert.Equal(t, "Single Threaded Time: 1.23 seconds\n", buf.String())
}

func TestDurationAveraged(t *testing.T) {
	var buf bytes.Buffer
	NewEmitter(&buf).Duration("Parallel Time (4 workers)", 3, 2500*time.Millisecond)
	assert.Equal(t, "Parallel Time (4 workers): 2.50 seconds (avg over 3 runs)\n", buf.String())
}

func TestDiskTimes(t *testing.T) {
	var buf bytes.Buffer
	NewEmitter(&buf).DiskTimes(1, 2*time.Second, 500*time.Millisecond)
	assert.Equal(t, "Write Time: 2.00 seconds\nRead Time: 0.50 seconds\n", buf.String())
}

func TestLinef(t *testing.T) {
	var buf bytes.Buffer
	NewEmitter(&buf).Linef("Starting benchmarks with %d workers...", 8)
	assert.Equal(t, "Starting benchmarks with 8 workers...\n", buf.String())
}
