//go:build !nogorgonia

package suite

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunMatMulCategory(t *testing.T) {
	cfg := tinyConfig()
	cfg.MatMul = true

	var buf bytes.Buffer
	s := New(cfg, &buf)

	require.NoError(t, s.Run(context.Background()))

	results := s.GetResults()
	require.Len(t, results, 7)
	assert.Contains(t, buf.String(), "Matrix Multiply (16x16) Operations")
}
