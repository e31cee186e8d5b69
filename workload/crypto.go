package workload

import (
	"bytes"
	"context"
	"crypto/sha256"
)

// hashPayloadSize is the fixed input size hashed per iteration.
const hashPayloadSize = 1024

// HashOps computes a SHA-256 digest of a fixed 1 KiB buffer per iteration.
type HashOps struct{}

// Name returns the workload name.
func (HashOps) Name() string { return string(KindHash) }

// Run hashes the payload n times, discarding each digest.
func (HashOps) Run(ctx context.Context, n int) error {
	payload := bytes.Repeat([]byte{'A'}, hashPayloadSize)
	for i := 0; i < n; i++ {
		if err := cancelled(ctx, i); err != nil {
			return err
		}
		digest := sha256.Sum256(payload)
		sinkByte.Store(uint32(digest[0]))
	}
	return nil
}
