package workload

import (
	"context"

	"github.com/klauspost/compress/zstd"
	"github.com/pkg/errors"
)

// compressSampleSize is the fixed input size round-tripped per iteration.
const compressSampleSize = 64 * 1024

// The encoder and decoder are stateless for the EncodeAll/DecodeAll paths and
// safe for concurrent use, so one of each serves every worker. Construction
// with default options only fails on invalid options, so a failure here is a
// programming error and panics at init rather than as a nil pointer later.
var (
	zstdEncoder *zstd.Encoder
	zstdDecoder *zstd.Decoder
)

func init() {
	var err error
	if zstdEncoder, err = zstd.NewWriter(nil); err != nil {
		panic(errors.Wrap(err, "zstd encoder init"))
	}
	if zstdDecoder, err = zstd.NewReader(nil); err != nil {
		panic(errors.Wrap(err, "zstd decoder init"))
	}
}

// Compress returns p compressed with zstd.
func Compress(p []byte) []byte {
	return zstdEncoder.EncodeAll(p, nil)
}

// Decompress reverses Compress, returning the original bytes.
func Decompress(p []byte) ([]byte, error) {
	out, err := zstdDecoder.DecodeAll(p, nil)
	if err != nil {
		return nil, errors.Wrap(err, "zstd decompress")
	}
	return out, nil
}

// CompressOps round-trips a fixed 64 KiB buffer through zstd per iteration.
type CompressOps struct{}

// Name returns the workload name.
func (CompressOps) Name() string { return string(KindCompress) }

// Run compresses and decompresses the sample n times.
func (CompressOps) Run(ctx context.Context, n int) error {
	sample := make([]byte, compressSampleSize)
	for i := range sample {
		sample[i] = byte(i % 251)
	}

	for i := 0; i < n; i++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		out, err := Decompress(Compress(sample))
		if err != nil {
			return errors.Wrapf(err, "iteration %d", i)
		}
		sinkInt.Store(int64(len(out)))
	}
	return nil
}
