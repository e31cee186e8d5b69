package workload

import (
	"bytes"
	"context"
	"io"
	"os"
	"time"

	"github.com/pkg/errors"
)

// DiskIO measures sequential write followed by sequential read of a scratch
// file. It is not a Workload: it reports two durations instead of one and is
// never pooled. The scratch file is removed on every exit path.
type DiskIO struct {
	// Dir is the scratch directory. Empty means the OS temp dir.
	Dir string
	// FileSizeMB is the total file size in MiB.
	FileSizeMB int
	// BlockSizeKB is the write/read block size in KiB.
	BlockSizeKB int
}

// Run writes then reads the scratch file, timing each phase separately.
func (d DiskIO) Run(ctx context.Context) (write, read time.Duration, err error) {
	f, err := os.CreateTemp(d.Dir, "sysbench-*.dat")
	if err != nil {
		return 0, 0, errors.Wrap(err, "create scratch file")
	}
	path := f.Name()
	defer os.Remove(path)

	block := bytes.Repeat([]byte{'A'}, d.BlockSizeKB*1024)
	blocks := d.FileSizeMB * 1024 / d.BlockSizeKB

	start := time.Now()
	for i := 0; i < blocks; i++ {
		if err := ctx.Err(); err != nil {
			f.Close()
			return 0, 0, err
		}
		if _, err := f.Write(block); err != nil {
			f.Close()
			return 0, 0, errors.Wrap(err, "write scratch file")
		}
	}
	if err := f.Close(); err != nil {
		return 0, 0, errors.Wrap(err, "close scratch file")
	}
	write = time.Since(start)

	rf, err := os.Open(path)
	if err != nil {
		return 0, 0, errors.Wrap(err, "reopen scratch file")
	}
	defer rf.Close()

	buf := make([]byte, d.BlockSizeKB*1024)
	start = time.Now()
	for {
		if err := ctx.Err(); err != nil {
			return 0, 0, err
		}
		if _, err := rf.Read(buf); err != nil {
			if err == io.EOF {
				break
			}
			return 0, 0, errors.Wrap(err, "read scratch file")
		}
	}
	read = time.Since(start)

	return write, read, nil
}
