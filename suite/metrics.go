package suite

import (
	"runtime"
	"time"
)

// CategoryResult captures the outcome of one benchmark category. Results are
// reported immediately and retained only for the end-of-run summary; nothing
// is persisted across runs.
type CategoryResult struct {
	Name           string        `json:"name"`
	SingleThreaded time.Duration `json:"single_threaded,omitempty"`
	Parallel       time.Duration `json:"parallel,omitempty"`
	WriteTime      time.Duration `json:"write_time,omitempty"`
	ReadTime       time.Duration `json:"read_time,omitempty"`
	Memory         MemoryMetrics `json:"memory_stats"`
}

// MemoryMetrics captures heap activity over one category.
type MemoryMetrics struct {
	AllocBytes      uint64 `json:"alloc_bytes"`
	TotalAllocBytes uint64 `json:"total_alloc_bytes"`
	SysBytes        uint64 `json:"sys_bytes"`
	NumGC           uint32 `json:"num_gc"`
}

// captureMemory forces a collection and snapshots the runtime memory state,
// bracketing a category so allocation deltas are attributable to it.
func captureMemory() runtime.MemStats {
	runtime.GC()
	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	return m
}

func deltaMemory(start, end runtime.MemStats) MemoryMetrics {
	return MemoryMetrics{
		AllocBytes:      end.Alloc,
		TotalAllocBytes: end.TotalAlloc - start.TotalAlloc,
		SysBytes:        end.Sys,
		NumGC:           end.NumGC - start.NumGC,
	}
}
