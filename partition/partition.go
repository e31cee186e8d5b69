// Package partition splits a total workload into per-worker chunks.
package partition

// Split divides total units of work into near-equal chunks for the given
// number of workers. It emits one chunk of total/workers units per worker,
// plus a final chunk holding the remainder when total does not divide evenly.
// The chunk sizes always sum to total exactly.
//
// When total < workers every base chunk is zero and the remainder chunk
// carries all the work. Callers that want every worker busy should size their
// totals accordingly; Split never redistributes.
//
// workers must be >= 1.
func Split(total, workers int) []int {
	base := total / workers

	chunks := make([]int, workers, workers+1)
	for i := range chunks {
		chunks[i] = base
	}

	if rem := total % workers; rem != 0 {
		chunks = append(chunks, rem)
	}

	return chunks
}
