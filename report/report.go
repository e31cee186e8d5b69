// Package report formats benchmark results for the operator.
package report

import (
	"fmt"
	"io"
	"time"
)

// Emitter writes human-readable benchmark report lines to a single writer.
// It holds no state beyond the destination and never buffers.
type Emitter struct {
	w io.Writer
}

// NewEmitter returns an emitter writing to w.
func NewEmitter(w io.Writer) *Emitter {
	return &Emitter{w: w}
}

// Category prints a numbered category heading.
func (e *Emitter) Category(index int, title string) {
	fmt.Fprintf(e.w, "\n[%d] %s\n", index, title)
}

// Duration prints one labeled timing line. Durations are displayed in seconds
// with two decimal places. The repeat count is appended only when repeat > 1:
// averaged lines carry the count, while single-run lines keep the bare
// "label: X.XX seconds" form for compatibility with existing output parsers.
func (e *Emitter) Duration(label string, repeat int, d time.Duration) {
	if repeat > 1 {
		fmt.Fprintf(e.w, "%s: %.2f seconds (avg over %d runs)\n", label, d.Seconds(), repeat)
		return
	}
	fmt.Fprintf(e.w, "%s: %.2f seconds\n", label, d.Seconds())
}

// DiskTimes prints the two-phase disk result.
func (e *Emitter) DiskTimes(repeat int, write, read time.Duration) {
	e.Duration("Write Time", repeat, write)
	e.Duration("Read Time", repeat, read)
}

// Linef prints one free-form line, for banners and summaries.
func (e *Emitter) Linef(format string, args ...any) {
	fmt.Fprintf(e.w, format+"\n", args...)
}
