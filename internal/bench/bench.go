// Package bench times dot-product kernels the way the dotbench command
// reports them: total wall time over a number of repetitions, measured with
// the monotonic clock, plus the per-repetition average.
package bench

import (
	"errors"
	"fmt"
	"time"

	"github.com/go-highway/dotbench/hwy/contrib/dot"
)

// ErrInvalidReps is returned when fewer than one repetition is requested.
var ErrInvalidReps = errors.New("bench: repetitions must be at least 1")

// Result is the outcome of timing one kernel.
type Result struct {
	// Sum is the value returned by the last repetition. Kernels are pure,
	// so every repetition returns the same bits.
	Sum float64

	// Total is the elapsed time of all repetitions.
	Total time.Duration

	// Reps is the number of repetitions timed.
	Reps int
}

// PerRep returns the average elapsed time of one repetition.
func (r Result) PerRep() time.Duration {
	if r.Reps <= 0 {
		return 0
	}
	return r.Total / time.Duration(r.Reps)
}

// Micros returns PerRep in whole microseconds.
func (r Result) Micros() int64 {
	return r.PerRep().Microseconds()
}

// Run calls k(a, b) reps times back to back and reports the elapsed time.
// Lengths are checked before the timer starts, so a mismatch is an error
// rather than a panic inside the timed region.
func Run(k dot.Kernel, a, b []float64, reps int) (Result, error) {
	if reps < 1 {
		return Result{}, fmt.Errorf("%w: %d", ErrInvalidReps, reps)
	}
	if len(a) != len(b) {
		return Result{}, fmt.Errorf("bench: %w: %d != %d", dot.ErrLengthMismatch, len(a), len(b))
	}

	var sum float64
	sw := Start()
	for range reps {
		sum = k(a, b)
	}
	total := sw.Stop()

	return Result{Sum: sum, Total: total, Reps: reps}, nil
}

// Stopwatch measures elapsed time on the monotonic clock.
type Stopwatch struct {
	start time.Time
}

// Start returns a running stopwatch.
func Start() Stopwatch {
	return Stopwatch{start: time.Now()}
}

// Stop returns the time elapsed since Start. time.Now carries a monotonic
// reading, so the result is never negative even if the wall clock steps.
func (s Stopwatch) Stop() time.Duration {
	return time.Since(s.start)
}
