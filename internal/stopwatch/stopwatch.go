// Package stopwatch measures elapsed wall-clock durations of operations.
package stopwatch

import (
	"time"

	"github.com/nbj/pulse/types"
)

// Stopwatch measures the elapsed duration of an operation with sub-second
// precision using an injected clock.
type Stopwatch struct {
	clock types.Clock
	start time.Time
}

// New creates a stopwatch on the given clock and starts it immediately.
func New(clk types.Clock) *Stopwatch {
	return &Stopwatch{clock: clk, start: clk.Now()}
}

// Restart resets the start instant to now.
func (s *Stopwatch) Restart() {
	s.start = s.clock.Now()
}

// Elapsed returns the duration since the stopwatch started.
func (s *Stopwatch) Elapsed() time.Duration {
	return s.clock.Now().Sub(s.start)
}
