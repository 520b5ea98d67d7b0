package clock

import (
	"sync"
	"time"

	"github.com/nbj/pulse/types"
)

// Fake is a manually advanced clock for deterministic tests.
//
// Sleep advances the clock instead of blocking, so loops under test run at
// full speed while observing consistent timestamps. Every Sleep duration is
// recorded for assertions on pacing behavior.
type Fake struct {
	mu    sync.Mutex
	now   time.Time
	slept []time.Duration
}

// Compile-time assertion that Fake implements Clock.
var _ types.Clock = (*Fake)(nil)

// NewFake creates a fake clock starting at the given instant.
func NewFake(start time.Time) *Fake {
	return &Fake{now: start}
}

// Now returns the fake current time.
func (f *Fake) Now() time.Time {
	f.mu.Lock()
	defer f.mu.Unlock()

	return f.now
}

// Advance moves the clock forward by d.
func (f *Fake) Advance(d time.Duration) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.now = f.now.Add(d)
}

// Set jumps the clock to the given instant.
func (f *Fake) Set(t time.Time) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.now = t
}

// Sleep records the requested duration and advances the clock by it
// without blocking.
func (f *Fake) Sleep(d time.Duration) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.slept = append(f.slept, d)
	f.now = f.now.Add(d)
}

// Slept returns every duration passed to Sleep, in order.
func (f *Fake) Slept() []time.Duration {
	f.mu.Lock()
	defer f.mu.Unlock()

	out := make([]time.Duration, len(f.slept))
	copy(out, f.slept)

	return out
}
