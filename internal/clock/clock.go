// Package clock provides wall-clock and deterministic fake implementations
// of types.Clock.
package clock

import (
	"time"

	"github.com/nbj/pulse/types"
)

// WallClock implements types.Clock using the system clock.
type WallClock struct{}

// Compile-time assertion that WallClock implements Clock.
var _ types.Clock = (*WallClock)(nil)

// NewWall creates a wall-clock backed Clock.
func NewWall() *WallClock {
	return &WallClock{}
}

// Now returns the current system time.
func (*WallClock) Now() time.Time { return time.Now() }

// Sleep blocks via time.Sleep.
func (*WallClock) Sleep(d time.Duration) { time.Sleep(d) }
