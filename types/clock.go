package types

import "time"

// Clock abstracts wall-clock access so schedulers and connections can be
// driven by a deterministic time source in tests.
type Clock interface {
	// Now returns the current wall-clock time.
	Now() time.Time

	// Sleep blocks the calling goroutine for the given duration.
	Sleep(d time.Duration)
}
