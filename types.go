package pulse

import (
	"context"

	"github.com/nbj/pulse/types"
)

// Re-export types from the types subpackage.
//
// Subpackages depend on types directly to avoid import cycles; the
// aliases here give users a single import for everyday use.
type (
	Interval         = types.Interval
	Job              = types.Job
	Heartbeater      = types.Heartbeater
	Clock            = types.Clock
	Logger           = types.Logger
	MetricsCollector = types.MetricsCollector
)

// Re-export Interval constants from the types subpackage.
const (
	IntervalSecond    = types.IntervalSecond
	IntervalMinute    = types.IntervalMinute
	IntervalHour      = types.IntervalHour
	IntervalDay       = types.IntervalDay
	IntervalEveryTick = types.IntervalEveryTick
)

// JobFunc wraps fn as a Job named name.
//
// Example:
//
//	job := pulse.JobFunc("cleanup", func(ctx context.Context) error {
//	    return store.Vacuum(ctx)
//	})
func JobFunc(name string, fn func(ctx context.Context) error) Job {
	return types.NewJobFunc(name, fn)
}
