package pulse

import "errors"

// Sentinel errors returned by the Scheduler.
var (
	// ErrInvalidConfig is returned when the configuration is invalid.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrJobRequired is returned when the job is nil.
	ErrJobRequired = errors.New("job is required")

	// ErrAlreadyRunning is returned when Run or RunOnce is called while
	// the scheduler loop is already active.
	ErrAlreadyRunning = errors.New("scheduler already running")
)
