package types

import "context"

// Job is the unit of work a scheduler dispatches.
//
// Process runs synchronously inside the scheduler's cycle: a Job that
// never returns stalls the scheduler, and there is no mid-run timeout
// beyond what the implementation honors via ctx.
type Job interface {
	// Name identifies the job in logs and metrics.
	Name() string

	// Process performs one run of the job.
	Process(ctx context.Context) error
}

// NewJobFunc wraps a function as a named Job.
//
// Parameters:
//   - name: Job identity used in logs and metrics
//   - fn: Function invoked on each dispatch
//
// Returns:
//   - Job: Job implementation delegating to fn
func NewJobFunc(name string, fn func(ctx context.Context) error) Job {
	return &jobFunc{name: name, fn: fn}
}

type jobFunc struct {
	name string
	fn   func(ctx context.Context) error
}

func (j *jobFunc) Name() string { return j.name }

func (j *jobFunc) Process(ctx context.Context) error { return j.fn(ctx) }
