package pulse

import "github.com/nbj/pulse/types"

// Option configures a Scheduler with optional dependencies.
type Option func(*schedulerOptions)

// schedulerOptions holds optional Scheduler configuration.
type schedulerOptions struct {
	heartbeat types.Heartbeater
	logger    types.Logger
	metrics   types.MetricsCollector
	clock     types.Clock
}

// WithHeartbeat injects the heartbeat emitter the scheduler dispatches on
// the fixed five-second cadence.
//
// Without this option heartbeats are disabled. The choice is made once at
// construction; the scheduler never probes for heartbeat capability at
// runtime.
//
// Parameters:
//   - h: Heartbeater implementation (typically *heartbeat.Emitter)
//
// Returns:
//   - Option: Functional option for NewScheduler
//
// Example:
//
//	emitter := heartbeat.NewEmitter(conn, "billing")
//	sched, err := pulse.NewScheduler(&cfg, job, pulse.WithHeartbeat(emitter))
func WithHeartbeat(h types.Heartbeater) Option {
	return func(o *schedulerOptions) {
		o.heartbeat = h
	}
}

// WithLogger sets a logger.
//
// Parameters:
//   - logger: Logger implementation (compatible with zap.SugaredLogger)
//
// Returns:
//   - Option: Functional option for NewScheduler
func WithLogger(logger types.Logger) Option {
	return func(o *schedulerOptions) {
		o.logger = logger
	}
}

// WithMetrics sets a metrics collector.
//
// Parameters:
//   - metrics: MetricsCollector implementation
//
// Returns:
//   - Option: Functional option for NewScheduler
func WithMetrics(metrics types.MetricsCollector) Option {
	return func(o *schedulerOptions) {
		o.metrics = metrics
	}
}

// WithClock sets the time source for schedule checks and pacing sleeps.
// Tests inject a fake clock for deterministic scheduling.
//
// Parameters:
//   - clk: Clock implementation
//
// Returns:
//   - Option: Functional option for NewScheduler
func WithClock(clk types.Clock) Option {
	return func(o *schedulerOptions) {
		o.clock = clk
	}
}
