package pulse

import (
	"context"
	"fmt"
	"runtime/debug"
	"sync/atomic"
	"time"

	"github.com/nbj/pulse/internal/clock"
	"github.com/nbj/pulse/internal/logging"
	"github.com/nbj/pulse/internal/metrics"
	"github.com/nbj/pulse/internal/stopwatch"
	"github.com/nbj/pulse/types"
)

// heartbeatModulo is the fixed heartbeat cadence: a heartbeat is dispatched
// on seconds of the minute divisible by this value. Part of the monitoring
// wire contract.
const heartbeatModulo = 5

// Scheduler runs a job at a configured cadence and keeps itself alive
// through job failures.
//
// The loop is single-threaded and cooperative: each cycle measures the
// wall clock, decides whether the job (and a heartbeat) are due, runs them
// synchronously, then sleeps whatever remains of the configured cycle
// padding. A cycle that overran its padding sleeps nothing, so a slow job
// never compounds scheduling delay into late execution.
//
// Errors and panics raised by the job or the heartbeat are confined to the
// cycle they occur in: they are logged with the job identity and, for
// panics, a stack trace, and the next cycle proceeds normally. The process
// only stops via context cancellation or single-cycle mode completing.
//
// A job that never returns stalls the scheduler indefinitely; there is no
// mid-cycle timeout.
type Scheduler struct {
	cfg       Config
	job       types.Job
	heartbeat types.Heartbeater // nil means heartbeats disabled
	clock     types.Clock
	logger    types.Logger
	metrics   types.MetricsCollector

	running atomic.Bool

	// prev is the timestamp recorded at the end of the last schedule
	// check; it gates sub-second re-entry. Only the loop goroutine
	// touches it.
	prev    time.Time
	hasPrev bool
}

// NewScheduler creates a Scheduler for the given job.
//
// Missing configuration values are filled with defaults, then the
// configuration is validated.
//
// Parameters:
//   - cfg: Runtime configuration (modified in place by SetDefaults)
//   - job: Unit of work dispatched at the configured cadence
//   - opts: Optional heartbeat emitter, logger, metrics and clock
//
// Returns:
//   - *Scheduler: Initialized scheduler instance
//   - error: ErrInvalidConfig or ErrJobRequired
//
// Example:
//
//	cfg := pulse.DefaultConfig()
//	cfg.Interval = pulse.IntervalMinute
//	sched, err := pulse.NewScheduler(&cfg, job, pulse.WithHeartbeat(emitter))
func NewScheduler(cfg *Config, job types.Job, opts ...Option) (*Scheduler, error) {
	if cfg == nil {
		return nil, ErrInvalidConfig
	}
	if job == nil {
		return nil, ErrJobRequired
	}

	SetDefaults(cfg)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	options := &schedulerOptions{}
	for _, opt := range opts {
		opt(options)
	}

	// Safe defaults for optional dependencies avoid nil checks in the loop.
	clk := options.clock
	if clk == nil {
		clk = clock.NewWall()
	}

	loggerInstance := options.logger
	if loggerInstance == nil {
		loggerInstance = logging.NewSlogDefault()
	}

	metricsCollector := options.metrics
	if metricsCollector == nil {
		metricsCollector = metrics.NewNop()
	}

	return &Scheduler{
		cfg:       *cfg,
		job:       job,
		heartbeat: options.heartbeat,
		clock:     clk,
		logger:    loggerInstance,
		metrics:   metricsCollector,
	}, nil
}

// Run executes schedule checks until ctx is cancelled.
//
// Job and heartbeat failures never stop the loop; only cancellation
// returns.
//
// Returns:
//   - error: ErrAlreadyRunning if the loop is active, otherwise ctx.Err()
func (s *Scheduler) Run(ctx context.Context) error {
	if !s.running.CompareAndSwap(false, true) {
		return ErrAlreadyRunning
	}
	defer s.running.Store(false)

	s.logger.Info("scheduler started",
		"job", s.job.Name(),
		"interval", s.cfg.Interval.String(),
		"cyclePadding", s.cfg.CyclePadding,
		"heartbeats", s.heartbeat != nil,
	)

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("scheduler stopped", "job", s.job.Name())

			return ctx.Err()
		default:
		}

		if pace := s.cycle(ctx); pace > 0 {
			s.clock.Sleep(pace)
		}
	}
}

// RunOnce executes exactly one schedule check and returns.
//
// This single-cycle mode exists for deterministic testing and tooling.
// The trailing pace sleep is skipped since no next cycle follows.
//
// Returns:
//   - error: ErrAlreadyRunning if the loop is active, nil otherwise
func (s *Scheduler) RunOnce(ctx context.Context) error {
	if !s.running.CompareAndSwap(false, true) {
		return ErrAlreadyRunning
	}
	defer s.running.Store(false)

	s.cycle(ctx)

	return nil
}

// cycle performs one schedule check and returns the remaining pace to
// sleep before the next cycle.
func (s *Scheduler) cycle(ctx context.Context) time.Duration {
	sw := stopwatch.New(s.clock)
	now := s.clock.Now()

	if s.cfg.Interval == types.IntervalEveryTick {
		s.dispatchJob(ctx)
	} else {
		// The loop polls far faster than once per second; within the same
		// whole-second bucket as the last check there is nothing to do.
		if s.hasPrev && sameSecond(now, s.prev) {
			s.metrics.RecordCycleSkipped(s.job.Name())

			return s.pace(sw.Elapsed())
		}

		if s.heartbeat != nil && now.Second()%heartbeatModulo == 0 {
			s.dispatchHeartbeat(ctx)
		}

		if s.jobDue(now) {
			s.dispatchJob(ctx)
		}
	}

	// Recorded even when the dispatch failed, so the next poll within this
	// second does not immediately re-dispatch.
	s.prev = now
	s.hasPrev = true

	elapsed := sw.Elapsed()
	if s.cfg.EmitTelemetry {
		s.metrics.ObserveCycleDuration(s.job.Name(), elapsed.Seconds())
		s.logger.Debug("cycle completed", "job", s.job.Name(), "elapsed", elapsed)
	}

	return s.pace(elapsed)
}

// jobDue reports whether the job is due at the given eligible instant.
// The same-second guard has already filtered re-entry within a bucket.
func (s *Scheduler) jobDue(now time.Time) bool {
	switch s.cfg.Interval {
	case types.IntervalSecond:
		return true
	case types.IntervalMinute:
		return now.Second() == 0
	case types.IntervalHour:
		return now.Minute() == 0
	case types.IntervalDay:
		return now.Hour() == 0
	default:
		return false
	}
}

// dispatchJob runs the job, confining any error or panic to this cycle.
func (s *Scheduler) dispatchJob(ctx context.Context) {
	if err := safeRun(ctx, s.job.Process); err != nil {
		s.metrics.RecordJobRun(s.job.Name(), false)
		s.logger.Error("job failed", "job", s.job.Name(), "error", err)

		return
	}

	s.metrics.RecordJobRun(s.job.Name(), true)
}

// dispatchHeartbeat sends one heartbeat, confining failures to this cycle.
// A heartbeat failure does not suppress this cycle's job dispatch.
func (s *Scheduler) dispatchHeartbeat(ctx context.Context) {
	if err := safeRun(ctx, s.heartbeat.Beat); err != nil {
		s.logger.Error("heartbeat dispatch failed", "job", s.job.Name(), "error", err)
	}
}

// safeRun invokes fn and converts a panic into an error carrying the
// stack trace, so one bad cycle cannot take the loop down.
func safeRun(ctx context.Context, fn func(context.Context) error) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic: %v\n%s", r, debug.Stack())
		}
	}()

	return fn(ctx)
}

// pace returns how long to sleep so the full cycle fills out the
// configured padding. A cycle that ran longer than the padding gets no
// extra delay; the next cycle starts immediately.
func (s *Scheduler) pace(elapsed time.Duration) time.Duration {
	if remaining := s.cfg.CyclePadding - elapsed; remaining > 0 {
		return remaining
	}

	return 0
}

// sameSecond reports whether two instants fall in the same whole-second
// bucket.
func sameSecond(a, b time.Time) bool {
	return a.Truncate(time.Second).Equal(b.Truncate(time.Second))
}
