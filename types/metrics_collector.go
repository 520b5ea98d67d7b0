package types

// MetricsCollector defines methods for recording operational metrics.
//
// Implementations should be non-blocking and handle failures gracefully.
// All methods may be called from the scheduler loop and must be thread-safe.
//
// The interface composes smaller, domain-focused interfaces so components
// can depend on only the slice they emit.
type MetricsCollector interface {
	SchedulerMetrics
	HeartbeatMetrics
	ConnectionMetrics
}

// SchedulerMetrics defines metrics for scheduler cycles.
type SchedulerMetrics interface {
	// ObserveCycleDuration records the measured duration of one full
	// scheduler cycle.
	//
	// Parameters:
	//   - job: Job name
	//   - seconds: Cycle duration in seconds
	ObserveCycleDuration(job string, seconds float64)

	// RecordJobRun records one job dispatch outcome.
	//
	// Parameters:
	//   - job: Job name
	//   - success: true if the job returned without error or panic
	RecordJobRun(job string, success bool)

	// RecordCycleSkipped records a cycle aborted by the same-second guard.
	RecordCycleSkipped(job string)
}

// HeartbeatMetrics defines metrics for heartbeat publishing.
type HeartbeatMetrics interface {
	// RecordHeartbeat records one heartbeat publish outcome.
	//
	// Parameters:
	//   - service: Service name embedded in the heartbeat
	//   - success: true if the publish reached the transport
	RecordHeartbeat(service string, success bool)
}

// ConnectionMetrics defines metrics for proxy connection operations.
type ConnectionMetrics interface {
	// RecordConnect records one transport connect attempt outcome.
	RecordConnect(dsn string, success bool)

	// RecordSend records one publish outcome by channel.
	RecordSend(channel string, success bool)
}
