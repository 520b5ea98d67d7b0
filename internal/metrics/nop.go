// Package metrics provides MetricsCollector implementations.
package metrics

import "github.com/nbj/pulse/types"

// NopMetrics implements a no-op metrics collector.
//
// All metrics are discarded. Useful for testing or when external metrics
// collection is used.
type NopMetrics struct{}

// Compile-time assertion that NopMetrics implements MetricsCollector.
var _ types.MetricsCollector = (*NopMetrics)(nil)

// NewNop creates a new no-op metrics collector.
//
// Returns:
//   - *NopMetrics: A new no-op metrics collector instance
func NewNop() *NopMetrics {
	return &NopMetrics{}
}

// SchedulerMetrics implementation

// ObserveCycleDuration discards the cycle duration sample.
func (n *NopMetrics) ObserveCycleDuration(_ /* job */ string, _ /* seconds */ float64) {
	// No-op
}

// RecordJobRun discards the job run outcome.
func (n *NopMetrics) RecordJobRun(_ /* job */ string, _ /* success */ bool) {
	// No-op
}

// RecordCycleSkipped discards the skipped cycle event.
func (n *NopMetrics) RecordCycleSkipped(_ /* job */ string) {
	// No-op
}

// HeartbeatMetrics implementation

// RecordHeartbeat discards the heartbeat outcome.
func (n *NopMetrics) RecordHeartbeat(_ /* service */ string, _ /* success */ bool) {
	// No-op
}

// ConnectionMetrics implementation

// RecordConnect discards the connect attempt outcome.
func (n *NopMetrics) RecordConnect(_ /* dsn */ string, _ /* success */ bool) {
	// No-op
}

// RecordSend discards the publish outcome.
func (n *NopMetrics) RecordSend(_ /* channel */ string, _ /* success */ bool) {
	// No-op
}
