package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/nbj/pulse/types"
)

// PrometheusCollector implements types.MetricsCollector backed by Prometheus.
type PrometheusCollector struct {
	reg       prometheus.Registerer
	namespace string
	once      sync.Once

	cycleDuration *prometheus.HistogramVec
	jobRuns       *prometheus.CounterVec
	cyclesSkipped *prometheus.CounterVec
	heartbeats    *prometheus.CounterVec
	connects      *prometheus.CounterVec
	sends         *prometheus.CounterVec
}

// Compile-time assertion that PrometheusCollector implements MetricsCollector.
var _ types.MetricsCollector = (*PrometheusCollector)(nil)

// NewPrometheus creates a new Prometheus-backed metrics collector.
//
// Parameters:
//   - reg: Prometheus registerer interface (uses prometheus.DefaultRegisterer if nil)
//   - namespace: Prometheus metrics namespace (defaults to "pulse" if empty)
//
// Returns:
//   - *PrometheusCollector: A MetricsCollector implementation using Prometheus
func NewPrometheus(reg prometheus.Registerer, namespace string) *PrometheusCollector {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	if namespace == "" {
		namespace = "pulse"
	}

	return &PrometheusCollector{reg: reg, namespace: namespace}
}

func (p *PrometheusCollector) ensureRegistered() {
	p.once.Do(func() {
		p.cycleDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: p.namespace,
			Subsystem: "scheduler",
			Name:      "cycle_duration_seconds",
			Help:      "Measured duration of full scheduler cycles in seconds.",
			Buckets:   []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
		}, []string{"job"})

		p.jobRuns = prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: p.namespace,
			Subsystem: "scheduler",
			Name:      "job_runs_total",
			Help:      "Total job dispatch outcomes (success|failure).",
		}, []string{"job", "result"})

		p.cyclesSkipped = prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: p.namespace,
			Subsystem: "scheduler",
			Name:      "cycles_skipped_total",
			Help:      "Total cycles aborted by the same-second guard.",
		}, []string{"job"})

		p.heartbeats = prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: p.namespace,
			Subsystem: "heartbeat",
			Name:      "published_total",
			Help:      "Total heartbeat publish outcomes (success|failure).",
		}, []string{"service", "result"})

		p.connects = prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: p.namespace,
			Subsystem: "connection",
			Name:      "connects_total",
			Help:      "Total transport connect attempt outcomes (success|failure).",
		}, []string{"result"})

		p.sends = prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: p.namespace,
			Subsystem: "connection",
			Name:      "sends_total",
			Help:      "Total publish outcomes by channel (success|failure).",
		}, []string{"channel", "result"})

		p.reg.MustRegister(p.cycleDuration)
		p.reg.MustRegister(p.jobRuns)
		p.reg.MustRegister(p.cyclesSkipped)
		p.reg.MustRegister(p.heartbeats)
		p.reg.MustRegister(p.connects)
		p.reg.MustRegister(p.sends)
	})
}

// SchedulerMetrics implementation

// ObserveCycleDuration observes one cycle duration sample for the job.
func (p *PrometheusCollector) ObserveCycleDuration(job string, seconds float64) {
	p.ensureRegistered()
	p.cycleDuration.WithLabelValues(job).Observe(seconds)
}

// RecordJobRun counts one job dispatch outcome.
func (p *PrometheusCollector) RecordJobRun(job string, success bool) {
	p.ensureRegistered()
	p.jobRuns.WithLabelValues(job, outcome(success)).Inc()
}

// RecordCycleSkipped counts one cycle aborted by the same-second guard.
func (p *PrometheusCollector) RecordCycleSkipped(job string) {
	p.ensureRegistered()
	p.cyclesSkipped.WithLabelValues(job).Inc()
}

// HeartbeatMetrics implementation

// RecordHeartbeat counts one heartbeat publish outcome.
func (p *PrometheusCollector) RecordHeartbeat(service string, success bool) {
	p.ensureRegistered()
	p.heartbeats.WithLabelValues(service, outcome(success)).Inc()
}

// ConnectionMetrics implementation

// RecordConnect counts one transport connect attempt outcome.
//
// The DSN is intentionally not a label: a process talks to one proxy and
// per-DSN label cardinality buys nothing.
func (p *PrometheusCollector) RecordConnect(_ /* dsn */ string, success bool) {
	p.ensureRegistered()
	p.connects.WithLabelValues(outcome(success)).Inc()
}

// RecordSend counts one publish outcome by channel.
func (p *PrometheusCollector) RecordSend(channel string, success bool) {
	p.ensureRegistered()
	p.sends.WithLabelValues(channel, outcome(success)).Inc()
}

func outcome(success bool) string {
	if success {
		return "success"
	}

	return "failure"
}
