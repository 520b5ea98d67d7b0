package heartbeat

import (
	"context"
	"fmt"
	"sync"

	"github.com/nbj/pulse/internal/logging"
	"github.com/nbj/pulse/internal/metrics"
	"github.com/nbj/pulse/proxy"
	"github.com/nbj/pulse/types"
)

// Wire contract for heartbeat messages. Monitoring consumers subscribe to
// this channel/topic pair.
const (
	// Channel is the well-known publish channel for heartbeats.
	Channel = "magnet_activate"

	// Topic is the fixed topic heartbeats are published under.
	Topic = "heartbeat"
)

// Payload is the JSON body of one heartbeat message.
type Payload struct {
	// Message is the human-readable liveness line,
	// "Service [<name>] - Heartbeat".
	Message string `json:"message"`

	// Count is the number of heartbeats sent before this one.
	Count uint64 `json:"count"`

	// Reset is true only on the first heartbeat after process start,
	// telling monitors to discard any state accumulated for a previous
	// incarnation of the service.
	Reset bool `json:"reset"`
}

// Emitter announces service liveness on the fixed channel and topic.
//
// The emitter holds an explicitly injected Connection; callers share one
// process-scoped connection (typically via proxy.Registry) instead of a
// hidden global socket. Emitter is safe for concurrent use.
type Emitter struct {
	conn    *proxy.Connection
	service string
	logger  types.Logger
	metrics types.HeartbeatMetrics

	mu           sync.Mutex
	count        uint64
	resetPending bool
}

// Compile-time assertion that Emitter implements Heartbeater.
var _ types.Heartbeater = (*Emitter)(nil)

// Option configures an Emitter with optional dependencies.
type Option func(*Emitter)

// WithLogger sets the logger used for heartbeat events.
func WithLogger(l types.Logger) Option {
	return func(e *Emitter) {
		if l != nil {
			e.logger = l
		}
	}
}

// WithMetrics sets the collector for heartbeat outcomes.
func WithMetrics(m types.HeartbeatMetrics) Option {
	return func(e *Emitter) {
		if m != nil {
			e.metrics = m
		}
	}
}

// NewEmitter creates a heartbeat emitter for the named service.
//
// The reset flag starts pending: the first successful heartbeat carries
// reset=true and every later one carries reset=false for the lifetime of
// the emitter.
//
// Parameters:
//   - conn: Shared publish connection (see proxy.Registry)
//   - service: Service name embedded in the heartbeat message
//   - opts: Optional logger and metrics
//
// Returns:
//   - *Emitter: Emitter ready for Beat
func NewEmitter(conn *proxy.Connection, service string, opts ...Option) *Emitter {
	e := &Emitter{
		conn:         conn,
		service:      service,
		resetPending: true,
		logger:       logging.NewSlogDefault(),
		metrics:      metrics.NewNop(),
	}
	for _, opt := range opts {
		opt(e)
	}

	return e
}

// Beat publishes one liveness announcement.
//
// A disconnected socket is connected first, so the very first Beat of a
// process pays the connect settle delay. On a successful publish the
// counter increments and the one-shot reset flag clears permanently; a
// failed publish leaves both untouched.
//
// Returns:
//   - error: ctx error if already cancelled, or the wrapped publish error
func (e *Emitter) Beat(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	if !e.conn.IsConnected() {
		e.conn.Connect()
	}

	payload := Payload{
		Message: fmt.Sprintf("Service [%s] - Heartbeat", e.service),
		Count:   e.count,
		Reset:   e.resetPending,
	}

	if err := e.conn.Send(Channel, Topic, payload); err != nil {
		e.metrics.RecordHeartbeat(e.service, false)

		return fmt.Errorf("heartbeat publish: %w", err)
	}

	e.count++
	e.resetPending = false
	e.metrics.RecordHeartbeat(e.service, true)
	e.logger.Debug("heartbeat published",
		"service", e.service, "count", e.count, "reset", payload.Reset)

	return nil
}

// Count returns the number of heartbeats successfully sent.
func (e *Emitter) Count() uint64 {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.count
}

// ResetPending reports whether the next heartbeat will carry the one-shot
// reset flag.
func (e *Emitter) ResetPending() bool {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.resetPending
}
