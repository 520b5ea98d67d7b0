package proxy

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/nbj/pulse/internal/clock"
	"github.com/nbj/pulse/internal/jsonutil"
	"github.com/nbj/pulse/internal/logging"
	"github.com/nbj/pulse/internal/metrics"
	"github.com/nbj/pulse/types"
)

// Sentinel errors returned by Connection.
var (
	// ErrNotConnected is returned by Send when the socket has no live
	// connect-direction endpoint.
	ErrNotConnected = errors.New("cannot send, not connected")

	// ErrInvalidChannel is returned by Send for an empty channel name.
	ErrInvalidChannel = errors.New("invalid channel")

	// ErrInvalidTopic is returned by Send for an empty topic name.
	ErrInvalidTopic = errors.New("invalid topic")

	// ErrSendFailed wraps transport-level send failures.
	ErrSendFailed = errors.New("send failed")
)

// Connection owns one outbound publish socket.
//
// Guarantees:
//   - No message is handed to the transport while disconnected.
//   - Every payload is valid JSON by the time it is on the wire.
//   - Connection state is queried live from the socket, never cached, so
//     a silently dropped connection cannot diverge from what IsConnected
//     reports.
//
// Connection is safe for concurrent use; connect and send are serialized
// against the socket.
type Connection struct {
	dsn     string
	service string
	settle  time.Duration
	socket  types.Socket
	clock   types.Clock
	logger  types.Logger
	metrics types.ConnectionMetrics

	mu sync.Mutex
}

// Option configures a Connection with optional dependencies.
type Option func(*Connection)

// WithLogger sets the logger used for connection events.
func WithLogger(l types.Logger) Option {
	return func(c *Connection) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithClock sets the clock used for the post-connect settle delay.
func WithClock(clk types.Clock) Option {
	return func(c *Connection) {
		if clk != nil {
			c.clock = clk
		}
	}
}

// WithMetrics sets the collector for connect and send outcomes.
func WithMetrics(m types.ConnectionMetrics) Option {
	return func(c *Connection) {
		if m != nil {
			c.metrics = m
		}
	}
}

// New creates a Connection over the given socket.
//
// The socket is exclusively owned by the returned Connection; callers
// must not drive it directly afterward.
//
// Parameters:
//   - socket: Transport socket (e.g. natssock.New(identity))
//   - cfg: Endpoint and service configuration
//   - opts: Optional logger, clock and metrics
//
// Returns:
//   - *Connection: Connection ready for Connect/Send
func New(socket types.Socket, cfg Config, opts ...Option) *Connection {
	settle := cfg.SettleDelay
	if settle == 0 {
		settle = DefaultSettleDelay
	}

	c := &Connection{
		dsn:     cfg.DSN(),
		service: cfg.ServiceName,
		settle:  settle,
		socket:  socket,
		clock:   clock.NewWall(),
		logger:  logging.NewSlogDefault(),
		metrics: metrics.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Connect ensures the socket is connected to the configured DSN.
//
// Already-connected sockets are left untouched; the repeat attempt is
// still logged so callers that reconnect defensively stay observable.
// Transport connect failures are logged and swallowed: the connection
// degrades to "not connected" and the next Send fails its guard.
func (c *Connection) Connect() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.isConnectedLocked() {
		c.logger.Info("already connected, skipping reconnect",
			"service", c.service, "dsn", c.dsn)

		return
	}

	if err := c.socket.Connect(c.dsn); err != nil {
		c.metrics.RecordConnect(c.dsn, false)
		c.logger.Error("transport connect failed",
			"service", c.service, "dsn", c.dsn, "error", err)

		return
	}

	c.metrics.RecordConnect(c.dsn, true)
	c.logger.Info("connected to proxy", "service", c.service, "dsn", c.dsn)

	// The transport completes connects asynchronously; pause so the first
	// send is not silently dropped.
	c.clock.Sleep(c.settle)
}

// IsConnected reports whether the socket has at least one live
// connect-direction endpoint. The transport is queried on every call.
func (c *Connection) IsConnected() bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.isConnectedLocked()
}

// isConnectedLocked queries the socket's live endpoint list. Callers must
// hold c.mu.
func (c *Connection) isConnectedLocked() bool {
	for _, ep := range c.socket.Endpoints() {
		if ep.Direction == types.DirectionConnect {
			return true
		}
	}

	return false
}

// Send publishes message on channel/topic as one atomic three-frame unit
// [channel, topic, payload].
//
// The message is normalized to JSON wire form: strings already holding
// encoded JSON pass through byte-identical, everything else is marshalled
// (see jsonutil.IsEncoded for the exact detection policy).
//
// Returns:
//   - error: ErrNotConnected when disconnected, ErrInvalidChannel or
//     ErrInvalidTopic for empty names, ErrSendFailed wrapping the
//     transport cause when transmission fails. After an ErrSendFailed the
//     caller must treat connection state as possibly stale.
func (c *Connection) Send(channel, topic string, message any) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.isConnectedLocked() {
		return fmt.Errorf("%w: service %s has no live connection to %s",
			ErrNotConnected, c.service, c.dsn)
	}

	if channel == "" {
		return fmt.Errorf("%w: channel must be a non-empty string, got %q", ErrInvalidChannel, channel)
	}
	if topic == "" {
		return fmt.Errorf("%w: topic must be a non-empty string, got %q", ErrInvalidTopic, topic)
	}

	payload, err := jsonutil.Normalize(message)
	if err != nil {
		return err
	}

	if err := c.socket.SendMultipart([]byte(channel), []byte(topic), payload); err != nil {
		c.metrics.RecordSend(channel, false)
		c.logger.Error("transport send failed",
			"service", c.service, "dsn", c.dsn,
			"channel", channel, "topic", topic, "error", err)

		return fmt.Errorf("%w: channel %q topic %q: %w", ErrSendFailed, channel, topic, err)
	}

	c.metrics.RecordSend(channel, true)

	return nil
}

// DSN returns the transport connection string this Connection dials.
func (c *Connection) DSN() string {
	return c.dsn
}

// Close releases the underlying socket.
func (c *Connection) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.socket.Close()
}
