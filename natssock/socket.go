package natssock

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/nats-io/nats.go"

	"github.com/nbj/pulse/types"
)

// Sentinel errors returned by Socket.
var (
	// ErrFrameCount is returned when a multipart send does not carry
	// exactly the channel, topic and payload frames.
	ErrFrameCount = errors.New("multipart message must have exactly 3 frames")

	// ErrNotConnected is returned when sending on a socket that has not
	// connected yet.
	ErrNotConnected = errors.New("socket not connected")
)

// Socket adapts a NATS connection to the types.Socket transport contract.
//
// Socket is safe for concurrent use.
type Socket struct {
	identity string
	opts     []nats.Option

	mu sync.Mutex
	nc *nats.Conn
}

// Compile-time assertion that Socket implements types.Socket.
var _ types.Socket = (*Socket)(nil)

// New creates an unconnected socket.
//
// Parameters:
//   - identity: Persistent connection name presented to the server, so
//     the proxy can attribute this publisher across reconnects
//   - opts: Extra NATS options appended after the identity
//
// Returns:
//   - *Socket: Socket ready for Connect
func New(identity string, opts ...nats.Option) *Socket {
	return &Socket{identity: identity, opts: opts}
}

// Connect dials the DSN. The conventional "tcp://" scheme of proxy DSNs
// is translated to the "nats://" scheme the client expects. Connecting an
// already-connected socket is a no-op.
func (s *Socket) Connect(dsn string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.nc != nil && s.nc.IsConnected() {
		return nil
	}

	url := strings.Replace(dsn, "tcp://", "nats://", 1)
	opts := append([]nats.Option{nats.Name(s.identity)}, s.opts...)

	nc, err := nats.Connect(url, opts...)
	if err != nil {
		return fmt.Errorf("connect %s: %w", dsn, err)
	}

	s.nc = nc

	return nil
}

// SendMultipart publishes one [channel, topic, payload] message.
func (s *Socket) SendMultipart(frames ...[]byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(frames) != 3 {
		return fmt.Errorf("%w, got %d", ErrFrameCount, len(frames))
	}
	if s.nc == nil || !s.nc.IsConnected() {
		return ErrNotConnected
	}

	subject := fmt.Sprintf("%s.%s", frames[0], frames[1])
	if err := s.nc.Publish(subject, frames[2]); err != nil {
		return fmt.Errorf("publish %s: %w", subject, err)
	}

	// Flush so "sent" means handed to the server, not parked in the
	// client's write buffer.
	if err := s.nc.Flush(); err != nil {
		return fmt.Errorf("flush %s: %w", subject, err)
	}

	return nil
}

// Endpoints reports the live server endpoint when connected. The NATS
// client is queried directly on every call; a dropped connection vanishes
// from the result as soon as the client notices it.
func (s *Socket) Endpoints() []types.Endpoint {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.nc == nil || !s.nc.IsConnected() {
		return nil
	}

	return []types.Endpoint{{Addr: s.nc.ConnectedUrl(), Direction: types.DirectionConnect}}
}

// Close drains and closes the underlying connection.
func (s *Socket) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.nc == nil {
		return nil
	}

	err := s.nc.Drain()
	s.nc = nil

	return err
}
