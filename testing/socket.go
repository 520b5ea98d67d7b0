package testing

import (
	"sync"

	"github.com/nbj/pulse/types"
)

// FakeSocket is an in-memory types.Socket for unit tests.
//
// It records every multipart message, lets tests force connect or send
// failures, and can drop the connection out from under the caller to
// exercise live-state queries.
type FakeSocket struct {
	// ConnectErr, when set, fails the next Connect call and is then
	// cleared so a retry succeeds.
	ConnectErr error

	// SendErr, when set, fails every SendMultipart call.
	SendErr error

	mu        sync.Mutex
	connected bool
	dsn       string
	closed    bool
	sent      [][][]byte
}

// Compile-time assertion that FakeSocket implements Socket.
var _ types.Socket = (*FakeSocket)(nil)

// NewFakeSocket creates a disconnected fake socket.
func NewFakeSocket() *FakeSocket {
	return &FakeSocket{}
}

// Connect marks the socket connected to dsn, or fails once with ConnectErr.
func (f *FakeSocket) Connect(dsn string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.ConnectErr != nil {
		err := f.ConnectErr
		f.ConnectErr = nil

		return err
	}

	f.connected = true
	f.dsn = dsn

	return nil
}

// SendMultipart records the frames as one message, or fails with SendErr.
func (f *FakeSocket) SendMultipart(frames ...[]byte) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.SendErr != nil {
		return f.SendErr
	}

	msg := make([][]byte, len(frames))
	copy(msg, frames)
	f.sent = append(f.sent, msg)

	return nil
}

// Endpoints reports one connect-direction endpoint while connected.
func (f *FakeSocket) Endpoints() []types.Endpoint {
	f.mu.Lock()
	defer f.mu.Unlock()

	if !f.connected {
		return nil
	}

	return []types.Endpoint{{Addr: f.dsn, Direction: types.DirectionConnect}}
}

// Close disconnects the socket and marks it closed.
func (f *FakeSocket) Close() error {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.connected = false
	f.closed = true

	return nil
}

// Drop simulates the transport silently losing the connection.
func (f *FakeSocket) Drop() {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.connected = false
}

// Sent returns every multipart message sent so far.
func (f *FakeSocket) Sent() [][][]byte {
	f.mu.Lock()
	defer f.mu.Unlock()

	out := make([][][]byte, len(f.sent))
	copy(out, f.sent)

	return out
}

// Closed reports whether Close was called.
func (f *FakeSocket) Closed() bool {
	f.mu.Lock()
	defer f.mu.Unlock()

	return f.closed
}
