package proxy

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/nbj/pulse/internal/clock"
	"github.com/nbj/pulse/internal/logger"
	pulsetest "github.com/nbj/pulse/testing"
)

// recordingConnMetrics captures connect and send outcomes for assertions.
type recordingConnMetrics struct {
	mu       sync.Mutex
	connects []bool
	sends    []bool
}

func (m *recordingConnMetrics) RecordConnect(_ string, success bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.connects = append(m.connects, success)
}

func (m *recordingConnMetrics) RecordSend(_ string, success bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sends = append(m.sends, success)
}

func testProxyConfig() Config {
	return Config{
		Host:        "127.0.0.1",
		Port:        5557,
		ServiceName: "proxy-test",
		Identity:    "proxy-test-0000000000000000",
		SettleDelay: time.Millisecond,
	}
}

func newTestConnection(t *testing.T, sock *pulsetest.FakeSocket, opts ...Option) (*Connection, *clock.Fake) {
	t.Helper()

	fake := clock.NewFake(time.Date(2024, 3, 5, 10, 0, 0, 0, time.UTC))
	opts = append([]Option{
		WithClock(fake),
		WithLogger(logger.NewNop()),
	}, opts...)

	return New(sock, testProxyConfig(), opts...), fake
}

func TestConnection_Connect(t *testing.T) {
	t.Run("connects and settles", func(t *testing.T) {
		sock := pulsetest.NewFakeSocket()
		conn, fake := newTestConnection(t, sock)

		require.False(t, conn.IsConnected())

		conn.Connect()

		require.True(t, conn.IsConnected())
		require.Equal(t, []time.Duration{time.Millisecond}, fake.Slept())
	})

	t.Run("reconnect of a live connection is a no-op", func(t *testing.T) {
		sock := pulsetest.NewFakeSocket()
		conn, fake := newTestConnection(t, sock)

		conn.Connect()
		conn.Connect()

		// Only the fresh connect pays the settle delay.
		require.Len(t, fake.Slept(), 1)
	})

	t.Run("connect failure is swallowed", func(t *testing.T) {
		sock := pulsetest.NewFakeSocket()
		sock.ConnectErr = errors.New("dial refused")
		rec := &recordingConnMetrics{}
		conn, fake := newTestConnection(t, sock, WithMetrics(rec))

		conn.Connect()

		require.False(t, conn.IsConnected())
		require.Empty(t, fake.Slept())
		require.Equal(t, []bool{false}, rec.connects)

		// The failure is one-shot; a later attempt recovers.
		conn.Connect()
		require.True(t, conn.IsConnected())
		require.Equal(t, []bool{false, true}, rec.connects)
	})

	t.Run("zero settle delay falls back to default", func(t *testing.T) {
		cfg := testProxyConfig()
		cfg.SettleDelay = 0
		fake := clock.NewFake(time.Date(2024, 3, 5, 10, 0, 0, 0, time.UTC))
		conn := New(pulsetest.NewFakeSocket(), cfg,
			WithClock(fake), WithLogger(logger.NewNop()))

		conn.Connect()

		require.Equal(t, []time.Duration{DefaultSettleDelay}, fake.Slept())
	})
}

func TestConnection_Send(t *testing.T) {
	t.Run("guards against disconnected socket first", func(t *testing.T) {
		sock := pulsetest.NewFakeSocket()
		conn, _ := newTestConnection(t, sock)

		// Even an invalid channel reports the connection problem first.
		err := conn.Send("", "topic", "payload")
		require.ErrorIs(t, err, ErrNotConnected)
		require.Empty(t, sock.Sent())
	})

	t.Run("rejects empty channel and topic", func(t *testing.T) {
		sock := pulsetest.NewFakeSocket()
		conn, _ := newTestConnection(t, sock)
		conn.Connect()

		require.ErrorIs(t, conn.Send("", "topic", "x"), ErrInvalidChannel)
		require.ErrorIs(t, conn.Send("channel", "", "x"), ErrInvalidTopic)
		require.Empty(t, sock.Sent())
	})

	t.Run("sends three frames with normalized payload", func(t *testing.T) {
		sock := pulsetest.NewFakeSocket()
		rec := &recordingConnMetrics{}
		conn, _ := newTestConnection(t, sock, WithMetrics(rec))
		conn.Connect()

		require.NoError(t, conn.Send("alerts", "cpu", map[string]int{"load": 93}))

		sent := sock.Sent()
		require.Len(t, sent, 1)
		require.Equal(t, []byte("alerts"), sent[0][0])
		require.Equal(t, []byte("cpu"), sent[0][1])
		require.JSONEq(t, `{"load":93}`, string(sent[0][2]))
		require.Equal(t, []bool{true}, rec.sends)
	})

	t.Run("encoded JSON strings pass through byte-identical", func(t *testing.T) {
		sock := pulsetest.NewFakeSocket()
		conn, _ := newTestConnection(t, sock)
		conn.Connect()

		payload := `{"already": "encoded"}`
		require.NoError(t, conn.Send("alerts", "cpu", payload))

		sent := sock.Sent()
		require.Equal(t, []byte(payload), sent[0][2])
	})

	t.Run("plain strings become JSON string literals", func(t *testing.T) {
		sock := pulsetest.NewFakeSocket()
		conn, _ := newTestConnection(t, sock)
		conn.Connect()

		require.NoError(t, conn.Send("alerts", "cpu", "overloaded"))

		sent := sock.Sent()
		require.Equal(t, []byte(`"overloaded"`), sent[0][2])
	})

	t.Run("transport failure wraps ErrSendFailed", func(t *testing.T) {
		sock := pulsetest.NewFakeSocket()
		cause := errors.New("broken pipe")
		rec := &recordingConnMetrics{}
		conn, _ := newTestConnection(t, sock, WithMetrics(rec))
		conn.Connect()
		sock.SendErr = cause

		err := conn.Send("alerts", "cpu", "x")
		require.ErrorIs(t, err, ErrSendFailed)
		require.ErrorIs(t, err, cause)
		require.ErrorContains(t, err, `channel "alerts"`)
		require.Equal(t, []bool{false}, rec.sends)
	})

	t.Run("dropped connection is noticed live", func(t *testing.T) {
		sock := pulsetest.NewFakeSocket()
		conn, _ := newTestConnection(t, sock)
		conn.Connect()
		require.True(t, conn.IsConnected())

		sock.Drop()

		require.False(t, conn.IsConnected())
		require.ErrorIs(t, conn.Send("alerts", "cpu", "x"), ErrNotConnected)
	})
}

func TestConnection_DSN(t *testing.T) {
	conn, _ := newTestConnection(t, pulsetest.NewFakeSocket())
	require.Equal(t, "tcp://127.0.0.1:5557", conn.DSN())
}

func TestConnection_Close(t *testing.T) {
	sock := pulsetest.NewFakeSocket()
	conn, _ := newTestConnection(t, sock)
	conn.Connect()

	require.NoError(t, conn.Close())
	require.True(t, sock.Closed())
	require.False(t, conn.IsConnected())
}
