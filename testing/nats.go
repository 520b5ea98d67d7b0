package testing

import (
	"net"
	"testing"
	"time"

	"github.com/nats-io/nats-server/v2/server"
	"github.com/nats-io/nats.go"
)

// StartEmbeddedNATS starts an embedded NATS server for testing.
//
// The server runs in-process on a random available port, which makes it
// safe for parallel test execution and keeps CI free of external
// dependencies. Server and client connection are cleaned up automatically
// when the test completes.
//
// Parameters:
//   - t: Testing context for logging and cleanup
//
// Returns:
//   - *server.Server: The embedded NATS server instance
//   - *nats.Conn: Connected NATS client for subscribing in assertions
//
// Example:
//
//	func TestPublish(t *testing.T) {
//	    ns, nc := pulsetest.StartEmbeddedNATS(t)
//	    host, port := pulsetest.Addr(t, ns)
//	    // Point a proxy.Config at host/port and subscribe via nc
//	}
func StartEmbeddedNATS(t *testing.T) (*server.Server, *nats.Conn) {
	t.Helper()

	opts := &server.Options{
		Host:  "127.0.0.1",
		Port:  -1, // Use random available port
		NoLog: true,
	}

	ns, err := server.NewServer(opts)
	if err != nil {
		t.Fatalf("Failed to create embedded NATS server: %v", err)
	}

	go ns.Start()

	if !ns.ReadyForConnections(5 * time.Second) {
		ns.Shutdown()
		t.Fatal("Embedded NATS server not ready within timeout")
	}

	nc, err := nats.Connect(ns.ClientURL(),
		nats.Timeout(2*time.Second),
		nats.RetryOnFailedConnect(true),
		nats.MaxReconnects(3),
	)
	if err != nil {
		ns.Shutdown()
		t.Fatalf("Failed to connect to embedded NATS server: %v", err)
	}

	t.Cleanup(func() {
		nc.Close()
		ns.Shutdown()
		ns.WaitForShutdown()
	})

	return ns, nc
}

// Addr returns the host and port of the embedded server's client endpoint,
// ready for a proxy.Config.
//
// Parameters:
//   - t: Testing context
//   - ns: Server returned by StartEmbeddedNATS
//
// Returns:
//   - string: Listen host
//   - int: Listen port
func Addr(t *testing.T, ns *server.Server) (string, int) {
	t.Helper()

	tcpAddr, ok := ns.Addr().(*net.TCPAddr)
	if !ok {
		t.Fatalf("Unexpected server address type %T", ns.Addr())
	}

	return tcpAddr.IP.String(), tcpAddr.Port
}
