package proxy

import (
	"github.com/puzpuzpuz/xsync/v4"

	"github.com/nbj/pulse/types"
)

// SocketFactory produces the transport socket backing a new Connection.
type SocketFactory func(cfg Config) types.Socket

// Registry shares one Connection per DSN across a process.
//
// It replaces the classic process-global publish socket: ownership is
// explicit (whoever holds the Registry), but the reuse guarantee is the
// same. Every component asking for the same DSN gets the same long-lived
// Connection, so heartbeat sends never reconnect cycle after cycle.
//
// Registry is safe for concurrent use.
type Registry struct {
	factory SocketFactory
	opts    []Option
	conns   *xsync.Map[string, *Connection]
}

// NewRegistry creates a Registry that builds sockets with factory and
// applies opts to every Connection it creates.
//
// Parameters:
//   - factory: Builds the transport socket for a new Connection
//   - opts: Options applied to every created Connection
//
// Returns:
//   - *Registry: Empty registry
func NewRegistry(factory SocketFactory, opts ...Option) *Registry {
	return &Registry{
		factory: factory,
		opts:    opts,
		conns:   xsync.NewMap[string, *Connection](),
	}
}

// GetOrCreate returns the shared Connection for cfg's DSN, creating it on
// first use. Concurrent callers for the same DSN observe one Connection;
// a Connection created but beaten in the race is discarded before it ever
// connects.
func (r *Registry) GetOrCreate(cfg Config) *Connection {
	dsn := cfg.DSN()

	if conn, ok := r.conns.Load(dsn); ok {
		return conn
	}

	conn, _ := r.conns.LoadOrStore(dsn, New(r.factory(cfg), cfg, r.opts...))

	return conn
}

// CloseAll closes every registered connection and empties the registry.
//
// Returns:
//   - error: The first close error encountered, nil if all closed cleanly
func (r *Registry) CloseAll() error {
	var firstErr error

	r.conns.Range(func(dsn string, conn *Connection) bool {
		if err := conn.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
		r.conns.Delete(dsn)

		return true
	})

	return firstErr
}
