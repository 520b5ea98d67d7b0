// Package testing provides helpers for pulse tests: an embedded NATS
// server for transport integration tests, an in-memory fake socket for
// unit tests, and a testing.T-backed logger.
//
// Import it with an alias to avoid clashing with the standard library:
//
//	pulsetest "github.com/nbj/pulse/testing"
package testing
