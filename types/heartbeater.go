package types

import "context"

// Heartbeater publishes a single liveness announcement.
//
// The scheduler treats a nil Heartbeater as "heartbeats disabled"; the
// choice is made once at construction rather than by probing runtime
// capabilities.
type Heartbeater interface {
	// Beat publishes one liveness announcement.
	Beat(ctx context.Context) error
}
