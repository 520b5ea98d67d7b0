// Package proxy manages outbound publish connections to the message proxy.
//
// A Connection owns a single transport socket, guards every send behind a
// live connection check, and normalizes payloads to JSON wire form before
// they reach the transport. A Registry shares one Connection per DSN
// across a process so components like the heartbeat emitter reuse a single
// long-lived socket instead of reconnecting every cycle.
package proxy
