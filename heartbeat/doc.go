// Package heartbeat publishes periodic liveness announcements over a
// proxy connection.
//
// An Emitter announces that the service is alive on a well-known channel
// and topic so a monitoring recipient can detect crashes. The scheduler
// drives the cadence (every fifth second of the minute); the emitter only
// knows how to publish one announcement and track its counter state.
package heartbeat
