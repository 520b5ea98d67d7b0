// Package natssock implements the pulse transport socket over NATS.
//
// The three-frame wire shape [channel, topic, payload] maps onto NATS as
// subject "<channel>.<topic>" with the payload as message data, which
// keeps channel and topic independently subscribable with NATS wildcards.
// A NATS publish is atomic per message, so the multi-part unit either
// reaches the server whole or not at all.
package natssock
