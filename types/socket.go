package types

// EndpointDirection distinguishes outbound (connect) endpoints from
// inbound (bind) endpoints on a socket.
type EndpointDirection int

const (
	// DirectionConnect marks an endpoint this socket dialed out to.
	DirectionConnect EndpointDirection = iota

	// DirectionBind marks an endpoint this socket listens on.
	DirectionBind
)

// Endpoint describes one live endpoint of a socket.
type Endpoint struct {
	// Addr is the remote or local address, e.g. "tcp://proxy:5557".
	Addr string

	// Direction reports whether the endpoint was dialed or bound.
	Direction EndpointDirection
}

// Socket is the black-box publish transport a proxy connection drives.
//
// Implementations must treat SendMultipart as atomic: either every frame
// is handed to the transport as one unit or the call fails. Partial-frame
// delivery is never observable by the caller.
type Socket interface {
	// Connect dials the transport endpoint identified by dsn.
	Connect(dsn string) error

	// SendMultipart transmits frames as a single atomic multi-part message.
	SendMultipart(frames ...[]byte) error

	// Endpoints returns the currently live endpoints of the socket. The
	// result must reflect live transport state, never a cached flag, so a
	// silently dropped connection is visible on the next query.
	Endpoints() []Endpoint

	// Close releases the underlying transport resources.
	Close() error
}
