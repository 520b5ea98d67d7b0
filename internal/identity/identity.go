// Package identity derives stable socket identities for this process.
package identity

import (
	"fmt"
	"os"

	"github.com/zeebo/xxh3"
)

// Default derives a persistent identity string for the local publish
// socket.
//
// The identity is stable for the lifetime of the process so reconnects
// keep the same transport identity, and it is distinct across hosts and
// processes so two instances of the same service never collide on the
// proxy.
//
// Parameters:
//   - service: Service name used as the identity prefix
//
// Returns:
//   - string: Identity of the form "<service>-<16 hex digits>"
func Default(service string) string {
	host, err := os.Hostname()
	if err != nil {
		host = "localhost"
	}

	h := xxh3.HashString(fmt.Sprintf("%s|%s|%d", service, host, os.Getpid()))

	return fmt.Sprintf("%s-%016x", service, h)
}
