package proxy

import (
	"fmt"
	"time"

	"gopkg.in/yaml.v3"
)

// DefaultSettleDelay is the pause after a fresh transport connect before
// the socket reliably accepts sends. The transport completes connects
// asynchronously; sends issued immediately after a connect can be
// silently dropped.
const DefaultSettleDelay = 200 * time.Millisecond

// Config configures a Connection.
type Config struct {
	// Host is the proxy host the socket dials.
	Host string `yaml:"host"`

	// Port is the proxy port the socket dials.
	Port int `yaml:"port"`

	// ServiceName identifies this service in logs and heartbeats.
	ServiceName string `yaml:"serviceName"`

	// Identity is the persistent identity the local publish socket
	// presents to the transport. Stable identities let the proxy
	// attribute a publisher across reconnects.
	Identity string `yaml:"identity"`

	// SettleDelay is the post-connect pause before the first send.
	// Defaults to DefaultSettleDelay when zero.
	SettleDelay time.Duration `yaml:"settleDelay"`
}

// UnmarshalYAML implements yaml.Unmarshaler, accepting Go duration strings
// like "200ms" for SettleDelay.
func (c *Config) UnmarshalYAML(node *yaml.Node) error {
	type rawConfig struct {
		Host        string `yaml:"host"`
		Port        int    `yaml:"port"`
		ServiceName string `yaml:"serviceName"`
		Identity    string `yaml:"identity"`
		SettleDelay string `yaml:"settleDelay"`
	}

	var raw rawConfig
	if err := node.Decode(&raw); err != nil {
		return err
	}

	c.Host = raw.Host
	c.Port = raw.Port
	c.ServiceName = raw.ServiceName
	c.Identity = raw.Identity

	if raw.SettleDelay != "" {
		d, err := time.ParseDuration(raw.SettleDelay)
		if err != nil {
			return fmt.Errorf("parse settleDelay: %w", err)
		}
		c.SettleDelay = d
	}

	return nil
}

// DSN returns the transport connection string for the configured endpoint.
//
// Returns:
//   - string: DSN of the form "tcp://<host>:<port>"
func (c Config) DSN() string {
	return fmt.Sprintf("tcp://%s:%d", c.Host, c.Port)
}
