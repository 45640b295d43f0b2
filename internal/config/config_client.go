package config

import (
	"time"
)

// ClientConfig is the top-level configuration of the coin-keeper TUI
// client, populated from environment variables and command-line flags.
type ClientConfig struct {
	// Adapter configures the connection to the coin server.
	Adapter ClientAdapter `envPrefix:"ADAPTER_"`
}

// ClientAdapter holds settings of the HTTP adapter through which the
// client consumes the coin server API.
type ClientAdapter struct {
	// HTTPAddress is the base URL of the coin server. A bare
	// "host:port" is accepted; the adapter normalises it to a URL.
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds a single outbound request (e.g. "15s").
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// GetClientConfig loads, merges, defaults, and validates the client
// configuration from environment variables and flags.
func GetClientConfig() (*ClientConfig, error) {
	return newClientConfigBuilder().
		withEnv().
		withFlags().
		build()
}
