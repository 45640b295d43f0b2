// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rafail Drakakis

package config

import "time"

// Fallbacks keep both binaries runnable with zero configuration, the
// way the original single-file deployment worked: a SQLite file next
// to the server and a localhost address.
const (
	defaultServerAddress  = "localhost:8080"
	defaultDSN            = "coins.db"
	defaultRequestTimeout = 30 * time.Second

	defaultClientServerURL      = "http://localhost:8080"
	defaultClientRequestTimeout = 15 * time.Second
)

func (cfg *StructuredConfig) applyDefaults() {
	if cfg.Server.HTTPAddress == "" {
		cfg.Server.HTTPAddress = defaultServerAddress
	}
	if cfg.Server.RequestTimeout <= 0 {
		cfg.Server.RequestTimeout = defaultRequestTimeout
	}
	if cfg.Storage.DB.DSN == "" {
		cfg.Storage.DB.DSN = defaultDSN
	}
}

// validate checks that the merged server configuration satisfies the
// startup invariants.
func (cfg *StructuredConfig) validate() error {
	if cfg.Storage.DB.DSN == "" {
		return ErrInvalidStorageConfigs
	}
	if cfg.Server.HTTPAddress == "" {
		return ErrInvalidServerConfigs
	}

	return nil
}

func (cfg *ClientConfig) applyDefaults() {
	if cfg.Adapter.HTTPAddress == "" {
		cfg.Adapter.HTTPAddress = defaultClientServerURL
	}
	if cfg.Adapter.RequestTimeout <= 0 {
		cfg.Adapter.RequestTimeout = defaultClientRequestTimeout
	}
}

func (cfg *ClientConfig) validate() error {
	if cfg.Adapter.HTTPAddress == "" || cfg.Adapter.RequestTimeout <= 0 {
		return ErrInvalidAdapterConfigs
	}

	return nil
}
