package config

import "errors"

var (
	ErrInvalidStorageConfigs = errors.New("invalid storage configs: database DSN is required")
	ErrInvalidServerConfigs  = errors.New("invalid server configs: HTTP address is required")
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configs: server address and request timeout are required")
)
