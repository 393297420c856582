package config

import "errors"

// Validation errors returned when a merged configuration cannot be used.
var (
	// ErrInvalidAppConfigs indicates missing token settings.
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
	// ErrInvalidStorageConfigs indicates an unusable database or session
	// store setting.
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidServerConfigs indicates a missing listen address.
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrInvalidBootstrapConfigs indicates a missing bootstrap admin name.
	ErrInvalidBootstrapConfigs = errors.New("invalid bootstrap configuration")
	// ErrInvalidAdapterConfigs indicates invalid client transport settings.
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configuration")

	ErrUnsupportedConfigFile = errors.New("unsupported config file extension")
)
