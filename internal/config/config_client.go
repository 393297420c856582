package config

import (
	"fmt"
	"time"

	"dario.cat/mergo"
)

const (
	DefaultClientServerAddress  = "http://localhost:5000/api"
	DefaultClientRequestTimeout = 10 * time.Second
	DefaultClientSessionDB      = "protocol-client.db"
)

// ClientAdapter holds the settings of the client's HTTP transport.
type ClientAdapter struct {
	// ServerAddress is the API base URL, including the /api prefix.
	// Env: CLIENT_SERVER_ADDRESS
	ServerAddress string `env:"SERVER_ADDRESS"`

	// RequestTimeout bounds every outbound request.
	// Env: CLIENT_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// ClientStorage holds the local session store settings.
type ClientStorage struct {
	// SessionDB is the SQLite file that keeps the login between runs.
	// Env: CLIENT_SESSION_DB
	SessionDB string `env:"SESSION_DB"`
}

// ClientConfig is the configuration of the command-line client.
type ClientConfig struct {
	Adapter ClientAdapter `envPrefix:"CLIENT_"`
	Storage ClientStorage `envPrefix:"CLIENT_"`

	// LogLevel is a zerolog level name.
	// Env: CLIENT_LOG_LEVEL
	LogLevel string `env:"CLIENT_LOG_LEVEL"`
}

func defaultClientConfig() *ClientConfig {
	return &ClientConfig{
		Adapter: ClientAdapter{
			ServerAddress:  DefaultClientServerAddress,
			RequestTimeout: DefaultClientRequestTimeout,
		},
		Storage: ClientStorage{
			SessionDB: DefaultClientSessionDB,
		},
		LogLevel: DefaultLogLevel,
	}
}

// GetClientConfig reads the client settings from the environment, fills the
// gaps with defaults and validates the result.
func GetClientConfig() (*ClientConfig, error) {
	clientCfg := &ClientConfig{}
	if err := parseEnv(clientCfg); err != nil {
		return nil, err
	}

	if err := mergo.Merge(clientCfg, defaultClientConfig()); err != nil {
		return nil, fmt.Errorf("error merging client configs: %w", err)
	}

	if err := clientCfg.validate(); err != nil {
		return nil, err
	}

	return clientCfg, nil
}
