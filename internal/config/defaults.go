package config

import "time"

// Built-in defaults, applied last.
const (
	DefaultHTTPAddress      = ":5000"
	DefaultTokenSignKey     = "your-secret-key"
	DefaultTokenIssuer      = "protocol-catalog"
	DefaultTokenDuration    = 24 * time.Hour
	DefaultPasswordHashCost = 10
	DefaultLogLevel         = "info"

	DefaultDBHost         = "localhost"
	DefaultDBPort         = 5432
	DefaultDBUser         = "postgres"
	DefaultDBName         = "protocol_management"
	DefaultDBSSLMode      = "disable"
	DefaultDBMaxOpenConns = 10

	DefaultShutdownTimeout = 10 * time.Second

	DefaultAdminUsername = "admin"
	DefaultAdminEmail    = "admin@example.com"

	// DefaultAdminPassword is only used when the operator sets
	// BOOTSTRAP_ACCEPT_DEFAULT_PASSWORD=true.
	DefaultAdminPassword = "admin123"
)

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			TokenSignKey:     DefaultTokenSignKey,
			TokenIssuer:      DefaultTokenIssuer,
			TokenDuration:    DefaultTokenDuration,
			PasswordHashCost: DefaultPasswordHashCost,
			LogLevel:         DefaultLogLevel,
		},
		Storage: Storage{
			DB: DB{
				Host:         DefaultDBHost,
				Port:         DefaultDBPort,
				User:         DefaultDBUser,
				Name:         DefaultDBName,
				SSLMode:      DefaultDBSSLMode,
				MaxOpenConns: DefaultDBMaxOpenConns,
			},
		},
		Server: Server{
			HTTPAddress:     DefaultHTTPAddress,
			ShutdownTimeout: DefaultShutdownTimeout,
		},
		Bootstrap: Bootstrap{
			AdminUsername: DefaultAdminUsername,
			AdminEmail:    DefaultAdminEmail,
		},
	}
}
