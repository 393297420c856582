package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
)

// fileConfig is the on-disk layout shared by the JSON and TOML formats.
type fileConfig struct {
	App struct {
		TokenSignKey     string   `json:"token_sign_key" toml:"token_sign_key"`
		TokenIssuer      string   `json:"token_issuer" toml:"token_issuer"`
		TokenDuration    Duration `json:"token_duration" toml:"token_duration"`
		PasswordHashCost int      `json:"password_hash_cost" toml:"password_hash_cost"`
		Version          string   `json:"version" toml:"version"`
		LogLevel         string   `json:"log_level" toml:"log_level"`
	} `json:"app" toml:"app"`

	Storage struct {
		DB struct {
			DSN          string `json:"dsn" toml:"dsn"`
			Host         string `json:"host" toml:"host"`
			Port         int    `json:"port" toml:"port"`
			User         string `json:"user" toml:"user"`
			Password     string `json:"password" toml:"password"`
			Name         string `json:"name" toml:"name"`
			SSLMode      string `json:"ssl_mode" toml:"ssl_mode"`
			MaxOpenConns int    `json:"max_open_conns" toml:"max_open_conns"`
		} `json:"db" toml:"db"`
	} `json:"storage" toml:"storage"`

	Server struct {
		HTTPAddress     string   `json:"http_address" toml:"http_address"`
		RequestTimeout  Duration `json:"request_timeout" toml:"request_timeout"`
		ShutdownTimeout Duration `json:"shutdown_timeout" toml:"shutdown_timeout"`
	} `json:"server" toml:"server"`

	Bootstrap struct {
		AdminUsername         string `json:"admin_username" toml:"admin_username"`
		AdminPassword         string `json:"admin_password" toml:"admin_password"`
		AdminEmail            string `json:"admin_email" toml:"admin_email"`
		AcceptDefaultPassword bool   `json:"accept_default_password" toml:"accept_default_password"`
	} `json:"bootstrap" toml:"bootstrap"`
}

// parseFile reads a config file, choosing the decoder by extension.
func parseFile(path string) (*StructuredConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	var fc fileConfig
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".json":
		if err = json.Unmarshal(data, &fc); err != nil {
			return nil, fmt.Errorf("error decoding json configs: %w", err)
		}
	case ".toml":
		if _, err = toml.Decode(string(data), &fc); err != nil {
			return nil, fmt.Errorf("error decoding toml configs: %w", err)
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedConfigFile, ext)
	}

	return fc.toStructured(), nil
}

func (fc fileConfig) toStructured() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			TokenSignKey:     fc.App.TokenSignKey,
			TokenIssuer:      fc.App.TokenIssuer,
			TokenDuration:    time.Duration(fc.App.TokenDuration),
			PasswordHashCost: fc.App.PasswordHashCost,
			Version:          fc.App.Version,
			LogLevel:         fc.App.LogLevel,
		},
		Storage: Storage{
			DB: DB{
				DSN:          fc.Storage.DB.DSN,
				Host:         fc.Storage.DB.Host,
				Port:         fc.Storage.DB.Port,
				User:         fc.Storage.DB.User,
				Password:     fc.Storage.DB.Password,
				Name:         fc.Storage.DB.Name,
				SSLMode:      fc.Storage.DB.SSLMode,
				MaxOpenConns: fc.Storage.DB.MaxOpenConns,
			},
		},
		Server: Server{
			HTTPAddress:     fc.Server.HTTPAddress,
			RequestTimeout:  time.Duration(fc.Server.RequestTimeout),
			ShutdownTimeout: time.Duration(fc.Server.ShutdownTimeout),
		},
		Bootstrap: Bootstrap{
			AdminUsername:         fc.Bootstrap.AdminUsername,
			AdminPassword:         fc.Bootstrap.AdminPassword,
			AdminEmail:            fc.Bootstrap.AdminEmail,
			AcceptDefaultPassword: fc.Bootstrap.AcceptDefaultPassword,
		},
	}
}

// Duration accepts "24h"-style strings in JSON and TOML, and plain
// nanosecond numbers in JSON.
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		return d.UnmarshalText([]byte(value))
	default:
		return fmt.Errorf("invalid duration %s", string(b))
	}
}

func (d *Duration) UnmarshalText(b []byte) error {
	tmp, err := time.ParseDuration(string(b))
	if err != nil {
		return err
	}
	*d = Duration(tmp)
	return nil
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
