package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── helpers ───────────────────────────────────────────────────────────────────

func writeTempFile(t *testing.T, name, body string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(p, []byte(body), 0o600))
	return p
}

// ── build ─────────────────────────────────────────────────────────────────────

func TestNewConfigBuilder_InitialState(t *testing.T) {
	b := newConfigBuilder()
	require.NotNil(t, b)
	assert.NoError(t, b.err)
	assert.Empty(t, b.configs)
}

func TestBuild_DefaultsOnly(t *testing.T) {
	cfg, err := newConfigBuilder().withDefaults().build()
	require.NoError(t, err)

	assert.Equal(t, ":5000", cfg.Server.HTTPAddress)
	assert.Equal(t, DefaultTokenSignKey, cfg.App.TokenSignKey)
	assert.Equal(t, "protocol-catalog", cfg.App.TokenIssuer)
	assert.Equal(t, 24*time.Hour, cfg.App.TokenDuration)
	assert.Equal(t, 10, cfg.App.PasswordHashCost)
	assert.Equal(t, 10, cfg.Storage.DB.MaxOpenConns)
	assert.Equal(t, "postgres://postgres@localhost:5432/protocol_management?sslmode=disable", cfg.Storage.DB.DSN)
	assert.Equal(t, "admin", cfg.Bootstrap.AdminUsername)
	assert.Equal(t, "admin@example.com", cfg.Bootstrap.AdminEmail)
	assert.Empty(t, cfg.Bootstrap.AdminPassword)
	assert.False(t, cfg.Bootstrap.AcceptDefaultPassword)
	assert.True(t, cfg.UsesDefaultSignKey())
}

func TestBuild_PropagatesBuilderError(t *testing.T) {
	b := newConfigBuilder()
	b.err = assert.AnError

	cfg, err := b.build()
	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
}

func TestBuild_FirstNonZeroWins(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{App: App{TokenSignKey: "from-env"}},
		&StructuredConfig{App: App{TokenSignKey: "from-flags", TokenIssuer: "flags-issuer"}},
	)

	cfg, err := b.withDefaults().build()
	require.NoError(t, err)
	assert.Equal(t, "from-env", cfg.App.TokenSignKey)
	assert.Equal(t, "flags-issuer", cfg.App.TokenIssuer)
	assert.False(t, cfg.UsesDefaultSignKey())
}

func TestBuild_ExplicitDSNIsKept(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{
		Storage: Storage{DB: DB{DSN: "postgres://u:p@db:5432/catalog"}},
	})

	cfg, err := b.withDefaults().build()
	require.NoError(t, err)
	assert.Equal(t, "postgres://u:p@db:5432/catalog", cfg.Storage.DB.DSN)
}

func TestBuild_ValidationFails(t *testing.T) {
	_, err := newConfigBuilder().build()
	assert.ErrorIs(t, err, ErrInvalidAppConfigs)
}

func TestBuildDSN(t *testing.T) {
	tests := []struct {
		name string
		db   DB
		want string
	}{
		{
			name: "all parts",
			db:   DB{Host: "db", Port: 5433, User: "app", Password: "p@ss word", Name: "catalog", SSLMode: "require"},
			want: "postgres://app:p%40ss%20word@db:5433/catalog?sslmode=require",
		},
		{
			name: "no password",
			db:   DB{Host: "localhost", Port: 5432, User: "postgres", Name: "protocol_management"},
			want: "postgres://postgres@localhost:5432/protocol_management",
		},
		{
			name: "no host",
			db:   DB{Port: 5432, Name: "x"},
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.db.buildDSN())
		})
	}
}

// ── sources combined ──────────────────────────────────────────────────────────

func TestBuilder_EnvOverFlagsOverFileOverDefaults(t *testing.T) {
	path := writeTempFile(t, "config.toml", `
[app]
token_issuer = "file-issuer"
token_duration = "2h"

[server]
http_address = ":7000"

[bootstrap]
admin_email = "root@example.com"
`)

	t.Setenv("APP_TOKEN_SIGN_KEY", "env-key")
	t.Setenv("CONFIG", path)

	cfg, err := newConfigBuilder().
		withEnv().
		withFlags([]string{"-a", ":6000", "-token-sign-key", "flag-key"}).
		withFile().
		withDefaults().
		build()
	require.NoError(t, err)

	assert.Equal(t, "env-key", cfg.App.TokenSignKey)
	assert.Equal(t, ":6000", cfg.Server.HTTPAddress)
	assert.Equal(t, "file-issuer", cfg.App.TokenIssuer)
	assert.Equal(t, 2*time.Hour, cfg.App.TokenDuration)
	assert.Equal(t, "root@example.com", cfg.Bootstrap.AdminEmail)
	assert.Equal(t, "admin", cfg.Bootstrap.AdminUsername)
}

func TestBuilder_MissingFile(t *testing.T) {
	_, err := newConfigBuilder().
		withFlags([]string{"-c", filepath.Join(t.TempDir(), "absent.json")}).
		withFile().
		withDefaults().
		build()
	require.Error(t, err)
}

func TestBuilder_BadFlag(t *testing.T) {
	_, err := newConfigBuilder().withFlags([]string{"-unknown"}).withDefaults().build()
	require.Error(t, err)
}
