// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"strings"
)

// validate checks the merged [StructuredConfig] before it is used at startup.
func (cfg *StructuredConfig) validate() error {
	if cfg.App.TokenSignKey == "" || cfg.App.TokenIssuer == "" || cfg.App.TokenDuration <= 0 {
		return ErrInvalidAppConfigs
	}

	if cfg.Storage.DB.DSN == "" {
		return fmt.Errorf("%w: database DSN is empty", ErrInvalidStorageConfigs)
	}

	if cfg.Storage.DB.MaxOpenConns < 1 {
		return fmt.Errorf("%w: max open connections must be positive", ErrInvalidStorageConfigs)
	}

	if cfg.Server.HTTPAddress == "" {
		return ErrInvalidServerConfigs
	}

	if cfg.Bootstrap.AdminUsername == "" {
		return ErrInvalidBootstrapConfigs
	}

	return nil
}

// UsesDefaultSignKey reports whether tokens are signed with the publicly
// known default key.
func (cfg *StructuredConfig) UsesDefaultSignKey() bool {
	return cfg.App.TokenSignKey == DefaultTokenSignKey
}

func (cfg *ClientConfig) validate() error {
	if cfg.Adapter.ServerAddress == "" || cfg.Adapter.RequestTimeout <= 0 {
		return ErrInvalidAdapterConfigs
	}

	// the session has to outlive the process
	if cfg.Storage.SessionDB == "" || strings.Contains(cfg.Storage.SessionDB, ":memory:") {
		return ErrInvalidStorageConfigs
	}

	return nil
}
