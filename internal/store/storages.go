// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-protocol-catalog/internal/config"
	"github.com/MKhiriev/go-protocol-catalog/internal/logger"
)

// Storages groups the server repositories and the pool they share.
type Storages struct {
	DB                 *DB
	UserRepository     UserRepository
	ProtocolRepository ProtocolRepository
}

// NewStorages connects to PostgreSQL, applies pending migrations and wires
// the repositories.
func NewStorages(ctx context.Context, cfg config.Storage, logger *logger.Logger) (*Storages, error) {
	logger.Info().Msg("creating new storages...")

	db, err := NewConnectPostgres(ctx, cfg.DB, logger)
	if err != nil {
		return nil, fmt.Errorf("postgres connection error: %w", err)
	}

	if err = db.Migrate(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return &Storages{
		DB:                 db,
		UserRepository:     NewUserRepository(db, logger),
		ProtocolRepository: NewProtocolRepository(db, logger),
	}, nil
}

// Close releases the connection pool.
func (s *Storages) Close() error {
	if s == nil || s.DB == nil {
		return nil
	}

	return s.DB.Close()
}
