package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-protocol-catalog/internal/config"
	"github.com/MKhiriev/go-protocol-catalog/internal/logger"
)

// ClientStorages groups the client's local repositories.
type ClientStorages struct {
	DB                *DB
	SessionRepository SessionRepository
}

// NewClientStorages opens the SQLite session file named in cfg, migrates it
// and wires the session repository.
func NewClientStorages(ctx context.Context, cfg config.ClientStorage, logger *logger.Logger) (*ClientStorages, error) {
	db, err := NewConnectSQLite(ctx, cfg.SessionDB, logger)
	if err != nil {
		return nil, fmt.Errorf("sqlite connection error: %w", err)
	}

	if err = db.Migrate(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return &ClientStorages{
		DB:                db,
		SessionRepository: NewSessionRepository(db, logger),
	}, nil
}

func (s *ClientStorages) Close() error {
	if s == nil || s.DB == nil {
		return nil
	}

	return s.DB.Close()
}
