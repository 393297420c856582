// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"

	"github.com/MKhiriev/go-protocol-catalog/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// UserRepository persists user accounts in the "users" table.
type UserRepository interface {
	// FindUserByUsername returns [ErrNoUserWasFound] when no account matches.
	FindUserByUsername(ctx context.Context, username string) (models.User, error)
	// FindUserByID returns [ErrNoUserWasFound] when no account matches.
	FindUserByID(ctx context.Context, id int64) (models.User, error)
	UsernameExists(ctx context.Context, username string) (bool, error)
	// CreateUser returns the generated id, or [ErrUsernameAlreadyExists].
	CreateUser(ctx context.Context, user models.User) (int64, error)
	// UpdateUser changes only the non-nil fields of update.
	UpdateUser(ctx context.Context, id int64, update models.UserUpdate) error
	DeleteUser(ctx context.Context, id int64) error
	// ListUsers returns all accounts, newest first.
	ListUsers(ctx context.Context) ([]models.User, error)
}

// ProtocolRepository persists protocol records in the "protocols" table.
type ProtocolRepository interface {
	// ListProtocols returns all records newest first, with the creator's
	// username resolved.
	ListProtocols(ctx context.Context) ([]models.Protocol, error)
	// ProtocolExists reports whether a record with the same composite key is
	// already stored.
	ProtocolExists(ctx context.Context, key models.ProtocolKey) (bool, error)
	// CreateProtocol returns the generated id, or [ErrProtocolAlreadyExists]
	// when the composite key is taken.
	CreateProtocol(ctx context.Context, protocol models.Protocol) (int64, error)
	// FindProtocolByID returns [ErrProtocolNotFound] when no record matches.
	FindProtocolByID(ctx context.Context, id int64) (models.Protocol, error)
	DeleteProtocol(ctx context.Context, id int64) error
}
