// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter is the client's gateway to the protocol catalog API.
//
// [ServerAdapter] hides the transport from the client shell. The HTTP
// implementation ([NewHTTPServerAdapter]) reads the bearer token from a
// [TokenSource] on every call, so a login or logout elsewhere is picked up
// without touching the adapter.
//
// Non-2xx responses are mapped to the sentinel errors in errors.go and carry
// the server's message. A 401 additionally clears the token source, since the
// server no longer accepts the stored token.
package adapter

import (
	"context"

	"github.com/MKhiriev/go-protocol-catalog/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter defines transport-agnostic communication with the catalog
// server.
type ServerAdapter interface {
	// Login exchanges credentials for a token and the account profile. It
	// does not store the token; that is up to the caller.
	Login(ctx context.Context, username, password string) (models.LoginResponse, error)

	// Version returns the server build description.
	Version(ctx context.Context) (string, error)

	ListProtocols(ctx context.Context) ([]models.Protocol, error)
	CreateProtocol(ctx context.Context, protocol models.Protocol) (int64, error)
	DeleteProtocol(ctx context.Context, id int64) error

	// ExportProtocols returns the xlsx workbook produced by the server.
	ExportProtocols(ctx context.Context) ([]byte, error)

	ListUsers(ctx context.Context) ([]models.User, error)
	CreateUser(ctx context.Context, user models.NewUser) (int64, error)
	UpdateUser(ctx context.Context, id int64, update models.UserUpdate) error
	DeleteUser(ctx context.Context, id int64) error
}

// TokenSource supplies the bearer token and is told to forget it when the
// server rejects it.
type TokenSource interface {
	Token() string
	Clear(ctx context.Context) error
}
