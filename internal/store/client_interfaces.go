package store

import (
	"context"

	"github.com/MKhiriev/go-protocol-catalog/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_store_mock.go -package=mock

// SessionRepository keeps the client's single login between runs.
type SessionRepository interface {
	// Save replaces any stored session.
	Save(ctx context.Context, session models.StoredSession) error
	// Load returns [ErrLocalSessionNotFound] when nothing is stored.
	Load(ctx context.Context) (models.StoredSession, error)
	Delete(ctx context.Context) error
}
