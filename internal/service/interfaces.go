package service

import (
	"context"

	"github.com/MKhiriev/go-protocol-catalog/internal/config"
	"github.com/MKhiriev/go-protocol-catalog/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// AuthService issues and verifies session tokens.
type AuthService interface {
	// Login checks the credentials and returns a signed token together with
	// the caller's public profile. Unknown users and wrong passwords both
	// yield [ErrInvalidCredentials].
	Login(ctx context.Context, req models.LoginRequest) (models.LoginResult, error)
	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	// ParseToken returns [ErrTokenIsExpiredOrInvalid] for any token that
	// fails verification.
	ParseToken(ctx context.Context, tokenString string) (models.Principal, error)
}

// ProtocolService manages the protocol catalog.
type ProtocolService interface {
	List(ctx context.Context) ([]models.Protocol, error)
	Create(ctx context.Context, principal models.Principal, protocol models.Protocol) (int64, error)
	// Delete is allowed to administrators and to the record's creator.
	Delete(ctx context.Context, principal models.Principal, id int64) error
	// Export returns all protocols as an xlsx workbook.
	Export(ctx context.Context) ([]byte, error)
}

// UserService manages user accounts. Callers are expected to have checked
// the administrator role already.
type UserService interface {
	List(ctx context.Context) ([]models.User, error)
	Create(ctx context.Context, user models.NewUser) (int64, error)
	Update(ctx context.Context, id int64, update models.UserUpdate) error
	// Delete refuses to remove the principal's own account.
	Delete(ctx context.Context, principal models.Principal, id int64) error
	// EnsureAdmin seeds the bootstrap administrator when it is missing.
	EnsureAdmin(ctx context.Context, cfg config.Bootstrap) error
}

// AppInfoService reports build metadata.
type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}
