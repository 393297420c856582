package service

import (
	"fmt"

	"github.com/MKhiriev/go-protocol-catalog/internal/config"
	"github.com/MKhiriev/go-protocol-catalog/internal/crypto"
	"github.com/MKhiriev/go-protocol-catalog/internal/logger"
	"github.com/MKhiriev/go-protocol-catalog/internal/store"
)

// Services aggregates the server's business services.
type Services struct {
	AuthService     AuthService
	ProtocolService ProtocolService
	UserService     UserService
	AppInfoService  AppInfoService
}

func NewServices(storages *store.Storages, cfg *config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	hasher := crypto.NewBcryptHasher(cfg.App.PasswordHashCost)

	appInfoService, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating app info service: %w", err)
	}

	return &Services{
		AuthService:     NewAuthService(storages.UserRepository, hasher, cfg.App, logger),
		ProtocolService: NewProtocolService(storages.ProtocolRepository, logger),
		UserService:     NewUserService(storages.UserRepository, hasher, logger),
		AppInfoService:  appInfoService,
	}, nil
}
