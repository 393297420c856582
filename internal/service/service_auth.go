// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-protocol-catalog/internal/config"
	"github.com/MKhiriev/go-protocol-catalog/internal/crypto"
	"github.com/MKhiriev/go-protocol-catalog/internal/logger"
	"github.com/MKhiriev/go-protocol-catalog/internal/store"
	"github.com/MKhiriev/go-protocol-catalog/internal/utils"
	"github.com/MKhiriev/go-protocol-catalog/models"
)

// authService is the concrete implementation of AuthService. All state is
// read-only after construction.
type authService struct {
	userRepository store.UserRepository
	hasher         crypto.PasswordHasher

	tokenSignKey  string
	tokenIssuer   string
	tokenDuration time.Duration

	// now is replaced in tests
	now func() time.Time

	logger *logger.Logger
}

func NewAuthService(userRepository store.UserRepository, hasher crypto.PasswordHasher, cfg config.App, logger *logger.Logger) AuthService {
	return &authService{
		userRepository: userRepository,
		hasher:         hasher,
		tokenSignKey:   cfg.TokenSignKey,
		tokenIssuer:    cfg.TokenIssuer,
		tokenDuration:  cfg.TokenDuration,
		now:            time.Now,
		logger:         logger,
	}
}

// Login authenticates a user by username and password.
//
// Returns:
//   - ErrInvalidDataProvided if either credential is empty.
//   - ErrInvalidCredentials if the user does not exist or the password does
//     not match. Both cases are indistinguishable to the caller.
func (a *authService) Login(ctx context.Context, req models.LoginRequest) (models.LoginResult, error) {
	log := logger.FromContext(ctx)

	if req.Username == "" || req.Password == "" {
		return models.LoginResult{}, ErrInvalidDataProvided
	}

	user, err := a.userRepository.FindUserByUsername(ctx, req.Username)
	if errors.Is(err, store.ErrNoUserWasFound) {
		log.Info().Str("func", "authService.Login").Str("username", req.Username).Msg("login attempt for unknown user")
		return models.LoginResult{}, ErrInvalidCredentials
	}
	if err != nil {
		log.Err(err).Str("func", "authService.Login").Msg("user search by username failed")
		return models.LoginResult{}, fmt.Errorf("user search by username failed: %w", err)
	}

	if err = a.hasher.Compare(user.PasswordHash, req.Password); err != nil {
		if !errors.Is(err, crypto.ErrPasswordMismatch) {
			log.Err(err).Str("func", "authService.Login").Int64("user_id", user.ID).Msg("stored password hash is unusable")
		} else {
			log.Info().Str("func", "authService.Login").Int64("user_id", user.ID).Msg("wrong password")
		}
		return models.LoginResult{}, ErrInvalidCredentials
	}

	token, err := a.CreateToken(ctx, user)
	if err != nil {
		log.Err(err).Str("func", "authService.Login").Int64("user_id", user.ID).Msg("error creating token")
		return models.LoginResult{}, err
	}

	return models.LoginResult{
		Token: token.SignedString,
		User:  user.Profile(),
	}, nil
}

// CreateToken issues a signed session token for user, valid for the
// configured duration from now.
func (a *authService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	token, err := utils.GenerateJWTToken(a.tokenIssuer, user, a.tokenDuration, a.tokenSignKey, a.now())
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// ParseToken verifies signature, issuer, expiry and claims of tokenString.
// Every failure is normalized to ErrTokenIsExpiredOrInvalid.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Principal, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		logger.FromContext(ctx).Debug().Err(err).Str("func", "authService.ParseToken").Msg("token rejected")
		return models.Principal{}, ErrTokenIsExpiredOrInvalid
	}

	return token.Claims.Principal(), nil
}
