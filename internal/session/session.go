// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package session holds the client's login state.
//
// A [Session] is created once at client start, restored from the local
// store and handed to everything that needs the token or the current
// profile. It is safe for concurrent use.
package session

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/MKhiriev/go-protocol-catalog/internal/logger"
	"github.com/MKhiriev/go-protocol-catalog/internal/store"
	"github.com/MKhiriev/go-protocol-catalog/models"
	"github.com/golang-jwt/jwt/v5"
)

// ErrEmptyToken is returned by Set for a blank token.
var ErrEmptyToken = errors.New("session token is empty")

type Session struct {
	mu      sync.RWMutex
	token   string
	profile models.Profile

	repository store.SessionRepository

	// now is replaced in tests
	now func() time.Time

	logger *logger.Logger
}

func New(repository store.SessionRepository, logger *logger.Logger) *Session {
	return &Session{
		repository: repository,
		now:        time.Now,
		logger:     logger,
	}
}

// Restore loads the persisted login. Having none is not an error. A stored
// token whose exp claim has passed is discarded, since the server would
// refuse it anyway.
func (s *Session) Restore(ctx context.Context) error {
	stored, err := s.repository.Load(ctx)
	if errors.Is(err, store.ErrLocalSessionNotFound) {
		s.reset()
		return nil
	}
	if err != nil {
		return fmt.Errorf("error restoring session: %w", err)
	}

	if expired(stored.Token, s.now()) {
		s.logger.Info().Str("func", "Session.Restore").Str("username", stored.Profile.Username).Msg("stored session expired")
		return s.Clear(ctx)
	}

	s.mu.Lock()
	s.token = stored.Token
	s.profile = stored.Profile
	s.mu.Unlock()

	return nil
}

// Set persists a fresh login and makes it current.
func (s *Session) Set(ctx context.Context, token string, profile models.Profile) error {
	token = strings.TrimSpace(token)
	if token == "" {
		return ErrEmptyToken
	}

	err := s.repository.Save(ctx, models.StoredSession{
		Token:   token,
		Profile: profile,
		SavedAt: s.now(),
	})
	if err != nil {
		return fmt.Errorf("error saving session: %w", err)
	}

	s.mu.Lock()
	s.token = token
	s.profile = profile
	s.mu.Unlock()

	return nil
}

// Clear forgets the login in memory first, so a failing store cannot leave
// the client looking authenticated.
func (s *Session) Clear(ctx context.Context) error {
	s.reset()

	if err := s.repository.Delete(ctx); err != nil {
		return fmt.Errorf("error clearing session: %w", err)
	}
	return nil
}

func (s *Session) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

func (s *Session) Profile() models.Profile {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.profile
}

func (s *Session) IsAuthenticated() bool {
	return s.Token() != ""
}

func (s *Session) IsAdmin() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token != "" && s.profile.IsAdmin()
}

func (s *Session) reset() {
	s.mu.Lock()
	s.token = ""
	s.profile = models.Profile{}
	s.mu.Unlock()
}

// expired reads the exp claim without verifying the signature; the client
// does not know the signing key. Unreadable tokens are left for the server
// to judge.
func expired(token string, now time.Time) bool {
	claims := &jwt.RegisteredClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return false
	}
	return claims.ExpiresAt != nil && !now.Before(claims.ExpiresAt.Time)
}
