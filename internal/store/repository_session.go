package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-protocol-catalog/internal/logger"
	"github.com/MKhiriev/go-protocol-catalog/models"
)

// sessionRepository stores the client's login in a one-row SQLite table.
type sessionRepository struct {
	db     *DB
	logger *logger.Logger
}

func NewSessionRepository(db *DB, logger *logger.Logger) SessionRepository {
	return &sessionRepository{
		db:     db,
		logger: logger,
	}
}

func (r *sessionRepository) Save(ctx context.Context, s models.StoredSession) error {
	_, err := r.db.ExecContext(ctx, saveSession,
		s.Token,
		s.Profile.ID,
		s.Profile.Username,
		s.Profile.Email,
		s.Profile.Role.String(),
		s.SavedAt.UTC(),
	)
	if err != nil {
		r.logger.Err(err).Str("func", "sessionRepository.Save").Msg("error saving session")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return nil
}

func (r *sessionRepository) Load(ctx context.Context) (models.StoredSession, error) {
	var (
		s    models.StoredSession
		role string
	)

	err := r.db.QueryRowContext(ctx, loadSession).Scan(
		&s.Token,
		&s.Profile.ID,
		&s.Profile.Username,
		&s.Profile.Email,
		&role,
		&s.SavedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return models.StoredSession{}, ErrLocalSessionNotFound
	}
	if err != nil {
		r.logger.Err(err).Str("func", "sessionRepository.Load").Msg("error loading session")
		return models.StoredSession{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	s.Profile.Role, err = models.ParseRole(role)
	if err != nil {
		// a tampered row is as good as no session
		return models.StoredSession{}, ErrLocalSessionNotFound
	}

	return s, nil
}

func (r *sessionRepository) Delete(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, deleteSession); err != nil {
		r.logger.Err(err).Str("func", "sessionRepository.Delete").Msg("error deleting session")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return nil
}
