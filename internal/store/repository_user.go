package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-protocol-catalog/internal/logger"
	"github.com/MKhiriev/go-protocol-catalog/models"
)

// userRepository is the PostgreSQL-backed implementation of [UserRepository].
//
// Methods log through the request-scoped logger from [logger.FromContext].
type userRepository struct {
	db     *DB
	logger *logger.Logger
}

func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		db:     db,
		logger: logger,
	}
}

func (r *userRepository) FindUserByUsername(ctx context.Context, username string) (models.User, error) {
	return r.findUser(ctx, "userRepository.FindUserByUsername", findUserByUsername, username)
}

func (r *userRepository) FindUserByID(ctx context.Context, id int64) (models.User, error) {
	return r.findUser(ctx, "userRepository.FindUserByID", findUserByID, id)
}

func (r *userRepository) findUser(ctx context.Context, funcName, query string, arg any) (models.User, error) {
	log := logger.FromContext(ctx)

	var user models.User
	err := r.db.QueryRowContext(ctx, query, arg).Scan(
		&user.ID,
		&user.Username,
		&user.PasswordHash,
		&user.Email,
		&user.Role,
		&user.CreatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return models.User{}, ErrNoUserWasFound
	}
	if err != nil {
		log.Err(err).Str("func", funcName).Msg("error looking up user")
		return models.User{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return user, nil
}

func (r *userRepository) UsernameExists(ctx context.Context, username string) (bool, error) {
	log := logger.FromContext(ctx)

	var exists bool
	if err := r.db.QueryRowContext(ctx, usernameExists, username).Scan(&exists); err != nil {
		log.Err(err).Str("func", "userRepository.UsernameExists").Msg("error checking username")
		return false, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return exists, nil
}

// CreateUser inserts user and returns its id. user.PasswordHash must already
// be hashed.
func (r *userRepository) CreateUser(ctx context.Context, user models.User) (int64, error) {
	log := logger.FromContext(ctx)

	var id int64
	err := r.db.QueryRowContext(ctx, createUser, user.Username, user.PasswordHash, user.Email, user.Role.String()).Scan(&id)
	if err != nil {
		if isUniqueViolation(err) {
			return 0, ErrUsernameAlreadyExists
		}
		log.Err(err).Str("func", "userRepository.CreateUser").Str("username", user.Username).Msg("error inserting user")
		return 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return id, nil
}

func (r *userRepository) UpdateUser(ctx context.Context, id int64, update models.UserUpdate) error {
	log := logger.FromContext(ctx)

	query, args, err := buildUpdateUserQuery(ctx, id, update)
	if err != nil {
		log.Err(err).Str("func", "userRepository.UpdateUser").Int64("user_id", id).Msg("failed to create query")
		return err
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		if isUniqueViolation(err) {
			return ErrUsernameAlreadyExists
		}
		log.Err(err).Str("func", "userRepository.UpdateUser").Int64("user_id", id).Msg("error updating user")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return expectAffected(result, ErrNoUserWasFound)
}

func (r *userRepository) DeleteUser(ctx context.Context, id int64) error {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, deleteUser, id)
	if err != nil {
		log.Err(err).Str("func", "userRepository.DeleteUser").Int64("user_id", id).Msg("error deleting user")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return expectAffected(result, ErrNoUserWasFound)
}

func (r *userRepository) ListUsers(ctx context.Context) ([]models.User, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, listUsers)
	if err != nil {
		log.Err(err).Str("func", "userRepository.ListUsers").Msg("failed to execute query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	users := make([]models.User, 0, 16)
	for rows.Next() {
		var u models.User
		if err = rows.Scan(&u.ID, &u.Username, &u.Email, &u.Role, &u.CreatedAt); err != nil {
			log.Err(err).Str("func", "userRepository.ListUsers").Msg("failed to scan user row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		users = append(users, u)
	}

	if err = rows.Err(); err != nil {
		log.Err(err).Str("func", "userRepository.ListUsers").Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return users, nil
}

// expectAffected turns a zero-row result into notFound.
func expectAffected(result sql.Result, notFound error) error {
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	if affected == 0 {
		return notFound
	}

	return nil
}
