package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-protocol-catalog/internal/config"
	"github.com/MKhiriev/go-protocol-catalog/internal/crypto"
	"github.com/MKhiriev/go-protocol-catalog/internal/logger"
	"github.com/MKhiriev/go-protocol-catalog/internal/store"
	"github.com/MKhiriev/go-protocol-catalog/internal/validators"
	"github.com/MKhiriev/go-protocol-catalog/models"
)

type userService struct {
	userRepository store.UserRepository
	hasher         crypto.PasswordHasher
	validator      validators.Validator

	logger *logger.Logger
}

func NewUserService(userRepository store.UserRepository, hasher crypto.PasswordHasher, logger *logger.Logger) UserService {
	return &userService{
		userRepository: userRepository,
		hasher:         hasher,
		validator:      validators.NewUserValidator(),
		logger:         logger,
	}
}

func (s *userService) List(ctx context.Context) ([]models.User, error) {
	users, err := s.userRepository.ListUsers(ctx)
	if err != nil {
		return nil, fmt.Errorf("error listing users: %w", err)
	}

	return users, nil
}

// Create stores a new account with a bcrypt-hashed password.
func (s *userService) Create(ctx context.Context, newUser models.NewUser) (int64, error) {
	log := logger.FromContext(ctx)

	if err := s.validator.Validate(ctx, newUser); err != nil {
		return 0, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	exists, err := s.userRepository.UsernameExists(ctx, newUser.Username)
	if err != nil {
		return 0, fmt.Errorf("error checking username: %w", err)
	}
	if exists {
		return 0, store.ErrUsernameAlreadyExists
	}

	hash, err := s.hasher.Hash(newUser.Password)
	if err != nil {
		return 0, fmt.Errorf("error hashing password: %w", err)
	}

	id, err := s.userRepository.CreateUser(ctx, models.User{
		Username:     newUser.Username,
		PasswordHash: hash,
		Email:        newUser.Email,
		Role:         newUser.Role,
	})
	if err != nil {
		return 0, fmt.Errorf("error creating user: %w", err)
	}

	log.Info().Str("func", "userService.Create").Int64("user_id", id).Str("role", newUser.Role.String()).Msg("user created")
	return id, nil
}

// Update applies the non-nil fields of update. A new password is hashed
// before it reaches storage; without one the stored hash is left alone.
func (s *userService) Update(ctx context.Context, id int64, update models.UserUpdate) error {
	log := logger.FromContext(ctx)

	if err := s.validator.Validate(ctx, update); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	current, err := s.userRepository.FindUserByID(ctx, id)
	if err != nil {
		return fmt.Errorf("error finding user: %w", err)
	}

	if update.Username != nil && *update.Username != current.Username {
		exists, existsErr := s.userRepository.UsernameExists(ctx, *update.Username)
		if existsErr != nil {
			return fmt.Errorf("error checking username: %w", existsErr)
		}
		if exists {
			return store.ErrUsernameAlreadyExists
		}
	}

	update.PasswordHash = nil
	if update.Password != nil {
		hash, hashErr := s.hasher.Hash(*update.Password)
		if hashErr != nil {
			return fmt.Errorf("error hashing password: %w", hashErr)
		}
		update.PasswordHash = &hash
		update.Password = nil
	}

	if err = s.userRepository.UpdateUser(ctx, id, update); err != nil {
		return fmt.Errorf("error updating user: %w", err)
	}

	log.Info().Str("func", "userService.Update").Int64("user_id", id).Msg("user updated")
	return nil
}

// Delete removes the account with id. Deleting one's own account is refused
// before anything else is looked at.
func (s *userService) Delete(ctx context.Context, principal models.Principal, id int64) error {
	if id == principal.ID {
		return ErrSelfDeleteForbidden
	}

	if _, err := s.userRepository.FindUserByID(ctx, id); err != nil {
		return fmt.Errorf("error finding user: %w", err)
	}

	if err := s.userRepository.DeleteUser(ctx, id); err != nil {
		return fmt.Errorf("error deleting user: %w", err)
	}

	logger.FromContext(ctx).Info().Str("func", "userService.Delete").Int64("user_id", id).Int64("deleted_by", principal.ID).Msg("user deleted")
	return nil
}

// EnsureAdmin creates the bootstrap administrator if no account named
// cfg.AdminUsername exists. The literal default password is used only when
// cfg.AcceptDefaultPassword is set.
func (s *userService) EnsureAdmin(ctx context.Context, cfg config.Bootstrap) error {
	log := logger.FromContext(ctx)

	exists, err := s.userRepository.UsernameExists(ctx, cfg.AdminUsername)
	if err != nil {
		return fmt.Errorf("error checking bootstrap admin: %w", err)
	}
	if exists {
		log.Debug().Str("func", "userService.EnsureAdmin").Str("username", cfg.AdminUsername).Msg("bootstrap admin already exists")
		return nil
	}

	password := cfg.AdminPassword
	if password == "" {
		if !cfg.AcceptDefaultPassword {
			return ErrNoBootstrapPassword
		}
		password = config.DefaultAdminPassword
		log.Warn().
			Str("func", "userService.EnsureAdmin").
			Str("username", cfg.AdminUsername).
			Msg("seeding admin with the well-known default password; change it immediately")
	}

	_, err = s.Create(ctx, models.NewUser{
		Username: cfg.AdminUsername,
		Password: password,
		Email:    cfg.AdminEmail,
		Role:     models.RoleAdmin,
	})
	// another instance may have seeded it in the meantime
	if errors.Is(err, store.ErrUsernameAlreadyExists) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("error seeding bootstrap admin: %w", err)
	}

	log.Info().Str("func", "userService.EnsureAdmin").Str("username", cfg.AdminUsername).Msg("bootstrap admin created")
	return nil
}
