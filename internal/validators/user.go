package validators

import (
	"context"
	"strings"
	"unicode/utf8"

	"github.com/MKhiriev/go-protocol-catalog/models"
)

const (
	FieldUsername = "username"
	FieldPassword = "password"
	FieldEmail    = "email"
	FieldRole     = "role"
)

const (
	usernameMaxLen = 50
	emailMaxLen    = 100
)

// UserValidator checks account creation and update requests.
type UserValidator struct{}

func NewUserValidator() Validator {
	return &UserValidator{}
}

// Validate accepts models.NewUser and models.UserUpdate (values or
// pointers). A new user must carry all four fields; an update must carry at
// least one, and every field it carries must be valid.
func (v *UserValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.NewUser:
		return v.validateNewUser(ctx, value, fields...)
	case *models.NewUser:
		return v.validateNewUser(ctx, *value, fields...)
	case models.UserUpdate:
		return v.validateUserUpdate(ctx, value)
	case *models.UserUpdate:
		return v.validateUserUpdate(ctx, *value)
	default:
		return ErrUnsupportedType
	}
}

func (v *UserValidator) validateNewUser(_ context.Context, u models.NewUser, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldUsername, FieldPassword, FieldEmail, FieldRole}
	}

	for _, f := range fields {
		switch f {
		case FieldUsername:
			if err := checkUsername(u.Username); err != nil {
				return err
			}
		case FieldPassword:
			if u.Password == "" {
				return required(FieldPassword)
			}
		case FieldEmail:
			if err := checkEmail(u.Email); err != nil {
				return err
			}
		case FieldRole:
			if err := checkRole(u.Role); err != nil {
				return err
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *UserValidator) validateUserUpdate(_ context.Context, u models.UserUpdate) error {
	if u.IsEmpty() {
		return ErrNothingToUpdate
	}

	if u.Username != nil {
		if err := checkUsername(*u.Username); err != nil {
			return err
		}
	}
	if u.Email != nil {
		if err := checkEmail(*u.Email); err != nil {
			return err
		}
	}
	if u.Role != nil {
		if err := checkRole(*u.Role); err != nil {
			return err
		}
	}
	if u.Password != nil && *u.Password == "" {
		return required(FieldPassword)
	}

	return nil
}

func checkUsername(username string) error {
	if strings.TrimSpace(username) == "" {
		return required(FieldUsername)
	}
	if utf8.RuneCountInString(username) > usernameMaxLen {
		return tooLong(FieldUsername, usernameMaxLen)
	}
	return nil
}

func checkEmail(email string) error {
	if strings.TrimSpace(email) == "" {
		return required(FieldEmail)
	}
	if utf8.RuneCountInString(email) > emailMaxLen {
		return tooLong(FieldEmail, emailMaxLen)
	}
	return nil
}

func checkRole(role models.Role) error {
	if role == "" {
		return required(FieldRole)
	}
	if !role.Valid() {
		return &FieldError{Field: FieldRole, Reason: "must be admin or user"}
	}
	return nil
}
