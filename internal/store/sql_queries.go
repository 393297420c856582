package store

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-protocol-catalog/models"
)

const (
	findUserByUsername = `SELECT id, username, password_hash, COALESCE(email, ''), role, created_at
    FROM users
    WHERE username = $1;`

	findUserByID = `SELECT id, username, password_hash, COALESCE(email, ''), role, created_at
    FROM users
    WHERE id = $1;`

	usernameExists = `SELECT EXISTS (SELECT 1 FROM users WHERE username = $1);`

	createUser = `INSERT INTO users (username, password_hash, email, role)
    VALUES ($1, $2, NULLIF($3, ''), $4)
    RETURNING id;`

	listUsers = `SELECT id, username, COALESCE(email, ''), role, created_at
    FROM users
    ORDER BY created_at DESC, id DESC;`

	deleteUser = `DELETE FROM users WHERE id = $1;`

	deleteProtocol = `DELETE FROM protocols WHERE id = $1;`
)

// client (sqlite) queries
const (
	saveSession = `INSERT OR REPLACE INTO session (id, token, user_id, username, email, role, saved_at)
    VALUES (1, ?, ?, ?, ?, ?, ?);`

	loadSession = `SELECT token, user_id, username, email, role, saved_at
    FROM session
    WHERE id = 1;`

	deleteSession = `DELETE FROM session;`
)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

var protocolColumns = []string{
	"p.id",
	"p.product_category",
	"p.function_description",
	"p.transmission_direction",
	"p.frame_header",
	"p.control_word",
	"p.command_word",
	"p.length_identification",
	"p.data",
	"p.check_field",
	"p.frame_end",
	"COALESCE(p.remark, '')",
	"p.created_by",
	"u.username",
	"p.created_at",
}

func selectProtocols() sq.SelectBuilder {
	return psql.Select(protocolColumns...).
		From("protocols p").
		LeftJoin("users u ON u.id = p.created_by")
}

// buildListProtocolsQuery selects every protocol newest first, resolving the
// creator's username (NULL for orphaned records).
func buildListProtocolsQuery(_ context.Context) (string, []any, error) {
	query, args, err := selectProtocols().
		OrderBy("p.created_at DESC", "p.id DESC").
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

func buildFindProtocolByIDQuery(_ context.Context, id int64) (string, []any, error) {
	query, args, err := selectProtocols().
		Where(sq.Eq{"p.id": id}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

// buildProtocolExistsQuery matches all seven key columns; arguments follow
// the column order of the unique_protocol constraint.
func buildProtocolExistsQuery(_ context.Context, key models.ProtocolKey) (string, []any, error) {
	query, args, err := psql.Select("1").
		From("protocols").
		Where(sq.And{
			sq.Eq{"product_category": key.ProductCategory},
			sq.Eq{"frame_header": key.FrameHeader},
			sq.Eq{"control_word": key.ControlWord},
			sq.Eq{"command_word": key.CommandWord},
			sq.Eq{"length_identification": key.LengthIdentification},
			sq.Eq{"check_field": key.CheckField},
			sq.Eq{"frame_end": key.FrameEnd},
		}).
		Limit(1).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

func buildInsertProtocolQuery(_ context.Context, p models.Protocol) (string, []any, error) {
	query, args, err := psql.Insert("protocols").
		Columns(
			"product_category",
			"function_description",
			"transmission_direction",
			"frame_header",
			"control_word",
			"command_word",
			"length_identification",
			"data",
			"check_field",
			"frame_end",
			"remark",
			"created_by",
		).
		Values(
			p.ProductCategory,
			p.FunctionDescription,
			p.TransmissionDirection,
			p.FrameHeader,
			p.ControlWord,
			p.CommandWord,
			p.LengthIdentification,
			p.Data,
			p.CheckField,
			p.FrameEnd,
			p.Remark,
			p.CreatedBy,
		).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

// buildUpdateUserQuery sets only the non-nil fields of update. It fails when
// there is nothing to set.
func buildUpdateUserQuery(_ context.Context, id int64, update models.UserUpdate) (string, []any, error) {
	builder := psql.Update("users")

	if update.Username != nil {
		builder = builder.Set("username", *update.Username)
	}
	if update.Email != nil {
		builder = builder.Set("email", *update.Email)
	}
	if update.Role != nil {
		builder = builder.Set("role", update.Role.String())
	}
	if update.PasswordHash != nil {
		builder = builder.Set("password_hash", *update.PasswordHash)
	}

	query, args, err := builder.Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}
