package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-protocol-catalog/internal/logger"
	"github.com/MKhiriev/go-protocol-catalog/models"
)

// protocolRepository is the PostgreSQL-backed implementation of
// [ProtocolRepository].
type protocolRepository struct {
	db     *DB
	logger *logger.Logger
}

func NewProtocolRepository(db *DB, logger *logger.Logger) ProtocolRepository {
	logger.Debug().Msg("creating protocol repository")
	return &protocolRepository{
		db:     db,
		logger: logger,
	}
}

func (r *protocolRepository) ListProtocols(ctx context.Context) ([]models.Protocol, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListProtocolsQuery(ctx)
	if err != nil {
		log.Err(err).Str("func", "protocolRepository.ListProtocols").Msg("failed to create query")
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "protocolRepository.ListProtocols").Msg("failed to execute query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	protocols := make([]models.Protocol, 0, 50)
	for rows.Next() {
		p, scanErr := scanProtocol(rows)
		if scanErr != nil {
			log.Err(scanErr).Str("func", "protocolRepository.ListProtocols").Msg("failed to scan protocol row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		protocols = append(protocols, p)
	}

	if err = rows.Err(); err != nil {
		log.Err(err).Str("func", "protocolRepository.ListProtocols").Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return protocols, nil
}

func (r *protocolRepository) ProtocolExists(ctx context.Context, key models.ProtocolKey) (bool, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildProtocolExistsQuery(ctx, key)
	if err != nil {
		log.Err(err).Str("func", "protocolRepository.ProtocolExists").Msg("failed to create query")
		return false, err
	}

	var one int
	err = r.db.QueryRowContext(ctx, query, args...).Scan(&one)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return false, nil
	case err != nil:
		log.Err(err).Str("func", "protocolRepository.ProtocolExists").Msg("failed to execute query")
		return false, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return true, nil
}

// CreateProtocol inserts p. The unique_protocol constraint has the final say
// on duplicates, so a concurrent insert of the same key is reported as
// [ErrProtocolAlreadyExists] too.
func (r *protocolRepository) CreateProtocol(ctx context.Context, p models.Protocol) (int64, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildInsertProtocolQuery(ctx, p)
	if err != nil {
		log.Err(err).Str("func", "protocolRepository.CreateProtocol").Msg("failed to create query")
		return 0, err
	}

	var id int64
	if err = r.db.QueryRowContext(ctx, query, args...).Scan(&id); err != nil {
		switch {
		case isUniqueViolation(err):
			return 0, ErrProtocolAlreadyExists
		case isForeignKeyViolation(err):
			return 0, ErrCreatorNotFound
		}
		log.Err(err).Str("func", "protocolRepository.CreateProtocol").Msg("error inserting protocol")
		return 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return id, nil
}

func (r *protocolRepository) FindProtocolByID(ctx context.Context, id int64) (models.Protocol, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildFindProtocolByIDQuery(ctx, id)
	if err != nil {
		log.Err(err).Str("func", "protocolRepository.FindProtocolByID").Msg("failed to create query")
		return models.Protocol{}, err
	}

	p, err := scanProtocol(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Protocol{}, ErrProtocolNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "protocolRepository.FindProtocolByID").Int64("protocol_id", id).Msg("failed to find protocol")
		return models.Protocol{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return p, nil
}

func (r *protocolRepository) DeleteProtocol(ctx context.Context, id int64) error {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, deleteProtocol, id)
	if err != nil {
		log.Err(err).Str("func", "protocolRepository.DeleteProtocol").Int64("protocol_id", id).Msg("error deleting protocol")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return expectAffected(result, ErrProtocolNotFound)
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanProtocol(row rowScanner) (models.Protocol, error) {
	var (
		p         models.Protocol
		createdBy sql.NullInt64
		creator   sql.NullString
	)

	err := row.Scan(
		&p.ID,
		&p.ProductCategory,
		&p.FunctionDescription,
		&p.TransmissionDirection,
		&p.FrameHeader,
		&p.ControlWord,
		&p.CommandWord,
		&p.LengthIdentification,
		&p.Data,
		&p.CheckField,
		&p.FrameEnd,
		&p.Remark,
		&createdBy,
		&creator,
		&p.CreatedAt,
	)
	if err != nil {
		return models.Protocol{}, err
	}

	if createdBy.Valid {
		p.CreatedBy = &createdBy.Int64
	}
	if creator.Valid {
		p.CreatedByName = &creator.String
	}

	return p, nil
}
