package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-protocol-catalog/internal/export"
	"github.com/MKhiriev/go-protocol-catalog/internal/logger"
	"github.com/MKhiriev/go-protocol-catalog/internal/store"
	"github.com/MKhiriev/go-protocol-catalog/internal/validators"
	"github.com/MKhiriev/go-protocol-catalog/models"
)

type protocolService struct {
	protocolRepository store.ProtocolRepository
	validator          validators.Validator

	logger *logger.Logger
}

func NewProtocolService(protocolRepository store.ProtocolRepository, logger *logger.Logger) ProtocolService {
	return &protocolService{
		protocolRepository: protocolRepository,
		validator:          validators.NewProtocolValidator(),
		logger:             logger,
	}
}

func (s *protocolService) List(ctx context.Context) ([]models.Protocol, error) {
	protocols, err := s.protocolRepository.ListProtocols(ctx)
	if err != nil {
		return nil, fmt.Errorf("error listing protocols: %w", err)
	}

	return protocols, nil
}

// Create validates protocol, records principal as its creator and stores it.
//
// The existence pre-check only gives a fast answer for the common case; two
// concurrent inserts of the same key are settled by the storage constraint,
// which also surfaces as store.ErrProtocolAlreadyExists.
func (s *protocolService) Create(ctx context.Context, principal models.Principal, protocol models.Protocol) (int64, error) {
	log := logger.FromContext(ctx)

	if err := s.validator.Validate(ctx, protocol); err != nil {
		return 0, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	exists, err := s.protocolRepository.ProtocolExists(ctx, protocol.Key())
	if err != nil {
		return 0, fmt.Errorf("error checking protocol existence: %w", err)
	}
	if exists {
		return 0, store.ErrProtocolAlreadyExists
	}

	creator := principal.ID
	protocol.ID = 0
	protocol.CreatedBy = &creator
	protocol.CreatedByName = nil

	id, err := s.protocolRepository.CreateProtocol(ctx, protocol)
	if err != nil {
		return 0, fmt.Errorf("error creating protocol: %w", err)
	}

	log.Info().Str("func", "protocolService.Create").Int64("protocol_id", id).Int64("user_id", principal.ID).Msg("protocol created")
	return id, nil
}

// Delete removes the protocol with id. Administrators may delete any record,
// other users only the ones they created. Orphaned records are therefore
// deletable by administrators only.
func (s *protocolService) Delete(ctx context.Context, principal models.Principal, id int64) error {
	log := logger.FromContext(ctx)

	protocol, err := s.protocolRepository.FindProtocolByID(ctx, id)
	if err != nil {
		return fmt.Errorf("error finding protocol: %w", err)
	}

	if !principal.IsAdmin() && !protocol.IsOwnedBy(principal.ID) {
		log.Warn().Str("func", "protocolService.Delete").Int64("protocol_id", id).Int64("user_id", principal.ID).Msg("delete denied")
		return ErrForbidden
	}

	if err = s.protocolRepository.DeleteProtocol(ctx, id); err != nil {
		return fmt.Errorf("error deleting protocol: %w", err)
	}

	log.Info().Str("func", "protocolService.Delete").Int64("protocol_id", id).Int64("user_id", principal.ID).Msg("protocol deleted")
	return nil
}

func (s *protocolService) Export(ctx context.Context) ([]byte, error) {
	protocols, err := s.protocolRepository.ListProtocols(ctx)
	if err != nil {
		return nil, fmt.Errorf("error loading protocols for export: %w", err)
	}

	data, err := export.ProtocolsToXLSX(protocols)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "protocolService.Export").Msg("error building workbook")
		return nil, fmt.Errorf("error exporting protocols: %w", err)
	}

	return data, nil
}
