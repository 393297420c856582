package store

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/go-protocol-catalog/internal/logger"
	"github.com/MKhiriev/go-protocol-catalog/models"
	"github.com/jackc/pgerrcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestProtocolRepo(t *testing.T) (ProtocolRepository, sqlmock.Sqlmock) {
	db, mock := newTestDB(t)
	return NewProtocolRepository(db, logger.Nop()), mock
}

var protocolRowColumns = []string{
	"id", "product_category", "function_description", "transmission_direction",
	"frame_header", "control_word", "command_word", "length_identification",
	"data", "check_field", "frame_end", "remark", "created_by", "username", "created_at",
}

func testKey() models.ProtocolKey {
	return models.ProtocolKey{
		ProductCategory:      "meter",
		FrameHeader:          "AA55",
		ControlWord:          "01",
		CommandWord:          "10",
		LengthIdentification: "08",
		CheckField:           "CRC16",
		FrameEnd:             "0D0A",
	}
}

func testProtocol(createdBy int64) models.Protocol {
	return models.Protocol{
		ProtocolKey:           testKey(),
		FunctionDescription:   "read status",
		TransmissionDirection: "device->host",
		Data:                  "00 01",
		Remark:                "",
		CreatedBy:             &createdBy,
	}
}

func TestListProtocols(t *testing.T) {
	repo, mock := newTestProtocolRepo(t)
	now := time.Now()

	mock.ExpectQuery(`SELECT .* FROM protocols p LEFT JOIN users u ON u.id = p.created_by ORDER BY p.created_at DESC, p.id DESC`).
		WillReturnRows(sqlmock.NewRows(protocolRowColumns).
			AddRow(2, "meter", "read", "up", "AA", "01", "10", "08", "00", "CRC", "0D", "", 1, "admin", now).
			AddRow(1, "inverter", "write", "down", "BB", "02", "20", "04", "FF", "SUM", "0A", "old", nil, nil, now.Add(-time.Hour)))

	protocols, err := repo.ListProtocols(context.Background())
	require.NoError(t, err)
	require.Len(t, protocols, 2)

	assert.Equal(t, int64(2), protocols[0].ID)
	require.NotNil(t, protocols[0].CreatedBy)
	assert.Equal(t, int64(1), *protocols[0].CreatedBy)
	require.NotNil(t, protocols[0].CreatedByName)
	assert.Equal(t, "admin", *protocols[0].CreatedByName)

	// orphaned record
	assert.Nil(t, protocols[1].CreatedBy)
	assert.Nil(t, protocols[1].CreatedByName)
	assert.Equal(t, "old", protocols[1].Remark)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestListProtocols_QueryError(t *testing.T) {
	repo, mock := newTestProtocolRepo(t)

	mock.ExpectQuery("SELECT").WillReturnError(errors.New("boom"))

	_, err := repo.ListProtocols(context.Background())
	require.ErrorIs(t, err, ErrExecutingQuery)
}

func TestProtocolExists(t *testing.T) {
	key := testKey()

	t.Run("exists", func(t *testing.T) {
		repo, mock := newTestProtocolRepo(t)

		mock.ExpectQuery(`SELECT 1 FROM protocols WHERE`).
			WithArgs("meter", "AA55", "01", "10", "08", "CRC16", "0D0A").
			WillReturnRows(sqlmock.NewRows([]string{"?column?"}).AddRow(1))

		exists, err := repo.ProtocolExists(context.Background(), key)
		require.NoError(t, err)
		assert.True(t, exists)
	})

	t.Run("absent", func(t *testing.T) {
		repo, mock := newTestProtocolRepo(t)

		mock.ExpectQuery(`SELECT 1 FROM protocols WHERE`).
			WillReturnRows(sqlmock.NewRows([]string{"?column?"}))

		exists, err := repo.ProtocolExists(context.Background(), key)
		require.NoError(t, err)
		assert.False(t, exists)
	})
}

func TestCreateProtocol(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		repo, mock := newTestProtocolRepo(t)

		mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO protocols")).
			WithArgs("meter", "read status", "device->host", "AA55", "01", "10", "08", "00 01", "CRC16", "0D0A", "", int64(9)).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(11))

		id, err := repo.CreateProtocol(context.Background(), testProtocol(9))
		require.NoError(t, err)
		assert.Equal(t, int64(11), id)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("duplicate key", func(t *testing.T) {
		repo, mock := newTestProtocolRepo(t)

		mock.ExpectQuery("INSERT INTO protocols").
			WillReturnError(pgError(pgerrcode.UniqueViolation))

		_, err := repo.CreateProtocol(context.Background(), testProtocol(9))
		require.ErrorIs(t, err, ErrProtocolAlreadyExists)
	})

	t.Run("creator deleted", func(t *testing.T) {
		repo, mock := newTestProtocolRepo(t)

		mock.ExpectQuery("INSERT INTO protocols").
			WillReturnError(pgError(pgerrcode.ForeignKeyViolation))

		_, err := repo.CreateProtocol(context.Background(), testProtocol(9))
		require.ErrorIs(t, err, ErrCreatorNotFound)
	})
}

func TestFindProtocolByID(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		repo, mock := newTestProtocolRepo(t)

		mock.ExpectQuery(regexp.QuoteMeta("WHERE p.id = $1")).
			WithArgs(int64(4)).
			WillReturnRows(sqlmock.NewRows(protocolRowColumns).
				AddRow(4, "meter", "read", "up", "AA", "01", "10", "08", "00", "CRC", "0D", "", 3, "bob", time.Now()))

		p, err := repo.FindProtocolByID(context.Background(), 4)
		require.NoError(t, err)
		assert.True(t, p.IsOwnedBy(3))
	})

	t.Run("not found", func(t *testing.T) {
		repo, mock := newTestProtocolRepo(t)

		mock.ExpectQuery(regexp.QuoteMeta("WHERE p.id = $1")).
			WithArgs(int64(4)).
			WillReturnRows(sqlmock.NewRows(protocolRowColumns))

		_, err := repo.FindProtocolByID(context.Background(), 4)
		require.ErrorIs(t, err, ErrProtocolNotFound)
	})
}

func TestDeleteProtocol(t *testing.T) {
	t.Run("deleted", func(t *testing.T) {
		repo, mock := newTestProtocolRepo(t)

		mock.ExpectExec(regexp.QuoteMeta(deleteProtocol)).
			WithArgs(int64(4)).
			WillReturnResult(sqlmock.NewResult(0, 1))

		require.NoError(t, repo.DeleteProtocol(context.Background(), 4))
	})

	t.Run("already gone", func(t *testing.T) {
		repo, mock := newTestProtocolRepo(t)

		mock.ExpectExec(regexp.QuoteMeta(deleteProtocol)).
			WithArgs(int64(4)).
			WillReturnResult(sqlmock.NewResult(0, 0))

		require.ErrorIs(t, repo.DeleteProtocol(context.Background(), 4), ErrProtocolNotFound)
	})
}
