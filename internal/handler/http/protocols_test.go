package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/MKhiriev/go-protocol-catalog/internal/app"
	"github.com/MKhiriev/go-protocol-catalog/internal/export"
	"github.com/MKhiriev/go-protocol-catalog/internal/service"
	"github.com/MKhiriev/go-protocol-catalog/internal/store"
	"github.com/MKhiriev/go-protocol-catalog/internal/validators"
	"github.com/MKhiriev/go-protocol-catalog/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func testProtocol() models.Protocol {
	return models.Protocol{
		ProtocolKey: models.ProtocolKey{
			ProductCategory:      "Meter",
			FrameHeader:          "68",
			ControlWord:          "11",
			CommandWord:          "0001",
			LengthIdentification: "04",
			CheckField:           "CS",
			FrameEnd:             "16",
		},
		FunctionDescription:   "Read active energy",
		TransmissionDirection: "master->slave",
		Data:                  "00 00 00 00",
	}
}

func TestListProtocols(t *testing.T) {
	env := newTestEnv(t)
	p := testProtocol()
	p.ID = 4
	env.protocols.EXPECT().List(gomock.Any()).Return([]models.Protocol{p}, nil)

	rr := env.do(t, http.MethodGet, "/api/protocols", userToken, nil)

	require.Equal(t, http.StatusOK, rr.Code)
	var got []models.Protocol
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
	require.Len(t, got, 1)
	assert.Equal(t, int64(4), got[0].ID)
	assert.Equal(t, "Meter", got[0].ProductCategory)
}

func TestListProtocols_EmptyIsArray(t *testing.T) {
	env := newTestEnv(t)
	env.protocols.EXPECT().List(gomock.Any()).Return(nil, nil)

	rr := env.do(t, http.MethodGet, "/api/protocols", userToken, nil)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `[]`, rr.Body.String())
}

func TestListProtocols_InternalErrorIsNotLeaked(t *testing.T) {
	env := newTestEnv(t)
	env.protocols.EXPECT().List(gomock.Any()).Return(nil, errors.New("pq: relation \"protocols\" does not exist"))

	rr := env.do(t, http.MethodGet, "/api/protocols", userToken, nil)

	assertMessage(t, rr, http.StatusInternalServerError, app.MsgInternalServerError)
	assert.NotContains(t, rr.Body.String(), "relation")
}

func TestCreateProtocol(t *testing.T) {
	tests := []struct {
		name       string
		serviceErr error
		wantStatus int
		wantMsg    string
	}{
		{name: "created", wantStatus: http.StatusCreated, wantMsg: app.MsgProtocolAdded},
		{name: "duplicate", serviceErr: store.ErrProtocolAlreadyExists, wantStatus: http.StatusBadRequest, wantMsg: app.MsgProtocolAlreadyExists},
		{
			name:       "missing field",
			serviceErr: errors.Join(service.ErrInvalidDataProvided, &validators.FieldError{Field: "frame_end", Reason: "is required"}),
			wantStatus: http.StatusBadRequest,
			wantMsg:    "frame_end is required",
		},
		{name: "creator deleted", serviceErr: store.ErrCreatorNotFound, wantStatus: http.StatusUnauthorized, wantMsg: app.MsgUserNoLongerExists},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv(t)
			env.protocols.EXPECT().Create(gomock.Any(), userPrincipal, testProtocol()).Return(int64(12), tt.serviceErr)

			rr := env.do(t, http.MethodPost, "/api/protocols", userToken, testProtocol())

			assert.Equal(t, tt.wantStatus, rr.Code, rr.Body.String())
			if tt.serviceErr != nil {
				assert.Equal(t, tt.wantMsg, decodeMessage(t, rr))
				return
			}

			var resp models.CreatedResponse
			require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
			assert.Equal(t, models.CreatedResponse{Message: app.MsgProtocolAdded, ID: 12}, resp)
		})
	}
}

func TestCreateProtocol_InvalidJSON(t *testing.T) {
	env := newTestEnv(t)

	rr := env.do(t, http.MethodPost, "/api/protocols", userToken, "{not json")

	assertMessage(t, rr, http.StatusBadRequest, app.MsgInvalidDataProvided)
}

func TestExportProtocols(t *testing.T) {
	env := newTestEnv(t)
	workbook := []byte("PK\x03\x04fake")
	env.protocols.EXPECT().Export(gomock.Any()).Return(workbook, nil)

	rr := env.do(t, http.MethodGet, "/api/protocols/export", userToken, nil)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, export.ContentType, rr.Header().Get("Content-Type"))
	assert.Equal(t, "attachment; filename=protocols.xlsx", rr.Header().Get("Content-Disposition"))
	assert.Equal(t, workbook, rr.Body.Bytes())
}

func TestExportProtocols_NeedsToken(t *testing.T) {
	env := newTestEnv(t)

	rr := env.do(t, http.MethodGet, "/api/protocols/export", "", nil)

	assertMessage(t, rr, http.StatusUnauthorized, app.MsgTokenAbsent)
}

func TestDeleteProtocol(t *testing.T) {
	tests := []struct {
		name       string
		path       string
		serviceErr error
		callsSvc   bool
		wantStatus int
		wantMsg    string
	}{
		{name: "deleted", path: "/api/protocols/5", callsSvc: true, wantStatus: http.StatusOK, wantMsg: app.MsgProtocolDeleted},
		{name: "not found", path: "/api/protocols/5", callsSvc: true, serviceErr: store.ErrProtocolNotFound, wantStatus: http.StatusNotFound, wantMsg: app.MsgProtocolNotFound},
		{name: "not owner", path: "/api/protocols/5", callsSvc: true, serviceErr: service.ErrForbidden, wantStatus: http.StatusForbidden, wantMsg: app.MsgNoPermissionToDelete},
		{name: "non-numeric id", path: "/api/protocols/abc", wantStatus: http.StatusBadRequest, wantMsg: app.MsgInvalidID},
		{name: "zero id", path: "/api/protocols/0", wantStatus: http.StatusBadRequest, wantMsg: app.MsgInvalidID},
		{name: "negative id", path: "/api/protocols/-3", wantStatus: http.StatusBadRequest, wantMsg: app.MsgInvalidID},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv(t)
			if tt.callsSvc {
				env.protocols.EXPECT().Delete(gomock.Any(), userPrincipal, int64(5)).Return(tt.serviceErr)
			}

			rr := env.do(t, http.MethodDelete, tt.path, userToken, nil)

			assertMessage(t, rr, tt.wantStatus, tt.wantMsg)
		})
	}
}
