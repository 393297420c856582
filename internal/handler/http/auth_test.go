// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/MKhiriev/go-protocol-catalog/internal/app"
	"github.com/MKhiriev/go-protocol-catalog/internal/service"
	"github.com/MKhiriev/go-protocol-catalog/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestLogin_Success(t *testing.T) {
	env := newTestEnv(t)
	req := models.LoginRequest{Username: "admin", Password: "admin123"}
	profile := models.Profile{ID: 1, Username: "admin", Email: "admin@example.com", Role: models.RoleAdmin}
	env.auth.EXPECT().Login(gomock.Any(), req).Return(models.LoginResult{Token: "signed.jwt.token", User: profile}, nil)

	rr := env.do(t, http.MethodPost, "/api/auth/login", "", req)

	require.Equal(t, http.StatusOK, rr.Code)
	var resp models.LoginResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, app.MsgLoginSuccessful, resp.Message)
	assert.Equal(t, "signed.jwt.token", resp.Token)
	assert.Equal(t, profile, resp.User)
	assert.NotContains(t, rr.Body.String(), "password")
}

func TestLogin_Failures(t *testing.T) {
	tests := []struct {
		name       string
		serviceErr error
		wantStatus int
		wantMsg    string
	}{
		{name: "missing credentials", serviceErr: service.ErrInvalidDataProvided, wantStatus: http.StatusBadRequest, wantMsg: app.MsgUsernamePasswordRequired},
		{name: "bad credentials", serviceErr: service.ErrInvalidCredentials, wantStatus: http.StatusUnauthorized, wantMsg: app.MsgInvalidCredentials},
		{name: "storage down", serviceErr: errors.New("dial tcp: connection refused"), wantStatus: http.StatusInternalServerError, wantMsg: app.MsgInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv(t)
			env.auth.EXPECT().Login(gomock.Any(), gomock.Any()).Return(models.LoginResult{}, tt.serviceErr)

			rr := env.do(t, http.MethodPost, "/api/auth/login", "", models.LoginRequest{Username: "x"})

			assertMessage(t, rr, tt.wantStatus, tt.wantMsg)
		})
	}
}

func TestLogin_InvalidJSON(t *testing.T) {
	env := newTestEnv(t)

	rr := env.do(t, http.MethodPost, "/api/auth/login", "", "{")

	assertMessage(t, rr, http.StatusBadRequest, app.MsgInvalidDataProvided)
}
