package http

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/MKhiriev/go-protocol-catalog/internal/app"
	"github.com/MKhiriev/go-protocol-catalog/internal/service"
	"github.com/MKhiriev/go-protocol-catalog/internal/store"
	"github.com/MKhiriev/go-protocol-catalog/internal/validators"
	"github.com/stretchr/testify/assert"
)

func TestErrorMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantMsg    string
	}{
		{name: "invalid credentials", err: service.ErrInvalidCredentials, wantStatus: http.StatusUnauthorized, wantMsg: app.MsgInvalidCredentials},
		{name: "invalid token", err: service.ErrTokenIsExpiredOrInvalid, wantStatus: http.StatusForbidden, wantMsg: app.MsgInvalidToken},
		{name: "wrapped not found", err: fmt.Errorf("error finding protocol: %w", store.ErrProtocolNotFound), wantStatus: http.StatusNotFound, wantMsg: app.MsgProtocolNotFound},
		{name: "user not found", err: fmt.Errorf("x: %w", store.ErrNoUserWasFound), wantStatus: http.StatusNotFound, wantMsg: app.MsgUserNotFound},
		{name: "self delete", err: service.ErrSelfDeleteForbidden, wantStatus: http.StatusBadRequest, wantMsg: app.MsgCannotDeleteOwnAccount},
		{
			name:       "field error wins over generic message",
			err:        fmt.Errorf("%w: %w", service.ErrInvalidDataProvided, &validators.FieldError{Field: "email", Reason: "is required"}),
			wantStatus: http.StatusBadRequest,
			wantMsg:    "email is required",
		},
		{
			name:       "nothing to update",
			err:        fmt.Errorf("%w: %w", service.ErrInvalidDataProvided, validators.ErrNothingToUpdate),
			wantStatus: http.StatusBadRequest,
			wantMsg:    app.MsgNothingToUpdate,
		},
		{name: "bad id", err: fmt.Errorf("%w: %q", ErrInvalidID, "x"), wantStatus: http.StatusBadRequest, wantMsg: app.MsgInvalidID},
		{name: "query failure", err: fmt.Errorf("%w: boom", store.ErrExecutingQuery), wantStatus: http.StatusInternalServerError, wantMsg: app.MsgInternalServerError},
		{name: "unknown", err: errors.New("secret detail"), wantStatus: http.StatusInternalServerError, wantMsg: app.MsgInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantStatus, statusFromError(tt.err))
			assert.Equal(t, tt.wantMsg, messageFromError(tt.err))
		})
	}
}
