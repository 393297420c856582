package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-protocol-catalog/internal/app"
	"github.com/MKhiriev/go-protocol-catalog/internal/logger"
	"github.com/MKhiriev/go-protocol-catalog/internal/service"
	"github.com/MKhiriev/go-protocol-catalog/internal/store"
	"github.com/MKhiriev/go-protocol-catalog/internal/utils"
	"github.com/MKhiriev/go-protocol-catalog/internal/validators"
)

var errorStatusMap = map[error]int{
	service.ErrInvalidDataProvided:     http.StatusBadRequest,
	service.ErrInvalidCredentials:      http.StatusUnauthorized,
	service.ErrTokenIsExpiredOrInvalid: http.StatusForbidden,
	service.ErrForbidden:               http.StatusForbidden,
	service.ErrSelfDeleteForbidden:     http.StatusBadRequest,

	validators.ErrInvalidField:    http.StatusBadRequest,
	validators.ErrNothingToUpdate: http.StatusBadRequest,

	store.ErrUsernameAlreadyExists: http.StatusBadRequest,
	store.ErrNoUserWasFound:        http.StatusNotFound,
	store.ErrProtocolAlreadyExists: http.StatusBadRequest,
	store.ErrProtocolNotFound:      http.StatusNotFound,
	store.ErrCreatorNotFound:       http.StatusUnauthorized,

	ErrInvalidID: http.StatusBadRequest,
}

var errorMessageMap = map[error]string{
	service.ErrInvalidDataProvided:     app.MsgInvalidDataProvided,
	service.ErrInvalidCredentials:      app.MsgInvalidCredentials,
	service.ErrTokenIsExpiredOrInvalid: app.MsgInvalidToken,
	service.ErrForbidden:               app.MsgNoPermissionToDelete,
	service.ErrSelfDeleteForbidden:     app.MsgCannotDeleteOwnAccount,

	store.ErrUsernameAlreadyExists: app.MsgUsernameAlreadyExists,
	store.ErrNoUserWasFound:        app.MsgUserNotFound,
	store.ErrProtocolAlreadyExists: app.MsgProtocolAlreadyExists,
	store.ErrProtocolNotFound:      app.MsgProtocolNotFound,
	store.ErrCreatorNotFound:       app.MsgUserNoLongerExists,

	ErrInvalidID: app.MsgInvalidID,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// messageFromError returns the client-facing text for err. Validation
// details win over the generic "invalid data provided" they are wrapped in.
// Unknown errors never leak their text.
func messageFromError(err error) string {
	var fieldErr *validators.FieldError
	if errors.As(err, &fieldErr) {
		return fieldErr.Error()
	}
	if errors.Is(err, validators.ErrNothingToUpdate) {
		return app.MsgNothingToUpdate
	}

	for target, msg := range errorMessageMap {
		if errors.Is(err, target) {
			return msg
		}
	}
	return app.MsgInternalServerError
}

// writeError answers the request with the status and message mapped from
// err. Server-side failures are logged with their full chain.
func writeError(w http.ResponseWriter, r *http.Request, err error, funcName string) {
	log := logger.FromRequest(r)

	status := statusFromError(err)
	if status >= http.StatusInternalServerError {
		log.Err(err).Str("func", funcName).Msg("request failed")
	} else {
		log.Debug().Err(err).Str("func", funcName).Int("status", status).Msg("request rejected")
	}

	utils.WriteMessage(w, messageFromError(err), status)
}
