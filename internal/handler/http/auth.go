package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/MKhiriev/go-protocol-catalog/internal/app"
	"github.com/MKhiriev/go-protocol-catalog/internal/logger"
	"github.com/MKhiriev/go-protocol-catalog/internal/service"
	"github.com/MKhiriev/go-protocol-catalog/internal/utils"
	"github.com/MKhiriev/go-protocol-catalog/models"
)

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var req models.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Str("func", "*Handler.login").Msg("invalid JSON was passed")
		utils.WriteMessage(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
		return
	}

	result, err := h.services.AuthService.Login(r.Context(), req)
	if err != nil {
		if errors.Is(err, service.ErrInvalidDataProvided) {
			utils.WriteMessage(w, app.MsgUsernamePasswordRequired, http.StatusBadRequest)
			return
		}
		writeError(w, r, err, "*Handler.login")
		return
	}

	log.Info().Str("func", "*Handler.login").Int64("user_id", result.User.ID).Msg("user logged in")

	utils.WriteJSON(w, models.LoginResponse{
		Message: app.MsgLoginSuccessful,
		Token:   result.Token,
		User:    result.User,
	}, http.StatusOK)
}
