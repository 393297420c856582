package http

import (
	"encoding/json"
	"net/http"

	"github.com/MKhiriev/go-protocol-catalog/internal/app"
	"github.com/MKhiriev/go-protocol-catalog/internal/logger"
	"github.com/MKhiriev/go-protocol-catalog/internal/utils"
	"github.com/MKhiriev/go-protocol-catalog/models"
)

func (h *Handler) listUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.services.UserService.List(r.Context())
	if err != nil {
		writeError(w, r, err, "*Handler.listUsers")
		return
	}

	if users == nil {
		users = []models.User{}
	}
	utils.WriteJSON(w, users, http.StatusOK)
}

func (h *Handler) createUser(w http.ResponseWriter, r *http.Request) {
	var newUser models.NewUser
	if err := json.NewDecoder(r.Body).Decode(&newUser); err != nil {
		logger.FromRequest(r).Err(err).Str("func", "*Handler.createUser").Msg("invalid JSON was passed")
		utils.WriteMessage(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
		return
	}

	id, err := h.services.UserService.Create(r.Context(), newUser)
	if err != nil {
		writeError(w, r, err, "*Handler.createUser")
		return
	}

	utils.WriteJSON(w, models.CreatedResponse{Message: app.MsgUserCreated, ID: id}, http.StatusCreated)
}

func (h *Handler) updateUser(w http.ResponseWriter, r *http.Request) {
	id, err := idFromPath(r)
	if err != nil {
		writeError(w, r, err, "*Handler.updateUser")
		return
	}

	var update models.UserUpdate
	if err = json.NewDecoder(r.Body).Decode(&update); err != nil {
		logger.FromRequest(r).Err(err).Str("func", "*Handler.updateUser").Msg("invalid JSON was passed")
		utils.WriteMessage(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
		return
	}

	if err = h.services.UserService.Update(r.Context(), id, update); err != nil {
		writeError(w, r, err, "*Handler.updateUser")
		return
	}

	utils.WriteMessage(w, app.MsgUserUpdated, http.StatusOK)
}

func (h *Handler) deleteUser(w http.ResponseWriter, r *http.Request) {
	principal, ok := utils.GetPrincipalFromContext(r.Context())
	if !ok {
		utils.WriteMessage(w, app.MsgTokenAbsent, http.StatusUnauthorized)
		return
	}

	id, err := idFromPath(r)
	if err != nil {
		writeError(w, r, err, "*Handler.deleteUser")
		return
	}

	if err = h.services.UserService.Delete(r.Context(), principal, id); err != nil {
		writeError(w, r, err, "*Handler.deleteUser")
		return
	}

	utils.WriteMessage(w, app.MsgUserDeleted, http.StatusOK)
}
