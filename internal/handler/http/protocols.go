// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/MKhiriev/go-protocol-catalog/internal/app"
	"github.com/MKhiriev/go-protocol-catalog/internal/export"
	"github.com/MKhiriev/go-protocol-catalog/internal/logger"
	"github.com/MKhiriev/go-protocol-catalog/internal/utils"
	"github.com/MKhiriev/go-protocol-catalog/models"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) listProtocols(w http.ResponseWriter, r *http.Request) {
	protocols, err := h.services.ProtocolService.List(r.Context())
	if err != nil {
		writeError(w, r, err, "*Handler.listProtocols")
		return
	}

	if protocols == nil {
		protocols = []models.Protocol{}
	}
	utils.WriteJSON(w, protocols, http.StatusOK)
}

func (h *Handler) createProtocol(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	principal, ok := utils.GetPrincipalFromContext(r.Context())
	if !ok {
		utils.WriteMessage(w, app.MsgTokenAbsent, http.StatusUnauthorized)
		return
	}

	var protocol models.Protocol
	if err := json.NewDecoder(r.Body).Decode(&protocol); err != nil {
		log.Err(err).Str("func", "*Handler.createProtocol").Msg("invalid JSON was passed")
		utils.WriteMessage(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
		return
	}

	id, err := h.services.ProtocolService.Create(r.Context(), principal, protocol)
	if err != nil {
		writeError(w, r, err, "*Handler.createProtocol")
		return
	}

	utils.WriteJSON(w, models.CreatedResponse{Message: app.MsgProtocolAdded, ID: id}, http.StatusCreated)
}

func (h *Handler) exportProtocols(w http.ResponseWriter, r *http.Request) {
	data, err := h.services.ProtocolService.Export(r.Context())
	if err != nil {
		writeError(w, r, err, "*Handler.exportProtocols")
		return
	}

	w.Header().Set("Content-Type", export.ContentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%s", export.FileName))
	w.Header().Set("Content-Length", strconv.Itoa(len(data)))
	w.WriteHeader(http.StatusOK)
	if _, err = w.Write(data); err != nil {
		logger.FromRequest(r).Err(err).Str("func", "*Handler.exportProtocols").Msg("error writing workbook")
	}
}

func (h *Handler) deleteProtocol(w http.ResponseWriter, r *http.Request) {
	principal, ok := utils.GetPrincipalFromContext(r.Context())
	if !ok {
		utils.WriteMessage(w, app.MsgTokenAbsent, http.StatusUnauthorized)
		return
	}

	id, err := idFromPath(r)
	if err != nil {
		writeError(w, r, err, "*Handler.deleteProtocol")
		return
	}

	if err = h.services.ProtocolService.Delete(r.Context(), principal, id); err != nil {
		writeError(w, r, err, "*Handler.deleteProtocol")
		return
	}

	utils.WriteMessage(w, app.MsgProtocolDeleted, http.StatusOK)
}

// idFromPath reads the {id} URL parameter. Only positive integers are ids.
func idFromPath(r *http.Request) (int64, error) {
	raw := chi.URLParam(r, "id")

	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidID, raw)
	}

	return id, nil
}
