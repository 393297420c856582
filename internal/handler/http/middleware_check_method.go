// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-protocol-catalog/internal/app"
	"github.com/MKhiriev/go-protocol-catalog/internal/utils"
)

// notFound is registered both as the router's NotFound and MethodNotAllowed
// handler. A known path called with an unsupported method gets the same
// JSON 404 as an unknown path, so route existence is not revealed.
func notFound(w http.ResponseWriter, r *http.Request) {
	utils.WriteMessage(w, app.MsgNotFound, http.StatusNotFound)
}
