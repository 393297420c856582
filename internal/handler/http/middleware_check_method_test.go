// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"testing"

	"github.com/MKhiriev/go-protocol-catalog/internal/app"
)

func TestRouter_UnknownRoutesAndMethods(t *testing.T) {
	tests := []struct {
		name   string
		method string
		path   string
		token  string
	}{
		{name: "unknown path", method: http.MethodGet, path: "/api/unknown"},
		{name: "outside api prefix", method: http.MethodGet, path: "/protocols"},
		{name: "wrong method on public route", method: http.MethodGet, path: "/api/auth/login"},
		{name: "wrong method on protected route", method: http.MethodPatch, path: "/api/protocols/1", token: userToken},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv(t)

			rr := env.do(t, tt.method, tt.path, tt.token, nil)

			assertMessage(t, rr, http.StatusNotFound, app.MsgNotFound)
		})
	}
}
