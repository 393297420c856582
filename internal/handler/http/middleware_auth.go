package http

import (
	"net/http"
	"strings"

	"github.com/MKhiriev/go-protocol-catalog/internal/app"
	"github.com/MKhiriev/go-protocol-catalog/internal/logger"
	"github.com/MKhiriev/go-protocol-catalog/internal/utils"
	"github.com/MKhiriev/go-protocol-catalog/models"
)

// auth is the access guard of every protected route.
//
// A request without a usable bearer token is answered with 401
// "token absent"; a token that fails verification with 403 "invalid token".
// On success the [models.Principal] is stored in the request context under
// [utils.PrincipalCtxKey].
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		tokenString, err := getTokenFromAuthHeader(r.Header.Get("Authorization"))
		if err != nil {
			log.Debug().Err(err).Str("func", "*Handler.auth").Msg("no token in request")
			utils.WriteMessage(w, app.MsgTokenAbsent, http.StatusUnauthorized)
			return
		}

		ctx := r.Context()
		principal, err := h.services.AuthService.ParseToken(ctx, tokenString)
		if err != nil {
			log.Info().Err(err).Str("func", "*Handler.auth").Msg("token rejected")
			utils.WriteMessage(w, app.MsgInvalidToken, http.StatusForbidden)
			return
		}

		next.ServeHTTP(w, r.WithContext(utils.WithPrincipal(ctx, principal)))
	})
}

// requireAdmin must run after auth. Only the admin role passes.
func (h *Handler) requireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		principal, ok := utils.GetPrincipalFromContext(r.Context())
		if !ok {
			utils.WriteMessage(w, app.MsgTokenAbsent, http.StatusUnauthorized)
			return
		}

		switch principal.Role {
		case models.RoleAdmin:
			next.ServeHTTP(w, r)
		case models.RoleUser:
			logger.FromRequest(r).Info().Str("func", "*Handler.requireAdmin").Int64("user_id", principal.ID).Msg("admin route denied")
			utils.WriteMessage(w, app.MsgAdminRoleRequired, http.StatusForbidden)
		default:
			utils.WriteMessage(w, app.MsgAdminRoleRequired, http.StatusForbidden)
		}
	})
}

// getTokenFromAuthHeader extracts the token from a raw header value of the
// form "<scheme> <token>". The scheme itself is not checked.
func getTokenFromAuthHeader(authHeader string) (string, error) {
	if authHeader == "" {
		return "", ErrEmptyAuthorizationHeader
	}

	parts := strings.Split(authHeader, " ")
	if len(parts) < 2 {
		return "", ErrInvalidAuthorizationHeader
	}

	tokenString := parts[1]
	if tokenString == "" {
		return "", ErrEmptyToken
	}

	return tokenString, nil
}
