package utils

import (
	"context"

	"github.com/MKhiriev/go-protocol-catalog/models"
)

type contextKey string

func (c contextKey) String() string {
	return string(c)
}

// PrincipalCtxKey is the request-context key under which the access guard
// stores the authenticated [models.Principal].
var PrincipalCtxKey = contextKey("principal")

// WithPrincipal returns a copy of ctx carrying p.
func WithPrincipal(ctx context.Context, p models.Principal) context.Context {
	return context.WithValue(ctx, PrincipalCtxKey, p)
}

// GetPrincipalFromContext returns the principal stored by the access guard.
func GetPrincipalFromContext(ctx context.Context) (models.Principal, bool) {
	principal, ok := ctx.Value(PrincipalCtxKey).(models.Principal)
	return principal, ok
}
