package utils

import (
	"context"
	"testing"

	"github.com/MKhiriev/go-protocol-catalog/models"
)

func TestPrincipalCtxKey(t *testing.T) {
	if PrincipalCtxKey.String() != "principal" {
		t.Errorf("expected 'principal', got '%s'", PrincipalCtxKey.String())
	}
}

func TestGetPrincipalFromContext_Success(t *testing.T) {
	want := models.Principal{ID: 42, Username: "alice", Role: models.RoleAdmin}
	ctx := WithPrincipal(context.Background(), want)

	got, ok := GetPrincipalFromContext(ctx)

	if !ok {
		t.Fatal("expected ok=true, got false")
	}
	if got != want {
		t.Errorf("expected %+v, got %+v", want, got)
	}
}

func TestGetPrincipalFromContext_Missing(t *testing.T) {
	got, ok := GetPrincipalFromContext(context.Background())

	if ok {
		t.Fatal("expected ok=false, got true")
	}
	if got != (models.Principal{}) {
		t.Errorf("expected zero principal, got %+v", got)
	}
}

func TestGetPrincipalFromContext_WrongType(t *testing.T) {
	ctx := context.WithValue(context.Background(), PrincipalCtxKey, int64(42))

	if _, ok := GetPrincipalFromContext(ctx); ok {
		t.Fatal("expected ok=false for wrong type, got true")
	}
}

func TestGetPrincipalFromContext_DifferentKey(t *testing.T) {
	ctx := context.WithValue(context.Background(), contextKey("other"), models.Principal{ID: 1})

	if _, ok := GetPrincipalFromContext(ctx); ok {
		t.Fatal("expected ok=false for different key, got true")
	}
}
