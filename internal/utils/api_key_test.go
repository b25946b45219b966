package utils

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func signedKey(t *testing.T, claims jwt.Claims) string {
	t.Helper()
	s, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	if err != nil {
		t.Fatalf("sign: %v", err)
	}
	return s
}

func TestInspectAPIKey_JWT(t *testing.T) {
	exp := time.Now().Add(time.Hour).Truncate(time.Second)
	key := signedKey(t, jwt.RegisteredClaims{
		Subject:   "user-1",
		ExpiresAt: jwt.NewNumericDate(exp),
	})

	info, err := InspectAPIKey(key)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !info.IsJWT {
		t.Fatal("expected IsJWT=true")
	}
	if info.Subject != "user-1" {
		t.Errorf("expected subject user-1, got %q", info.Subject)
	}
	if info.ExpiresAt == nil || !info.ExpiresAt.Equal(exp) {
		t.Errorf("expected expiration %v, got %v", exp, info.ExpiresAt)
	}
	if info.Expired(time.Now()) {
		t.Error("expected key not to be expired")
	}
}

func TestInspectAPIKey_ExpiredJWT(t *testing.T) {
	key := signedKey(t, jwt.RegisteredClaims{
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
	})

	info, err := InspectAPIKey(key)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !info.Expired(time.Now()) {
		t.Error("expected key to be expired")
	}
}

func TestInspectAPIKey_NoExpiration(t *testing.T) {
	info, err := InspectAPIKey(signedKey(t, jwt.MapClaims{"scope": "files"}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if info.ExpiresAt != nil {
		t.Errorf("expected no expiration, got %v", info.ExpiresAt)
	}
	if info.Expired(time.Now()) {
		t.Error("key without exp must not be expired")
	}
}

func TestInspectAPIKey_Opaque(t *testing.T) {
	info, err := InspectAPIKey("plain-api-key")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if info.IsJWT {
		t.Error("expected IsJWT=false for opaque key")
	}
}

func TestInspectAPIKey_Empty(t *testing.T) {
	_, err := InspectAPIKey("  ")
	if !errors.Is(err, ErrEmptyAPIKey) {
		t.Errorf("expected ErrEmptyAPIKey, got %v", err)
	}
}
