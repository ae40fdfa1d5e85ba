package auth

import (
	"errors"
	"testing"
	"time"

	"hayvanpazari-backend/internal/config"
)

func testConfig(expiry string) *config.Config {
	cfg := config.New()
	cfg.JWT.Secret = "test-secret"
	cfg.JWT.Expiry = expiry
	return cfg
}

func TestTokenRoundTrip(t *testing.T) {
	m := NewJWTManager(testConfig("1h"))

	token, err := m.GenerateToken("user-42")
	if err != nil {
		t.Fatalf("GenerateToken failed: %v", err)
	}

	userID, err := m.VerifyToken(token)
	if err != nil {
		t.Fatalf("VerifyToken failed: %v", err)
	}
	if userID != "user-42" {
		t.Fatalf("Expected user-42, got %s", userID)
	}
}

func TestExpiredToken(t *testing.T) {
	m := NewJWTManager(testConfig("1h"))
	m.expiry = -time.Minute

	token, err := m.GenerateToken("user-42")
	if err != nil {
		t.Fatalf("GenerateToken failed: %v", err)
	}

	if _, err := m.VerifyToken(token); !errors.Is(err, ErrExpiredToken) {
		t.Fatalf("Expected ErrExpiredToken, got %v", err)
	}
}

func TestWrongSecret(t *testing.T) {
	m := NewJWTManager(testConfig("1h"))
	token, err := m.GenerateToken("user-42")
	if err != nil {
		t.Fatalf("GenerateToken failed: %v", err)
	}

	other := NewJWTManager(testConfig("1h"))
	other.secret = []byte("different-secret")
	if _, err := other.VerifyToken(token); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("Expected ErrInvalidToken, got %v", err)
	}
}

func TestInvalidExpiryFallsBack(t *testing.T) {
	m := NewJWTManager(testConfig("not-a-duration"))
	if m.expiry != 168*time.Hour {
		t.Fatalf("Expected 168h fallback, got %v", m.expiry)
	}
}

func TestGarbageToken(t *testing.T) {
	m := NewJWTManager(testConfig("1h"))
	if _, err := m.VerifyToken("not.a.token"); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("Expected ErrInvalidToken, got %v", err)
	}
}
