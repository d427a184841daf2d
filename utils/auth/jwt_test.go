package auth

import (
	"testing"
	"time"
)

func TestGenerateAndValidateToken(t *testing.T) {
	manager := NewJWTManager(JWTConfig{
		Secret: "test-secret",
		Issuer: "unishare-test",
	})

	token, err := manager.GenerateToken(42, "ana@ulima.edu.pe", "user")
	if err != nil {
		t.Fatalf("GenerateToken failed: %v", err)
	}
	if token == "" {
		t.Fatal("expected a non-empty token")
	}

	claims, err := manager.ValidateToken(token)
	if err != nil {
		t.Fatalf("ValidateToken failed: %v", err)
	}

	if claims.UserID != 42 {
		t.Errorf("expected user ID 42, got %d", claims.UserID)
	}
	if claims.Email != "ana@ulima.edu.pe" {
		t.Errorf("expected email ana@ulima.edu.pe, got %s", claims.Email)
	}
	if claims.Role != "user" {
		t.Errorf("expected role user, got %s", claims.Role)
	}
}

func TestValidateTokenWrongSecret(t *testing.T) {
	issuing := NewJWTManager(JWTConfig{Secret: "secret-a"})
	validating := NewJWTManager(JWTConfig{Secret: "secret-b"})

	token, err := issuing.GenerateToken(1, "ana@ulima.edu.pe", "user")
	if err != nil {
		t.Fatalf("GenerateToken failed: %v", err)
	}

	if _, err := validating.ValidateToken(token); err == nil {
		t.Fatal("expected validation to fail with a different secret")
	}
}

func TestValidateExpiredToken(t *testing.T) {
	manager := NewJWTManager(JWTConfig{
		Secret: "test-secret",
		Expiry: -time.Minute,
	})

	token, err := manager.GenerateToken(7, "luis@ulima.edu.pe", "admin")
	if err != nil {
		t.Fatalf("GenerateToken failed: %v", err)
	}

	_, err = manager.ValidateToken(token)
	if err != ErrExpiredToken {
		t.Fatalf("expected ErrExpiredToken, got %v", err)
	}
}

func TestValidateGarbageToken(t *testing.T) {
	manager := NewJWTManager(JWTConfig{Secret: "test-secret"})

	if _, err := manager.ValidateToken("not.a.token"); err == nil {
		t.Fatal("expected validation to fail for a malformed token")
	}
}
