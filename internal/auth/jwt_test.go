package auth

import (
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
)

const (
	testSecret = "test-secret-at-least-32-chars-long-for-security"
	testIssuer = "premier-dashboard-test"
)

func TestJWTManager_GenerateAndValidate_Success(t *testing.T) {
	manager := NewJWTManager(testSecret, testIssuer, 15*time.Minute)
	subject := uuid.New()

	token, expires, err := manager.GenerateAccessToken(subject, "premier@gmail.com", "admin")
	if err != nil {
		t.Fatalf("GenerateAccessToken failed: %v", err)
	}
	if token == "" {
		t.Fatal("expected non-empty token")
	}
	if time.Until(expires) <= 14*time.Minute {
		t.Errorf("expected expiry ~15m ahead, got %v", time.Until(expires))
	}

	claims, err := manager.ValidateAccessToken(token)
	if err != nil {
		t.Fatalf("ValidateAccessToken failed: %v", err)
	}
	if claims.Subject != subject {
		t.Errorf("expected subject %s, got %s", subject, claims.Subject)
	}
	if claims.Email != "premier@gmail.com" {
		t.Errorf("expected email claim, got %q", claims.Email)
	}
	if claims.Role != "admin" {
		t.Errorf("expected role 'admin', got %q", claims.Role)
	}
	if claims.ExpiresAt.Unix() != expires.Unix() {
		t.Errorf("expected expiry %v, got %v", expires, claims.ExpiresAt)
	}
}

func TestJWTManager_TokensAreUnique(t *testing.T) {
	manager := NewJWTManager(testSecret, testIssuer, time.Hour)
	subject := uuid.New()

	a, _, err := manager.GenerateAccessToken(subject, "a@example.com", "admin")
	if err != nil {
		t.Fatalf("GenerateAccessToken failed: %v", err)
	}
	b, _, err := manager.GenerateAccessToken(subject, "a@example.com", "admin")
	if err != nil {
		t.Fatalf("GenerateAccessToken failed: %v", err)
	}
	if a == b {
		t.Error("expected distinct tokens for consecutive logins")
	}
}

func TestJWTManager_ValidateAccessToken_Expired(t *testing.T) {
	manager := NewJWTManager(testSecret, testIssuer, -1*time.Hour)

	token, _, err := manager.GenerateAccessToken(uuid.New(), "", "admin")
	if err != nil {
		t.Fatalf("GenerateAccessToken failed: %v", err)
	}

	if _, err := manager.ValidateAccessToken(token); err == nil {
		t.Fatal("expected error for expired token, got nil")
	}
}

func TestJWTManager_ValidateAccessToken_InvalidSignature(t *testing.T) {
	signer := NewJWTManager(testSecret, testIssuer, time.Hour)
	verifier := NewJWTManager("another-secret-at-least-32-chars-long!!", testIssuer, time.Hour)

	token, _, err := signer.GenerateAccessToken(uuid.New(), "", "admin")
	if err != nil {
		t.Fatalf("GenerateAccessToken failed: %v", err)
	}

	if _, err := verifier.ValidateAccessToken(token); err == nil {
		t.Fatal("expected error for invalid signature, got nil")
	}
}

func TestJWTManager_ValidateAccessToken_Malformed(t *testing.T) {
	manager := NewJWTManager(testSecret, testIssuer, time.Hour)

	for _, token := range []string{"not.a.jwt", "garbage", "a.b"} {
		if _, err := manager.ValidateAccessToken(token); err == nil {
			t.Errorf("expected error for malformed token %q", token)
		}
	}
}

func TestJWTManager_ValidateAccessToken_WrongIssuer(t *testing.T) {
	signer := NewJWTManager(testSecret, "someone-else", time.Hour)
	verifier := NewJWTManager(testSecret, testIssuer, time.Hour)

	token, _, err := signer.GenerateAccessToken(uuid.New(), "", "admin")
	if err != nil {
		t.Fatalf("GenerateAccessToken failed: %v", err)
	}

	_, err = verifier.ValidateAccessToken(token)
	if err == nil {
		t.Fatal("expected error for wrong issuer, got nil")
	}
	if !strings.Contains(err.Error(), "invalid issuer") {
		t.Errorf("expected 'invalid issuer' error, got: %v", err)
	}
}

func TestJWTManager_ValidateAccessToken_EmptyString(t *testing.T) {
	manager := NewJWTManager(testSecret, testIssuer, time.Hour)

	_, err := manager.ValidateAccessToken("")
	if err == nil {
		t.Fatal("expected error for empty token, got nil")
	}
	if !strings.Contains(err.Error(), "empty") {
		t.Errorf("expected 'empty' error, got: %v", err)
	}
}
