package auth

import (
	"testing"
)

func TestTokenRoundTrip(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	token, err := GenerateToken("user-123", "test@example.com")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	userID, email, err := ValidateToken(token)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if userID != "user-123" || email != "test@example.com" {
		t.Errorf("claims = %s / %s", userID, email)
	}
}

func TestGenerateTokenRequiresUserID(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	if _, err := GenerateToken("", "test@example.com"); err == nil {
		t.Fatal("expected error for empty userID")
	}
}

func TestValidateTokenRejectsTampering(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	token, err := GenerateToken("user-123", "test@example.com")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, _, err := ValidateToken(token + "x"); err == nil {
		t.Fatal("expected error for tampered token")
	}

	t.Setenv("JWT_SECRET", "different-secret")
	if _, _, err := ValidateToken(token); err == nil {
		t.Fatal("expected error when secret changes")
	}
}
