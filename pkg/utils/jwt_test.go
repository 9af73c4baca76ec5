package utils

import (
	"testing"
	"time"

	"github.com/google/uuid"
)

func TestCreateAndValidateToken(t *testing.T) {
	secret := []byte("test-secret")
	userID := uuid.New()

	token, issued, err := CreateToken(secret, userID, "admin", time.Minute)
	if err != nil {
		t.Fatalf("CreateToken: %v", err)
	}

	claims, err := ValidateToken(secret, token)
	if err != nil {
		t.Fatalf("ValidateToken: %v", err)
	}
	if claims.UserID != userID.String() || claims.Role != "admin" {
		t.Errorf("unexpected claims %+v", claims)
	}
	if claims.ID == "" || claims.ID != issued.ID {
		t.Errorf("token id mismatch: %q vs %q", claims.ID, issued.ID)
	}
}

func TestValidateToken_Rejects(t *testing.T) {
	secret := []byte("test-secret")
	userID := uuid.New()

	expired, _, err := CreateToken(secret, userID, "user", -time.Minute)
	if err != nil {
		t.Fatalf("CreateToken: %v", err)
	}
	if _, err := ValidateToken(secret, expired); err == nil {
		t.Error("expected expired token to be rejected")
	}

	other, _, _ := CreateToken([]byte("other"), userID, "user", time.Minute)
	if _, err := ValidateToken(secret, other); err == nil {
		t.Error("expected token signed with another secret to be rejected")
	}

	if _, err := ValidateToken(secret, "not-a-token"); err == nil {
		t.Error("expected garbage to be rejected")
	}
}

func TestHashPassword(t *testing.T) {
	hash, err := HashPassword("s3cret!")
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	if err := ComparePasswords(hash, "s3cret!"); err != nil {
		t.Errorf("expected match, got %v", err)
	}
	if err := ComparePasswords(hash, "wrong"); err == nil {
		t.Error("expected mismatch")
	}
}

func TestLoadLocation(t *testing.T) {
	if loc := LoadLocation("Not/AZone"); loc != time.UTC {
		t.Errorf("expected UTC fallback, got %v", loc)
	}
}
