package utils

import (
	"testing"

	"auth/models"
)

func TestSessionTokenRoundTrip(t *testing.T) {
	user := models.User{ID: "user-42", Email: "ana@example.com", Name: "Ana"}

	token, err := GenerateSessionToken(user)
	if err != nil {
		t.Fatalf("GenerateSessionToken: %v", err)
	}

	claims, err := ParseSessionToken(token)
	if err != nil {
		t.Fatalf("ParseSessionToken: %v", err)
	}
	if claims.UserID != user.ID {
		t.Errorf("UserID = %q, want %q", claims.UserID, user.ID)
	}
	if claims.Email != user.Email {
		t.Errorf("Email = %q, want %q", claims.Email, user.Email)
	}
	if claims.ExpiresAt == nil || !claims.ExpiresAt.After(claims.IssuedAt.Time) {
		t.Error("expiry not set after issuance time")
	}
}

func TestParseSessionTokenRejectsGarbage(t *testing.T) {
	if _, err := ParseSessionToken("not-a-jwt"); err == nil {
		t.Error("malformed token accepted")
	}
}

func TestParseSessionTokenRejectsTampering(t *testing.T) {
	token, err := GenerateSessionToken(models.User{ID: "user-42"})
	if err != nil {
		t.Fatal(err)
	}

	tampered := token[:len(token)-2] + "xx"
	if _, err := ParseSessionToken(tampered); err == nil {
		t.Error("token with a forged signature accepted")
	}
}
