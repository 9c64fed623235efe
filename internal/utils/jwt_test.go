package utils

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const (
	testIssuer  = "account-keeper-test"
	testSignKey = "test-sign-key"
)

func TestGenerateJWTToken_RoundTrip(t *testing.T) {
	token, err := GenerateJWTToken(testIssuer, 42, time.Hour, testSignKey)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if token.SignedString == "" {
		t.Fatal("expected non-empty signed string")
	}

	parsed, err := ValidateAndParseJWTToken(token.SignedString, testSignKey, testIssuer)
	if err != nil {
		t.Fatalf("unexpected error validating token: %v", err)
	}
	if parsed.UserID != 42 {
		t.Errorf("expected UserID=42, got %d", parsed.UserID)
	}
}

func TestGenerateJWTToken_InvalidParams(t *testing.T) {
	tests := []struct {
		name     string
		issuer   string
		duration time.Duration
		signKey  string
	}{
		{"empty issuer", "", time.Hour, testSignKey},
		{"zero duration", testIssuer, 0, testSignKey},
		{"empty sign key", testIssuer, time.Hour, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := GenerateJWTToken(tt.issuer, 1, tt.duration, tt.signKey); err == nil {
				t.Error("expected error, got nil")
			}
		})
	}
}

func TestValidateAndParseJWTToken_WrongKey(t *testing.T) {
	token, err := GenerateJWTToken(testIssuer, 42, time.Hour, testSignKey)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, err = ValidateAndParseJWTToken(token.SignedString, "another-key", testIssuer); err == nil {
		t.Error("expected validation error for wrong sign key")
	}
}

func TestValidateAndParseJWTToken_WrongIssuer(t *testing.T) {
	token, err := GenerateJWTToken(testIssuer, 42, time.Hour, testSignKey)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, err = ValidateAndParseJWTToken(token.SignedString, testSignKey, "other-issuer"); err == nil {
		t.Error("expected validation error for issuer mismatch")
	}
}

func TestValidateAndParseJWTToken_Expired(t *testing.T) {
	token, err := GenerateJWTToken(testIssuer, 42, -time.Minute, testSignKey)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	_, err = ValidateAndParseJWTToken(token.SignedString, testSignKey, testIssuer)
	if err == nil {
		t.Fatal("expected validation error for expired token")
	}
	if !errors.Is(err, jwt.ErrTokenExpired) {
		t.Errorf("expected error to match jwt.ErrTokenExpired, got %v", err)
	}
}

func TestValidateAndParseJWTToken_Malformed(t *testing.T) {
	if _, err := ValidateAndParseJWTToken("not.a.token", testSignKey, testIssuer); err == nil {
		t.Error("expected validation error for malformed token")
	}
}

func TestParseBearerToken(t *testing.T) {
	token, err := ParseBearerToken("Bearer abc.def.ghi")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if token != "abc.def.ghi" {
		t.Errorf("expected token string, got %q", token)
	}

	for _, header := range []string{"", "Bearer", "Bearer ", "abc def ghi"} {
		if _, err = ParseBearerToken(header); err == nil {
			t.Errorf("expected error for header %q", header)
		}
	}
}

func TestParseUserIDFromJWT(t *testing.T) {
	token, err := GenerateJWTToken(testIssuer, 7, time.Hour, testSignKey)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	id, err := ParseUserIDFromJWT(token.SignedString)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if id != 7 {
		t.Errorf("expected user id 7, got %d", id)
	}
}
