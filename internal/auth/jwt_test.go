package auth

import (
	"errors"
	"testing"
	"time"
)

func TestGenerateAndValidate(t *testing.T) {
	m := NewJWTManager("0123456789abcdef0123456789abcdef", time.Hour)

	token, err := m.Generate("kitchen-tablet")
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	claims, err := m.Validate(token)
	if err != nil {
		t.Fatalf("Validate failed: %v", err)
	}
	if claims.Subject != "kitchen-tablet" {
		t.Errorf("Subject = %q, want kitchen-tablet", claims.Subject)
	}
	if claims.Issuer != Issuer {
		t.Errorf("Issuer = %q, want %q", claims.Issuer, Issuer)
	}
}

func TestValidateRejects(t *testing.T) {
	m := NewJWTManager("0123456789abcdef0123456789abcdef", time.Hour)
	other := NewJWTManager("fedcba9876543210fedcba9876543210", time.Hour)
	expired := NewJWTManager("0123456789abcdef0123456789abcdef", -time.Minute)

	foreign, _ := other.Generate("intruder")
	stale, _ := expired.Generate("old-client")

	tests := []struct {
		name  string
		token string
	}{
		{"garbage", "not-a-token"},
		{"wrong secret", foreign},
		{"expired", stale},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := m.Validate(tt.token); !errors.Is(err, ErrInvalidToken) {
				t.Errorf("Validate: got %v, want ErrInvalidToken", err)
			}
		})
	}
}
