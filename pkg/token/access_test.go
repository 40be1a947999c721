package token

import (
	"testing"
	"time"

	"game_wheel/internal/model"
)

func TestAccessTokenRoundTrip(t *testing.T) {
	secret := []byte("secret")

	tok, err := GenerateAccessToken(model.ModeratorSubject, secret, time.Minute)
	if err != nil {
		t.Fatalf("GenerateAccessToken failed: %v", err)
	}

	claims, err := VerifyToken(tok, secret)
	if err != nil {
		t.Fatalf("VerifyToken failed: %v", err)
	}
	if claims.Subject != model.ModeratorSubject {
		t.Errorf("expected subject %q, got %q", model.ModeratorSubject, claims.Subject)
	}
}

func TestVerifyTokenRejects(t *testing.T) {
	secret := []byte("secret")

	expired, _ := GenerateAccessToken(model.ModeratorSubject, secret, -time.Minute)
	other, _ := GenerateAccessToken(model.ModeratorSubject, []byte("other"), time.Minute)

	tests := []struct {
		name  string
		token string
	}{
		{"expired", expired},
		{"wrong secret", other},
		{"garbage", "not.a.token"},
		{"empty", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := VerifyToken(tt.token, secret); err == nil {
				t.Error("expected an error")
			}
		})
	}
}
