package auth

import (
	"context"
	"errors"
	"testing"
	"time"

	"game_wheel/internal/model"
	"game_wheel/pkg/pass"
	"game_wheel/pkg/token"
)

type jwtConfig struct{}

func (jwtConfig) AccessTokenSecretKey() []byte        { return []byte("test-secret") }
func (jwtConfig) AccessTokenDuration() time.Duration { return time.Hour }

type moderatorConfig struct {
	hash string
}

func (m moderatorConfig) PasswordHash() string { return m.hash }

func TestLogin(t *testing.T) {
	hash, err := pass.HashPassword("secret")
	if err != nil {
		t.Fatalf("HashPassword failed: %v", err)
	}
	s := NewAuthService(jwtConfig{}, moderatorConfig{hash: hash})

	tok, err := s.Login(context.Background(), "secret")
	if err != nil {
		t.Fatalf("Login failed: %v", err)
	}

	claims, err := token.VerifyToken(tok, jwtConfig{}.AccessTokenSecretKey())
	if err != nil {
		t.Fatalf("Issued token does not verify: %v", err)
	}
	if claims.Subject != model.ModeratorSubject {
		t.Errorf("Expected subject %q, got %q", model.ModeratorSubject, claims.Subject)
	}
}

func TestLoginWrongPassword(t *testing.T) {
	hash, _ := pass.HashPassword("secret")
	s := NewAuthService(jwtConfig{}, moderatorConfig{hash: hash})

	if _, err := s.Login(context.Background(), "nope"); !errors.Is(err, model.ErrInvalidCredentials) {
		t.Errorf("Expected ErrInvalidCredentials, got %v", err)
	}
}
