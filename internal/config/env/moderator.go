package env

import (
	"errors"
	"fmt"
	"os"

	"game_wheel/internal/config"
	"game_wheel/pkg/pass"
)

const (
	moderatorPasswordHashEnvName = "MODERATOR_PASSWORD_HASH"
	moderatorPasswordEnvName     = "MODERATOR_PASSWORD"
)

type moderatorConfig struct {
	passwordHash string
}

// NewModeratorConfig берёт bcrypt-хэш пароля модератора.
// Для локального запуска можно передать пароль открытым текстом, он хэшируется при старте.
func NewModeratorConfig() (config.ModeratorConfig, error) {
	if hash := os.Getenv(moderatorPasswordHashEnvName); len(hash) != 0 {
		return &moderatorConfig{passwordHash: hash}, nil
	}

	password := os.Getenv(moderatorPasswordEnvName)
	if len(password) == 0 {
		return nil, errors.New("moderator password not found")
	}

	hash, err := pass.HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash moderator password: %w", err)
	}

	return &moderatorConfig{passwordHash: hash}, nil
}

func (cfg *moderatorConfig) PasswordHash() string {
	return cfg.passwordHash
}
