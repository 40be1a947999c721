package auth

import (
	"game_wheel/internal/config"
	"game_wheel/internal/service"
)

type serv struct {
	jwtConfig       config.JWTConfig
	moderatorConfig config.ModeratorConfig
}

// NewAuthService - вход модератора по общему паролю
func NewAuthService(jwtConfig config.JWTConfig, moderatorConfig config.ModeratorConfig) service.AuthService {
	return &serv{
		jwtConfig:       jwtConfig,
		moderatorConfig: moderatorConfig,
	}
}
