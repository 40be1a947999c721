package auth

import (
	"context"

	"game_wheel/internal/model"
	"game_wheel/pkg/pass"
	"game_wheel/pkg/token"
)

func (s *serv) Login(_ context.Context, password string) (string, error) {
	// Верификация пароля
	if !pass.VerifyPassword(s.moderatorConfig.PasswordHash(), password) {
		return "", model.ErrInvalidCredentials
	}

	// Создать access токен
	accessToken, err := token.GenerateAccessToken(
		model.ModeratorSubject,
		s.jwtConfig.AccessTokenSecretKey(),
		s.jwtConfig.AccessTokenDuration())
	if err != nil {
		return "", err
	}

	return accessToken, nil
}
