package token

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"game_wheel/internal/model"
)

func GenerateAccessToken(subject string, secretKey []byte, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := model.ModeratorClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	return token.SignedString(secretKey)
}

func VerifyToken(tokenStr string, secretKey []byte) (*model.ModeratorClaims, error) {
	token, err := jwt.ParseWithClaims(tokenStr, &model.ModeratorClaims{}, func(token *jwt.Token) (interface{}, error) {
		_, ok := token.Method.(*jwt.SigningMethodHMAC)
		if !ok {
			return nil, errors.New("unexpected token signing method")
		}

		return secretKey, nil
	})
	if err != nil {
		return nil, fmt.Errorf("invalid token: %w", err)
	}

	claims, ok := token.Claims.(*model.ModeratorClaims)
	if !ok {
		return nil, errors.New("invalid token claims")
	}

	return claims, nil
}
