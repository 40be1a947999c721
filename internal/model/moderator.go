package model

import (
	"github.com/golang-jwt/jwt/v5"
)

// ModeratorSubject - subject в токене модератора
const ModeratorSubject = "moderator"

type ModeratorClaims struct {
	jwt.RegisteredClaims
}
