package middleware

import (
	"context"
	"net/http"
	"strings"

	"game_wheel/internal/model"
	"game_wheel/pkg/resp"
	"game_wheel/pkg/token"
)

type ctxKey struct{}

// Auth пропускает только запросы с валидным Bearer-токеном модератора
func Auth(secretKey []byte) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			tokenStr, ok := strings.CutPrefix(header, "Bearer ")
			if !ok || tokenStr == "" {
				resp.WriteError(w, http.StatusUnauthorized, "missing bearer token")
				return
			}

			claims, err := token.VerifyToken(tokenStr, secretKey)
			if err != nil || claims.Subject != model.ModeratorSubject {
				resp.WriteError(w, http.StatusUnauthorized, "invalid or expired token")
				return
			}

			ctx := context.WithValue(r.Context(), ctxKey{}, claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// ClaimsFromContext - claims, положенные Auth
func ClaimsFromContext(ctx context.Context) (*model.ModeratorClaims, bool) {
	claims, ok := ctx.Value(ctxKey{}).(*model.ModeratorClaims)
	return claims, ok
}
