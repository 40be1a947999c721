package auth

import (
	"net/http"

	"go.uber.org/zap"

	"game_wheel/internal/api"
	dto "game_wheel/internal/api/dto/auth"
	"game_wheel/internal/service"
	"game_wheel/pkg/req"
	"game_wheel/pkg/resp"
)

type HandlerDeps struct {
	Serv   service.AuthService
	Logger *zap.Logger
}

type Handler struct {
	serv   service.AuthService
	logger *zap.Logger
}

func NewHandler(deps HandlerDeps) *Handler {
	return &Handler{
		serv:   deps.Serv,
		logger: deps.Logger,
	}
}

// Login проверяет пароль модератора и возвращает access token
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	requestBody, err := req.Decode[dto.LoginRequest](r.Body)
	if err != nil {
		api.WriteBadRequest(w, err)
		return
	}

	accessToken, err := h.serv.Login(r.Context(), requestBody.Password)
	if err != nil {
		h.logger.Warn("moderator login failed", zap.String("remote", r.RemoteAddr))
		api.WriteError(w, h.logger, err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, dto.LoginResponse{Token: accessToken})
}
