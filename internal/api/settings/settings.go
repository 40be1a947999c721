package settings

import (
	"net/http"

	"go.uber.org/zap"

	"game_wheel/internal/api"
	dto "game_wheel/internal/api/dto/settings"
	"game_wheel/internal/converter"
	"game_wheel/internal/service"
	"game_wheel/pkg/req"
	"game_wheel/pkg/resp"
)

type HandlerDeps struct {
	Serv   service.SettingsService
	Logger *zap.Logger
}

type Handler struct {
	serv   service.SettingsService
	logger *zap.Logger
}

func NewHandler(deps HandlerDeps) *Handler {
	return &Handler{
		serv:   deps.Serv,
		logger: deps.Logger,
	}
}

func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	settings, err := h.serv.Get(r.Context())
	if err != nil {
		api.WriteError(w, h.logger, err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToSettingsResponse(*settings))
}

func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	requestBody, err := req.Decode[dto.Settings](r.Body)
	if err != nil {
		api.WriteBadRequest(w, err)
		return
	}

	if err := h.serv.Update(r.Context(), converter.ToSettingsModel(requestBody)); err != nil {
		api.WriteError(w, h.logger, err)
		return
	}

	resp.WriteMessage(w, http.StatusOK, "Настройки обновлены")
}
