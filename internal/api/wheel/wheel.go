package wheel

import (
	"net/http"
	"strconv"

	"go.uber.org/zap"

	"game_wheel/internal/api"
	"game_wheel/internal/converter"
	"game_wheel/internal/service"
	"game_wheel/pkg/resp"
)

const (
	defaultHistoryLimit = 50
	maxHistoryLimit     = 500
)

type HandlerDeps struct {
	Serv   service.WheelService
	Logger *zap.Logger
}

type Handler struct {
	serv   service.WheelService
	logger *zap.Logger
}

func NewHandler(deps HandlerDeps) *Handler {
	return &Handler{
		serv:   deps.Serv,
		logger: deps.Logger,
	}
}

// State - угол, фаза, раскладка секторов и журнал выбывших
func (h *Handler) State(w http.ResponseWriter, r *http.Request) {
	resp.WriteJSONResponse(w, http.StatusOK, converter.ToStateResponse(h.serv.State()))
}

// Spin запускает спин. Клиенты видят анимацию через /wheel/ws
func (h *Handler) Spin(w http.ResponseWriter, r *http.Request) {
	ticket, err := h.serv.Spin(r.Context())
	if err != nil {
		api.WriteError(w, h.logger, err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusAccepted, converter.ToSpinResponse(ticket))
}

// Reset - новый раунд из текущего списка игр
func (h *Handler) Reset(w http.ResponseWriter, r *http.Request) {
	if err := h.serv.Reload(r.Context()); err != nil {
		api.WriteError(w, h.logger, err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToStateResponse(h.serv.State()))
}

// History - GET /wheel/history?limit=N, новые первыми
func (h *Handler) History(w http.ResponseWriter, r *http.Request) {
	limit := defaultHistoryLimit
	if s := r.URL.Query().Get("limit"); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil || n <= 0 {
			resp.WriteError(w, http.StatusBadRequest, "limit must be a positive integer")
			return
		}
		limit = min(n, maxHistoryLimit)
	}

	records, err := h.serv.History(r.Context(), limit)
	if err != nil {
		api.WriteError(w, h.logger, err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToHistoryResponse(records))
}
