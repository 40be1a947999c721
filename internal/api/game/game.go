package game

import (
	"net/http"

	"go.uber.org/zap"

	"game_wheel/internal/api"
	dto "game_wheel/internal/api/dto/game"
	"game_wheel/internal/converter"
	"game_wheel/internal/model"
	"game_wheel/internal/service"
	"game_wheel/pkg/req"
	"game_wheel/pkg/resp"
)

type HandlerDeps struct {
	Serv   service.GameService
	Logger *zap.Logger
}

type Handler struct {
	serv   service.GameService
	logger *zap.Logger
}

func NewHandler(deps HandlerDeps) *Handler {
	return &Handler{
		serv:   deps.Serv,
		logger: deps.Logger,
	}
}

// List - GET /games?sort=votes|name
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	sortBy := r.URL.Query().Get("sort")
	if sortBy != "" && sortBy != model.SortByVotes && sortBy != model.SortByName {
		resp.WriteError(w, http.StatusBadRequest, "sort must be votes or name")
		return
	}

	games, err := h.serv.List(r.Context(), sortBy)
	if err != nil {
		api.WriteError(w, h.logger, err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToGameResponses(games))
}

func (h *Handler) Add(w http.ResponseWriter, r *http.Request) {
	requestBody, err := req.Decode[dto.AddRequest](r.Body)
	if err != nil {
		api.WriteBadRequest(w, err)
		return
	}

	if err := h.serv.Add(r.Context(), requestBody.Game); err != nil {
		api.WriteError(w, h.logger, err)
		return
	}

	resp.WriteMessage(w, http.StatusCreated, "Игра добавлена")
}

func (h *Handler) Edit(w http.ResponseWriter, r *http.Request) {
	requestBody, err := req.Decode[dto.EditRequest](r.Body)
	if err != nil {
		api.WriteBadRequest(w, err)
		return
	}

	if err := h.serv.Edit(r.Context(), converter.ToGameEdit(requestBody)); err != nil {
		api.WriteError(w, h.logger, err)
		return
	}

	resp.WriteMessage(w, http.StatusOK, "Игра обновлена")
}

func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	requestBody, err := req.Decode[dto.DeleteRequest](r.Body)
	if err != nil {
		api.WriteBadRequest(w, err)
		return
	}

	if err := h.serv.Delete(r.Context(), requestBody.Game); err != nil {
		api.WriteError(w, h.logger, err)
		return
	}

	resp.WriteMessage(w, http.StatusOK, "Удалено")
}

// Vote - публичный эндпоинт, один голос на пользователя за игру
func (h *Handler) Vote(w http.ResponseWriter, r *http.Request) {
	requestBody, err := req.Decode[dto.VoteRequest](r.Body)
	if err != nil {
		api.WriteBadRequest(w, err)
		return
	}

	if err := h.serv.Vote(r.Context(), converter.ToVote(requestBody)); err != nil {
		api.WriteError(w, h.logger, err)
		return
	}

	resp.WriteMessage(w, http.StatusOK, "Голос засчитан")
}
