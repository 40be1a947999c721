package api

import (
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"game_wheel/internal/model"
	"game_wheel/internal/wheel"
	"game_wheel/pkg/resp"
)

// StatusFor - HTTP-статус для ошибки сервиса
func StatusFor(err error) int {
	var validationErrs validator.ValidationErrors

	switch {
	case errors.Is(err, model.ErrGameNotFound):
		return http.StatusNotFound
	case errors.Is(err, model.ErrGameExists),
		errors.Is(err, model.ErrAlreadyVoted),
		errors.Is(err, wheel.ErrSpinInProgress),
		errors.Is(err, wheel.ErrAnimationRunning),
		errors.Is(err, wheel.ErrPoolExhausted),
		errors.Is(err, wheel.ErrEmptyPool):
		return http.StatusConflict
	case errors.Is(err, model.ErrInvalidGame),
		errors.Is(err, model.ErrInvalidUsername),
		errors.Is(err, wheel.ErrInvalidParams),
		errors.Is(err, wheel.ErrInvalidItem),
		errors.As(err, &validationErrs):
		return http.StatusBadRequest
	case errors.Is(err, model.ErrInvalidCredentials):
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}

// WriteError пишет ошибку сервиса. Внутренние ошибки логируются, клиенту уходит общий текст.
func WriteError(w http.ResponseWriter, logger *zap.Logger, err error) {
	status := StatusFor(err)
	if status == http.StatusInternalServerError {
		logger.Error("request failed", zap.Error(err))
		resp.WriteError(w, status, "internal error")
		return
	}

	resp.WriteError(w, status, err.Error())
}

// WriteBadRequest - тело запроса не разобралось или не прошло валидацию
func WriteBadRequest(w http.ResponseWriter, err error) {
	resp.WriteError(w, http.StatusBadRequest, "invalid request: "+err.Error())
}
