package game

import (
	"context"

	"github.com/avito-tech/go-transaction-manager/trm/v2"
	"go.uber.org/zap"

	"game_wheel/internal/repository"
	"game_wheel/internal/service"
)

// Wheel - колесо, которое держит пул игр
type Wheel interface {
	// Reload пересобирает пул после изменения списка игр
	Reload(ctx context.Context) error
	// SyncVotes обновляет голоса, не трогая идущий раунд
	SyncVotes(ctx context.Context) error
}

type serv struct {
	repo      repository.GameRepository
	txManager trm.Manager
	wheel     Wheel
	logger    *zap.Logger
}

// NewGameService - список игр и голосование
func NewGameService(
	repo repository.GameRepository,
	txManager trm.Manager,
	wheel Wheel,
	logger *zap.Logger,
) service.GameService {
	return &serv{
		repo:      repo,
		txManager: txManager,
		wheel:     wheel,
		logger:    logger,
	}
}

// reloadWheel - запись в базу уже прошла, поэтому ошибка колеса только логируется
func (s *serv) reloadWheel(ctx context.Context) {
	if err := s.wheel.Reload(ctx); err != nil {
		s.logger.Error("failed to reload wheel after games change", zap.Error(err))
	}
}
