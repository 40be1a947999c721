package wheel

import (
	"context"
	"time"

	"go.uber.org/zap"

	"game_wheel/internal/converter"
	"game_wheel/internal/model"
	"game_wheel/internal/repository"
	"game_wheel/internal/service"
	"game_wheel/internal/wheel"
)

// historyTimeout - сколько ждём запись раунда в историю
const historyTimeout = 5 * time.Second

type serv struct {
	ctrl     *wheel.Controller
	games    repository.GameRepository
	settings service.SettingsService
	history  repository.HistoryRepository
	logger   *zap.Logger
}

// NewWheelService связывает колесо со списком игр, настройками и историей раундов
func NewWheelService(
	ctrl *wheel.Controller,
	games repository.GameRepository,
	settings service.SettingsService,
	history repository.HistoryRepository,
	logger *zap.Logger,
) service.WheelService {
	s := &serv{
		ctrl:     ctrl,
		games:    games,
		settings: settings,
		history:  history,
		logger:   logger,
	}
	ctrl.OnRound(s.recordRound)

	return s
}

// Reload - свежий пул из базы. Идущий спин отменяется, журнал раундов очищается.
func (s *serv) Reload(ctx context.Context) error {
	games, err := s.games.List(ctx)
	if err != nil {
		return err
	}

	settings, err := s.settings.Get(ctx)
	if err != nil {
		return err
	}
	if err := s.ctrl.SetParams(converter.ToWheelParams(*settings)); err != nil {
		return err
	}

	if err := s.ctrl.Reset(converter.ToWheelItems(games)); err != nil {
		return err
	}

	s.logger.Info("wheel pool reloaded", zap.Int("games", len(games)))

	return nil
}

// SyncVotes переносит свежие голоса в оставшиеся игры, не сбрасывая раунд
func (s *serv) SyncVotes(ctx context.Context) error {
	games, err := s.games.List(ctx)
	if err != nil {
		return err
	}

	return s.ctrl.UpdateVotes(converter.ToWheelItems(games))
}

// Spin - спин со снимком текущих настроек
func (s *serv) Spin(ctx context.Context) (wheel.SpinTicket, error) {
	settings, err := s.settings.Get(ctx)
	if err != nil {
		return wheel.SpinTicket{}, err
	}

	return s.ctrl.Spin(converter.ToWheelParams(*settings))
}

func (s *serv) State() wheel.State {
	return s.ctrl.Snapshot()
}

func (s *serv) Subscribe() (<-chan wheel.Frame, func()) {
	return s.ctrl.Subscribe()
}

func (s *serv) History(ctx context.Context, limit int) ([]model.RoundRecord, error) {
	return s.history.Recent(ctx, limit)
}

// recordRound вызывается под блокировкой колеса, поэтому запись уходит в горутину
func (s *serv) recordRound(result wheel.RoundResult) {
	record := converter.ToRoundRecord(result)

	if result.IsFinalWinner {
		s.logger.Info("wheel winner", zap.String("game", result.Winner), zap.String("spin_id", result.SpinID))
	}

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), historyTimeout)
		defer cancel()

		if err := s.history.Append(ctx, record); err != nil {
			s.logger.Error("failed to save wheel round", zap.String("spin_id", record.SpinID), zap.Error(err))
		}
	}()
}
