package game

import (
	"context"
	"slices"
	"strings"

	"go.uber.org/zap"

	"game_wheel/internal/model"
)

// Vote - один голос от одного пользователя за игру.
// Имя пользователя сравнивается без учёта регистра и пробелов по краям.
func (s *serv) Vote(ctx context.Context, vote model.Vote) error {
	username := strings.ToLower(strings.TrimSpace(vote.Username))
	if username == "" {
		return model.ErrInvalidUsername
	}
	name := strings.TrimSpace(vote.Game)

	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		// строка игры заблокирована до конца транзакции
		game, err := s.repo.GetForUpdate(ctx, name)
		if err != nil {
			return err
		}

		if slices.Contains(game.Voters, username) {
			return model.ErrAlreadyVoted
		}

		return s.repo.AddVoter(ctx, name, username)
	})
	if err != nil {
		return err
	}

	// раунд колеса не сбрасывается, новые веса пойдут со следующего спина
	if err := s.wheel.SyncVotes(ctx); err != nil {
		s.logger.Error("failed to sync wheel votes", zap.Error(err))
	}

	return nil
}
