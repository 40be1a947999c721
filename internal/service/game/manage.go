package game

import (
	"context"
	"fmt"
	"strings"

	"game_wheel/internal/model"
)

func (s *serv) Add(ctx context.Context, name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return fmt.Errorf("%w: empty name", model.ErrInvalidGame)
	}

	err := s.repo.Create(ctx, &model.Game{
		Name:   name,
		Voters: []string{},
	})
	if err != nil {
		return err
	}

	s.reloadWheel(ctx)
	return nil
}

// Edit - переименование и ручная правка голосов.
// Голосующих остаётся не больше, чем голосов.
func (s *serv) Edit(ctx context.Context, edit model.GameEdit) error {
	newName := strings.TrimSpace(edit.NewName)
	if newName == "" {
		return fmt.Errorf("%w: empty name", model.ErrInvalidGame)
	}
	if edit.Votes < 0 {
		return fmt.Errorf("%w: negative votes", model.ErrInvalidGame)
	}

	voters := edit.Voters
	if len(voters) > edit.Votes {
		voters = voters[:edit.Votes]
	}

	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		if _, err := s.repo.GetForUpdate(ctx, edit.OldName); err != nil {
			return err
		}

		return s.repo.Update(ctx, edit.OldName, &model.Game{
			Name:   newName,
			Votes:  edit.Votes,
			Voters: append([]string{}, voters...),
		})
	})
	if err != nil {
		return err
	}

	s.reloadWheel(ctx)
	return nil
}

func (s *serv) Delete(ctx context.Context, name string) error {
	if err := s.repo.Delete(ctx, name); err != nil {
		return err
	}

	s.reloadWheel(ctx)
	return nil
}
