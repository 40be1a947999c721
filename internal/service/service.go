package service

import (
	"context"

	"game_wheel/internal/model"
	"game_wheel/internal/wheel"
)

type GameService interface {
	List(ctx context.Context, sortBy string) ([]model.Game, error)
	Add(ctx context.Context, name string) error
	Edit(ctx context.Context, edit model.GameEdit) error
	Delete(ctx context.Context, name string) error
	Vote(ctx context.Context, vote model.Vote) error
}

type AuthService interface {
	Login(ctx context.Context, password string) (accessToken string, err error)
}

type SettingsService interface {
	Get(ctx context.Context) (*model.WheelSettings, error)
	Update(ctx context.Context, settings *model.WheelSettings) error
}

type WheelService interface {
	Reload(ctx context.Context) error
	SyncVotes(ctx context.Context) error
	Spin(ctx context.Context) (wheel.SpinTicket, error)
	State() wheel.State
	Subscribe() (<-chan wheel.Frame, func())
	History(ctx context.Context, limit int) ([]model.RoundRecord, error)
}
