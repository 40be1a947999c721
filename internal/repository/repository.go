package repository

import (
	"context"

	"game_wheel/internal/model"
)

type GameRepository interface {
	List(ctx context.Context) ([]model.Game, error)
	GetForUpdate(ctx context.Context, name string) (*model.Game, error)
	Create(ctx context.Context, game *model.Game) error
	Update(ctx context.Context, oldName string, game *model.Game) error
	Delete(ctx context.Context, name string) error
	AddVoter(ctx context.Context, name, username string) error
}

type SettingsRepository interface {
	Get(ctx context.Context) (*model.WheelSettings, error)
	Save(ctx context.Context, settings *model.WheelSettings) error
}

type HistoryRepository interface {
	Append(ctx context.Context, record model.RoundRecord) error
	Recent(ctx context.Context, limit int) ([]model.RoundRecord, error)
}
