package settings

import (
	"context"
	"errors"

	"game_wheel/internal/converter"
	"game_wheel/internal/model"
	"game_wheel/internal/repository"
	"game_wheel/internal/service"
	"game_wheel/internal/wheel"
)

// ParamsSetter - колесо, которому передаются новые настройки для раскладки в покое
type ParamsSetter interface {
	SetParams(p wheel.Params) error
}

type serv struct {
	repo     repository.SettingsRepository
	defaults model.WheelSettings
	wheel    ParamsSetter
}

func NewSettingsService(
	repo repository.SettingsRepository,
	defaults model.WheelSettings,
	wheel ParamsSetter,
) service.SettingsService {
	return &serv{
		repo:     repo,
		defaults: defaults,
		wheel:    wheel,
	}
}

// Get - сохранённые настройки, а если их ещё нет - значения по умолчанию
func (s *serv) Get(ctx context.Context) (*model.WheelSettings, error) {
	settings, err := s.repo.Get(ctx)
	if errors.Is(err, model.ErrSettingsNotFound) {
		defaults := s.defaults
		return &defaults, nil
	}
	if err != nil {
		return nil, err
	}

	return settings, nil
}

func (s *serv) Update(ctx context.Context, settings *model.WheelSettings) error {
	params := converter.ToWheelParams(*settings)
	if err := params.Validate(); err != nil {
		return err
	}

	if err := s.repo.Save(ctx, settings); err != nil {
		return err
	}

	return s.wheel.SetParams(params)
}
