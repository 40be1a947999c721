package converter

import (
	dto "game_wheel/internal/api/dto/settings"
	"game_wheel/internal/model"
)

func ToSettingsResponse(s model.WheelSettings) dto.Settings {
	return dto.Settings{
		Coefficient:     &s.Coefficient,
		ZeroVotesWeight: &s.ZeroVotesWeight,
	}
}

// ToSettingsModel - поля уже проверены валидатором на наличие
func ToSettingsModel(req dto.Settings) *model.WheelSettings {
	return &model.WheelSettings{
		Coefficient:     *req.Coefficient,
		ZeroVotesWeight: *req.ZeroVotesWeight,
	}
}
