package converter

import (
	"game_wheel/internal/model"
	"game_wheel/internal/wheel"
)

func ToWheelItems(games []model.Game) []wheel.Item {
	items := make([]wheel.Item, 0, len(games))
	for _, g := range games {
		items = append(items, wheel.Item{
			Name:  g.Name,
			Votes: g.Votes,
		})
	}
	return items
}

func ToWheelParams(s model.WheelSettings) wheel.Params {
	return wheel.Params{
		Coefficient:    s.Coefficient,
		ZeroVoteWeight: s.ZeroVotesWeight,
	}
}

func ToWheelSettings(p wheel.Params) model.WheelSettings {
	return model.WheelSettings{
		Coefficient:     p.Coefficient,
		ZeroVotesWeight: p.ZeroVoteWeight,
	}
}

func ToRoundRecord(r wheel.RoundResult) model.RoundRecord {
	return model.RoundRecord{
		SpinID:        r.SpinID,
		Game:          r.Name,
		Remaining:     r.Remaining,
		IsFinalWinner: r.IsFinalWinner,
		Winner:        r.Winner,
		At:            r.At,
	}
}
