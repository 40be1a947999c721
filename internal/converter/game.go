package converter

import (
	dto "game_wheel/internal/api/dto/game"
	"game_wheel/internal/model"
)

func ToGameResponses(games []model.Game) []dto.GameResponse {
	out := make([]dto.GameResponse, 0, len(games))
	for _, g := range games {
		voters := g.Voters
		if voters == nil {
			voters = []string{}
		}
		out = append(out, dto.GameResponse{
			Game:   g.Name,
			Votes:  g.Votes,
			Voters: voters,
		})
	}
	return out
}

func ToGameEdit(req dto.EditRequest) model.GameEdit {
	return model.GameEdit{
		OldName: req.OldName,
		NewName: req.NewName,
		Votes:   req.NewVotes,
		Voters:  req.NewVoters,
	}
}

func ToVote(req dto.VoteRequest) model.Vote {
	return model.Vote{
		Username: req.Username,
		Game:     req.Game,
	}
}
