package game

import (
	"context"
	"sort"
	"strings"

	"game_wheel/internal/model"
)

// List - все игры. По умолчанию сначала самые популярные, при равенстве - по имени
func (s *serv) List(ctx context.Context, sortBy string) ([]model.Game, error) {
	games, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	switch sortBy {
	case model.SortByName:
		sort.SliceStable(games, func(i, j int) bool {
			return strings.ToLower(games[i].Name) < strings.ToLower(games[j].Name)
		})
	default:
		sort.SliceStable(games, func(i, j int) bool {
			if games[i].Votes != games[j].Votes {
				return games[i].Votes > games[j].Votes
			}
			return games[i].Name < games[j].Name
		})
	}

	return games, nil
}
