package model

import "errors"

var (
	ErrGameNotFound       = errors.New("game not found")
	ErrGameExists         = errors.New("game already exists")
	ErrAlreadyVoted       = errors.New("already voted")
	ErrInvalidGame        = errors.New("invalid game")
	ErrInvalidUsername    = errors.New("invalid username")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrSettingsNotFound   = errors.New("wheel settings not found")
)

// Сортировка списка игр
const (
	SortByVotes = "votes"
	SortByName  = "name"
)

type Game struct {
	Name   string
	Votes  int
	Voters []string
}

type GameEdit struct {
	OldName string
	NewName string
	Votes   int
	Voters  []string
}

type Vote struct {
	Username string
	Game     string
}
