package model

import "time"

type WheelSettings struct {
	Coefficient     float64
	ZeroVotesWeight float64
}

// RoundRecord - запись истории колеса
type RoundRecord struct {
	SpinID        string    `json:"spin_id"`
	Game          string    `json:"game"`
	Remaining     int       `json:"remaining"`
	IsFinalWinner bool      `json:"is_final_winner"`
	Winner        string    `json:"winner,omitempty"`
	At            time.Time `json:"at"`
}
