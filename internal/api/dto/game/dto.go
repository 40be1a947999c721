package game

type GameResponse struct {
	Game   string   `json:"game"`
	Votes  int      `json:"votes"`
	Voters []string `json:"voters"`
}

type AddRequest struct {
	Game string `json:"game" validate:"required,max=200"`
}

type EditRequest struct {
	OldName   string   `json:"old_name" validate:"required"`
	NewName   string   `json:"new_name" validate:"required,max=200"`
	NewVotes  int      `json:"new_votes" validate:"gte=0"`
	NewVoters []string `json:"new_voters"`
}

type DeleteRequest struct {
	Game string `json:"game" validate:"required"`
}

type VoteRequest struct {
	Username string `json:"username" validate:"required,max=100"`
	Game     string `json:"game" validate:"required"`
}
