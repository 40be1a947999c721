package settings

// Settings - вес колеса, одинаковый формат для чтения и записи
type Settings struct {
	Coefficient     *float64 `json:"coefficient" validate:"required,gte=0"`
	ZeroVotesWeight *float64 `json:"zero_votes_weight" validate:"required,gte=1"`
}
