package entity

// ScoreSheet is one player's category record within a match. A nil slot means
// the category has not been committed yet; committed slots are never
// overwritten.
type ScoreSheet struct {
	MatchID  string `json:"match_id"`
	PlayerID string `json:"player_id"`

	One   *int `json:"score_one"`
	Two   *int `json:"score_two"`
	Three *int `json:"score_three"`
	Four  *int `json:"score_four"`
	Five  *int `json:"score_five"`
	Six   *int `json:"score_six"`

	Brelan      *int `json:"score_brelan"`
	Carre       *int `json:"score_carre"`
	Full        *int `json:"score_full"`
	PetiteSuite *int `json:"score_petite_suite"`
	GrandeSuite *int `json:"score_grande_suite"`
	Yam         *int `json:"score_yam"`
	Chance      *int `json:"score_chance"`

	UpperSubtotal int `json:"upper_subtotal"`
	UpperBonus    int `json:"upper_bonus"`
	GrandTotal    int `json:"grand_total"`
}

func NewScoreSheet(matchID, playerID string) *ScoreSheet {
	return &ScoreSheet{
		MatchID:  matchID,
		PlayerID: playerID,
	}
}
