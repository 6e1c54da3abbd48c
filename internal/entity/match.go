package entity

const (
	StatusInProgress = "in_progress"
	StatusFinished   = "finished"
)

type Match struct {
	ID        string    `json:"id"`
	PlayerIDs [2]string `json:"player_ids"`
	Status    string    `json:"status"`
	WinnerID  string    `json:"winner_id,omitempty"`
}

func NewMatch(id, playerA, playerB string) *Match {
	return &Match{
		ID:        id,
		PlayerIDs: [2]string{playerA, playerB},
		Status:    StatusInProgress,
	}
}

func (that *Match) HasPlayer(playerID string) bool {
	return that.PlayerIDs[0] == playerID || that.PlayerIDs[1] == playerID
}

func (that *Match) IsFinished() bool {
	return that.Status == StatusFinished
}
