package service

import (
	"time"

	"github.com/rocketscienceinc/yamduel-backend/internal/entity"
	"github.com/rocketscienceinc/yamduel-backend/internal/yam"
)

// ScoreSheetView is a sheet snapshot with the owner's display name resolved.
type ScoreSheetView struct {
	PlayerID string             `json:"player_id"`
	Pseudo   string             `json:"pseudo"`
	Sheet    *entity.ScoreSheet `json:"sheet"`
}

// RollSnapshot is what a player sees right after a roll: the table state,
// how many rolls remain and what each open category would currently pay.
type RollSnapshot struct {
	Dice           [5]int               `json:"dice"`
	Locked         [5]bool              `json:"locked"`
	RollCount      int                  `json:"roll_count"`
	RollsLeft      int                  `json:"rolls_left"`
	TurnDeadlineAt time.Time            `json:"turn_deadline_at"`
	PossibleScores map[yam.Category]int `json:"possible_scores"`
	Sheets         []ScoreSheetView     `json:"sheets"`
}

// MatchSnapshot is the full match view returned by reads, score commits and
// turn completion.
type MatchSnapshot struct {
	MatchID         string           `json:"match_id"`
	Status          string           `json:"status"`
	PlayerIDs       [2]string        `json:"player_ids"`
	CurrentPlayerID string           `json:"current_player_id,omitempty"`
	Dice            [5]int           `json:"dice"`
	Locked          [5]bool          `json:"locked"`
	RollCount       int              `json:"roll_count"`
	TurnDeadlineAt  time.Time        `json:"turn_deadline_at"`
	Sheets          []ScoreSheetView `json:"sheets"`
	WinnerID        string           `json:"winner_id,omitempty"`
}

// LobbyStatus is the answer to a matchmaking poll.
type LobbyStatus struct {
	Matched      bool   `json:"matched"`
	MatchID      string `json:"match_id,omitempty"`
	ExpiresInSec int    `json:"expires_in_sec,omitempty"`
}

// HallOfFameEntry is one row of the finished-match leaderboard.
type HallOfFameEntry struct {
	MatchID string `json:"match_id"`
	Pseudo  string `json:"pseudo"`
	Score   int    `json:"score"`
}
