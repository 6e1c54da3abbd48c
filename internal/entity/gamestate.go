package entity

import "time"

// GameState is the transient per-match runtime record. It is created when a
// match starts, mutated only by the game service under the session lock, and
// discarded once the match finishes. It is never persisted.
type GameState struct {
	MatchID         string
	PlayerIDs       [2]string
	CurrentPlayerID string
	Dice            [5]int
	Locked          [5]bool
	RollCount       int
	TurnStartedAt   time.Time
	TurnDeadlineAt  time.Time
	ExtraYamCount   map[string]int
	Status          string
}

func NewGameState(matchID, playerA, playerB string, now time.Time, turnDuration time.Duration) *GameState {
	return &GameState{
		MatchID:         matchID,
		PlayerIDs:       [2]string{playerA, playerB},
		CurrentPlayerID: playerA,
		ExtraYamCount:   map[string]int{playerA: 0, playerB: 0},
		TurnStartedAt:   now,
		TurnDeadlineAt:  now.Add(turnDuration),
		Status:          StatusInProgress,
	}
}

func (that *GameState) HasPlayer(playerID string) bool {
	return that.PlayerIDs[0] == playerID || that.PlayerIDs[1] == playerID
}

// OtherPlayer returns the opponent of the given player id.
func (that *GameState) OtherPlayer(playerID string) string {
	if that.PlayerIDs[0] == playerID {
		return that.PlayerIDs[1]
	}
	return that.PlayerIDs[0]
}
