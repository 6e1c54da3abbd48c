package service

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"
)

// LobbyWaitDuration is how long a waiting player keeps the single lobby slot
// before the entry expires.
const LobbyWaitDuration = 60 * time.Second

// LobbyEntry is the single "looking for opponent" record.
type LobbyEntry struct {
	PlayerID  string
	ReadyAt   time.Time
	ExpiresAt time.Time
}

type matchCreator interface {
	CreateMatch(ctx context.Context, playerA, playerB string) (string, error)
}

// LobbyService pairs two distinct callers into a match. It holds at most one
// waiting player plus a handoff map that parks the match id for the first
// queued player until their next poll.
type LobbyService struct {
	logger *slog.Logger
	games  matchCreator
	now    func() time.Time

	mu       sync.Mutex
	waiting  *LobbyEntry
	handoffs map[string]string
}

func NewLobbyService(logger *slog.Logger, games matchCreator, now func() time.Time) *LobbyService {
	return &LobbyService{
		logger:   logger,
		games:    games,
		now:      now,
		handoffs: make(map[string]string),
	}
}

// Ready queues the caller or pairs them with the waiting player. Match
// creation happens outside the lobby lock so the slot is never held across a
// persistence call.
func (that *LobbyService) Ready(ctx context.Context, playerID string) (*LobbyStatus, error) {
	opponent, status := that.takeSlot(playerID)
	if status != nil {
		return status, nil
	}

	matchID, err := that.games.CreateMatch(ctx, opponent.PlayerID, playerID)
	if err != nil {
		// The waiter keeps their place in line when pairing fails.
		that.requeue(opponent)
		return nil, fmt.Errorf("failed to create match: %w", err)
	}

	that.mu.Lock()
	that.handoffs[opponent.PlayerID] = matchID
	that.mu.Unlock()

	that.logger.Info("players matched", "match_id", matchID, "player_a", opponent.PlayerID, "player_b", playerID)

	return &LobbyStatus{Matched: true, MatchID: matchID}, nil
}

// takeSlot runs the in-memory part of Ready under the lobby lock. It either
// resolves the poll itself (non-nil status) or atomically claims the waiting
// opponent for pairing.
func (that *LobbyService) takeSlot(playerID string) (*LobbyEntry, *LobbyStatus) {
	that.mu.Lock()
	defer that.mu.Unlock()

	if matchID, ok := that.handoffs[playerID]; ok {
		delete(that.handoffs, playerID)
		return nil, &LobbyStatus{Matched: true, MatchID: matchID}
	}

	now := that.now()
	that.expireSlot(now)

	if that.waiting != nil && that.waiting.PlayerID == playerID {
		remaining := int(that.waiting.ExpiresAt.Sub(now).Seconds())
		if remaining < 0 {
			remaining = 0
		}
		return nil, &LobbyStatus{Matched: false, ExpiresInSec: remaining}
	}

	if that.waiting == nil {
		that.waiting = &LobbyEntry{
			PlayerID:  playerID,
			ReadyAt:   now,
			ExpiresAt: now.Add(LobbyWaitDuration),
		}
		return nil, &LobbyStatus{Matched: false, ExpiresInSec: int(LobbyWaitDuration.Seconds())}
	}

	opponent := that.waiting
	that.waiting = nil

	return opponent, nil
}

// requeue puts a claimed waiter back with its original window, unless another
// player has taken the slot in the meantime.
func (that *LobbyService) requeue(entry *LobbyEntry) {
	that.mu.Lock()
	defer that.mu.Unlock()

	if that.waiting == nil {
		that.waiting = entry
	}
}

// CancelReady frees the slot if the caller currently holds it.
func (that *LobbyService) CancelReady(playerID string) {
	that.mu.Lock()
	defer that.mu.Unlock()

	that.expireSlot(that.now())

	if that.waiting != nil && that.waiting.PlayerID == playerID {
		that.waiting = nil
	}
}

func (that *LobbyService) expireSlot(now time.Time) {
	if that.waiting != nil && that.waiting.ExpiresAt.Before(now) {
		that.waiting = nil
	}
}
