package service

import (
	"context"
	"fmt"
)

const (
	minHallOfFameLimit = 1
	maxHallOfFameLimit = 100
)

// HallOfFameService reads the best finished-match totals.
type HallOfFameService struct {
	ranking    rankingRepo
	playerRepo playerRepo
}

func NewHallOfFameService(ranking rankingRepo, playerRepo playerRepo) *HallOfFameService {
	return &HallOfFameService{
		ranking:    ranking,
		playerRepo: playerRepo,
	}
}

func (that *HallOfFameService) Top(ctx context.Context, limit int) ([]HallOfFameEntry, error) {
	if limit < minHallOfFameLimit {
		limit = minHallOfFameLimit
	}
	if limit > maxHallOfFameLimit {
		limit = maxHallOfFameLimit
	}

	rows, err := that.ranking.Top(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to get top scores: %w", err)
	}

	entries := make([]HallOfFameEntry, 0, len(rows))
	for _, row := range rows {
		pseudo := "unknown"
		if player, err := that.playerRepo.GetByID(ctx, row.PlayerID); err == nil {
			pseudo = player.Pseudo
		}

		entries = append(entries, HallOfFameEntry{
			MatchID: row.MatchID,
			Pseudo:  pseudo,
			Score:   row.Score,
		})
	}

	return entries, nil
}
