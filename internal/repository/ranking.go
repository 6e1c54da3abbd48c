package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/redis/go-redis/v9"
)

const rankingKey = "halloffame"

// RankingEntry is one finished-match result in the hall of fame.
type RankingEntry struct {
	MatchID  string
	PlayerID string
	Score    int
}

type RankingRepository interface {
	Publish(ctx context.Context, entry RankingEntry) error
	Top(ctx context.Context, limit int) ([]RankingEntry, error)
}

type dbRanking struct {
	client *redis.Client
}

func NewRankingRepository(client *redis.Client) RankingRepository {
	return &dbRanking{
		client: client,
	}
}

// Publish records a finished player's total under "matchID:playerID".
func (that *dbRanking) Publish(ctx context.Context, entry RankingEntry) error {
	member := entry.MatchID + ":" + entry.PlayerID

	err := that.client.ZAdd(ctx, rankingKey, redis.Z{
		Score:  float64(entry.Score),
		Member: member,
	}).Err()
	if err != nil {
		return fmt.Errorf("failed to publish ranking entry: %w", err)
	}

	return nil
}

// Top returns the best finished totals, highest first.
func (that *dbRanking) Top(ctx context.Context, limit int) ([]RankingEntry, error) {
	results, err := that.client.ZRevRangeWithScores(ctx, rankingKey, 0, int64(limit)-1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to read ranking: %w", err)
	}

	entries := make([]RankingEntry, 0, len(results))
	for _, result := range results {
		member, ok := result.Member.(string)
		if !ok {
			continue
		}

		matchID, playerID, ok := strings.Cut(member, ":")
		if !ok {
			continue
		}

		entries = append(entries, RankingEntry{
			MatchID:  matchID,
			PlayerID: playerID,
			Score:    int(result.Score),
		})
	}

	return entries, nil
}
