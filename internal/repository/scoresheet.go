package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
	"github.com/rocketscienceinc/yamduel-backend/internal/apperror"
	"github.com/rocketscienceinc/yamduel-backend/internal/entity"
)

type ScoreSheetRepository interface {
	CreateOrUpdate(ctx context.Context, sheet *entity.ScoreSheet) error
	GetByMatchAndPlayer(ctx context.Context, matchID, playerID string) (*entity.ScoreSheet, error)
}

type dbScoreSheet struct {
	client *redis.Client
}

func NewScoreSheetRepository(client *redis.Client) ScoreSheetRepository {
	return &dbScoreSheet{
		client: client,
	}
}

func (that *dbScoreSheet) CreateOrUpdate(ctx context.Context, sheet *entity.ScoreSheet) error {
	sheetJSON, err := json.Marshal(sheet)
	if err != nil {
		return fmt.Errorf("could not marshal score sheet: %w", err)
	}

	key := sheetKey(sheet.MatchID, sheet.PlayerID)
	if err = that.client.Set(ctx, key, sheetJSON, 0).Err(); err != nil {
		return fmt.Errorf("failed to set score sheet: %w", err)
	}

	return nil
}

func (that *dbScoreSheet) GetByMatchAndPlayer(ctx context.Context, matchID, playerID string) (*entity.ScoreSheet, error) {
	response, err := that.client.Get(ctx, sheetKey(matchID, playerID)).Result()

	if errors.Is(err, redis.Nil) {
		return nil, apperror.ErrSheetNotFound
	}

	if err != nil {
		return nil, fmt.Errorf("failed to get score sheet: %w", err)
	}

	var existingSheet entity.ScoreSheet
	if err = json.Unmarshal([]byte(response), &existingSheet); err != nil {
		return nil, fmt.Errorf("failed to unmarshal score sheet: %w", err)
	}

	return &existingSheet, nil
}

func sheetKey(matchID, playerID string) string {
	return "sheet:" + matchID + ":" + playerID
}
