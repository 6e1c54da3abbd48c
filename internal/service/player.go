package service

import (
	"context"
	"fmt"

	"github.com/rocketscienceinc/yamduel-backend/internal/entity"
	"github.com/rocketscienceinc/yamduel-backend/internal/pkg"
)

type playerRepo interface {
	CreateOrUpdate(ctx context.Context, player *entity.Player) error
	GetByID(ctx context.Context, id string) (*entity.Player, error)
}

// PlayerService provisions and resolves players. Identity proof lives in an
// external collaborator; here a player is just an id and a display name.
type PlayerService struct {
	playerRepo playerRepo
}

func NewPlayerService(playerRepo playerRepo) *PlayerService {
	return &PlayerService{
		playerRepo: playerRepo,
	}
}

func (that *PlayerService) GetOrCreatePlayer(ctx context.Context, id, pseudo string) (*entity.Player, error) {
	if id == "" {
		player := &entity.Player{
			ID:     pkg.GeneratePlayerID(),
			Pseudo: pseudo,
		}

		if err := that.playerRepo.CreateOrUpdate(ctx, player); err != nil {
			return nil, fmt.Errorf("failed to create player: %w", err)
		}

		return player, nil
	}

	player, err := that.playerRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get player by id: %w", err)
	}

	return player, nil
}
