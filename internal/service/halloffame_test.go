package service

import (
	"context"
	"testing"

	"github.com/rocketscienceinc/yamduel-backend/internal/entity"
	"github.com/rocketscienceinc/yamduel-backend/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHallOfFameService_Top(t *testing.T) {
	ctx := context.Background()

	t.Run("Resolves pseudos and keeps ranking order", func(t *testing.T) {
		ranking := &fakeRanking{published: []repository.RankingEntry{
			{MatchID: "1", PlayerID: "alice", Score: 180},
			{MatchID: "2", PlayerID: "bob", Score: 240},
			{MatchID: "3", PlayerID: "ghost", Score: 90},
		}}

		players := newFakePlayerRepo()
		players.players["alice"] = &entity.Player{ID: "alice", Pseudo: "Alice"}
		players.players["bob"] = &entity.Player{ID: "bob", Pseudo: "Bob"}

		svc := NewHallOfFameService(ranking, players)

		entries, err := svc.Top(ctx, 10)

		require.NoError(t, err)
		require.Len(t, entries, 3)
		assert.Equal(t, HallOfFameEntry{MatchID: "2", Pseudo: "Bob", Score: 240}, entries[0])
		assert.Equal(t, HallOfFameEntry{MatchID: "1", Pseudo: "Alice", Score: 180}, entries[1])

		// Then: an unresolvable player id falls back to "unknown"
		assert.Equal(t, "unknown", entries[2].Pseudo)
	})

	t.Run("Limit is clamped to a sane range", func(t *testing.T) {
		ranking := &fakeRanking{}
		svc := NewHallOfFameService(ranking, newFakePlayerRepo())

		_, err := svc.Top(ctx, 0)
		require.NoError(t, err)
		assert.Equal(t, 1, ranking.lastLimit)

		_, err = svc.Top(ctx, 5000)
		require.NoError(t, err)
		assert.Equal(t, 100, ranking.lastLimit)
	})
}
