package repository

import (
	"testing"

	"github.com/rocketscienceinc/yamduel-backend/testing/suite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRankingRepository_Top(t *testing.T) {
	ctx, st := suite.New(t)

	rankingRepo := NewRankingRepository(st.Storage)

	// Given: three published finished totals
	entries := []RankingEntry{
		{MatchID: "1", PlayerID: "alice", Score: 180},
		{MatchID: "1", PlayerID: "bob", Score: 240},
		{MatchID: "2", PlayerID: "carol", Score: 95},
	}
	for _, entry := range entries {
		require.NoError(t, rankingRepo.Publish(ctx, entry))
	}

	// When: asking for the top two
	top, err := rankingRepo.Top(ctx, 2)

	// Then: the highest totals come first
	require.NoError(t, err)
	require.Len(t, top, 2)
	assert.Equal(t, "bob", top[0].PlayerID)
	assert.Equal(t, 240, top[0].Score)
	assert.Equal(t, "alice", top[1].PlayerID)
}

func TestRankingRepository_TopEmpty(t *testing.T) {
	ctx, st := suite.New(t)

	rankingRepo := NewRankingRepository(st.Storage)

	// When: asking for top scores with nothing published
	top, err := rankingRepo.Top(ctx, 10)

	// Then: an empty list is returned without error
	require.NoError(t, err)
	assert.Empty(t, top)
}
