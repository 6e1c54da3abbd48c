package repository

import (
	"testing"

	"github.com/rocketscienceinc/yamduel-backend/internal/apperror"
	"github.com/rocketscienceinc/yamduel-backend/internal/entity"
	"github.com/rocketscienceinc/yamduel-backend/testing/suite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMatchRepository_CreateOrUpdate(t *testing.T) {
	ctx, st := suite.New(t)

	matchRepo := NewMatchRepository(st.Storage)

	// Given: a fresh match between two players
	match := entity.NewMatch("123", "alice", "bob")

	// When: CreateOrUpdate is called
	err := matchRepo.CreateOrUpdate(ctx, match)

	// Then: no error should be returned
	require.NoError(t, err)
}

func TestMatchRepository_GetByID(t *testing.T) {
	t.Run("GetByID_Success", func(t *testing.T) {
		ctx, st := suite.New(t)

		matchRepo := NewMatchRepository(st.Storage)

		// Given: a stored match
		match := entity.NewMatch("123", "alice", "bob")
		err := matchRepo.CreateOrUpdate(ctx, match)
		require.NoError(t, err)

		// When: GetByID is called with the existing ID
		retrievedMatch, err := matchRepo.GetByID(ctx, match.ID)

		// Then: the retrieved match should match the saved one
		require.NoError(t, err)
		require.Equal(t, match.ID, retrievedMatch.ID)
		require.Equal(t, match.PlayerIDs, retrievedMatch.PlayerIDs)
		require.Equal(t, entity.StatusInProgress, retrievedMatch.Status)
	})

	t.Run("GetByID_NotFound", func(t *testing.T) {
		ctx, st := suite.New(t)

		matchRepo := NewMatchRepository(st.Storage)

		// When: GetByID is called with a non-existent ID
		retrievedMatch, err := matchRepo.GetByID(ctx, "9999999")

		// Then: an ErrMatchNotFound error should be returned
		require.ErrorIs(t, err, apperror.ErrMatchNotFound)
		assert.Nil(t, retrievedMatch)
	})
}

func TestMatchRepository_DeleteByID(t *testing.T) {
	ctx, st := suite.New(t)

	matchRepo := NewMatchRepository(st.Storage)

	// Given: a stored match
	match := entity.NewMatch("123", "alice", "bob")
	err := matchRepo.CreateOrUpdate(ctx, match)
	require.NoError(t, err)

	// When: DeleteByID is called
	err = matchRepo.DeleteByID(ctx, match.ID)
	require.NoError(t, err)

	// Then: the match is gone
	_, err = matchRepo.GetByID(ctx, match.ID)
	assert.ErrorIs(t, err, apperror.ErrMatchNotFound)
}
