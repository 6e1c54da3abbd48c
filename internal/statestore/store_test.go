package statestore

import (
	"sync"
	"testing"
	"time"

	"github.com/rocketscienceinc/yamduel-backend/internal/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore_PutGetRemove(t *testing.T) {
	store := New()

	// Given: a stored runtime state
	state := entity.NewGameState("123", "alice", "bob", time.Now(), 30*time.Second)
	store.Put("123", state)

	// When: getting it back
	session, ok := store.Get("123")

	// Then: the same state is returned
	require.True(t, ok)
	assert.Same(t, state, session.State)

	// When: removing it
	store.Remove("123")

	// Then: it is gone
	_, ok = store.Get("123")
	assert.False(t, ok)
}

func TestStore_GetUnknown(t *testing.T) {
	store := New()

	session, ok := store.Get("nope")

	assert.False(t, ok)
	assert.Nil(t, session)
}

func TestStore_ConcurrentMatches(t *testing.T) {
	store := New()

	// Given: two independent matches
	store.Put("a", entity.NewGameState("a", "p1", "p2", time.Now(), 30*time.Second))
	store.Put("b", entity.NewGameState("b", "p3", "p4", time.Now(), 30*time.Second))

	// When: both are hammered concurrently under their own session locks
	var wg sync.WaitGroup
	for _, matchID := range []string{"a", "b"} {
		wg.Add(1)
		go func() {
			defer wg.Done()

			for range 1000 {
				session, ok := store.Get(matchID)
				if !ok {
					continue
				}

				session.Lock()
				session.State.RollCount = (session.State.RollCount + 1) % 4
				session.Unlock()
			}
		}()
	}
	wg.Wait()

	// Then: both states saw every mutation
	sessionA, _ := store.Get("a")
	sessionB, _ := store.Get("b")
	assert.Equal(t, 1000%4, sessionA.State.RollCount)
	assert.Equal(t, 1000%4, sessionB.State.RollCount)
}
