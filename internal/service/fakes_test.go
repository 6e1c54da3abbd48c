package service

import (
	"context"
	"io"
	"log/slog"
	"sort"
	"sync"
	"time"

	"github.com/rocketscienceinc/yamduel-backend/internal/apperror"
	"github.com/rocketscienceinc/yamduel-backend/internal/entity"
	"github.com/rocketscienceinc/yamduel-backend/internal/repository"
	"github.com/rocketscienceinc/yamduel-backend/internal/statestore"
	"github.com/rocketscienceinc/yamduel-backend/internal/yam"
)

type fakeMatchRepo struct {
	matches map[string]*entity.Match
}

func newFakeMatchRepo() *fakeMatchRepo {
	return &fakeMatchRepo{matches: make(map[string]*entity.Match)}
}

func (that *fakeMatchRepo) CreateOrUpdate(_ context.Context, match *entity.Match) error {
	that.matches[match.ID] = match
	return nil
}

func (that *fakeMatchRepo) GetByID(_ context.Context, id string) (*entity.Match, error) {
	match, ok := that.matches[id]
	if !ok {
		return nil, apperror.ErrMatchNotFound
	}
	return match, nil
}

type fakeSheetRepo struct {
	sheets map[string]*entity.ScoreSheet
}

func newFakeSheetRepo() *fakeSheetRepo {
	return &fakeSheetRepo{sheets: make(map[string]*entity.ScoreSheet)}
}

func (that *fakeSheetRepo) CreateOrUpdate(_ context.Context, sheet *entity.ScoreSheet) error {
	that.sheets[sheet.MatchID+":"+sheet.PlayerID] = sheet
	return nil
}

func (that *fakeSheetRepo) GetByMatchAndPlayer(_ context.Context, matchID, playerID string) (*entity.ScoreSheet, error) {
	sheet, ok := that.sheets[matchID+":"+playerID]
	if !ok {
		return nil, apperror.ErrSheetNotFound
	}
	return sheet, nil
}

type fakePlayerRepo struct {
	players map[string]*entity.Player
}

func newFakePlayerRepo() *fakePlayerRepo {
	return &fakePlayerRepo{players: make(map[string]*entity.Player)}
}

func (that *fakePlayerRepo) CreateOrUpdate(_ context.Context, player *entity.Player) error {
	that.players[player.ID] = player
	return nil
}

func (that *fakePlayerRepo) GetByID(_ context.Context, id string) (*entity.Player, error) {
	player, ok := that.players[id]
	if !ok {
		return nil, apperror.ErrPlayerNotFound
	}
	return player, nil
}

type fakeRanking struct {
	published []repository.RankingEntry
	lastLimit int
}

func (that *fakeRanking) Publish(_ context.Context, entry repository.RankingEntry) error {
	that.published = append(that.published, entry)
	return nil
}

func (that *fakeRanking) Top(_ context.Context, limit int) ([]repository.RankingEntry, error) {
	that.lastLimit = limit

	sorted := make([]repository.RankingEntry, len(that.published))
	copy(sorted, that.published)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Score > sorted[j].Score })

	if len(sorted) > limit {
		sorted = sorted[:limit]
	}
	return sorted, nil
}

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)}
}

func (that *fakeClock) Now() time.Time {
	that.mu.Lock()
	defer that.mu.Unlock()
	return that.now
}

func (that *fakeClock) Advance(d time.Duration) {
	that.mu.Lock()
	defer that.mu.Unlock()
	that.now = that.now.Add(d)
}

// sequenceSource feeds queued draws to the roller and repeats the last one.
func sequenceSource(values ...int) func(n int) int {
	i := 0
	return func(_ int) int {
		v := values[i]
		if i < len(values)-1 {
			i++
		}
		return v
	}
}

type gameFixture struct {
	svc     GameService
	matches *fakeMatchRepo
	sheets  *fakeSheetRepo
	players *fakePlayerRepo
	ranking *fakeRanking
	states  *statestore.Store
	clock   *fakeClock
}

func newGameFixture(intn func(n int) int) *gameFixture {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	fixture := &gameFixture{
		matches: newFakeMatchRepo(),
		sheets:  newFakeSheetRepo(),
		players: newFakePlayerRepo(),
		ranking: &fakeRanking{},
		states:  statestore.New(),
		clock:   newFakeClock(),
	}

	fixture.players.players["alice"] = &entity.Player{ID: "alice", Pseudo: "Alice"}
	fixture.players.players["bob"] = &entity.Player{ID: "bob", Pseudo: "Bob"}

	fixture.svc = NewGameService(
		logger,
		fixture.matches,
		fixture.sheets,
		fixture.players,
		fixture.ranking,
		fixture.states,
		yam.NewRollerWithSource(intn),
		fixture.clock.Now,
	)

	return fixture
}

// fillSheet commits a value into every open category and refreshes totals.
func fillSheet(sheet *entity.ScoreSheet, value int) {
	for _, category := range yam.Categories {
		if !yam.IsFilled(sheet, category) {
			yam.SetCategoryScore(sheet, category, value)
		}
	}
	yam.RecomputeTotals(sheet, 0)
}
