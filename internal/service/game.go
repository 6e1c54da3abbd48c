package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/rocketscienceinc/yamduel-backend/internal/apperror"
	"github.com/rocketscienceinc/yamduel-backend/internal/entity"
	"github.com/rocketscienceinc/yamduel-backend/internal/pkg"
	"github.com/rocketscienceinc/yamduel-backend/internal/repository"
	"github.com/rocketscienceinc/yamduel-backend/internal/statestore"
	"github.com/rocketscienceinc/yamduel-backend/internal/yam"
)

// TurnDuration bounds one player's turn; an overdue turn is resolved with a
// forced zero score the next time any player touches the match.
const TurnDuration = 30 * time.Second

const maxRollsPerTurn = 3

type GameService interface {
	CreateMatch(ctx context.Context, playerA, playerB string) (string, error)
	GetMatch(ctx context.Context, matchID, requesterID string) (*MatchSnapshot, error)

	Roll(ctx context.Context, matchID, playerID string) (*RollSnapshot, error)
	LockAndRoll(ctx context.Context, matchID, playerID string, lockedIndexes []int) (*RollSnapshot, error)
	CommitScore(ctx context.Context, matchID, playerID string, category yam.Category) (*MatchSnapshot, error)
}

type matchRepo interface {
	CreateOrUpdate(ctx context.Context, match *entity.Match) error
	GetByID(ctx context.Context, id string) (*entity.Match, error)
}

type sheetRepo interface {
	CreateOrUpdate(ctx context.Context, sheet *entity.ScoreSheet) error
	GetByMatchAndPlayer(ctx context.Context, matchID, playerID string) (*entity.ScoreSheet, error)
}

type rankingRepo interface {
	Publish(ctx context.Context, entry repository.RankingEntry) error
	Top(ctx context.Context, limit int) ([]repository.RankingEntry, error)
}

type gameService struct {
	logger *slog.Logger

	matchRepo  matchRepo
	sheetRepo  sheetRepo
	playerRepo playerRepo
	ranking    rankingRepo

	states *statestore.Store
	roller *yam.Roller
	now    func() time.Time
}

func NewGameService(
	logger *slog.Logger,
	matchRepo matchRepo,
	sheetRepo sheetRepo,
	playerRepo playerRepo,
	ranking rankingRepo,
	states *statestore.Store,
	roller *yam.Roller,
	now func() time.Time,
) GameService {
	return &gameService{
		logger:     logger,
		matchRepo:  matchRepo,
		sheetRepo:  sheetRepo,
		playerRepo: playerRepo,
		ranking:    ranking,
		states:     states,
		roller:     roller,
		now:        now,
	}
}

func (that *gameService) CreateMatch(ctx context.Context, playerA, playerB string) (string, error) {
	if playerA == playerB {
		return "", apperror.ErrSamePlayer
	}

	matchID := pkg.GenerateMatchID()

	match := entity.NewMatch(matchID, playerA, playerB)
	if err := that.matchRepo.CreateOrUpdate(ctx, match); err != nil {
		return "", fmt.Errorf("failed to create match: %w", err)
	}

	for _, playerID := range match.PlayerIDs {
		sheet := entity.NewScoreSheet(matchID, playerID)
		if err := that.sheetRepo.CreateOrUpdate(ctx, sheet); err != nil {
			return "", fmt.Errorf("failed to create score sheet: %w", err)
		}
	}

	state := entity.NewGameState(matchID, playerA, playerB, that.now(), TurnDuration)
	that.states.Put(matchID, state)

	that.logger.Info("match created", "match_id", matchID, "player_a", playerA, "player_b", playerB)

	return matchID, nil
}

func (that *gameService) GetMatch(ctx context.Context, matchID, requesterID string) (*MatchSnapshot, error) {
	match, err := that.matchRepo.GetByID(ctx, matchID)
	if err != nil {
		return nil, fmt.Errorf("failed to get match by id: %w", err)
	}

	if !match.HasPlayer(requesterID) {
		return nil, apperror.ErrPlayerNotInMatch
	}

	// Finished matches have no runtime state anymore; the snapshot is then
	// built from persisted data only.
	var state *entity.GameState
	if session, ok := that.states.Get(matchID); ok {
		session.Lock()
		defer session.Unlock()
		state = session.State
	}

	return that.buildMatchSnapshot(ctx, match, state)
}

func (that *gameService) Roll(ctx context.Context, matchID, playerID string) (*RollSnapshot, error) {
	session, ok := that.states.Get(matchID)
	if !ok {
		return nil, apperror.ErrStateNotFound
	}

	session.Lock()
	defer session.Unlock()

	state := session.State
	if err := that.beginTurnAction(ctx, state, playerID); err != nil {
		return nil, err
	}

	return that.performRoll(ctx, state, playerID)
}

func (that *gameService) LockAndRoll(ctx context.Context, matchID, playerID string, lockedIndexes []int) (*RollSnapshot, error) {
	session, ok := that.states.Get(matchID)
	if !ok {
		return nil, apperror.ErrStateNotFound
	}

	session.Lock()
	defer session.Unlock()

	state := session.State
	if err := that.beginTurnAction(ctx, state, playerID); err != nil {
		return nil, err
	}

	// A rejected request must leave the turn untouched, so the roll budget is
	// checked before the lock flags are assigned.
	if state.RollCount >= maxRollsPerTurn {
		return nil, apperror.ErrNoRollsLeft
	}

	// The lock set is replaced wholesale: unlisted indexes become unlocked.
	// An out-of-range index rejects the request before any mutation.
	var locks [5]bool
	for _, idx := range lockedIndexes {
		if idx < 0 || idx > 4 {
			return nil, fmt.Errorf("%w: %d", apperror.ErrInvalidLockIndex, idx)
		}
		locks[idx] = true
	}
	state.Locked = locks

	return that.performRoll(ctx, state, playerID)
}

func (that *gameService) CommitScore(ctx context.Context, matchID, playerID string, category yam.Category) (*MatchSnapshot, error) {
	session, ok := that.states.Get(matchID)
	if !ok {
		return nil, apperror.ErrStateNotFound
	}

	session.Lock()
	defer session.Unlock()

	state := session.State
	if err := that.beginTurnAction(ctx, state, playerID); err != nil {
		return nil, err
	}

	sheet, err := that.sheetRepo.GetByMatchAndPlayer(ctx, state.MatchID, playerID)
	if err != nil {
		return nil, fmt.Errorf("failed to get score sheet: %w", err)
	}

	if yam.IsFilled(sheet, category) {
		return nil, fmt.Errorf("%w: %s", apperror.ErrCategoryFilled, category)
	}

	// An extra yam is a five-of-a-kind rolled after the YAM slot was already
	// filled; each one adds 100 points to the grand total.
	if yam.IsYamRoll(state.Dice) && sheet.Yam != nil {
		state.ExtraYamCount[playerID]++
	}

	value := yam.Score(category, state.Dice)
	yam.SetCategoryScore(sheet, category, value)
	yam.RecomputeTotals(sheet, state.ExtraYamCount[playerID])

	if err = that.sheetRepo.CreateOrUpdate(ctx, sheet); err != nil {
		return nil, fmt.Errorf("failed to save score sheet: %w", err)
	}

	return that.completeTurn(ctx, state)
}

// beginTurnAction runs the shared pre-steps of every mutating call: resolve
// an overdue turn first, then check that the caller may act. A request from
// either player can therefore trigger the active player's timeout penalty
// before being rejected as out of turn.
func (that *gameService) beginTurnAction(ctx context.Context, state *entity.GameState, playerID string) error {
	if !state.HasPlayer(playerID) {
		return apperror.ErrPlayerNotInMatch
	}

	if err := that.applyTimeoutPenalty(ctx, state); err != nil {
		return fmt.Errorf("failed to resolve overdue turn: %w", err)
	}

	if state.Status == entity.StatusFinished {
		return apperror.ErrMatchFinished
	}

	if state.CurrentPlayerID != playerID {
		return apperror.ErrNotYourTurn
	}

	return nil
}

// applyTimeoutPenalty forces a zero into the active player's first unfilled
// category when the turn deadline has passed, then completes the turn.
func (that *gameService) applyTimeoutPenalty(ctx context.Context, state *entity.GameState) error {
	if !that.now().After(state.TurnDeadlineAt) {
		return nil
	}

	currentPlayerID := state.CurrentPlayerID

	sheet, err := that.sheetRepo.GetByMatchAndPlayer(ctx, state.MatchID, currentPlayerID)
	if err != nil {
		return fmt.Errorf("failed to get score sheet: %w", err)
	}

	category, ok := yam.FirstUnfilledCategory(sheet)
	if !ok {
		return nil
	}

	yam.SetCategoryScore(sheet, category, 0)
	yam.RecomputeTotals(sheet, state.ExtraYamCount[currentPlayerID])

	if err = that.sheetRepo.CreateOrUpdate(ctx, sheet); err != nil {
		return fmt.Errorf("failed to save score sheet: %w", err)
	}

	that.logger.Info("timeout penalty applied",
		"match_id", state.MatchID, "player_id", currentPlayerID, "category", category)

	if _, err = that.completeTurn(ctx, state); err != nil {
		return err
	}

	return nil
}

// completeTurn either finishes the match when both sheets are full or hands
// the turn to the other player with a fresh roll budget and deadline.
func (that *gameService) completeTurn(ctx context.Context, state *entity.GameState) (*MatchSnapshot, error) {
	match, err := that.matchRepo.GetByID(ctx, state.MatchID)
	if err != nil {
		return nil, fmt.Errorf("failed to get match by id: %w", err)
	}

	sheets, err := that.loadSheets(ctx, match)
	if err != nil {
		return nil, err
	}

	finished := yam.AllCategoriesFilled(sheets[0]) && yam.AllCategoriesFilled(sheets[1])
	if !finished {
		that.switchToNextPlayer(state)
		return that.buildMatchSnapshot(ctx, match, state)
	}

	winnerID, err := pickWinner(sheets)
	if err != nil {
		return nil, err
	}

	match.Status = entity.StatusFinished
	match.WinnerID = winnerID
	if err = that.matchRepo.CreateOrUpdate(ctx, match); err != nil {
		return nil, fmt.Errorf("failed to save match: %w", err)
	}

	state.Status = entity.StatusFinished

	for _, sheet := range sheets {
		entry := repository.RankingEntry{
			MatchID:  match.ID,
			PlayerID: sheet.PlayerID,
			Score:    sheet.GrandTotal,
		}
		if err = that.ranking.Publish(ctx, entry); err != nil {
			that.logger.Error("failed to publish hall of fame entry",
				"match_id", match.ID, "player_id", sheet.PlayerID, "error", err)
		}
	}

	that.states.Remove(state.MatchID)

	that.logger.Info("match finished", "match_id", match.ID, "winner_id", winnerID)

	return that.buildMatchSnapshot(ctx, match, state)
}

// pickWinner takes the strictly higher grand total; equal totals go to the
// lexicographically lowest player id so the outcome is deterministic.
func pickWinner(sheets [2]*entity.ScoreSheet) (string, error) {
	a, b := sheets[0], sheets[1]

	switch {
	case a.GrandTotal > b.GrandTotal:
		return a.PlayerID, nil
	case b.GrandTotal > a.GrandTotal:
		return b.PlayerID, nil
	case a.PlayerID < b.PlayerID:
		return a.PlayerID, nil
	case b.PlayerID < a.PlayerID:
		return b.PlayerID, nil
	default:
		return "", apperror.ErrNoWinner
	}
}

func (that *gameService) switchToNextPlayer(state *entity.GameState) {
	state.CurrentPlayerID = state.OtherPlayer(state.CurrentPlayerID)
	state.RollCount = 0
	state.Dice = [5]int{}
	state.Locked = [5]bool{}

	now := that.now()
	state.TurnStartedAt = now
	state.TurnDeadlineAt = now.Add(TurnDuration)
}

func (that *gameService) performRoll(ctx context.Context, state *entity.GameState, playerID string) (*RollSnapshot, error) {
	if state.RollCount >= maxRollsPerTurn {
		return nil, apperror.ErrNoRollsLeft
	}

	if state.RollCount == 0 {
		state.Dice = that.roller.RollAll()
	} else {
		state.Dice = that.roller.RerollUnlocked(state.Dice, state.Locked)
	}
	state.RollCount++

	sheet, err := that.sheetRepo.GetByMatchAndPlayer(ctx, state.MatchID, playerID)
	if err != nil {
		return nil, fmt.Errorf("failed to get score sheet: %w", err)
	}

	match, err := that.matchRepo.GetByID(ctx, state.MatchID)
	if err != nil {
		return nil, fmt.Errorf("failed to get match by id: %w", err)
	}

	views, err := that.buildSheetViews(ctx, match)
	if err != nil {
		return nil, err
	}

	return &RollSnapshot{
		Dice:           state.Dice,
		Locked:         state.Locked,
		RollCount:      state.RollCount,
		RollsLeft:      maxRollsPerTurn - state.RollCount,
		TurnDeadlineAt: state.TurnDeadlineAt,
		PossibleScores: yam.PossibleScores(state.Dice, sheet),
		Sheets:         views,
	}, nil
}

func (that *gameService) loadSheets(ctx context.Context, match *entity.Match) ([2]*entity.ScoreSheet, error) {
	var sheets [2]*entity.ScoreSheet

	for i, playerID := range match.PlayerIDs {
		sheet, err := that.sheetRepo.GetByMatchAndPlayer(ctx, match.ID, playerID)
		if err != nil {
			return sheets, fmt.Errorf("failed to get score sheet: %w", err)
		}
		sheets[i] = sheet
	}

	return sheets, nil
}

func (that *gameService) buildSheetViews(ctx context.Context, match *entity.Match) ([]ScoreSheetView, error) {
	sheets, err := that.loadSheets(ctx, match)
	if err != nil {
		return nil, err
	}

	views := make([]ScoreSheetView, 0, len(sheets))
	for _, sheet := range sheets {
		views = append(views, ScoreSheetView{
			PlayerID: sheet.PlayerID,
			Pseudo:   that.resolvePseudo(ctx, sheet.PlayerID),
			Sheet:    sheet,
		})
	}

	return views, nil
}

func (that *gameService) resolvePseudo(ctx context.Context, playerID string) string {
	player, err := that.playerRepo.GetByID(ctx, playerID)
	if err != nil {
		return "unknown"
	}
	return player.Pseudo
}

func (that *gameService) buildMatchSnapshot(ctx context.Context, match *entity.Match, state *entity.GameState) (*MatchSnapshot, error) {
	views, err := that.buildSheetViews(ctx, match)
	if err != nil {
		return nil, err
	}

	snapshot := &MatchSnapshot{
		MatchID:   match.ID,
		Status:    match.Status,
		PlayerIDs: match.PlayerIDs,
		Sheets:    views,
		WinnerID:  match.WinnerID,
	}

	if state != nil && state.Status == entity.StatusInProgress {
		snapshot.CurrentPlayerID = state.CurrentPlayerID
		snapshot.Dice = state.Dice
		snapshot.Locked = state.Locked
		snapshot.RollCount = state.RollCount
		snapshot.TurnDeadlineAt = state.TurnDeadlineAt
	}

	return snapshot, nil
}
