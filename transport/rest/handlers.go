package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/rocketscienceinc/yamduel-backend/internal/apperror"
	"github.com/rocketscienceinc/yamduel-backend/internal/entity"
	"github.com/rocketscienceinc/yamduel-backend/internal/service"
	"github.com/rocketscienceinc/yamduel-backend/internal/yam"
)

// playerIDHeader carries the already-authenticated caller identity; proving
// it is the job of an upstream collaborator.
const playerIDHeader = "X-Player-ID"

type gameService interface {
	GetMatch(ctx context.Context, matchID, requesterID string) (*service.MatchSnapshot, error)
	Roll(ctx context.Context, matchID, playerID string) (*service.RollSnapshot, error)
	LockAndRoll(ctx context.Context, matchID, playerID string, lockedIndexes []int) (*service.RollSnapshot, error)
	CommitScore(ctx context.Context, matchID, playerID string, category yam.Category) (*service.MatchSnapshot, error)
}

type lobbyService interface {
	Ready(ctx context.Context, playerID string) (*service.LobbyStatus, error)
	CancelReady(playerID string)
}

type hallOfFameService interface {
	Top(ctx context.Context, limit int) ([]service.HallOfFameEntry, error)
}

type playerService interface {
	GetOrCreatePlayer(ctx context.Context, id, pseudo string) (*entity.Player, error)
}

type Handlers struct {
	logger *slog.Logger

	games      gameService
	lobby      lobbyService
	hallOfFame hallOfFameService
	players    playerService
}

func NewHandlers(logger *slog.Logger, games gameService, lobby lobbyService, hallOfFame hallOfFameService, players playerService) *Handlers {
	return &Handlers{
		logger:     logger,
		games:      games,
		lobby:      lobby,
		hallOfFame: hallOfFame,
		players:    players,
	}
}

func (that *Handlers) Ping(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte("pong")); err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
	}
}

func (that *Handlers) GetGame(w http.ResponseWriter, r *http.Request) {
	playerID, ok := that.requirePlayer(w, r)
	if !ok {
		return
	}

	snapshot, err := that.games.GetMatch(r.Context(), r.PathValue("id"), playerID)
	if err != nil {
		that.writeError(w, err)
		return
	}

	that.writeJSON(w, http.StatusOK, snapshot)
}

func (that *Handlers) Roll(w http.ResponseWriter, r *http.Request) {
	playerID, ok := that.requirePlayer(w, r)
	if !ok {
		return
	}

	snapshot, err := that.games.Roll(r.Context(), r.PathValue("id"), playerID)
	if err != nil {
		that.writeError(w, err)
		return
	}

	that.writeJSON(w, http.StatusOK, snapshot)
}

func (that *Handlers) LockAndRoll(w http.ResponseWriter, r *http.Request) {
	playerID, ok := that.requirePlayer(w, r)
	if !ok {
		return
	}

	var req lockRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		that.writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}

	snapshot, err := that.games.LockAndRoll(r.Context(), r.PathValue("id"), playerID, req.LockedIndexes)
	if err != nil {
		that.writeError(w, err)
		return
	}

	that.writeJSON(w, http.StatusOK, snapshot)
}

func (that *Handlers) Score(w http.ResponseWriter, r *http.Request) {
	playerID, ok := that.requirePlayer(w, r)
	if !ok {
		return
	}

	var req scoreRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		that.writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}

	category := yam.Category(req.Category)
	if !yam.IsValidCategory(category) {
		that.writeJSON(w, http.StatusBadRequest, errorResponse{Error: "unknown category: " + req.Category})
		return
	}

	snapshot, err := that.games.CommitScore(r.Context(), r.PathValue("id"), playerID, category)
	if err != nil {
		that.writeError(w, err)
		return
	}

	that.writeJSON(w, http.StatusOK, snapshot)
}

func (that *Handlers) LobbyReady(w http.ResponseWriter, r *http.Request) {
	playerID, ok := that.requirePlayer(w, r)
	if !ok {
		return
	}

	status, err := that.lobby.Ready(r.Context(), playerID)
	if err != nil {
		that.writeError(w, err)
		return
	}

	that.writeJSON(w, http.StatusOK, status)
}

func (that *Handlers) LobbyCancel(w http.ResponseWriter, r *http.Request) {
	playerID, ok := that.requirePlayer(w, r)
	if !ok {
		return
	}

	that.lobby.CancelReady(playerID)
	w.WriteHeader(http.StatusNoContent)
}

func (that *Handlers) HallOfFame(w http.ResponseWriter, r *http.Request) {
	limit := 10
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			that.writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid limit"})
			return
		}
		limit = parsed
	}

	entries, err := that.hallOfFame.Top(r.Context(), limit)
	if err != nil {
		that.writeError(w, err)
		return
	}

	that.writeJSON(w, http.StatusOK, entries)
}

func (that *Handlers) CreatePlayer(w http.ResponseWriter, r *http.Request) {
	var req createPlayerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		that.writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}

	player, err := that.players.GetOrCreatePlayer(r.Context(), "", req.Pseudo)
	if err != nil {
		that.writeError(w, err)
		return
	}

	that.writeJSON(w, http.StatusCreated, player)
}

func (that *Handlers) requirePlayer(w http.ResponseWriter, r *http.Request) (string, bool) {
	playerID := r.Header.Get(playerIDHeader)
	if playerID == "" {
		that.writeJSON(w, http.StatusUnauthorized, errorResponse{Error: "missing " + playerIDHeader + " header"})
		return "", false
	}
	return playerID, true
}

func (that *Handlers) writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError

	switch apperror.KindOf(err) {
	case apperror.KindValidation, apperror.KindState:
		status = http.StatusBadRequest
	case apperror.KindAuthorization:
		status = http.StatusForbidden
	case apperror.KindNotFound:
		status = http.StatusNotFound
	case apperror.KindInvariant, apperror.KindUnknown:
		that.logger.Error("request failed", "error", err)
	}

	that.writeJSON(w, status, errorResponse{Error: err.Error()})
}

func (that *Handlers) writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(payload); err != nil {
		that.logger.Error("failed to encode response", "error", err)
	}
}
