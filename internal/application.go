package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rocketscienceinc/yamduel-backend/internal/config"
	"github.com/rocketscienceinc/yamduel-backend/internal/repository"
	"github.com/rocketscienceinc/yamduel-backend/internal/repository/storage"
	"github.com/rocketscienceinc/yamduel-backend/internal/service"
	"github.com/rocketscienceinc/yamduel-backend/internal/statestore"
	"github.com/rocketscienceinc/yamduel-backend/internal/yam"
	"github.com/rocketscienceinc/yamduel-backend/transport/rest"
)

var ErrAddrNotFound = errors.New("redis address string is empty")

// RunApp - runs the application.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigs
		log.Info("Received signal, shutting down", "signal", sig)
		cancel()
	}()

	redisAddrString := conf.Redis.GetRedisAddr()
	if redisAddrString == "" {
		return ErrAddrNotFound
	}

	redisClient, err := storage.New(ctx, redisAddrString)
	if err != nil {
		return fmt.Errorf("could not connect to redis storage: %w", err)
	}

	defer func() {
		if err = redisClient.Close(); err != nil {
			log.Error("could not close redis storage", "error", err)
		}
	}()

	matchRepo := repository.NewMatchRepository(redisClient)
	sheetRepo := repository.NewScoreSheetRepository(redisClient)
	playerRepo := repository.NewPlayerRepository(redisClient)
	rankingRepo := repository.NewRankingRepository(redisClient)

	states := statestore.New()
	roller := yam.NewRoller()

	gameService := service.NewGameService(logger, matchRepo, sheetRepo, playerRepo, rankingRepo, states, roller, time.Now)
	lobbyService := service.NewLobbyService(logger, gameService, time.Now)
	hallOfFameService := service.NewHallOfFameService(rankingRepo, playerRepo)
	playerService := service.NewPlayerService(playerRepo)

	handlers := rest.NewHandlers(logger, gameService, lobbyService, hallOfFameService, playerService)

	httpErrCh := make(chan error, 1)
	go func() {
		log.Info("Starting HTTP server", "port", conf.HTTPPort)
		if httpErr := rest.Start(conf.HTTPPort, handlers); httpErr != nil {
			log.Error("HTTP server error", "error", httpErr)
			httpErrCh <- httpErr
		}
	}()

	select {
	case err = <-httpErrCh:
		return fmt.Errorf("HTTP server error: %w", err)
	case <-ctx.Done():
		log.Info("Application context canceled, shutting down")
		return nil
	}
}
