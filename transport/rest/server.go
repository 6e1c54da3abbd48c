package rest

import (
	"fmt"
	"net/http"
	"time"
)

func Start(port string, h *Handlers) error {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /ping", h.Ping)

	mux.HandleFunc("POST /players", h.CreatePlayer)

	mux.HandleFunc("GET /games/{id}", h.GetGame)
	mux.HandleFunc("POST /games/{id}/roll", h.Roll)
	mux.HandleFunc("POST /games/{id}/lock", h.LockAndRoll)
	mux.HandleFunc("POST /games/{id}/score", h.Score)

	mux.HandleFunc("POST /lobby/ready", h.LobbyReady)
	mux.HandleFunc("DELETE /lobby/ready", h.LobbyCancel)

	mux.HandleFunc("GET /halloffame", h.HallOfFame)

	srv := &http.Server{
		Addr:         ":" + port,
		Handler:      mux,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  30 * time.Second,
	}

	if err := srv.ListenAndServe(); err != nil {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}
