package rest

import (
	"fmt"
	"log/slog"
	"net/http"
	"time"
)

type Server struct {
	logger *slog.Logger
	games  gameManager
}

func New(logger *slog.Logger, games gameManager) *Server {
	return &Server{
		logger: logger.With("component", "rest"),
		games:  games,
	}
}

// Handler - builds the route table. Exposed separately so tests can drive
// the server through httptest without binding a port.
func (that *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /ping", that.handlePing)

	mux.HandleFunc("POST /api/game/new", that.handleNewGame)
	mux.HandleFunc("GET /api/game/state", that.handleGameState)
	mux.HandleFunc("POST /api/game/move", that.handleMove)
	mux.HandleFunc("POST /api/game/reset", that.handleReset)
	mux.HandleFunc("POST /api/game/quit", that.handleQuit)

	return mux
}

func (that *Server) Start(port string) error {
	srv := &http.Server{
		Addr:         ":" + port,
		Handler:      that.Handler(),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  30 * time.Second,
	}

	if err := srv.ListenAndServe(); err != nil {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}
