package rest

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/playgrid/tictactoe-ai-backend/internal/apperror"
	"github.com/playgrid/tictactoe-ai-backend/internal/entity"
)

const sessionCookieName = "tictactoe_session"

type gameManager interface {
	StartGame(ctx context.Context, sessionID, difficulty string) (*entity.Game, error)
	GetGameState(ctx context.Context, sessionID string) (*entity.Game, error)
	MakeTurn(ctx context.Context, sessionID string, row, col int) (*entity.Game, error)
	ResetGame(ctx context.Context, sessionID, difficulty string) (*entity.Game, error)
	QuitGame(ctx context.Context, sessionID string) error
}

// response is the envelope every endpoint answers with. Failures carry
// success=false and a user-facing message only; internal error detail stays
// in the logs.
type response struct {
	Success bool         `json:"success"`
	Game    *entity.Game `json:"game,omitempty"`
	Message string       `json:"message,omitempty"`
}

type newGameRequest struct {
	Difficulty string `json:"difficulty"`
}

type moveRequest struct {
	Row *int `json:"row"`
	Col *int `json:"col"`
}

func (that *Server) handleNewGame(w http.ResponseWriter, r *http.Request) {
	var req newGameRequest
	if !that.decodeBody(w, r, &req) {
		return
	}

	game, err := that.games.StartGame(r.Context(), that.sessionID(w, r), req.Difficulty)
	if err != nil {
		that.writeFailure(w, err)
		return
	}

	that.writeGame(w, game)
}

func (that *Server) handleGameState(w http.ResponseWriter, r *http.Request) {
	game, err := that.games.GetGameState(r.Context(), that.sessionID(w, r))
	if err != nil {
		that.writeFailure(w, err)
		return
	}

	that.writeGame(w, game)
}

func (that *Server) handleMove(w http.ResponseWriter, r *http.Request) {
	var req moveRequest
	if !that.decodeBody(w, r, &req) {
		return
	}

	if req.Row == nil || req.Col == nil {
		that.writeJSON(w, http.StatusBadRequest, response{Success: false, Message: "Both row and col are required"})
		return
	}

	game, err := that.games.MakeTurn(r.Context(), that.sessionID(w, r), *req.Row, *req.Col)
	if err != nil {
		that.writeFailure(w, err)
		return
	}

	that.writeGame(w, game)
}

func (that *Server) handleReset(w http.ResponseWriter, r *http.Request) {
	var req newGameRequest
	if !that.decodeBody(w, r, &req) {
		return
	}

	game, err := that.games.ResetGame(r.Context(), that.sessionID(w, r), req.Difficulty)
	if err != nil {
		that.writeFailure(w, err)
		return
	}

	that.writeGame(w, game)
}

func (that *Server) handleQuit(w http.ResponseWriter, r *http.Request) {
	if err := that.games.QuitGame(r.Context(), that.sessionID(w, r)); err != nil {
		that.writeFailure(w, err)
		return
	}

	that.writeJSON(w, http.StatusOK, response{Success: true, Message: "Thanks for playing!"})
}

// sessionID - reads the session cookie, minting a new one when absent.
func (that *Server) sessionID(w http.ResponseWriter, r *http.Request) string {
	if cookie, err := r.Cookie(sessionCookieName); err == nil && cookie.Value != "" {
		return cookie.Value
	}

	sessionID := uuid.NewString()
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    sessionID,
		Path:     "/",
		Expires:  time.Now().Add(24 * time.Hour),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	return sessionID
}

// decodeBody - parses an optional JSON body; an empty body is fine.
func (that *Server) decodeBody(w http.ResponseWriter, r *http.Request, dst any) bool {
	if r.Body == nil || r.ContentLength == 0 {
		return true
	}

	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		that.writeJSON(w, http.StatusBadRequest, response{Success: false, Message: "Request body must be valid JSON"})
		return false
	}

	return true
}

func (that *Server) writeGame(w http.ResponseWriter, game *entity.Game) {
	that.writeJSON(w, http.StatusOK, response{
		Success: true,
		Game:    game,
		Message: game.StateMessage(),
	})
}

// writeFailure - maps core failures onto user-facing messages and a
// neutral "not successful" signal.
func (that *Server) writeFailure(w http.ResponseWriter, err error) {
	var status int
	var message string

	switch {
	case errors.Is(err, apperror.ErrNoActiveGame):
		status, message = http.StatusNotFound, "Please start a new game first"
	case errors.Is(err, apperror.ErrCellOccupied):
		status, message = http.StatusBadRequest, "That square is already taken"
	case errors.Is(err, apperror.ErrInvalidCell):
		status, message = http.StatusBadRequest, "Move is out of range"
	case errors.Is(err, apperror.ErrNotYourTurn):
		status, message = http.StatusBadRequest, "It's not your turn"
	case errors.Is(err, apperror.ErrGameFinished):
		status, message = http.StatusBadRequest, "The game is over - start a new one"
	case errors.Is(err, apperror.ErrNotBotTurn):
		status, message = http.StatusBadRequest, "It's not the computer's turn"
	case errors.Is(err, apperror.ErrUnknownDifficulty):
		status, message = http.StatusBadRequest, "Difficulty must be easy, medium or hard"
	case errors.Is(err, apperror.ErrMalformedState):
		status, message = http.StatusBadRequest, "Game session corrupted. Please start a new game."
	default:
		status, message = http.StatusInternalServerError, "An unexpected error occurred"
	}

	if status == http.StatusInternalServerError {
		that.logger.Error("request failed", "error", err)
	} else {
		that.logger.Debug("request rejected", "error", err)
	}

	that.writeJSON(w, status, response{Success: false, Message: message})
}

func (that *Server) writeJSON(w http.ResponseWriter, status int, body response) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(body); err != nil {
		that.logger.Error("failed to write response", "error", err)
	}
}
