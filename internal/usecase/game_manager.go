package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/playgrid/tictactoe-ai-backend/internal/apperror"
	"github.com/playgrid/tictactoe-ai-backend/internal/entity"
	"github.com/playgrid/tictactoe-ai-backend/internal/tictactoe"
)

// GameManager is what the transport layer talks to: one logical game per
// session, the human playing X and the bot answering within the same call.
type GameManager interface {
	StartGame(ctx context.Context, sessionID, difficulty string) (*entity.Game, error)
	GetGameState(ctx context.Context, sessionID string) (*entity.Game, error)
	MakeTurn(ctx context.Context, sessionID string, row, col int) (*entity.Game, error)
	ResetGame(ctx context.Context, sessionID, difficulty string) (*entity.Game, error)
	QuitGame(ctx context.Context, sessionID string) error
}

type gameService interface {
	CreateGame(ctx context.Context, sessionID, difficulty string) (*entity.Game, error)
	GetGame(ctx context.Context, sessionID string) (*entity.Game, error)
	SaveGame(ctx context.Context, sessionID string, game *entity.Game) error
	DeleteGame(ctx context.Context, sessionID string) error
}

type botService interface {
	MakeTurn(game *entity.Game) (*entity.Game, error)
}

type gameManager struct {
	logger *slog.Logger

	gameService gameService
	botService  botService
}

func NewGameManager(logger *slog.Logger, gameService gameService, botService botService) GameManager {
	return &gameManager{
		logger:      logger.With("component", "game_manager"),
		gameService: gameService,
		botService:  botService,
	}
}

// StartGame - creates and stores a fresh game; an empty difficulty falls
// back to medium.
func (that *gameManager) StartGame(ctx context.Context, sessionID, difficulty string) (*entity.Game, error) {
	if difficulty == "" {
		difficulty = entity.DifficultyMedium
	}

	game, err := that.gameService.CreateGame(ctx, sessionID, difficulty)
	if err != nil {
		return nil, fmt.Errorf("failed to create game: %w", err)
	}

	that.logger.Info("new game started", "session", sessionID, "difficulty", difficulty)

	return game, nil
}

func (that *gameManager) GetGameState(ctx context.Context, sessionID string) (*entity.Game, error) {
	game, err := that.gameService.GetGame(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to get game: %w", err)
	}

	return game, nil
}

// MakeTurn - applies the human move and, while the game is still in
// progress, the bot's reply. The stored state only changes when the whole
// turn succeeds.
func (that *gameManager) MakeTurn(ctx context.Context, sessionID string, row, col int) (*entity.Game, error) {
	game, err := that.gameService.GetGame(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to get game: %w", err)
	}

	next, err := tictactoe.ApplyMove(game, row, col, entity.PlayerX)
	if err != nil {
		return nil, fmt.Errorf("failed to make turn: %w", err)
	}

	if next.IsPlaying() {
		next, err = that.botService.MakeTurn(next)
		if err != nil {
			return nil, fmt.Errorf("bot failed to make turn: %w", err)
		}
	}

	if err = that.gameService.SaveGame(ctx, sessionID, next); err != nil {
		return nil, fmt.Errorf("failed to save game: %w", err)
	}

	that.logger.Debug("turn applied", "session", sessionID, "row", row, "col", col, "status", next.Status)

	return next, nil
}

// ResetGame - starts over on an empty board. Without an explicit
// difficulty the current game's difficulty is kept.
func (that *gameManager) ResetGame(ctx context.Context, sessionID, difficulty string) (*entity.Game, error) {
	if difficulty == "" {
		current, err := that.gameService.GetGame(ctx, sessionID)
		switch {
		case err == nil:
			difficulty = current.Difficulty
		case errors.Is(err, apperror.ErrNoActiveGame):
			// nothing to carry over
		default:
			return nil, fmt.Errorf("failed to get game: %w", err)
		}
	}

	return that.StartGame(ctx, sessionID, difficulty)
}

// QuitGame - discards the session's game entirely.
func (that *gameManager) QuitGame(ctx context.Context, sessionID string) error {
	if err := that.gameService.DeleteGame(ctx, sessionID); err != nil {
		return fmt.Errorf("failed to quit game: %w", err)
	}

	that.logger.Info("game quit", "session", sessionID)

	return nil
}
