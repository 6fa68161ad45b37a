package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/playgrid/tictactoe-ai-backend/internal/apperror"
	"github.com/playgrid/tictactoe-ai-backend/internal/entity"
	"github.com/playgrid/tictactoe-ai-backend/internal/repository"
)

type GameService interface {
	CreateGame(ctx context.Context, sessionID, difficulty string) (*entity.Game, error)
	GetGame(ctx context.Context, sessionID string) (*entity.Game, error)
	SaveGame(ctx context.Context, sessionID string, game *entity.Game) error
	DeleteGame(ctx context.Context, sessionID string) error
}

type gameRepo interface {
	Save(ctx context.Context, sessionID string, game *entity.Game) error
	GetBySession(ctx context.Context, sessionID string) (*entity.Game, error)
	DeleteBySession(ctx context.Context, sessionID string) error
}

type gameService struct {
	gameRepo gameRepo
}

func NewGameService(gameRepo gameRepo) GameService {
	return &gameService{
		gameRepo: gameRepo,
	}
}

// CreateGame - starts a fresh game for the session and stores it.
func (that *gameService) CreateGame(ctx context.Context, sessionID, difficulty string) (*entity.Game, error) {
	if !entity.IsValidDifficulty(difficulty) {
		return nil, fmt.Errorf("%w: %q", apperror.ErrUnknownDifficulty, difficulty)
	}

	game := entity.NewGame(difficulty)
	if err := that.gameRepo.Save(ctx, sessionID, game); err != nil {
		return nil, fmt.Errorf("failed to store new game: %w", err)
	}

	return game, nil
}

func (that *gameService) GetGame(ctx context.Context, sessionID string) (*entity.Game, error) {
	game, err := that.gameRepo.GetBySession(ctx, sessionID)
	if errors.Is(err, repository.ErrGameNotFound) {
		return nil, apperror.ErrNoActiveGame
	}

	if errors.Is(err, apperror.ErrMalformedState) {
		// a corrupted blob can never become playable again, drop it
		_ = that.gameRepo.DeleteBySession(ctx, sessionID)
		return nil, fmt.Errorf("failed to retrieve game from storage: %w", err)
	}

	if err != nil {
		return nil, fmt.Errorf("failed to retrieve game from storage: %w", err)
	}

	return game, nil
}

func (that *gameService) SaveGame(ctx context.Context, sessionID string, game *entity.Game) error {
	if err := that.gameRepo.Save(ctx, sessionID, game); err != nil {
		return fmt.Errorf("failed to update game: %w", err)
	}

	return nil
}

func (that *gameService) DeleteGame(ctx context.Context, sessionID string) error {
	if err := that.gameRepo.DeleteBySession(ctx, sessionID); err != nil {
		return fmt.Errorf("failed to delete game: %w", err)
	}

	return nil
}
