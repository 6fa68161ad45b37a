package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/playgrid/tictactoe-ai-backend/internal/codec"
	"github.com/playgrid/tictactoe-ai-backend/internal/entity"
)

var ErrGameNotFound = errors.New("game not found")

// GameRepository stores one game per session. The caller owns the state:
// it reads a value out, plays on it and writes the replacement back.
type GameRepository interface {
	Save(ctx context.Context, sessionID string, game *entity.Game) error
	GetBySession(ctx context.Context, sessionID string) (*entity.Game, error)
	DeleteBySession(ctx context.Context, sessionID string) error
}

type dbGame struct {
	client *redis.Client
}

func NewGameRepository(client *redis.Client) GameRepository {
	return &dbGame{
		client: client,
	}
}

func (that *dbGame) Save(ctx context.Context, sessionID string, game *entity.Game) error {
	blob, err := codec.Encode(game)
	if err != nil {
		return fmt.Errorf("could not encode game: %w", err)
	}

	if err = that.client.Set(ctx, gameKey(sessionID), blob, 0).Err(); err != nil {
		return fmt.Errorf("failed to set game: %w", err)
	}

	return nil
}

func (that *dbGame) GetBySession(ctx context.Context, sessionID string) (*entity.Game, error) {
	response, err := that.client.Get(ctx, gameKey(sessionID)).Result()

	if errors.Is(err, redis.Nil) {
		return nil, ErrGameNotFound
	}

	if err != nil {
		return nil, fmt.Errorf("failed to get game: %w", err)
	}

	game, err := codec.Decode([]byte(response))
	if err != nil {
		return nil, fmt.Errorf("failed to decode stored game: %w", err)
	}

	return game, nil
}

func (that *dbGame) DeleteBySession(ctx context.Context, sessionID string) error {
	if err := that.client.Del(ctx, gameKey(sessionID)).Err(); err != nil {
		return fmt.Errorf("failed to delete game: %w", err)
	}

	return nil
}

func gameKey(sessionID string) string {
	return "game:" + sessionID
}
