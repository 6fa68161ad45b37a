package service

import (
	"fmt"

	"github.com/playgrid/tictactoe-ai-backend/internal/apperror"
	"github.com/playgrid/tictactoe-ai-backend/internal/bot"
	"github.com/playgrid/tictactoe-ai-backend/internal/entity"
	"github.com/playgrid/tictactoe-ai-backend/internal/random"
	"github.com/playgrid/tictactoe-ai-backend/internal/tictactoe"
)

type BotService interface {
	MakeTurn(game *entity.Game) (*entity.Game, error)
}

type botService struct {
	strategies map[string]bot.Strategy
}

// NewBotService - wires one strategy per difficulty. Only the easy strategy
// consumes randomness; medium and hard are deterministic.
func NewBotService(rnd random.Random) BotService {
	return &botService{
		strategies: map[string]bot.Strategy{
			entity.DifficultyEasy:   bot.NewEasyStrategy(rnd),
			entity.DifficultyMedium: bot.NewMediumStrategy(),
			entity.DifficultyHard:   bot.NewHardStrategy(),
		},
	}
}

// MakeTurn - picks and applies the bot's move, returning the resulting
// state. The bot plays O; asking it to move at any other point fails
// without touching the game.
func (that *botService) MakeTurn(game *entity.Game) (*entity.Game, error) {
	if !game.IsPlaying() || game.Turn != entity.PlayerO {
		return nil, apperror.ErrNotBotTurn
	}

	strategy, ok := that.strategies[game.Difficulty]
	if !ok {
		return nil, fmt.Errorf("%w: %q", apperror.ErrUnknownDifficulty, game.Difficulty)
	}

	row, col := strategy.ChooseMove(game)

	next, err := tictactoe.ApplyMove(game, row, col, entity.PlayerO)
	if err != nil {
		return nil, fmt.Errorf("bot failed to make turn: %w", err)
	}

	return next, nil
}
