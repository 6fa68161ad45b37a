package bot

import (
	"github.com/playgrid/tictactoe-ai-backend/internal/entity"
	"github.com/playgrid/tictactoe-ai-backend/internal/random"
	"github.com/playgrid/tictactoe-ai-backend/internal/tictactoe"
)

// blockChance is how often the easy bot bothers to defend instead of
// playing a random square.
const blockChance = 0.2

type easyStrategy struct {
	rnd random.Random
}

// NewEasyStrategy - mostly random play with an occasional block of the
// human's immediate win.
func NewEasyStrategy(rnd random.Random) Strategy {
	return &easyStrategy{rnd: rnd}
}

func (that *easyStrategy) ChooseMove(game *entity.Game) (int, int) {
	if that.rnd.Float64() < blockChance {
		if row, col, ok := winningMove(game.Board, entity.PlayerX); ok {
			return row, col
		}
	}

	moves := tictactoe.LegalMoves(game)
	move := moves[that.rnd.Intn(len(moves))]

	return move[0], move[1]
}
