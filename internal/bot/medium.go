package bot

import (
	"github.com/playgrid/tictactoe-ai-backend/internal/entity"
	"github.com/playgrid/tictactoe-ai-backend/internal/tictactoe"
)

// corners in the order they are scanned when none of the higher
// priorities apply.
var corners = [4][2]int{{0, 0}, {0, 2}, {2, 0}, {2, 2}}

type mediumStrategy struct{}

// NewMediumStrategy - deterministic priority play:
// win > block > center > corner > first free cell.
func NewMediumStrategy() Strategy {
	return &mediumStrategy{}
}

func (that *mediumStrategy) ChooseMove(game *entity.Game) (int, int) {
	if row, col, ok := winningMove(game.Board, entity.PlayerO); ok {
		return row, col
	}

	if row, col, ok := winningMove(game.Board, entity.PlayerX); ok {
		return row, col
	}

	if game.Board[1][1] == entity.EmptyCell {
		return 1, 1
	}

	for _, corner := range corners {
		if game.Board[corner[0]][corner[1]] == entity.EmptyCell {
			return corner[0], corner[1]
		}
	}

	moves := tictactoe.LegalMoves(game)
	return moves[0][0], moves[0][1]
}
