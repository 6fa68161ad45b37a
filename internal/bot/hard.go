package bot

import (
	"github.com/playgrid/tictactoe-ai-backend/internal/entity"
	"github.com/playgrid/tictactoe-ai-backend/internal/tictactoe"
)

const (
	winScore = 10

	scoreFloor   = -1000
	scoreCeiling = 1000
)

type hardStrategy struct{}

// NewHardStrategy - exhaustive minimax with alpha-beta pruning. The bot is
// the maximizer; terminal scores are depth-adjusted so it prefers the
// fastest win and the slowest loss. With row-major enumeration and a
// strict-improvement tie-break the choice is fully deterministic.
func NewHardStrategy() Strategy {
	return &hardStrategy{}
}

func (that *hardStrategy) ChooseMove(game *entity.Game) (int, int) {
	return bestMove(game.Board)
}

func bestMove(board entity.Board) (int, int) {
	bestScore := scoreFloor
	bestRow, bestCol := 0, 0
	alpha, beta := scoreFloor, scoreCeiling

	for _, cell := range emptyCells(board) {
		next := board
		next[cell[0]][cell[1]] = entity.PlayerO

		score := minimax(next, 1, false, alpha, beta)
		if score > bestScore {
			bestScore = score
			bestRow, bestCol = cell[0], cell[1]
		}

		if score > alpha {
			alpha = score
		}
	}

	return bestRow, bestCol
}

// minimax - returns the value of board from the bot's perspective, depth
// moves below the search root. The alpha-beta window only skips subtrees
// that cannot change the result; the selected move is identical to a full
// search.
func minimax(board entity.Board, depth int, maximizing bool, alpha, beta int) int {
	switch winner, _ := tictactoe.Winner(board); winner {
	case entity.PlayerO:
		return winScore - depth
	case entity.PlayerX:
		return -winScore + depth
	}

	if board.IsFull() {
		return 0
	}

	if maximizing {
		best := scoreFloor
		for _, cell := range emptyCells(board) {
			next := board
			next[cell[0]][cell[1]] = entity.PlayerO

			if score := minimax(next, depth+1, false, alpha, beta); score > best {
				best = score
			}
			if best > alpha {
				alpha = best
			}
			if beta <= alpha {
				break
			}
		}
		return best
	}

	best := scoreCeiling
	for _, cell := range emptyCells(board) {
		next := board
		next[cell[0]][cell[1]] = entity.PlayerX

		if score := minimax(next, depth+1, true, alpha, beta); score < best {
			best = score
		}
		if best < beta {
			beta = best
		}
		if beta <= alpha {
			break
		}
	}
	return best
}
