package bot

import (
	"github.com/playgrid/tictactoe-ai-backend/internal/entity"
	"github.com/playgrid/tictactoe-ai-backend/internal/tictactoe"
)

// Strategy picks the bot's next move for a game that is still in progress.
// Implementations are pure: same state in, same move out (modulo the
// injected randomness) and the game itself is never touched.
type Strategy interface {
	ChooseMove(game *entity.Game) (row, col int)
}

// emptyCells - all empty cells of a board in row-major order.
func emptyCells(board entity.Board) [][2]int {
	var cells [][2]int
	for row := 0; row < 3; row++ {
		for col := 0; col < 3; col++ {
			if board[row][col] == entity.EmptyCell {
				cells = append(cells, [2]int{row, col})
			}
		}
	}
	return cells
}

// winningMove - finds the first cell (row-major) that would complete a line
// for mark if it were played right now.
func winningMove(board entity.Board, mark string) (int, int, bool) {
	for _, cell := range emptyCells(board) {
		probe := board
		probe[cell[0]][cell[1]] = mark

		if winner, _ := tictactoe.Winner(probe); winner == mark {
			return cell[0], cell[1], true
		}
	}

	return 0, 0, false
}
