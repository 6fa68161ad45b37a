package tictactoe

import (
	"fmt"

	"github.com/playgrid/tictactoe-ai-backend/internal/apperror"
	"github.com/playgrid/tictactoe-ai-backend/internal/entity"
)

// WinLines holds the 8 winning triples. The scan order is fixed:
// rows top to bottom, then columns left to right, then the main and
// anti diagonals. The first complete line found is the one reported.
var WinLines = [8][3][2]int{
	{{0, 0}, {0, 1}, {0, 2}},
	{{1, 0}, {1, 1}, {1, 2}},
	{{2, 0}, {2, 1}, {2, 2}},
	{{0, 0}, {1, 0}, {2, 0}},
	{{0, 1}, {1, 1}, {2, 1}},
	{{0, 2}, {1, 2}, {2, 2}},
	{{0, 0}, {1, 1}, {2, 2}},
	{{0, 2}, {1, 1}, {2, 0}},
}

// ApplyMove - places mark at (row, col) and returns the resulting game state.
// The input game is never modified; validation happens before any state is
// built, so a failed move leaves nothing half-applied.
func ApplyMove(game *entity.Game, row, col int, mark string) (*entity.Game, error) {
	if !game.IsPlaying() {
		return nil, apperror.ErrGameFinished
	}

	if row < 0 || row > 2 || col < 0 || col > 2 {
		return nil, fmt.Errorf("%w: row %d, col %d", apperror.ErrInvalidCell, row, col)
	}

	if game.Board[row][col] != entity.EmptyCell {
		return nil, apperror.ErrCellOccupied
	}

	if mark != game.Turn {
		return nil, apperror.ErrNotYourTurn
	}

	next := game.Clone()
	next.Board[row][col] = mark
	next.Turn = ToggleMark(mark)
	resolveStatus(next)

	return next, nil
}

// LegalMoves - returns all empty cells in row-major order.
// A finished game has no legal moves.
func LegalMoves(game *entity.Game) [][2]int {
	if !game.IsPlaying() {
		return nil
	}

	var moves [][2]int
	for row := 0; row < 3; row++ {
		for col := 0; col < 3; col++ {
			if game.Board[row][col] == entity.EmptyCell {
				moves = append(moves, [2]int{row, col})
			}
		}
	}

	return moves
}

// Winner - scans the win lines in fixed order and returns the winning mark
// and its line, or an empty mark when no line is complete.
func Winner(board entity.Board) (string, [][2]int) {
	for _, line := range WinLines {
		a := board[line[0][0]][line[0][1]]
		b := board[line[1][0]][line[1][1]]
		c := board[line[2][0]][line[2][1]]

		if a != entity.EmptyCell && a == b && b == c {
			return a, [][2]int{line[0], line[1], line[2]}
		}
	}

	return entity.EmptyCell, nil
}

func ToggleMark(currentMark string) string {
	if currentMark == entity.PlayerX {
		return entity.PlayerO
	}
	return entity.PlayerX
}

// resolveStatus - recomputes status, winner and winning line after a move.
func resolveStatus(game *entity.Game) {
	if winner, line := Winner(game.Board); winner != entity.EmptyCell {
		game.Status = entity.StatusWon
		game.Winner = winner
		game.WinningLine = line
		return
	}

	if game.Board.IsFull() {
		game.Status = entity.StatusDraw
		return
	}

	game.Status = entity.StatusPlaying
}
