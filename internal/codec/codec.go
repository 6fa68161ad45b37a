// Package codec converts game states to and from their transport form.
// Encode and Decode are mutual inverses for every valid state; Decode
// refuses anything that does not satisfy the game's invariants, so a
// corrupted session blob can never re-enter play.
package codec

import (
	"encoding/json"
	"fmt"

	"github.com/playgrid/tictactoe-ai-backend/internal/apperror"
	"github.com/playgrid/tictactoe-ai-backend/internal/entity"
	"github.com/playgrid/tictactoe-ai-backend/internal/tictactoe"
)

// wireGame mirrors entity.Game but with open-ended collection types, so
// a blob with the wrong grid shape is caught by validation instead of
// being silently truncated into the fixed-size board.
type wireGame struct {
	Board       [][]string `json:"board"`
	Turn        string     `json:"current_player"`
	Status      string     `json:"game_status"`
	Winner      string     `json:"winner,omitempty"`
	WinningLine [][]int    `json:"winning_line,omitempty"`
	Difficulty  string     `json:"difficulty"`
}

// Encode - serializes a game state to its JSON transport form.
func Encode(game *entity.Game) ([]byte, error) {
	data, err := json.Marshal(game)
	if err != nil {
		return nil, fmt.Errorf("could not marshal game: %w", err)
	}

	return data, nil
}

// Decode - parses and fully validates a transport form. Every failure is an
// apperror.ErrMalformedState; the detail never leaves the process boundary.
func Decode(data []byte) (*entity.Game, error) {
	var wire wireGame
	if err := json.Unmarshal(data, &wire); err != nil {
		return nil, fmt.Errorf("%w: %w", apperror.ErrMalformedState, err)
	}

	board, err := decodeBoard(wire.Board)
	if err != nil {
		return nil, err
	}

	if !entity.IsValidMark(wire.Turn) {
		return nil, fmt.Errorf("%w: current player %q", apperror.ErrMalformedState, wire.Turn)
	}

	if !entity.IsValidDifficulty(wire.Difficulty) {
		return nil, fmt.Errorf("%w: difficulty %q", apperror.ErrMalformedState, wire.Difficulty)
	}

	if err = validateTurnBalance(board, wire.Turn); err != nil {
		return nil, err
	}

	if err = validateOutcome(board, &wire); err != nil {
		return nil, err
	}

	game := &entity.Game{
		Board:      board,
		Turn:       wire.Turn,
		Status:     wire.Status,
		Winner:     wire.Winner,
		Difficulty: wire.Difficulty,
	}
	if wire.Status == entity.StatusWon {
		game.WinningLine = make([][2]int, len(wire.WinningLine))
		for i, pair := range wire.WinningLine {
			game.WinningLine[i] = [2]int{pair[0], pair[1]}
		}
	}

	return game, nil
}

func decodeBoard(rows [][]string) (entity.Board, error) {
	var board entity.Board

	if len(rows) != 3 {
		return board, fmt.Errorf("%w: board has %d rows", apperror.ErrMalformedState, len(rows))
	}

	for row, cells := range rows {
		if len(cells) != 3 {
			return board, fmt.Errorf("%w: row %d has %d cells", apperror.ErrMalformedState, row, len(cells))
		}

		for col, cell := range cells {
			if cell != entity.EmptyCell && !entity.IsValidMark(cell) {
				return board, fmt.Errorf("%w: cell (%d,%d) holds %q", apperror.ErrMalformedState, row, col, cell)
			}
			board[row][col] = cell
		}
	}

	return board, nil
}

// validateTurnBalance - X always moves first and the turn flips on every
// move, so the mark counts pin down whose turn it must be.
func validateTurnBalance(board entity.Board, turn string) error {
	xCount, oCount := board.CountMarks()

	diff := xCount - oCount
	if diff != 0 && diff != 1 {
		return fmt.Errorf("%w: %d X marks vs %d O marks", apperror.ErrMalformedState, xCount, oCount)
	}

	expectedTurn := entity.PlayerX
	if diff == 1 {
		expectedTurn = entity.PlayerO
	}

	if turn != expectedTurn {
		return fmt.Errorf("%w: turn %q does not match mark counts", apperror.ErrMalformedState, turn)
	}

	return nil
}

// validateOutcome - the declared status, winner and winning line must agree
// with what the board itself says.
func validateOutcome(board entity.Board, wire *wireGame) error {
	winner, line := tictactoe.Winner(board)

	switch wire.Status {
	case entity.StatusPlaying:
		if winner != entity.EmptyCell || board.IsFull() {
			return fmt.Errorf("%w: board is terminal but status is %q", apperror.ErrMalformedState, wire.Status)
		}
		if wire.Winner != entity.EmptyCell || len(wire.WinningLine) != 0 {
			return fmt.Errorf("%w: in-progress game declares an outcome", apperror.ErrMalformedState)
		}

	case entity.StatusWon:
		if winner == entity.EmptyCell {
			return fmt.Errorf("%w: status is won but no line is complete", apperror.ErrMalformedState)
		}
		if wire.Winner != winner {
			return fmt.Errorf("%w: declared winner %q, board says %q", apperror.ErrMalformedState, wire.Winner, winner)
		}
		if !sameLine(wire.WinningLine, line) {
			return fmt.Errorf("%w: winning line does not match the board", apperror.ErrMalformedState)
		}

	case entity.StatusDraw:
		if winner != entity.EmptyCell || !board.IsFull() {
			return fmt.Errorf("%w: status is draw but the board disagrees", apperror.ErrMalformedState)
		}
		if wire.Winner != entity.EmptyCell || len(wire.WinningLine) != 0 {
			return fmt.Errorf("%w: drawn game declares a winner", apperror.ErrMalformedState)
		}

	default:
		return fmt.Errorf("%w: game status %q", apperror.ErrMalformedState, wire.Status)
	}

	return nil
}

func sameLine(wire [][]int, line [][2]int) bool {
	if len(wire) != len(line) {
		return false
	}

	for i, pair := range wire {
		if len(pair) != 2 || pair[0] != line[i][0] || pair[1] != line[i][1] {
			return false
		}
	}

	return true
}
