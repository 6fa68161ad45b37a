package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGame(t *testing.T) {
	// When: create a new game instance
	game := NewGame(DifficultyHard)

	// Then: the game should have the expected initial state
	expectedGame := Game{
		Board:      Board{},
		Turn:       PlayerX,
		Status:     StatusPlaying,
		Difficulty: DifficultyHard,
	}

	require.NotNil(t, game)
	require.Equal(t, expectedGame, *game)
}

func TestGame_Clone(t *testing.T) {
	// Given: a finished game with a winning line
	game := NewGame(DifficultyMedium)
	game.Board = Board{
		{PlayerX, PlayerX, PlayerX},
		{PlayerO, PlayerO, EmptyCell},
		{EmptyCell, EmptyCell, EmptyCell},
	}
	game.Status = StatusWon
	game.Winner = PlayerX
	game.WinningLine = [][2]int{{0, 0}, {0, 1}, {0, 2}}

	// When: the game is cloned and the clone is mutated
	clone := game.Clone()
	clone.Board[2][2] = PlayerO
	clone.WinningLine[0] = [2]int{2, 2}

	// Then: the original is untouched
	assert.Equal(t, EmptyCell, game.Board[2][2])
	assert.Equal(t, [2]int{0, 0}, game.WinningLine[0])
}

func TestGame_StateMessage(t *testing.T) {
	tests := []struct {
		name     string
		mutate   func(game *Game)
		expected string
	}{
		{
			name:     "human to move",
			mutate:   func(_ *Game) {},
			expected: "Your turn - click a square to play",
		},
		{
			name:     "computer to move",
			mutate:   func(game *Game) { game.Turn = PlayerO },
			expected: "Computer's turn...",
		},
		{
			name: "human won",
			mutate: func(game *Game) {
				game.Status = StatusWon
				game.Winner = PlayerX
			},
			expected: "You won! Congratulations!",
		},
		{
			name: "computer won",
			mutate: func(game *Game) {
				game.Status = StatusWon
				game.Winner = PlayerO
			},
			expected: "Computer won! Try again!",
		},
		{
			name:     "draw",
			mutate:   func(game *Game) { game.Status = StatusDraw },
			expected: "It's a draw! Good game!",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			game := NewGame(DifficultyEasy)
			tt.mutate(game)

			assert.Equal(t, tt.expected, game.StateMessage())
		})
	}
}

func TestBoard_CountMarks(t *testing.T) {
	// Given: a board with three X marks and two O marks
	board := Board{
		{PlayerX, PlayerO, EmptyCell},
		{PlayerX, PlayerO, EmptyCell},
		{PlayerX, EmptyCell, EmptyCell},
	}

	// When: the marks are counted
	xCount, oCount := board.CountMarks()

	// Then: both counts are correct
	assert.Equal(t, 3, xCount)
	assert.Equal(t, 2, oCount)
}

func TestIsValidDifficulty(t *testing.T) {
	assert.True(t, IsValidDifficulty(DifficultyEasy))
	assert.True(t, IsValidDifficulty(DifficultyMedium))
	assert.True(t, IsValidDifficulty(DifficultyHard))
	assert.False(t, IsValidDifficulty(""))
	assert.False(t, IsValidDifficulty("impossible"))
}
