package entity

const (
	StatusPlaying = "playing"
	StatusWon     = "won"
	StatusDraw    = "draw"

	PlayerX = "X"
	PlayerO = "O"

	EmptyCell = ""
)

const (
	DifficultyEasy   = "easy"
	DifficultyMedium = "medium"
	DifficultyHard   = "hard"
)

// Board is the 3x3 grid, addressed as [row][col].
type Board [3][3]string

// Game represents one full game state: the board, whose turn it is,
// the outcome so far and the bot difficulty it was started with.
type Game struct {
	Board       Board    `json:"board"`
	Turn        string   `json:"current_player"`
	Status      string   `json:"game_status"`
	Winner      string   `json:"winner,omitempty"`
	WinningLine [][2]int `json:"winning_line,omitempty"`
	Difficulty  string   `json:"difficulty"`
}

// NewGame - creates a fresh game. The human plays X and always moves first.
func NewGame(difficulty string) *Game {
	return &Game{
		Board:      Board{},
		Turn:       PlayerX,
		Status:     StatusPlaying,
		Difficulty: difficulty,
	}
}

// Clone - returns a deep copy, so move application never touches the original.
func (that *Game) Clone() *Game {
	clone := *that
	if that.WinningLine != nil {
		clone.WinningLine = make([][2]int, len(that.WinningLine))
		copy(clone.WinningLine, that.WinningLine)
	}
	return &clone
}

func (that *Game) IsPlaying() bool {
	return that.Status == StatusPlaying
}

func (that *Game) IsFinished() bool {
	return that.Status == StatusWon || that.Status == StatusDraw
}

// StateMessage - a user-facing description of the current game state.
func (that *Game) StateMessage() string {
	switch {
	case that.Status == StatusWon && that.Winner == PlayerX:
		return "You won! Congratulations!"
	case that.Status == StatusWon && that.Winner == PlayerO:
		return "Computer won! Try again!"
	case that.Status == StatusDraw:
		return "It's a draw! Good game!"
	case that.Turn == PlayerX:
		return "Your turn - click a square to play"
	default:
		return "Computer's turn..."
	}
}

func (that Board) IsFull() bool {
	for _, row := range that {
		for _, cell := range row {
			if cell == EmptyCell {
				return false
			}
		}
	}
	return true
}

// CountMarks - returns how many X and O marks are on the board.
func (that Board) CountMarks() (int, int) {
	var xCount, oCount int
	for _, row := range that {
		for _, cell := range row {
			switch cell {
			case PlayerX:
				xCount++
			case PlayerO:
				oCount++
			}
		}
	}
	return xCount, oCount
}

func IsValidMark(mark string) bool {
	return mark == PlayerX || mark == PlayerO
}

func IsValidDifficulty(difficulty string) bool {
	switch difficulty {
	case DifficultyEasy, DifficultyMedium, DifficultyHard:
		return true
	default:
		return false
	}
}
