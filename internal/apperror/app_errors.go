package apperror

import "errors"

var (
	ErrGameFinished      = errors.New("game is already finished")
	ErrCellOccupied      = errors.New("cell is already occupied")
	ErrInvalidCell       = errors.New("invalid cell coordinates")
	ErrNotYourTurn       = errors.New("it's not your turn")
	ErrNotBotTurn        = errors.New("it's not the bot's turn")
	ErrNoActiveGame      = errors.New("no active game")
	ErrUnknownDifficulty = errors.New("unknown difficulty")
	ErrMalformedState    = errors.New("malformed game state")
)
