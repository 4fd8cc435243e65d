package apperror

import "errors"

var (
	ErrInvalidCellPosition = errors.New("invalid cell position")
	ErrCellAlreadySet      = errors.New("cell has already been played")
	ErrNoActivePlayer      = errors.New("the current game has no active player")
	ErrInvalidGameInput    = errors.New("invalid game input")
	ErrTerminal            = errors.New("terminal error")
	ErrNotATerminal        = errors.New("stdin is not a terminal")
	ErrInvalidConfig       = errors.New("invalid configuration")
)
