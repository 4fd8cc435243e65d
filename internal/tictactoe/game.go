package tictactoe

import (
	"fmt"

	"github.com/rocketscienceinc/ricracroe/internal/apperror"
	"github.com/rocketscienceinc/ricracroe/internal/coord"
	"github.com/rocketscienceinc/ricracroe/internal/entity"
)

const DefaultSize = 3

// Game sequences turns on a Board. X always moves first.
type Game struct {
	board   *entity.Board
	player  entity.Cell
	outcome *entity.Outcome
}

func NewGame(size uint) *Game {
	return &Game{
		board:  entity.NewBoard(size),
		player: entity.X,
	}
}

func (that *Game) Board() *entity.Board {
	return that.board
}

// GetTurn returns the mark to move. Only meaningful while the game is not over.
func (that *Game) GetTurn() entity.Cell {
	return that.player
}

// Outcome returns nil while the game is in progress.
func (that *Game) Outcome() *entity.Outcome {
	return that.outcome
}

func (that *Game) Over() bool {
	return that.outcome != nil
}

// NextPlayer hands the turn to the other mark.
func (that *Game) NextPlayer() (entity.Cell, error) {
	switch that.player {
	case entity.X:
		that.player = entity.O
	case entity.O:
		that.player = entity.X
	default:
		return entity.Empty, apperror.ErrNoActivePlayer
	}

	return that.player, nil
}

// TakeTurn plays the active mark at c and returns the mark that moved.
// A rejected move leaves the game untouched. Callers stop calling TakeTurn
// once Over reports true.
func (that *Game) TakeTurn(c coord.Coord) (entity.Cell, error) {
	mover := that.player

	if _, err := that.board.MakeMove(c, mover); err != nil {
		return mover, fmt.Errorf("%s cannot play in %s: %w", mover, c, err)
	}

	that.outcome = that.board.Outcome()
	if that.Over() {
		return mover, nil
	}

	if _, err := that.NextPlayer(); err != nil {
		return mover, fmt.Errorf("failed to change player: %w", err)
	}

	return mover, nil
}
