package entity

import (
	"fmt"

	"github.com/rocketscienceinc/ricracroe/internal/apperror"
	"github.com/rocketscienceinc/ricracroe/internal/coord"
)

// InvalidCellPositionError reports a coordinate outside the board.
type InvalidCellPositionError struct {
	Coord coord.Coord
}

func (that *InvalidCellPositionError) Error() string {
	return fmt.Sprintf("%d, %d is an invalid cell position", that.Coord.X, that.Coord.Y)
}

func (that *InvalidCellPositionError) Unwrap() error {
	return apperror.ErrInvalidCellPosition
}

// CellAlreadySetError reports a move onto a cell that already holds a mark.
type CellAlreadySetError struct {
	Coord coord.Coord
	Mark  Cell
}

func (that *CellAlreadySetError) Error() string {
	return fmt.Sprintf("%d, %d has already been played in by %s", that.Coord.X, that.Coord.Y, that.Mark)
}

func (that *CellAlreadySetError) Unwrap() error {
	return apperror.ErrCellAlreadySet
}
