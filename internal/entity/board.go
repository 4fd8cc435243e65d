package entity

import "github.com/rocketscienceinc/ricracroe/internal/coord"

// Board is a dense size x size grid stored row-major, index y*size+x.
type Board struct {
	size  uint
	cells []Cell
}

// NewBoard returns a board with every cell Empty.
func NewBoard(size uint) *Board {
	return &Board{
		size:  size,
		cells: make([]Cell, size*size),
	}
}

func (that *Board) Size() uint {
	return that.size
}

func (that *Board) Fetch(c coord.Coord) (Cell, error) {
	i, err := that.index(c)
	if err != nil {
		return Empty, err
	}

	return that.cells[i], nil
}

// Set overwrites a cell unconditionally. Use MakeMove for player moves.
func (that *Board) Set(c coord.Coord, state Cell) (Cell, error) {
	i, err := that.index(c)
	if err != nil {
		return Empty, err
	}

	that.cells[i] = state

	return state, nil
}

// MakeMove places mark on an empty cell.
func (that *Board) MakeMove(c coord.Coord, mark Cell) (Cell, error) {
	current, err := that.Fetch(c)
	if err != nil {
		return Empty, err
	}

	if current.IsMark() {
		return Empty, &CellAlreadySetError{Coord: c, Mark: current}
	}

	return that.Set(c, mark)
}

// Outcome scans rows, then columns, then the x == y diagonal, then the
// x == size-1-y diagonal, and returns the first fully marked line.
// With no winning line it returns a draw once the board is full, nil otherwise.
func (that *Board) Outcome() *Outcome {
	n := that.size

	for y := uint(0); y < n; y++ {
		if won := that.testLine(func(i uint) coord.Coord { return coord.New(i, y) }); won != nil {
			return won
		}
	}

	for x := uint(0); x < n; x++ {
		if won := that.testLine(func(i uint) coord.Coord { return coord.New(x, i) }); won != nil {
			return won
		}
	}

	if won := that.testLine(func(i uint) coord.Coord { return coord.New(i, i) }); won != nil {
		return won
	}

	if won := that.testLine(func(i uint) coord.Coord { return coord.New(n-1-i, i) }); won != nil {
		return won
	}

	if that.hasEmpty() {
		return nil
	}

	return NewDraw()
}

// testLine checks the size cells at(0) .. at(size-1).
func (that *Board) testLine(at func(i uint) coord.Coord) *Outcome {
	if that.size == 0 {
		return nil
	}

	first := that.cells[that.mustIndex(at(0))]
	if !first.IsMark() {
		return nil
	}

	line := make([]coord.Coord, 0, that.size)
	for i := uint(0); i < that.size; i++ {
		c := at(i)
		if that.cells[that.mustIndex(c)] != first {
			return nil
		}
		line = append(line, c)
	}

	return NewWin(first, line)
}

func (that *Board) hasEmpty() bool {
	for _, cell := range that.cells {
		if cell == Empty {
			return true
		}
	}

	return false
}

func (that *Board) index(c coord.Coord) (uint, error) {
	if c.X >= that.size || c.Y >= that.size {
		return 0, &InvalidCellPositionError{Coord: c}
	}

	return c.Y*that.size + c.X, nil
}

// mustIndex is only called with coordinates generated inside the board.
func (that *Board) mustIndex(c coord.Coord) uint {
	return c.Y*that.size + c.X
}
