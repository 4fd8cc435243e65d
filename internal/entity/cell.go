package entity

// Cell is the state of one board position.
type Cell uint8

const (
	Empty Cell = iota
	X
	O
)

const (
	blankGlyph = ' '
	errorGlyph = '!'
)

// IsMark reports whether the cell holds a player's mark.
func (that Cell) IsMark() bool {
	return that == X || that == O
}

// Glyph returns the rune drawn inside the board grid.
func (that Cell) Glyph() rune {
	switch that {
	case X:
		return 'X'
	case O:
		return 'O'
	default:
		return blankGlyph
	}
}

func (that Cell) String() string {
	switch that {
	case X:
		return "X"
	case O:
		return "O"
	default:
		return "·"
	}
}
