package entity

import "github.com/rocketscienceinc/ricracroe/internal/coord"

type OutcomeKind uint8

const (
	OutcomeDraw OutcomeKind = iota
	OutcomeWin
)

// Outcome is the terminal result of a game. A nil *Outcome means the game is still running.
type Outcome struct {
	Kind OutcomeKind `json:"kind"`
	Mark Cell        `json:"mark,omitempty"`
	// WinningCells is ordered along the winning line.
	WinningCells []coord.Coord `json:"winning_cells,omitempty"`
}

func NewDraw() *Outcome {
	return &Outcome{Kind: OutcomeDraw}
}

func NewWin(mark Cell, cells []coord.Coord) *Outcome {
	return &Outcome{Kind: OutcomeWin, Mark: mark, WinningCells: cells}
}

func (that *Outcome) IsDraw() bool {
	return that.Kind == OutcomeDraw
}

// Winner returns the winning mark, or false for a draw.
func (that *Outcome) Winner() (Cell, bool) {
	if that.Kind != OutcomeWin {
		return Empty, false
	}
	return that.Mark, true
}

func (that *Outcome) String() string {
	if mark, ok := that.Winner(); ok {
		return mark.String() + " Wins!"
	}
	return "It's a draw!"
}
