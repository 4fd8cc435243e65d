package terminal

import "github.com/rocketscienceinc/ricracroe/internal/coord"

type ActionKind uint8

const (
	ActionTakeTurn ActionKind = iota
	ActionQuit
)

// GameAction is the resolved intent of one input loop: play a cell or quit.
type GameAction struct {
	Kind ActionKind
	// Cell is set for ActionTakeTurn only.
	Cell coord.Coord
}

func TakeTurn(cell coord.Coord) GameAction {
	return GameAction{Kind: ActionTakeTurn, Cell: cell}
}

func Quit() GameAction {
	return GameAction{Kind: ActionQuit}
}

func (that GameAction) String() string {
	if that.Kind == ActionQuit {
		return "quit"
	}
	return "take turn at " + that.Cell.String()
}
