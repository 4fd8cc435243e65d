package render

import "github.com/rocketscienceinc/ricracroe/internal/coord"

// MaxMsgLogLines is the height of the message log region.
const MaxMsgLogLines = 4

// msgLogGap is the number of terminal rows between the status line and the message log.
const msgLogGap = 2

// Settings maps screen regions and board cells to terminal positions.
// The board is drawn with one border row and one border column around every cell,
// so cell (x, y) is shown at board origin + (2x+1, 2y+1).
type Settings struct {
	boardSize    uint
	boardPadding uint
}

func NewSettings(boardSize, boardPadding uint) Settings {
	return Settings{
		boardSize:    boardSize,
		boardPadding: boardPadding,
	}
}

func (that Settings) GetBoardSize() uint {
	return that.boardSize
}

func (that Settings) CellCoordToTermCoord(cell coord.Coord) coord.Coord {
	return that.GetBoardOrigin().Add(coord.New(2*cell.X+1, 2*cell.Y+1))
}

// TermCoordToCellCoord resolves any position inside a cell's 2x2 block to that cell.
// Positions above or left of the board saturate to row or column 0.
func (that Settings) TermCoordToCellCoord(term coord.Coord) coord.Coord {
	rel := term.Sub(that.GetBoardOrigin()).Sub(coord.New(1, 1))
	return coord.New(rel.X/2, rel.Y/2)
}

// GetRenderedBoardHeight is the number of terminal rows the grid occupies.
func (that Settings) GetRenderedBoardHeight() uint {
	return 2*that.boardSize + 1
}

func (that Settings) GetTitleOrigin() coord.Coord {
	return coord.New(0, 0)
}

func (that Settings) GetBoardOrigin() coord.Coord {
	return that.GetTitleOrigin().Add(coord.New(that.boardPadding, that.boardPadding))
}

// GetBoardRowOrigin is the start of the n-th rendered grid line.
func (that Settings) GetBoardRowOrigin(row uint) coord.Coord {
	return that.GetBoardOrigin().Add(coord.New(0, row))
}

func (that Settings) GetStatusOrigin() coord.Coord {
	return coord.New(0, that.GetBoardOrigin().Y+that.GetRenderedBoardHeight()+that.boardPadding)
}

func (that Settings) GetMsgLogOrigin() coord.Coord {
	return coord.New(0, that.GetStatusOrigin().Y+msgLogGap)
}

// GetMsgLogLineOrigin is the start of the n-th message log line.
func (that Settings) GetMsgLogLineOrigin(line uint) coord.Coord {
	return that.GetMsgLogOrigin().Add(coord.New(0, line))
}

// GetRequiredHeight is the number of terminal rows needed to show every region.
func (that Settings) GetRequiredHeight() uint {
	return that.GetMsgLogOrigin().Y + MaxMsgLogLines
}

// GetRequiredWidth is the number of terminal columns needed to show the padded board.
func (that Settings) GetRequiredWidth() uint {
	return that.GetBoardOrigin().X + that.GetRenderedBoardHeight() + that.boardPadding
}
