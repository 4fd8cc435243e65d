// Package report prints the final board and result once the terminal has been restored.
package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/muesli/termenv"

	"github.com/rocketscienceinc/ricracroe/internal/entity"
)

const (
	colorX    = "2"
	colorO    = "4"
	colorDraw = "3"
)

type Reporter struct {
	out *termenv.Output
}

// New writes to w, picking the color profile from w unless opts override it.
func New(w io.Writer, opts ...termenv.OutputOption) *Reporter {
	return &Reporter{out: termenv.NewOutput(w, opts...)}
}

// Print writes the board followed by the outcome. A nil outcome means the game was abandoned.
func (that *Reporter) Print(board *entity.Board, outcome *entity.Outcome) error {
	var text strings.Builder

	for _, r := range board.String() {
		text.WriteString(that.mark(r))
	}
	text.WriteByte('\n')
	text.WriteString(that.result(outcome))
	text.WriteByte('\n')

	if _, err := io.WriteString(that.out, text.String()); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}

	return nil
}

func (that *Reporter) mark(r rune) string {
	switch r {
	case entity.X.Glyph():
		return that.out.String(string(r)).Foreground(that.out.Color(colorX)).Bold().String()
	case entity.O.Glyph():
		return that.out.String(string(r)).Foreground(that.out.Color(colorO)).Bold().String()
	default:
		return string(r)
	}
}

func (that *Reporter) result(outcome *entity.Outcome) string {
	if outcome == nil {
		return that.out.String("Game abandoned.").Faint().String()
	}

	winner, ok := outcome.Winner()
	if !ok {
		return that.out.String(outcome.String()).Foreground(that.out.Color(colorDraw)).String()
	}

	color := colorX
	if winner == entity.O {
		color = colorO
	}

	cells := make([]string, 0, len(outcome.WinningCells))
	for _, cell := range outcome.WinningCells {
		cells = append(cells, cell.String())
	}

	return that.out.String(outcome.String()).Foreground(that.out.Color(color)).Bold().String() +
		"\nWinning line: " + strings.Join(cells, " ")
}
