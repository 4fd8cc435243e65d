package entity

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/rocketscienceinc/ricracroe/internal/coord"
)

// Box drawing glyphs for the grid.
const (
	glyphHorizontal = '─'
	glyphVertical   = '│'

	glyphTopLeft     = '╭'
	glyphTopJoin     = '┬'
	glyphTopRight    = '╮'
	glyphLeftJoin    = '├'
	glyphCross       = '┼'
	glyphRightJoin   = '┤'
	glyphBottomLeft  = '╰'
	glyphBottomJoin  = '┴'
	glyphBottomRight = '╯'
)

const labelIndent = "    "

// RenderTop returns the top border, 2*size+1 runes wide.
func (that *Board) RenderTop() string {
	return that.renderBorder(glyphTopLeft, glyphTopJoin, glyphTopRight)
}

// RenderRowSeparator returns the border drawn between two data rows.
func (that *Board) RenderRowSeparator() string {
	return that.renderBorder(glyphLeftJoin, glyphCross, glyphRightJoin)
}

func (that *Board) RenderBottom() string {
	return that.renderBorder(glyphBottomLeft, glyphBottomJoin, glyphBottomRight)
}

// RenderRow returns the cell contents of row y between vertical dividers.
func (that *Board) RenderRow(y uint) string {
	var line strings.Builder
	line.Grow(int(2*that.size+1) * 3)

	for x := uint(0); x < that.size; x++ {
		line.WriteRune(glyphVertical)

		cell, err := that.Fetch(coord.New(x, y))
		if err != nil {
			line.WriteRune(errorGlyph)
			continue
		}
		line.WriteRune(cell.Glyph())
	}
	line.WriteRune(glyphVertical)

	return line.String()
}

// RenderLines returns the full grid, one string per terminal row: 2*size+1 rows.
func (that *Board) RenderLines() []string {
	lines := make([]string, 0, 2*that.size+1)

	for y := uint(0); y < that.size; y++ {
		if y == 0 {
			lines = append(lines, that.RenderTop())
		} else {
			lines = append(lines, that.RenderRowSeparator())
		}
		lines = append(lines, that.RenderRow(y))
	}
	lines = append(lines, that.RenderBottom())

	return lines
}

// String renders the grid with column numbers above and row numbers on the left.
func (that *Board) String() string {
	var out strings.Builder

	out.WriteString(labelIndent)
	for x := uint(0); x < that.size; x++ {
		out.WriteByte(' ')
		out.WriteString(strconv.FormatUint(uint64(x), 10))
	}
	out.WriteByte('\n')

	for i, line := range that.RenderLines() {
		if i%2 == 1 {
			fmt.Fprintf(&out, "%3d %s\n", i/2, line)
			continue
		}
		out.WriteString(labelIndent)
		out.WriteString(line)
		out.WriteByte('\n')
	}

	return out.String()
}

func (that *Board) renderBorder(left, join, right rune) string {
	var line strings.Builder
	line.Grow(int(2*that.size+1) * 3)

	for x := uint(0); x < that.size; x++ {
		if x == 0 {
			line.WriteRune(left)
		} else {
			line.WriteRune(join)
		}
		line.WriteRune(glyphHorizontal)
	}
	line.WriteRune(right)

	return line.String()
}
