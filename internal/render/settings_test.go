package render

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rocketscienceinc/ricracroe/internal/coord"
)

func TestSettings_Regions(t *testing.T) {
	// Given: a 3x3 board with padding 4
	settings := NewSettings(3, 4)

	// Then: the regions stack vertically
	assert.Equal(t, coord.New(0, 0), settings.GetTitleOrigin())
	assert.Equal(t, coord.New(4, 4), settings.GetBoardOrigin())
	assert.Equal(t, uint(7), settings.GetRenderedBoardHeight())
	assert.Equal(t, coord.New(0, 15), settings.GetStatusOrigin())
	assert.Equal(t, coord.New(0, 17), settings.GetMsgLogOrigin())
	assert.Equal(t, coord.New(0, 20), settings.GetMsgLogLineOrigin(3))
	assert.Equal(t, coord.New(4, 10), settings.GetBoardRowOrigin(6))
	assert.Equal(t, uint(21), settings.GetRequiredHeight())
	assert.Equal(t, uint(15), settings.GetRequiredWidth())
	assert.Equal(t, uint(3), settings.GetBoardSize())
}

func TestSettings_CellCoordToTermCoord(t *testing.T) {
	settings := NewSettings(3, 4)

	assert.Equal(t, coord.New(5, 5), settings.CellCoordToTermCoord(coord.New(0, 0)))
	assert.Equal(t, coord.New(9, 7), settings.CellCoordToTermCoord(coord.New(2, 1)))
}

func TestSettings_RoundTrip(t *testing.T) {
	for _, size := range []uint{1, 3, 5, 9} {
		for _, padding := range []uint{0, 1, 4} {
			settings := NewSettings(size, padding)

			for y := uint(0); y < size; y++ {
				for x := uint(0); x < size; x++ {
					cell := coord.New(x, y)
					term := settings.CellCoordToTermCoord(cell)

					assert.Equal(t, cell, settings.TermCoordToCellCoord(term),
						"size %d padding %d", size, padding)
				}
			}
		}
	}
}

func TestSettings_TermCoordToCellCoord(t *testing.T) {
	settings := NewSettings(3, 4)

	t.Run("Every position of a cell block maps to the cell", func(t *testing.T) {
		// cell (1, 1) is shown at (7, 7); its block spans x 7..8 and y 7..8
		for _, term := range []coord.Coord{coord.New(7, 7), coord.New(8, 7), coord.New(7, 8), coord.New(8, 8)} {
			assert.Equal(t, coord.New(1, 1), settings.TermCoordToCellCoord(term), "term %s", term)
		}
	})

	t.Run("Clicks past the board map outside it", func(t *testing.T) {
		assert.Equal(t, coord.New(5, 0), settings.TermCoordToCellCoord(coord.New(15, 5)))
	})

	t.Run("Clicks above and left of the board saturate to zero", func(t *testing.T) {
		assert.Equal(t, coord.New(0, 0), settings.TermCoordToCellCoord(coord.New(0, 0)))
		assert.Equal(t, coord.New(0, 1), settings.TermCoordToCellCoord(coord.New(2, 7)))
	})
}

func TestSettings_RequiredSize(t *testing.T) {
	// Given: an 8x8 board with the default padding
	settings := NewSettings(8, 4)

	// Then: the status and message log need more rows than an 80x24 terminal has
	assert.Equal(t, coord.New(0, 25), settings.GetStatusOrigin())
	assert.Equal(t, uint(31), settings.GetRequiredHeight())
	assert.Equal(t, uint(25), settings.GetRequiredWidth())
}
