package entity

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/ricracroe/internal/apperror"
	"github.com/rocketscienceinc/ricracroe/internal/coord"
)

func TestNewBoard(t *testing.T) {
	// When: a 4x4 board is created
	board := NewBoard(4)

	// Then: every cell exists and is empty
	require.Equal(t, uint(4), board.Size())
	for y := uint(0); y < 4; y++ {
		for x := uint(0); x < 4; x++ {
			cell, err := board.Fetch(coord.New(x, y))
			require.NoError(t, err)
			assert.Equal(t, Empty, cell)
		}
	}
}

func TestBoard_Fetch(t *testing.T) {
	t.Run("Rejects coordinates on the size boundary", func(t *testing.T) {
		// Given: a 3x3 board
		board := NewBoard(3)

		// When: fetching x == size and y == size
		_, errX := board.Fetch(coord.New(3, 0))
		_, errY := board.Fetch(coord.New(0, 3))

		// Then: both are invalid positions
		assert.ErrorIs(t, errX, apperror.ErrInvalidCellPosition)
		assert.ErrorIs(t, errY, apperror.ErrInvalidCellPosition)
	})
}

func TestBoard_Set(t *testing.T) {
	t.Run("Overwrites unconditionally", func(t *testing.T) {
		// Given: a board with X at (1, 2)
		board := NewBoard(3)
		_, err := board.Set(coord.New(1, 2), X)
		require.NoError(t, err)

		// When: setting O on the same cell
		written, err := board.Set(coord.New(1, 2), O)

		// Then: the new state is returned and stored
		require.NoError(t, err)
		assert.Equal(t, O, written)
		cell, _ := board.Fetch(coord.New(1, 2))
		assert.Equal(t, O, cell)
	})

	t.Run("Rejects out of bounds", func(t *testing.T) {
		board := NewBoard(3)

		_, err := board.Set(coord.New(7, 0), X)

		assert.ErrorIs(t, err, apperror.ErrInvalidCellPosition)
	})
}

func TestBoard_MakeMove(t *testing.T) {
	t.Run("Writes the mark on an empty cell", func(t *testing.T) {
		// Given: an empty board
		board := NewBoard(3)

		// When: X moves to (0, 1)
		written, err := board.MakeMove(coord.New(0, 1), X)

		// Then: the move succeeds
		require.NoError(t, err)
		assert.Equal(t, X, written)
		cell, _ := board.Fetch(coord.New(0, 1))
		assert.Equal(t, X, cell)
	})

	t.Run("Error on cell already set", func(t *testing.T) {
		// Given: X has played (0, 0)
		board := NewBoard(3)
		_, err := board.MakeMove(coord.New(0, 0), X)
		require.NoError(t, err)

		// When: O plays the same cell
		_, err = board.MakeMove(coord.New(0, 0), O)

		// Then: the move is rejected with the existing mark
		require.ErrorIs(t, err, apperror.ErrCellAlreadySet)

		var alreadySet *CellAlreadySetError
		require.ErrorAs(t, err, &alreadySet)
		assert.Equal(t, coord.New(0, 0), alreadySet.Coord)
		assert.Equal(t, X, alreadySet.Mark)

		// And: the board is unchanged
		cell, _ := board.Fetch(coord.New(0, 0))
		assert.Equal(t, X, cell)
	})

	t.Run("Error on invalid cell position", func(t *testing.T) {
		// Given: a 3x3 board
		board := NewBoard(3)

		// When: moving to (5, 5)
		_, err := board.MakeMove(coord.New(5, 5), X)

		// Then: the position is rejected and reported
		require.ErrorIs(t, err, apperror.ErrInvalidCellPosition)

		var invalid *InvalidCellPositionError
		require.ErrorAs(t, err, &invalid)
		assert.Equal(t, coord.New(5, 5), invalid.Coord)

		// And: nothing changed
		assert.Nil(t, board.Outcome())
		assert.True(t, board.hasEmpty())
	})
}

func TestBoard_Outcome(t *testing.T) {
	t.Run("Ongoing on an empty board", func(t *testing.T) {
		assert.Nil(t, NewBoard(3).Outcome())
	})

	t.Run("Row win", func(t *testing.T) {
		// Given: O holds the middle row of a 4x4 board
		board := boardWith(t, 4, map[coord.Coord]Cell{
			coord.New(0, 1): O, coord.New(1, 1): O, coord.New(2, 1): O, coord.New(3, 1): O,
			coord.New(0, 0): X, coord.New(1, 0): X, coord.New(3, 3): X,
		})

		// When: evaluating
		outcome := board.Outcome()

		// Then: O wins along the row in x order
		require.NotNil(t, outcome)
		winner, ok := outcome.Winner()
		require.True(t, ok)
		assert.Equal(t, O, winner)
		assert.Equal(t, []coord.Coord{
			coord.New(0, 1), coord.New(1, 1), coord.New(2, 1), coord.New(3, 1),
		}, outcome.WinningCells)
	})

	t.Run("Column win", func(t *testing.T) {
		board := boardWith(t, 3, map[coord.Coord]Cell{
			coord.New(2, 0): X, coord.New(2, 1): X, coord.New(2, 2): X,
			coord.New(0, 0): O, coord.New(1, 1): O,
		})

		outcome := board.Outcome()

		require.NotNil(t, outcome)
		assert.Equal(t, NewWin(X, []coord.Coord{coord.New(2, 0), coord.New(2, 1), coord.New(2, 2)}), outcome)
	})

	t.Run("Negative slope diagonal win", func(t *testing.T) {
		board := boardWith(t, 3, map[coord.Coord]Cell{
			coord.New(2, 0): O, coord.New(1, 1): O, coord.New(0, 2): O,
			coord.New(0, 0): X, coord.New(1, 0): X,
		})

		outcome := board.Outcome()

		require.NotNil(t, outcome)
		assert.Equal(t, NewWin(O, []coord.Coord{coord.New(2, 0), coord.New(1, 1), coord.New(0, 2)}), outcome)
	})

	t.Run("Rows are reported before columns", func(t *testing.T) {
		// Given: X holds both row 0 and column 0
		board := boardWith(t, 3, map[coord.Coord]Cell{
			coord.New(0, 0): X, coord.New(1, 0): X, coord.New(2, 0): X,
			coord.New(0, 1): X, coord.New(0, 2): X,
		})

		// When: evaluating
		outcome := board.Outcome()

		// Then: the row is found first
		require.NotNil(t, outcome)
		assert.Equal(t, []coord.Coord{coord.New(0, 0), coord.New(1, 0), coord.New(2, 0)}, outcome.WinningCells)
	})

	t.Run("Full board without a line is a draw", func(t *testing.T) {
		board := boardWith(t, 3, map[coord.Coord]Cell{
			coord.New(0, 0): X, coord.New(1, 0): O, coord.New(2, 0): X,
			coord.New(0, 1): X, coord.New(1, 1): O, coord.New(2, 1): O,
			coord.New(0, 2): O, coord.New(1, 2): X, coord.New(2, 2): X,
		})

		outcome := board.Outcome()

		require.NotNil(t, outcome)
		assert.True(t, outcome.IsDraw())
	})

	t.Run("Partial lines never win", func(t *testing.T) {
		// Given: three in a row on a 4x4 board
		board := boardWith(t, 4, map[coord.Coord]Cell{
			coord.New(0, 0): X, coord.New(1, 0): X, coord.New(2, 0): X,
		})

		// Then: no outcome yet
		assert.Nil(t, board.Outcome())
	})

	t.Run("Single cell board", func(t *testing.T) {
		board := NewBoard(1)
		_, err := board.MakeMove(coord.New(0, 0), X)
		require.NoError(t, err)

		outcome := board.Outcome()

		require.NotNil(t, outcome)
		assert.Equal(t, NewWin(X, []coord.Coord{coord.New(0, 0)}), outcome)
	})

	t.Run("Idempotent", func(t *testing.T) {
		board := boardWith(t, 3, map[coord.Coord]Cell{
			coord.New(0, 0): X, coord.New(1, 1): X, coord.New(2, 2): X,
		})

		assert.Equal(t, board.Outcome(), board.Outcome())
	})
}

func TestBoard_Outcome_RandomGames(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	for _, size := range []uint{1, 2, 3, 4, 5} {
		for game := 0; game < 50; game++ {
			board := NewBoard(size)
			mark := X

			for _, i := range rng.Perm(int(size * size)) {
				c := coord.New(uint(i)%size, uint(i)/size)
				_, err := board.MakeMove(c, mark)
				require.NoError(t, err)

				outcome := board.Outcome()
				won := anyLineWon(board)
				full := !board.hasEmpty()

				if !won && !full {
					require.Nil(t, outcome, "size %d board:\n%s", size, board)
					mark = other(mark)
					continue
				}

				require.NotNil(t, outcome, "size %d board:\n%s", size, board)
				if won {
					winner, ok := outcome.Winner()
					require.True(t, ok)
					assert.Equal(t, mark, winner)
					assert.Len(t, outcome.WinningCells, int(size))
				} else {
					assert.True(t, outcome.IsDraw())
				}
				break
			}
		}
	}
}

func TestBoard_Render(t *testing.T) {
	// Given: a 3x3 board with two moves
	board := boardWith(t, 3, map[coord.Coord]Cell{
		coord.New(0, 0): X,
		coord.New(2, 1): O,
	})

	// Then: each fragment uses the box glyphs
	assert.Equal(t, "╭─┬─┬─╮", board.RenderTop())
	assert.Equal(t, "├─┼─┼─┤", board.RenderRowSeparator())
	assert.Equal(t, "╰─┴─┴─╯", board.RenderBottom())
	assert.Equal(t, "│X│ │ │", board.RenderRow(0))
	assert.Equal(t, "│ │ │O│", board.RenderRow(1))

	// And: a row outside the board renders error glyphs
	assert.Equal(t, "│!│!│!│", board.RenderRow(9))

	// And: the full grid is two rows per cell plus the bottom border
	assert.Equal(t, []string{
		"╭─┬─┬─╮",
		"│X│ │ │",
		"├─┼─┼─┤",
		"│ │ │O│",
		"├─┼─┼─┤",
		"│ │ │ │",
		"╰─┴─┴─╯",
	}, board.RenderLines())
}

func TestBoard_String(t *testing.T) {
	board := boardWith(t, 2, map[coord.Coord]Cell{coord.New(1, 1): X})

	expected := "" +
		"     0 1\n" +
		"    ╭─┬─╮\n" +
		"  0 │ │ │\n" +
		"    ├─┼─┤\n" +
		"  1 │ │X│\n" +
		"    ╰─┴─╯\n"

	assert.Equal(t, expected, board.String())
}

func boardWith(t *testing.T, size uint, cells map[coord.Coord]Cell) *Board {
	t.Helper()

	board := NewBoard(size)
	for c, cell := range cells {
		_, err := board.Set(c, cell)
		require.NoError(t, err)
	}

	return board
}

// anyLineWon is an independent check over all full lines.
func anyLineWon(board *Board) bool {
	n := board.Size()
	lines := make([][]coord.Coord, 0, 2*n+2)

	diag := make([]coord.Coord, 0, n)
	anti := make([]coord.Coord, 0, n)
	for i := uint(0); i < n; i++ {
		row := make([]coord.Coord, 0, n)
		col := make([]coord.Coord, 0, n)
		for j := uint(0); j < n; j++ {
			row = append(row, coord.New(j, i))
			col = append(col, coord.New(i, j))
		}
		lines = append(lines, row, col)
		diag = append(diag, coord.New(i, i))
		anti = append(anti, coord.New(n-1-i, i))
	}
	lines = append(lines, diag, anti)

	for _, line := range lines {
		first, _ := board.Fetch(line[0])
		if !first.IsMark() {
			continue
		}
		same := true
		for _, c := range line[1:] {
			if cell, _ := board.Fetch(c); cell != first {
				same = false
				break
			}
		}
		if same {
			return true
		}
	}

	return false
}

func other(mark Cell) Cell {
	if mark == X {
		return O
	}
	return X
}
