package coord

import "fmt"

// Coord is a position on the board grid or on the terminal screen.
// Which space it lives in depends on who produced it.
type Coord struct {
	X uint `json:"x"`
	Y uint `json:"y"`
}

func New(x, y uint) Coord {
	return Coord{X: x, Y: y}
}

// Add returns the component-wise sum.
func (that Coord) Add(other Coord) Coord {
	return Coord{X: that.X + other.X, Y: that.Y + other.Y}
}

// Sub returns the component-wise difference, saturating at zero.
func (that Coord) Sub(other Coord) Coord {
	return Coord{X: saturatingSub(that.X, other.X), Y: saturatingSub(that.Y, other.Y)}
}

func (that Coord) String() string {
	return fmt.Sprintf("(%d, %d)", that.X, that.Y)
}

func saturatingSub(a, b uint) uint {
	if b > a {
		return 0
	}
	return a - b
}
