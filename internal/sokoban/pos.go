package sokoban

import "fmt"

// Pos is a grid position, column then row, zero-based.
type Pos struct {
	X int
	Y int
}

// P is a convenience constructor for Pos.
func P(x, y int) Pos {
	return Pos{X: x, Y: y}
}

// String returns a string representation of the position.
func (p Pos) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Add returns p offset by (dx, dy).
func (p Pos) Add(dx, dy int) Pos {
	return Pos{X: p.X + dx, Y: p.Y + dy}
}

// Step returns the neighbouring position in direction d.
func (p Pos) Step(d Direction) Pos {
	dx, dy := d.Delta()
	return p.Add(dx, dy)
}

// Manhattan returns the Manhattan distance to another position.
func (p Pos) Manhattan(other Pos) int {
	dx := p.X - other.X
	dy := p.Y - other.Y
	if dx < 0 {
		dx = -dx
	}
	if dy < 0 {
		dy = -dy
	}
	return dx + dy
}

// DirectionBetween returns the direction leading from one position to an
// adjacent one. ok is false unless the two are exactly one step apart.
func DirectionBetween(from, to Pos) (d Direction, ok bool) {
	if from.Manhattan(to) != 1 {
		return 0, false
	}
	switch {
	case to.Y < from.Y:
		return Up, true
	case to.Y > from.Y:
		return Down, true
	case to.X < from.X:
		return Left, true
	default:
		return Right, true
	}
}
