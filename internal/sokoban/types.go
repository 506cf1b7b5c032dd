// Package sokoban implements the push-block puzzle engine.
// It is UI-agnostic and deterministic: a level definition plus a stream of
// directions produces a sequence of grid states. Nothing in this package
// performs I/O or returns errors; illegal commands are no-ops.
package sokoban

// Cell is the content of a single grid square.
// Box and player cells have an "on target" twin so one grid encodes both
// occupancy and target membership.
type Cell uint8

const (
	Wall Cell = iota
	Floor
	Box
	Target
	Player
	BoxOnTarget
	PlayerOnTarget
)

// String returns the name of the cell kind.
func (c Cell) String() string {
	switch c {
	case Wall:
		return "Wall"
	case Floor:
		return "Floor"
	case Box:
		return "Box"
	case Target:
		return "Target"
	case Player:
		return "Player"
	case BoxOnTarget:
		return "BoxOnTarget"
	case PlayerOnTarget:
		return "PlayerOnTarget"
	default:
		return "Unknown"
	}
}

// Rune returns the level-format character for the cell.
func (c Cell) Rune() rune {
	switch c {
	case Wall:
		return '#'
	case Box:
		return '$'
	case Target:
		return '.'
	case Player:
		return '@'
	case BoxOnTarget:
		return '*'
	case PlayerOnTarget:
		return '+'
	default:
		return ' '
	}
}

// CellFromRune maps a level character to a cell.
// Unrecognized characters become Floor; ok reports whether r was recognized.
func CellFromRune(r rune) (cell Cell, ok bool) {
	switch r {
	case '#':
		return Wall, true
	case ' ':
		return Floor, true
	case '$':
		return Box, true
	case '.':
		return Target, true
	case '@':
		return Player, true
	case '*':
		return BoxOnTarget, true
	case '+':
		return PlayerOnTarget, true
	default:
		return Floor, false
	}
}

// IsBox reports whether the cell holds a box.
func (c Cell) IsBox() bool {
	return c == Box || c == BoxOnTarget
}

// IsPlayer reports whether the cell holds the player.
func (c Cell) IsPlayer() bool {
	return c == Player || c == PlayerOnTarget
}

// HasTarget reports whether the cell's terrain is a target.
func (c Cell) HasTarget() bool {
	return c == Target || c == BoxOnTarget || c == PlayerOnTarget
}

// Blocks reports whether a box cannot be pushed into the cell.
func (c Cell) Blocks() bool {
	return c == Wall || c.IsBox()
}

// Direction is a movement command.
type Direction uint8

const (
	Up Direction = iota
	Down
	Left
	Right
)

// Directions lists every direction in declaration order.
var Directions = [...]Direction{Up, Down, Left, Right}

// String returns the name of the direction.
func (d Direction) String() string {
	switch d {
	case Up:
		return "Up"
	case Down:
		return "Down"
	case Left:
		return "Left"
	case Right:
		return "Right"
	default:
		return "Unknown"
	}
}

// Valid reports whether d is one of the four directions.
func (d Direction) Valid() bool {
	return d <= Right
}

// Delta returns the unit vector for the direction.
// Up decreases Y (screen coordinates).
func (d Direction) Delta() (dx, dy int) {
	switch d {
	case Up:
		return 0, -1
	case Down:
		return 0, 1
	case Left:
		return -1, 0
	case Right:
		return 1, 0
	default:
		return 0, 0
	}
}

// Opposite returns the reverse direction.
func (d Direction) Opposite() Direction {
	switch d {
	case Up:
		return Down
	case Down:
		return Up
	case Left:
		return Right
	case Right:
		return Left
	default:
		return d
	}
}
