package sokoban

import "unicode"

// Letter returns the LURD notation letter for the direction: lowercase for a
// walk, uppercase for a push.
func (d Direction) Letter(push bool) byte {
	var b byte
	switch d {
	case Up:
		b = 'u'
	case Down:
		b = 'd'
	case Left:
		b = 'l'
	case Right:
		b = 'r'
	default:
		return '?'
	}
	if push {
		b -= 'a' - 'A'
	}
	return b
}

// ParseDirection parses a LURD letter in either case.
func ParseDirection(r rune) (d Direction, ok bool) {
	switch unicode.ToLower(r) {
	case 'u':
		return Up, true
	case 'd':
		return Down, true
	case 'l':
		return Left, true
	case 'r':
		return Right, true
	default:
		return 0, false
	}
}

// Replay plays a LURD path on a fresh session for level and returns the
// final state and the number of accepted moves. Letter case is ignored
// (the engine decides whether a move pushes); other characters are skipped.
// Moves after the level completes are ignored, as in a live session.
func Replay(level Level, path string, opts ...Option) (GameState, int) {
	s := NewSession(level, opts...)
	accepted := 0
	for _, r := range path {
		d, ok := ParseDirection(r)
		if !ok {
			continue
		}
		if s.Move(d) {
			accepted++
		}
	}
	return s.State(), accepted
}
