package sokoban

// MoveKind classifies the outcome of a move.
type MoveKind uint8

const (
	Blocked MoveKind = iota // Rejected; state unchanged
	Walk                    // Player stepped onto floor or target
	Push                    // Player pushed a box one cell
)

// String returns the name of the move kind.
func (k MoveKind) String() string {
	switch k {
	case Blocked:
		return "Blocked"
	case Walk:
		return "Walk"
	case Push:
		return "Push"
	default:
		return "Unknown"
	}
}

// Resolve applies one move. Illegal moves return s unchanged.
func Resolve(s GameState, d Direction) GameState {
	next, _ := Step(s, d)
	return next
}

// Step applies one move and reports what kind of move it was.
// It never panics: walls, blocked pushes, out-of-bounds targets and invalid
// directions all yield (s, Blocked).
func Step(s GameState, d Direction) (GameState, MoveKind) {
	if !d.Valid() {
		return s, Blocked
	}

	from, ok := s.Grid.Get(s.Player)
	if !ok || !from.IsPlayer() {
		// Degenerate level without a player marker.
		return s, Blocked
	}

	target := s.Player.Step(d)
	targetCell, ok := s.Grid.Get(target)
	if !ok || targetCell == Wall {
		return s, Blocked
	}

	vacated := Floor
	if from.HasTarget() {
		vacated = Target
	}

	if targetCell.IsBox() {
		pushTo := target.Step(d)
		pushCell, ok := s.Grid.Get(pushTo)
		if !ok || pushCell.Blocks() {
			return s, Blocked
		}

		player := Player
		if targetCell.HasTarget() {
			player = PlayerOnTarget
		}
		box := Box
		if pushCell.HasTarget() {
			box = BoxOnTarget
		}

		grid := s.Grid.with(
			cellUpdate{s.Player, vacated},
			cellUpdate{target, player},
			cellUpdate{pushTo, box},
		)
		return advance(s, grid, target), Push
	}

	player := Player
	if targetCell.HasTarget() {
		player = PlayerOnTarget
	}

	grid := s.Grid.with(
		cellUpdate{s.Player, vacated},
		cellUpdate{target, player},
	)
	return advance(s, grid, target), Walk
}

// advance builds the successor state after an accepted move.
func advance(s GameState, grid Grid, player Pos) GameState {
	return GameState{
		Grid:          grid,
		Player:        player,
		Moves:         s.Moves + 1,
		LevelComplete: IsComplete(grid),
	}
}

// IsComplete reports whether the level is solved: no bare Box, no uncovered
// Target, and no PlayerOnTarget. A player standing on the last open target
// therefore keeps the level incomplete until it steps off.
func IsComplete(g Grid) bool {
	for _, row := range g.rows {
		for _, c := range row {
			switch c {
			case Target, PlayerOnTarget, Box:
				return false
			}
		}
	}
	return true
}
