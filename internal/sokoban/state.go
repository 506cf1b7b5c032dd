package sokoban

// Level is an immutable level definition.
type Level struct {
	Pack string   // Owning pack ID, empty for ad-hoc levels
	ID   string   // Unique within the pack
	Name string   // Display name
	Rows []string // Level text, one string per row
}

// Key returns the identifier used for persistence: "pack/id", or just the
// ID when the level has no pack.
func (l Level) Key() string {
	if l.Pack == "" {
		return l.ID
	}
	return l.Pack + "/" + l.ID
}

// GameState is the unit of simulation.
type GameState struct {
	Grid          Grid
	Player        Pos
	Moves         int  // Successful moves since level start
	LevelComplete bool // IsComplete(Grid), computed on each move
}

// Equal reports whether two states match in grid, player position, move
// count and completion.
func (s GameState) Equal(other GameState) bool {
	return s.Player == other.Player &&
		s.Moves == other.Moves &&
		s.LevelComplete == other.LevelComplete &&
		s.Grid.Equal(other.Grid)
}

// Parse converts level rows into an initial game state.
//
// Unrecognized characters become Floor. The player is placed at the '@' or
// '+' character (the last one when a malformed level has several) and
// defaults to (0,0) when there is none; use Validate to detect that.
// Earlier markers stay on the grid as Player cells that never move.
// A parsed level is never pre-solved: LevelComplete starts false.
func Parse(rows []string) GameState {
	cells := make([][]Cell, len(rows))
	player := Pos{}

	for y, row := range rows {
		line := []rune(row)
		cells[y] = make([]Cell, len(line))
		for x, r := range line {
			c, _ := CellFromRune(r)
			cells[y][x] = c
			if c.IsPlayer() {
				player = P(x, y)
			}
		}
	}

	return GameState{
		Grid:   Grid{rows: cells},
		Player: player,
	}
}

// NewState parses a level's rows.
func (l Level) NewState() GameState {
	return Parse(l.Rows)
}
