package sokoban

// Snapshot captures a session for tests, replays and debugging.
type Snapshot struct {
	Pack     string
	Level    string
	Name     string
	Rows     []string
	Player   Pos
	Moves    int
	Complete bool
	History  int // Undoable moves held
	Path     string
	Stats    Stats
}

// Snapshot returns the current session snapshot.
func (s *Session) Snapshot() Snapshot {
	return Snapshot{
		Pack:     s.level.Pack,
		Level:    s.level.ID,
		Name:     s.level.Name,
		Rows:     s.state.Grid.Rows(),
		Player:   s.state.Player,
		Moves:    s.state.Moves,
		Complete: s.state.LevelComplete,
		History:  s.history.Len(),
		Path:     s.Path(),
		Stats:    ComputeStats(s.state.Grid),
	}
}
