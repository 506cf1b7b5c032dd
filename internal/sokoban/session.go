package sokoban

import "time"

// Reporter receives completion events from a Session. It is how results
// reach persistence; implementations handle their own failures.
type Reporter interface {
	LevelCompleted(level Level, moves int, path string)
}

// ReporterFunc adapts a function to the Reporter interface.
type ReporterFunc func(level Level, moves int, path string)

// LevelCompleted calls f.
func (f ReporterFunc) LevelCompleted(level Level, moves int, path string) {
	f(level, moves, path)
}

// Option configures a Session.
type Option func(*Session)

// WithHistoryLimit bounds the undo history. n <= 0 means unbounded.
func WithHistoryLimit(n int) Option {
	return func(s *Session) {
		s.historyLimit = n
	}
}

// WithReporter sets the completion reporter.
func WithReporter(r Reporter) Option {
	return func(s *Session) {
		s.reporter = r
	}
}

// WithClock overrides the time source used for history timestamps.
func WithClock(now func() time.Time) Option {
	return func(s *Session) {
		s.now = now
	}
}

// Session owns the current state and undo history for one level.
//
// It has a single run state; LevelComplete is a terminal sub-state in which
// moves are ignored until Reset or Load. No method fails: rejected commands
// simply have no effect. A Session is not safe for concurrent use.
type Session struct {
	level        Level
	state        GameState
	history      *History
	historyLimit int
	path         []byte
	reporter     Reporter
	now          func() time.Time
}

// NewSession creates a session and loads the level.
func NewSession(level Level, opts ...Option) *Session {
	s := &Session{now: time.Now}
	for _, opt := range opts {
		opt(s)
	}
	s.history = NewHistory(s.historyLimit)
	s.Load(level)
	return s
}

// Load switches to a level, parsing it and clearing history.
func (s *Session) Load(level Level) {
	s.level = level
	s.state = level.NewState()
	s.history.Clear()
	s.path = s.path[:0]
}

// Reset restarts the current level.
func (s *Session) Reset() {
	s.Load(s.level)
}

// Move applies a direction. It returns true if the move was accepted.
// Moves are ignored once the level is complete.
func (s *Session) Move(d Direction) bool {
	if s.state.LevelComplete {
		return false
	}

	next, kind := Step(s.state, d)
	if kind == Blocked {
		return false
	}

	s.history.Push(HistoryEntry{
		State:  s.state,
		At:     s.now(),
		Dir:    d,
		Pushed: kind == Push,
	})
	s.state = next
	s.path = append(s.path, d.Letter(kind == Push))

	if next.LevelComplete && s.reporter != nil {
		s.reporter.LevelCompleted(s.level, next.Moves, string(s.path))
	}
	return true
}

// Undo restores the state before the last accepted move.
// It returns false when there is nothing to undo.
func (s *Session) Undo() bool {
	e, ok := s.history.Pop()
	if !ok {
		return false
	}
	s.state = e.State
	if len(s.path) > 0 {
		s.path = s.path[:len(s.path)-1]
	}
	return true
}

// CanUndo reports whether Undo would have an effect.
func (s *Session) CanUndo() bool {
	return s.history.Len() > 0
}

// State returns the current state. The returned grid is never modified by
// later moves.
func (s *Session) State() GameState {
	return s.state
}

// Level returns the loaded level.
func (s *Session) Level() Level {
	return s.level
}

// Complete reports whether the level is solved.
func (s *Session) Complete() bool {
	return s.state.LevelComplete
}

// Moves returns the current move count.
func (s *Session) Moves() int {
	return s.state.Moves
}

// HistoryLen returns the number of undoable moves held.
func (s *Session) HistoryLen() int {
	return s.history.Len()
}

// LastMove returns the most recent history entry.
func (s *Session) LastMove() (HistoryEntry, bool) {
	return s.history.Peek()
}

// Path returns the moves made since the level started in LURD notation:
// lowercase for walks, uppercase for pushes.
func (s *Session) Path() string {
	return string(s.path)
}
