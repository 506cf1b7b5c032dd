package sokoban

import "fmt"

// Validation codes.
const (
	CodeNoPlayer          = "NO_PLAYER"
	CodeMultiplePlayers   = "MULTIPLE_PLAYERS"
	CodeBoxTargetMismatch = "BOX_TARGET_MISMATCH"
	CodeNoTargets         = "NO_TARGETS"
	CodeUnknownChar       = "UNKNOWN_CHAR"
)

// ValidationError describes a problem found in a level definition.
type ValidationError struct {
	Code    string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Validate inspects level rows and reports anything that makes the level
// degenerate. It never rejects: Parse accepts every input, and callers decide
// what to do with the findings. It does not check solvability.
func Validate(rows []string) []ValidationError {
	var problems []ValidationError

	for y, row := range rows {
		for x, r := range []rune(row) {
			if _, ok := CellFromRune(r); !ok {
				problems = append(problems, ValidationError{
					Code:    CodeUnknownChar,
					Message: fmt.Sprintf("character %q at %v read as floor", r, P(x, y)),
				})
			}
		}
	}

	stats := ComputeStats(Parse(rows).Grid)

	switch {
	case stats.Players == 0:
		problems = append(problems, ValidationError{
			Code:    CodeNoPlayer,
			Message: "level has no player; start position defaults to (0,0)",
		})
	case stats.Players > 1:
		problems = append(problems, ValidationError{
			Code:    CodeMultiplePlayers,
			Message: fmt.Sprintf("level has %d players", stats.Players),
		})
	}

	if stats.Targets == 0 {
		problems = append(problems, ValidationError{
			Code:    CodeNoTargets,
			Message: "level has no targets",
		})
	}

	if stats.Boxes != stats.Targets {
		problems = append(problems, ValidationError{
			Code:    CodeBoxTargetMismatch,
			Message: fmt.Sprintf("%d boxes, %d targets", stats.Boxes, stats.Targets),
		})
	}

	return problems
}

// Validate checks the level's rows.
func (l Level) Validate() []ValidationError {
	return Validate(l.Rows)
}

// Stats summarizes the contents of a grid.
type Stats struct {
	Width        int
	Height       int
	Walls        int
	Boxes        int // Box + BoxOnTarget
	Targets      int // Target + BoxOnTarget + PlayerOnTarget
	BoxesOnGoals int // BoxOnTarget
	Players      int // Player + PlayerOnTarget
}

// ComputeStats counts the contents of a grid.
func ComputeStats(g Grid) Stats {
	return Stats{
		Width:        g.Width(),
		Height:       g.Height(),
		Walls:        g.Count(Wall),
		Boxes:        g.Count(Box, BoxOnTarget),
		Targets:      g.Count(Target, BoxOnTarget, PlayerOnTarget),
		BoxesOnGoals: g.Count(BoxOnTarget),
		Players:      g.Count(Player, PlayerOnTarget),
	}
}
