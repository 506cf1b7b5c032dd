package storage

import (
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/pushbox/internal/sokoban"
)

// Reporter records session completions in a Store. Failures are logged,
// never returned, so play continues when the database is unavailable.
type Reporter struct {
	Store  *Store
	Logger *log.Logger

	// OnRecord, if set, is called after a successful write.
	OnRecord func(level sokoban.Level, moves int, improved bool)
}

// LevelCompleted implements sokoban.Reporter.
func (r Reporter) LevelCompleted(level sokoban.Level, moves int, path string) {
	logger := r.Logger
	if logger == nil {
		logger = log.Default()
	}
	if r.Store == nil {
		logger.Debug("level completed, no store", "pack", level.Pack, "level", level.ID, "moves", moves)
		return
	}

	improved, err := r.Store.RecordCompletion(level.Pack, level.ID, moves, path)
	if err != nil {
		logger.Error("saving completion", "pack", level.Pack, "level", level.ID, "err", err)
		return
	}

	logger.Info("level completed",
		"pack", level.Pack,
		"level", level.ID,
		"moves", moves,
		"new_best", improved,
	)
	if r.OnRecord != nil {
		r.OnRecord(level, moves, improved)
	}
}

var _ sokoban.Reporter = Reporter{}
