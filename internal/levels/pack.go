// Package levels provides level packs and their loading from disk.
// This package depends on sokoban but sokoban does not depend on levels.
package levels

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/pushbox/internal/levels/formats"
	"github.com/vovakirdan/pushbox/internal/sokoban"
)

// ErrLevelNotFound is returned when a pack has no level with the requested ID.
var ErrLevelNotFound = errors.New("level not found")

// Pack is an ordered collection of levels.
type Pack struct {
	ID          string
	Title       string
	Description string
	Levels      []sokoban.Level
	FilePath    string // Empty for built-in packs
}

// FromFormat builds a Pack from parsed data, stamping each level with the
// pack ID.
func FromFormat(p formats.Pack, path string) Pack {
	pack := Pack{
		ID:          p.ID,
		Title:       p.Title,
		Description: p.Description,
		Levels:      make([]sokoban.Level, len(p.Levels)),
		FilePath:    path,
	}
	for i, lvl := range p.Levels {
		lvl.Pack = p.ID
		pack.Levels[i] = lvl
	}
	return pack
}

// Len returns the number of levels.
func (p Pack) Len() int {
	return len(p.Levels)
}

// Index returns the position of the level with the given ID, or -1.
func (p Pack) Index(id string) int {
	for i, lvl := range p.Levels {
		if lvl.ID == id {
			return i
		}
	}
	return -1
}

// Level returns the level with the given ID.
func (p Pack) Level(id string) (sokoban.Level, error) {
	i := p.Index(id)
	if i < 0 {
		return sokoban.Level{}, fmt.Errorf("%w: %s/%s", ErrLevelNotFound, p.ID, id)
	}
	return p.Levels[i], nil
}

// At returns the level at position i.
func (p Pack) At(i int) (sokoban.Level, bool) {
	if i < 0 || i >= len(p.Levels) {
		return sokoban.Level{}, false
	}
	return p.Levels[i], true
}

// Next returns the level after id, if any.
func (p Pack) Next(id string) (sokoban.Level, bool) {
	i := p.Index(id)
	if i < 0 {
		return sokoban.Level{}, false
	}
	return p.At(i + 1)
}

// Prev returns the level before id, if any.
func (p Pack) Prev(id string) (sokoban.Level, bool) {
	i := p.Index(id)
	if i < 0 {
		return sokoban.Level{}, false
	}
	return p.At(i - 1)
}
