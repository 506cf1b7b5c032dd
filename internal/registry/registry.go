// Package registry provides a global registry of level packs.
// Built-in packs register themselves in init() functions; packs loaded
// from disk are added at startup, allowing the platform to list and open
// packs without hardcoded dependencies.
package registry

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/pushbox/internal/levels"
)

// ErrUnknownPack is returned when no pack with the requested ID is registered.
var ErrUnknownPack = errors.New("registry: unknown pack")

// PackInfo contains metadata about a registered pack.
type PackInfo struct {
	ID     string
	Title  string
	Levels int
	Source string // File path, or "builtin"
}

var (
	packs = make(map[string]levels.Pack)
	mu    sync.RWMutex
)

// Register adds a pack to the registry.
// Typically called from an init() function.
// Panics if a pack with the same ID is already registered.
func Register(p levels.Pack) {
	if err := Add(p); err != nil {
		panic(err.Error())
	}
}

// Add adds a pack, returning an error if the ID is taken or the pack is empty.
func Add(p levels.Pack) error {
	mu.Lock()
	defer mu.Unlock()

	if p.ID == "" {
		return fmt.Errorf("registry: pack without id")
	}
	if len(p.Levels) == 0 {
		return fmt.Errorf("registry: pack %q has no levels", p.ID)
	}
	if _, exists := packs[p.ID]; exists {
		return fmt.Errorf("registry: pack %q already registered", p.ID)
	}

	packs[p.ID] = p
	return nil
}

// List returns information about all registered packs, sorted by ID.
func List() []PackInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]PackInfo, 0, len(packs))
	for id, p := range packs {
		source := p.FilePath
		if source == "" {
			source = "builtin"
		}
		result = append(result, PackInfo{
			ID:     id,
			Title:  p.Title,
			Levels: len(p.Levels),
			Source: source,
		})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Get returns the pack with the given ID.
func Get(id string) (levels.Pack, error) {
	mu.RLock()
	defer mu.RUnlock()

	p, ok := packs[id]
	if !ok {
		return levels.Pack{}, fmt.Errorf("%w %q", ErrUnknownPack, id)
	}
	return p, nil
}

// Exists checks if a pack with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := packs[id]
	return ok
}

// Unregister removes a pack. It reports whether the pack was present.
func Unregister(id string) bool {
	mu.Lock()
	defer mu.Unlock()

	_, ok := packs[id]
	delete(packs, id)
	return ok
}
