package levels

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"sort"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/pushbox/internal/levels/formats"
)

// ErrPackNotFound is returned by Loader.LoadByID.
var ErrPackNotFound = errors.New("pack not found")

// Loader loads packs from a directory tree.
type Loader struct {
	Root   string
	Logger *log.Logger // Defaults to log.Default()
}

// NewLoader creates a loader for root.
func NewLoader(root string, logger *log.Logger) *Loader {
	return &Loader{Root: root, Logger: logger}
}

func (l *Loader) log() *log.Logger {
	if l.Logger != nil {
		return l.Logger
	}
	return log.Default()
}

// LoadAll recursively scans Root and loads every pack file.
// Unparsable files are logged and skipped. A missing Root yields no packs.
// Packs are sorted by ID; when two files share an ID the first path in
// walk order wins.
func (l *Loader) LoadAll() ([]Pack, error) {
	if _, err := os.Stat(l.Root); errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}

	var packs []Pack
	seen := make(map[string]string)

	err := filepath.WalkDir(l.Root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}

		ext := strings.ToLower(filepath.Ext(path))
		if !slices.Contains(formats.FormatExtensions(), ext) {
			return nil
		}

		pack, err := l.LoadFile(path)
		if err != nil {
			l.log().Warn("skipping pack file", "path", path, "err", err)
			return nil
		}
		if prev, dup := seen[pack.ID]; dup {
			l.log().Warn("duplicate pack id", "id", pack.ID, "path", path, "kept", prev)
			return nil
		}
		seen[pack.ID] = path

		packs = append(packs, pack)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walking directory %s: %w", l.Root, err)
	}

	sort.Slice(packs, func(i, j int) bool {
		return packs[i].ID < packs[j].ID
	})
	return packs, nil
}

// LoadFile loads a single pack file. Validation findings are logged as
// warnings; the levels are kept.
func (l *Loader) LoadFile(path string) (Pack, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Pack{}, fmt.Errorf("reading file %s: %w", path, err)
	}

	ext := strings.ToLower(filepath.Ext(path))
	parsed, err := parseByExtension(path, data, ext)
	if err != nil {
		return Pack{}, fmt.Errorf("parsing file %s: %w", path, err)
	}

	pack := FromFormat(parsed, path)
	for _, lvl := range pack.Levels {
		for _, problem := range lvl.Validate() {
			l.log().Warn("level problem", "pack", pack.ID, "level", lvl.ID, "problem", problem.Error())
		}
	}
	return pack, nil
}

// LoadByID loads the pack with the given ID.
func (l *Loader) LoadByID(id string) (Pack, error) {
	packs, err := l.LoadAll()
	if err != nil {
		return Pack{}, err
	}
	for _, p := range packs {
		if p.ID == id {
			return p, nil
		}
	}
	return Pack{}, fmt.Errorf("%w: %s", ErrPackNotFound, id)
}

// parseByExtension routes to the correct parser.
func parseByExtension(path string, data []byte, ext string) (formats.Pack, error) {
	switch ext {
	case ".yaml", ".yml":
		return formats.ParseYAML(data)
	case ".sok", ".txt":
		id := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
		return formats.ParseSOK(id, data)
	default:
		return formats.Pack{}, fmt.Errorf("unsupported extension: %s", ext)
	}
}
