// Package builtin embeds the level packs shipped with the binary and
// registers them on import.
package builtin

import (
	"embed"
	"fmt"
	"io/fs"

	"github.com/vovakirdan/pushbox/internal/levels"
	"github.com/vovakirdan/pushbox/internal/levels/formats"
	"github.com/vovakirdan/pushbox/internal/registry"
)

//go:embed packs/*.yaml
var packFS embed.FS

func init() {
	packs, err := Packs()
	if err != nil {
		panic(fmt.Sprintf("builtin: %v", err))
	}
	for _, p := range packs {
		registry.Register(p)
	}
}

// Packs parses the embedded pack files.
func Packs() ([]levels.Pack, error) {
	paths, err := fs.Glob(packFS, "packs/*.yaml")
	if err != nil {
		return nil, err
	}

	out := make([]levels.Pack, 0, len(paths))
	for _, path := range paths {
		data, err := packFS.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", path, err)
		}
		parsed, err := formats.ParseYAML(data)
		if err != nil {
			return nil, fmt.Errorf("parsing %s: %w", path, err)
		}
		out = append(out, levels.FromFormat(parsed, ""))
	}
	return out, nil
}
