package formats

import (
	"fmt"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/pushbox/internal/sokoban"
)

// YAMLPack is the YAML structure of a pack file.
type YAMLPack struct {
	ID          string      `yaml:"id"`
	Title       string      `yaml:"title"`
	Description string      `yaml:"description,omitempty"`
	Levels      []YAMLLevel `yaml:"levels"`
}

// YAMLLevel is one level in a YAML pack.
type YAMLLevel struct {
	ID   string   `yaml:"id,omitempty"`
	Name string   `yaml:"name,omitempty"`
	Grid []string `yaml:"grid"`
}

// ParseYAML parses a YAML pack file.
// Levels without an id are numbered by position starting at 1.
func ParseYAML(data []byte) (Pack, error) {
	var yp YAMLPack
	if err := yaml.Unmarshal(data, &yp); err != nil {
		return Pack{}, fmt.Errorf("yaml unmarshal: %w", err)
	}
	if yp.ID == "" {
		return Pack{}, fmt.Errorf("yaml pack: missing id")
	}

	pack := Pack{
		ID:          yp.ID,
		Title:       yp.Title,
		Description: yp.Description,
	}
	if pack.Title == "" {
		pack.Title = pack.ID
	}

	seen := make(map[string]bool, len(yp.Levels))
	for i, yl := range yp.Levels {
		if len(yl.Grid) == 0 {
			continue
		}
		id := yl.ID
		if id == "" {
			id = strconv.Itoa(i + 1)
		}
		if seen[id] {
			return Pack{}, fmt.Errorf("yaml pack %s: duplicate level id %q", yp.ID, id)
		}
		seen[id] = true

		name := yl.Name
		if name == "" {
			name = "Level " + id
		}
		pack.Levels = append(pack.Levels, sokoban.Level{
			ID:   id,
			Name: name,
			Rows: append([]string(nil), yl.Grid...),
		})
	}

	if len(pack.Levels) == 0 {
		return Pack{}, fmt.Errorf("yaml pack %s: no levels", yp.ID)
	}
	return pack, nil
}
