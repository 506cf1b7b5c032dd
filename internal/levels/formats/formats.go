// Package formats provides pluggable level pack parsers.
package formats

import "github.com/vovakirdan/pushbox/internal/sokoban"

// Pack is a parsed pack ready for use. Level.Pack is left empty; the
// levels package fills it in once the pack ID is final.
type Pack struct {
	ID          string
	Title       string
	Description string
	Levels      []sokoban.Level
}

// FormatExtensions returns supported file extensions.
func FormatExtensions() []string {
	return []string{".yaml", ".yml", ".sok", ".txt"}
}
