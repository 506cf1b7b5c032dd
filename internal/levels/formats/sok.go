package formats

import (
	"bufio"
	"bytes"
	"fmt"
	"strconv"
	"strings"

	"github.com/vovakirdan/pushbox/internal/sokoban"
)

// ParseSOK parses a plain-text pack in the common .sok/.txt layout:
// levels are blocks of grid rows separated by blank lines, lines starting
// with ';' are comments and the first comment of a level names it.
// "Title:" and "Description:" lines before the first level describe the
// pack. The pack ID comes from the caller, usually the file base name.
func ParseSOK(id string, data []byte) (Pack, error) {
	pack := Pack{ID: id, Title: id}

	var (
		rows []string
		name string
	)
	flush := func() {
		if len(rows) == 0 {
			return
		}
		n := strconv.Itoa(len(pack.Levels) + 1)
		if name == "" {
			name = "Level " + n
		}
		pack.Levels = append(pack.Levels, sokoban.Level{ID: n, Name: name, Rows: rows})
		rows, name = nil, ""
	}

	sc := bufio.NewScanner(bytes.NewReader(data))
	for sc.Scan() {
		line := strings.TrimRight(sc.Text(), "\r")

		if strings.TrimSpace(line) == "" {
			flush()
			continue
		}

		if isGridLine(line) {
			rows = append(rows, normalizeRow(line))
			continue
		}

		text := strings.TrimSpace(line)
		text = strings.TrimSpace(strings.TrimPrefix(text, ";"))
		if text == "" {
			continue
		}

		if len(pack.Levels) == 0 && len(rows) == 0 {
			if v, ok := cutHeader(text, "Title"); ok {
				pack.Title = v
				continue
			}
			if v, ok := cutHeader(text, "Description"); ok {
				pack.Description = v
				continue
			}
		}

		if name == "" {
			name = text
		}
	}
	if err := sc.Err(); err != nil {
		return Pack{}, fmt.Errorf("sok pack %s: %w", id, err)
	}
	flush()

	if len(pack.Levels) == 0 {
		return Pack{}, fmt.Errorf("sok pack %s: no levels", id)
	}
	return pack, nil
}

// isGridLine reports whether the line looks like a row of a level: only
// level characters and at least one that is not floor.
func isGridLine(line string) bool {
	board := false
	for _, r := range line {
		switch r {
		case '#', '@', '+', '$', '*', '.':
			board = true
		case ' ', '-', '_':
		default:
			return false
		}
	}
	return board
}

// normalizeRow maps the alternative floor characters '-' and '_' to spaces.
func normalizeRow(line string) string {
	return strings.NewReplacer("-", " ", "_", " ").Replace(line)
}

func cutHeader(text, key string) (string, bool) {
	k, v, ok := strings.Cut(text, ":")
	if !ok || !strings.EqualFold(strings.TrimSpace(k), key) {
		return "", false
	}
	return strings.TrimSpace(v), true
}
