package sokoban

import "strings"

// Grid is the cell layout of a level. Rows may have different lengths;
// positions past the end of a row hold no cell.
//
// A Grid is never modified after construction. Moves build a new Grid that
// shares untouched rows with the previous one, so older snapshots stay valid.
type Grid struct {
	rows [][]Cell
}

// Height returns the number of rows.
func (g Grid) Height() int {
	return len(g.rows)
}

// RowLen returns the length of row y, or 0 if y is out of range.
func (g Grid) RowLen(y int) int {
	if y < 0 || y >= len(g.rows) {
		return 0
	}
	return len(g.rows[y])
}

// Width returns the length of the longest row.
func (g Grid) Width() int {
	w := 0
	for _, row := range g.rows {
		if len(row) > w {
			w = len(row)
		}
	}
	return w
}

// InBounds reports whether p addresses a cell. Bounds are per row.
func (g Grid) InBounds(p Pos) bool {
	return p.Y >= 0 && p.Y < len(g.rows) && p.X >= 0 && p.X < len(g.rows[p.Y])
}

// Get returns the cell at p. ok is false when p is out of bounds, in which
// case the returned cell is Wall.
func (g Grid) Get(p Pos) (cell Cell, ok bool) {
	if !g.InBounds(p) {
		return Wall, false
	}
	return g.rows[p.Y][p.X], true
}

// At returns the cell at p, treating out-of-bounds positions as Wall.
func (g Grid) At(p Pos) Cell {
	c, _ := g.Get(p)
	return c
}

// cellUpdate is a single write applied by with.
type cellUpdate struct {
	pos  Pos
	cell Cell
}

// with returns a new grid with the updates applied. Only the rows touched by
// an update are copied; g itself is left unchanged.
func (g Grid) with(updates ...cellUpdate) Grid {
	rows := make([][]Cell, len(g.rows))
	copy(rows, g.rows)

	cloned := make(map[int]bool, len(updates))
	for _, u := range updates {
		if !g.InBounds(u.pos) {
			continue
		}
		if !cloned[u.pos.Y] {
			rows[u.pos.Y] = append([]Cell(nil), g.rows[u.pos.Y]...)
			cloned[u.pos.Y] = true
		}
		rows[u.pos.Y][u.pos.X] = u.cell
	}
	return Grid{rows: rows}
}

// Count returns the number of cells equal to any of the given kinds.
func (g Grid) Count(kinds ...Cell) int {
	n := 0
	for _, row := range g.rows {
		for _, c := range row {
			for _, k := range kinds {
				if c == k {
					n++
					break
				}
			}
		}
	}
	return n
}

// Find returns the positions of all cells equal to any of the given kinds,
// in row-major order.
func (g Grid) Find(kinds ...Cell) []Pos {
	var out []Pos
	for y, row := range g.rows {
		for x, c := range row {
			for _, k := range kinds {
				if c == k {
					out = append(out, P(x, y))
					break
				}
			}
		}
	}
	return out
}

// Rows renders the grid back to level-format strings.
func (g Grid) Rows() []string {
	out := make([]string, len(g.rows))
	for y, row := range g.rows {
		var sb strings.Builder
		sb.Grow(len(row))
		for _, c := range row {
			sb.WriteRune(c.Rune())
		}
		out[y] = sb.String()
	}
	return out
}

// String returns the grid as newline-separated level text.
func (g Grid) String() string {
	return strings.Join(g.Rows(), "\n")
}

// Equal returns true if two grids have the same shape and contents.
func (g Grid) Equal(other Grid) bool {
	if len(g.rows) != len(other.rows) {
		return false
	}
	for y, row := range g.rows {
		if len(row) != len(other.rows[y]) {
			return false
		}
		for x, c := range row {
			if c != other.rows[y][x] {
				return false
			}
		}
	}
	return true
}
