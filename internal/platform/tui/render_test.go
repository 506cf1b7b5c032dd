package tui

import (
	"strings"
	"testing"

	"github.com/vovakirdan/pushbox/internal/core"
	"github.com/vovakirdan/pushbox/internal/sokoban"
)

func TestDrawBoard(t *testing.T) {
	g := sokoban.Parse([]string{"#@$.", "#"}).Grid
	s := core.NewScreen(10, 3)
	drawBoard(s, g, 1, 1)

	if s.Get(1, 1) != '▓' || s.Get(3, 1) != '<' || s.Get(5, 1) != '[' || s.Get(7, 1) != '·' {
		t.Errorf("row 1 = %q", s.Row(1))
	}
	if s.Get(3, 2) != ' ' {
		t.Error("cells past a short row should stay blank")
	}
}

func TestScreenToGrid(t *testing.T) {
	board := core.NewRect(10, 5, 8, 3)

	tests := []struct {
		x, y int
		want sokoban.Pos
		ok   bool
	}{
		{10, 5, sokoban.P(0, 0), true},
		{11, 5, sokoban.P(0, 0), true},
		{12, 6, sokoban.P(1, 1), true},
		{17, 7, sokoban.P(3, 2), true},
		{18, 5, sokoban.Pos{}, false},
		{9, 5, sokoban.Pos{}, false},
	}
	for _, tc := range tests {
		got, ok := screenToGrid(board, tc.x, tc.y)
		if ok != tc.ok || got != tc.want {
			t.Errorf("screenToGrid(%d, %d) = %v, %v; want %v, %v", tc.x, tc.y, got, ok, tc.want, tc.ok)
		}
	}
}

func TestRenderScreenKeepsText(t *testing.T) {
	s := core.NewScreen(6, 2)
	s.DrawTextColored(0, 0, "ab", core.ColorRed)
	s.DrawTextColored(2, 0, "cd", core.ColorBlue)

	out := RenderScreen(s)
	for _, want := range []string{"ab", "cd"} {
		if !strings.Contains(out, want) {
			t.Errorf("output %q missing %q", out, want)
		}
	}
}
