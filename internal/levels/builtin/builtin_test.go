package builtin

import (
	"testing"

	"github.com/vovakirdan/pushbox/internal/registry"
	"github.com/vovakirdan/pushbox/internal/sokoban"
)

func TestBuiltinPacksRegistered(t *testing.T) {
	for _, id := range []string{"starter", "microban", "classic"} {
		if !registry.Exists(id) {
			t.Errorf("pack %q not registered", id)
		}
	}
}

func TestBuiltinLevelsValid(t *testing.T) {
	packs, err := Packs()
	if err != nil {
		t.Fatalf("Packs failed: %v", err)
	}

	for _, p := range packs {
		for _, lvl := range p.Levels {
			if lvl.Pack != p.ID {
				t.Errorf("%s/%s: Pack = %q", p.ID, lvl.ID, lvl.Pack)
			}
			if problems := lvl.Validate(); len(problems) > 0 {
				t.Errorf("%s/%s: %v", p.ID, lvl.ID, problems)
			}
		}
	}
}

func TestStarterSolutions(t *testing.T) {
	p, err := registry.Get("starter")
	if err != nil {
		t.Fatal(err)
	}

	solutions := map[string]string{
		"1": "R",
		"2": "dRurD",
		"3": "RurDurD",
		"4": "ruuRurDD",
	}
	for id, path := range solutions {
		lvl, err := p.Level(id)
		if err != nil {
			t.Fatal(err)
		}
		state, _ := sokoban.Replay(lvl, path)
		if !state.LevelComplete {
			t.Errorf("starter/%s: %q did not solve the level:\n%s", id, path, state.Grid)
		}
	}
}
