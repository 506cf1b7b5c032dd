package levels_test

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/pushbox/internal/levels"
)

// getTestdataPath returns path to testdata/packs.
func getTestdataPath() string {
	_, filename, _, _ := runtime.Caller(0)
	return filepath.Join(filepath.Dir(filename), "testdata", "packs")
}

func newLoader(buf *bytes.Buffer) *levels.Loader {
	return levels.NewLoader(getTestdataPath(), log.New(buf))
}

func TestLoaderLoadAll(t *testing.T) {
	var buf bytes.Buffer
	packs, err := newLoader(&buf).LoadAll()
	if err != nil {
		t.Fatalf("LoadAll failed: %v", err)
	}

	if len(packs) != 2 {
		t.Fatalf("expected 2 packs, got %d", len(packs))
	}
	if packs[0].ID != "alpha" || packs[1].ID != "beta" {
		t.Errorf("packs not sorted by ID: %s, %s", packs[0].ID, packs[1].ID)
	}

	logs := buf.String()
	if !strings.Contains(logs, "skipping pack file") || !strings.Contains(logs, "broken.yaml") {
		t.Errorf("broken file should be logged and skipped, logs:\n%s", logs)
	}
	if !strings.Contains(logs, "NO_PLAYER") {
		t.Errorf("validation findings should be logged, logs:\n%s", logs)
	}
}

func TestLoaderLoadByID(t *testing.T) {
	var buf bytes.Buffer
	loader := newLoader(&buf)

	beta, err := loader.LoadByID("beta")
	if err != nil {
		t.Fatalf("LoadByID failed: %v", err)
	}
	if beta.Title != "Beta" || beta.Len() != 1 {
		t.Errorf("beta = %q with %d levels", beta.Title, beta.Len())
	}
	if !strings.HasSuffix(beta.FilePath, filepath.Join("nested", "beta.sok")) {
		t.Errorf("FilePath = %q", beta.FilePath)
	}

	lvl := beta.Levels[0]
	if lvl.Pack != "beta" || lvl.Name != "Only One" {
		t.Errorf("level = %+v", lvl)
	}

	if _, err := loader.LoadByID("gamma"); !errors.Is(err, levels.ErrPackNotFound) {
		t.Errorf("expected ErrPackNotFound, got %v", err)
	}
}

func TestLoaderMissingRoot(t *testing.T) {
	loader := levels.NewLoader(filepath.Join(t.TempDir(), "absent"), nil)
	packs, err := loader.LoadAll()
	if err != nil {
		t.Fatalf("missing root should not fail: %v", err)
	}
	if len(packs) != 0 {
		t.Errorf("expected no packs, got %d", len(packs))
	}
}

func TestLoaderDuplicateIDs(t *testing.T) {
	dir := t.TempDir()
	pack := []byte("id: dup\nlevels:\n  - grid: ['#@$.#']\n")
	for _, name := range []string{"a.yaml", "b.yml"} {
		if err := os.WriteFile(filepath.Join(dir, name), pack, 0o600); err != nil {
			t.Fatal(err)
		}
	}

	var buf bytes.Buffer
	packs, err := levels.NewLoader(dir, log.New(&buf)).LoadAll()
	if err != nil {
		t.Fatalf("LoadAll failed: %v", err)
	}
	if len(packs) != 1 {
		t.Fatalf("expected 1 pack, got %d", len(packs))
	}
	if filepath.Base(packs[0].FilePath) != "a.yaml" {
		t.Errorf("first file should win, got %s", packs[0].FilePath)
	}
	if !strings.Contains(buf.String(), "duplicate pack id") {
		t.Error("duplicate should be logged")
	}
}

func TestPackNavigation(t *testing.T) {
	var buf bytes.Buffer
	alpha, err := newLoader(&buf).LoadByID("alpha")
	if err != nil {
		t.Fatalf("LoadByID failed: %v", err)
	}

	lvl, err := alpha.Level("2")
	if err != nil || lvl.Name != "Two Boxes" {
		t.Errorf("Level(2) = %+v, %v", lvl, err)
	}
	if _, err := alpha.Level("9"); !errors.Is(err, levels.ErrLevelNotFound) {
		t.Errorf("expected ErrLevelNotFound, got %v", err)
	}

	if next, ok := alpha.Next("1"); !ok || next.ID != "2" {
		t.Errorf("Next(1) = %v, %v", next.ID, ok)
	}
	if _, ok := alpha.Next("3"); ok {
		t.Error("Next on last level should fail")
	}
	if prev, ok := alpha.Prev("2"); !ok || prev.ID != "1" {
		t.Errorf("Prev(2) = %v, %v", prev.ID, ok)
	}
	if _, ok := alpha.Prev("1"); ok {
		t.Error("Prev on first level should fail")
	}
	if alpha.Index("missing") != -1 {
		t.Error("Index of unknown level should be -1")
	}
}
