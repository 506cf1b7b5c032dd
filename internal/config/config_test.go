package config

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
	"time"
)

// isolate points HOME and the working directory at empty temp dirs.
func isolate(t *testing.T) (home, work string) {
	t.Helper()
	home = t.TempDir()
	work = t.TempDir()
	t.Setenv("HOME", home)
	t.Chdir(work)
	return home, work
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
}

func TestEmbeddedMatchesDefault(t *testing.T) {
	isolate(t)

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Source != "embedded" {
		t.Errorf("Source = %q, expected embedded", cfg.Source)
	}

	want := DefaultConfig()
	cfg.Source, want.Source = "", ""
	if !reflect.DeepEqual(cfg, want) {
		t.Errorf("embedded config differs from DefaultConfig:\n%+v\n%+v", cfg, want)
	}
}

func TestLoadSearchOrder(t *testing.T) {
	home, work := isolate(t)

	writeFile(t, filepath.Join(work, "configs", "pushbox.yaml"), "history:\n  limit: 7\n")
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.History.Limit != 7 || cfg.Source != filepath.Join("configs", "pushbox.yaml") {
		t.Errorf("local config not used: limit=%d source=%q", cfg.History.Limit, cfg.Source)
	}

	writeFile(t, filepath.Join(home, ".pushbox", "config.yaml"), "history:\n  limit: 3\n")
	cfg, err = Load("")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.History.Limit != 3 {
		t.Errorf("user config should win over local, limit=%d", cfg.History.Limit)
	}

	custom := filepath.Join(work, "custom.yaml")
	writeFile(t, custom, "history:\n  limit: 1\n")
	cfg, err = Load(custom)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.History.Limit != 1 || cfg.Source != custom {
		t.Errorf("custom config should win, limit=%d source=%q", cfg.History.Limit, cfg.Source)
	}
}

func TestLoadKeepsDefaultsForMissingKeys(t *testing.T) {
	_, work := isolate(t)

	custom := filepath.Join(work, "partial.yaml")
	writeFile(t, custom, "ui:\n  mouse: false\n  tick_rate: 0\nhistory:\n  limit: -5\n")

	cfg, err := Load(custom)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.UI.Mouse {
		t.Error("mouse should be disabled")
	}
	if cfg.UI.TickRate != 30 {
		t.Errorf("invalid tick rate should fall back to 30, got %d", cfg.UI.TickRate)
	}
	if cfg.History.Limit != 0 {
		t.Errorf("negative limit should normalize to 0, got %d", cfg.History.Limit)
	}
	if cfg.Storage.DBPath != "~/.pushbox/progress.db" {
		t.Errorf("DBPath = %q, expected default", cfg.Storage.DBPath)
	}
	if cfg.SSH.IdleTimeout() != 30*time.Minute {
		t.Errorf("IdleTimeout = %v", cfg.SSH.IdleTimeout())
	}
}

func TestLoadErrors(t *testing.T) {
	_, work := isolate(t)

	if _, err := Load(filepath.Join(work, "missing.yaml")); err == nil || !strings.Contains(err.Error(), "failed to read config") {
		t.Errorf("expected read error, got %v", err)
	}

	bad := filepath.Join(work, "bad.yaml")
	writeFile(t, bad, "history: [\n")
	if _, err := Load(bad); err == nil || !strings.Contains(err.Error(), "failed to parse config") {
		t.Errorf("expected parse error, got %v", err)
	}
}

func TestLoadSkipsBrokenUserConfig(t *testing.T) {
	home, _ := isolate(t)
	writeFile(t, filepath.Join(home, ".pushbox", "config.yaml"), "ui: [\n")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Source != "embedded" {
		t.Errorf("broken user config should be skipped, Source = %q", cfg.Source)
	}
}

func TestExpandHome(t *testing.T) {
	home, _ := isolate(t)

	tests := []struct {
		in, want string
	}{
		{"~/.pushbox/progress.db", filepath.Join(home, ".pushbox", "progress.db")},
		{"~", home},
		{"/abs/path", "/abs/path"},
		{"relative/~x", "relative/~x"},
		{"~other/x", "~other/x"},
	}
	for _, tc := range tests {
		got, err := ExpandHome(tc.in)
		if err != nil {
			t.Fatalf("ExpandHome(%q) failed: %v", tc.in, err)
		}
		if got != tc.want {
			t.Errorf("ExpandHome(%q) = %q, expected %q", tc.in, got, tc.want)
		}
	}
}
