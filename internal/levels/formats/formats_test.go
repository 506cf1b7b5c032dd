package formats

import (
	"reflect"
	"strings"
	"testing"
)

func TestParseYAML(t *testing.T) {
	data := []byte(`
id: starter
title: Starter Pack
description: First steps
levels:
  - id: "1"
    name: First Push
    grid:
      - "#####"
      - "#@$.#"
      - "#####"
  - name: Unnamed ID
    grid: ["#####", "#@ $.#", "######"]
  - grid: []
`)

	pack, err := ParseYAML(data)
	if err != nil {
		t.Fatalf("ParseYAML failed: %v", err)
	}

	if pack.ID != "starter" || pack.Title != "Starter Pack" || pack.Description != "First steps" {
		t.Errorf("pack header = %q %q %q", pack.ID, pack.Title, pack.Description)
	}
	if len(pack.Levels) != 2 {
		t.Fatalf("expected 2 levels, got %d", len(pack.Levels))
	}

	first := pack.Levels[0]
	if first.ID != "1" || first.Name != "First Push" {
		t.Errorf("first level = %q %q", first.ID, first.Name)
	}
	if !reflect.DeepEqual(first.Rows, []string{"#####", "#@$.#", "#####"}) {
		t.Errorf("first rows = %q", first.Rows)
	}

	if pack.Levels[1].ID != "2" {
		t.Errorf("second level ID = %q, expected positional \"2\"", pack.Levels[1].ID)
	}
}

func TestParseYAMLErrors(t *testing.T) {
	tests := []struct {
		name string
		data string
		want string
	}{
		{"bad yaml", "id: [", "yaml unmarshal"},
		{"missing id", "title: x\nlevels:\n  - grid: ['@']\n", "missing id"},
		{"no levels", "id: empty\n", "no levels"},
		{"duplicate ids", "id: d\nlevels:\n  - id: a\n    grid: ['@']\n  - id: a\n    grid: ['@']\n", "duplicate"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ParseYAML([]byte(tc.data))
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tc.want) {
				t.Errorf("error %q should contain %q", err, tc.want)
			}
		})
	}
}

func TestParseSOK(t *testing.T) {
	data := []byte("; Title: Tiny Collection\n" +
		"; Description: two levels\n" +
		"\n" +
		"; Corridor\n" +
		"#####\n" +
		"#@$.#\n" +
		"#####\n" +
		"\r\n" +
		"######\r\n" +
		"#@-$.#\r\n" +
		"######\r\n" +
		"; second\r\n" +
		"; ignored\r\n")

	pack, err := ParseSOK("tiny", data)
	if err != nil {
		t.Fatalf("ParseSOK failed: %v", err)
	}

	if pack.ID != "tiny" || pack.Title != "Tiny Collection" || pack.Description != "two levels" {
		t.Errorf("pack header = %q %q %q", pack.ID, pack.Title, pack.Description)
	}
	if len(pack.Levels) != 2 {
		t.Fatalf("expected 2 levels, got %d", len(pack.Levels))
	}

	tests := []struct {
		id, name string
		rows     []string
	}{
		{"1", "Corridor", []string{"#####", "#@$.#", "#####"}},
		{"2", "second", []string{"######", "#@ $.#", "######"}},
	}
	for i, tc := range tests {
		got := pack.Levels[i]
		if got.ID != tc.id || got.Name != tc.name {
			t.Errorf("level %d = %q %q, expected %q %q", i, got.ID, got.Name, tc.id, tc.name)
		}
		if !reflect.DeepEqual(got.Rows, tc.rows) {
			t.Errorf("level %d rows = %q, expected %q", i, got.Rows, tc.rows)
		}
	}
}

func TestParseSOKDefaults(t *testing.T) {
	pack, err := ParseSOK("plain", []byte("####\n#@.#\n####\n"))
	if err != nil {
		t.Fatalf("ParseSOK failed: %v", err)
	}
	if pack.Title != "plain" {
		t.Errorf("Title = %q, expected file id", pack.Title)
	}
	if pack.Levels[0].Name != "Level 1" {
		t.Errorf("Name = %q, expected \"Level 1\"", pack.Levels[0].Name)
	}
}

func TestParseSOKOpenEdgeRows(t *testing.T) {
	data := []byte("; Open Yard\n" +
		"#####\n" +
		" @$. \n" +
		"#####\n" +
		"\n" +
		"; Floating\n" +
		"--$--\n" +
		"#@ .#\n")

	pack, err := ParseSOK("open", data)
	if err != nil {
		t.Fatalf("ParseSOK failed: %v", err)
	}
	if len(pack.Levels) != 2 {
		t.Fatalf("expected 2 levels, got %d", len(pack.Levels))
	}

	tests := []struct {
		name string
		rows []string
	}{
		{"Open Yard", []string{"#####", " @$. ", "#####"}},
		{"Floating", []string{"  $  ", "#@ .#"}},
	}
	for i, tc := range tests {
		got := pack.Levels[i]
		if got.Name != tc.name || !reflect.DeepEqual(got.Rows, tc.rows) {
			t.Errorf("level %d = %q %q, expected %q %q", i, got.Name, got.Rows, tc.name, tc.rows)
		}
	}
}

func TestIsGridLine(t *testing.T) {
	tests := []struct {
		line string
		want bool
	}{
		{"#@$.#", true},
		{" @$. ", true},
		{"--$--", true},
		{"  .  ", true},
		{"-----", false},
		{"     ", false},
		{"Level 1", false},
		{"; #@$.", false},
	}
	for _, tc := range tests {
		if got := isGridLine(tc.line); got != tc.want {
			t.Errorf("isGridLine(%q) = %v, expected %v", tc.line, got, tc.want)
		}
	}
}

func TestParseSOKEmpty(t *testing.T) {
	if _, err := ParseSOK("empty", []byte("; just a comment\n\n")); err == nil {
		t.Error("expected error for pack without levels")
	}
}
