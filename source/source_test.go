package source

import (
	"errors"
	"os"
	"path/filepath"
	"sprout/types"
	"testing"
)

func TestCandidates(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		expected []string
	}{
		{"none", nil, []string{DefaultProgram}},
		{"plain", []string{"a.spt"}, []string{"a.spt"}},
		{"file marker", []string{"@file:b.spt", "@thisFile", "c.spt"}, []string{"b.spt", "c.spt"}},
		{"only markers", []string{"@thisFile", ""}, []string{DefaultProgram}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Candidates(tt.args)
			if len(got) != len(tt.expected) {
				t.Fatalf("Expected %v, got %v", tt.expected, got)
			}
			for i := range got {
				if got[i] != tt.expected[i] {
					t.Errorf("Candidate %d: expected %q, got %q", i, tt.expected[i], got[i])
				}
			}
		})
	}
}

func TestLoadAbsolute(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "prog.spt")
	if err := os.WriteFile(path, []byte("print: hi\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	prog, err := Load([]string{filepath.Join(dir, "missing.spt"), path})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if prog.Path != path || string(prog.Text) != "print: hi\n" {
		t.Errorf("Unexpected program %+v", prog)
	}
}

func TestLoadSearchesParents(t *testing.T) {
	root := t.TempDir()
	if err := os.WriteFile(filepath.Join(root, "up.spt"), []byte("print: up\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	nested := filepath.Join(root, "a", "b")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatal(err)
	}

	wd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(nested); err != nil {
		t.Fatal(err)
	}
	defer os.Chdir(wd)

	prog, err := Load([]string{"up.spt"})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if string(prog.Text) != "print: up\n" {
		t.Errorf("Unexpected text %q", prog.Text)
	}
}

func TestLoadNotFound(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "nope.spt")
	_, err := Load([]string{missing})
	if !errors.Is(err, types.ErrSourceNotFound) {
		t.Fatalf("Expected E_FILE, got %v", err)
	}
}
