package source

import (
	"os"
	"path/filepath"
	"sprout/types"
	"strings"
)

// DefaultProgram is tried when no program path is given
const DefaultProgram = "test.spt"

// maxParentLevels bounds the upward search for relative paths
const maxParentLevels = 10

// Program is a located program text
type Program struct {
	Path string
	Text []byte
}

// Arg converts a command-line argument to a candidate path.
// "@file:path" names a file; other '@' markers are ignored.
func Arg(arg string) (string, bool) {
	if strings.HasPrefix(arg, "@file:") {
		return strings.TrimPrefix(arg, "@file:"), true
	}
	if arg == "" || strings.HasPrefix(arg, "@") {
		return "", false
	}
	return arg, true
}

// Candidates turns command-line arguments into the paths to try, falling
// back to DefaultProgram
func Candidates(args []string) []string {
	var candidates []string
	for _, arg := range args {
		if path, ok := Arg(arg); ok {
			candidates = append(candidates, path)
		}
	}
	if len(candidates) == 0 {
		candidates = append(candidates, DefaultProgram)
	}
	return candidates
}

// Resolve finds a relative path in the working directory or one of its
// parents. Absolute paths are returned as they are.
func Resolve(rel string) (string, bool) {
	if filepath.IsAbs(rel) {
		if _, err := os.Stat(rel); err == nil {
			return rel, true
		}
		return rel, false
	}

	cwd, err := os.Getwd()
	if err != nil {
		return rel, false
	}
	for i := 0; i < maxParentLevels; i++ {
		candidate := filepath.Join(cwd, rel)
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			return candidate, true
		}
		parent := filepath.Dir(cwd)
		if parent == cwd {
			break
		}
		cwd = parent
	}
	return rel, false
}

// Load reads the first candidate that can be found.
// When none exists the error has code E_FILE and lists what was tried.
func Load(candidates []string) (*Program, error) {
	for _, candidate := range candidates {
		path, ok := Resolve(candidate)
		if !ok {
			continue
		}
		text, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		return &Program{Path: path, Text: text}, nil
	}
	return nil, types.NewError(types.E_FILE, "tried %s", strings.Join(candidates, " "))
}
