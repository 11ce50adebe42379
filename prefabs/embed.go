package prefabs

import (
	"embed"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"
)

// Tuning and rule scripts are built into the binary. A copy under ./prefabs
// on disk shadows the built-in one, which is what --watch edits.
//
//go:embed *.yaml scripts/*.tengo
var files embed.FS

// Load returns a prefab file by name, relative to prefabs/.
func Load(name string) ([]byte, error) {
	rel, err := prefabPath(name)
	if err != nil {
		return nil, err
	}
	return read(rel)
}

// LoadScript returns a rule script. The scripts/ directory is implied.
func LoadScript(name string) ([]byte, error) {
	rel, err := scriptPath(name)
	if err != nil {
		return nil, err
	}
	return read(rel)
}

func read(rel string) ([]byte, error) {
	if data, err := os.ReadFile(filepath.Join("prefabs", filepath.FromSlash(rel))); err == nil {
		return data, nil
	}
	return files.ReadFile(rel)
}

// prefabPath turns a name such as "prefabs/player.yaml" or "player.yaml"
// into a slash path below prefabs/. Names that climb out are rejected.
func prefabPath(name string) (string, error) {
	s := path.Clean(filepath.ToSlash(name))
	s = strings.TrimPrefix(s, "prefabs/")
	if name == "" || s == "." || s == ".." || strings.HasPrefix(s, "../") || path.IsAbs(s) {
		return "", fmt.Errorf("prefabs: bad name %q", name)
	}
	return s, nil
}

func scriptPath(name string) (string, error) {
	s, err := prefabPath(name)
	if err != nil {
		return "", err
	}
	return path.Join("scripts", strings.TrimPrefix(s, "scripts/")), nil
}
