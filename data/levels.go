package data

import (
	"bytes"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	"github.com/samdwyer/sokoban/internal/board"
)

const (
	levelDir = "levels"
	levelExt = ".lvl"
)

// Names returns the names of all embedded levels, sorted, without the
// file extension.
func Names() []string {
	entries, err := fs.ReadDir(levelFS, levelDir)
	if err != nil {
		return nil
	}

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() || path.Ext(e.Name()) != levelExt {
			continue
		}
		names = append(names, strings.TrimSuffix(e.Name(), levelExt))
	}
	sort.Strings(names)
	return names
}

// Source returns the raw text of the named level.
func Source(name string) ([]byte, error) {
	filename := path.Join(levelDir, name+levelExt)
	content, err := levelFS.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read embedded level %s: %w", name, err)
	}
	return content, nil
}

// Level parses the named level into a fresh board.
func Level(name string) (*board.Board, error) {
	content, err := Source(name)
	if err != nil {
		return nil, err
	}

	b, err := board.Parse(bytes.NewReader(content))
	if err != nil {
		return nil, fmt.Errorf("failed to parse embedded level %s: %w", name, err)
	}
	return b, nil
}

// MustLevel parses the named level, panicking on error.
// Use this for levels that must be present, such as in tests.
func MustLevel(name string) *board.Board {
	b, err := Level(name)
	if err != nil {
		panic(err)
	}
	return b
}
