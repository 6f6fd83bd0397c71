// Package pathindex builds a name-keyed index over the files of an archive
// working directory.
//
// Names are not unique in a directory tree, so the index maps each file name
// to every path carrying it and callers disambiguate. Synthetic keys (for
// the root, the located manifest, the standardized output file) share the
// namespace with file names, mirroring the archive path map this index
// descends from.
package pathindex

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// KeyRoot resolves to the indexed top directory.
const KeyRoot = "root"

// Index maps a file name or synthetic key to the absolute paths it resolves
// to. It is a point-in-time snapshot; mutate the filesystem and the index is
// stale until rebuilt.
type Index map[string][]string

// Build walks dir recursively and indexes every regular file by name, plus
// KeyRoot for dir itself.
func Build(dir string) (Index, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("index %s: %w", dir, err)
	}

	idx := Index{KeyRoot: {abs}}
	err = filepath.Walk(abs, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.Mode().IsRegular() {
			idx.add(info.Name(), path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("index %s: %w", dir, err)
	}
	return idx, nil
}

func (idx Index) add(key, path string) {
	idx[key] = append(idx[key], path)
}

// Set binds a synthetic key to a single path, replacing any previous
// binding.
func (idx Index) Set(key, path string) {
	idx[key] = []string{path}
}

// Root returns the indexed top directory.
func (idx Index) Root() string {
	paths := idx[KeyRoot]
	if len(paths) == 0 {
		return ""
	}
	return paths[0]
}

// Lookup returns every path bound to key.
func (idx Index) Lookup(key string) []string {
	return idx[key]
}

// Unique returns the single path bound to key. It fails when the key is
// absent or when more than one path carries the name.
func (idx Index) Unique(key string) (string, error) {
	paths := idx[key]
	switch len(paths) {
	case 0:
		return "", fmt.Errorf("no file named %q in archive", key)
	case 1:
		return paths[0], nil
	default:
		return "", fmt.Errorf("%d files named %q in archive", len(paths), key)
	}
}

// Match returns every indexed path whose file name contains substr, sorted.
// KeyRoot is skipped, and paths are deduplicated across keys, so a path
// bound both under its file name and under a synthetic key counts once.
func (idx Index) Match(substr string) []string {
	seen := map[string]struct{}{}
	var matches []string
	for key, paths := range idx {
		if key == KeyRoot {
			continue
		}
		for _, p := range paths {
			if _, dup := seen[p]; dup {
				continue
			}
			if strings.Contains(filepath.Base(p), substr) {
				seen[p] = struct{}{}
				matches = append(matches, p)
			}
		}
	}
	sort.Strings(matches)
	return matches
}

// Names returns the sorted key set.
func (idx Index) Names() []string {
	names := make([]string, 0, len(idx))
	for k := range idx {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}
