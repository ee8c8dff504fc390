package sceneio

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// DiscoverSceneFiles resolves a CLI path argument to the list of scene
// files to render: the path itself if it names a single file, or
// every ".json" scene file found by walking it recursively if it
// names a directory. Results are sorted for deterministic ordering.
func DiscoverSceneFiles(path string) ([]string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, err
	}
	if !info.IsDir() {
		return []string{path}, nil
	}

	var found []string
	err = filepath.WalkDir(path, func(p string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if strings.EqualFold(filepath.Ext(p), ".json") {
			found = append(found, p)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Strings(found)
	return found, nil
}
