package tree

import (
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/apex/log"
)

// Snapshot is the result of a tree walk. It is fully built before any
// modification of the tree, so the entries created by a transform are never
// visited by the same pass.
type Snapshot struct {
	// Entries are non-directory entries in depth-first lexical order.
	Entries []Entry
	// Dirs are the walked directories, parents before children. The root is not included.
	Dirs []Entry
}

// Walk collects entries under root. Entries with names from ignore are skipped,
// ignored directories are not descended into.
func Walk(root string, ignore IgnoreSet, templateSuffix string) (Snapshot, error) {
	var snapshot Snapshot
	err := filepath.WalkDir(root, func(filePath string, dirEntry fs.DirEntry, err error) error {
		if err != nil {
			return &FilesystemError{Op: "walk", Path: filePath, Err: err}
		}
		if filePath == root {
			return nil
		}

		if ignore.Contains(dirEntry.Name()) {
			log.Debugf("Skipping ignored %s", filePath)
			if dirEntry.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}

		relPath, err := filepath.Rel(root, filePath)
		if err != nil {
			return &FilesystemError{Op: "walk", Path: filePath, Err: err}
		}

		if dirEntry.IsDir() {
			snapshot.Dirs = append(snapshot.Dirs, Entry{Path: relPath, IsDir: true})
			return nil
		}
		snapshot.Entries = append(snapshot.Entries, Entry{
			Path:       relPath,
			IsTemplate: templateSuffix != "" && strings.HasSuffix(dirEntry.Name(), templateSuffix),
		})
		return nil
	})
	if err != nil {
		return Snapshot{}, err
	}
	return snapshot, nil
}
