package tree

import (
	"sort"

	"golang.org/x/exp/maps"
)

const (
	// DefaultTemplateSuffix marks files whose content is a template.
	DefaultTemplateSuffix = ".liquid"
	// VcsMetadataDir is always ignored.
	VcsMetadataDir = ".git"
)

// Entry is a file found by the tree walk.
type Entry struct {
	// Path is the path relative to the walk root, as stored on disk.
	Path string
	// IsDir is true for directories.
	IsDir bool
	// IsTemplate is true if the entry name ends with the template suffix.
	IsTemplate bool
}

// IgnoreSet is a set of base names excluded from the walk with their subtrees.
type IgnoreSet map[string]struct{}

// NewIgnoreSet creates an ignore set of names. VCS metadata directory is always included.
func NewIgnoreSet(names ...string) IgnoreSet {
	ignore := IgnoreSet{VcsMetadataDir: {}}
	for _, name := range names {
		if name != "" {
			ignore[name] = struct{}{}
		}
	}
	return ignore
}

// Contains returns true if name is in the set.
func (ignore IgnoreSet) Contains(name string) bool {
	_, found := ignore[name]
	return found
}

// Names returns sorted names of the set.
func (ignore IgnoreSet) Names() []string {
	names := maps.Keys(ignore)
	sort.Strings(names)
	return names
}
