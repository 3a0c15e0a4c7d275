package tree

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWalk(t *testing.T) {
	workDir := t.TempDir()
	writeTree(t, workDir, map[string]string{
		"b/{{name}}.liquid": "",
		"a.txt":             "",
		"b/c/d.txt":         "",
		".git/HEAD":         "",
		".git/refs/main":    "",
		"vendor/lib.liquid": "",
		"sub/vendor/x.txt":  "",
		"sub/vendor.liquid": "",
	})

	snapshot, err := Walk(workDir, NewIgnoreSet("vendor"), DefaultTemplateSuffix)
	require.NoError(t, err)

	assert.Equal(t, []Entry{
		{Path: "a.txt"},
		{Path: filepath.Join("b", "c", "d.txt")},
		{Path: filepath.Join("b", "{{name}}.liquid"), IsTemplate: true},
		{Path: filepath.Join("sub", "vendor.liquid"), IsTemplate: true},
	}, snapshot.Entries)
	assert.Equal(t, []Entry{
		{Path: "b", IsDir: true},
		{Path: filepath.Join("b", "c"), IsDir: true},
		{Path: "sub", IsDir: true},
	}, snapshot.Dirs)
}

func TestWalkEmptyAndMissing(t *testing.T) {
	snapshot, err := Walk(t.TempDir(), NewIgnoreSet(), DefaultTemplateSuffix)
	require.NoError(t, err)
	assert.Empty(t, snapshot.Entries)
	assert.Empty(t, snapshot.Dirs)

	_, err = Walk(filepath.Join(t.TempDir(), "missing"), NewIgnoreSet(), DefaultTemplateSuffix)
	var fsErr *FilesystemError
	require.ErrorAs(t, err, &fsErr)
	assert.Equal(t, "walk", fsErr.Op)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestIgnoreSet(t *testing.T) {
	ignore := NewIgnoreSet("node_modules", "", ".git")
	assert.True(t, ignore.Contains(".git"))
	assert.True(t, ignore.Contains("node_modules"))
	assert.False(t, ignore.Contains(""))
	assert.Equal(t, []string{".git", "node_modules"}, ignore.Names())
}
