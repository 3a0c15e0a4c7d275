package tree

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/otiai10/copy"
	"golang.org/x/sys/unix"

	"github.com/pinit-dev/pinit/cli/templates"
	"github.com/pinit-dev/pinit/cli/util"
)

const dirPermissions = 0o755

func ensureDir(dir string) error {
	if err := util.CreateDirectory(dir, dirPermissions); err != nil {
		return &FilesystemError{Op: "mkdir", Path: dir, Err: err}
	}
	return nil
}

// renderFile renders src to a temporary file next to dst and renames it to dst,
// so dst is either absent, old or completely rendered.
func renderFile(engine templates.TemplateEngine, src, dst string, data any) error {
	tmpPath := filepath.Join(filepath.Dir(dst),
		fmt.Sprintf(".%s.%s.tmp", filepath.Base(dst), uuid.NewString()))

	if err := engine.RenderFile(src, tmpPath, data); err != nil {
		os.Remove(tmpPath)
		var fileErr *templates.FileError
		if errors.As(err, &fileErr) {
			return &FilesystemError{Op: fileErr.Op, Path: fileErr.Path, Err: fileErr.Err}
		}
		return err
	}
	if err := os.Rename(tmpPath, dst); err != nil {
		os.Remove(tmpPath)
		return &FilesystemError{Op: "rename", Path: dst, Err: err}
	}
	return nil
}

// moveFile renames src to dst. Entries on different devices are copied and removed.
func moveFile(src, dst string) error {
	err := os.Rename(src, dst)
	if err == nil {
		return nil
	}
	if !errors.Is(err, unix.EXDEV) {
		return &FilesystemError{Op: "rename", Path: src, Err: err}
	}

	if err = copy.Copy(src, dst, copy.Options{
		OnSymlink:     func(string) copy.SymlinkAction { return copy.Shallow },
		PreserveTimes: true,
	}); err != nil {
		return &FilesystemError{Op: "copy", Path: src, Err: err}
	}
	if err = os.RemoveAll(src); err != nil {
		return &FilesystemError{Op: "remove", Path: src, Err: err}
	}
	return nil
}
