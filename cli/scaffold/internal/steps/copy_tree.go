package steps

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/apex/log"
	"github.com/otiai10/copy"

	scaffold_ctx "github.com/pinit-dev/pinit/cli/scaffold/context"
)

const defaultPermissions = os.FileMode(0o755)

// CopyTree represents project template copy step.
type CopyTree struct{}

// Run copies the project template to the destination directory if it is set.
// Ignored entries are not copied.
func (CopyTree) Run(_ context.Context, scaffoldCtx *scaffold_ctx.ScaffoldCtx,
	projectCtx *ProjectCtx,
) error {
	if scaffoldCtx.DestinationDir == "" {
		log.Debug("No destination directory. The project is transformed in place.")
		projectCtx.ProjectPath = scaffoldCtx.ProjectDir
		return nil
	}

	dst, err := filepath.Abs(scaffoldCtx.DestinationDir)
	if err != nil {
		return err
	}
	src, err := filepath.Abs(scaffoldCtx.ProjectDir)
	if err != nil {
		return err
	}
	if rel, err := filepath.Rel(src, dst); err == nil && rel != ".." &&
		!strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return fmt.Errorf("destination directory %q is inside the project template", dst)
	}
	if entries, err := os.ReadDir(dst); err == nil && len(entries) > 0 {
		return fmt.Errorf("destination directory %q is not empty", dst)
	}

	log.Infof("Copying %s to %s", src, dst)
	ignore := projectCtx.Render.Ignore
	err = copy.Copy(src, dst, copy.Options{
		Skip: func(srcinfo os.FileInfo, path, _ string) (bool, error) {
			return path != src && ignore.Contains(srcinfo.Name()), nil
		},
		OnSymlink: func(string) copy.SymlinkAction { return copy.Shallow },
	})
	if err != nil {
		return fmt.Errorf("project template copying failed: %w", err)
	}
	if err = os.Chmod(dst, defaultPermissions); err != nil {
		return fmt.Errorf("failed to change permissions of %s: %w", dst, err)
	}

	projectCtx.ProjectPath = dst
	return nil
}
