package steps

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/apex/log"

	scaffold_ctx "github.com/pinit-dev/pinit/cli/scaffold/context"
)

// Cleanup represents scaffold files removal step.
type Cleanup struct{}

// Run removes the scaffold files from the project root. Missing files are skipped,
// so the step may be repeated.
func (Cleanup) Run(_ context.Context, _ *scaffold_ctx.ScaffoldCtx,
	projectCtx *ProjectCtx,
) error {
	for _, fileName := range projectCtx.Render.ScaffoldFiles {
		fullPath := filepath.Join(projectCtx.ProjectPath, fileName)
		log.Debugf("Removing %s", fullPath)
		if err := os.RemoveAll(fullPath); err != nil && !errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("cleanup failed: %w", err)
		}
	}
	return nil
}
