// Package scaffold turns a project template directory into a project.
package scaffold

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/apex/log"

	"github.com/pinit-dev/pinit/cli/config"
	scaffold_ctx "github.com/pinit-dev/pinit/cli/scaffold/context"
	"github.com/pinit-dev/pinit/cli/scaffold/internal/steps"
	"github.com/pinit-dev/pinit/cli/util"
	"github.com/pinit-dev/pinit/cli/version"
)

// Confirmer asks the user to confirm the properties. The terminal prompt is
// used if it is nil.
type Confirmer = steps.Confirmer

// FillCtx fills scaffold context.
func FillCtx(cliOpts *config.CliOpts, scaffoldCtx *scaffold_ctx.ScaffoldCtx,
	projectDir string,
) error {
	var err error
	if scaffoldCtx.ProjectDir, err = filepath.Abs(projectDir); err != nil {
		return err
	}
	if !util.IsDir(scaffoldCtx.ProjectDir) {
		return util.NewArgError(fmt.Sprintf("%q is not a directory", projectDir))
	}

	if scaffoldCtx.PropertiesFile == "" {
		scaffoldCtx.PropertiesFile = cliOpts.Properties
	} else {
		scaffoldCtx.PropertiesFileSet = true
		if scaffoldCtx.PropertiesFile, err = filepath.Abs(scaffoldCtx.PropertiesFile); err != nil {
			return err
		}
	}
	scaffoldCtx.CliOpts = cliOpts
	return nil
}

// checkCtx checks scaffold context for validity.
func checkCtx(scaffoldCtx *scaffold_ctx.ScaffoldCtx) error {
	if scaffoldCtx.ProjectDir == "" {
		return fmt.Errorf("project directory is missing")
	}
	if scaffoldCtx.CliOpts == nil {
		return fmt.Errorf("configuration is missing")
	}
	return nil
}

// Run transforms the project template into a project. The scaffold files are
// removed and the post commands are run only if the whole tree is transformed.
func Run(ctx context.Context, scaffoldCtx *scaffold_ctx.ScaffoldCtx,
	confirmer Confirmer,
) error {
	if err := checkCtx(scaffoldCtx); err != nil {
		return util.InternalError("Scaffold context check failed: %s", version.GetVersion, err)
	}

	stepsChain := []steps.Step{
		steps.EditProperties{},
		steps.LoadProperties{},
		steps.ConfirmProperties{Confirmer: confirmer},
		steps.CopyTree{},
		steps.RenderTree{},
		steps.Cleanup{},
		steps.RunPostCommands{},
	}

	projectCtx := steps.NewProjectContext(scaffoldCtx)
	for _, step := range stepsChain {
		if err := step.Run(ctx, scaffoldCtx, &projectCtx); err != nil {
			return err
		}
	}

	log.Infof("Project is ready in %s", projectCtx.ProjectPath)
	return nil
}
