package steps

import (
	"context"
	"fmt"

	"github.com/apex/log"

	scaffold_ctx "github.com/pinit-dev/pinit/cli/scaffold/context"
	"github.com/pinit-dev/pinit/cli/util"
)

// RunPostCommands represents post commands execution step.
type RunPostCommands struct{}

// Run executes the configured commands in the project directory one by one.
// The first failed command fails the step.
func (RunPostCommands) Run(ctx context.Context, scaffoldCtx *scaffold_ctx.ScaffoldCtx,
	projectCtx *ProjectCtx,
) error {
	if scaffoldCtx.CliOpts == nil {
		return nil
	}
	for _, command := range scaffoldCtx.CliOpts.PostCommands {
		if err := ctx.Err(); err != nil {
			return err
		}
		log.Infof("Running %s", command)
		if err := util.RunShellCommand(command, projectCtx.ProjectPath,
			scaffoldCtx.Verbose); err != nil {
			return fmt.Errorf("post command failed: %w", err)
		}
	}
	return nil
}
