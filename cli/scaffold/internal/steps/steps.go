// Package steps provides a set of handlers for the scaffold command chain of responsibility.
package steps

import (
	"context"

	scaffold_ctx "github.com/pinit-dev/pinit/cli/scaffold/context"
)

// Step is an interface for single step in scaffold chain.
type Step interface {
	Run(ctx context.Context, scaffoldCtx *scaffold_ctx.ScaffoldCtx, projectCtx *ProjectCtx) error
}
