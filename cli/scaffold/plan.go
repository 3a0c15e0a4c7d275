package scaffold

import (
	"context"

	scaffold_ctx "github.com/pinit-dev/pinit/cli/scaffold/context"
	"github.com/pinit-dev/pinit/cli/scaffold/internal/steps"
	"github.com/pinit-dev/pinit/cli/tree"
)

// PlanItem is a planned action with an optional content diff.
type PlanItem struct {
	tree.Plan
	// Diff is a unified diff of the template and its rendered content.
	Diff string
}

// Plan computes the actions for the project template without modifying it.
// Diffs are computed for rendered files if withDiff is set.
func Plan(ctx context.Context, scaffoldCtx *scaffold_ctx.ScaffoldCtx,
	withDiff bool,
) ([]PlanItem, error) {
	if err := checkCtx(scaffoldCtx); err != nil {
		return nil, err
	}

	projectCtx := steps.NewProjectContext(scaffoldCtx)
	if err := (steps.LoadProperties{}).Run(ctx, scaffoldCtx, &projectCtx); err != nil {
		return nil, err
	}

	transformer, err := steps.NewTransformer(&projectCtx, nil)
	if err != nil {
		return nil, err
	}
	plans, err := transformer.PlanTree()
	if err != nil {
		return nil, err
	}

	items := make([]PlanItem, 0, len(plans))
	for _, plan := range plans {
		item := PlanItem{Plan: plan}
		if withDiff {
			if item.Diff, err = transformer.Diff(plan); err != nil {
				return nil, err
			}
		}
		items = append(items, item)
	}
	return items, nil
}
