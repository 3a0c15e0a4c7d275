package steps

import (
	"context"

	"github.com/apex/log"

	"github.com/pinit-dev/pinit/cli/journal"
	scaffold_ctx "github.com/pinit-dev/pinit/cli/scaffold/context"
)

// RenderTree represents project tree transformation step.
type RenderTree struct{}

// openJournal creates the actions journal if it is configured.
func openJournal(scaffoldCtx *scaffold_ctx.ScaffoldCtx, projectPath string) *journal.Journal {
	if scaffoldCtx.CliOpts == nil || scaffoldCtx.CliOpts.Journal == nil ||
		scaffoldCtx.CliOpts.Journal.File == "" {
		return nil
	}
	opts := scaffoldCtx.CliOpts.Journal
	return journal.NewJournal(journal.Opts{
		Filename:   opts.File,
		MaxSize:    opts.MaxSize,
		MaxBackups: opts.MaxBackups,
		MaxAge:     opts.MaxAge,
	}, projectPath)
}

// Run renders template files and file names of the project tree.
func (RenderTree) Run(ctx context.Context, scaffoldCtx *scaffold_ctx.ScaffoldCtx,
	projectCtx *ProjectCtx,
) error {
	actionsJournal := openJournal(scaffoldCtx, projectCtx.ProjectPath)
	if actionsJournal != nil {
		defer actionsJournal.Close()
		// Every pass starts a new journal file, the previous ones are kept as backups.
		if err := actionsJournal.Rotate(); err != nil {
			log.Warnf("Failed to rotate the journal: %s", err)
		}
		actionsJournal.Begin()
	}

	transformer, err := NewTransformer(projectCtx, actionsJournal)
	if err != nil {
		return err
	}

	log.Infof("Rendering %s", projectCtx.ProjectPath)
	projectCtx.Result, err = transformer.Run(ctx)
	if actionsJournal != nil {
		actionsJournal.End(err)
	}
	if err != nil {
		return err
	}

	log.Infof("Rendered: %d, moved: %d, unchanged: %d.", projectCtx.Result.Rendered,
		projectCtx.Result.Moved, projectCtx.Result.Unchanged)
	return nil
}
