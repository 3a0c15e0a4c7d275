package steps

import (
	"github.com/pinit-dev/pinit/cli/journal"
	"github.com/pinit-dev/pinit/cli/properties"
	scaffold_ctx "github.com/pinit-dev/pinit/cli/scaffold/context"
	"github.com/pinit-dev/pinit/cli/templates"
	"github.com/pinit-dev/pinit/cli/tree"
)

// ProjectCtx contains an information required for the project tree transformation.
type ProjectCtx struct {
	// ProjectPath is a path to the directory transformed in place.
	ProjectPath string
	// Properties is a loaded properties map. It is not modified after loading.
	Properties properties.PropertyMap
	// Render is a render context built from the config.
	Render scaffold_ctx.RenderContext
	// Engine is a template engine to use for file names and contents.
	Engine templates.TemplateEngine
	// Result is a transformation summary.
	Result tree.Result
}

// NewProjectContext creates new project context.
func NewProjectContext(scaffoldCtx *scaffold_ctx.ScaffoldCtx) ProjectCtx {
	renderCtx := scaffold_ctx.NewRenderContext(scaffoldCtx.CliOpts, scaffoldCtx.Strict)
	return ProjectCtx{
		ProjectPath: scaffoldCtx.ProjectDir,
		Properties:  properties.PropertyMap{},
		Render:      renderCtx,
		Engine:      renderCtx.Engine(),
	}
}

// NewTransformer creates a transformer of the project tree.
func NewTransformer(projectCtx *ProjectCtx, recorder *journal.Journal) (*tree.Transformer, error) {
	opts := tree.Opts{
		Engine:         projectCtx.Engine,
		Data:           map[string]any(projectCtx.Properties),
		TemplateSuffix: projectCtx.Render.TemplateSuffix,
		Ignore:         projectCtx.Render.Ignore,
		OnConflict:     projectCtx.Render.OnConflict,
	}
	if recorder != nil {
		opts.Recorder = recorder
	}
	return tree.NewTransformer(projectCtx.ProjectPath, opts)
}
