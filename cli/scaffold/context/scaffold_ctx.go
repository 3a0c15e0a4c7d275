package scaffold_ctx

import (
	"github.com/pinit-dev/pinit/cli/config"
	"github.com/pinit-dev/pinit/cli/templates"
	"github.com/pinit-dev/pinit/cli/tree"
)

// ScaffoldCtx contains information for turning a project template into a project.
type ScaffoldCtx struct {
	// ProjectDir is the project template directory.
	ProjectDir string
	// DestinationDir is the directory the template is copied to before the
	// transformation. The template is transformed in place if it is empty.
	DestinationDir string
	// PropertiesFile is a path to the properties file.
	PropertiesFile string
	// PropertiesFileSet is true if the properties file is set in the command line,
	// it must exist in this case.
	PropertiesFileSet bool
	// VarsFromCli are property definitions provided in command line.
	VarsFromCli []string
	// SkipConfirm disables the properties confirmation prompt.
	SkipConfirm bool
	// EditProperties opens the properties file in the editor before loading.
	EditProperties bool
	// Strict makes references to missing properties an error.
	Strict bool
	// Verbose shows the output of the post commands.
	Verbose bool
	// CliOpts is loaded pinit config.
	CliOpts *config.CliOpts
}

// RenderContext bundles everything the transformation needs besides the properties.
// It is built once per run and passed explicitly.
type RenderContext struct {
	// Filters is a filters registry of the template engine.
	Filters templates.Filters
	// Ignore is a set of names excluded from the transformation.
	Ignore tree.IgnoreSet
	// ScaffoldFiles are removed after a successful transformation.
	ScaffoldFiles []string
	// TemplateSuffix marks template files.
	TemplateSuffix string
	// OnConflict is a policy for existing destinations.
	OnConflict tree.ConflictPolicy
	// Strict makes references to missing properties an error.
	Strict bool
}

// NewRenderContext creates render context from the config.
func NewRenderContext(cliOpts *config.CliOpts, strict bool) RenderContext {
	return RenderContext{
		Filters:        templates.NewDefaultFilters(),
		Ignore:         tree.NewIgnoreSet(cliOpts.Ignore...),
		ScaffoldFiles:  append([]string{}, cliOpts.ScaffoldFiles...),
		TemplateSuffix: cliOpts.TemplateSuffix,
		OnConflict:     tree.ConflictPolicy(cliOpts.OnConflict),
		Strict:         strict || cliOpts.StrictVariables,
	}
}

// Engine creates a template engine for the context.
func (renderCtx RenderContext) Engine() templates.TemplateEngine {
	return templates.NewEngine(templates.EngineOpts{
		Filters: renderCtx.Filters,
		Strict:  renderCtx.Strict,
	})
}
