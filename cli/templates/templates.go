// Package templates provides the template engine used to render project file
// contents and file names.
package templates

import (
	"github.com/pinit-dev/pinit/cli/templates/internal/engines"
)

// TemplateEngine is an interface to support to use for project template instantiation.
type TemplateEngine interface {
	// RenderFile applies data to the template from srcPath.
	// Instantiated template is saved as dstPath.
	RenderFile(srcPath, dstPath string, data interface{}) error

	// RenderText applies data to the template text. Returns instantiated text.
	RenderText(in string, data interface{}) (string, error)
}

// Error kinds reported by the template engine.
type (
	// TemplateSyntaxError is a malformed "{{ }}" tag.
	TemplateSyntaxError = engines.TemplateSyntaxError
	// UnknownFilterError is a reference to a filter missing in the registry.
	UnknownFilterError = engines.UnknownFilterError
	// UndefinedVariableError is a reference to a missing variable in strict mode.
	UndefinedVariableError = engines.UndefinedVariableError
	// FileError is a failure to read a template file or write its result.
	FileError = engines.FileError
)

// EngineOpts describes template engine options.
type EngineOpts struct {
	// Filters is a filters registry. Default filters are used if nil.
	Filters Filters
	// Strict makes references to missing variables an error instead of
	// rendering them as empty strings.
	Strict bool
}

// NewEngine creates a template engine with the specified options.
func NewEngine(opts EngineOpts) TemplateEngine {
	filters := opts.Filters
	if filters == nil {
		filters = NewDefaultFilters()
	}
	return engines.NewLiquidEngine(filters, opts.Strict)
}

// NewDefaultEngine creates and returns default template engine.
func NewDefaultEngine() TemplateEngine {
	return NewEngine(EngineOpts{})
}
