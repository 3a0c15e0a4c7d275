package engines

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
)

// FilterFunc is a named text transform applied by "{{ value | name }}".
type FilterFunc = func(string) string

// LiquidEngine renders templates with Liquid-style output tags:
// "{{ path.to.value | filter | other_filter }}".
type LiquidEngine struct {
	filters map[string]FilterFunc
	// strict turns references to missing variables into errors.
	strict bool
}

// NewLiquidEngine creates a template engine using filters registry.
func NewLiquidEngine(filters map[string]FilterFunc, strict bool) LiquidEngine {
	return LiquidEngine{filters: filters, strict: strict}
}

// RenderFile renders srcPath template to dstPath. The destination file gets the
// permissions of the source file. Nothing is written if rendering fails.
func (engine LiquidEngine) RenderFile(srcPath string, dstPath string, data interface{}) error {
	stat, err := os.Stat(srcPath)
	if err != nil {
		return &FileError{Op: "stat", Path: srcPath, Err: err}
	}

	content, err := os.ReadFile(srcPath)
	if err != nil {
		return &FileError{Op: "read", Path: srcPath, Err: err}
	}

	rendered, err := engine.render(filepath.Base(srcPath), string(content), data)
	if err != nil {
		return err
	}

	if err = os.WriteFile(dstPath, []byte(rendered), stat.Mode().Perm()); err != nil {
		return &FileError{Op: "write", Path: dstPath, Err: err}
	}
	// WriteFile applies umask, restore the origin mode.
	if err = os.Chmod(dstPath, stat.Mode().Perm()); err != nil {
		return &FileError{Op: "chmod", Path: dstPath, Err: err}
	}
	return nil
}

// RenderText renders in text.
func (engine LiquidEngine) RenderText(in string, data interface{}) (string, error) {
	return engine.render("", in, data)
}

func (engine LiquidEngine) render(name string, in string, data interface{}) (string, error) {
	parsed, err := templateParser.ParseString(name, in)
	if err != nil {
		return "", newSyntaxError(name, err)
	}

	// Check all filters before producing any output.
	for _, p := range parsed.Parts {
		if p.Output == nil {
			continue
		}
		for _, f := range p.Output.Filters {
			if _, found := engine.filters[f.Name]; !found {
				return "", &UnknownFilterError{
					Name:   name,
					Line:   f.Pos.Line,
					Column: f.Pos.Column,
					Filter: f.Name,
				}
			}
		}
	}

	var buffer bytes.Buffer
	for _, p := range parsed.Parts {
		if p.Text != nil {
			buffer.WriteString(*p.Text)
			continue
		}
		text, err := engine.evalOutput(name, p.Output, data)
		if err != nil {
			return "", err
		}
		buffer.WriteString(text)
	}
	return buffer.String(), nil
}

// evalOutput computes the value of a single output tag.
func (engine LiquidEngine) evalOutput(name string, out *output, data interface{}) (string, error) {
	var text string
	switch val := out.Value; {
	case val.String != nil:
		text = *val.String
	case val.Int != nil:
		n, err := strconv.Atoi(*val.Int)
		if err != nil {
			return "", &TemplateSyntaxError{
				Name:   name,
				Line:   out.Pos.Line,
				Column: out.Pos.Column,
				Msg:    fmt.Sprintf("invalid number %q", *val.Int),
			}
		}
		text = strconv.Itoa(n)
	case val.Path != nil:
		found, ok := lookup(data, val.Path)
		if !ok && engine.strict {
			return "", &UndefinedVariableError{
				Name:     name,
				Line:     out.Pos.Line,
				Column:   out.Pos.Column,
				Variable: val.Path.String(),
			}
		}
		text = stringify(found)
	}

	for _, f := range out.Filters {
		text = engine.filters[f.Name](text)
	}
	return text, nil
}
