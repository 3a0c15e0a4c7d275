package engines

import (
	"errors"
	"fmt"

	"github.com/alecthomas/participle/v2"
)

// TemplateSyntaxError is returned when a template contains a malformed tag.
type TemplateSyntaxError struct {
	// Name is a template name, usually a file path.
	Name string
	// Line and Column point to the offending token.
	Line   int
	Column int
	// Msg is a parser message.
	Msg string
}

// Error returns error message.
func (e *TemplateSyntaxError) Error() string {
	return fmt.Sprintf("template syntax error: %s", location(e.Name, e.Line, e.Column, e.Msg))
}

// UnknownFilterError is returned when a tag refers to a filter missing in the registry.
type UnknownFilterError struct {
	Name   string
	Line   int
	Column int
	// Filter is the unknown filter name.
	Filter string
}

// Error returns error message.
func (e *UnknownFilterError) Error() string {
	return fmt.Sprintf("unknown filter: %s",
		location(e.Name, e.Line, e.Column, fmt.Sprintf("%q", e.Filter)))
}

// UndefinedVariableError is returned in strict mode for a reference to a missing key.
type UndefinedVariableError struct {
	Name   string
	Line   int
	Column int
	// Variable is the dotted path of the missing variable.
	Variable string
}

// Error returns error message.
func (e *UndefinedVariableError) Error() string {
	return fmt.Sprintf("undefined variable: %s",
		location(e.Name, e.Line, e.Column, fmt.Sprintf("%q", e.Variable)))
}

// FileError is returned when a template file cannot be read or its result
// cannot be written.
type FileError struct {
	// Op is the failed operation: "stat", "read", "write" or "chmod".
	Op   string
	Path string
	Err  error
}

// Error returns error message.
func (e *FileError) Error() string {
	return fmt.Sprintf("%s %s: %s", e.Op, e.Path, e.Err)
}

// Unwrap returns the underlying error.
func (e *FileError) Unwrap() error {
	return e.Err
}

func location(name string, line, column int, msg string) string {
	if name == "" {
		return fmt.Sprintf("%d:%d: %s", line, column, msg)
	}
	return fmt.Sprintf("%s:%d:%d: %s", name, line, column, msg)
}

// newSyntaxError converts parser and lexer errors to TemplateSyntaxError.
func newSyntaxError(name string, err error) error {
	var parseErr participle.Error
	if errors.As(err, &parseErr) {
		pos := parseErr.Position()
		return &TemplateSyntaxError{
			Name:   name,
			Line:   pos.Line,
			Column: pos.Column,
			Msg:    parseErr.Message(),
		}
	}
	return &TemplateSyntaxError{Name: name, Msg: err.Error()}
}
