package templates

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

// FilterFunc is a pure text transform usable in a template: "{{ value | name }}".
type FilterFunc = func(string) string

// Filters is a registry of named filters.
type Filters map[string]FilterFunc

const (
	// AsPathFilter turns a dotted namespace into a directory path.
	AsPathFilter = "as_path"
	// AsJavaClassFilter turns an identifier into an UpperCamelCase class name.
	AsJavaClassFilter = "as_java_class"
)

// NewDefaultFilters creates a registry with the name mangling filters and the
// common text filters.
func NewDefaultFilters() Filters {
	return Filters{
		AsPathFilter:      AsPath,
		AsJavaClassFilter: AsJavaClass,
		"upcase":          strings.ToUpper,
		"downcase":        strings.ToLower,
		"capitalize":      Capitalize,
		"strip":           strings.TrimSpace,
	}
}

// Register adds a filter to the registry. Registering a name twice replaces
// the previous filter.
func (filters Filters) Register(name string, filter FilterFunc) error {
	if name == "" {
		return fmt.Errorf("filter name is empty")
	}
	if filter == nil {
		return fmt.Errorf("filter %q is nil", name)
	}
	filters[name] = filter
	return nil
}

// AsPath replaces every dot with a path separator and removes dashes:
// "com.example-corp.app" becomes "com/examplecorp/app".
func AsPath(in string) string {
	return strings.ReplaceAll(strings.ReplaceAll(in, ".", "/"), "-", "")
}

// AsJavaClass converts kebab, dot or snake case identifier to UpperCamelCase:
// "my-app.module_name" becomes "MyAppModuleName".
func AsJavaClass(in string) string {
	var sb strings.Builder
	sb.Grow(len(in))

	wordStart := true
	for _, r := range in {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			wordStart = true
			continue
		}
		if wordStart {
			r = unicode.ToUpper(r)
			wordStart = false
		}
		sb.WriteRune(r)
	}
	return sb.String()
}

// Capitalize upper-cases the first character and lower-cases the rest.
func Capitalize(in string) string {
	first, size := utf8.DecodeRuneInString(in)
	if size == 0 {
		return in
	}
	return string(unicode.ToUpper(first)) + strings.ToLower(in[size:])
}
