package templates

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAsPath(t *testing.T) {
	testCases := map[string]string{
		"com.example-corp.app": "com/examplecorp/app",
		"":                     "",
		"plain":                "plain",
		"a.b.c":                "a/b/c",
		"---":                  "",
		"a-.-b":                "a/b",
	}
	for input, expected := range testCases {
		assert.Equal(t, expected, AsPath(input), "input: %q", input)
	}
}

func TestAsJavaClass(t *testing.T) {
	testCases := map[string]string{
		"my-app.module_name": "MyAppModuleName",
		"a":                  "A",
		"":                   "",
		"already":            "Already",
		"keepCamel":          "KeepCamel",
		"--leading__dots..x": "LeadingDotsX",
		"trailing-":          "Trailing",
		"v2-api":             "V2Api",
		"1st-place":          "1stPlace",
		"émile-zola":         "ÉmileZola",
	}
	for input, expected := range testCases {
		assert.Equal(t, expected, AsJavaClass(input), "input: %q", input)
	}
}

func TestCapitalize(t *testing.T) {
	assert.Equal(t, "Hello", Capitalize("hELLO"))
	assert.Equal(t, "", Capitalize(""))
}

func TestFiltersRegister(t *testing.T) {
	filters := NewDefaultFilters()
	require.Contains(t, filters, AsPathFilter)
	require.Contains(t, filters, AsJavaClassFilter)

	require.Error(t, filters.Register("", strings.ToUpper))
	require.Error(t, filters.Register("nil", nil))

	require.NoError(t, filters.Register("reverse", func(in string) string {
		runes := []rune(in)
		for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
			runes[i], runes[j] = runes[j], runes[i]
		}
		return string(runes)
	}))

	engine := NewEngine(EngineOpts{Filters: filters})
	actual, err := engine.RenderText("{{ name | reverse | as_java_class }}",
		map[string]any{"name": "ppa-ym"})
	require.NoError(t, err)
	assert.Equal(t, "MyApp", actual)
}

func TestDefaultEngineFilters(t *testing.T) {
	engine := NewDefaultEngine()
	data := map[string]any{
		"package": "com.example-corp.app",
		"name":    "my-app.module_name",
	}

	actual, err := engine.RenderText(
		"src/main/java/{{ package | as_path }}/{{ name | as_java_class }}.java", data)
	require.NoError(t, err)
	assert.Equal(t, "src/main/java/com/examplecorp/app/MyAppModuleName.java", actual)

	_, err = engine.RenderText("{{ name | as_kotlin_class }}", data)
	var filterErr *UnknownFilterError
	require.ErrorAs(t, err, &filterErr)
	assert.Equal(t, "as_kotlin_class", filterErr.Filter)

	_, err = engine.RenderText("{{ name | }}", data)
	var syntaxErr *TemplateSyntaxError
	require.ErrorAs(t, err, &syntaxErr)
}

func TestStrictEngine(t *testing.T) {
	engine := NewEngine(EngineOpts{Strict: true})
	_, err := engine.RenderText("{{ missing }}", map[string]any{})
	var undefinedErr *UndefinedVariableError
	require.ErrorAs(t, err, &undefinedErr)
	assert.Equal(t, "missing", undefinedErr.Variable)
}
