package scaffold

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pinit-dev/pinit/cli/configure"
	"github.com/pinit-dev/pinit/cli/properties"
	scaffold_ctx "github.com/pinit-dev/pinit/cli/scaffold/context"
	"github.com/pinit-dev/pinit/cli/templates"
	"github.com/pinit-dev/pinit/cli/tree"
	"github.com/pinit-dev/pinit/cli/util"
)

type fixedAnswer bool

func (a fixedAnswer) Confirm(string) (bool, error) {
	return bool(a), nil
}

const projectProperties = `group: com.example
name: demo-app
`

func createProject(t *testing.T, files map[string]string) string {
	t.Helper()
	projectDir := t.TempDir()
	for name, content := range files {
		fullPath := filepath.Join(projectDir, filepath.FromSlash(name))
		require.NoError(t, os.MkdirAll(filepath.Dir(fullPath), 0o755))
		require.NoError(t, os.WriteFile(fullPath, []byte(content), 0o644))
	}
	return projectDir
}

func newScaffoldCtx(t *testing.T, projectDir string) *scaffold_ctx.ScaffoldCtx {
	t.Helper()
	cliOpts, _, err := configure.GetCliOpts("", projectDir)
	require.NoError(t, err)

	scaffoldCtx := &scaffold_ctx.ScaffoldCtx{SkipConfirm: true}
	require.NoError(t, FillCtx(cliOpts, scaffoldCtx, projectDir))
	return scaffoldCtx
}

func TestRun(t *testing.T) {
	const javaTemplate = "package {{ group }};\n\npublic class {{ name | as_java_class }} {}\n"
	javaPath := "src/main/java/{{ group | as_path }}/{{ name | as_java_class }}.java.liquid"
	projectDir := createProject(t, map[string]string{
		"pinit.yaml":         "pinit:\n",
		"README.md":          "template readme",
		"properties.yaml":    projectProperties,
		javaPath:             javaTemplate,
		"docs/{{ name }}.md": "docs",
		".git/HEAD":          "ref: refs/heads/main",
	})
	scaffoldCtx := newScaffoldCtx(t, projectDir)

	require.NoError(t, Run(context.Background(), scaffoldCtx, nil))

	content, err := util.GetFileContent(
		filepath.Join(projectDir, "src/main/java/com/example/DemoApp.java"))
	require.NoError(t, err)
	assert.Equal(t, "package com.example;\n\npublic class DemoApp {}\n", content)
	assert.FileExists(t, filepath.Join(projectDir, "docs", "demo-app.md"))
	assert.FileExists(t, filepath.Join(projectDir, ".git", "HEAD"))
	assert.FileExists(t, filepath.Join(projectDir, "properties.yaml"))
	assert.NoFileExists(t, filepath.Join(projectDir, "pinit.yaml"))
	assert.NoFileExists(t, filepath.Join(projectDir, "README.md"))
	assert.NoDirExists(t, filepath.Join(projectDir, "src/main/java/{{ group | as_path }}"))
}

func TestRunToDestination(t *testing.T) {
	projectDir := createProject(t, map[string]string{
		"pinit.yaml":      "pinit:\n",
		"properties.yaml": projectProperties,
		"{{ name }}.txt":  "x",
	})
	scaffoldCtx := newScaffoldCtx(t, projectDir)
	scaffoldCtx.DestinationDir = filepath.Join(t.TempDir(), "demo")
	scaffoldCtx.VarsFromCli = []string{"name=other"}

	require.NoError(t, Run(context.Background(), scaffoldCtx, nil))

	assert.FileExists(t, filepath.Join(scaffoldCtx.DestinationDir, "other.txt"))
	assert.NoFileExists(t, filepath.Join(scaffoldCtx.DestinationDir, "pinit.yaml"))
	// The template is not modified.
	assert.FileExists(t, filepath.Join(projectDir, "{{ name }}.txt"))
	assert.FileExists(t, filepath.Join(projectDir, "pinit.yaml"))
}

func TestRunFailureKeepsScaffoldFiles(t *testing.T) {
	projectDir := createProject(t, map[string]string{
		"pinit.yaml":      "pinit:\n",
		"README.md":       "template readme",
		"properties.yaml": projectProperties,
		"a.liquid":        "{{ name }}",
		"b.liquid":        "{{ name | unknown_filter }}",
	})
	scaffoldCtx := newScaffoldCtx(t, projectDir)

	err := Run(context.Background(), scaffoldCtx, nil)
	var transformErr *tree.TransformFailedError
	require.ErrorAs(t, err, &transformErr)
	assert.Equal(t, "b.liquid", transformErr.Path)
	var filterErr *templates.UnknownFilterError
	require.ErrorAs(t, err, &filterErr)

	assert.FileExists(t, filepath.Join(projectDir, "a"))
	assert.FileExists(t, filepath.Join(projectDir, "b.liquid"))
	assert.FileExists(t, filepath.Join(projectDir, "pinit.yaml"))
	assert.FileExists(t, filepath.Join(projectDir, "README.md"))
}

func TestRunDeclined(t *testing.T) {
	projectDir := createProject(t, map[string]string{
		"pinit.yaml":      "pinit:\n",
		"properties.yaml": projectProperties,
		"a.liquid":        "{{ name }}",
	})
	scaffoldCtx := newScaffoldCtx(t, projectDir)
	scaffoldCtx.SkipConfirm = false

	// Without a terminal the confirmation is refused before the prompt.
	err := Run(context.Background(), scaffoldCtx, fixedAnswer(false))
	var argErr *util.ArgError
	if !assert.ErrorAs(t, err, &argErr) {
		assert.ErrorIs(t, err, util.ErrCmdAbort)
	}
	assert.FileExists(t, filepath.Join(projectDir, "a.liquid"))
	assert.FileExists(t, filepath.Join(projectDir, "pinit.yaml"))
}

func TestRunInvalidCtx(t *testing.T) {
	err := Run(context.Background(), &scaffold_ctx.ScaffoldCtx{}, nil)
	assert.ErrorContains(t, err, "Scaffold context check failed")
}

func TestFillCtx(t *testing.T) {
	projectDir := t.TempDir()
	cliOpts := configure.GetDefaultCliOpts()

	scaffoldCtx := scaffold_ctx.ScaffoldCtx{}
	require.NoError(t, FillCtx(cliOpts, &scaffoldCtx, projectDir))
	assert.Equal(t, projectDir, scaffoldCtx.ProjectDir)
	assert.Equal(t, properties.DefaultFileName, scaffoldCtx.PropertiesFile)
	assert.False(t, scaffoldCtx.PropertiesFileSet)

	scaffoldCtx = scaffold_ctx.ScaffoldCtx{PropertiesFile: "/tmp/props.yaml"}
	require.NoError(t, FillCtx(cliOpts, &scaffoldCtx, projectDir))
	assert.True(t, scaffoldCtx.PropertiesFileSet)

	err := FillCtx(cliOpts, &scaffoldCtx, filepath.Join(projectDir, "missing"))
	var argErr *util.ArgError
	require.ErrorAs(t, err, &argErr)
}

func TestPlan(t *testing.T) {
	projectDir := createProject(t, map[string]string{
		"properties.yaml": projectProperties,
		"app.conf.liquid": "name={{ name }}\n",
		"{{ name }}.txt":  "x",
		"static/logo.svg": "<svg/>",
	})
	scaffoldCtx := newScaffoldCtx(t, projectDir)

	items, err := Plan(context.Background(), scaffoldCtx, true)
	require.NoError(t, err)
	require.Len(t, items, 4)

	byPath := map[string]PlanItem{}
	for _, item := range items {
		byPath[item.Entry.Path] = item
	}
	assert.Equal(t, tree.Render, byPath["app.conf.liquid"].Action)
	assert.Equal(t, "app.conf", byPath["app.conf.liquid"].Destination)
	assert.Contains(t, byPath["app.conf.liquid"].Diff, "+name=demo-app")
	assert.Equal(t, tree.Move, byPath["{{ name }}.txt"].Action)
	assert.Equal(t, "demo-app.txt", byPath["{{ name }}.txt"].Destination)
	assert.Empty(t, byPath["{{ name }}.txt"].Diff)
	assert.Equal(t, tree.NoOp, byPath[filepath.Join("static", "logo.svg")].Action)
	assert.Equal(t, tree.NoOp, byPath["properties.yaml"].Action)

	// Nothing is changed.
	assert.FileExists(t, filepath.Join(projectDir, "app.conf.liquid"))
	assert.NoFileExists(t, filepath.Join(projectDir, "app.conf"))
}
