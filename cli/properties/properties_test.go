package properties

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const propertiesText = `project:
  group: com.example-corp
  name: demo-app
modules:
  - api
  - core
version: 1.0
`

func TestLoad(t *testing.T) {
	workDir := t.TempDir()
	propsPath := filepath.Join(workDir, DefaultFileName)
	require.NoError(t, os.WriteFile(propsPath, []byte(propertiesText), 0o644))

	props, err := Load(propsPath)
	require.NoError(t, err)
	assert.Equal(t, []string{"modules", "project", "version"}, props.Keys())

	value, found := props.Lookup("project.group")
	require.True(t, found)
	assert.Equal(t, "com.example-corp", value)

	value, found = props.Lookup("modules")
	require.True(t, found)
	assert.Equal(t, []any{"api", "core"}, value)

	_, found = props.Lookup("project.missing")
	assert.False(t, found)
	_, found = props.Lookup("version.minor")
	assert.False(t, found)
}

func TestLoadErrors(t *testing.T) {
	workDir := t.TempDir()

	_, err := Load(filepath.Join(workDir, "missing.yaml"))
	require.Error(t, err)

	propsPath := filepath.Join(workDir, DefaultFileName)
	require.NoError(t, os.WriteFile(propsPath, []byte("- a\n- b\n"), 0o644))
	_, err = Load(propsPath)
	require.ErrorContains(t, err, "properties must be a mapping")

	require.NoError(t, os.WriteFile(propsPath, []byte("a: [b\n"), 0o644))
	_, err = Load(propsPath)
	require.ErrorContains(t, err, "failed to parse YAML")
}

func TestParseEmpty(t *testing.T) {
	props, err := Parse([]byte(""))
	require.NoError(t, err)
	assert.Empty(t, props)
}

func TestWithKeepsOriginal(t *testing.T) {
	props, err := Parse([]byte(propertiesText))
	require.NoError(t, err)

	updated, err := props.With("project.name", "other")
	require.NoError(t, err)

	value, _ := updated.Lookup("project.name")
	assert.Equal(t, "other", value)
	value, _ = props.Lookup("project.name")
	assert.Equal(t, "demo-app", value)

	updated, err = updated.With("version.major", "2")
	require.NoError(t, err)
	value, _ = updated.Lookup("version.major")
	assert.Equal(t, "2", value)

	_, err = props.With("a..b", "x")
	require.Error(t, err)
}

func TestApplyVars(t *testing.T) {
	props, err := ApplyVars(nil, []string{"var1=value1", "nested.var2=value2",
		"var3=value=value"})
	require.NoError(t, err)
	assert.Equal(t, PropertyMap{
		"var1":   "value1",
		"nested": map[string]any{"var2": "value2"},
		"var3":   "value=value",
	}, props)

	for _, invalid := range []string{"var1=", "=value", "=", "missing_equal_sign", ".a=b"} {
		_, err = ApplyVars(nil, []string{invalid})
		assert.Error(t, err, "definition: %q", invalid)
	}

	props, err = ApplyVars(nil, nil)
	require.NoError(t, err)
	assert.NotNil(t, props)
}

func TestYAML(t *testing.T) {
	props, err := Parse([]byte("b: 1\na:\n  d: x\n  c: z\n"))
	require.NoError(t, err)

	text, err := props.YAML()
	require.NoError(t, err)
	assert.Equal(t, "a:\n  c: z\n  d: x\nb: 1\n", text)
}
