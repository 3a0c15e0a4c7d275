package configure

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pinit-dev/pinit/cli/cmdcontext"
	"github.com/pinit-dev/pinit/cli/config"
)

func writeConfig(t *testing.T, dir, name, content string) string {
	t.Helper()
	configPath := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(configPath, []byte(content), 0o644))
	return configPath
}

func TestGetCliOptsDefaults(t *testing.T) {
	projectDir := t.TempDir()

	cliOpts, configPath, err := GetCliOpts("", projectDir)
	require.NoError(t, err)
	assert.Empty(t, configPath)

	assert.Equal(t, filepath.Join(projectDir, "properties.yaml"), cliOpts.Properties)
	assert.Equal(t, ".liquid", cliOpts.TemplateSuffix)
	assert.Equal(t, config.FieldStringArrayType{".git"}, cliOpts.Ignore)
	assert.Equal(t, config.FieldStringArrayType{"pinit.yaml", "README.md"},
		cliOpts.ScaffoldFiles)
	assert.Equal(t, "overwrite", cliOpts.OnConflict)
	assert.False(t, cliOpts.StrictVariables)
	assert.Empty(t, cliOpts.PostCommands)
	require.NotNil(t, cliOpts.Journal)
	assert.Equal(t, config.JournalOpts{MaxSize: 1, MaxBackups: 3, MaxAge: 7}, *cliOpts.Journal)
}

func TestGetCliOpts(t *testing.T) {
	projectDir := t.TempDir()
	configPath := writeConfig(t, projectDir, "pinit.yml", `pinit:
  properties: conf/props.yaml
  template_suffix: .tmpl
  ignore: node_modules
  scaffold_files: [pinit.yml]
  on_conflict: fail
  strict_variables: true
  post_commands:
    - git init -q
    - git add -A
  journal:
    file: /var/log/pinit.journal
    maxsize: 10
`)

	cliOpts, actualPath, err := GetCliOpts(filepath.Join(projectDir, "pinit.yaml"), t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, configPath, actualPath)

	assert.Equal(t, filepath.Join(projectDir, "conf", "props.yaml"), cliOpts.Properties)
	assert.Equal(t, ".tmpl", cliOpts.TemplateSuffix)
	assert.ElementsMatch(t, []string{".git", "node_modules"}, cliOpts.Ignore)
	assert.Equal(t, config.FieldStringArrayType{"pinit.yml"}, cliOpts.ScaffoldFiles)
	assert.Equal(t, "fail", cliOpts.OnConflict)
	assert.True(t, cliOpts.StrictVariables)
	assert.Equal(t, config.FieldStringArrayType{"git init -q", "git add -A"},
		cliOpts.PostCommands)
	assert.Equal(t, "/var/log/pinit.journal", cliOpts.Journal.File)
	assert.Equal(t, 10, cliOpts.Journal.MaxSize)
	// Defaults are kept for the missing fields.
	assert.Equal(t, 3, cliOpts.Journal.MaxBackups)
}

func TestGetCliOptsListsReplaceDefaults(t *testing.T) {
	projectDir := t.TempDir()
	configPath := writeConfig(t, projectDir, ConfigName, "pinit:\n  scaffold_files: [init.sh]\n")

	cliOpts, _, err := GetCliOpts(configPath, projectDir)
	require.NoError(t, err)
	assert.Equal(t, config.FieldStringArrayType{"init.sh"}, cliOpts.ScaffoldFiles)

	configPath = writeConfig(t, projectDir, ConfigName, "pinit:\n  scaffold_files: []\n")
	cliOpts, _, err = GetCliOpts(configPath, projectDir)
	require.NoError(t, err)
	assert.Empty(t, cliOpts.ScaffoldFiles)
}

func TestGetCliOptsErrors(t *testing.T) {
	testCases := []struct {
		name    string
		content string
		errMsg  string
	}{
		{"unknown policy", "pinit:\n  on_conflict: merge\n", `unknown on_conflict value "merge"`},
		{"unknown field", "pinit:\n  propertys: p.yaml\n", "propertys"},
		{"bad yaml", "pinit: [\n", "failed to parse YAML"},
		{"wrong type", "pinit:\n  strict_variables: [1]\n", "strict_variables"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			projectDir := t.TempDir()
			configPath := writeConfig(t, projectDir, ConfigName, tc.content)
			_, _, err := GetCliOpts(configPath, projectDir)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.errMsg)
		})
	}
}

func TestCli(t *testing.T) {
	rootDir := t.TempDir()
	configPath := writeConfig(t, rootDir, ConfigName, "pinit:\n  ignore: [target]\n")
	projectDir := filepath.Join(rootDir, "a", "b")
	require.NoError(t, os.MkdirAll(projectDir, 0o755))

	// The config is searched from the project directory up.
	cmdCtx := cmdcontext.CmdCtx{}
	cliOpts, err := Cli(&cmdCtx, projectDir)
	require.NoError(t, err)
	assert.Equal(t, configPath, cmdCtx.Cli.ConfigPath)
	assert.Equal(t, rootDir, cmdCtx.Cli.ConfigDir)
	assert.ElementsMatch(t, []string{".git", "target"}, cliOpts.Ignore)

	// Explicit config path.
	otherDir := t.TempDir()
	otherConfig := writeConfig(t, otherDir, "custom.yaml", "pinit:\n  template_suffix: .t\n")
	cmdCtx = cmdcontext.CmdCtx{}
	cmdCtx.Cli.ConfigPath = otherConfig
	cliOpts, err = Cli(&cmdCtx, projectDir)
	require.NoError(t, err)
	assert.Equal(t, otherConfig, cmdCtx.Cli.ConfigPath)
	assert.Equal(t, ".t", cliOpts.TemplateSuffix)

	cmdCtx.Cli.ConfigPath = filepath.Join(otherDir, "missing.yaml")
	_, err = Cli(&cmdCtx, projectDir)
	require.Error(t, err)
}

func TestCliWithoutConfig(t *testing.T) {
	projectDir := t.TempDir()

	cmdCtx := cmdcontext.CmdCtx{}
	cliOpts, err := Cli(&cmdCtx, projectDir)
	require.NoError(t, err)
	if cmdCtx.Cli.ConfigPath != "" {
		t.Skipf("pinit.yaml is found in a parent of the temporary directory: %s",
			cmdCtx.Cli.ConfigPath)
	}
	assert.Equal(t, projectDir, cmdCtx.Cli.ConfigDir)
	assert.Equal(t, filepath.Join(projectDir, "properties.yaml"), cliOpts.Properties)
}
