package configure

import (
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"sort"

	"github.com/adam-hanna/arrayOperations"
	"github.com/apex/log"
	"github.com/mitchellh/mapstructure"

	"github.com/pinit-dev/pinit/cli/cmdcontext"
	"github.com/pinit-dev/pinit/cli/config"
	"github.com/pinit-dev/pinit/cli/properties"
	"github.com/pinit-dev/pinit/cli/tree"
	"github.com/pinit-dev/pinit/cli/util"
)

const (
	// ConfigName is a pinit configuration file name.
	ConfigName = "pinit.yaml"
	// ReadmeName is a template readme, removed with the configuration file.
	ReadmeName = "README.md"
)

const (
	defaultJournalMaxSize    = 1
	defaultJournalMaxBackups = 3
	defaultJournalMaxAge     = 7
)

// ConflictPolicies are the supported on_conflict values.
var ConflictPolicies = []string{string(tree.ConflictOverwrite), string(tree.ConflictFail)}

// GetDefaultCliOpts returns `CliOpts` filled with default values.
func GetDefaultCliOpts() *config.CliOpts {
	return &config.CliOpts{
		Properties:     properties.DefaultFileName,
		TemplateSuffix: tree.DefaultTemplateSuffix,
		Ignore:         config.NewSingleOrArray(tree.VcsMetadataDir),
		ScaffoldFiles:  config.NewSingleOrArray(ConfigName, ReadmeName),
		OnConflict:     string(tree.ConflictOverwrite),
		Journal: &config.JournalOpts{
			MaxSize:    defaultJournalMaxSize,
			MaxBackups: defaultJournalMaxBackups,
			MaxAge:     defaultJournalMaxAge,
		},
	}
}

// adjustPathWithConfigLocation adjust provided filePath with configDir.
// Absolute filePath is returned as is. Relative filePath is calculated relative to configDir.
// Empty filePath stays empty.
func adjustPathWithConfigLocation(filePath, configDir string) (string, error) {
	if filePath == "" {
		return "", nil
	}
	if filepath.IsAbs(filePath) {
		return filePath, nil
	}
	return filepath.Abs(filepath.Join(configDir, filePath))
}

// updateCliOpts resolves all paths in config relative to specified location, and
// sets uninitialized values to defaults.
func updateCliOpts(cliOpts *config.CliOpts, configDir string) error {
	var err error
	defaults := GetDefaultCliOpts()

	if cliOpts.Properties == "" {
		cliOpts.Properties = defaults.Properties
	}
	if cliOpts.Properties, err = adjustPathWithConfigLocation(cliOpts.Properties,
		configDir); err != nil {
		return err
	}

	if cliOpts.TemplateSuffix == "" {
		cliOpts.TemplateSuffix = defaults.TemplateSuffix
	}
	if cliOpts.OnConflict == "" {
		cliOpts.OnConflict = defaults.OnConflict
	}
	if cliOpts.ScaffoldFiles == nil {
		cliOpts.ScaffoldFiles = defaults.ScaffoldFiles
	}
	if util.Find(ConflictPolicies, cliOpts.OnConflict) == -1 {
		return fmt.Errorf("unknown on_conflict value %q, expected one of %v",
			cliOpts.OnConflict, ConflictPolicies)
	}

	// VCS metadata is always ignored.
	ignore := []string(cliOpts.Ignore)
	if util.Find(ignore, tree.VcsMetadataDir) == -1 {
		ignore = append(ignore, tree.VcsMetadataDir)
	}
	ignore = arrayOperations.DifferenceString(ignore)
	sort.Strings(ignore)
	cliOpts.Ignore = ignore

	if cliOpts.Journal == nil {
		cliOpts.Journal = defaults.Journal
	}
	if cliOpts.Journal.MaxSize == 0 {
		cliOpts.Journal.MaxSize = defaults.Journal.MaxSize
	}
	if cliOpts.Journal.MaxBackups == 0 {
		cliOpts.Journal.MaxBackups = defaults.Journal.MaxBackups
	}
	if cliOpts.Journal.MaxAge == 0 {
		cliOpts.Journal.MaxAge = defaults.Journal.MaxAge
	}
	if cliOpts.Journal.File, err = adjustPathWithConfigLocation(cliOpts.Journal.File,
		configDir); err != nil {
		return err
	}
	return nil
}

func decodeStringAsArrayField(from, to reflect.Type, value interface{}) (
	interface{}, error,
) {
	if to != reflect.TypeOf(config.FieldStringArrayType{}) || from.Kind() != reflect.String {
		return value, nil
	}
	return []string{value.(string)}, nil
}

func decodeConfig(input map[string]any, cfg *config.Config) error {
	decoderConfig := mapstructure.DecoderConfig{
		Result:      cfg,
		ErrorUnused: true,
		DecodeHook:  mapstructure.ComposeDecodeHookFunc(decodeStringAsArrayField),
	}
	decoder, err := mapstructure.NewDecoder(&decoderConfig)
	if err != nil {
		return err
	}
	return decoder.Decode(input)
}

// GetCliOpts returns pinit options from the config file located at path
// configurePath. If there is no config file, default options are returned
// with paths relative to projectDir. The file is decoded into empty options,
// defaults are set for the missing values afterwards.
func GetCliOpts(configurePath, projectDir string) (*config.CliOpts, string, error) {
	cfg := config.Config{CliConfig: &config.CliOpts{}}

	configPath := ""
	if configurePath != "" {
		var err error
		configPath, err = util.GetYamlFileName(configurePath, true)
		if err != nil && !os.IsNotExist(err) {
			return nil, "", fmt.Errorf("failed to get access to configuration file: %s", err)
		}
		if os.IsNotExist(err) {
			configPath = ""
		}
	}

	configDir := projectDir
	if configPath != "" {
		var err error
		if configPath, err = filepath.Abs(configPath); err != nil {
			return nil, "", fmt.Errorf("cannot determine config file path: %s", err)
		}
		log.Debugf("Using configuration file %s", configPath)

		rawConfigOpts, err := util.ParseYAML(configPath)
		if err != nil {
			return nil, "", fmt.Errorf("failed to parse pinit configuration: %s", err)
		}
		if err := decodeConfig(rawConfigOpts, &cfg); err != nil {
			return nil, "", fmt.Errorf("failed to parse pinit configuration: %s", err)
		}
		if cfg.CliConfig == nil {
			return nil, "",
				fmt.Errorf("failed to parse pinit configuration: missing pinit section")
		}
		configDir = filepath.Dir(configPath)
	}

	configDir, err := filepath.Abs(configDir)
	if err != nil {
		return nil, "", err
	}
	if err = updateCliOpts(cfg.CliConfig, configDir); err != nil {
		return nil, "", err
	}
	return cfg.CliConfig, configPath, nil
}

// Cli performs initial CLI configuration for the project in projectDir.
// The configuration file set by the --cfg flag is used if any, otherwise it
// is searched from projectDir up to the root.
func Cli(cmdCtx *cmdcontext.CmdCtx, projectDir string) (*config.CliOpts, error) {
	if cmdCtx.Cli.ConfigPath == "" {
		configPath, err := getConfigPath(projectDir)
		if err != nil {
			return nil, fmt.Errorf("failed to get pinit config: %s", err)
		}
		cmdCtx.Cli.ConfigPath = configPath
	} else if _, err := os.Stat(cmdCtx.Cli.ConfigPath); err != nil {
		return nil, fmt.Errorf("failed to get access to configuration file %q: %s",
			cmdCtx.Cli.ConfigPath, err)
	}

	cliOpts, configPath, err := GetCliOpts(cmdCtx.Cli.ConfigPath, projectDir)
	if err != nil {
		return nil, err
	}
	cmdCtx.Cli.ConfigPath = configPath
	if configPath != "" {
		cmdCtx.Cli.ConfigDir = filepath.Dir(configPath)
	} else if cmdCtx.Cli.ConfigDir, err = filepath.Abs(projectDir); err != nil {
		return nil, err
	}
	return cliOpts, nil
}

// getConfigPath looks for the path to the pinit.yaml configuration file,
// looking through all directories from startDir to the root.
func getConfigPath(startDir string) (string, error) {
	curDir, err := filepath.Abs(startDir)
	if err != nil {
		return "", fmt.Errorf("failed to detect project directory: %s", err)
	}

	for {
		configPath, err := util.GetYamlFileName(filepath.Join(curDir, ConfigName), true)
		if err == nil {
			return configPath, nil
		} else if !os.IsNotExist(err) {
			return "", err
		}

		parent := filepath.Dir(curDir)
		if parent == curDir {
			break
		}
		curDir = parent
	}

	return "", nil
}
