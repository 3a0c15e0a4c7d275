package config

// Config used to store all information from the pinit.yaml configuration file.
type Config struct {
	CliConfig *CliOpts `mapstructure:"pinit" yaml:"pinit"`
}

// CliOpts stores information about pinit configuration.
// Filled in when parsing the pinit.yaml configuration file.
//
// pinit.yaml file format:
// pinit:
//   properties: path
//   template_suffix: .liquid
//   ignore: [name, ...]
//   scaffold_files: [name, ...]
//   on_conflict: overwrite | fail
//   strict_variables: bool
//   post_commands: [command, ...]
//   journal:
//     file: path
//     maxsize: num (MB)
//     maxbackups: num
//     maxage: num (Days)
type CliOpts struct {
	// Properties is a path to the properties file.
	Properties string `mapstructure:"properties" yaml:"properties"`
	// TemplateSuffix marks template files.
	TemplateSuffix string `mapstructure:"template_suffix" yaml:"template_suffix"`
	// Ignore is a list of names excluded from the transformation with their subtrees.
	Ignore FieldStringArrayType `mapstructure:"ignore" yaml:"ignore"`
	// ScaffoldFiles is a list of files removed after a successful transformation.
	ScaffoldFiles FieldStringArrayType `mapstructure:"scaffold_files" yaml:"scaffold_files"`
	// OnConflict is a policy for existing destinations.
	OnConflict string `mapstructure:"on_conflict" yaml:"on_conflict"`
	// StrictVariables makes references to missing properties an error.
	StrictVariables bool `mapstructure:"strict_variables" yaml:"strict_variables"`
	// PostCommands are shell commands run in the project directory after the cleanup.
	PostCommands FieldStringArrayType `mapstructure:"post_commands" yaml:"post_commands"`
	// Journal contains the actions journal options.
	Journal *JournalOpts `mapstructure:"journal" yaml:"journal"`
}

// JournalOpts is used to store the actions journal options.
type JournalOpts struct {
	// File is a journal file path. Empty value disables the journal.
	File string `mapstructure:"file" yaml:"file"`
	// MaxSize is a maximum size in MB of the journal file before
	// it gets rotated.
	MaxSize int `mapstructure:"maxsize" yaml:"maxsize"`
	// MaxBackups is the maximum number of old journal files to retain.
	MaxBackups int `mapstructure:"maxbackups" yaml:"maxbackups"`
	// MaxAge is the maximum number of days to retain old journal files.
	MaxAge int `mapstructure:"maxage" yaml:"maxage"`
}
