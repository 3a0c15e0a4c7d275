package cmdcontext

// CmdCtx is the main structure of the program context.
// Contains within itself other structures of CLI modules.
type CmdCtx struct {
	// Cli - CLI context. Contains flags passed when starting
	// pinit and some other parameters.
	Cli CliCtx
	// CommandName contains name of the command.
	CommandName string
}

// CliCtx - CLI context. Contains flags passed when starting
// pinit and some other parameters.
type CliCtx struct {
	// Path to pinit (pinit.yaml) config. Set by the --cfg flag or found
	// by configuration.
	ConfigPath string
	// ConfigDir is pinit configuration file directory.
	// And the project directory, if there is no config.
	ConfigDir string
	// Verbose logging flag. Enables debug log output.
	Verbose bool
}
